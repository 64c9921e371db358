package testutils

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
)

// TestLogger cria um logger zap para testes
func TestLogger(t *testing.T) *zap.Logger {
	return zaptest.NewLogger(t)
}

// SetupTestRouter configura um router Gin para testes
func SetupTestRouter(t *testing.T) *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

// MakeRequest executa uma requisição HTTP de teste
func MakeRequest(t *testing.T, router http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reqBody io.Reader
	contentType := "application/json"

	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = bytes.NewReader(v)
		contentType = "application/octet-stream"
	case string:
		reqBody = bytes.NewReader([]byte(v))
	default:
		b, err := json.Marshal(v)
		require.NoError(t, err, "Failed to marshal request body")
		reqBody = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, reqBody)
	if reqBody != nil {
		req.Header.Set("Content-Type", contentType)
	}

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

// ParseResponse analisa a resposta JSON para uma estrutura
func ParseResponse(t *testing.T, resp *httptest.ResponseRecorder, dst any) {
	t.Helper()
	require.NotNil(t, resp, "Response recorder is nil")
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), dst), "Failed to parse response: %s", resp.Body.String())
}
