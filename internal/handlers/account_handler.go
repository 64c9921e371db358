package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/manicure-agenda/internal/httperr"
	"github.com/BruksfildServices01/manicure-agenda/internal/httpresp"
	"github.com/BruksfildServices01/manicure-agenda/internal/photo"
	ucAccount "github.com/BruksfildServices01/manicure-agenda/internal/usecase/account"
)

// ======================================================
// HANDLER
// ======================================================

type AccountHandler struct {
	create      *ucAccount.CreateAccount
	login       *ucAccount.Login
	logout      *ucAccount.Logout
	current     *ucAccount.CurrentAccount
	updatePhoto *ucAccount.UpdatePhoto
	photo       *ucAccount.Photo
	log         *zap.Logger
}

func NewAccountHandler(
	create *ucAccount.CreateAccount,
	login *ucAccount.Login,
	logout *ucAccount.Logout,
	current *ucAccount.CurrentAccount,
	updatePhoto *ucAccount.UpdatePhoto,
	photo *ucAccount.Photo,
	log *zap.Logger,
) *AccountHandler {
	return &AccountHandler{
		create:      create,
		login:       login,
		logout:      logout,
		current:     current,
		updatePhoto: updatePhoto,
		photo:       photo,
		log:         log,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAccountRequest struct {
	Name        string  `json:"name" binding:"required"`
	PriceAvulso float64 `json:"priceAvulso"`
	PricePacote float64 `json:"pricePacote"`
}

type LoginRequest struct {
	Name string `json:"name" binding:"required"`
}

// ======================================================
// ACCOUNT / SESSION
// ======================================================

func (h *AccountHandler) Create(c *gin.Context) {
	var req CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	p, err := h.create.Execute(c.Request.Context(), ucAccount.CreateAccountInput{
		Name:        req.Name,
		PriceAvulso: req.PriceAvulso,
		PricePacote: req.PricePacote,
	})
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	httpresp.Created(c, p)
}

func (h *AccountHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	p, err := h.login.Execute(c.Request.Context(), req.Name)
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	httpresp.OK(c, p)
}

func (h *AccountHandler) Logout(c *gin.Context) {
	if err := h.logout.Execute(c.Request.Context()); err != nil {
		writeError(c, h.log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *AccountHandler) Me(c *gin.Context) {
	out, err := h.current.Execute(c.Request.Context())
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	httpresp.OK(c, out)
}

// ======================================================
// PHOTO
// ======================================================

// UploadPhoto aceita o corpo cru (image/jpeg, image/png ou image/webp)
func (h *AccountHandler) UploadPhoto(c *gin.Context) {
	raw, err := io.ReadAll(io.LimitReader(c.Request.Body, photo.MaxUploadBytes+1))
	if err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	p, err := h.updatePhoto.Execute(c.Request.Context(), raw)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	httpresp.OK(c, p)
}

func (h *AccountHandler) GetPhoto(c *gin.Context) {
	b, err := h.photo.Execute(c.Request.Context())
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.Data(http.StatusOK, photo.ContentType, b)
}
