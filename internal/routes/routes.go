package routes

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/manicure-agenda/internal/audit"
	"github.com/BruksfildServices01/manicure-agenda/internal/blob"
	"github.com/BruksfildServices01/manicure-agenda/internal/config"
	"github.com/BruksfildServices01/manicure-agenda/internal/handlers"
	infraRepo "github.com/BruksfildServices01/manicure-agenda/internal/infra/repository"
	"github.com/BruksfildServices01/manicure-agenda/internal/kvstore"
	"github.com/BruksfildServices01/manicure-agenda/internal/metrics"
	"github.com/BruksfildServices01/manicure-agenda/internal/middleware"
	"github.com/BruksfildServices01/manicure-agenda/internal/session"
	"github.com/BruksfildServices01/manicure-agenda/internal/timezone"
	ucAccount "github.com/BruksfildServices01/manicure-agenda/internal/usecase/account"
	ucAppointment "github.com/BruksfildServices01/manicure-agenda/internal/usecase/appointment"
)

type Deps struct {
	Store   kvstore.Store
	Blobs   blob.Store
	Audit   *audit.Dispatcher
	Metrics *metrics.StoreMetrics
	Clock   timezone.Clock
	Log     *zap.Logger
}

func RegisterRoutes(r *gin.Engine, cfg *config.Config, d Deps) {

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.Recovery(d.Log))
	r.Use(middleware.RequestLogger(d.Log))
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	sess := session.NewManager(d.Store)
	profileRepo := infraRepo.NewProfileKVRepository(d.Store, sess)
	clientRepo := infraRepo.NewClientKVRepository(d.Store, sess)

	// ======================================================
	// 🧠 USE CASES — ACCOUNT
	// ======================================================
	accountHandler := handlers.NewAccountHandler(
		ucAccount.NewCreateAccount(profileRepo, d.Clock, d.Audit),
		ucAccount.NewLogin(profileRepo, sess, d.Audit),
		ucAccount.NewLogout(sess),
		ucAccount.NewCurrentAccount(profileRepo, sess),
		ucAccount.NewUpdatePhoto(profileRepo, d.Blobs, d.Audit),
		ucAccount.NewPhoto(profileRepo, d.Blobs),
		d.Log,
	)

	// ======================================================
	// 🧠 USE CASES — CLIENTS
	// ======================================================
	clientHandler := handlers.NewClientHandler(
		ucAppointment.NewCreateClient(clientRepo, sess, d.Clock, d.Audit, cfg.ValidateAllClients),
		ucAppointment.NewRegisterFirstClient(clientRepo, sess, d.Clock, d.Audit),
		ucAppointment.NewReschedule(clientRepo, sess, d.Clock, d.Audit, cfg.ValidateAllClients),
		ucAppointment.NewToggleAttended(clientRepo, sess, d.Audit),
		ucAppointment.NewDeleteClient(clientRepo, sess, d.Audit),
		ucAppointment.NewListAgenda(clientRepo, d.Clock),
		ucAppointment.NewListHistory(clientRepo),
		d.Log,
	)

	// ======================================================
	// 🩺 HEALTH / METRICS
	// ======================================================
	r.GET("/health", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := d.Store.Ping(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":  "degraded",
				"storage": string(d.Store.Driver()),
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"storage": string(d.Store.Driver()),
		})
	})

	if d.Metrics != nil {
		r.GET("/metrics", gin.WrapH(d.Metrics.Handler()))
	}

	// ======================================================
	// 🔓 ACCOUNT (sem sessão)
	// ======================================================
	api := r.Group("/api")
	{
		api.POST("/accounts", accountHandler.Create)
		api.POST("/session", accountHandler.Login)
		api.DELETE("/session", accountHandler.Logout)
	}

	// ======================================================
	// 🔐 MANICURE LOGADA
	// ======================================================
	me := api.Group("/me")
	me.Use(middleware.RequireSession(sess, d.Log))
	{
		me.GET("", accountHandler.Me)
		me.PUT("/photo", accountHandler.UploadPhoto)
		me.GET("/photo", accountHandler.GetPhoto)

		me.GET("/clients", clientHandler.Agenda)
		me.POST("/clients", clientHandler.Create)
		me.POST("/first-client", clientHandler.RegisterFirst)
		me.PATCH("/clients/:id/schedule", clientHandler.Reschedule)
		me.PATCH("/clients/:id/attended", clientHandler.ToggleAttended)
		me.DELETE("/clients/:id", clientHandler.Delete)

		me.GET("/history", clientHandler.History)
	}

	// ======================================================
	// 🧪 DEV
	// ======================================================
	if cfg.DevMode {
		dev := handlers.NewDevHandler(d.Store, d.Log)
		api.DELETE("/dev/data", dev.ClearAll)
	}
}
