package httpapi

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/lifeline-app/backend/internal/config"
	"github.com/lifeline-app/backend/internal/flow"
	"github.com/lifeline-app/backend/internal/http/handlers"
	"github.com/lifeline-app/backend/internal/http/middleware"
	"github.com/lifeline-app/backend/internal/master"
	"github.com/lifeline-app/backend/internal/store"

	_ "github.com/lifeline-app/backend/docs"
)

func Router(cfg config.Config, st store.Store, masterSvc *master.Service, sessions *flow.Service, logger zerolog.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))

	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Admin-Passphrase", "X-Request-Id"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if cfg.CORSAllowed == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = []string{cfg.CORSAllowed}
	}
	r.Use(cors.New(corsCfg))

	h := &handlers.Handler{
		Master:    masterSvc,
		Sessions:  sessions,
		Store:     st,
		Validator: validator.New(),
		Logger:    logger,
	}

	r.GET("/healthz", h.Healthz)

	api := r.Group("/api")
	{
		api.POST("/sessions", h.SessionCreate)
		api.GET("/sessions/:id", h.SessionGet)
		api.POST("/sessions/:id/back", h.SessionBack)
		api.POST("/sessions/:id/resume", h.SessionResume)
		api.POST("/sessions/:id/restart", h.SessionRestart)

		api.POST("/sessions/:id/quick/start", h.StartQuick)
		api.POST("/sessions/:id/quick/symptom", h.SelectSymptom)
		api.POST("/sessions/:id/quick/body-location", h.SelectBodyLocation)
		api.POST("/sessions/:id/quick/body-location/confirm", h.ConfirmBodyLocation)
		api.POST("/sessions/:id/quick/employer", h.SelectEmployer)
		api.POST("/sessions/:id/quick/person", h.SelectPerson)
		api.POST("/sessions/:id/quick/action", h.SetAction)
		api.POST("/sessions/:id/quick/note", h.SetNote)
		api.GET("/sessions/:id/quick/preview", h.Preview)

		api.POST("/sessions/:id/wizard/start", h.StartWizard)
		api.POST("/sessions/:id/wizard/triage", h.WizardTriage)
		api.POST("/sessions/:id/wizard/triage/next", h.WizardTriageNext)
		api.POST("/sessions/:id/wizard/step", h.WizardGoToStep)
		api.POST("/sessions/:id/wizard/location", h.WizardLocation)
		api.POST("/sessions/:id/wizard/accident/tag", h.WizardToggleTag)
		api.POST("/sessions/:id/wizard/accident/clear", h.WizardClearTags)
		api.POST("/sessions/:id/wizard/accident/note", h.WizardAccidentNote)
		api.POST("/sessions/:id/wizard/victim", h.WizardVictim)
		api.GET("/sessions/:id/wizard/review", h.WizardReview)

		api.POST("/qr/resolve", h.ResolveToken)

		api.GET("/map/zones", h.MapZones)
		api.GET("/map/hit", h.MapHit)

		api.GET("/employers", h.Employers)
		api.GET("/personnel", h.Personnel)
		api.GET("/symptoms", h.Symptoms)
		api.GET("/body-locations", h.BodyLocations)
		api.GET("/accident-tags", h.AccidentTags)
		api.GET("/site-locations", h.SiteLocations)
	}

	// Passphrase set/change sits outside the gate: first-run has no hash
	// yet, and changes re-verify the current passphrase themselves.
	api.POST("/admin/passphrase", h.AdminSetPassphrase)

	admin := api.Group("/admin")
	admin.Use(middleware.Passphrase(func() string {
		return masterSvc.Current().PassphraseHash
	}))
	{
		admin.GET("/master", h.AdminMasterGet)
		admin.PUT("/master", h.AdminMasterUpdate)
		admin.GET("/master/export", h.AdminExport)
		admin.POST("/master/import", h.AdminImport)
	}

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}
