package httpx

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/you/clinicsvc/internal/http/handlers"
	"github.com/you/clinicsvc/internal/http/middleware"
)

// Handlers groups everything BuildRouter mounts
type Handlers struct {
	Auth      *handlers.AuthHandlers
	Patients  *handlers.PatientHandlers
	Analytics *handlers.AnalyticsHandlers
}

func BuildRouter(h Handlers, jwtmw *middleware.AuthMW, cb *middleware.CasbinMW, logger zerolog.Logger, corsOrigins []string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestID(), middleware.Logger(logger), middleware.CORS(corsOrigins))

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": true}) })

	api := r.Group("/api")

	auth := api.Group("/auth")
	auth.POST("/register", h.Auth.Register)
	auth.POST("/login", h.Auth.Login)

	v := api.Group("/", jwtmw.WithJWT(), cb.Enforce())
	v.GET("/auth/me", h.Auth.Me)

	v.POST("/patients", h.Patients.Create)
	v.GET("/patients", h.Patients.List)
	v.GET("/patients/:id", h.Patients.Get)
	v.PUT("/patients/:id", h.Patients.Update)
	v.DELETE("/patients/:id", h.Patients.Delete)

	v.GET("/analytics/dashboard", h.Analytics.Dashboard)

	return r
}
