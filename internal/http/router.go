package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"psymetric/internal/service"
)

// NewRouter configura el router de Gin con middlewares y rutas.
func NewRouter(
	logger *zap.Logger,
	jwtSvc *service.JWTService,
	userH *UserHandler,
	assessH *AssessmentHandler,
) *gin.Engine {
	r := gin.New()

	// Middlewares basicos: logging, recovery y JSON content-type.
	r.Use(zapLoggerMiddleware(logger), gin.Recovery(), jsonContentTypeMiddleware())

	users := r.Group("/users")
	users.POST("", userH.CreateUser)

	auth := r.Group("/auth")
	auth.POST("/login", userH.Login)
	auth.POST("/refresh", userH.Refresh)
	auth.POST("/logout", userH.Logout)

	protected := r.Group("/")
	protected.Use(JWTAuthMiddleware(jwtSvc))
	protected.POST("/assessments/:instrument/score", assessH.ScoreInstrument)
	protected.POST("/reports", assessH.CreateReport)
	protected.GET("/reports", assessH.ListReports)
	protected.GET("/reports/:id", assessH.GetReport)
	protected.GET("/reports/:id/similar", assessH.FindSimilar)

	return r
}

// zapLoggerMiddleware crea un middleware simple de logging con zap.
func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", latency),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}

// jsonContentTypeMiddleware fuerza Content-Type: application/json en responses.
func jsonContentTypeMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Content-Type", "application/json")
		c.Next()
	}
}
