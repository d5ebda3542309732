package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/medvault-dev/medvault/internal/handlers"
	"github.com/medvault-dev/medvault/internal/middleware"
	"github.com/medvault-dev/medvault/internal/session"
)

const publicDir = "./public"

func NewRouter(h *handlers.Handler, sessions *session.Manager, allowedOrigins []string) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/api/health", handlers.HealthCheck)

	r.POST("/signup", h.Signup)
	r.POST("/login", h.Login)
	r.GET("/logout", h.Logout)
	r.GET("/check-auth", h.CheckAuth)

	protected := r.Group("", middleware.RequireSession(sessions))
	{
		protected.POST("/save-medical-data", h.SaveMedicalData)
		protected.GET("/get-medical-data", h.GetMedicalData)

		// Legacy device routes, kept for the old clients
		protected.POST("/save-device-data", h.SaveDeviceData)
		protected.GET("/get-device-data", h.GetDeviceData)

		protected.GET("/dashboard", h.Dashboard)
		protected.GET("/simulation.html", func(ctx *gin.Context) {
			ctx.File(publicDir + "/simulation.html")
		})
	}

	r.StaticFile("/", publicDir+"/index.html")
	r.GET("/login", func(ctx *gin.Context) {
		ctx.File(publicDir + "/login.html")
	})

	// Everything else falls through to the static assets
	r.NoRoute(gin.WrapH(http.FileServer(http.Dir(publicDir))))

	return r
}
