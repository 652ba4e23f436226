package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"schoolgrid/backend/config"
	"schoolgrid/backend/internal/api/handler"
	"schoolgrid/backend/internal/api/middleware"
	"schoolgrid/backend/pkg/jwt"
	"schoolgrid/backend/pkg/redis"
)

// New builds the gin engine with all routes and middleware.
func New(
	cfg *config.Config,
	h *handler.Handler,
	jwtMgr *jwt.Manager,
	rdb *redis.Client,
	logger *zap.Logger,
) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.RequestLogger(logger),
		middleware.SecurityHeaders(),
		middleware.CORS(cfg.Server.CORS.AllowOrigins),
		middleware.BodyLimit(1<<20),
	)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := r.Group("/api/v1")

	// Public authentication endpoints. Login is rate limited per IP.
	auth := v1.Group("/auth")
	{
		auth.POST("/login", middleware.RateLimit(rdb, 10, time.Minute), h.Auth.Login)
		auth.POST("/refresh", h.Auth.Refresh)
	}

	// Everything below requires a valid access token.
	authed := v1.Group("")
	authed.Use(middleware.JWTAuth(jwtMgr, rdb))
	{
		authed.POST("/auth/logout", h.Auth.Logout)
		authed.GET("/auth/me", h.Auth.Me)
		authed.PUT("/auth/password", h.Auth.ChangePassword)

		teachers := authed.Group("/teachers")
		{
			teachers.POST("", h.Teacher.Create)
			teachers.GET("", h.Teacher.List)
			teachers.GET("/:id", h.Teacher.Get)
			teachers.PUT("/:id", h.Teacher.Update)
			teachers.DELETE("/:id", h.Teacher.Delete)
			teachers.GET("/:id/schedules", h.Schedule.ListByTeacher)
		}

		students := authed.Group("/students")
		{
			students.POST("", h.Student.Create)
			students.GET("", h.Student.List)
			students.GET("/:id", h.Student.Get)
			students.PUT("/:id", h.Student.Update)
			students.DELETE("/:id", h.Student.Delete)
		}

		classes := authed.Group("/classes")
		{
			classes.POST("", h.Class.Create)
			classes.GET("", h.Class.List)
			classes.GET("/:id", h.Class.Get)
			classes.PUT("/:id", h.Class.Update)
			classes.DELETE("/:id", h.Class.Delete)
			classes.GET("/:id/schedules", h.Schedule.ListByClass)
		}

		subjects := authed.Group("/subjects")
		{
			subjects.POST("", h.Subject.Create)
			subjects.GET("", h.Subject.List)
			subjects.GET("/:id", h.Subject.Get)
			subjects.PUT("/:id", h.Subject.Update)
			subjects.DELETE("/:id", h.Subject.Delete)
		}

		schedules := authed.Group("/schedules")
		{
			schedules.POST("", h.Schedule.Create)
			schedules.GET("", h.Schedule.List)
			schedules.GET("/grid", h.Schedule.WeeklyGrid)
			schedules.GET("/stats", h.Schedule.Stats)
			schedules.GET("/catalogs", h.Schedule.Catalogs)
			schedules.POST("/validate", h.Schedule.Validate)
			schedules.POST("/check-conflicts", h.Schedule.CheckConflicts)
			schedules.GET("/:id", h.Schedule.Get)
			schedules.PUT("/:id", h.Schedule.Update)
			schedules.DELETE("/:id", h.Schedule.Delete)
		}

		exports := authed.Group("/exports")
		{
			exports.GET("/timetable.xlsx", h.Export.TimetableXLSX)
			exports.GET("/timetable.ics", h.Export.TimetableICS)
		}

		// Account management is reserved for super administrators.
		users := authed.Group("/users")
		users.Use(middleware.RoleAuth("super_admin"))
		{
			users.POST("", h.User.Create)
			users.GET("", h.User.List)
			users.GET("/:id", h.User.Get)
			users.PUT("/:id", h.User.Update)
			users.DELETE("/:id", h.User.Delete)
		}
	}

	return r
}
