package router

import (
	"github.com/gin-gonic/gin"

	"github.com/Alaswadi/cupperly-sub000/internal/handler"
	"github.com/Alaswadi/cupperly-sub000/internal/middleware"
	"github.com/Alaswadi/cupperly-sub000/internal/service"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	tenantSvc service.TenantService,
	corsOrigins []string,
	tenantH *handler.TenantHandler,
	sessionH *handler.SessionHandler,
	sampleH *handler.SampleHandler,
	gradingH *handler.GradingHandler,
	scoreH *handler.ScoreHandler,
	attachmentH *handler.AttachmentHandler,
	reportH *handler.ReportHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(corsOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	v1 := r.Group("/api/v1")

	// Admin routes - tenant management, not tenant-scoped
	admin := v1.Group("/admin")
	admin.POST("/tenants", tenantH.Create)
	admin.GET("/tenants", tenantH.List)
	admin.GET("/tenants/:id", tenantH.GetByID)
	admin.GET("/tenants/slug/:slug", tenantH.GetBySlug)
	admin.PUT("/tenants/:id", tenantH.Update)
	admin.DELETE("/tenants/:id", tenantH.Delete)

	// Scoped routes - resolve the tenant from X-Tenant-ID
	scoped := v1.Group("")
	scoped.Use(middleware.TenantResolver(tenantSvc))

	// Cupping sessions
	sessions := scoped.Group("/sessions")
	sessions.POST("", sessionH.Create)
	sessions.GET("", sessionH.List)
	sessions.GET("/:id", sessionH.GetByID)
	sessions.PUT("/:id", sessionH.Update)
	sessions.DELETE("/:id", sessionH.Delete)
	sessions.POST("/:id/samples", sampleH.Create)
	sessions.GET("/:id/samples", sampleH.ListBySession)
	sessions.GET("/:id/report", reportH.SessionReport)
	sessions.GET("/:id/report/export", reportH.Export)

	// Samples and their grading, scores, and attachments
	samples := scoped.Group("/samples")
	samples.GET("/:id", sampleH.GetByID)
	samples.PUT("/:id", sampleH.Update)
	samples.DELETE("/:id", sampleH.Delete)
	samples.GET("/:id/grading", gradingH.Get)
	samples.POST("/:id/grading", gradingH.Create)
	samples.PUT("/:id/grading", gradingH.Update)
	samples.DELETE("/:id/grading", gradingH.Delete)
	samples.POST("/:id/grading/certify", gradingH.Certify)
	samples.GET("/:id/scores", scoreH.ListBySample)
	samples.POST("/:id/scores", scoreH.Create)
	samples.POST("/:id/attachments", attachmentH.Upload)
	samples.GET("/:id/attachments", attachmentH.ListBySample)

	// Cupping scores addressed directly
	scores := scoped.Group("/scores")
	scores.GET("/:id", scoreH.GetByID)
	scores.PUT("/:id", scoreH.Update)
	scores.DELETE("/:id", scoreH.Delete)

	// Attachments addressed directly
	attachments := scoped.Group("/attachments")
	attachments.GET("/:id", attachmentH.GetByID)
	attachments.DELETE("/:id", attachmentH.Delete)

	return r
}
