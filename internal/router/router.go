package router

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/mishasvintus/product_review_service/internal/handler"
)

// SetupRoutes configures all API routes.
func SetupRoutes(
	log *slog.Logger,
	userHandler *handler.UserHandler,
	documentHandler *handler.DocumentHandler,
	versionHandler *handler.VersionHandler,
	statsHandler *handler.StatsHandler,
) *gin.Engine {
	handler.RegisterValidators()

	r := gin.New()
	r.Use(handler.RequestLogger(log), handler.Recovery(log))

	// User endpoints
	r.POST("/users/add", userHandler.AddUser)
	r.GET("/users/get", userHandler.GetUser)
	r.POST("/users/setIsActive", userHandler.SetIsActive)
	r.GET("/users/getReview", userHandler.GetReview)

	// Document endpoints
	r.POST("/documents/create", documentHandler.CreateDocument)
	r.GET("/documents/get", documentHandler.GetDocument)
	r.GET("/documents/list", documentHandler.ListDocuments)
	r.POST("/documents/assignReviewer", documentHandler.AssignReviewer)
	r.POST("/documents/autoAssign", documentHandler.AutoAssign)
	r.POST("/documents/submit", documentHandler.SubmitForReview)
	r.POST("/documents/approve", documentHandler.Approve)
	r.POST("/documents/reject", documentHandler.Reject)
	r.POST("/documents/batchApprove", documentHandler.BatchApprove)

	// Version endpoints
	r.POST("/versions/create", versionHandler.CreateVersion)
	r.GET("/versions/get", versionHandler.GetVersion)
	r.GET("/versions/list", versionHandler.ListVersions)
	r.POST("/versions/updateReleaseDate", versionHandler.UpdateReleaseDate)
	r.GET("/versions/schedule", versionHandler.PreviewSchedule)

	// Statistics endpoint
	r.GET("/stats", statsHandler.GetStatistics)

	return r
}
