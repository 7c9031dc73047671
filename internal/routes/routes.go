package routes

import (
	"healthcare-file-viewer/internal/config"
	"healthcare-file-viewer/internal/handlers"
	"healthcare-file-viewer/internal/middleware"
	"healthcare-file-viewer/internal/models"
	"healthcare-file-viewer/internal/observability"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// APIPrefix is the base path of every JSON and preview route.
const APIPrefix = "/api/v1"

// Dependencies bundles what the route handlers need.
type Dependencies struct {
	Store   models.RecordStore
	Log     *observability.Logger
	Metrics *observability.Metrics
}

// NewRouter builds the gin engine with middleware and routes.
func NewRouter(cfg *config.Config, deps Dependencies) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(deps.Log))
	router.Use(middleware.BodyLimit(int64(cfg.MaxUploadMB) << 20))

	// Configure CORS
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.Origin}
	corsConfig.AllowCredentials = true
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
	router.Use(cors.New(corsConfig))

	SetupRoutes(router, cfg, deps)
	return router
}

// SetupRoutes configures the application routes.
func SetupRoutes(router *gin.Engine, cfg *config.Config, deps Dependencies) {
	medicalRecordHandler := handlers.NewMedicalRecordHandler(deps.Store, deps.Log)
	previewHandler := handlers.NewPreviewHandler(deps.Store, deps.Log, deps.Metrics, APIPrefix)

	api := router.Group(APIPrefix)
	{
		// Stateless previews for clients that hold their own descriptors
		api.POST("/previews", previewHandler.RenderPreview)

		medicalRecordRoutes := api.Group("/medical-records")
		{
			medicalRecordRoutes.POST("", medicalRecordHandler.CreateMedicalRecord)
			medicalRecordRoutes.GET("/patient/:patientId", medicalRecordHandler.GetMedicalRecordsForPatient)
			medicalRecordRoutes.GET("/:id", medicalRecordHandler.GetMedicalRecordByID)
			medicalRecordRoutes.POST("/:id/attachments", medicalRecordHandler.UploadMedicalRecordAttachment)

			// Preview modal and its stubbed actions
			medicalRecordRoutes.GET("/:id/preview", previewHandler.PreviewRecord)
			medicalRecordRoutes.POST("/:id/preview/close", previewHandler.ClosePreview)
			medicalRecordRoutes.POST("/:id/download", previewHandler.Download)
			medicalRecordRoutes.POST("/:id/download-bill", previewHandler.DownloadBill)
		}
	}

	router.GET(cfg.MetricsPath, gin.WrapH(deps.Metrics.Handler()))

	// Simple health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "UP"})
	})
}
