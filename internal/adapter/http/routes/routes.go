package routes

import (
	"context"
	"net/http"
	"strconv"

	_ "valuation_report/docs" // generated by swag init
	"valuation_report/internal/adapter/http/handlers"
	"valuation_report/internal/adapter/http/middleware"
	repository2 "valuation_report/internal/adapter/persistence/repository"
	"valuation_report/internal/infrastructure/config"
	"valuation_report/internal/infrastructure/database"
	"valuation_report/internal/infrastructure/logger"
	"valuation_report/internal/infrastructure/report"
	"valuation_report/internal/infrastructure/storage"
	"valuation_report/internal/usecase"
	"valuation_report/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Handlers groups everything the router serves.
type Handlers struct {
	Valuation *handlers.ValuationHandler
	Report    *handlers.ReportHandler
	Options   *handlers.OptionsHandler
}

// Run will start the server
func Run(cfg *config.Config) {
	if err := cfg.Validate(); err != nil {
		logger.L().Fatal("[app][routes] invalid configuration", zap.Error(err))
	}

	ctx := context.Background()
	h, err := buildHandlers(ctx, cfg)
	if err != nil {
		logger.L().Fatal("[app][routes] failed wiring dependencies", zap.Error(err))
	}

	router := NewRouter(cfg, h)
	logger.L().Info("[app][routes] listening", zap.Int("port", cfg.Port), zap.String("attachment_driver", cfg.AttachmentDriver))
	if err := router.Run(":" + strconv.Itoa(cfg.Port)); err != nil {
		logger.L().Fatal("[app][routes] failed to startup the application", zap.Error(err))
	}
}

// NewRouter registers middlewares, swagger, static uploads and the /v1 API.
func NewRouter(cfg *config.Config, h Handlers) *gin.Engine {
	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	setMiddlewares(router, cfg)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	if cfg.AttachmentDriver != config.AttachmentDriverS3 {
		router.Static(storage.UploadsRoute, cfg.UploadDir)
	}

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addValuationRoutes(v1, h.Valuation, h.Report)
	addOptionsRoutes(v1, h.Options)
	return router
}

func buildHandlers(ctx context.Context, cfg *config.Config) (Handlers, error) {
	ddb, err := database.ConnectDynamoDB(ctx, cfg)
	if err != nil {
		return Handlers{}, err
	}

	valuationRepo := repository2.NewValuationDynamoRepository(ddb, cfg.ValuationsTable)
	optionsRepo := repository2.NewOptionsDynamoRepository(ddb, cfg.OptionsTable)

	var store interfaces.IAttachmentStore
	switch cfg.AttachmentDriver {
	case config.AttachmentDriverS3:
		s3Client, err := database.ConnectS3(ctx, cfg)
		if err != nil {
			return Handlers{}, err
		}
		store = storage.NewS3AttachmentStore(s3Client, cfg.S3Bucket, cfg.AWSRegion, cfg.PublicBaseURL)
	default:
		store = storage.NewLocalAttachmentStore(cfg.UploadDir, cfg.PublicBaseURL)
	}

	if cfg.IsDevelopment() {
		seedOptions(ctx, optionsRepo)
	}

	valuationUseCase := usecase.NewValuationUseCase(valuationRepo, store, report.NewPDFRenderer(""), cfg.RepositoryTimeout)
	optionsUseCase := usecase.NewOptionsUseCase(optionsRepo, cfg.RepositoryTimeout)

	return Handlers{
		Valuation: handlers.NewValuationHandler(valuationUseCase),
		Report:    handlers.NewReportHandler(valuationUseCase),
		Options:   handlers.NewOptionsHandler(optionsUseCase),
	}, nil
}

func setMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.L().Error("[app][routes] recovered from panic", zap.Any("panic", recovered), zap.String("path", c.Request.URL.Path))
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
	router.Use(middleware.Actor(cfg.JWTSecret))
}
