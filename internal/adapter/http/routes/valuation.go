package routes

import (
	"valuation_report/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPing       = "/ping"
	PathValuations = "/valuations"
	PathOptions    = "/options"
)

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET(PathPing, handlers.Ping)
}

func addValuationRoutes(rg *gin.RouterGroup, valuationHandler *handlers.ValuationHandler, reportHandler *handlers.ReportHandler) {
	valuations := rg.Group(PathValuations)
	{
		valuations.POST("", valuationHandler.CreateValuation)
		valuations.GET("", valuationHandler.ListValuations)
		valuations.POST("/report/preview", reportHandler.PreviewReport)

		valuations.GET("/:id", valuationHandler.GetValuation)
		valuations.PUT("/:id", valuationHandler.SaveValuation)
		valuations.POST("/:id/fields", valuationHandler.PreviewField)
		valuations.GET("/:id/permissions", valuationHandler.GetPermissions)
		valuations.GET("/:id/report", reportHandler.GetReport)

		// Manager/admin review.
		valuations.PATCH("/:id/approve", valuationHandler.ApproveValuation)
		valuations.PATCH("/:id/reject", valuationHandler.RejectValuation)
		valuations.PATCH("/:id/rework", valuationHandler.ReworkValuation)
	}
}

func addOptionsRoutes(rg *gin.RouterGroup, optionsHandler *handlers.OptionsHandler) {
	rg.GET(PathOptions+"/:category", optionsHandler.GetOptions)
}
