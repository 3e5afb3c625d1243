package handlers

import (
	"fmt"
	"net/http"
	request "valuation_report/internal/adapter/http/dto/request"
	"valuation_report/internal/usecase"

	"github.com/gin-gonic/gin"
)

const pdfContentType = "application/pdf"

// ReportHandler serves PDF reports of valuations.

type ReportHandler struct {
	usecase usecase.IValuationUseCase
}

func NewReportHandler(uc usecase.IValuationUseCase) *ReportHandler {
	return &ReportHandler{usecase: uc}
}

// GetReport godoc
// @Summary      Download the valuation report
// @Tags         reports
// @Produce      application/pdf
// @Param        id   path  string  true  "Valuation ID"
// @Success      200  {file}    binary
// @Failure      404  {object}  pkg.HTTPError
// @Failure      502  {object}  pkg.HTTPError
// @Router       /valuations/{id}/report [get]
func (h *ReportHandler) GetReport(c *gin.Context) {
	id := c.Param("id")
	pdf, err := h.usecase.GenerateReport(c.Request.Context(), id, nil)
	if err != nil {
		appErr := mapValuationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	writePDF(c, id, pdf)
}

// PreviewReport godoc
// @Summary      Render a report from an unsaved draft
// @Description  When the draft id exists in storage the stored record is rendered instead.
// @Tags         reports
// @Accept       json
// @Produce      application/pdf
// @Param        payload  body  request.ReportPreviewRequest  true  "Draft"
// @Success      200  {file}    binary
// @Failure      502  {object}  pkg.HTTPError
// @Router       /valuations/report/preview [post]
func (h *ReportHandler) PreviewReport(c *gin.Context) {
	var payload request.ReportPreviewRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidValuationPayload.HTTPStatus, errInvalidValuationPayload.ToHTTPError())
		return
	}
	draft := payload.ToRecord()

	pdf, err := h.usecase.GenerateReport(c.Request.Context(), draft.ID, &draft)
	if err != nil {
		appErr := mapValuationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	name := draft.ID
	if name == "" {
		name = "draft"
	}
	writePDF(c, name, pdf)
}

func writePDF(c *gin.Context, name string, pdf []byte) {
	c.Header("Content-Disposition", fmt.Sprintf("inline; filename=%q", "valuation-"+name+".pdf"))
	c.Data(http.StatusOK, pdfContentType, pdf)
}
