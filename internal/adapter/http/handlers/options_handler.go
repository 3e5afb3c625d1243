package handlers

import (
	"net/http"
	"strings"
	response "valuation_report/internal/adapter/http/dto/response"
	"valuation_report/internal/usecase"

	"github.com/gin-gonic/gin"
)

// OptionsHandler serves dropdown values for the valuation form.

type OptionsHandler struct {
	usecase usecase.IOptionsUseCase
}

func NewOptionsHandler(uc usecase.IOptionsUseCase) *OptionsHandler {
	return &OptionsHandler{usecase: uc}
}

// GetOptions godoc
// @Summary      Dropdown options
// @Tags         options
// @Produce      json
// @Param        category  path      string  true  "banks|cities|dsas|engineers"
// @Success      200       {object}  response.OptionsResponse
// @Failure      400       {object}  pkg.HTTPError
// @Router       /options/{category} [get]
func (h *OptionsHandler) GetOptions(c *gin.Context) {
	category := strings.ToLower(strings.TrimSpace(c.Param("category")))
	values, err := h.usecase.GetOptions(c.Request.Context(), category)
	if err != nil {
		appErr := mapValuationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.OptionsResponse{Category: category, Values: values})
}
