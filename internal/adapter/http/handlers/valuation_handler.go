package handlers

import (
	"errors"
	"net/http"
	request "valuation_report/internal/adapter/http/dto/request"
	response "valuation_report/internal/adapter/http/dto/response"
	"valuation_report/internal/adapter/http/middleware"
	"valuation_report/internal/domain/validation"
	"valuation_report/internal/domain/workflow"
	"valuation_report/internal/infrastructure/logger"
	"valuation_report/internal/usecase"
	"valuation_report/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var (
	errInvalidValuationPayload = pkg.NewDomainErrorSimple("INVALID_VALUATION_INPUT", "Invalid valuation payload", http.StatusBadRequest)
)

// ValuationHandler handles HTTP requests for valuation reports.

type ValuationHandler struct {
	usecase usecase.IValuationUseCase
}

func NewValuationHandler(uc usecase.IValuationUseCase) *ValuationHandler {
	return &ValuationHandler{usecase: uc}
}

// CreateValuation godoc
// @Summary      Start a valuation
// @Tags         valuations
// @Accept       json
// @Produce      json
// @Param        payload  body      request.CreateValuationRequest  false  "Initial fields"
// @Success      201      {object}  response.ValuationResponse
// @Failure      403      {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /valuations [post]
func (h *ValuationHandler) CreateValuation(c *gin.Context) {
	var payload request.CreateValuationRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(errInvalidValuationPayload.HTTPStatus, errInvalidValuationPayload.ToHTTPError())
			return
		}
	}

	created, err := h.usecase.CreateValuation(c.Request.Context(), middleware.ActorFrom(c), payload.Fields)
	if err != nil {
		h.fail(c, "create", "", err)
		return
	}
	c.JSON(http.StatusCreated, response.FromValuation(created))
}

// ListValuations godoc
// @Summary      List valuations
// @Tags         valuations
// @Produce      json
// @Param        status  query     string  false  "pending|on-progress|approved|rejected|rework"
// @Success      200     {array}   response.ValuationResponse
// @Router       /valuations [get]
func (h *ValuationHandler) ListValuations(c *gin.Context) {
	items, err := h.usecase.ListValuations(c.Request.Context(), c.Query("status"))
	if err != nil {
		h.fail(c, "list", "", err)
		return
	}
	c.JSON(http.StatusOK, response.FromValuations(items))
}

// GetValuation godoc
// @Summary      Get a valuation
// @Tags         valuations
// @Produce      json
// @Param        id   path      string  true  "Valuation ID"
// @Success      200  {object}  response.ValuationResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /valuations/{id} [get]
func (h *ValuationHandler) GetValuation(c *gin.Context) {
	id := c.Param("id")
	v, err := h.usecase.GetValuation(c.Request.Context(), id)
	if err != nil {
		h.fail(c, "get", id, err)
		return
	}
	c.JSON(http.StatusOK, response.FromValuation(v))
}

// SaveValuation godoc
// @Summary      Save a valuation form
// @Description  Applies field changes, uploads attachments and moves the record to on-progress.
// @Tags         valuations
// @Accept       json
// @Produce      json
// @Param        id       path      string                        true  "Valuation ID"
// @Param        payload  body      request.SaveValuationRequest  true  "Changes"
// @Success      200      {object}  response.ValuationResponse
// @Failure      403      {object}  pkg.HTTPError
// @Failure      422      {object}  pkg.HTTPError
// @Failure      502      {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /valuations/{id} [put]
func (h *ValuationHandler) SaveValuation(c *gin.Context) {
	id := c.Param("id")
	var payload request.SaveValuationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidValuationPayload.HTTPStatus, errInvalidValuationPayload.ToHTTPError())
		return
	}
	in, err := payload.ToInput()
	if err != nil {
		appErr := errInvalidValuationPayload.WithDetails(err.Error())
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	saved, err := h.usecase.SaveValuation(c.Request.Context(), id, middleware.ActorFrom(c), in)
	if err != nil {
		h.fail(c, "save", id, err)
		return
	}
	c.JSON(http.StatusOK, response.FromValuation(saved))
}

// PreviewField godoc
// @Summary      Preview a field change
// @Description  Returns the record with derived fields recomputed; nothing is stored.
// @Tags         valuations
// @Accept       json
// @Produce      json
// @Param        id       path      string                      true  "Valuation ID"
// @Param        payload  body      request.FieldChangeRequest  true  "Field change"
// @Success      200      {object}  response.ValuationResponse
// @Failure      403      {object}  pkg.HTTPError
// @Failure      404      {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /valuations/{id}/fields [post]
func (h *ValuationHandler) PreviewField(c *gin.Context) {
	id := c.Param("id")
	var payload request.FieldChangeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidValuationPayload.HTTPStatus, errInvalidValuationPayload.ToHTTPError())
		return
	}

	v, err := h.usecase.PreviewFieldChange(c.Request.Context(), id, middleware.ActorFrom(c), payload.Key, payload.Value)
	if err != nil {
		h.fail(c, "preview", id, err)
		return
	}
	c.JSON(http.StatusOK, response.FromValuation(v))
}

// ApproveValuation godoc
// @Summary      Approve a valuation
// @Tags         valuations
// @Accept       json
// @Produce      json
// @Param        id       path      string                        true   "Valuation ID"
// @Param        payload  body      request.ManagerActionRequest  false  "Feedback"
// @Success      200      {object}  response.ValuationResponse
// @Failure      403      {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /valuations/{id}/approve [patch]
func (h *ValuationHandler) ApproveValuation(c *gin.Context) {
	h.managerAction(c, string(workflow.ActionApprove))
}

// RejectValuation godoc
// @Summary      Reject a valuation
// @Tags         valuations
// @Accept       json
// @Produce      json
// @Param        id       path      string                        true   "Valuation ID"
// @Param        payload  body      request.ManagerActionRequest  false  "Feedback"
// @Success      200      {object}  response.ValuationResponse
// @Failure      403      {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /valuations/{id}/reject [patch]
func (h *ValuationHandler) RejectValuation(c *gin.Context) {
	h.managerAction(c, string(workflow.ActionReject))
}

// ReworkValuation godoc
// @Summary      Send a valuation back for rework
// @Tags         valuations
// @Accept       json
// @Produce      json
// @Param        id       path      string                        true   "Valuation ID"
// @Param        payload  body      request.ManagerActionRequest  false  "Feedback"
// @Success      200      {object}  response.ValuationResponse
// @Failure      403      {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /valuations/{id}/rework [patch]
func (h *ValuationHandler) ReworkValuation(c *gin.Context) {
	h.managerAction(c, string(workflow.ActionRework))
}

func (h *ValuationHandler) managerAction(c *gin.Context, action string) {
	id := c.Param("id")
	var payload request.ManagerActionRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(errInvalidValuationPayload.HTTPStatus, errInvalidValuationPayload.ToHTTPError())
			return
		}
	}

	v, err := h.usecase.ApplyManagerAction(c.Request.Context(), id, middleware.ActorFrom(c), action, payload.Feedback)
	if err != nil {
		h.fail(c, action, id, err)
		return
	}
	c.JSON(http.StatusOK, response.FromValuation(v))
}

// GetPermissions godoc
// @Summary      Caller permissions on a valuation
// @Tags         valuations
// @Produce      json
// @Param        id   path      string  true  "Valuation ID"
// @Success      200  {object}  usecase.Permissions
// @Security     Bearer
// @Router       /valuations/{id}/permissions [get]
func (h *ValuationHandler) GetPermissions(c *gin.Context) {
	id := c.Param("id")
	p, err := h.usecase.Permissions(c.Request.Context(), id, middleware.ActorFrom(c))
	if err != nil {
		h.fail(c, "permissions", id, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *ValuationHandler) fail(c *gin.Context, op, id string, err error) {
	appErr := mapValuationError(err)
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		logger.L().Error("[valuation][handler] "+op+" failed", zap.String("valuation_id", id), zap.Error(err))
	} else {
		logger.L().Info("[valuation][handler] "+op+" rejected", zap.String("valuation_id", id), zap.String("code", appErr.Code))
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapValuationError(err error) *pkg.AppError {
	var perr *workflow.PermissionError
	var verr *validation.ValidationError
	var uerr *usecase.UpstreamError

	switch {
	case errors.Is(err, usecase.ErrInvalidValuationID), errors.Is(err, usecase.ErrInvalidValuationStatus):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidManagerAction):
		return pkg.NewDomainErrorSimple("INVALID_ACTION", "Invalid manager action", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUnknownOptionsCategory):
		return pkg.NewDomainErrorSimple("UNKNOWN_OPTIONS_CATEGORY", "Unknown options category", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrValuationNotFound):
		return pkg.NewDomainErrorSimple("VALUATION_NOT_FOUND", "Valuation not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrUnsyncedAttachment):
		return pkg.NewDomainErrorSimple("UNSYNCED_ATTACHMENT", "Attachments were not uploaded", http.StatusConflict)
	case errors.As(err, &perr):
		return pkg.NewDomainError("PERMISSION_DENIED", "Action not allowed", err, http.StatusForbidden).WithDetails(perr.Error())
	case errors.As(err, &verr):
		return pkg.NewDomainError("VALIDATION_FAILED", "Validation failed", err, http.StatusUnprocessableEntity).WithDetails(verr.Violations)
	case errors.As(err, &uerr):
		return pkg.NewDomainError("UPSTREAM_ERROR", "A dependent service failed", err, http.StatusBadGateway).WithDetails(uerr.Op)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
