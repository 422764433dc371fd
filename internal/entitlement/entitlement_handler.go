package entitlement

import (
	"net/http"
	"strconv"

	"go-leave/internal/shared/apperror"
	"go-leave/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("entitlement.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("entitlement.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("entitlement request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// GetAll lists ledger rows. Regular employees see their own; an explicit
// employee_id query param is honored for HR/admin roles.
func (h *Handler) GetAll(c *gin.Context) {
	employeeID := c.GetString("employee_id")
	role := c.GetString("role")
	if requested := c.Query("employee_id"); requested != "" && (role == "hr" || role == "admin") {
		employeeID = requested
	}

	var year *int
	if raw := c.Query("year"); raw != "" {
		y, err := strconv.Atoi(raw)
		if err != nil {
			response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "year must be a number", nil)
			return
		}
		year = &y
	}

	resp, err := h.service.ListByEmployee(c.Request.Context(), employeeID, year)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

// RunCarryOver triggers the idempotent year-end carry-over batch.
func (h *Handler) RunCarryOver(c *gin.Context) {
	var req CarryOverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		mapped := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, mapped.Status, mapped.Code, mapped.Message, mapped.Details)
		return
	}

	applied, err := h.service.RunYearEndCarryOver(c.Request.Context(), req.FromYear)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, CarryOverResponse{
		FromYear: req.FromYear,
		ToYear:   req.FromYear + 1,
		Applied:  applied,
	}, nil)
}
