package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/export-go/internal/calculator"
	"github.com/guttosm/export-go/internal/domain/dto"
	"github.com/guttosm/export-go/internal/domain/model"
	"github.com/guttosm/export-go/internal/i18n"
	"github.com/guttosm/export-go/internal/middleware"
	"github.com/guttosm/export-go/internal/service"
)

// CalculatorHandler serves the landed cost calculator API.
type CalculatorHandler struct {
	calculator     service.Calculator
	loggingService service.LoggingService
}

// NewCalculatorHandler creates a calculator handler. loggingService may be nil.
func NewCalculatorHandler(calc service.Calculator, loggingService service.LoggingService) *CalculatorHandler {
	return &CalculatorHandler{
		calculator:     calc,
		loggingService: loggingService,
	}
}

// Calculate handles POST /api/calculate requests.
//
// @Summary      Calculate landed cost
// @Description  Computes base cost, CIF, duty, VAT, total landed cost and cost per unit. Every field accepts a number or a numeric string; empty fields count as zero. All invalid fields are reported together in details. Supports idempotency via Idempotency-Key header.
// @Tags         Calculator
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key header string false "Idempotency key for request deduplication"
// @Param        request body dto.CalculateRequest true "Calculator input"
// @Success      200 {object} dto.SuccessResponse{data=dto.CalculateResponse} "Successful calculation"
// @Failure      400 {object} dto.ErrorResponse "Bad request - malformed JSON"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid API key"
// @Failure      422 {object} dto.ErrorResponse "Validation failed - details lists every invalid field"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     ApiKeyAuth
// @Router       /api/calculate [post]
func (h *CalculatorHandler) Calculate(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BindJSON[dto.CalculateRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	in := req.Input()
	resp, err := h.calculator.Calculate(in)
	if err != nil {
		var verrs calculator.ValidationErrors
		if errors.As(err, &verrs) {
			middleware.AuditLog(h.loggingService, c, model.ActionCalculate, "Calculation rejected", map[string]interface{}{
				"invalid_fields": verrs.Details(),
			})
			builder.ErrorWithDetails(http.StatusUnprocessableEntity, i18n.ErrKeyValidationCalculation, verrs.Details(), nil)
			return
		}
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	middleware.AuditLog(h.loggingService, c, model.ActionCalculate, "Calculation completed", map[string]interface{}{
		"quantity": resp.Result.Quantity,
		"total":    resp.Formatted[calculator.OutputTotalCost],
		"currency": resp.Currency,
	})
	builder.SuccessOK(resp)
}
