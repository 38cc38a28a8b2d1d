package v1

import (
	"net/http"

	"github.com/flexprice/taxengine/internal/api/dto"
	ierr "github.com/flexprice/taxengine/internal/errors"
	"github.com/flexprice/taxengine/internal/logger"
	"github.com/flexprice/taxengine/internal/service"
	"github.com/gin-gonic/gin"
)

type TaxHandler struct {
	service service.TaxCalculationService
	logger  *logger.Logger
}

func NewTaxHandler(service service.TaxCalculationService, logger *logger.Logger) *TaxHandler {
	return &TaxHandler{
		service: service,
		logger:  logger,
	}
}

// @Summary Calculate taxes
// @Description Compute DPP, PPN, PPh and the grand total for one sales or purchase document
// @Tags Tax
// @Accept json
// @Produce json
// @Param request body dto.CalculateTaxRequest true "Calculation input"
// @Success 200 {object} dto.CalculateTaxResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /tax/calculate [post]
func (h *TaxHandler) Calculate(c *gin.Context) {
	var req dto.CalculateTaxRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.Calculate(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Calculate taxes in batch
// @Description Compute several independent calculations. Nothing is computed when any item is invalid.
// @Tags Tax
// @Accept json
// @Produce json
// @Param request body dto.CalculateTaxBatchRequest true "Calculation inputs"
// @Success 200 {object} dto.CalculateTaxBatchResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /tax/calculate/batch [post]
func (h *TaxHandler) CalculateBatch(c *gin.Context) {
	var req dto.CalculateTaxBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.CalculateBatch(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Preview a custom withholding rate
// @Description Show how free text is read as a custom PPh percentage
// @Tags Tax
// @Produce json
// @Param value query string false "Rate text, e.g. 1,5"
// @Success 200 {object} dto.CustomRatePreviewResponse
// @Router /tax/custom-rate [get]
func (h *TaxHandler) PreviewCustomRate(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.PreviewCustomRate(c.Request.Context(), c.Query("value")))
}
