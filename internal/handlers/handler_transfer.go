package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	portssvc "github.com/manoja-HA/nexus-banking-platform/internal/core/ports/services"
	"github.com/manoja-HA/nexus-banking-platform/internal/dto"
	"github.com/manoja-HA/nexus-banking-platform/internal/middleware"
)

// transferHandler handles HTTP requests related to fund transfers.
type transferHandler struct {
	transferService portssvc.TransferSvcFacade
}

// newTransferHandler creates a new transferHandler.
func newTransferHandler(ts portssvc.TransferSvcFacade) *transferHandler {
	return &transferHandler{
		transferService: ts,
	}
}

// registerTransferRoutes registers routes related to transfers.
func registerTransferRoutes(rg *gin.RouterGroup, transferService portssvc.TransferSvcFacade) {
	h := newTransferHandler(transferService)

	transfers := rg.Group("/transfers")
	{
		transfers.POST("", h.createTransfer)
		transfers.GET("/:id", h.getTransfer)
		transfers.GET("/:id/history", h.getAccountHistory)
	}
}

// createTransfer godoc
// @Summary Transfer funds between accounts
// @Description Moves funds from a source account to a destination account atomically. Repeating a request with the same idempotency key returns the originally recorded transfer.
// @Tags transfers
// @Accept  json
// @Produce  json
// @Param   transfer body dto.CreateTransferRequest true "Transfer details"
// @Success 201 {object} dto.TransferDetailsResponse
// @Failure 400 {object} map[string]string "Invalid amount, same-account transfer, inactive account, or insufficient funds"
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 500 {object} map[string]string "Failed to create transfer"
// @Router /transfers [post]
func (h *transferHandler) createTransfer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateTransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateTransfer", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid request format: " + err.Error()})
		return
	}

	transfer, err := h.transferService.CreateTransfer(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTransferDetailsResponse(transfer))
}

// getTransfer godoc
// @Summary Get a transfer by ID
// @Description Retrieves details for a specific transfer by its ID
// @Tags transfers
// @Produce  json
// @Param   id path string true "Transfer ID"
// @Success 200 {object} dto.TransferDetailsResponse
// @Failure 404 {object} map[string]string "Transfer not found"
// @Failure 500 {object} map[string]string "Failed to retrieve transfer"
// @Router /transfers/{id} [get]
func (h *transferHandler) getTransfer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	transferID := c.Param("id")

	transfer, err := h.transferService.GetTransferByID(c.Request.Context(), transferID)
	if err != nil {
		respondError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTransferDetailsResponse(transfer))
}

// getAccountHistory godoc
// @Summary Get transfer history for an account
// @Description Retrieves transfers where the account is the source or destination, newest first
// @Tags transfers
// @Produce  json
// @Param   id path string true "Account ID"
// @Param   limit query int false "Page size" default(100)
// @Param   offset query int false "Rows to skip" default(0)
// @Success 200 {array} dto.TransferDetailsResponse
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 500 {object} map[string]string "Failed to retrieve history"
// @Router /transfers/{id}/history [get]
func (h *transferHandler) getAccountHistory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID := c.Param("id")

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "100"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid limit parameter"})
		return
	}
	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid offset parameter"})
		return
	}

	transfers, err := h.transferService.GetAccountTransferHistory(c.Request.Context(), accountID, limit, offset)
	if err != nil {
		respondError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTransferDetailsResponses(transfers))
}
