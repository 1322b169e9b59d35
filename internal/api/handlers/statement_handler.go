package handlers

import (
	"time"

	"ledgerlens/internal/dto"
	"ledgerlens/internal/models"
	"ledgerlens/internal/repository"
	"ledgerlens/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type StatementHandler struct {
	pipeline     *service.ExtractionService
	transactions *repository.TransactionRepository
	maxUpload    int64
	logger       *zap.Logger
}

func NewStatementHandler(
	pipeline *service.ExtractionService,
	transactions *repository.TransactionRepository,
	maxUpload int64,
	logger *zap.Logger,
) *StatementHandler {
	return &StatementHandler{
		pipeline:     pipeline,
		transactions: transactions,
		maxUpload:    maxUpload,
		logger:       logger,
	}
}

// Upload godoc
// @Summary Extract transactions from a bank statement image
// @Description Upload a bank statement (multipart field "statement", or JSON with image_url/image_base64) and extract its transactions. An empty transaction list is a valid result.
// @Tags statements
// @Accept multipart/form-data
// @Produce json
// @Param statement formData file false "Statement image (JPEG, PNG or PDF)"
// @Success 200 {object} dto.ProcessStatementResponse
// @Failure 400 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /bank-statements [post]
func (h *StatementHandler) Upload(c *fiber.Ctx) error {
	doc, err := readDocument(c, "statement", h.maxUpload)
	if err != nil {
		return err
	}

	result, err := h.pipeline.ProcessStatement(c.Context(), doc)
	if err != nil {
		h.logger.Error("Statement extraction failed", zap.Error(err))
		return c.Status(statusFor(err)).JSON(fiber.Map{"error": err.Error()})
	}

	responses := make([]dto.TransactionResponse, len(result.Transactions))
	for i, tx := range result.Transactions {
		responses[i] = toTransactionResponse(tx)
	}

	return c.JSON(dto.ProcessStatementResponse{
		Transactions:     responses,
		Count:            len(responses),
		Skipped:          result.Skipped,
		Persisted:        result.Persisted,
		PersistenceError: result.PersistenceError,
	})
}

// ListTransactions godoc
// @Summary List stored transactions
// @Tags statements
// @Produce json
// @Param limit query int false "Limit" default(50)
// @Param offset query int false "Offset" default(0)
// @Success 200 {array} dto.TransactionResponse
// @Failure 503 {object} map[string]string
// @Router /transactions [get]
func (h *StatementHandler) ListTransactions(c *fiber.Ctx) error {
	if h.transactions == nil {
		return storageDisabled(c)
	}

	limit := c.QueryInt("limit", 50)
	offset := c.QueryInt("offset", 0)

	transactions, err := h.transactions.ListRecent(c.Context(), limit, offset)
	if err != nil {
		h.logger.Error("Failed to list transactions", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to list transactions"})
	}

	responses := make([]dto.TransactionResponse, len(transactions))
	for i, tx := range transactions {
		responses[i] = toTransactionResponse(tx)
	}
	return c.JSON(responses)
}

func toTransactionResponse(tx *models.Transaction) dto.TransactionResponse {
	return dto.TransactionResponse{
		ID:          tx.ID.String(),
		Date:        tx.Date,
		Type:        string(tx.Type),
		Description: tx.Description,
		Amount:      tx.Amount.StringFixed(2),
		CreatedAt:   tx.CreatedAt.Format(time.RFC3339),
	}
}
