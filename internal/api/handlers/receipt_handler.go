package handlers

import (
	"errors"
	"time"

	"ledgerlens/internal/dto"
	"ledgerlens/internal/models"
	"ledgerlens/internal/repository"
	"ledgerlens/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type ReceiptHandler struct {
	pipeline  *service.ExtractionService
	relief    *service.ReliefService
	receipts  *repository.ReceiptRepository
	maxUpload int64
	logger    *zap.Logger
}

// NewReceiptHandler wires the extraction pipeline and the optional receipt
// store. receipts may be nil when the database is not configured; the CRUD
// endpoints then answer 503 while extraction keeps working.
func NewReceiptHandler(
	pipeline *service.ExtractionService,
	relief *service.ReliefService,
	receipts *repository.ReceiptRepository,
	maxUpload int64,
	logger *zap.Logger,
) *ReceiptHandler {
	return &ReceiptHandler{
		pipeline:  pipeline,
		relief:    relief,
		receipts:  receipts,
		maxUpload: maxUpload,
		logger:    logger,
	}
}

// Upload godoc
// @Summary Extract data from a receipt image
// @Description Upload a receipt (multipart field "receipt", or JSON with image_url/image_base64) and extract date, merchant, total amount and description. Add classify=true to also classify the expense into a tax relief category.
// @Tags receipts
// @Accept multipart/form-data
// @Produce json
// @Param receipt formData file false "Receipt image (JPEG, PNG or PDF)"
// @Param classify query bool false "Classify into tax relief category"
// @Success 200 {object} dto.ProcessReceiptResponse
// @Failure 400 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /receipts [post]
func (h *ReceiptHandler) Upload(c *fiber.Ctx) error {
	doc, err := readDocument(c, "receipt", h.maxUpload)
	if err != nil {
		return err
	}

	result, err := h.pipeline.ProcessReceipt(c.Context(), doc)
	if err != nil {
		h.logger.Error("Receipt extraction failed", zap.Error(err))
		return c.Status(statusFor(err)).JSON(fiber.Map{"error": err.Error()})
	}

	if c.QueryBool("classify") {
		category, err := h.relief.Classify(
			c.Context(),
			result.Receipt.MerchantName,
			result.Receipt.Description,
			result.Receipt.TotalAmount,
		)
		if err != nil {
			h.logger.Warn("Relief classification failed", zap.Error(err))
		} else {
			result.Receipt.ReliefCategory = category
			if result.Persisted && h.receipts != nil {
				if err := h.receipts.Update(c.Context(), result.Receipt); err != nil {
					h.logger.Warn("Failed to store relief category", zap.Error(err))
				}
			}
		}
	}

	return c.JSON(dto.ProcessReceiptResponse{
		Receipt:          toReceiptResponse(result.Receipt),
		Persisted:        result.Persisted,
		PersistenceError: result.PersistenceError,
	})
}

// List godoc
// @Summary List stored receipts
// @Tags receipts
// @Produce json
// @Param limit query int false "Limit" default(20)
// @Param offset query int false "Offset" default(0)
// @Success 200 {array} dto.ReceiptResponse
// @Failure 503 {object} map[string]string
// @Router /receipts [get]
func (h *ReceiptHandler) List(c *fiber.Ctx) error {
	if h.receipts == nil {
		return storageDisabled(c)
	}

	limit := c.QueryInt("limit", 20)
	offset := c.QueryInt("offset", 0)

	receipts, err := h.receipts.List(c.Context(), limit, offset)
	if err != nil {
		h.logger.Error("Failed to list receipts", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to list receipts"})
	}

	responses := make([]dto.ReceiptResponse, len(receipts))
	for i, receipt := range receipts {
		responses[i] = toReceiptResponse(receipt)
	}
	return c.JSON(responses)
}

// Get godoc
// @Summary Get a stored receipt
// @Tags receipts
// @Produce json
// @Param id path string true "Receipt ID"
// @Success 200 {object} dto.ReceiptResponse
// @Failure 404 {object} map[string]string
// @Router /receipts/{id} [get]
func (h *ReceiptHandler) Get(c *fiber.Ctx) error {
	if h.receipts == nil {
		return storageDisabled(c)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid receipt ID"})
	}

	receipt, err := h.receipts.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Receipt not found"})
		}
		h.logger.Error("Failed to get receipt", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to get receipt"})
	}

	return c.JSON(toReceiptResponse(receipt))
}

// Update godoc
// @Summary Update a stored receipt
// @Tags receipts
// @Accept json
// @Produce json
// @Param id path string true "Receipt ID"
// @Param receipt body dto.UpdateReceiptRequest true "Fields to update"
// @Success 200 {object} dto.ReceiptResponse
// @Failure 404 {object} map[string]string
// @Router /receipts/{id} [put]
func (h *ReceiptHandler) Update(c *fiber.Ctx) error {
	if h.receipts == nil {
		return storageDisabled(c)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid receipt ID"})
	}

	var req dto.UpdateReceiptRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	receipt, err := h.receipts.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Receipt not found"})
		}
		h.logger.Error("Failed to get receipt", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to get receipt"})
	}

	applyReceiptUpdate(receipt, &req)
	if req.TotalAmount != "" {
		amount, err := decimal.NewFromString(req.TotalAmount)
		if err != nil || amount.IsNegative() {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "total_amount must be a non-negative number"})
		}
		receipt.TotalAmount = amount
	}

	if err := h.receipts.Update(c.Context(), receipt); err != nil {
		h.logger.Error("Failed to update receipt", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update receipt"})
	}

	return c.JSON(toReceiptResponse(receipt))
}

// Delete godoc
// @Summary Delete a stored receipt
// @Tags receipts
// @Param id path string true "Receipt ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Router /receipts/{id} [delete]
func (h *ReceiptHandler) Delete(c *fiber.Ctx) error {
	if h.receipts == nil {
		return storageDisabled(c)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid receipt ID"})
	}

	if err := h.receipts.Delete(c.Context(), id); err != nil {
		h.logger.Error("Failed to delete receipt", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete receipt"})
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func applyReceiptUpdate(receipt *models.Receipt, req *dto.UpdateReceiptRequest) {
	if req.Date != "" {
		receipt.Date = req.Date
	}
	if req.MerchantName != "" {
		receipt.MerchantName = req.MerchantName
	}
	if req.Description != "" {
		receipt.Description = req.Description
	}
	if req.Category != "" {
		receipt.Category = req.Category
	}
	if req.ReliefCategory != "" {
		receipt.ReliefCategory = req.ReliefCategory
	}
}

func toReceiptResponse(receipt *models.Receipt) dto.ReceiptResponse {
	return dto.ReceiptResponse{
		ID:             receipt.ID.String(),
		Date:           receipt.Date,
		MerchantName:   receipt.MerchantName,
		TotalAmount:    receipt.TotalAmount.StringFixed(2),
		Description:    receipt.Description,
		Category:       receipt.Category,
		ReliefCategory: receipt.ReliefCategory,
		CreatedAt:      receipt.CreatedAt.Format(time.RFC3339),
	}
}

func storageDisabled(c *fiber.Ctx) error {
	return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
		"error": "Storage is not configured",
	})
}
