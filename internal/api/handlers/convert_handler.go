package handlers

import (
	"fmt"
	"time"

	"ledgerlens/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type ConvertHandler struct {
	logger *zap.Logger
}

func NewConvertHandler(logger *zap.Logger) *ConvertHandler {
	return &ConvertHandler{logger: logger}
}

// Convert godoc
// @Summary Convert extracted transactions to CSV
// @Description Accepts a JSON array of transaction objects and returns a CSV file download.
// @Tags export
// @Accept json
// @Produce text/csv
// @Param transactions body []service.TransactionRow true "Transactions to convert"
// @Success 200 {string} string "CSV content"
// @Failure 400 {object} map[string]string
// @Router /convert [post]
func (h *ConvertHandler) Convert(c *fiber.Ctx) error {
	var rows []service.TransactionRow
	if err := c.BodyParser(&rows); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Expected an array of JSON objects",
		})
	}

	csvData, err := service.TransactionsCSV(rows)
	if err != nil {
		h.logger.Error("CSV conversion failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to convert JSON to CSV",
		})
	}

	fileName := fmt.Sprintf("output-%d.csv", time.Now().UnixMilli())
	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+fileName+`"`)
	return c.Send(csvData)
}
