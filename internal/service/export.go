package service

import (
	"bytes"
	"encoding/csv"
	"fmt"
)

// TransactionRow is the caller-supplied shape accepted by the CSV export
// endpoint, matching the statement extraction output.
type TransactionRow struct {
	Date        string     `json:"date"`
	Type        string     `json:"type"`
	Description string     `json:"description"`
	Amount      FlexString `json:"amount"`
}

// TransactionsCSV renders rows as CSV with a fixed column order.
func TransactionsCSV(rows []TransactionRow) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"date", "type", "description", "amount"}); err != nil {
		return nil, fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, row := range rows {
		record := []string{row.Date, row.Type, row.Description, string(row.Amount)}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
