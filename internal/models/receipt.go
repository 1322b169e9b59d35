package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Receipt is the extraction result for one receipt image. Date is the
// canonical YYYY-MM-DD form when the source date was recognized, otherwise
// the verbatim string the model returned.
type Receipt struct {
	ID             uuid.UUID       `db:"id"`
	Date           string          `db:"date"`
	MerchantName   string          `db:"merchant_name"`
	TotalAmount    decimal.Decimal `db:"total_amount"`
	Description    string          `db:"description"`
	Category       string          `db:"category"`
	ReliefCategory string          `db:"relief_category"`
	CreatedAt      time.Time       `db:"created_at"`
	UpdatedAt      time.Time       `db:"updated_at"`
}
