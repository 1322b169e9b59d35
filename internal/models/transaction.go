package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType carries the direction of a bank-statement line. Amount is
// always a non-negative magnitude; the sign lives here and only here.
type TransactionType string

const (
	TypeCredit  TransactionType = "credit"
	TypeDebit   TransactionType = "debit"
	TypeUnknown TransactionType = "unknown"
)

// ParseTransactionType maps a configuration string to a TransactionType,
// falling back to unknown for anything unrecognized.
func ParseTransactionType(s string) TransactionType {
	switch TransactionType(s) {
	case TypeCredit, TypeDebit, TypeUnknown:
		return TransactionType(s)
	default:
		return TypeUnknown
	}
}

// Transaction is one extracted bank-statement line item.
type Transaction struct {
	ID          uuid.UUID       `db:"id"`
	Date        string          `db:"date"`
	Type        TransactionType `db:"type"`
	Description string          `db:"description"`
	Amount      decimal.Decimal `db:"amount"`
	CreatedAt   time.Time       `db:"created_at"`
}
