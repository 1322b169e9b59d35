package service

import (
	"fmt"
	"regexp"
	"strings"

	"ledgerlens/internal/models"

	"github.com/shopspring/decimal"
)

// DateOrder resolves the day-first ambiguity: DD/MM/YYYY and MM/DD/YYYY are
// structurally identical, so the interpretation is a policy, not a parse.
// Day-first is the documented default.
type DateOrder int

const (
	DayFirst DateOrder = iota
	MonthFirst
)

// ParseDateOrder maps a configuration string to a DateOrder.
func ParseDateOrder(s string) DateOrder {
	if s == "month-first" {
		return MonthFirst
	}
	return DayFirst
}

var (
	reMonthYear = regexp.MustCompile(`^\d{2}/\d{2}$`)
	reShortDate = regexp.MustCompile(`^\d{2}/\d{2}/\d{2}$`)
	reFullDate  = regexp.MustCompile(`^\d{2}/\d{2}/\d{4}$`)
)

// NormalizeDate converts slash-formatted dates to YYYY-MM-DD using the
// day-first default. See NormalizeDateOrder.
func NormalizeDate(raw string) (string, bool) {
	return NormalizeDateOrder(raw, DayFirst)
}

// NormalizeDateOrder converts the recognized slash formats to canonical
// YYYY-MM-DD: MM/YY becomes the first of the month with the year expanded to
// 20YY, DD/MM/YY expands the year the same way, DD/MM/YYYY reorders the
// fields. Anything else, including an already-canonical date, is returned
// verbatim with ok=false so callers can tell a normalized result from a
// pass-through. The returned string is not guaranteed to be a valid calendar
// date.
func NormalizeDateOrder(raw string, order DateOrder) (string, bool) {
	switch {
	case reMonthYear.MatchString(raw):
		parts := strings.Split(raw, "/")
		return fmt.Sprintf("20%s-%s-01", parts[1], parts[0]), true

	case reShortDate.MatchString(raw):
		parts := strings.Split(raw, "/")
		day, month := parts[0], parts[1]
		if order == MonthFirst {
			day, month = month, day
		}
		return fmt.Sprintf("20%s-%s-%s", parts[2], month, day), true

	case reFullDate.MatchString(raw):
		parts := strings.Split(raw, "/")
		day, month := parts[0], parts[1]
		if order == MonthFirst {
			day, month = month, day
		}
		return fmt.Sprintf("%s-%s-%s", parts[2], month, day), true
	}

	return raw, false
}

// ClassifiedAmount is the result of amount classification: a direction and
// an always-non-negative magnitude. Parsed is false when no numeric value
// could be read from the input and the magnitude was zeroed.
type ClassifiedAmount struct {
	Type      models.TransactionType
	Magnitude decimal.Decimal
	Parsed    bool
}

var nonNumeric = regexp.MustCompile(`[^0-9.+\-]`)

// ClassifyAmount derives a transaction direction and magnitude from a raw
// amount string. Indicators are checked in order: textual CR/DR markers, a
// leading sign on the stripped numeric candidate, a trailing sign (statement
// notation like 500.00-), then accounting-style parentheses. When nothing
// marks the direction the configured fallback applies (unknown by default;
// credit for single-running-column statements).
func ClassifyAmount(raw string, fallback models.TransactionType) ClassifiedAmount {
	clean := nonNumeric.ReplaceAllString(raw, "")
	lower := strings.ToLower(raw)

	numeric := strings.TrimLeft(clean, "+-")
	numeric = strings.TrimRight(numeric, "+-")
	magnitude, err := decimal.NewFromString(numeric)
	if err != nil {
		magnitude = decimal.Zero
	}
	magnitude = magnitude.Abs()

	var kind models.TransactionType
	switch {
	case strings.Contains(lower, "cr") || strings.Contains(lower, "credit"):
		kind = models.TypeCredit
	case strings.Contains(lower, "dr") || strings.Contains(lower, "debit"):
		kind = models.TypeDebit
	case strings.HasPrefix(clean, "-"):
		kind = models.TypeDebit
	case strings.HasPrefix(clean, "+"):
		kind = models.TypeCredit
	case strings.HasSuffix(clean, "-"):
		kind = models.TypeDebit
	case strings.HasSuffix(clean, "+"):
		kind = models.TypeCredit
	case hasParenPair(raw):
		kind = models.TypeDebit
	default:
		kind = fallback
	}

	return ClassifiedAmount{Type: kind, Magnitude: magnitude, Parsed: err == nil}
}

func hasParenPair(s string) bool {
	open := strings.Index(s, "(")
	if open == -1 {
		return false
	}
	return strings.LastIndex(s, ")") > open
}
