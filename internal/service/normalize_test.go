package service

import (
	"testing"

	"ledgerlens/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeDate(t *testing.T) {
	tests := []struct {
		name       string
		raw        string
		want       string
		recognized bool
	}{
		{
			name:       "month and two-digit year defaults to first of month",
			raw:        "12/23",
			want:       "2023-12-01",
			recognized: true,
		},
		{
			name:       "short date expands the year",
			raw:        "25/12/23",
			want:       "2023-12-25",
			recognized: true,
		},
		{
			name:       "full date reorders day first",
			raw:        "25/12/2023",
			want:       "2023-12-25",
			recognized: true,
		},
		{
			name:       "canonical date passes through unrecognized",
			raw:        "2023-12-25",
			want:       "2023-12-25",
			recognized: false,
		},
		{
			name:       "free text passes through verbatim",
			raw:        "25th December 2023",
			want:       "25th December 2023",
			recognized: false,
		},
		{
			name:       "empty string passes through",
			raw:        "",
			want:       "",
			recognized: false,
		},
		{
			name:       "single-digit day is not a recognized shape",
			raw:        "5/12/2023",
			want:       "5/12/2023",
			recognized: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, recognized := NormalizeDate(tt.raw)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.recognized, recognized)
		})
	}
}

func TestNormalizeDateOrder_MonthFirst(t *testing.T) {
	got, recognized := NormalizeDateOrder("12/25/2023", MonthFirst)
	assert.True(t, recognized)
	assert.Equal(t, "2023-12-25", got)

	got, recognized = NormalizeDateOrder("12/25/23", MonthFirst)
	assert.True(t, recognized)
	assert.Equal(t, "2023-12-25", got)
}

func TestClassifyAmount(t *testing.T) {
	tests := []struct {
		name       string
		raw        string
		wantType   models.TransactionType
		wantValue  string
		unparsable bool
	}{
		{
			name:      "leading minus is a debit",
			raw:       "-500.00",
			wantType:  models.TypeDebit,
			wantValue: "500.00",
		},
		{
			name:      "leading plus is a credit",
			raw:       "+1000.00",
			wantType:  models.TypeCredit,
			wantValue: "1000.00",
		},
		{
			name:      "trailing minus is a debit with full magnitude",
			raw:       "500.00-",
			wantType:  models.TypeDebit,
			wantValue: "500.00",
		},
		{
			name:      "trailing plus is a credit with full magnitude",
			raw:       "1000.00+",
			wantType:  models.TypeCredit,
			wantValue: "1000.00",
		},
		{
			name:      "CR indicator wins over everything",
			raw:       "1,200.50 CR",
			wantType:  models.TypeCredit,
			wantValue: "1200.50",
		},
		{
			name:      "DR indicator is a debit",
			raw:       "300.00 DR",
			wantType:  models.TypeDebit,
			wantValue: "300.00",
		},
		{
			name:      "lowercase credit word",
			raw:       "45.00 credit",
			wantType:  models.TypeCredit,
			wantValue: "45.00",
		},
		{
			name:      "parenthesized accounting notation is a debit",
			raw:       "(75.00)",
			wantType:  models.TypeDebit,
			wantValue: "75.00",
		},
		{
			name:      "currency symbols and commas are stripped",
			raw:       "RM1,234.56",
			wantType:  models.TypeUnknown,
			wantValue: "1234.56",
		},
		{
			name:      "bare number falls back to unknown",
			raw:       "500.00",
			wantType:  models.TypeUnknown,
			wantValue: "500.00",
		},
		{
			name:       "unparseable input yields zero magnitude",
			raw:        "n/a",
			wantType:   models.TypeUnknown,
			wantValue:  "0.00",
			unparsable: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyAmount(tt.raw, models.TypeUnknown)
			assert.Equal(t, tt.wantType, got.Type)
			assert.Equal(t, tt.wantValue, got.Magnitude.StringFixed(2))
			assert.Equal(t, !tt.unparsable, got.Parsed)
			assert.False(t, got.Magnitude.IsNegative(), "magnitude must never be negative")
		})
	}
}

func TestClassifyAmount_MagnitudeNeverNegative(t *testing.T) {
	inputs := []string{"-500.00", "(75.00)", "-1,000,000.99 DR", "--5", "$-0.01", "500.00-"}
	for _, raw := range inputs {
		got := ClassifyAmount(raw, models.TypeUnknown)
		assert.False(t, got.Magnitude.IsNegative(), "input %q produced negative magnitude", raw)
	}
}

func TestClassifyAmount_ConfigurableFallback(t *testing.T) {
	// Single-running-column statements can default unmarked amounts to credit.
	got := ClassifyAmount("500.00", models.TypeCredit)
	assert.Equal(t, models.TypeCredit, got.Type)

	// Marked amounts ignore the fallback.
	got = ClassifyAmount("-500.00", models.TypeCredit)
	assert.Equal(t, models.TypeDebit, got.Type)
}
