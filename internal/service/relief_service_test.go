package service

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestReliefClassify(t *testing.T) {
	tests := []struct {
		name     string
		response string
		want     string
	}{
		{name: "numeric category", response: "9", want: "9"},
		{name: "numeric with whitespace", response: "  12\n", want: "12"},
		{name: "explanation after first line is dropped", response: "6\nThis is a medical expense.", want: "6"},
		{name: "non-claimable passthrough", response: "Non-claimable", want: "Non-claimable"},
		{name: "out-of-range number passes through verbatim", response: "42", want: "42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewReliefService(&stubClient{content: tt.response}, zap.NewNop())
			got, err := svc.Classify(context.Background(), "Guardian Pharmacy", "vitamins", decimal.NewFromFloat(45.90))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReliefClassify_ClientError(t *testing.T) {
	svc := NewReliefService(&stubClient{err: errors.New("boom")}, zap.NewNop())
	_, err := svc.Classify(context.Background(), "ACME", "stuff", decimal.NewFromInt(10))
	assert.Error(t, err)
}
