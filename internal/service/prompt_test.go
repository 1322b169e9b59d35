package service

import (
	"testing"

	"ledgerlens/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestBuildExtractionPrompt(t *testing.T) {
	receipt := BuildExtractionPrompt(models.KindReceipt)
	statement := BuildExtractionPrompt(models.KindBankStatement)

	// Deterministic: same kind, same prompt, every time.
	assert.Equal(t, receipt, BuildExtractionPrompt(models.KindReceipt))
	assert.Equal(t, statement, BuildExtractionPrompt(models.KindBankStatement))
	assert.NotEqual(t, receipt, statement)

	// The prompt dictates the exact field names the parser decodes.
	for _, field := range []string{`"date"`, `"merchant"`, `"amount"`, `"description"`, `"category"`} {
		assert.Contains(t, receipt, field)
	}
	for _, field := range []string{`"date"`, `"type"`, `"description"`, `"amount"`} {
		assert.Contains(t, statement, field)
	}

	assert.Contains(t, receipt, "single JSON object")
	assert.Contains(t, statement, "JSON array")
}

func TestSystemInstruction(t *testing.T) {
	assert.Contains(t, systemInstruction(models.KindReceipt), "JSON object")
	assert.Contains(t, systemInstruction(models.KindBankStatement), "JSON array")
}
