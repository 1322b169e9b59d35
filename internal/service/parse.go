package service

import (
	"encoding/json"
	"strings"
)

// FlexString decodes a JSON value that may arrive as either a string or a
// number, keeping the string representation for uniform downstream handling.
// Models are inconsistent about quoting amounts.
type FlexString string

func (f *FlexString) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		*f = ""
		return nil
	}
	if len(s) > 0 && s[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*f = FlexString(str)
		return nil
	}
	*f = FlexString(s)
	return nil
}

// RawReceipt mirrors the object shape dictated by the receipt prompt.
type RawReceipt struct {
	Date        string     `json:"date"`
	Merchant    string     `json:"merchant"`
	Amount      FlexString `json:"amount"`
	Description string     `json:"description"`
	Category    string     `json:"category"`
}

// RawTransaction mirrors one entry of the array shape dictated by the
// statement prompt. Type is intentionally absent: direction is derived from
// the amount string by ClassifyAmount, never trusted from the model.
type RawTransaction struct {
	Date        string     `json:"date"`
	Description string     `json:"description"`
	Amount      FlexString `json:"amount"`
}

// MissingField reports the first required field that is absent, or "" when
// the record is complete.
func (t *RawTransaction) MissingField() string {
	switch {
	case t.Date == "":
		return "date"
	case t.Description == "":
		return "description"
	case t.Amount == "":
		return "amount"
	}
	return ""
}

// stripCodeFences removes a surrounding triple-backtick block (with optional
// language tag) and whitespace. Idempotent: unfenced content passes through.
func stripCodeFences(content string) string {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	return strings.TrimSpace(content)
}

// ParseReceipt decodes model output for a receipt request into a RawReceipt.
// Undecodable content is a MalformedResponseError; the request is over.
func ParseReceipt(content string) (*RawReceipt, error) {
	cleaned := stripCodeFences(content)

	var receipt RawReceipt
	if err := json.Unmarshal([]byte(cleaned), &receipt); err != nil {
		return nil, &MalformedResponseError{Content: cleaned, Err: err}
	}
	return &receipt, nil
}

// ParseStatement decodes model output for a bank-statement request. A single
// object where an array was expected is wrapped into a one-element slice; an
// empty array is a valid result.
func ParseStatement(content string) ([]RawTransaction, error) {
	cleaned := stripCodeFences(content)

	if strings.HasPrefix(cleaned, "{") {
		var one RawTransaction
		if err := json.Unmarshal([]byte(cleaned), &one); err != nil {
			return nil, &MalformedResponseError{Content: cleaned, Err: err}
		}
		return []RawTransaction{one}, nil
	}

	var transactions []RawTransaction
	if err := json.Unmarshal([]byte(cleaned), &transactions); err != nil {
		return nil, &MalformedResponseError{Content: cleaned, Err: err}
	}
	return transactions, nil
}
