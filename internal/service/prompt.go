package service

import "ledgerlens/internal/models"

// The prompt text is the de-facto contract with the vision model: the field
// names it dictates are the same ones the parser decodes. Rename a field in
// one place and it must be renamed in the other.

const receiptPrompt = `Please analyze this receipt image and extract transaction information. The receipt may be in various formats:

1. Date Formats to Handle:
   - DD/MM/YYYY (e.g., 25/12/2023)
   - MM/DD/YYYY (e.g., 12/25/2023)
   - DD/MM/YY (e.g., 25/12/23)
   - MM/YY (e.g., 12/23)
   - YYYY-MM-DD (e.g., 2023-12-25)

2. For each receipt, identify:
   - Date (convert to YYYY-MM-DD format)
   - Merchant name
   - Total amount (including tax)
   - Description (brief summary of items purchased)
   - Category (e.g., groceries, dining, fuel, pharmacy)

3. Important guidelines:
   - Skip any header/footer information
   - Focus on actual transaction details
   - For MM/YY format, use the first day of the month
   - Remove all currency symbols and commas from amounts
   - Keep description concise but informative

4. Output format:
   Return a single JSON object structured as:
   {
     "date": "YYYY-MM-DD",
     "merchant": "merchant name",
     "amount": numeric_value,
     "description": "brief summary of items",
     "category": "expense category"
   }

Return only the JSON object. Do not add explanatory text or markdown fencing.`

const statementPrompt = `Please analyze this bank statement image and extract transaction information. The statement may be in various formats:

1. Date Formats to Handle:
   - DD/MM/YYYY (e.g., 25/12/2023)
   - MM/DD/YYYY (e.g., 12/25/2023)
   - DD/MM/YY (e.g., 25/12/23)
   - MM/YY (e.g., 12/23)
   - YYYY-MM-DD (e.g., 2023-12-25)

2. Amount Formats to Handle:
   - Separate credit/debit columns
   - Amounts with +/- signs (e.g., +1000.00 or -500.00 or 1000.00+ or 500.00-)
   - Amounts with CR/DR indicators
   - Amounts with currency symbols and commas
   - Amounts in parentheses (e.g., (500.00))

3. For each transaction, identify:
   - Date (convert to YYYY-MM-DD format)
   - Transaction type (credit or debit)
   - Description (transaction details)
   - Amount (numeric value only)

4. Important guidelines:
   - Skip any header/footer information
   - Focus only on actual transactions
   - For MM/YY format, use the first day of the month
   - Remove all currency symbols and commas from amounts
   - Preserve the exact transaction description text
   - If transaction type is unclear, mark as 'unknown'

5. Output format:
   Return a JSON array where each transaction is structured as:
   {
     "date": "YYYY-MM-DD",
     "type": "credit/debit/unknown",
     "description": "transaction details",
     "amount": numeric_value
   }

Maintain the chronological order of transactions. If you are unsure about any
field, mark it as 'unknown' rather than making assumptions. Return only the
JSON array. Do not add explanatory text or markdown fencing.`

// BuildExtractionPrompt returns the instruction block for a document kind.
// Pure function of kind; no state, no network.
func BuildExtractionPrompt(kind models.DocumentKind) string {
	if kind == models.KindBankStatement {
		return statementPrompt
	}
	return receiptPrompt
}

// systemInstruction is the system turn sent alongside every extraction.
func systemInstruction(kind models.DocumentKind) string {
	if kind == models.KindBankStatement {
		return "You are a specialized bank statement parser. Extract all transactions and return them as a raw JSON array. Do not use markdown formatting, code blocks, or any other text formatting. Return only the JSON array."
	}
	return "You are a specialized receipt parser. Extract all receipt details and return them as a raw JSON object. Do not use markdown formatting, code blocks, or any other text formatting. Return only the JSON object."
}
