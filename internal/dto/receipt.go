package dto

// UploadImageRequest is the JSON alternative to a multipart upload: either a
// hosted image URL or inline base64 data.
type UploadImageRequest struct {
	ImageURL    string `json:"image_url"`
	ImageBase64 string `json:"image_base64"`
	MediaType   string `json:"media_type"`
}

type ReceiptResponse struct {
	ID             string `json:"id"`
	Date           string `json:"date"`
	MerchantName   string `json:"merchant_name"`
	TotalAmount    string `json:"total_amount"`
	Description    string `json:"description,omitempty"`
	Category       string `json:"category,omitempty"`
	ReliefCategory string `json:"relief_category,omitempty"`
	CreatedAt      string `json:"created_at"`
}

type ProcessReceiptResponse struct {
	Receipt          ReceiptResponse `json:"receipt"`
	Persisted        bool            `json:"persisted"`
	PersistenceError string          `json:"persistence_error,omitempty"`
}

type UpdateReceiptRequest struct {
	Date           string `json:"date"`
	MerchantName   string `json:"merchant_name"`
	TotalAmount    string `json:"total_amount"`
	Description    string `json:"description"`
	Category       string `json:"category"`
	ReliefCategory string `json:"relief_category"`
}
