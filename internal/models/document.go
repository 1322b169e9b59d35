package models

// DocumentKind selects which extraction prompt and output schema apply.
type DocumentKind string

const (
	KindReceipt       DocumentKind = "receipt"
	KindBankStatement DocumentKind = "bank-statement"
)

// RawDocument is an uploaded image as received from a request. It lives for
// the duration of one extraction and is never stored. Exactly one of Bytes or
// ImageURL is set: Bytes for multipart uploads and base64 bodies, ImageURL
// when the caller points at an already-hosted image.
type RawDocument struct {
	FileName  string
	MediaType string
	Bytes     []byte
	ImageURL  string
}
