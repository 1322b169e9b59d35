package service

import (
	"bytes"
	"fmt"
	"image/png"

	"github.com/gen2brain/go-fitz"
)

var allowedMediaTypes = map[string]bool{
	"image/jpeg":      true,
	"image/jpg":       true,
	"image/png":       true,
	"application/pdf": true,
}

// ValidateUpload enforces the upload contract: size cap and a JPEG/PNG/PDF
// allow-list.
func ValidateUpload(size int64, mediaType string, maxSize int64) error {
	if size > maxSize {
		return fmt.Errorf("file size exceeds %dMB limit", maxSize/(1024*1024))
	}
	if !allowedMediaTypes[mediaType] {
		return fmt.Errorf("invalid file type %q: only JPEG, PNG and PDF files are allowed", mediaType)
	}
	return nil
}

// PrepareImage makes uploaded data consumable by the vision model. PDFs are
// rendered to a PNG of their first page (receipts and statement exports are
// overwhelmingly single-page); images pass through untouched.
func PrepareImage(data []byte, mediaType string) ([]byte, string, error) {
	if mediaType != "application/pdf" {
		return data, mediaType, nil
	}

	pngData, err := pdfToImage(data)
	if err != nil {
		return nil, "", fmt.Errorf("converting PDF to image: %w", err)
	}
	return pngData, "image/png", nil
}

func pdfToImage(pdfData []byte) ([]byte, error) {
	doc, err := fitz.NewFromMemory(pdfData)
	if err != nil {
		return nil, fmt.Errorf("opening PDF: %w", err)
	}
	defer doc.Close()

	img, err := doc.Image(0)
	if err != nil {
		return nil, fmt.Errorf("rendering PDF page: %w", err)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encoding PNG: %w", err)
	}
	return buf.Bytes(), nil
}
