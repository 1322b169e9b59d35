package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateUpload(t *testing.T) {
	const maxSize = 5 * 1024 * 1024

	assert.NoError(t, ValidateUpload(1024, "image/jpeg", maxSize))
	assert.NoError(t, ValidateUpload(maxSize, "application/pdf", maxSize))

	err := ValidateUpload(maxSize+1, "image/png", maxSize)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "5MB")

	err = ValidateUpload(1024, "image/gif", maxSize)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "image/gif")
}

func TestPrepareImage_PassthroughForImages(t *testing.T) {
	data := []byte("jpeg bytes")
	got, mediaType, err := PrepareImage(data, "image/jpeg")
	require.NoError(t, err)
	assert.Equal(t, data, got)
	assert.Equal(t, "image/jpeg", mediaType)
}

func TestPrepareImage_RejectsBrokenPDF(t *testing.T) {
	_, _, err := PrepareImage([]byte("definitely not a pdf"), "application/pdf")
	assert.Error(t, err)
}
