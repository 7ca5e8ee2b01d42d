package testutil

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MGTheTrain/photo-portfolio/internal/pkg/httputil"
	"github.com/stretchr/testify/require"
)

// PNGBytes returns the smallest content that sniffs as image/png
func PNGBytes() []byte {
	return []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01")
}

// JPEGBytes returns the smallest content that sniffs as image/jpeg
func JPEGBytes() []byte {
	return []byte("\xff\xd8\xff\xe0\x00\x10JFIF\x00")
}

// AVIFBytes returns an ftyp box with the avif brand, enough to sniff as image/avif
func AVIFBytes() []byte {
	return []byte("\x00\x00\x00\x1cftypavif\x00\x00\x00\x00avifmif1miaf\x00\x00\x00\x00")
}

// NewMultipartRequest builds a multipart/form-data request for handler tests
func NewMultipartRequest(t *testing.T, method, target string, fields map[string]string, files ...httputil.FilePart) *http.Request {
	t.Helper()

	body, contentType, err := httputil.NewMultipartBody(fields, files...)
	require.NoError(t, err)

	req := httptest.NewRequest(method, target, body)
	req.Header.Set("Content-Type", contentType)
	return req
}
