// Package httputil holds multipart helpers shared by the HTTP handlers and their tests.
package httputil

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"sort"

	"github.com/gabriel-vasile/mimetype"
)

// ErrFileTooLarge is returned when an uploaded file exceeds the configured limit
var ErrFileTooLarge = errors.New("file too large")

// sniffLen is how many leading bytes mimetype inspects by default
const sniffLen = 3072

// FormFile is an opened multipart file with its content type sniffed from the
// leading bytes rather than trusted from the client.
type FormFile struct {
	FileName    string
	ContentType string
	Size        int64
	Reader      io.Reader
	closer      io.Closer
}

// Close releases the underlying multipart file
func (f *FormFile) Close() error {
	if f.closer == nil {
		return nil
	}
	return f.closer.Close()
}

// OpenFormFile opens header, rejecting files larger than maxSize when maxSize > 0
func OpenFormFile(header *multipart.FileHeader, maxSize int64) (*FormFile, error) {
	if maxSize > 0 && header.Size > maxSize {
		return nil, fmt.Errorf("%s is %d bytes, limit is %d: %w", header.Filename, header.Size, maxSize, ErrFileTooLarge)
	}

	file, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", header.Filename, err)
	}

	head := make([]byte, sniffLen)
	n, err := io.ReadFull(file, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		_ = file.Close()
		return nil, fmt.Errorf("failed to read %s: %w", header.Filename, err)
	}
	head = head[:n]

	return &FormFile{
		FileName:    header.Filename,
		ContentType: mimetype.Detect(head).String(),
		Size:        header.Size,
		Reader:      io.MultiReader(bytes.NewReader(head), file),
		closer:      file,
	}, nil
}

// FilePart is one file of a multipart body
type FilePart struct {
	Field    string
	FileName string
	Content  []byte
}

// NewMultipartBody encodes fields and files as multipart/form-data and
// returns the body with its Content-Type header value.
func NewMultipartBody(fields map[string]string, files ...FilePart) (*bytes.Buffer, string, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if err := writer.WriteField(k, fields[k]); err != nil {
			return nil, "", fmt.Errorf("failed to write field %s: %w", k, err)
		}
	}

	for _, f := range files {
		part, err := writer.CreateFormFile(f.Field, f.FileName)
		if err != nil {
			return nil, "", fmt.Errorf("failed to create form file: %w", err)
		}
		if _, err := part.Write(f.Content); err != nil {
			return nil, "", fmt.Errorf("failed to write file content: %w", err)
		}
	}

	if err := writer.Close(); err != nil {
		return nil, "", fmt.Errorf("failed to close writer: %w", err)
	}

	return &buf, writer.FormDataContentType(), nil
}

// CreateForm builds a parsed multipart form holding the given fields and files
func CreateForm(fields map[string]string, files ...FilePart) (*multipart.Form, error) {
	body, contentType, err := NewMultipartBody(fields, files...)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequest(http.MethodPost, "/", body)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)

	if err := req.ParseMultipartForm(32 << 20); err != nil {
		return nil, fmt.Errorf("failed to parse multipart form: %w", err)
	}

	return req.MultipartForm, nil
}
