package resources

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"strings"
)

// FilePart is one file attached to a multipart upload.
type FilePart struct {
	FieldName   string
	FileName    string
	ContentType string
	Content     []byte
}

// EncodeMultipart builds a multipart/form-data payload from plain fields and
// file parts. The returned content type carries the boundary and is meant to
// go straight into core.WithRawBody.
func EncodeMultipart(fields map[string]string, files []FilePart) (string, []byte, error) {
	buffer := &bytes.Buffer{}
	writer := multipart.NewWriter(buffer)

	for key, value := range fields {
		if strings.TrimSpace(key) == "" {
			continue
		}
		if err := writer.WriteField(key, value); err != nil {
			return "", nil, fmt.Errorf("resources: write multipart field %q: %w", key, err)
		}
	}
	for _, file := range files {
		if strings.TrimSpace(file.FieldName) == "" {
			return "", nil, fmt.Errorf("resources: file part requires a field name")
		}
		if strings.TrimSpace(file.FileName) == "" {
			return "", nil, fmt.Errorf("resources: file part requires a file name")
		}
		part, err := writer.CreateFormFile(file.FieldName, file.FileName)
		if err != nil {
			return "", nil, fmt.Errorf("resources: create multipart file %q: %w", file.FieldName, err)
		}
		if _, err := part.Write(file.Content); err != nil {
			return "", nil, fmt.Errorf("resources: write multipart file %q: %w", file.FieldName, err)
		}
	}

	if err := writer.Close(); err != nil {
		return "", nil, fmt.Errorf("resources: finalize multipart payload: %w", err)
	}
	return writer.FormDataContentType(), buffer.Bytes(), nil
}
