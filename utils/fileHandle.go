package utils

import (
	"encoding/base64"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
)

// maximum accepted upload for AI extraction; inline payloads above this
// are rejected before any network call
const MaxUploadBytes = 10 << 20

// ReadUploadedFile reads an uploaded file fully into memory and returns
// its bytes together with the detected media type.
func ReadUploadedFile(file *multipart.FileHeader) ([]byte, string, error) {
	if file.Size > MaxUploadBytes {
		return nil, "", fmt.Errorf("file exceeds the %d MB limit", MaxUploadBytes>>20)
	}

	src, err := file.Open()
	if err != nil {
		return nil, "", err
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return nil, "", err
	}

	mimeType := file.Header.Get("Content-Type")
	if mimeType == "" || mimeType == "application/octet-stream" {
		mimeType = http.DetectContentType(data)
	}

	return data, mimeType, nil
}

// IsSupportedDocumentType limits AI extraction to images and PDFs
func IsSupportedDocumentType(mimeType string) bool {
	return strings.HasPrefix(mimeType, "image/") || mimeType == "application/pdf"
}

// EncodeBase64 prepares binary content for an inline AI payload
func EncodeBase64(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}
