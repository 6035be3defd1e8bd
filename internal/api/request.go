package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
)

// DefaultFileField is the multipart field carrying uploaded files.
const DefaultFileField = "file"

// Request describes one logical API call. It is treated as immutable by the
// client: Execute never modifies it, so a Request may be reused.
type Request struct {
	Method string
	// Path is relative to the base URL with path parameters already
	// substituted, e.g. "/accounts/acc_1/requests".
	Path string
	// Query parameters. Keys that are absent are not sent.
	Query url.Values
	// Body is marshalled as JSON when non-nil.
	Body any
	// File is sent as a multipart upload when non-nil.
	File *FilePart
	// Header holds extra headers that win over auth and default headers.
	Header map[string]string
}

// FilePart is a single file sent as multipart/form-data.
type FilePart struct {
	// FieldName defaults to DefaultFileField.
	FieldName string
	FileName  string
	Content   io.Reader
}

// Response is a completed HTTP response with its body fully read. Execute
// only returns Responses with a 2xx status.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Decode unmarshals the JSON body into v. Unknown fields are ignored.
func (r *Response) Decode(v any) error {
	if err := json.Unmarshal(r.Body, v); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// encodedBody is a request body encoded once and replayed on every attempt.
type encodedBody struct {
	data        []byte
	contentType string
}

func (b *encodedBody) reader() io.Reader {
	if b == nil {
		return nil
	}
	return bytes.NewReader(b.data)
}

func encodeBody(req Request) (*encodedBody, error) {
	if req.File != nil && req.Body != nil {
		return nil, errors.New("request cannot carry both a JSON body and a file")
	}

	if req.File != nil {
		return encodeMultipart(req.File)
	}

	if req.Body == nil {
		return nil, nil
	}
	data, err := json.Marshal(req.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request body: %w", err)
	}
	return &encodedBody{data: data, contentType: "application/json"}, nil
}

func encodeMultipart(part *FilePart) (*encodedBody, error) {
	if part.Content == nil {
		return nil, errors.New("file part has no content")
	}
	field := part.FieldName
	if field == "" {
		field = DefaultFileField
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile(field, part.FileName)
	if err != nil {
		return nil, fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := io.Copy(fw, part.Content); err != nil {
		return nil, fmt.Errorf("failed to read file content: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("failed to finish multipart body: %w", err)
	}
	return &encodedBody{data: buf.Bytes(), contentType: w.FormDataContentType()}, nil
}
