package swikly

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/swikly/client-go/internal/api"
)

// FilesService uploads supporting documents.
type FilesService service

func (s *FilesService) upload(ctx context.Context, path, name string, content io.Reader) (*File, error) {
	var resp struct {
		File File `json:"file"`
	}
	req := api.Request{
		Method: http.MethodPost,
		Path:   path,
		File:   &api.FilePart{FieldName: api.DefaultFileField, FileName: name, Content: content},
	}
	if err := s.client.do(ctx, req, &resp); err != nil {
		return nil, err
	}
	return &resp.File, nil
}

func (s *FilesService) uploadPath(ctx context.Context, path, filePath string) (*File, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("open upload: %w", err)
	}
	defer f.Close()
	return s.upload(ctx, path, filepath.Base(filePath), f)
}

// UploadTemporary uploads a file that can later be referenced by id, e.g.
// in CreateReclaimParams.Files. content is read fully before the first
// attempt.
func (s *FilesService) UploadTemporary(ctx context.Context, accountID, name string, content io.Reader) (*File, error) {
	return s.upload(ctx, endpoint("accounts", accountID, "files"), name, content)
}

// UploadTemporaryFile is UploadTemporary for a file on disk.
func (s *FilesService) UploadTemporaryFile(ctx context.Context, accountID, filePath string) (*File, error) {
	return s.uploadPath(ctx, endpoint("accounts", accountID, "files"), filePath)
}

// AttachToReclaim uploads a supporting document for a reclaim.
func (s *FilesService) AttachToReclaim(ctx context.Context, accountID, reclaimID, name string, content io.Reader) (*File, error) {
	return s.upload(ctx, endpoint("accounts", accountID, "reclaims", reclaimID, "files"), name, content)
}

// AttachFileToReclaim is AttachToReclaim for a file on disk.
func (s *FilesService) AttachFileToReclaim(ctx context.Context, accountID, reclaimID, filePath string) (*File, error) {
	return s.uploadPath(ctx, endpoint("accounts", accountID, "reclaims", reclaimID, "files"), filePath)
}

// DeleteFromReclaim removes a document from a reclaim.
func (s *FilesService) DeleteFromReclaim(ctx context.Context, accountID, reclaimID, fileID string) error {
	return s.client.do(ctx, api.Request{
		Method: http.MethodDelete,
		Path:   endpoint("accounts", accountID, "reclaims", reclaimID, "files", fileID),
	}, nil)
}
