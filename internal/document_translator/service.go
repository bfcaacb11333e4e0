package document_translator

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"translate-relay/pkg/types"
)

// DocumentProviderInterface defines the provider methods required for document translation
type DocumentProviderInterface interface {
	UploadDocument(ctx context.Context, filename string, data []byte, targetLang string) (types.DocumentHandle, error)
	DocumentStatus(ctx context.Context, handle types.DocumentHandle) (json.RawMessage, error)
	DownloadDocument(ctx context.Context, handle types.DocumentHandle, destPath string) error
}

// DocumentTranslatorService relays the document job lifecycle (upload,
// status, download) to the provider
type DocumentTranslatorService struct {
	logger   *zap.Logger
	provider DocumentProviderInterface
}

// NewDocumentTranslatorService creates a new instance of DocumentTranslatorService
func NewDocumentTranslatorService(logger *zap.Logger, provider DocumentProviderInterface) *DocumentTranslatorService {
	return &DocumentTranslatorService{
		logger:   logger,
		provider: provider,
	}
}

// Upload forwards the document bytes to the provider and returns the job
// handle. The provider auto-detects the source language.
func (s *DocumentTranslatorService) Upload(ctx context.Context, filename string, data []byte, targetLang string) (types.DocumentHandle, error) {
	s.logger.Info("uploading document",
		zap.String("filename", filename),
		zap.String("target_language", targetLang),
		zap.Int("size", len(data)),
	)
	return s.provider.UploadDocument(ctx, filename, data, targetLang)
}

// Status queries the provider and returns its status payload verbatim.
func (s *DocumentTranslatorService) Status(ctx context.Context, handle types.DocumentHandle) (json.RawMessage, error) {
	return s.provider.DocumentStatus(ctx, handle)
}

// Download fetches the translated document into a uniquely named file in the
// system temp directory and returns its path. The caller owns the file and
// must remove it when done. On failure the file is removed here and no path
// is returned.
func (s *DocumentTranslatorService) Download(ctx context.Context, handle types.DocumentHandle, outputFileName string) (string, error) {
	// unique prefix keeps concurrent downloads of the same filename apart
	tmpPath := filepath.Join(os.TempDir(), fmt.Sprintf("%s-%s", uuid.NewString(), filepath.Base(outputFileName)))

	s.logger.Info("downloading document",
		zap.String("document_id", handle.DocumentID),
		zap.String("temp_path", tmpPath),
	)

	if err := s.provider.DownloadDocument(ctx, handle, tmpPath); err != nil {
		if rmErr := os.Remove(tmpPath); rmErr != nil && !os.IsNotExist(rmErr) {
			s.logger.Warn("failed to remove temp file", zap.String("temp_path", tmpPath), zap.Error(rmErr))
		}
		return "", err
	}
	return tmpPath, nil
}
