package resume

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/artem13815/resume-analyzer/pkg/logger"
)

// ErrEmptyText means the upload was accepted but no text could be pulled out of it.
var ErrEmptyText = errors.New("could not extract text from the uploaded file")

// UploadService превращает загруженный файл в Document.
type UploadService interface {
	Extract(ctx context.Context, filename string, data []byte) (Document, error)
}

type uploadService struct {
	baseDir string
}

// NewUploadService creates the default implementation. Uploads are written to
// baseDir under a random name and removed once the text is read.
func NewUploadService(baseDir string) UploadService {
	if baseDir == "" {
		baseDir = "uploads"
	}
	return &uploadService{baseDir: baseDir}
}

func (s *uploadService) Extract(ctx context.Context, filename string, data []byte) (Document, error) {
	if !SupportedExtension(filename) {
		return Document{}, ErrUnsupportedFormat
	}
	if err := ctx.Err(); err != nil {
		return Document{}, err
	}

	doc := Document{
		ID:       uuid.New(),
		Filename: filepath.Base(filename),
		Ext:      Extension(filename),
		Size:     int64(len(data)),
	}

	if err := os.MkdirAll(s.baseDir, 0o755); err != nil {
		return Document{}, fmt.Errorf("prepare upload dir: %w", err)
	}
	dst := filepath.Join(s.baseDir, doc.ID.String()+doc.Ext)
	if err := os.WriteFile(dst, data, 0o600); err != nil {
		return Document{}, fmt.Errorf("store upload: %w", err)
	}
	defer func() {
		if err := os.Remove(dst); err != nil && !errors.Is(err, os.ErrNotExist) {
			logger.Ctx(ctx).Warn().Err(err).Str("path", dst).Msg("remove spooled upload")
		}
	}()

	doc.Text = ExtractFile(dst)
	if strings.TrimSpace(doc.Text) == "" {
		return Document{}, ErrEmptyText
	}
	return doc, nil
}
