package reportstore

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"coolslate/internal/pkg/config"
	"coolslate/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrNotPDF    = errs.New("completion report must be a PDF file")
	ErrTooLarge  = errs.New("completion report exceeds the size limit")
	ErrEmptyFile = errs.New("completion report is empty")
)

var pdfMagic = []byte("%PDF-")

// LocalStore keeps completion report PDFs on the local filesystem, one file
// per order keyed by a fresh UUID.
type LocalStore struct {
	dir     string
	maxSize int64
}

func NewLocalStore(cfg config.ReportsConfig) (*LocalStore, error) {
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, errs.Wrap(err, "failed to create report directory")
	}
	return &LocalStore{dir: cfg.Dir, maxSize: cfg.MaxSizeBytes}, nil
}

// Save validates and persists the report, returning its storage path.
func (s *LocalStore) Save(orderID uuid.UUID, content []byte) (string, error) {
	if len(content) == 0 {
		return "", ErrEmptyFile
	}
	if int64(len(content)) > s.maxSize {
		return "", ErrTooLarge
	}
	if !bytes.HasPrefix(content, pdfMagic) {
		return "", ErrNotPDF
	}

	name := fmt.Sprintf("%s-%s.pdf", orderID, uuid.New())
	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return "", errs.Wrap(err, "failed to write report file")
	}
	return path, nil
}

func (s *LocalStore) MaxSize() int64 {
	return s.maxSize
}
