package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"

	"github.com/spf13/afero"
)

// AttachmentStore holds uploaded binaries (profile pictures, CVs, hospital
// images). The rest of the system treats it as opaque and only ever keeps
// the filename reference on a record.
type AttachmentStore interface {
	Save(ctx context.Context, filename string, content io.Reader) error
	Delete(ctx context.Context, filename string) error
}

type fsAttachmentStore struct {
	fs  afero.Fs
	dir string
}

// NewAttachmentStore stores attachments under dir on the given filesystem.
// Production uses afero.NewOsFs(); tests use an in-memory filesystem.
func NewAttachmentStore(fs afero.Fs, dir string) (AttachmentStore, error) {
	if err := fs.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create attachment directory: %w", err)
	}
	return &fsAttachmentStore{fs: fs, dir: dir}, nil
}

func (s *fsAttachmentStore) path(filename string) string {
	// Uploaded names come from clients; keep only the base name so a crafted
	// filename cannot escape the attachment directory.
	return filepath.Join(s.dir, filepath.Base(filename))
}

func (s *fsAttachmentStore) Save(ctx context.Context, filename string, content io.Reader) error {
	file, err := s.fs.Create(s.path(filename))
	if err != nil {
		return fmt.Errorf("failed to create attachment %s: %w", filename, err)
	}
	defer file.Close()

	if _, err := io.Copy(file, content); err != nil {
		return fmt.Errorf("failed to write attachment %s: %w", filename, err)
	}
	return nil
}

// Delete removes an attachment. Deleting a filename that is already gone is
// not an error; the record reference is cleared either way.
func (s *fsAttachmentStore) Delete(ctx context.Context, filename string) error {
	err := s.fs.Remove(s.path(filename))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to delete attachment %s: %w", filename, err)
	}
	return nil
}
