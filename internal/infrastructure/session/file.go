package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/abkhaztransfer/transfer-client/internal/core/domain"
	"github.com/abkhaztransfer/transfer-client/internal/core/ports"
	"github.com/abkhaztransfer/transfer-client/internal/metrics"
)

// fileRecord mirrors the two keyed entries on disk.
type fileRecord struct {
	AuthToken string `json:"auth_token,omitempty"`
	User      string `json:"user,omitempty"`
}

// FileStore persists the session in a JSON file on the local device.
// Writes go to a temp file that is renamed over the target, so both entries
// change together.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (f *FileStore) Get(_ context.Context) (*domain.Session, error) {
	b, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read session file: %w", err)
	}

	var rec fileRecord
	if err := json.Unmarshal(b, &rec); err != nil {
		return nil, fmt.Errorf("parse session file: %w", err)
	}
	return Decode(rec.AuthToken, rec.User)
}

func (f *FileStore) Set(_ context.Context, s domain.Session) error {
	token, user, err := Encode(s)
	if err != nil {
		return err
	}
	b, err := json.Marshal(fileRecord{AuthToken: token, User: user})
	if err != nil {
		return fmt.Errorf("encode session file: %w", err)
	}
	if err := f.write(b); err != nil {
		return err
	}
	metrics.SessionWritesTotal.WithLabelValues("file", "set").Inc()
	return nil
}

func (f *FileStore) Clear(_ context.Context) error {
	if err := os.Remove(f.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove session file: %w", err)
	}
	metrics.SessionWritesTotal.WithLabelValues("file", "clear").Inc()
	return nil
}

func (f *FileStore) write(b []byte) error {
	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".session-*")
	if err != nil {
		return fmt.Errorf("create temp session file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(b); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write session file: %w", err)
	}
	if err := tmp.Chmod(0o600); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("chmod session file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close session file: %w", err)
	}
	if err := os.Rename(tmp.Name(), f.path); err != nil {
		return fmt.Errorf("replace session file: %w", err)
	}
	return nil
}

var _ ports.SessionStore = (*FileStore)(nil)
