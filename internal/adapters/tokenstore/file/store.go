// Package file persists the session token as a single 0600 file under the
// config directory. It is the only durable client-side state besides the
// config file itself.
package file

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fincoach/fincoach-cli/internal/domain"
	"github.com/fincoach/fincoach-cli/internal/ports"
)

const (
	storeDirMode  = 0o700
	tokenFileMode = 0o600
)

type Store struct {
	path string
	mu   sync.RWMutex
}

var _ ports.TokenStore = (*Store)(nil)

func NewStore(path string) *Store {
	return &Store{path: filepath.Clean(path)}
}

func (s *Store) Load(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", domain.ErrNoPersistedToken
		}
		return "", fmt.Errorf("read token file: %w", err)
	}

	token := strings.TrimSpace(string(data))
	if token == "" {
		return "", domain.ErrNoPersistedToken
	}

	return token, nil
}

func (s *Store) Save(ctx context.Context, token string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), storeDirMode); err != nil {
		return fmt.Errorf("create token directory: %w", err)
	}

	if err := os.WriteFile(s.path, []byte(token+"\n"), tokenFileMode); err != nil {
		return fmt.Errorf("write token file: %w", err)
	}

	return nil
}

func (s *Store) Clear(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove token file: %w", err)
	}

	return nil
}
