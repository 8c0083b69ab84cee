// quickmemo/filesystem/storage.go
package filesystem

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ViniZap4/quickmemo/domain"
)

const memoExt = ".json"

// Storage keeps one JSON file per memo in a single directory. The directory
// listing is the only index.
type Storage struct {
	dir string
	log zerolog.Logger
}

// NewStorage creates dir if needed.
func NewStorage(dir string, log zerolog.Logger) (*Storage, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create memo directory: %w", err)
	}
	return &Storage{dir: dir, log: log.With().Str("component", "storage").Logger()}, nil
}

func (s *Storage) Dir() string {
	return s.dir
}

func (s *Storage) pathFor(id string) string {
	return filepath.Join(s.dir, id+memoExt)
}

// Save writes memo to its file, assigning memo.FilePath on the first save.
// If the file derived from a new memo's id is already taken, the id gets a
// random suffix so an unrelated memo is never overwritten.
func (s *Storage) Save(memo *domain.Memo) error {
	if memo.FilePath == "" {
		path := s.pathFor(memo.ID)
		if _, err := os.Stat(path); err == nil {
			oldID := memo.ID
			memo.ID = oldID + "-" + uuid.NewString()[:8]
			path = s.pathFor(memo.ID)
			s.log.Warn().Str("id", oldID).Str("new_id", memo.ID).Msg("memo id already on disk, reassigned")
		}
		memo.FilePath = path
	}

	if err := WriteMemo(memo); err != nil {
		return fmt.Errorf("failed to save memo %s: %w", memo.ID, err)
	}
	return nil
}

// LoadAll reads every memo in the directory, newest update first. Files that
// do not parse are skipped. A missing directory yields no memos.
func (s *Storage) LoadAll() ([]*domain.Memo, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	var memos []*domain.Memo
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		path := filepath.Join(s.dir, entry.Name())
		memo, err := ReadMemo(path)
		if err != nil {
			s.log.Debug().Err(err).Str("path", path).Msg("skipping unreadable memo")
			continue
		}
		memos = append(memos, memo)
	}

	slices.SortStableFunc(memos, func(a, b *domain.Memo) int {
		return b.UpdatedAt.Compare(a.UpdatedAt)
	})

	return memos, nil
}

// Find loads the memo with the given id.
func (s *Storage) Find(id string) (*domain.Memo, error) {
	if id == "" || id != filepath.Base(id) {
		return nil, domain.ErrNotFound
	}

	memo, err := ReadMemo(s.pathFor(id))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return memo, nil
}

// Delete removes the memo's file. A memo that was never saved is a no-op.
func (s *Storage) Delete(memo *domain.Memo) error {
	if memo.FilePath == "" {
		return nil
	}
	return os.Remove(memo.FilePath)
}

// Exists reports whether the memo's file is still on disk.
func (s *Storage) Exists(memo *domain.Memo) bool {
	return Exists(memo)
}

// Exists reports whether the memo's file is still on disk.
func Exists(memo *domain.Memo) bool {
	if memo.FilePath == "" {
		return false
	}
	_, err := os.Stat(memo.FilePath)
	return err == nil
}
