// quickmemo/filesystem/parser.go
package filesystem

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/ViniZap4/quickmemo/domain"
)

// ReadMemo parses the memo stored at path and records path as its FilePath.
// JSON without an id or timestamps is not a memo and is rejected.
func ReadMemo(path string) (*domain.Memo, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	memo := &domain.Memo{}
	if err := json.Unmarshal(data, memo); err != nil {
		return nil, fmt.Errorf("failed to parse memo %s: %w", path, err)
	}
	if memo.ID == "" || memo.CreatedAt.IsZero() || memo.UpdatedAt.IsZero() {
		return nil, fmt.Errorf("failed to parse memo %s: missing id or timestamps", path)
	}
	memo.FilePath = path

	return memo, nil
}

// WriteMemo overwrites memo.FilePath with the memo encoded as indented JSON.
func WriteMemo(memo *domain.Memo) error {
	if memo.FilePath == "" {
		return fmt.Errorf("memo %s has no file path", memo.ID)
	}

	data, err := json.MarshalIndent(memo, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode memo: %w", err)
	}

	return os.WriteFile(memo.FilePath, data, 0644)
}
