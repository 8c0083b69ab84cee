// quickmemo/domain/memo.go
package domain

import (
	"errors"
	"strconv"
	"strings"
	"time"
)

// DefaultTitle is used when a memo starts empty or a scratch buffer has no first line.
const DefaultTitle = "non title"

const displayLayout = "2006-01-02 15:04:05"

var (
	ErrNotFound    = errors.New("memo not found")
	ErrDuplicateID = errors.New("memo id already exists")
)

type Memo struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	FilePath  string    `json:"-"`
}

// NewMemo returns an unsaved memo whose id is the current Unix time in
// milliseconds. Two memos created within the same millisecond share an id.
func NewMemo(title, content string) *Memo {
	now := time.Now()
	return &Memo{
		ID:        strconv.FormatInt(now.UnixMilli(), 10),
		Title:     title,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Update replaces title and content and refreshes UpdatedAt.
func (m *Memo) Update(title, content string) {
	m.Title = title
	m.Content = content
	m.UpdatedAt = time.Now()
}

func (m *Memo) DisplayDate() string {
	return m.UpdatedAt.Format(displayLayout)
}

// ScratchContent is the flat form written to the autosave file.
func ScratchContent(title, content string) string {
	return title + "\n" + content
}

// SplitScratch reverses ScratchContent: the first line becomes the title and
// the remaining lines the content.
func SplitScratch(s string) (title, content string) {
	if s == "" {
		return DefaultTitle, ""
	}
	s = strings.TrimSuffix(s, "\n")

	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines[0], strings.Join(lines[1:], "\n")
}
