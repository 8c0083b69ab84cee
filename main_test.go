package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ViniZap4/quickmemo/domain"
)

func TestPrintMemos(t *testing.T) {
	var buf bytes.Buffer
	memos := []*domain.Memo{
		{ID: "2", Title: "newer", UpdatedAt: time.Date(2024, 1, 2, 9, 0, 0, 0, time.Local)},
		{ID: "1", Title: "older", UpdatedAt: time.Date(2024, 1, 1, 9, 0, 0, 0, time.Local)},
	}

	require.NoError(t, printMemos(&buf, memos))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "ID"))
	assert.Contains(t, lines[1], "2024-01-02 09:00:00")
	assert.Contains(t, lines[1], "newer")
	assert.Contains(t, lines[2], "older")
}
