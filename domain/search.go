// quickmemo/domain/search.go
package domain

import (
	"strings"

	"github.com/gobwas/glob"
)

// Filter returns the memos whose title or content match query, keeping order.
// Plain queries are case-insensitive substring matches; queries containing
// '*' or '?' are glob patterns matched against the whole title or content.
func Filter(memos []*Memo, query string) []*Memo {
	if query == "" {
		return memos
	}

	match := matcher(strings.ToLower(query))
	var out []*Memo
	for _, m := range memos {
		if match(strings.ToLower(m.Title)) || match(strings.ToLower(m.Content)) {
			out = append(out, m)
		}
	}
	return out
}

func matcher(query string) func(string) bool {
	if strings.ContainsAny(query, "*?") {
		g, err := glob.Compile(query)
		if err == nil {
			return g.Match
		}
	}
	return func(s string) bool {
		return strings.Contains(s, query)
	}
}
