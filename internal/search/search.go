package search

import (
	"database/sql"
	"fmt"
	"strings"
	"unicode"

	"github.com/Zuo-Peng/chat-analyzer/internal/index"
)

type Result struct {
	ID      int // message position, usable with preview --hit
	Ts      string
	Sender  string
	Kind    string
	Snippet string
	Line    int
	Rank    float64
}

type Options struct {
	Query  string
	Sender string // "" = all
	System bool   // only group notifications
	Since  string // "" = no filter, e.g. "2024-01-01"
	Limit  int
}

// containsCJK returns true if the string contains any CJK Unified Ideograph.
// unicode61 does not split Han text into words, so such queries fall back to
// a substring scan.
func containsCJK(s string) bool {
	for _, r := range s {
		if unicode.Is(unicode.Han, r) {
			return true
		}
	}
	return false
}

// makeSnippet extracts a snippet around the first occurrence of query in text.
func makeSnippet(text, query string, contextChars int) string {
	runes := []rune(text)
	idx := strings.Index(strings.ToLower(text), strings.ToLower(query))
	if idx < 0 || query == "" {
		if len(runes) > contextChars*2 {
			return string(runes[:contextChars*2]) + "..."
		}
		return text
	}
	qLen := len([]rune(query))
	pos := len([]rune(strings.ToLower(text)[:idx]))
	if pos+qLen > len(runes) {
		pos = max(len(runes)-qLen, 0)
	}
	start := max(pos-contextChars, 0)
	end := min(pos+qLen+contextChars, len(runes))

	prefix, suffix := "", ""
	if start > 0 {
		prefix = "..."
	}
	if end < len(runes) {
		suffix = "..."
	}
	snippet := string(runes[start:pos]) +
		">>>" + string(runes[pos:pos+qLen]) + "<<<" +
		string(runes[pos+qLen:end])
	return prefix + snippet + suffix
}

func Search(db *index.DB, opts Options) ([]Result, error) {
	if opts.Limit <= 0 {
		opts.Limit = 100
	}
	if strings.TrimSpace(opts.Query) == "" {
		return nil, fmt.Errorf("empty query")
	}
	if containsCJK(opts.Query) {
		return searchLike(db, opts)
	}
	return searchFTS(db, opts)
}

func filters(opts Options) ([]string, []any) {
	var conditions []string
	var args []any

	switch {
	case opts.System:
		conditions = append(conditions, "m.kind = 'system'")
	case opts.Sender != "":
		conditions = append(conditions, "m.kind = 'personal' AND m.sender = ?")
		args = append(args, opts.Sender)
	}

	if opts.Since != "" {
		conditions = append(conditions, "m.ts >= ?")
		args = append(args, opts.Since)
	}
	return conditions, args
}

// ftsQuery quotes each term so user punctuation is not read as FTS5 syntax.
func ftsQuery(q string) string {
	terms := strings.Fields(q)
	for i, t := range terms {
		terms[i] = `"` + strings.ReplaceAll(t, `"`, `""`) + `"`
	}
	return strings.Join(terms, " ")
}

func searchFTS(db *index.DB, opts Options) ([]Result, error) {
	conditions, args := filters(opts)
	conditions = append([]string{"messages_fts MATCH ?"}, conditions...)
	args = append([]any{ftsQuery(opts.Query)}, args...)

	query := fmt.Sprintf(`
		SELECT
			m.id,
			m.ts,
			m.sender,
			m.kind,
			snippet(messages_fts, 0, '>>>', '<<<', '...', 20) AS snip,
			m.line,
			bm25(messages_fts) AS rank
		FROM messages_fts
		JOIN messages m ON messages_fts.rowid = m.id
		WHERE %s
		ORDER BY rank, m.id
		LIMIT ?
	`, strings.Join(conditions, " AND "))
	args = append(args, opts.Limit)

	rows, err := db.Raw().Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("search query: %w", err)
	}
	defer rows.Close()

	return scanResults(rows)
}

func searchLike(db *index.DB, opts Options) ([]Result, error) {
	conditions, args := filters(opts)
	conditions = append([]string{"m.body LIKE ?"}, conditions...)
	args = append([]any{"%" + opts.Query + "%"}, args...)

	query := fmt.Sprintf(`
		SELECT m.id, m.ts, m.sender, m.kind, m.body, m.line
		FROM messages m
		WHERE %s
		ORDER BY m.id
		LIMIT ?
	`, strings.Join(conditions, " AND "))
	args = append(args, opts.Limit)

	rows, err := db.Raw().Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("search query: %w", err)
	}
	defer rows.Close()

	var results []Result
	for rows.Next() {
		var r Result
		var body string
		if err := rows.Scan(&r.ID, &r.Ts, &r.Sender, &r.Kind, &body, &r.Line); err != nil {
			return nil, err
		}
		r.Snippet = makeSnippet(body, opts.Query, 20)
		results = append(results, r)
	}
	return results, rows.Err()
}

func scanResults(rows *sql.Rows) ([]Result, error) {
	var results []Result
	for rows.Next() {
		var r Result
		if err := rows.Scan(&r.ID, &r.Ts, &r.Sender, &r.Kind, &r.Snippet, &r.Line, &r.Rank); err != nil {
			return nil, err
		}
		results = append(results, r)
	}
	return results, rows.Err()
}
