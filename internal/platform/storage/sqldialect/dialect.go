// Package sqldialect hides placeholder differences between the SQL engines
// the agenda store runs on. Queries are written with PostgreSQL-style $N
// placeholders and rebound per engine.
package sqldialect

import "regexp"

// Placeholder is the bind-parameter syntax an engine accepts.
type Placeholder int

const (
	// Dollar keeps $1, $2, ... (PostgreSQL).
	Dollar Placeholder = iota
	// QuestionNumber rewrites $N to ?N (SQLite numbered parameters).
	QuestionNumber
)

// Dialect describes one SQL engine.
type Dialect struct {
	Name        string
	Placeholder Placeholder
}

var (
	// Postgres is the PostgreSQL dialect.
	Postgres = Dialect{Name: "postgres", Placeholder: Dollar}
	// SQLite is the SQLite dialect.
	SQLite = Dialect{Name: "sqlite", Placeholder: QuestionNumber}
)

var dollarPlaceholderRe = regexp.MustCompile(`\$(\d+)`)

// Rebind converts $N placeholders in query to the dialect's syntax.
func (d Dialect) Rebind(query string) string {
	switch d.Placeholder {
	case QuestionNumber:
		return dollarPlaceholderRe.ReplaceAllString(query, "?${1}")
	default:
		return query
	}
}
