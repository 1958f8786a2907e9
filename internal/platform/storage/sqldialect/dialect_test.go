package sqldialect

import "testing"

func TestRebind(t *testing.T) {
	query := "UPDATE agendas SET name = $1, email = $2 WHERE id = $10"

	if got := Postgres.Rebind(query); got != query {
		t.Fatalf("postgres rebind = %q, want unchanged", got)
	}
	want := "UPDATE agendas SET name = ?1, email = ?2 WHERE id = ?10"
	if got := SQLite.Rebind(query); got != want {
		t.Fatalf("sqlite rebind = %q, want %q", got, want)
	}
}

func TestRebindLeavesQueriesWithoutPlaceholders(t *testing.T) {
	query := "SELECT COUNT(*) FROM agendas"
	if got := SQLite.Rebind(query); got != query {
		t.Fatalf("rebind = %q, want unchanged", got)
	}
}
