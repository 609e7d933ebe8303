package table

import (
	"strings"
	"testing"
)

func TestFromRecords_ColumnOrderIsDeterministic(t *testing.T) {
	t.Parallel()

	records := []map[string]any{
		{"team_id": "a", "team_name": "Alpha"},
		{"team_id": "b", "team_name": "Beta", "points": float64(10)},
	}

	got := FromRecords(records)
	want := []string{"team_id", "team_name", "points"}
	if len(got.Columns()) != len(want) {
		t.Fatalf("unexpected columns: %v", got.Columns())
	}
	for i, col := range got.Columns() {
		if col != want[i] {
			t.Fatalf("unexpected column order: got=%v want=%v", got.Columns(), want)
		}
	}
	if got.Len() != 2 {
		t.Fatalf("unexpected row count: %d", got.Len())
	}
}

func TestSelect_ReordersColumns(t *testing.T) {
	t.Parallel()

	in := FromRecords([]map[string]any{
		{"a": 1, "b": 2, "c": 3},
	})

	got, err := in.Select("c", "a")
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	cols := got.Columns()
	if cols[0] != "c" || cols[1] != "a" || len(cols) != 2 {
		t.Fatalf("unexpected projection: %v", cols)
	}
}

func TestSelect_MissingColumnFailsAndNamesIt(t *testing.T) {
	t.Parallel()

	in := FromRecords([]map[string]any{{"a": 1}})

	_, err := in.Select("a", "missing")
	if err == nil {
		t.Fatalf("expected error for missing column")
	}
	if !strings.Contains(err.Error(), "missing") {
		t.Fatalf("error should name the column: %v", err)
	}
	if !in.HasColumn("a") || in.Len() != 1 {
		t.Fatalf("input mutated by failed select")
	}
}

func TestExplode_ListScalarAndNilCells(t *testing.T) {
	t.Parallel()

	in := FromRecords([]map[string]any{
		{"player_id": "p1", "team_id": []any{"t1", "t2"}},
		{"player_id": "p2", "team_id": "t3"},
		{"player_id": "p3", "team_id": nil},
		{"player_id": "p4", "team_id": []any{}},
	})

	got := in.Explode("team_id")
	if got.Len() != 5 {
		t.Fatalf("expected 5 rows after explode, got=%d", got.Len())
	}

	first := got.Row(0)
	second := got.Row(1)
	if first["team_id"] != "t1" || second["team_id"] != "t2" {
		t.Fatalf("list cell not expanded in order: %v %v", first, second)
	}
	if first["player_id"] != "p1" || second["player_id"] != "p1" {
		t.Fatalf("expanded rows should share the other cells")
	}
	if got.Row(2)["team_id"] != "t3" {
		t.Fatalf("scalar cell should pass through")
	}
	if got.Row(4)["team_id"] != nil {
		t.Fatalf("empty list should degrade to nil cell")
	}
}

func TestPartition_DisjointAndComplete(t *testing.T) {
	t.Parallel()

	in := FromRecords([]map[string]any{
		{"name": "a", "pos": "GK"},
		{"name": "b", "pos": "DF"},
		{"name": "c", "pos": "GK"},
	})

	keepers, rest := in.Partition(func(row Row) bool {
		return row["pos"] == "GK"
	})
	if keepers.Len() != 2 || rest.Len() != 1 {
		t.Fatalf("unexpected split: keepers=%d rest=%d", keepers.Len(), rest.Len())
	}
	if keepers.Len()+rest.Len() != in.Len() {
		t.Fatalf("partition lost rows")
	}
}

func TestEnsureColumn_DefaultsOnlyWhenAbsent(t *testing.T) {
	t.Parallel()

	in := FromRecords([]map[string]any{{"a": float64(1)}})

	got := in.EnsureColumn("b", float64(0))
	if v, _ := Float(got.Row(0), "b"); v != 0 {
		t.Fatalf("expected defaulted cell, got=%v", got.Row(0)["b"])
	}

	again := got.EnsureColumn("a", float64(99))
	if v, _ := Float(again.Row(0), "a"); v != 1 {
		t.Fatalf("existing column must not be overwritten, got=%v", v)
	}
}

func TestCategorize_InternsRepeatedStrings(t *testing.T) {
	t.Parallel()

	in := FromRecords([]map[string]any{
		{"nationality": strings.Repeat("US", 2)},
		{"nationality": strings.Repeat("US", 2)},
	})

	got := in.Categorize("nationality", "not_there")
	first := got.Row(0)["nationality"].(string)
	second := got.Row(1)["nationality"].(string)
	if first != "USUS" || second != "USUS" {
		t.Fatalf("values changed by categorize: %q %q", first, second)
	}
}

func TestSuffixColumns_KeepsExceptions(t *testing.T) {
	t.Parallel()

	in := FromRecords([]map[string]any{
		{"team_id": "t1", "team_name": "Alpha"},
	})

	got := in.SuffixColumns("_home", "team_id")
	if !got.HasColumn("team_id") || !got.HasColumn("team_name_home") {
		t.Fatalf("unexpected columns: %v", got.Columns())
	}
	if got.HasColumn("team_name") {
		t.Fatalf("original column should have been renamed")
	}
	if got.Row(0)["team_name_home"] != "Alpha" {
		t.Fatalf("cell lost during rename")
	}
}

func TestSummary_CapsColumnList(t *testing.T) {
	t.Parallel()

	in := New("c1", "c2", "c3", "c4", "c5", "c6", "c7", "c8", "c9", "c10")
	got := in.Summary()
	if !strings.Contains(got, "rows=0") || !strings.Contains(got, "cols=10") {
		t.Fatalf("unexpected summary: %s", got)
	}
	if !strings.Contains(got, "...") {
		t.Fatalf("long column list should be capped: %s", got)
	}
}
