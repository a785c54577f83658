package table

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// assertRows fails the test when got differs from want.
func assertRows(t *testing.T, want, got []Row) {
	t.Helper()

	if diff := cmp.Diff(want, got, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("rows mismatch (-want +got):\n%s", diff)
	}
}

// sampleRows returns a small ragged grid with a separator.
func sampleRows() []Row {
	return []Row{
		Data("name", "qty", "note"),
		Separator(),
		Data("apple", "3"),
		Data("りんご", "12", "red", "extra"),
	}
}
