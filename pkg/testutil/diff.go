package testutil

import (
	"github.com/pmezard/go-difflib/difflib"
)

// UnifiedDiff returns a classic unified diff between two file contents.
// Test assertions use it to show where regenerated output diverged
// instead of dumping both files wholesale.
func UnifiedDiff(name string, want, got string) string {
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(want),
		B:        difflib.SplitLines(got),
		FromFile: "want/" + name,
		ToFile:   "got/" + name,
		Context:  3,
	})
	if err != nil {
		return "diff failed: " + err.Error()
	}
	return diff
}
