// Package report collects the ordered action log of a generation run.
//
// Every emission and patch attempt appends exactly one entry. The report
// is the only mutable state a run produces besides the filesystem, and
// it is what the CLI renders and what the exit status is computed from.
package report

import (
	"fmt"
	"io"
)

// Action identifies what happened (or would happen) to a target path.
type Action string

const (
	// ActionCreated means a new file was written
	ActionCreated Action = "created"
	// ActionUpdated means an existing file was overwritten or patched
	ActionUpdated Action = "updated"
	// ActionSkipped means a patch record's guard was already present
	ActionSkipped Action = "skipped"
	// ActionWarning means a non-fatal structural mismatch (e.g. a host
	// file that does not exist)
	ActionWarning Action = "warning"
	// ActionError means a fatal per-target failure (write error or
	// missing anchor); the run continues but exits non-zero
	ActionError Action = "error"
)

// Entry is one attempted action.
type Entry struct {
	Action Action
	Path   string
	Detail string
}

// Report is the append-only ordered sequence of entries for one run.
// DryRun changes only how create/update entries are phrased; the
// decision logic that produced them is identical either way.
type Report struct {
	DryRun  bool
	entries []Entry
}

// New creates an empty report.
func New(dryRun bool) *Report {
	return &Report{DryRun: dryRun}
}

// Add appends an entry.
func (r *Report) Add(action Action, path, detail string) {
	r.entries = append(r.entries, Entry{Action: action, Path: path, Detail: detail})
}

// Entries returns the ordered entries.
func (r *Report) Entries() []Entry {
	return r.entries
}

// HasErrors reports whether any entry is an error. Warnings and
// skipped entries do not count as failures.
func (r *Report) HasErrors() bool {
	for _, e := range r.entries {
		if e.Action == ActionError {
			return true
		}
	}
	return false
}

// Count returns the number of entries with the given action.
func (r *Report) Count(action Action) int {
	n := 0
	for _, e := range r.entries {
		if e.Action == action {
			n++
		}
	}
	return n
}

// prefix returns the literal console prefix for an entry, honoring
// dry-run phrasing for mutating actions.
func (r *Report) prefix(e Entry) string {
	if r.DryRun {
		switch e.Action {
		case ActionCreated:
			return "dry-run would create"
		case ActionUpdated:
			return "dry-run would update"
		}
	}
	return string(e.Action)
}

// Render writes the report, one line per entry. When styled is true the
// prefixes are colored via the embedded style registry.
func (r *Report) Render(w io.Writer, styled bool) {
	for _, e := range r.entries {
		prefix := r.prefix(e)
		if styled {
			prefix = styleFor(e.Action).Render(prefix)
		}
		if e.Detail != "" {
			fmt.Fprintf(w, "%s %s (%s)\n", prefix, e.Path, e.Detail)
		} else {
			fmt.Fprintf(w, "%s %s\n", prefix, e.Path)
		}
	}
}
