// Package patch applies anchor-based insertions to shared host files.
//
// Each record inserts a block immediately after a literal anchor string.
// A per-record guard string makes the operation idempotent: when the
// guard is already present the record is skipped, so running the same
// plan twice leaves the file byte-identical to running it once.
package patch

import (
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/langgen/pkg/errors"
	"github.com/arthur-debert/langgen/pkg/logging"
	"github.com/arthur-debert/langgen/pkg/report"
	"github.com/arthur-debert/langgen/pkg/types"
)

// Record is one insertion into a host file.
type Record struct {
	// Anchor is the literal text the insertion is placed after. It must
	// occur in the host file, or applying the record fails.
	Anchor string
	// Insertion is the text placed immediately after the anchor.
	Insertion string
	// Guard is a literal whose presence means this record has already
	// been applied (or the language was added by hand). The match is a
	// plain substring check, so guards must end at a delimiter; a guard
	// like "tests/bo" would also match an existing "tests/bog".
	Guard string
}

// FilePlan groups the records targeting one host file. Records are
// applied against an in-memory copy and the file is written at most
// once, so a missing anchor leaves the file untouched.
type FilePlan struct {
	// Path is relative to the project root, slash-separated.
	Path    string
	Records []Record
}

// Patcher applies file plans and records the outcome of each file as
// one report entry.
type Patcher struct {
	fs     types.FS
	root   string
	logger zerolog.Logger
}

// New creates a patcher rooted at the project directory.
func New(fsys types.FS, root string) *Patcher {
	return &Patcher{
		fs:     fsys,
		root:   root,
		logger: logging.GetLogger("patch"),
	}
}

// Apply runs every record of the plan against its host file.
//
// A host file that does not exist yields a warning entry, not an error:
// stripped-down project trees are allowed to lack some of the shared
// files. A missing anchor yields an error entry and the file is left
// unmodified. When every record's guard is already present the entry is
// "skipped (already applied)".
func (p *Patcher) Apply(plan FilePlan, rep *report.Report) {
	target := filepath.Join(p.root, filepath.FromSlash(plan.Path))

	if _, err := p.fs.Stat(target); err != nil {
		p.logger.Debug().Str("path", plan.Path).Msg("host file missing, skipping")
		rep.Add(report.ActionWarning, plan.Path, "file not found, skipped")
		return
	}

	raw, err := p.fs.ReadFile(target)
	if err != nil {
		rep.Add(report.ActionError, plan.Path, errors.Wrapf(err, errors.ErrHostFileRead, "reading %s", plan.Path).Error())
		return
	}
	content := string(raw)

	applied := 0
	for _, rec := range plan.Records {
		if strings.Contains(content, rec.Guard) {
			p.logger.Debug().Str("path", plan.Path).Str("guard", rec.Guard).Msg("guard present, record skipped")
			continue
		}
		if !strings.Contains(content, rec.Anchor) {
			rep.Add(report.ActionError, plan.Path, anchorNotFound(plan.Path, rec.Anchor).Error())
			return
		}
		content = strings.Replace(content, rec.Anchor, rec.Anchor+rec.Insertion, 1)
		applied++
	}

	if applied == 0 {
		rep.Add(report.ActionSkipped, plan.Path, "already applied")
		return
	}

	if !rep.DryRun {
		if err := p.fs.WriteFile(target, []byte(content), 0o644); err != nil {
			rep.Add(report.ActionError, plan.Path, errors.Wrapf(err, errors.ErrHostFileWrite, "writing %s", plan.Path).Error())
			return
		}
	}

	p.logger.Info().Str("path", plan.Path).Int("records", applied).Bool("dryRun", rep.DryRun).Msg("patched host file")
	rep.Add(report.ActionUpdated, plan.Path, "")
}

// anchorNotFound builds the error for a host file that exists but lacks
// the expected anchor text. Callers can distinguish it from plain I/O
// failures via errors.IsErrorCode.
func anchorNotFound(path, anchor string) *errors.LanggenError {
	display := anchor
	if i := strings.IndexByte(display, '\n'); i >= 0 {
		display = display[:i] + "..."
	}
	return errors.Newf(errors.ErrAnchorNotFound, "anchor %q not found in %s", display, path)
}
