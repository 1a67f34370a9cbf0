// Package emitter writes rendered artifacts to the project tree.
package emitter

import (
	"bytes"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/langgen/pkg/errors"
	"github.com/arthur-debert/langgen/pkg/logging"
	"github.com/arthur-debert/langgen/pkg/report"
	"github.com/arthur-debert/langgen/pkg/templates"
	"github.com/arthur-debert/langgen/pkg/types"
)

// Emitter renders an artifact plan and writes each file under the
// project root, recording one report entry per artifact.
type Emitter struct {
	fs      types.FS
	root    string
	protect bool
	logger  zerolog.Logger
}

// New creates an emitter rooted at the project directory. With protect
// set, an existing file whose content differs from the rendered output
// is reported as an error instead of being overwritten.
func New(fsys types.FS, root string, protect bool) *Emitter {
	return &Emitter{
		fs:      fsys,
		root:    root,
		protect: protect,
		logger:  logging.GetLogger("emitter"),
	}
}

// Emit renders and writes every artifact in the plan. A failure on one
// artifact is recorded and emission continues with the next, so a run
// always yields a complete report.
//
// Emission is idempotent: a file that already holds exactly the
// rendered content is reported as skipped and not rewritten.
func (e *Emitter) Emit(plan []templates.Artifact, vars templates.Vars, rep *report.Report) {
	for _, artifact := range plan {
		e.emitOne(artifact, vars, rep)
	}
}

func (e *Emitter) emitOne(artifact templates.Artifact, vars templates.Vars, rep *report.Report) {
	relPath, content, err := templates.Render(artifact, vars)
	if err != nil {
		rep.Add(report.ActionError, string(artifact.Kind), err.Error())
		return
	}

	target := filepath.Join(e.root, filepath.FromSlash(relPath))

	existing, statErr := e.fs.Stat(target)
	exists := statErr == nil && !existing.IsDir()

	if exists {
		current, readErr := e.fs.ReadFile(target)
		if readErr == nil && bytes.Equal(current, content) {
			rep.Add(report.ActionSkipped, relPath, "up to date")
			return
		}
		if e.protect {
			err := errors.Newf(errors.ErrArtifactExists, "%s exists, refusing to overwrite", relPath)
			rep.Add(report.ActionError, relPath, err.Error())
			return
		}
	}

	if !rep.DryRun {
		if err := e.fs.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			rep.Add(report.ActionError, relPath, errors.Wrapf(err, errors.ErrDirCreate, "creating %s", filepath.Dir(relPath)).Error())
			return
		}
		if err := e.fs.WriteFile(target, content, 0o644); err != nil {
			rep.Add(report.ActionError, relPath, errors.Wrapf(err, errors.ErrFileWrite, "writing %s", relPath).Error())
			return
		}
	}

	action := report.ActionCreated
	if exists {
		action = report.ActionUpdated
	}
	e.logger.Debug().Str("path", relPath).Str("kind", string(artifact.Kind)).Bool("dryRun", rep.DryRun).Msg("emitted artifact")
	rep.Add(action, relPath, "")
}
