// Package generator orchestrates a full language scaffolding run:
// validate the name, resolve the project root, emit the artifact set,
// and patch the shared host files when registration is centralized.
package generator

import (
	"github.com/arthur-debert/langgen/pkg/config"
	"github.com/arthur-debert/langgen/pkg/emitter"
	"github.com/arthur-debert/langgen/pkg/filesystem"
	"github.com/arthur-debert/langgen/pkg/logging"
	"github.com/arthur-debert/langgen/pkg/names"
	"github.com/arthur-debert/langgen/pkg/patch"
	"github.com/arthur-debert/langgen/pkg/project"
	"github.com/arthur-debert/langgen/pkg/report"
	"github.com/arthur-debert/langgen/pkg/templates"
	"github.com/arthur-debert/langgen/pkg/types"
)

// Options configures one generation run. Strategy fields left empty
// fall back to the project config, then to the built-in defaults.
type Options struct {
	// Name is the raw language identifier.
	Name string
	// Extensions are the file extensions, with or without leading dots.
	// Empty means ".<name>".
	Extensions []string
	// Parser overrides the parser strategy when non-empty.
	Parser string
	// Registration overrides the registration strategy when non-empty.
	Registration string
	// Protect overrides the overwrite policy when non-nil.
	Protect *bool
	// DryRun computes and reports every action without touching the
	// filesystem.
	DryRun bool
	// Root is the project root. Empty means walk up from StartDir.
	Root string
	// StartDir is where root discovery begins, usually the working
	// directory.
	StartDir string
	// FileSystem defaults to the real OS filesystem.
	FileSystem types.FS
}

// Run executes a generation run and returns its report. An error return
// means the run never started mutating anything: bad input, no project
// root, or a malformed config file. Per-file failures during emission
// and patching are recorded in the report instead, and the run carries
// on so one broken target does not hide the rest.
func Run(opts Options) (*report.Report, error) {
	logger := logging.GetLogger("generator")

	fsys := opts.FileSystem
	if fsys == nil {
		fsys = filesystem.NewOS()
	}

	set, err := names.Derive(opts.Name, opts.Extensions)
	if err != nil {
		return nil, err
	}

	root := opts.Root
	if root != "" {
		root, err = project.VerifyRoot(fsys, root)
	} else {
		root, err = project.FindRoot(fsys, opts.StartDir)
	}
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(fsys, root)
	if err != nil {
		return nil, err
	}

	parserValue := cfg.Parser
	if opts.Parser != "" {
		parserValue = opts.Parser
	}
	parser, err := templates.ParseParserStrategy(parserValue)
	if err != nil {
		return nil, err
	}

	registrationValue := cfg.Registration
	if opts.Registration != "" {
		registrationValue = opts.Registration
	}
	registration, err := templates.ParseRegistrationStrategy(registrationValue)
	if err != nil {
		return nil, err
	}

	protect := cfg.Protect
	if opts.Protect != nil {
		protect = *opts.Protect
	}

	logger.Info().
		Str("name", set.Lower).
		Strs("extensions", set.Extensions).
		Str("parser", string(parser)).
		Str("registration", string(registration)).
		Bool("protect", protect).
		Bool("dryRun", opts.DryRun).
		Str("root", root).
		Msg("starting generation run")

	vars := templates.VarsFor(set)
	rep := report.New(opts.DryRun)

	emitter.New(fsys, root, protect).Emit(templates.Plan(parser, registration), vars, rep)

	if registration == templates.RegistrationCentralized {
		patcher := patch.New(fsys, root)
		for _, plan := range patch.CentralizedPlan(vars) {
			patcher.Apply(plan, rep)
		}
	}

	return rep, nil
}

// Plan computes the artifact paths a run would emit, without needing a
// project root. It backs the plan subcommand.
func Plan(name string, extensions []string, parser templates.ParserStrategy, registration templates.RegistrationStrategy) ([]string, error) {
	set, err := names.Derive(name, extensions)
	if err != nil {
		return nil, err
	}
	vars := templates.VarsFor(set)

	var paths []string
	for _, a := range templates.Plan(parser, registration) {
		relPath, _, err := templates.Render(a, vars)
		if err != nil {
			return nil, err
		}
		paths = append(paths, relPath)
	}
	if registration == templates.RegistrationCentralized {
		for _, fp := range patch.CentralizedPlan(vars) {
			paths = append(paths, fp.Path)
		}
	}
	return paths, nil
}
