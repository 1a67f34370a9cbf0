// Package templates holds the fixed artifact catalog for language
// generation and renders it against a derived name set.
//
// The catalog is pure data: which artifacts exist and where they land
// depends only on the two strategy tags, never on filesystem contents.
// Two runs with identical inputs therefore always attempt identical
// actions.
package templates

import (
	"bytes"
	"embed"
	"text/template"

	"github.com/arthur-debert/langgen/pkg/errors"
	"github.com/arthur-debert/langgen/pkg/names"
)

// ParserStrategy selects how the generated language parses programs.
type ParserStrategy string

const (
	// ParserHandWritten emits a recursive-descent tokenizer in C
	ParserHandWritten ParserStrategy = "handwritten"
	// ParserGrammar emits a PEG grammar compiled at build time
	ParserGrammar ParserStrategy = "grammar"
)

// ParseParserStrategy converts a flag or config value.
func ParseParserStrategy(s string) (ParserStrategy, error) {
	switch ParserStrategy(s) {
	case ParserHandWritten, ParserGrammar:
		return ParserStrategy(s), nil
	}
	return "", errors.Newf(errors.ErrInvalidInput, "unknown parser strategy %q (want handwritten or grammar)", s)
}

// RegistrationStrategy selects how the host learns about the plugin.
type RegistrationStrategy string

const (
	// RegistrationCentralized patches the fixed set of shared host
	// files so the host statically recognizes the language
	RegistrationCentralized RegistrationStrategy = "centralized"
	// RegistrationStandalone emits a self-contained directory that the
	// host build system auto-discovers; no host file is touched
	RegistrationStandalone RegistrationStrategy = "standalone"
)

// ParseRegistrationStrategy converts a flag or config value.
func ParseRegistrationStrategy(s string) (RegistrationStrategy, error) {
	switch RegistrationStrategy(s) {
	case RegistrationCentralized, RegistrationStandalone:
		return RegistrationStrategy(s), nil
	}
	return "", errors.Newf(errors.ErrInvalidInput, "unknown registration strategy %q (want centralized or standalone)", s)
}

// Kind identifies one logical artifact of a generated language.
type Kind string

const (
	KindRegisterHeader Kind = "register-header"
	KindRegisterSource Kind = "register-source"
	KindREPLHeader     Kind = "repl-header"
	KindREPLSource     Kind = "repl-source"
	KindDispatchSource Kind = "dispatch-source"
	KindParserHeader   Kind = "parser-header"
	KindParserSource   Kind = "parser-source"
	KindGrammar        Kind = "grammar"
	KindRuntimeHeader  Kind = "runtime-header"
	KindRuntimeSource  Kind = "runtime-source"
	KindBuildRule      Kind = "build-rule"
	KindTestBuildRule  Kind = "test-build-rule"
	KindTestSuite      Kind = "test-suite"
	KindReadme         Kind = "readme"
	KindSyntaxFile     Kind = "syntax-file"
	KindExample        Kind = "example"
)

// Artifact couples a kind with its path pattern and content template.
// Both patterns are text/template sources over Vars.
type Artifact struct {
	Kind         Kind
	PathTemplate string
	TemplateFile string
}

//go:embed files
var files embed.FS

// Plan returns the fixed, ordered artifact list for a strategy pair.
// The order matches the original generator's emission order, though
// nothing depends on it: artifacts never reference each other during
// emission.
func Plan(parser ParserStrategy, registration RegistrationStrategy) []Artifact {
	dir := "src/lang/{{.Lower}}"
	if registration == RegistrationStandalone {
		dir = "source/langs/{{.Lower}}"
	}
	tdir := string(parser)

	var plan []Artifact
	add := func(kind Kind, path, tmpl string) {
		plan = append(plan, Artifact{Kind: kind, PathTemplate: path, TemplateFile: tdir + "/" + tmpl})
	}

	add(KindRegisterHeader, dir+"/register.h", "register.h.tmpl")
	add(KindRegisterSource, dir+"/register.c", "register.c.tmpl")
	if parser == ParserHandWritten {
		add(KindREPLHeader, dir+"/repl.h", "repl.h.tmpl")
	}
	add(KindREPLSource, dir+"/repl.c", "repl.c.tmpl")
	add(KindDispatchSource, dir+"/dispatch.c", "dispatch.c.tmpl")

	if parser == ParserHandWritten {
		add(KindParserHeader, dir+"/impl/{{.Lower}}_parser.h", "parser.h.tmpl")
		add(KindParserSource, dir+"/impl/{{.Lower}}_parser.c", "parser.c.tmpl")
	} else {
		add(KindGrammar, dir+"/impl/{{.Lower}}_grammar.peg", "grammar.peg.tmpl")
	}
	add(KindRuntimeHeader, dir+"/impl/{{.Lower}}_runtime.h", "runtime.h.tmpl")
	add(KindRuntimeSource, dir+"/impl/{{.Lower}}_runtime.c", "runtime.c.tmpl")

	if registration == RegistrationCentralized {
		add(KindBuildRule, "scripts/cmake/psnd_{{.Lower}}_library.cmake", "library.cmake.tmpl")
		add(KindTestBuildRule, "tests/{{.Lower}}/CMakeLists.txt", "tests.cmake.tmpl")
		add(KindTestSuite, "tests/{{.Lower}}/test_parser.c", "test_parser.c.tmpl")
		add(KindReadme, "docs/{{.Lower}}/README.md", "readme.md.tmpl")
	} else {
		add(KindBuildRule, dir+"/CMakeLists.txt", "standalone.cmake.tmpl")
		add(KindTestBuildRule, dir+"/tests/CMakeLists.txt", "tests.cmake.tmpl")
		add(KindTestSuite, dir+"/tests/test_parser.c", "test_parser.c.tmpl")
		add(KindReadme, dir+"/README.md", "readme.md.tmpl")
	}

	add(KindSyntaxFile, ".psnd/languages/{{.Lower}}.lua", "syntax.lua.tmpl")

	if registration == RegistrationStandalone {
		add(KindExample, dir+"/examples/melody.{{.Ext}}", "example.tmpl")
	}

	return plan
}

// Vars holds every substitution a template may reference. All fields
// derive from the NameSet alone.
type Vars struct {
	// Lower, Upper, Title are the identifier case forms
	Lower string
	Upper string
	Title string
	// Ext is the primary extension without its dot, e.g. "fog"
	Ext string
	// ExtC is the C registration-table form: `".fog", NULL`
	ExtC string
	// ExtList is the quoted comma list: `".fog", ".fg"`
	ExtList string
	// ExtSpace is the space-separated list: `.fog .fg`
	ExtSpace string
	// ExtCount is the number of extensions
	ExtCount int
}

// VarsFor expands a NameSet into template variables.
func VarsFor(n names.NameSet) Vars {
	var quoted, spaced bytes.Buffer
	for i, ext := range n.Extensions {
		if i > 0 {
			quoted.WriteString(", ")
			spaced.WriteString(" ")
		}
		quoted.WriteString("\"" + ext + "\"")
		spaced.WriteString(ext)
	}
	return Vars{
		Lower:    n.Lower,
		Upper:    n.Upper,
		Title:    n.Title,
		Ext:      n.PrimaryExt(),
		ExtC:     quoted.String() + ", NULL",
		ExtList:  quoted.String(),
		ExtSpace: spaced.String(),
		ExtCount: len(n.Extensions),
	}
}

// Render produces the target relative path and file content for one
// artifact. Rendering is deterministic: identical vars always yield
// byte-identical output.
func Render(a Artifact, v Vars) (string, []byte, error) {
	relPath, err := renderString("path", a.PathTemplate, v)
	if err != nil {
		return "", nil, errors.Wrapf(err, errors.ErrInternal, "bad path template for %s", a.Kind)
	}

	raw, err := files.ReadFile("files/" + a.TemplateFile)
	if err != nil {
		return "", nil, errors.Wrapf(err, errors.ErrInternal, "missing template %s", a.TemplateFile)
	}
	content, err := renderString(a.TemplateFile, string(raw), v)
	if err != nil {
		return "", nil, errors.Wrapf(err, errors.ErrInternal, "bad template %s", a.TemplateFile)
	}
	return relPath, []byte(content), nil
}

func renderString(name, src string, v Vars) (string, error) {
	tpl, err := template.New(name).Option("missingkey=error").Parse(src)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := tpl.Execute(&buf, v); err != nil {
		return "", err
	}
	return buf.String(), nil
}
