// Package names derives the case forms and extension list a language
// generation run substitutes into every template and patch record.
package names

import (
	"regexp"
	"strings"

	"github.com/arthur-debert/langgen/pkg/errors"
)

// identifierPattern is the only accepted shape for a language name.
// Everything downstream (C symbols, CMake targets, directory names)
// assumes a lowercase alphanumeric token starting with a letter.
var identifierPattern = regexp.MustCompile(`^[a-z][a-z0-9]*$`)

// reservedNames are the languages already built into the host.
var reservedNames = []string{"alda", "joy", "bog", "tr7", "scheme"}

// NameSet holds the derived case forms for a validated identifier.
// The forms are fixed at derivation time and used purely for textual
// substitution.
type NameSet struct {
	// Lower is the canonical identifier, e.g. "fog"
	Lower string
	// Upper is the macro form, e.g. "FOG"
	Upper string
	// Title is the type-name form, e.g. "Fog"
	Title string
	// Extensions is the normalized extension list, each with exactly
	// one leading dot. The first entry is the primary extension.
	Extensions []string
}

// Derive validates a raw identifier and extension list and produces the
// NameSet used for all substitutions. It is a pure function: no side
// effects, and identical inputs always yield identical output.
//
// An empty extension list defaults to a single extension equal to the
// identifier itself (name "fog" gets ".fog").
func Derive(raw string, extensions []string) (NameSet, error) {
	name := raw

	if name == "" {
		return NameSet{}, errors.New(errors.ErrInvalidInput, "language name cannot be empty")
	}
	if !identifierPattern.MatchString(name) {
		return NameSet{}, errors.Newf(errors.ErrInvalidInput,
			"language name %q must be lowercase alphanumeric starting with a letter", raw)
	}
	for _, reserved := range reservedNames {
		if name == reserved {
			return NameSet{}, errors.Newf(errors.ErrInvalidInput,
				"%q is already a built-in language", name)
		}
	}

	normalized, err := normalizeExtensions(name, extensions)
	if err != nil {
		return NameSet{}, err
	}

	return NameSet{
		Lower:      name,
		Upper:      strings.ToUpper(name),
		Title:      strings.ToUpper(name[:1]) + name[1:],
		Extensions: normalized,
	}, nil
}

// normalizeExtensions strips any leading dots and re-prefixes exactly
// one, so "bar" and ".bar" normalize identically.
func normalizeExtensions(name string, extensions []string) ([]string, error) {
	if len(extensions) == 0 {
		return []string{"." + name}, nil
	}

	normalized := make([]string, 0, len(extensions))
	for _, ext := range extensions {
		suffix := strings.TrimLeft(ext, ".")
		if suffix == "" {
			return nil, errors.Newf(errors.ErrInvalidInput, "extension %q is empty", ext)
		}
		normalized = append(normalized, "."+suffix)
	}
	return normalized, nil
}

// PrimaryExt returns the primary extension without its leading dot.
func (n NameSet) PrimaryExt() string {
	return strings.TrimPrefix(n.Extensions[0], ".")
}
