package report

import (
	_ "embed"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// ColorDef represents an adaptive color definition in YAML
type ColorDef struct {
	Light string `yaml:"light"`
	Dark  string `yaml:"dark"`
}

// StyleDef represents a style definition in YAML
type StyleDef struct {
	Bold       bool   `yaml:"bold,omitempty"`
	Foreground string `yaml:"foreground,omitempty"`
}

// stylesConfig is the embedded styles file structure
type stylesConfig struct {
	Colors map[string]ColorDef `yaml:"colors"`
	Styles map[string]StyleDef `yaml:"styles"`
}

//go:embed styles.yaml
var embeddedStyles []byte

var styleRegistry map[Action]lipgloss.Style

func init() {
	styleRegistry = make(map[Action]lipgloss.Style)

	var cfg stylesConfig
	if err := yaml.Unmarshal(embeddedStyles, &cfg); err != nil {
		// Fall back to unstyled prefixes; rendering still works
		return
	}

	colors := make(map[string]lipgloss.AdaptiveColor, len(cfg.Colors))
	for name, def := range cfg.Colors {
		colors[name] = lipgloss.AdaptiveColor{Light: def.Light, Dark: def.Dark}
	}

	for name, def := range cfg.Styles {
		style := lipgloss.NewStyle()
		if def.Bold {
			style = style.Bold(true)
		}
		if color, ok := colors[def.Foreground]; ok {
			style = style.Foreground(color)
		}
		styleRegistry[Action(name)] = style
	}
}

// ErrorStyle returns the style used for error entries, for callers
// printing a fatal failure outside a report rendering.
func ErrorStyle() lipgloss.Style {
	return styleFor(ActionError)
}

// styleFor returns the lipgloss style for an action, or a no-op style
// when the action has no entry in the registry.
func styleFor(action Action) lipgloss.Style {
	if style, ok := styleRegistry[action]; ok {
		return style
	}
	return lipgloss.NewStyle()
}
