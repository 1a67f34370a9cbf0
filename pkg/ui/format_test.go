package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected Format
		wantErr  bool
	}{
		{input: "auto", expected: FormatAuto},
		{input: "", expected: FormatAuto},
		{input: "term", expected: FormatTerminal},
		{input: "terminal", expected: FormatTerminal},
		{input: "text", expected: FormatText},
		{input: "plain", expected: FormatText},
		{input: "TERM", expected: FormatTerminal},
		{input: "json", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseFormat(tt.input)
		if tt.wantErr {
			assert.Error(t, err, tt.input)
			continue
		}
		assert.NoError(t, err, tt.input)
		assert.Equal(t, tt.expected, got, tt.input)
	}
}

func TestFormatString(t *testing.T) {
	assert.Equal(t, "auto", FormatAuto.String())
	assert.Equal(t, "term", FormatTerminal.String())
	assert.Equal(t, "text", FormatText.String())
	assert.Equal(t, "unknown", Format(99).String())
}
