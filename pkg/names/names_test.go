package names_test

import (
	"testing"

	"github.com/arthur-debert/langgen/pkg/errors"
	"github.com/arthur-debert/langgen/pkg/names"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDerive(t *testing.T) {
	tests := []struct {
		name       string
		raw        string
		extensions []string
		want       names.NameSet
		wantErr    bool
	}{
		{
			name: "simple name defaults extension",
			raw:  "drum",
			want: names.NameSet{
				Lower:      "drum",
				Upper:      "DRUM",
				Title:      "Drum",
				Extensions: []string{".drum"},
			},
		},
		{
			name: "digits allowed after first letter",
			raw:  "a1",
			want: names.NameSet{
				Lower:      "a1",
				Upper:      "A1",
				Title:      "A1",
				Extensions: []string{".a1"},
			},
		},
		{
			name:       "explicit extensions keep order",
			raw:        "fog",
			extensions: []string{".fg", "fogx"},
			want: names.NameSet{
				Lower:      "fog",
				Upper:      "FOG",
				Title:      "Fog",
				Extensions: []string{".fg", ".fogx"},
			},
		},
		{
			name:    "uppercase rejected",
			raw:     "Foo",
			wantErr: true,
		},
		{
			name:    "leading digit rejected",
			raw:     "1bar",
			wantErr: true,
		},
		{
			name:    "empty rejected",
			raw:     "",
			wantErr: true,
		},
		{
			name:    "hyphen rejected",
			raw:     "foo-bar",
			wantErr: true,
		},
		{
			name:    "reserved name rejected",
			raw:     "alda",
			wantErr: true,
		},
		{
			name:       "empty extension rejected",
			raw:        "fog",
			extensions: []string{"."},
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := names.Derive(tt.raw, tt.extensions)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, errors.ErrInvalidInput, errors.GetErrorCode(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDeriveExtensionNormalization(t *testing.T) {
	// "bar" and ".bar" must normalize identically
	withDot, err := names.Derive("fog", []string{".bar"})
	require.NoError(t, err)
	withoutDot, err := names.Derive("fog", []string{"bar"})
	require.NoError(t, err)

	assert.Equal(t, withDot, withoutDot)
	assert.Equal(t, []string{".bar"}, withDot.Extensions)
	assert.Equal(t, "bar", withDot.PrimaryExt())
}

func TestDeriveIsPure(t *testing.T) {
	first, err := names.Derive("fog", []string{"fg"})
	require.NoError(t, err)
	second, err := names.Derive("fog", []string{"fg"})
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
