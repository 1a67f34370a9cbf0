package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func newProjectDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "CMakeLists.txt"), []byte("project(psnd C)\n"), 0o644))
	return dir
}

func TestPlanCommand(t *testing.T) {
	out, err := runCommand(t, "plan", "drum")
	require.NoError(t, err)

	assert.Contains(t, out, "src/lang/drum/register.c\n")
	assert.Contains(t, out, "scripts/cmake/psnd_drum_library.cmake\n")
	assert.Contains(t, out, "src/lang_config.h\n")
}

func TestPlanCommandStandaloneGrammar(t *testing.T) {
	out, err := runCommand(t, "plan", "drum", "--registration", "standalone", "--parser", "grammar")
	require.NoError(t, err)

	assert.Contains(t, out, "source/langs/drum/impl/drum_grammar.peg\n")
	assert.NotContains(t, out, "src/lang_config.h")
}

func TestPlanCommandRejectsUnknownStrategy(t *testing.T) {
	_, err := runCommand(t, "plan", "drum", "--parser", "peg")
	assert.Error(t, err)
}

func TestNewCommandStandalone(t *testing.T) {
	dir := newProjectDir(t)

	out, err := runCommand(t, "new", "fog", "--registration", "standalone", "--root", dir)
	require.NoError(t, err)

	assert.Contains(t, out, "created source/langs/fog/register.c")
	assert.Contains(t, out, "Your language is ready!")

	_, statErr := os.Stat(filepath.Join(dir, "source", "langs", "fog", "register.c"))
	assert.NoError(t, statErr)
}

func TestNewCommandDryRun(t *testing.T) {
	dir := newProjectDir(t)

	out, err := runCommand(t, "new", "fog", "--registration", "standalone", "--dry-run", "--root", dir)
	require.NoError(t, err)

	assert.Contains(t, out, "dry-run would create source/langs/fog/register.c")
	assert.Contains(t, out, "DRY RUN MODE")

	_, statErr := os.Stat(filepath.Join(dir, "source", "langs", "fog"))
	assert.Error(t, statErr)
}

func TestNewCommandRejectsInvalidName(t *testing.T) {
	dir := newProjectDir(t)

	for _, name := range []string{"Fog", "1fog", "fog-bar", "alda"} {
		_, err := runCommand(t, "new", name, "--root", dir)
		assert.Error(t, err, name)
	}
}

func TestRunSurfacesFatalErrorOnStderr(t *testing.T) {
	dir := newProjectDir(t)

	var out, errOut bytes.Buffer
	code := Run([]string{"new", "Foo", "--root", dir}, &out, &errOut)

	assert.Equal(t, 1, code)
	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), "Error:")
	assert.Contains(t, errOut.String(), "must be lowercase alphanumeric")
}

func TestRunSurfacesMissingRootOnStderr(t *testing.T) {
	var out, errOut bytes.Buffer
	code := Run([]string{"new", "fog", "--root", t.TempDir()}, &out, &errOut)

	assert.Equal(t, 1, code)
	assert.Contains(t, errOut.String(), "Error:")
	assert.Contains(t, errOut.String(), "not a project root")
}

func TestRunSuccessExitsZero(t *testing.T) {
	var out, errOut bytes.Buffer
	code := Run([]string{"plan", "drum"}, &out, &errOut)

	assert.Equal(t, 0, code)
	assert.Contains(t, out.String(), "src/lang/drum/register.c")
	assert.Empty(t, errOut.String())
}

func TestNewCommandFormatText(t *testing.T) {
	dir := newProjectDir(t)

	out, err := runCommand(t, "new", "fog", "--registration", "standalone", "--root", dir, "--format", "text")
	require.NoError(t, err)

	assert.Contains(t, out, "created source/langs/fog/register.c")
}

func TestRunRejectsUnknownFormat(t *testing.T) {
	var out, errOut bytes.Buffer
	code := Run([]string{"plan", "drum", "--format", "wide"}, &out, &errOut)

	assert.Equal(t, 1, code)
	assert.Contains(t, errOut.String(), "unknown format: wide")
}

func TestVersionCommand(t *testing.T) {
	out, err := runCommand(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "langgen version")
}
