package emitter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/langgen/pkg/emitter"
	"github.com/arthur-debert/langgen/pkg/names"
	"github.com/arthur-debert/langgen/pkg/report"
	"github.com/arthur-debert/langgen/pkg/templates"
	"github.com/arthur-debert/langgen/pkg/testutil"
)

func drumPlan(t *testing.T) ([]templates.Artifact, templates.Vars) {
	t.Helper()
	set, err := names.Derive("drum", nil)
	require.NoError(t, err)
	return templates.Plan(templates.ParserHandWritten, templates.RegistrationCentralized), templates.VarsFor(set)
}

func TestEmitCreatesAllArtifacts(t *testing.T) {
	fsys := testutil.NewTestFS()
	plan, vars := drumPlan(t)

	rep := report.New(false)
	emitter.New(fsys, "/proj", false).Emit(plan, vars, rep)

	require.False(t, rep.HasErrors())
	assert.Equal(t, len(plan), rep.Count(report.ActionCreated))

	raw, err := fsys.ReadFile("/proj/src/lang/drum/register.c")
	require.NoError(t, err)
	assert.Contains(t, string(raw), `.name = "drum"`)

	_, err = fsys.Stat("/proj/.psnd/languages/drum.lua")
	assert.NoError(t, err)
}

func TestEmitSecondRunSkipsEverything(t *testing.T) {
	fsys := testutil.NewTestFS()
	plan, vars := drumPlan(t)
	em := emitter.New(fsys, "/proj", false)

	em.Emit(plan, vars, report.New(false))
	first, err := fsys.ReadFile("/proj/src/lang/drum/register.c")
	require.NoError(t, err)

	rep := report.New(false)
	em.Emit(plan, vars, rep)

	assert.Equal(t, len(plan), rep.Count(report.ActionSkipped))
	assert.Zero(t, rep.Count(report.ActionCreated))
	assert.Zero(t, rep.Count(report.ActionUpdated))

	second, err := fsys.ReadFile("/proj/src/lang/drum/register.c")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestEmitOverwritesModifiedFile(t *testing.T) {
	fsys := testutil.NewTestFS()
	plan, vars := drumPlan(t)
	em := emitter.New(fsys, "/proj", false)

	em.Emit(plan, vars, report.New(false))
	require.NoError(t, fsys.WriteFile("/proj/src/lang/drum/register.c", []byte("edited\n"), 0o644))

	rep := report.New(false)
	em.Emit(plan, vars, rep)

	require.False(t, rep.HasErrors())
	assert.Equal(t, 1, rep.Count(report.ActionUpdated))

	raw, err := fsys.ReadFile("/proj/src/lang/drum/register.c")
	require.NoError(t, err)
	assert.NotEqual(t, "edited\n", string(raw))
}

func TestEmitProtectRefusesOverwrite(t *testing.T) {
	fsys := testutil.NewTestFS()
	plan, vars := drumPlan(t)

	require.NoError(t, fsys.WriteFile("/proj/src/lang/drum/register.c", []byte("edited\n"), 0o644))

	rep := report.New(false)
	emitter.New(fsys, "/proj", true).Emit(plan, vars, rep)

	require.True(t, rep.HasErrors())
	assert.Equal(t, 1, rep.Count(report.ActionError))
	// The remaining artifacts are still emitted.
	assert.Equal(t, len(plan)-1, rep.Count(report.ActionCreated))

	raw, err := fsys.ReadFile("/proj/src/lang/drum/register.c")
	require.NoError(t, err)
	assert.Equal(t, "edited\n", string(raw))
}

func TestEmitDryRunTouchesNothing(t *testing.T) {
	fsys := testutil.NewTestFS()
	plan, vars := drumPlan(t)

	rep := report.New(true)
	emitter.New(fsys, "/proj", false).Emit(plan, vars, rep)

	require.False(t, rep.HasErrors())
	assert.Equal(t, len(plan), rep.Count(report.ActionCreated))

	_, err := fsys.Stat("/proj/src/lang/drum/register.c")
	assert.Error(t, err)
}

func TestEmitDryRunMatchesRealRun(t *testing.T) {
	plan, vars := drumPlan(t)

	dryFS := testutil.NewTestFS()
	dryRep := report.New(true)
	emitter.New(dryFS, "/proj", false).Emit(plan, vars, dryRep)

	realFS := testutil.NewTestFS()
	realRep := report.New(false)
	emitter.New(realFS, "/proj", false).Emit(plan, vars, realRep)

	require.Equal(t, len(realRep.Entries()), len(dryRep.Entries()))
	for i, want := range realRep.Entries() {
		assert.Equal(t, want, dryRep.Entries()[i])
	}
}
