package commands

import (
	"testing"

	"github.com/stretchr/testify/require"

	asmtesting "git.home.luguber.info/inful/assemble/internal/testing"
)

func TestInitCmd_WritesConfigAndRespectsForce(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	root := &CLI{Config: "assemble.yaml"}
	assert := asmtesting.NewFileAssertions(t, dir)

	cmd := &InitCmd{}
	require.NoError(t, cmd.Run(&Global{}, root))
	assert.AssertFileExists("assemble.yaml")

	require.Error(t, cmd.Run(&Global{}, root))

	cmd.Force = true
	require.NoError(t, cmd.Run(&Global{}, root))
}

func TestBuildCmd_AssemblesFixtureTree(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	asmtesting.NewProjectBuilder(t, dir).
		WithConfig("logErrors: true\n").
		WithLayout("default.html", "<html>{% body %}</html>").
		WithView("guides/intro.html", "---\ntitle: Intro\n---\n<h1>{{ title }}</h1>")

	root := &CLI{Config: "assemble.yaml"}
	require.NoError(t, (&BuildCmd{}).Run(&Global{}, root))

	asmtesting.NewFileAssertions(t, dir).
		AssertFileEquals("dist/guides/intro.html", "<html><h1>Intro</h1></html>")
}

func TestBuildCmd_DestFlagOverridesConfig(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	asmtesting.NewProjectBuilder(t, dir).
		WithConfig("logErrors: true\n").
		WithView("index.html", "hello")

	root := &CLI{Config: "assemble.yaml"}
	require.NoError(t, (&BuildCmd{Dest: "public"}).Run(&Global{}, root))

	asmtesting.NewFileAssertions(t, dir).
		AssertFileExists("public/index.html").
		AssertFileNotExists("dist/index.html")
}

func TestBuildCmd_MetricsEnabledStillSucceeds(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	asmtesting.NewProjectBuilder(t, dir).
		WithConfig("logErrors: true\nmetrics:\n  enabled: true\n").
		WithView("index.html", "hello")

	root := &CLI{Config: "assemble.yaml"}
	require.NoError(t, (&BuildCmd{}).Run(&Global{}, root))

	asmtesting.NewFileAssertions(t, dir).AssertFileContains("dist/index.html", "hello")
}

func TestBuildCmd_MissingConfigFileFails(t *testing.T) {
	t.Chdir(t.TempDir())
	root := &CLI{Config: "absent.yaml"}
	require.Error(t, (&BuildCmd{}).Run(&Global{}, root))
}
