package assemble

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/assemble/internal/config"
	"git.home.luguber.info/inful/assemble/internal/errors"
)

func writeFixture(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func readOutput(t *testing.T, path string) string {
	t.Helper()
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(b)
}

func TestRun_CollectionViewWritesUnderCollectionDirectory(t *testing.T) {
	t.Chdir(t.TempDir())
	writeFixture(t, "src/views/layouts/default.html", "<html>{% body %}</html>")
	writeFixture(t, "src/views/guides/install.hbs", "---\ntitle: Install\n---\n<h1>{{ title }}</h1>")

	s := newTestSession(t, nil, Options{})
	require.NoError(t, s.Run(context.Background()))

	// Original extension replaced by the configured one.
	out := readOutput(t, "dist/guides/install.html")
	require.Equal(t, "<html><h1>Install</h1></html>", out)
}

func TestRun_CollectionlessViewWritesToDestRoot(t *testing.T) {
	t.Chdir(t.TempDir())
	writeFixture(t, "src/views/index.html", "hello")

	s := newTestSession(t, nil, Options{})
	require.NoError(t, s.Run(context.Background()))

	require.Equal(t, "hello", readOutput(t, "dist/index.html"))
}

func TestRun_CollectionViewGetsRelativeBaseURL(t *testing.T) {
	t.Chdir(t.TempDir())
	writeFixture(t, "src/views/guides/a.html", `<a href="{{ baseurl }}/x">x</a>`)

	s := newTestSession(t, nil, Options{})
	require.NoError(t, s.Run(context.Background()))

	require.Contains(t, readOutput(t, "dist/guides/a.html"), `href="../x"`)
}

func TestRun_FrontMatterLayoutOverridesDefault(t *testing.T) {
	t.Chdir(t.TempDir())
	writeFixture(t, "src/views/layouts/default.html", "DEFAULT {% body %}")
	writeFixture(t, "src/views/layouts/bare.html", "{% body %}")
	writeFixture(t, "src/views/index.html", "---\nlayout: bare\n---\nbody")

	s := newTestSession(t, nil, Options{})
	require.NoError(t, s.Run(context.Background()))

	require.Equal(t, "body", readOutput(t, "dist/index.html"))
}

func TestRun_DestFrontMatterOverridesPlacement(t *testing.T) {
	t.Chdir(t.TempDir())
	writeFixture(t, "src/views/guides/a.html", "---\ndest: custom/here.htm\n---\nbody")

	s := newTestSession(t, nil, Options{})
	require.NoError(t, s.Run(context.Background()))

	// Extension is still forced onto the overridden path.
	require.Equal(t, "body", readOutput(t, "custom/here.html"))
}

func TestRun_DestMapOverridesCollectionDirectory(t *testing.T) {
	t.Chdir(t.TempDir())
	writeFixture(t, "src/views/guides/a.html", "body")

	cfg := config.Default()
	cfg.DestMap = map[string]string{"guides": "help/guides"}

	s := newTestSession(t, cfg, Options{})
	require.NoError(t, s.Run(context.Background()))

	require.Equal(t, "body", readOutput(t, "help/guides/a.html"))
}

func TestRun_DestCopyWritesDuplicate(t *testing.T) {
	t.Chdir(t.TempDir())
	writeFixture(t, "src/views/index.html", "---\ndest-copy: copies/extra.html\n---\nbody")

	s := newTestSession(t, nil, Options{})
	require.NoError(t, s.Run(context.Background()))

	require.Equal(t, "body", readOutput(t, "dist/index.html"))
	require.Equal(t, "body", readOutput(t, "copies/extra.html"))
}

func TestRun_DataAndDocsReachTheContext(t *testing.T) {
	t.Chdir(t.TempDir())
	writeFixture(t, "src/data/site.yml", "greeting: hi\n")
	writeFixture(t, "src/views/index.html", "{{ site[\"greeting\"] }}")

	s := newTestSession(t, nil, Options{})
	require.NoError(t, s.Run(context.Background()))

	require.Equal(t, "hi", readOutput(t, "dist/index.html"))
}

func TestRun_RenderFailureDoesNotStopSubsequentViews(t *testing.T) {
	t.Chdir(t.TempDir())
	writeFixture(t, "src/views/a-bad.html", "{{ undefined_variable }}")
	writeFixture(t, "src/views/z-good.html", "fine")

	s := newTestSession(t, nil, Options{})
	require.NoError(t, s.Run(context.Background()))

	require.Equal(t, "fine", readOutput(t, "dist/z-good.html"))
	require.NoFileExists(t, "dist/a-bad.html")
	require.Equal(t, 1, s.renderFailures)
}

func TestRun_WriteFailureIsFatalAndNamesSourceFile(t *testing.T) {
	t.Chdir(t.TempDir())
	writeFixture(t, "src/views/index.html", "body")
	// Destination path collides with a pre-existing directory.
	require.NoError(t, os.MkdirAll("dist/index.html", 0o755))

	sink := errors.SinkFunc(func(*errors.AssembleError) bool { return true })
	s := newTestSession(t, nil, Options{ErrorSink: sink})

	err := s.Run(context.Background())
	require.Error(t, err)
	require.Contains(t, err.Error(), "src/views/index.html")
}

func TestRun_MalformedDataFileAbortsBeforeAnyOutput(t *testing.T) {
	t.Chdir(t.TempDir())
	writeFixture(t, "src/data/bad.yml", "a: [unclosed\n")
	writeFixture(t, "src/views/index.html", "body")

	var reported *errors.AssembleError
	sink := errors.SinkFunc(func(e *errors.AssembleError) bool {
		reported = e
		return true
	})
	s := newTestSession(t, nil, Options{ErrorSink: sink})

	require.Error(t, s.Run(context.Background()))
	require.NotNil(t, reported)
	require.Equal(t, errors.CategoryDecode, reported.Category)
	require.NoFileExists(t, "dist/index.html")
}

func TestRun_TwiceProducesByteIdenticalOutput(t *testing.T) {
	t.Chdir(t.TempDir())
	writeFixture(t, "src/views/layouts/default.html", "<html>{% body %}</html>")
	writeFixture(t, "src/views/guides/a.html", "---\ntitle: A\n---\n{{ title }}")
	writeFixture(t, "src/data/site.yml", "name: s\n")

	require.NoError(t, newTestSession(t, nil, Options{}).Run(context.Background()))
	first := readOutput(t, "dist/guides/a.html")

	require.NoError(t, newTestSession(t, nil, Options{}).Run(context.Background()))
	require.Equal(t, first, readOutput(t, "dist/guides/a.html"))
}

type staticAssembler struct{ calls []string }

func (a *staticAssembler) Assemble(name, path string) (any, error) {
	a.calls = append(a.calls, name+"|"+path)
	return "assembled:" + name, nil
}

func TestRun_ModuleWrappingInjectsMetadata(t *testing.T) {
	t.Chdir(t.TempDir())
	writeFixture(t, "src/wrapper.html",
		"---\nshell: true\n---\n<section data-module=\"{{ module_name }}\">{% body %}</section>{{ assemble }}")
	writeFixture(t, "src/views/docs/03-button.html", "---\ntitle: Button\n---\n<button>{{ title }}</button>")

	cfg := config.Default()
	cfg.AutoModule = "src/views/docs/**/*"
	cfg.ModuleWrapper = "src/wrapper.html"

	asm := &staticAssembler{}
	s := newTestSession(t, cfg, Options{Assembler: asm})
	require.NoError(t, s.Run(context.Background()))

	out := readOutput(t, "dist/docs/03-button.html")
	require.Contains(t, out, `data-module="button"`)
	require.Contains(t, out, "<button>Button</button>")
	require.Contains(t, out, "assembled:button")

	require.Len(t, asm.calls, 1)
	require.Contains(t, asm.calls[0], "button|"+filepath.Join("dist", "docs", "03-button.html"))
}
