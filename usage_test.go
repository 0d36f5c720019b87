package brasp

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUsageParser(t *testing.T, opts *Options) *Parser {
	t.Helper()
	p := New(opts)
	require.NoError(t, p.Opt(Definition{Name: "config", Short: "c", Hint: "path", Description: "Configuration file path"}))
	require.NoError(t, p.Flag(Definition{Name: "verbose", Short: "v", Description: "Enable verbose output"}))
	require.NoError(t, p.OptList(Definition{Name: "tag", Description: "Tag to apply"}))
	return p
}

func TestUsage(t *testing.T) {
	t.Parallel()

	t.Run("layout", func(t *testing.T) {
		t.Parallel()
		p := newUsageParser(t, &Options{Program: "myapp", AllowPositionals: true})
		want := `Usage:
  myapp [options] [args...]

Options:
  -c, --config <path>    Configuration file path
  -v, --verbose          Enable verbose output (default: false)
      --tag <string>     Tag to apply (repeatable)`
		assert.Equal(t, want, p.Usage())
	})
	t.Run("options only", func(t *testing.T) {
		t.Parallel()
		p := New(nil)
		require.NoError(t, p.Num(Definition{Name: "count", Short: "n", Default: Number(3)}))
		assert.Equal(t, "Options:\n  -n, --count <number>    (default: 3)", p.Usage())
	})
	t.Run("empty parser", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "", New(nil).Usage())
		assert.Equal(t, "Usage:\n  tool", New(&Options{Program: "tool"}).Usage())
	})
	t.Run("environment variables", func(t *testing.T) {
		t.Parallel()
		p := newUsageParser(t, &Options{EnvPrefix: "MYAPP"})
		want := `Options:
  -c, --config <path>    Configuration file path (env: MYAPP_CONFIG)
  -v, --verbose          Enable verbose output (default: false) (env:
                         MYAPP_VERBOSE)
      --tag <string>     Tag to apply (repeatable) (env: MYAPP_TAG)`
		assert.Equal(t, want, p.Usage())
	})
	t.Run("list defaults", func(t *testing.T) {
		t.Parallel()
		p := New(nil)
		require.NoError(t, p.OptList(Definition{Name: "tag", Default: Strings("a", "b")}))
		assert.Contains(t, p.Usage(), `(repeatable) (default: "a","b")`)
	})
	t.Run("string defaults are quoted", func(t *testing.T) {
		t.Parallel()
		p := New(nil)
		require.NoError(t, p.Opt(
			Definition{Name: "separator", Short: "s", Default: String(" ")},
			Definition{Name: "empty", Default: String("")},
		))
		want := `Options:
  -s, --separator <string>    (default: " ")
      --empty <string>        (default: "")`
		assert.Equal(t, want, p.Usage())
	})
	t.Run("description is wrapped", func(t *testing.T) {
		t.Parallel()
		desc := strings.Repeat("word ", 30)
		p := newUsageParser(t, &Options{Program: "myapp", Description: desc})
		lines := strings.Split(p.Usage(), "\n")
		for _, line := range lines {
			assert.LessOrEqual(t, len(line), usageWidth)
		}
		assert.True(t, strings.HasPrefix(p.Usage(), "word word"))
	})
	t.Run("long option descriptions are wrapped", func(t *testing.T) {
		t.Parallel()
		p := New(nil)
		require.NoError(t, p.Opt(Definition{Name: "config", Description: strings.Repeat("lorem ipsum ", 20)}))
		lines := strings.Split(p.Usage(), "\n")
		require.Greater(t, len(lines), 2)
		nameWidth := len("    --config <string>") + 4
		indent := strings.Repeat(" ", nameWidth+2)
		assert.LessOrEqual(t, len(lines[1])-(nameWidth+2), usageWidth-nameWidth)
		for _, line := range lines[2:] {
			assert.True(t, strings.HasPrefix(line, indent), "line %q", line)
			assert.LessOrEqual(t, len(strings.TrimLeft(line, " ")), usageWidth-nameWidth)
		}
	})
	t.Run("stable across calls", func(t *testing.T) {
		t.Parallel()
		p := newUsageParser(t, &Options{Program: "myapp"})
		first := p.Usage()
		_, err := p.Parse([]string{"-v"})
		require.NoError(t, err)
		assert.Equal(t, first, p.Usage())
	})
	t.Run("write usage", func(t *testing.T) {
		t.Parallel()
		p := newUsageParser(t, &Options{Program: "myapp"})
		var buf bytes.Buffer
		require.NoError(t, p.WriteUsage(&buf))
		assert.Equal(t, p.Usage()+"\n", buf.String())
	})
}
