package validate

import (
	"errors"
	"testing"

	"github.com/pressly/brasp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, def brasp.Definition, args ...string) (*brasp.Values, error) {
	t.Helper()
	p := brasp.New(&brasp.Options{Env: brasp.MapEnv{}})
	require.NoError(t, p.Register(def))
	return p.Parse(args)
}

func TestOneOf(t *testing.T) {
	t.Parallel()

	def := brasp.Definition{Name: "format", Type: brasp.TypeString, Validate: OneOf("json", "yaml", "table")}

	t.Run("valid value", func(t *testing.T) {
		t.Parallel()
		values, err := parse(t, def, "--format=yaml")
		require.NoError(t, err)
		assert.Equal(t, "yaml", values.String("format"))
	})
	t.Run("invalid value", func(t *testing.T) {
		t.Parallel()
		_, err := parse(t, def, "--format=xml")
		require.Error(t, err)
		require.ErrorIs(t, err, brasp.ErrValidationFailed)
		assert.Contains(t, err.Error(), "must be one of")
		assert.Contains(t, err.Error(), "json, yaml")
	})
	t.Run("not a string", func(t *testing.T) {
		t.Parallel()
		err := OneOf("1")(brasp.Number(1))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "expected a string")
	})
}

func TestKeyValue(t *testing.T) {
	t.Parallel()

	def := brasp.Definition{Name: "label", Type: brasp.TypeString, Multiple: true, Validate: KeyValue()}

	t.Run("multiple pairs", func(t *testing.T) {
		t.Parallel()
		values, err := parse(t, def, "--label=env=prod", "--label", "tier=web")
		require.NoError(t, err)
		got := SplitKeyValue(values.Strings("label"))
		assert.Equal(t, map[string]string{"env": "prod", "tier": "web"}, got)
	})
	t.Run("value contains equals", func(t *testing.T) {
		t.Parallel()
		values, err := parse(t, def, "--label=query=a=b")
		require.NoError(t, err)
		assert.Equal(t, map[string]string{"query": "a=b"}, SplitKeyValue(values.Strings("label")))
	})
	t.Run("missing equals", func(t *testing.T) {
		t.Parallel()
		_, err := parse(t, def, "--label=nope")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "missing '='")
	})
	t.Run("empty key", func(t *testing.T) {
		t.Parallel()
		_, err := parse(t, def, "--label==value")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "empty key")
	})
	t.Run("split empty", func(t *testing.T) {
		t.Parallel()
		assert.Nil(t, SplitKeyValue(nil))
	})
}

func TestURL(t *testing.T) {
	t.Parallel()

	def := brasp.Definition{Name: "endpoint", Type: brasp.TypeString, Validate: URL()}

	t.Run("valid url", func(t *testing.T) {
		t.Parallel()
		values, err := parse(t, def, "--endpoint", "https://example.com/api")
		require.NoError(t, err)
		assert.Equal(t, "https://example.com/api", values.String("endpoint"))
	})
	t.Run("missing scheme", func(t *testing.T) {
		t.Parallel()
		_, err := parse(t, def, "--endpoint=example.com")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "must have a scheme and host")
	})
}

func TestRegexp(t *testing.T) {
	t.Parallel()

	t.Run("valid pattern", func(t *testing.T) {
		t.Parallel()
		require.NoError(t, Regexp()(brasp.String("^foo.*bar$")))
	})
	t.Run("invalid pattern", func(t *testing.T) {
		t.Parallel()
		_, err := parse(t, brasp.Definition{Name: "pattern", Type: brasp.TypeString, Validate: Regexp()}, "--pattern=[invalid")
		require.Error(t, err)
		var perr *brasp.Error
		require.True(t, errors.As(err, &perr))
		assert.Equal(t, "pattern", perr.Option)
	})
	t.Run("match", func(t *testing.T) {
		t.Parallel()
		fn := Match(`^v[0-9]+$`)
		assert.NoError(t, fn(brasp.String("v12")))
		err := fn(brasp.String("12"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "must match ^v[0-9]+$")
	})
	t.Run("match bad pattern panics", func(t *testing.T) {
		t.Parallel()
		assert.Panics(t, func() { Match("[") })
	})
}

func TestNumbers(t *testing.T) {
	t.Parallel()

	def := brasp.Definition{Name: "port", Type: brasp.TypeNumber, Validate: All(Integer(), Range(1, 65535))}

	t.Run("in range", func(t *testing.T) {
		t.Parallel()
		values, err := parse(t, def, "--port", "8080")
		require.NoError(t, err)
		assert.Equal(t, 8080.0, values.Number("port"))
	})
	t.Run("out of range", func(t *testing.T) {
		t.Parallel()
		_, err := parse(t, def, "--port", "70000")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "must be between 1 and 65535")
	})
	t.Run("fractional", func(t *testing.T) {
		t.Parallel()
		_, err := parse(t, def, "--port=80.5")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "whole number")
	})
	t.Run("large whole numbers", func(t *testing.T) {
		t.Parallel()
		for _, n := range []float64{1e20, -1e19, 9007199254740993, -0} {
			assert.NoError(t, Integer()(brasp.Number(n)), "n=%g", n)
		}
		assert.Error(t, Integer()(brasp.Number(1e15+0.5)))
	})
	t.Run("range on string", func(t *testing.T) {
		t.Parallel()
		require.Error(t, Range(0, 1)(brasp.String("1")))
	})
}

func TestNonEmpty(t *testing.T) {
	t.Parallel()

	assert.NoError(t, NonEmpty()(brasp.String("x")))
	assert.Error(t, NonEmpty()(brasp.String("")))
	assert.NoError(t, All(nil, NonEmpty())(brasp.String("x")))
}
