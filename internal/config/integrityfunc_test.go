package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/sofi/internal/config"
	"github.com/roach88/sofi/internal/sofi"
)

func TestParseIntegrityFuncNames(t *testing.T) {
	cases := map[string]sofi.IntegrityFunc{
		"min":      sofi.Min(),
		"identity": sofi.Identity(),
		"max":      sofi.Max(),
	}
	for name, want := range cases {
		got, err := config.ParseIntegrityFunc(name)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestParseIntegrityFuncRejectsUnknownName(t *testing.T) {
	_, err := config.ParseIntegrityFunc("average")
	assert.Error(t, err)
}

func TestFormatIntegrityFuncRoundTrip(t *testing.T) {
	for _, name := range []string{"min", "identity", "max"} {
		f, err := config.ParseIntegrityFunc(name)
		require.NoError(t, err)
		got, err := config.FormatIntegrityFunc(f)
		require.NoError(t, err)
		assert.Equal(t, name, got)
	}
}

func TestFormatIntegrityFuncRejectsUnnameableFunction(t *testing.T) {
	_, err := config.FormatIntegrityFunc(nil)
	assert.Error(t, err)
}
