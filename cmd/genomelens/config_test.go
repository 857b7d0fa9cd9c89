package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigKeys_Coercion(t *testing.T) {
	tests := []struct {
		key   string
		value string
		want  any
		ok    bool
	}{
		{"parse.numeric-sex-chromosomes", "true", true, true},
		{"parse.numeric-sex-chromosomes", "false", false, true},
		{"parse.numeric-sex-chromosomes", "yes", nil, false},
		{"parse.numeric-sex-chromosomes", "1", true, true},
		{"report.top-genotypes", "5", 5, true},
		{"report.top-genotypes", "0", nil, false},
		{"report.top-genotypes", "-3", nil, false},
		{"report.top-genotypes", "many", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			ck, ok := configKeys[tt.key]
			require.True(t, ok)

			got, err := ck.coerce(tt.value)
			if !tt.ok {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRunConfigSet_UnknownKey(t *testing.T) {
	err := runConfigSet("annotate.canonical", "true")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown config key")
	assert.Contains(t, err.Error(), "parse.numeric-sex-chromosomes")
}

func TestRunConfigSet_BadValue(t *testing.T) {
	err := runConfigSet("report.top-genotypes", "lots")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "positive integer")
}

func TestRunConfigGet_UnknownKey(t *testing.T) {
	err := runConfigGet("no.such.key")
	assert.Error(t, err)
}

func TestConfigKeyNames_Sorted(t *testing.T) {
	names := configKeyNames()
	require.Len(t, names, len(configKeys))
	assert.IsNonDecreasing(t, names)
}
