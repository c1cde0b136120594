package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	c := Default()
	assert.True(t, c.Evaluate.Parallel)
	assert.Equal(t, 1, c.Analysis.Horizon)
	assert.Equal(t, 5, c.Analysis.TopN)
	assert.Empty(t, c.Store.DSN)
}

func TestLoadValidFile(t *testing.T) {
	path := writeTemp(t, `
input:
  csv: /data/panel.csv
evaluate:
  factors: [alpha001, alpha106]
  workers: 8
  parallel: true
output:
  excel: out.xlsx
analysis:
  horizon: 5
  top_n: 10
`)
	c := Load(path, zerolog.Nop())
	assert.Equal(t, "/data/panel.csv", c.Input.CSV)
	assert.Equal(t, []string{"alpha001", "alpha106"}, c.Evaluate.Factors)
	assert.Equal(t, 8, c.Evaluate.Workers)
	assert.Equal(t, "out.xlsx", c.Output.Excel)
	assert.Equal(t, 5, c.Analysis.Horizon)
	assert.Equal(t, 10, c.Analysis.TopN)
}

func TestLoadMissingFileFallsBack(t *testing.T) {
	c := Load(filepath.Join(t.TempDir(), "absent.yaml"), zerolog.Nop())
	assert.Equal(t, Default(), c)
}

func TestLoadMalformedFallsBack(t *testing.T) {
	path := writeTemp(t, "input: [not: valid: yaml")
	c := Load(path, zerolog.Nop())
	assert.Equal(t, Default(), c)
}

func TestLoadInvalidValuesFallBack(t *testing.T) {
	path := writeTemp(t, `
analysis:
  horizon: -3
`)
	c := Load(path, zerolog.Nop())
	assert.Equal(t, Default(), c)
}
