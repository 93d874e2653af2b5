package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nescoring/nescore/config"
)

func TestLoad_EmptyPathReturnsZeroValue(t *testing.T) {
	table, err := config.Load("")
	require.NoError(t, err)
	assert.Zero(t, table.MissCost)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	assert.Error(t, err)
}

func TestLoad_ParsesOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "costs.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
miss_cost: 2.0
miss_cost_by_tag:
  PERSON: 3.0
subst_cost_by_tag_pair:
  PERSON|LOC: 0.5
`), 0o644))

	table, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2.0, table.MissCost)
	assert.Equal(t, 3.0, table.MissCostByTag["PERSON"])
	assert.Equal(t, 0.5, table.SubstCostByTagPair["PERSON|LOC"])

	model := config.BuildModel([]string{"PERSON", "LOC"}, table)
	assert.Equal(t, 2.0, model.MissCostBase)
	assert.Equal(t, 3.0, model.MissCostByTag["PERSON"])
}
