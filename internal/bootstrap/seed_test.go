package bootstrap

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleSeed = `
stages:
  - code: Claim
    name: Claim
    steps:
      - name: Assessment
      - name: Quotation
        skippable: true
  - code: repair
    name: Repair
    steps:
      - name: Bodywork
photo_types:
  - code: front
    name: Front
    required: true
  - code: odometer
    name: Odometer
vehicle_types: [Sedan, SUV]
vehicle_brands:
  - name: Fiat
    models: [Argo, Toro]
`

func TestParseSeed_WorkflowCatalog(t *testing.T) {
	seed, err := ParseSeed([]byte(sampleSeed))
	require.NoError(t, err)

	c := seed.WorkflowCatalog()
	require.Len(t, c.Stages, 2)
	assert.Equal(t, "claim", c.Stages[0].Code)
	assert.Equal(t, 1, c.Stages[0].OrderIndex)
	assert.Equal(t, 2, c.Stages[1].OrderIndex)

	require.Len(t, c.StepTemplates, 3)
	assert.Equal(t, c.Stages[0].ID, c.StepTemplates[0].StageID)
	assert.Equal(t, 2, c.StepTemplates[1].OrderIndex)
	assert.True(t, c.StepTemplates[1].IsSkippable)
	assert.False(t, c.StepTemplates[0].IsSkippable)
	assert.Equal(t, 1, c.StepTemplates[2].OrderIndex)

	require.Len(t, c.PhotoTypes, 2)
	assert.True(t, c.PhotoTypes[0].IsRequired)
	assert.False(t, c.PhotoTypes[1].IsRequired)
}

func TestWorkflowCatalog_IDsAreDeterministic(t *testing.T) {
	a, err := ParseSeed([]byte(sampleSeed))
	require.NoError(t, err)
	b, err := ParseSeed([]byte(sampleSeed))
	require.NoError(t, err)

	assert.Equal(t, a.WorkflowCatalog(), b.WorkflowCatalog())
	assert.Equal(t, a.VehicleCatalog(), b.VehicleCatalog())

	c := a.WorkflowCatalog()
	assert.NotEqual(t, c.Stages[0].ID, c.Stages[1].ID)
	assert.Len(t, c.Stages[0].ID, 36)
}

func TestVehicleCatalog(t *testing.T) {
	seed, err := ParseSeed([]byte(sampleSeed))
	require.NoError(t, err)

	c := seed.VehicleCatalog()
	require.Len(t, c.Brands, 1)
	require.Len(t, c.Models, 2)
	assert.Equal(t, c.Brands[0].ID, c.Models[0].BrandID)
	assert.Equal(t, "Toro", c.Models[1].Name)
	require.Len(t, c.Types, 2)
	assert.Equal(t, "SUV", c.Types[1].Name)
}

func TestParseSeed_Invalid(t *testing.T) {
	cases := map[string]string{
		"no stages":       "photo_types: []",
		"duplicate stage": "stages:\n  - {code: a, name: A}\n  - {code: A, name: B}",
		"missing name":    "stages:\n  - {code: a}",
		"duplicate step":  "stages:\n  - code: a\n    name: A\n    steps: [{name: X}, {name: x}]",
		"duplicate photo": "stages:\n  - {code: a, name: A}\nphoto_types:\n  - {code: p}\n  - {code: p}",
		"bad yaml":        "stages: [",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseSeed([]byte(doc))
			assert.Error(t, err)
		})
	}
}

func TestLoadSeed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "workflow.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleSeed), 0o600))

	seed, err := LoadSeed(path)
	require.NoError(t, err)
	assert.Len(t, seed.Stages, 2)

	_, err = LoadSeed(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "read seed")
}

func TestLoadSeed_ShippedCatalog(t *testing.T) {
	seed, err := LoadSeed(filepath.Join("..", "..", "configs", "workflow.yaml"))
	require.NoError(t, err)

	c := seed.WorkflowCatalog()
	require.Len(t, c.Stages, 3)
	assert.Equal(t, []string{"claim", "repair", "billing"},
		[]string{c.Stages[0].Code, c.Stages[1].Code, c.Stages[2].Code})
	assert.NotEmpty(t, seed.VehicleCatalog().Brands)

	var required []string
	for _, pt := range c.PhotoTypes {
		if pt.IsRequired {
			required = append(required, pt.Code)
		}
	}
	assert.Equal(t, []string{"before_repair", "completed"}, required)
	assert.Len(t, c.PhotoTypes, 7)
}
