package plotting

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/caseyjlaw/vlass/pkg/decfit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeightCurve(t *testing.T) {
	f, err := decfit.FitPowerLaw(decfit.Table, -40)
	require.NoError(t, err)

	p := filepath.Join(t.TempDir(), "weight.png")
	require.NoError(t, WeightCurve(f, decfit.Table, p))

	fi, err := os.Stat(p)
	require.NoError(t, err)
	assert.Greater(t, fi.Size(), int64(0))

	assert.ErrorIs(t, WeightCurve(f, nil, p), ErrNoPoints)
}

func TestLightCurve(t *testing.T) {
	p := filepath.Join(t.TempDir(), "lc.svg")
	require.NoError(t, LightCurve(DefaultLightCurve, p))

	b, err := os.ReadFile(p)
	require.NoError(t, err)
	assert.Contains(t, string(b), "<svg")

	assert.ErrorIs(t, LightCurve(nil, p), ErrNoPoints)
	assert.Error(t, LightCurve([]Measurement{{Survey: "bad", Year: 2018, Flux: 0}}, p))
}
