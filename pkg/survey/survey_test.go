package survey

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompute_Defaults(t *testing.T) {
	cfg := DefaultConfig()
	d, err := Compute(cfg)
	require.NoError(t, err)

	assert.Equal(t, 325, d.Baselines)
	assert.InDelta(t, 1.8570, d.Resolution, 1e-3)
	assert.InDelta(t, math.Sqrt(3)*69e-6, d.Sensitivity, 1e-15)
	assert.InDelta(t, 15.5893, d.IntegrationTime, 1e-3)
	assert.InDelta(t, 7.9446, d.SurveySpeed, 1e-3)
	assert.InDelta(t, 1.1034, d.ScanRate, 1e-3)
	assert.InDelta(t, 25.0, d.DataRate, 1e-9)
	assert.InDelta(t, 0.45, d.MinDumpTime, 1e-9)
	assert.InDelta(t, d.ScanRate*d.MinDumpTime/cfg.FOV, d.BeamFraction, 1e-12)

	t.Logf("tint=%.4fs speed=%.4f deg2/hr scan=%.4f arcmin/s rate=%.2f MB/s",
		d.IntegrationTime, d.SurveySpeed, d.ScanRate, d.DataRate)
}

func TestBaselines(t *testing.T) {
	cases := []struct {
		nant, want int
	}{
		{2, 1},
		{3, 3},
		{26, 325},
		{27, 351},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Baselines(tc.nant), "nant=%d", tc.nant)
	}
}

func TestDataRate_LinearInChannelsInverseInDump(t *testing.T) {
	base := DataRate(1024, 4, 0.45)

	for _, k := range []int{2, 3, 8} {
		assert.InDelta(t, float64(k)*base, DataRate(1024*k, 4, 0.45), 1e-9, "nchan x%d", k)
		assert.InDelta(t, base/float64(k), DataRate(1024, 4, 0.45*float64(k)), 1e-9, "tdump x%d", k)
	}
}

func TestSurveySpeed_Scaling(t *testing.T) {
	base := SurveySpeed(14.786, 15.0)

	assert.InDelta(t, 4*base, SurveySpeed(2*14.786, 15.0), 1e-9)
	assert.InDelta(t, 9*base, SurveySpeed(3*14.786, 15.0), 1e-9)
	assert.InDelta(t, base/2, SurveySpeed(14.786, 30.0), 1e-9)

	// fov does not enter the radiometer equation
	cfg := DefaultConfig()
	d1, err := Compute(cfg)
	require.NoError(t, err)
	cfg.FOV *= 2
	d2, err := Compute(cfg)
	require.NoError(t, err)
	assert.InDelta(t, 4*d1.SurveySpeed, d2.SurveySpeed, 1e-9)
	assert.InDelta(t, d1.IntegrationTime, d2.IntegrationTime, 1e-12)
}

func TestMinDumpTime_DecreasesWithLimit(t *testing.T) {
	prev := math.Inf(1)
	for _, limit := range []float64{1, 5, 10, 25, 50, 100, 1000} {
		got := MinDumpTime(1024, 4, limit)
		assert.Less(t, got, prev, "limit=%v", limit)
		prev = got
	}
}

func TestValidate_NamesParameter(t *testing.T) {
	cases := []struct {
		param string
		mut   func(*Config)
	}{
		{"fov", func(c *Config) { c.FOV = 0 }},
		{"tdump", func(c *Config) { c.TDump = -1 }},
		{"drlimit", func(c *Config) { c.DRLimit = 0 }},
		{"effbw", func(c *Config) { c.EffBW = math.NaN() }},
		{"nepoch", func(c *Config) { c.NEpoch = 0 }},
		{"eta", func(c *Config) { c.Eta = 1.5 }},
		{"nant", func(c *Config) { c.NAnt = 1 }},
		{"decmin", func(c *Config) { c.DecMin = 90 }},
		{"decmin", func(c *Config) { c.DecMin = -91 }},
		{"decmax", func(c *Config) { c.DecMax = 91 }},
	}
	for i, tc := range cases {
		t.Run(fmt.Sprintf("case_%d_%s", i, tc.param), func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mut(&cfg)

			_, err := Compute(cfg)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidConfig)

			var pe *ParamError
			require.True(t, errors.As(err, &pe))
			assert.Equal(t, tc.param, pe.Param)
			assert.Contains(t, err.Error(), tc.param)
		})
	}
}

func TestValidate_Defaults(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())
}

func TestEstimateTime(t *testing.T) {
	cfg := DefaultConfig()
	d, err := Compute(cfg)
	require.NoError(t, err)

	est := EstimateTime(cfg, d, 33884, 35788)
	k := 3 * cfg.Overhead / d.SurveySpeed
	assert.InDelta(t, k*35788, est.TotalHours, 1e-6)
	assert.InDelta(t, k*33884, est.UniformHours, 1e-6)
	assert.Greater(t, est.TotalHours, est.UniformHours)

	cfg.FailureRate = 1.1
	est2 := EstimateTime(cfg, d, 33884, 35788)
	assert.InDelta(t, 1.1*est.TotalHours, est2.TotalHours, 1e-6)
}

func ExampleCompute() {
	d, err := Compute(DefaultConfig())
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("baselines=%d data rate=%.1f MB/s\n", d.Baselines, d.DataRate)
	// Output: baselines=325 data rate=25.0 MB/s
}
