package config_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/giantgraph/config"
)

func TestDefault_IsValid(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 100, cfg.Nodes)
	assert.Equal(t, 200*time.Millisecond, cfg.Server.StepInterval)
	assert.Equal(t, 5, cfg.Report.TopComponents)
}

func TestLoad_EmptyPath(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoad_Valid(t *testing.T) {
	cfg, err := config.Load(filepath.Join("testdata", "valid.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 64, cfg.Nodes)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.InDelta(t, 0.05, cfg.Probability, 1e-12)
	assert.Equal(t, 500, cfg.CycleLimit)
	assert.Equal(t, 250, cfg.AutoRun.MaxSteps)
	assert.Equal(t, 3, cfg.Report.TopComponents)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Log.Development)
	assert.Equal(t, "0.0.0.0:9090", cfg.Server.Addr)
	assert.Equal(t, 50*time.Millisecond, cfg.Server.StepInterval)
}

// TestLoad_Partial keeps defaults for keys the file leaves out.
func TestLoad_Partial(t *testing.T) {
	cfg, err := config.Load(filepath.Join("testdata", "partial.yaml"))
	require.NoError(t, err)

	want := config.Default()
	want.Nodes = 20
	want.Log.Level = "warn"
	assert.Equal(t, want, cfg)
}

func TestLoad_Invalid(t *testing.T) {
	_, err := config.Load(filepath.Join("testdata", "invalid.yaml"))
	require.ErrorIs(t, err, config.ErrInvalidConfig)
	assert.Contains(t, err.Error(), "Config.Nodes must be at least 0")
	assert.Contains(t, err.Error(), "Config.Probability must be at most 1")
	assert.Contains(t, err.Error(), "Config.Log.Level must be one of")
}

func TestLoad_Missing(t *testing.T) {
	_, err := config.Load(filepath.Join("testdata", "nope.yaml"))
	require.Error(t, err)
}

func TestParse_UnknownKey(t *testing.T) {
	cfg := config.Default()
	err := config.Parse([]byte("nodez: 3\n"), &cfg)
	require.Error(t, err)
	assert.NotErrorIs(t, err, config.ErrInvalidConfig)
}

func TestParse_Empty(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, config.Parse(nil, &cfg))
	assert.Equal(t, config.Default(), cfg)
}

func TestValidate_Table(t *testing.T) {
	cases := []struct {
		name string
		mut  func(*config.Config)
	}{
		{"zero max steps", func(c *config.Config) { c.AutoRun.MaxSteps = 0 }},
		{"negative cycle limit", func(c *config.Config) { c.CycleLimit = -1 }},
		{"negative top", func(c *config.Config) { c.Report.TopComponents = -1 }},
		{"empty addr", func(c *config.Config) { c.Server.Addr = "" }},
		{"zero interval", func(c *config.Config) { c.Server.StepInterval = 0 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.Default()
			tc.mut(&cfg)
			require.ErrorIs(t, cfg.Validate(), config.ErrInvalidConfig)
		})
	}
}

// TestMarshal_RoundTrip checks the rendered YAML loads back to the same config.
func TestMarshal_RoundTrip(t *testing.T) {
	cfg := config.Default()
	cfg.Seed = 9
	data, err := cfg.Marshal()
	require.NoError(t, err)
	assert.Contains(t, string(data), "step_interval: 200ms")

	var back config.Config
	require.NoError(t, config.Parse(data, &back))
	assert.Equal(t, cfg, back)
}

func TestLogConfig_NewLogger(t *testing.T) {
	for _, lc := range []config.LogConfig{{Level: "info"}, {Level: "debug", Development: true}} {
		logger, err := lc.NewLogger()
		require.NoError(t, err)
		require.NotNil(t, logger)
	}
	_, err := config.LogConfig{Level: "loud"}.NewLogger()
	require.Error(t, err)
}
