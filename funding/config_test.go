//go:build unit

package funding

import (
	"testing"
	"time"

	"github.com/galtzo-floss/floss-funding-go/funding/nag"
	"github.com/stretchr/testify/assert"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg := LoadConfig()

	assert.Equal(t, nag.DefaultOnLoadMaxAge, cfg.OnLoadMaxAge())
	assert.Equal(t, nag.DefaultAtExitMaxAge, cfg.AtExitMaxAge())
	assert.False(t, cfg.Silenced())
	assert.False(t, cfg.Debug)
}

func TestLoadConfig_FromEnvironment(t *testing.T) {
	t.Setenv("FLOSS_FUNDING_ENV_PREFIX", "CUSTOM_")
	t.Setenv("FLOSS_FUNDING_SILENT", "true")
	t.Setenv("FLOSS_FUNDING_DEBUG", "true")
	t.Setenv("FLOSS_FUNDING_ON_LOAD_MAX_AGE_SECONDS", "3600")

	cfg := LoadConfig()

	assert.Equal(t, "CUSTOM_", cfg.EnvPrefix)
	assert.True(t, cfg.Silenced())
	assert.True(t, cfg.Debug)
	assert.Equal(t, time.Hour, cfg.OnLoadMaxAge())
}

func TestConfig_MaxAgeClamping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		seconds int64
		want    time.Duration
	}{
		{name: "below minimum", seconds: 1, want: nag.MinMaxAge},
		{name: "above maximum", seconds: 10000000, want: nag.MaxMaxAge},
		{name: "in range", seconds: 7200, want: 2 * time.Hour},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := Config{OnLoadMaxAgeSeconds: tt.seconds, AtExitMaxAgeSeconds: tt.seconds}

			assert.Equal(t, tt.want, cfg.OnLoadMaxAge())
			assert.Equal(t, tt.want, cfg.AtExitMaxAge())
		})
	}
}

func TestConfig_Silenced(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value string
		want  bool
	}{
		{name: "lowercase sentinel", value: "true", want: true},
		{name: "uppercase sentinel", value: "TRUE", want: true},
		{name: "mixed case sentinel", value: "True", want: true},
		{name: "unset", value: "", want: false},
		{name: "other truthy word", value: "yes", want: false},
		{name: "sentinel with whitespace", value: " true", want: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, Config{Silent: tt.value}.Silenced())
		})
	}
}
