package funding

import (
	"strings"
	"time"

	"github.com/galtzo-floss/floss-funding-go/funding/constants"
	"github.com/galtzo-floss/floss-funding-go/funding/nag"
	"github.com/kelseyhightower/envconfig"
)

// Config carries the process-wide switches, populated from FLOSS_FUNDING_*
// environment variables.
type Config struct {
	// EnvPrefix overrides the prefix of every derived variable name.
	EnvPrefix string `envconfig:"ENV_PREFIX"`
	// Silent holds the raw value of the silence switch; see Silenced.
	Silent string `envconfig:"SILENT"`
	// Debug enables debug logging of otherwise-swallowed failures.
	Debug bool `envconfig:"DEBUG"`
	// OnLoadMaxAgeSeconds is the on_load lockfile lifetime before clamping.
	OnLoadMaxAgeSeconds int64 `envconfig:"ON_LOAD_MAX_AGE_SECONDS" default:"600"`
	// AtExitMaxAgeSeconds is the at_exit lockfile lifetime before clamping.
	AtExitMaxAgeSeconds int64 `envconfig:"AT_EXIT_MAX_AGE_SECONDS" default:"86400"`
}

// LoadConfig reads the environment. A malformed environment falls back to
// defaults; global switches must never break a host process.
func LoadConfig() Config {
	var cfg Config

	if err := envconfig.Process(constants.EnvConfigPrefix, &cfg); err != nil {
		return Config{
			OnLoadMaxAgeSeconds: int64(nag.DefaultOnLoadMaxAge / time.Second),
			AtExitMaxAgeSeconds: int64(nag.DefaultAtExitMaxAge / time.Second),
		}
	}

	return cfg
}

// Silenced reports whether the process-wide silence switch is set: a
// case-insensitive exact match of the documented sentinel.
func (c Config) Silenced() bool {
	return strings.EqualFold(c.Silent, constants.SilenceSentinel)
}

// OnLoadMaxAge returns the clamped on_load lockfile lifetime.
func (c Config) OnLoadMaxAge() time.Duration {
	return nag.ClampMaxAge(time.Duration(c.OnLoadMaxAgeSeconds) * time.Second)
}

// AtExitMaxAge returns the clamped at_exit lockfile lifetime.
func (c Config) AtExitMaxAge() time.Duration {
	return nag.ClampMaxAge(time.Duration(c.AtExitMaxAgeSeconds) * time.Second)
}
