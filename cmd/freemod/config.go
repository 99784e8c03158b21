// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config keys and their defaults. Flags, FREEMOD_* environment variables and
// the optional TOML config file all feed the same keys, in that precedence.
const (
	keyRing     = "ring"
	keyRank     = "rank"
	keyLogLevel = "log_level"

	defaultRing     = ringIntegers
	defaultRank     = 3
	defaultLogLevel = "warn"

	envPrefix = "FREEMOD"
	logPrefix = "freemod"
)

// config is the resolved CLI configuration.
type config struct {
	Ring     string
	Rank     int
	LogLevel log.Level
}

// newViper returns a viper instance bound to the persistent flags.
func newViper(flags *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault(keyRing, defaultRing)
	v.SetDefault(keyRank, defaultRank)
	v.SetDefault(keyLogLevel, defaultLogLevel)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	for key, flag := range map[string]string{
		keyRing:     "ring",
		keyRank:     "rank",
		keyLogLevel: "log-level",
	} {
		if err := v.BindPFlag(key, flags.Lookup(flag)); err != nil {
			return nil, fmt.Errorf("bind --%s: %w", flag, err)
		}
	}

	return v, nil
}

// loadConfig reads the optional config file into v and resolves the keys.
func loadConfig(v *viper.Viper, path string) (config, error) {
	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("toml")
		if err := v.ReadInConfig(); err != nil {
			return config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}
	lvl, err := log.ParseLevel(v.GetString(keyLogLevel))
	if err != nil {
		return config{}, fmt.Errorf("%s: %w", keyLogLevel, err)
	}

	return config{
		Ring:     v.GetString(keyRing),
		Rank:     v.GetInt(keyRank),
		LogLevel: lvl,
	}, nil
}

// newLogger builds the CLI logger on w.
func newLogger(w io.Writer, lvl log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Prefix: logPrefix,
		Level:  lvl,
	})
}
