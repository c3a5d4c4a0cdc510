package main

import (
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "LANDER"

// Config is everything the command line and LANDER_* environment can set.
type Config struct {
	Profile  string
	Seed     int64
	Scenario string
	Debug    bool
	Watch    bool
	LogLevel string
	LogFile  string
	Monitor  bool
}

func bindFlags(flags *pflag.FlagSet) {
	flags.String("profile", "final", "tuning profile in prefabs/profiles (classic, orbital, final)")
	flags.Int64("seed", 0, "layout seed; 0 picks one from the clock")
	flags.String("scenario", "solar_system", "layout script in prefabs/scripts")
	flags.Bool("debug", false, "draw TPS, FPS and entity count")
	flags.Bool("watch", false, "reload profiles, prefabs and the scenario script when their files change")
	flags.String("log-level", "info", "log level (debug, info, warn, error)")
	flags.String("log-file", "", "also write JSON logs to this file, rotated")
	flags.Bool("monitor", false, "open on the first monitor instead of the primary one")
}

// loadConfig layers flags over LANDER_* variables: an explicitly set flag
// wins, an environment variable beats a flag default.
func loadConfig(flags *pflag.FlagSet) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(flags); err != nil {
		return Config{}, err
	}

	return Config{
		Profile:  v.GetString("profile"),
		Seed:     v.GetInt64("seed"),
		Scenario: v.GetString("scenario"),
		Debug:    v.GetBool("debug"),
		Watch:    v.GetBool("watch"),
		LogLevel: v.GetString("log-level"),
		LogFile:  v.GetString("log-file"),
		Monitor:  v.GetBool("monitor"),
	}, nil
}
