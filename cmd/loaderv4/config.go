package main

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	envPrefix = "LOADERV4"

	logLevelConfigKey = "log_level"
	prettyConfigKey   = "pretty"
)

// Config is the CLI configuration, read from an optional config file, the
// environment and flags, in increasing order of precedence.
type Config struct {
	LogLevel string `mapstructure:"log_level"`
	Pretty   bool   `mapstructure:"pretty"`
}

var defaultConfig = Config{
	LogLevel: "info",
	Pretty:   false,
}

func loadConfig(path string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	v.SetDefault(logLevelConfigKey, defaultConfig.LogLevel)
	v.SetDefault(prettyConfigKey, defaultConfig.Pretty)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	for key, flag := range map[string]string{
		logLevelConfigKey: "log-level",
		prettyConfigKey:   "pretty",
	} {
		if f := flags.Lookup(flag); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return nil, errors.Wrapf(err, "failed to bind flag %s", flag)
			}
		}
	}

	// An explicitly configured file must exist. Without one, defaults apply.
	if len(path) > 0 {
		if _, err := os.Stat(path); err != nil {
			return nil, errors.Wrap(err, "failed to check if config exists")
		}

		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrap(err, "failed to load config")
		}
	}

	config := defaultConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}
	return &config, nil
}

// setupLogger applies the output format before any config is loaded, so
// config failures are logged in the same shape as everything else. Output
// goes to stderr so that stdout only carries command results.
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stderr)
}

func configureLogger(config *Config) {
	setupLogger()

	level, err := logrus.ParseLevel(strings.ToLower(config.LogLevel))
	if err != nil {
		logrus.StandardLogger().WithField("log_level", config.LogLevel).Warn("unknown log level, ignoring")
	} else {
		logrus.SetLevel(level)
	}
}
