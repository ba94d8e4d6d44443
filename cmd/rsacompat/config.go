package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/rsacompat/rsacompat-go/pkg/rsacompat/keyfile"
)

const (
	configName = "rsacompat"
	envPrefix  = "RSACOMPAT"
)

// Config is the merged CLI configuration. Precedence, highest first: flags
// set on the command line, RSACOMPAT_* environment, config file, defaults.
type Config struct {
	Format   string `mapstructure:"format"`
	Comment  string `mapstructure:"comment"`
	LogLevel string `mapstructure:"log-level"`
}

var configDefaults = map[string]any{
	"format":    string(keyfile.FormatPEM),
	"comment":   "",
	"log-level": "info",
}

// configDir returns the per-user directory searched for rsacompat.yaml.
func configDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("could not get user config directory: %w", err)
	}
	return filepath.Join(dir, configName), nil
}

// loadConfig merges defaults, the config file, environment and the flags in
// fs. An explicit path must exist; the implicit search locations may not.
func loadConfig(fs *pflag.FlagSet, path string) (Config, string, error) {
	var c Config
	v := viper.New()

	for key, value := range configDefaults {
		v.SetDefault(key, value)
	}

	v.SetConfigName(configName)
	v.SetConfigType("yaml")
	if path != "" {
		v.SetConfigFile(path)
	}
	if dir, err := configDir(); err == nil {
		v.AddConfigPath(dir)
	}
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return c, "", fmt.Errorf("read config: %w", err)
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	if err := bindFlags(v, fs); err != nil {
		return c, "", err
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, "", fmt.Errorf("decode config: %w", err)
	}
	if _, err := keyfile.ParseFormat(c.Format); err != nil {
		return c, "", fmt.Errorf("config: %w", err)
	}
	return c, v.ConfigFileUsed(), nil
}

// bindFlags binds every flag in fs that names a config key.
func bindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	var err error
	fs.VisitAll(func(f *pflag.Flag) {
		if _, ok := configDefaults[f.Name]; !ok || err != nil {
			return
		}
		err = v.BindPFlag(f.Name, f)
	})
	return err
}
