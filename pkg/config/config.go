// 19 Oct 2026

// Package config is for tool wide settings that are unmarshalled
// from Viper (see: pkg/cli). Settings come from command line flags,
// then SEQALN_ environment variables, then a yaml config file.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/andrew-torda/seqaln/pkg/aln"
	"github.com/spf13/viper"
)

const (
	EnvPrefix  = "SEQALN"
	configName = ".seqaln" // looked for in the home directory
)

// Config is the root-level settings struct
type Config struct {
	// default alignment format, phylip or fasta
	Format string `mapstructure:"format"`

	// log files read and written to stderr
	Verbose bool `mapstructure:"verbose"`
}

// Setup tells v where to look. If cfgFile is given, it has to be
// readable. Otherwise a .seqaln.yaml in the home directory is used
// if there is one.
func Setup(v *viper.Viper, cfgFile string) error {
	v.SetDefault("format", aln.Phylip.String())
	v.SetDefault("verbose", false)
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config file %s: %w", cfgFile, err)
		}
		return nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return nil // no home, no config file
	}
	v.AddConfigPath(home)
	v.SetConfigName(configName)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("reading config file in %s: %w", home, err)
		}
	}
	return nil
}

// New returns a Config populated from v.
func New(v *viper.Viper) (Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return c, fmt.Errorf("unable to decode settings: %w", err)
	}
	return c, nil
}

// AlnFormat is the format setting as an aln.Format.
func (c Config) AlnFormat() (aln.Format, error) { return aln.ParseFormat(c.Format) }
