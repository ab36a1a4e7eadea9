// Package config loads optional analyzer settings from textlex.yaml and
// TEXTLEX_* environment variables. Everything has a working default, so a
// missing config file is not an error.
package config

import (
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	// Resources points at on-disk linguistic resources that override the
	// embedded defaults. The four lemma paths are used together; leaving
	// any of them empty keeps the embedded lemma dictionary.
	Resources struct {
		PronouncingDict string `mapstructure:"pronouncing_dict"`
		VerbExceptions  string `mapstructure:"verb_exceptions"`
		NounExceptions  string `mapstructure:"noun_exceptions"`
		VerbList        string `mapstructure:"verb_list"`
		NounList        string `mapstructure:"noun_list"`
	} `mapstructure:"resources"`

	Logging struct {
		Level string `mapstructure:"level"`
	} `mapstructure:"logging"`
}

// HasLemmaResources reports whether all four lemma resource paths are set.
func (c *Config) HasLemmaResources() bool {
	r := c.Resources
	return r.VerbExceptions != "" && r.NounExceptions != "" &&
		r.VerbList != "" && r.NounList != ""
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName("textlex")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	viper.SetDefault("logging.level", "warn")

	viper.SetEnvPrefix("TEXTLEX")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// Missing config file is fine; defaults and env vars apply.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if lvl, err := log.ParseLevel(cfg.Logging.Level); err == nil {
		log.SetLevel(lvl)
	} else {
		log.WithField("level", cfg.Logging.Level).Warn("config: unknown log level, keeping current")
	}
	return &cfg, nil
}
