// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd and /test)
package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds the settings for invoking and verifying the external
// pipeline. Defaults match the premade primate dataset; any field can be
// overridden from an optional settings.yaml in the working directory.
type Config struct {
	// the name of the external pipeline executable
	Pipeline string `mapstructure:"pipeline"`

	// the name of the BAM comparison tool
	BamDiff string `mapstructure:"bam-diff"`

	// worker count passed through to the pipeline
	Processors int `mapstructure:"processors"`

	// the contig assembly mode
	Assembler string `mapstructure:"assembler"`

	// minimum read coverage for a site to be kept
	Coverage int `mapstructure:"coverage"`

	// directory holding the premade pipeline stage data
	DataDir string `mapstructure:"data-dir"`

	// scratch directory recreated before every verification run
	OutDir string `mapstructure:"out-dir"`
}

// New returns a Config populated by Viper settings: the defaults below,
// overridden by an optional settings.yaml and any bound command line flags.
func New() Config {
	viper.SetDefault("pipeline", "sisrs-python")
	viper.SetDefault("bam-diff", "bam")
	viper.SetDefault("processors", 8)
	viper.SetDefault("assembler", "premade")
	viper.SetDefault("coverage", 0)
	viper.SetDefault("data-dir", "pipeline_stages")
	viper.SetDefault("out-dir", "output")

	viper.SetConfigName("settings")
	viper.AddConfigPath(".")
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Fatalf("failed to read settings file: %v", err)
		}
	}

	var c Config
	if err := viper.Unmarshal(&c); err != nil {
		log.Fatalf("unable to decode settings into struct: %v", err)
	}
	return c
}
