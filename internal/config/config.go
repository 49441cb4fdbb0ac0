package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Global configuration structure.
type Global struct {
	DatasetPath          string `mapstructure:"dataset_path" yaml:"dataset_path"`
	Delimiter            string `mapstructure:"delimiter" yaml:"delimiter"`
	MinYear              int    `mapstructure:"min_year" yaml:"min_year"`
	TargetCategory       string `mapstructure:"target_category" yaml:"target_category"`
	RatingLow            int    `mapstructure:"rating_low" yaml:"rating_low"`
	RatingHigh           int    `mapstructure:"rating_high" yaml:"rating_high"`
	ReliabilityThreshold int    `mapstructure:"reliability_threshold" yaml:"reliability_threshold"`
	ChartWidth           int    `mapstructure:"chart_width" yaml:"chart_width"`
	RunsDir              string `mapstructure:"runs_dir" yaml:"runs_dir"`
}

// Save writes the given configuration to the cfgFile path. If cfgFile is
// empty, it writes to ~/.goldenage/config.yaml, creating the directory if
// necessary.
func Save(c *Global, cfgFile string) error {
	var path string
	if cfgFile != "" {
		path = cfgFile
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".goldenage")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir config dir: %w", err)
		}
		path = filepath.Join(dir, "config.yaml")
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Load loads configuration from file, env, and defaults.
// Precedence: flags (cfgFile) > env > config file > defaults.
func Load(cfgFile string) (*Global, error) {
	v := viper.New()
	v.SetEnvPrefix("GOLDENAGE")
	v.AutomaticEnv()

	// Defaults match the analysis the tool ships for: the Golden Age
	// window, canonical SHOW records, the 4-9 rating window.
	v.SetDefault("delimiter", ",")
	v.SetDefault("min_year", 1999)
	v.SetDefault("target_category", "SHOW")
	v.SetDefault("rating_low", 4)
	v.SetDefault("rating_high", 9)
	v.SetDefault("reliability_threshold", 30)
	v.SetDefault("chart_width", 40)

	// Config file
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".goldenage")
		_ = os.MkdirAll(dir, 0o755)
		v.AddConfigPath(dir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	// optional read
	_ = v.ReadInConfig()

	var c Global
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	// Resolve runs_dir default: ~/.goldenage/runs
	if c.RunsDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		c.RunsDir = filepath.Join(home, ".goldenage", "runs")
	}
	return &c, nil
}
