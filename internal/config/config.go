// Package config provides centralized configuration management using Viper.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// DefaultLogoMaxSize bounds the longest edge of embedded raster logos, in pixels.
const DefaultLogoMaxSize = 512

// Config holds all configuration values for htmlpack.
type Config struct {
	OutputDir       string `mapstructure:"output_dir" yaml:"output_dir"`
	Overwrite       bool   `mapstructure:"overwrite" yaml:"overwrite"`
	LogLevel        string `mapstructure:"log_level" yaml:"log_level"`
	LogFile         string `mapstructure:"log_file" yaml:"log_file"`
	WrapperTemplate string `mapstructure:"wrapper_template" yaml:"wrapper_template"`
	ShellTemplate   string `mapstructure:"shell_template" yaml:"shell_template"`
	LogoMaxSize     int    `mapstructure:"logo_max_size" yaml:"logo_max_size"`
}

// Default returns the configuration used when no file or env override exists.
func Default() *Config {
	return &Config{
		OutputDir:   ".",
		LogLevel:    "info",
		LogoMaxSize: DefaultLogoMaxSize,
	}
}

var envKeys = []string{
	"output_dir",
	"overwrite",
	"log_level",
	"log_file",
	"wrapper_template",
	"shell_template",
	"logo_max_size",
}

// Load loads configuration with full precedence:
// CLI flags > ENV vars > project config > XDG global config > defaults
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigName("htmlpack")

	def := Default()
	v.SetDefault("output_dir", def.OutputDir)
	v.SetDefault("overwrite", def.Overwrite)
	v.SetDefault("log_level", def.LogLevel)
	v.SetDefault("log_file", "")
	v.SetDefault("wrapper_template", "")
	v.SetDefault("shell_template", "")
	v.SetDefault("logo_max_size", def.LogoMaxSize)

	v.SetEnvPrefix("HTMLPACK")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Explicit bindings so bool/int values parse from the environment.
	for _, key := range envKeys {
		if err := v.BindEnv(key, "HTMLPACK_"+strings.ToUpper(key)); err != nil {
			return nil, fmt.Errorf("binding %s env: %w", key, err)
		}
	}

	globalPath := GlobalPath()
	if Exists(globalPath) {
		v.SetConfigFile(globalPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading global config: %w", err)
		}
	}

	projectPath := ProjectPath()
	if Exists(projectPath) {
		v.SetConfigFile(projectPath)
		if err := v.MergeInConfig(); err != nil {
			return nil, fmt.Errorf("merging project config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	if cfg.LogoMaxSize <= 0 {
		cfg.LogoMaxSize = DefaultLogoMaxSize
	}

	return &cfg, nil
}

// GlobalPath returns the XDG global config path.
// Returns ~/.config/htmlpack/htmlpack.yml or $XDG_CONFIG_HOME/htmlpack/htmlpack.yml.
func GlobalPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "htmlpack", "htmlpack.yml")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "htmlpack", "htmlpack.yml")
}

// ProjectPath returns the project-local config path.
func ProjectPath() string {
	return "htmlpack.yml"
}

// WriteGlobal writes the config to the XDG global location.
func WriteGlobal(cfg *Config) error {
	return write(GlobalPath(), cfg)
}

// WriteProject writes the config to the project-local location.
func WriteProject(cfg *Config) error {
	return write(ProjectPath(), cfg)
}

func write(path string, cfg *Config) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating config directory: %w", err)
		}
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// Exists reports whether a config file is present at path.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
