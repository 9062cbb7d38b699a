// Package config loads coco settings from layered YAML files and COCO_*
// environment variables using Viper.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// FileNames lists the accepted config file names in lookup order.
var FileNames = []string{"coco.yml", "coco.yaml", ".cocorc"}

// CommitKind is one selectable conventional commit type.
type CommitKind struct {
	Name        string `mapstructure:"name" yaml:"name"`
	Emoji       string `mapstructure:"emoji" yaml:"emoji"`
	Description string `mapstructure:"description" yaml:"description"`
}

// Config holds all configuration values for coco.
type Config struct {
	UseEmoji          bool              `mapstructure:"use_emoji" yaml:"use_emoji"`
	AskScope          bool              `mapstructure:"ask_scope" yaml:"ask_scope"`
	AskBody           bool              `mapstructure:"ask_body" yaml:"ask_body"`
	AskFooter         bool              `mapstructure:"ask_footer" yaml:"ask_footer"`
	AskBreakingChange bool              `mapstructure:"ask_breaking_change" yaml:"ask_breaking_change"`
	MaxSummaryLength  int               `mapstructure:"max_summary_length" yaml:"max_summary_length"`
	Scopes            []string          `mapstructure:"scopes" yaml:"scopes"`
	Types             []CommitKind      `mapstructure:"types" yaml:"types"`
	Theme             map[string]string `mapstructure:"theme" yaml:"theme"`
	LogLevel          string            `mapstructure:"log_level" yaml:"log_level"`
	LogFile           string            `mapstructure:"log_file" yaml:"log_file"`
}

// SearchPaths names the directories consulted while locating config files.
type SearchPaths struct {
	HomeDir string
	ExeDir  string
	WorkDir string
}

// camelAliases maps the lowercased camelCase spelling of a key to its canonical name.
var camelAliases = map[string]string{
	"useemoji":          "use_emoji",
	"askscope":          "ask_scope",
	"askbody":           "ask_body",
	"askfooter":         "ask_footer",
	"askbreakingchange": "ask_breaking_change",
	"maxsummarylength":  "max_summary_length",
	"loglevel":          "log_level",
	"logfile":           "log_file",
}

var envKeys = []string{
	"use_emoji",
	"ask_scope",
	"ask_body",
	"ask_footer",
	"ask_breaking_change",
	"max_summary_length",
	"log_level",
	"log_file",
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		UseEmoji:          true,
		AskScope:          true,
		AskBody:           true,
		AskFooter:         true,
		AskBreakingChange: true,
		MaxSummaryLength:  72,
		Scopes:            []string{},
		Types:             DefaultTypes(),
		Theme:             DefaultTheme(),
		LogLevel:          "info",
	}
}

// DefaultTypes returns the stock list of commit kinds.
func DefaultTypes() []CommitKind {
	return []CommitKind{
		{Name: "feat", Emoji: "✨", Description: "Introduces a new feature"},
		{Name: "fix", Emoji: "🚑", Description: "Fixes a bug"},
		{Name: "chore", Emoji: "🧹", Description: "Other changes that don't modify src or test files"},
		{Name: "docs", Emoji: "📝", Description: "Documentation only changes"},
		{Name: "style", Emoji: "💄", Description: "Code cosmetic changes (formatting, indentation, etc.)"},
		{Name: "refactor", Emoji: "🔨", Description: "A change that refactors code without adding or removing features"},
		{Name: "perf", Emoji: "🐎", Description: "A code change that improves performance"},
		{Name: "test", Emoji: "🧪", Description: "A change that only adds or updates tests"},
		{Name: "ci", Emoji: "🔄", Description: "Changes to our CI configuration files and scripts"},
		{Name: "revert", Emoji: "🔙", Description: "Reverts a previous commit"},
		{Name: "release", Emoji: "🔖", Description: "Releases a new version"},
		{Name: "wip", Emoji: "🚧", Description: "Work in progress"},
		{Name: "i18n", Emoji: "🌐", Description: "A change that updates or adds translations (internationalization)"},
	}
}

// DefaultTheme returns the stock color palette.
func DefaultTheme() map[string]string {
	return map[string]string{
		"primary":      "#dcff3f",
		"primary-fg":   "#000000",
		"textarea:bg":  "#050f21",
		"textarea:fg":  "#ffffff",
		"textarea:sel": "#232a38",
		"scope:bg":     "#125acc",
		"scope:fg":     "#ffffff",
		"scope:sec":    "#000000",
	}
}

// Load resolves config files relative to the home, executable and working
// directories of the current process.
func Load() (*Config, error) {
	paths, err := DefaultSearchPaths()
	if err != nil {
		return nil, err
	}
	return LoadFrom(paths)
}

// DefaultSearchPaths inspects the running process for lookup directories.
func DefaultSearchPaths() (SearchPaths, error) {
	var paths SearchPaths
	home, err := os.UserHomeDir()
	if err != nil {
		return paths, fmt.Errorf("resolving home directory: %w", err)
	}
	paths.HomeDir = home
	if exe, err := os.Executable(); err == nil {
		paths.ExeDir = filepath.Dir(exe)
	}
	wd, err := os.Getwd()
	if err != nil {
		return paths, fmt.Errorf("resolving working directory: %w", err)
	}
	paths.WorkDir = wd
	return paths, nil
}

// LoadFrom loads configuration with full precedence:
// ENV vars > project config > global config > defaults
func LoadFrom(paths SearchPaths) (*Config, error) {
	defaults := Default()

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetDefault("use_emoji", defaults.UseEmoji)
	v.SetDefault("ask_scope", defaults.AskScope)
	v.SetDefault("ask_body", defaults.AskBody)
	v.SetDefault("ask_footer", defaults.AskFooter)
	v.SetDefault("ask_breaking_change", defaults.AskBreakingChange)
	v.SetDefault("max_summary_length", defaults.MaxSummaryLength)
	v.SetDefault("scopes", defaults.Scopes)
	v.SetDefault("log_level", defaults.LogLevel)
	v.SetDefault("log_file", "")

	v.SetEnvPrefix("COCO")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	for _, key := range envKeys {
		if err := v.BindEnv(key, "COCO_"+strings.ToUpper(key)); err != nil {
			return nil, fmt.Errorf("binding %s env: %w", key, err)
		}
	}

	if global := GlobalPath(paths); global != "" {
		if err := mergeFile(v, global); err != nil {
			return nil, fmt.Errorf("reading global config: %w", err)
		}
	}
	if project := ProjectPath(paths.WorkDir); project != "" {
		if err := mergeFile(v, project); err != nil {
			return nil, fmt.Errorf("merging project config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	if !v.IsSet("types") {
		cfg.Types = defaults.Types
	}
	cfg.Theme = mergeTheme(defaults.Theme, cfg.Theme)
	if cfg.Scopes == nil {
		cfg.Scopes = []string{}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate reports configuration that would leave the wizard unusable.
func (c *Config) Validate() error {
	if c == nil {
		return ValidationError{Reason: "config is nil"}
	}
	if len(c.Types) == 0 {
		return ValidationError{Reason: "at least one commit type is required"}
	}
	for idx, kind := range c.Types {
		if strings.TrimSpace(kind.Name) == "" {
			return ValidationError{Reason: fmt.Sprintf("commit type %d has no name", idx)}
		}
	}
	if c.MaxSummaryLength <= 0 {
		return ValidationError{Reason: "max_summary_length must be positive"}
	}
	return nil
}

// Color returns the themed color for key, or an empty string when unset.
func (c *Config) Color(key string) string {
	if c == nil {
		return ""
	}
	return c.Theme[key]
}

// GlobalPath returns the first config file found in the home directory,
// then the executable directory. Empty when none exists.
func GlobalPath(paths SearchPaths) string {
	if found := findInDir(paths.HomeDir); found != "" {
		return found
	}
	return findInDir(paths.ExeDir)
}

// ProjectPath returns the nearest config file in start or any of its parents.
func ProjectPath(start string) string {
	if start == "" {
		return ""
	}
	dir := filepath.Clean(start)
	for {
		if found := findInDir(dir); found != "" {
			return found
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

// Write stores cfg as YAML at path, creating parent directories.
func Write(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

func mergeFile(v *viper.Viper, path string) error {
	layer := viper.New()
	layer.SetConfigType("yaml")
	layer.SetConfigFile(path)
	if err := layer.ReadInConfig(); err != nil {
		return err
	}
	settings := layer.AllSettings()
	for camel, snake := range camelAliases {
		val, ok := settings[camel]
		if !ok {
			continue
		}
		if _, set := settings[snake]; !set {
			settings[snake] = val
		}
		delete(settings, camel)
	}
	return v.MergeConfigMap(settings)
}

func mergeTheme(base, override map[string]string) map[string]string {
	merged := make(map[string]string, len(base)+len(override))
	for key, val := range base {
		merged[key] = val
	}
	for key, val := range override {
		merged[strings.ToLower(key)] = val
	}
	return merged
}

func findInDir(dir string) string {
	if dir == "" {
		return ""
	}
	for _, name := range FileNames {
		candidate := filepath.Join(dir, name)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate
		}
	}
	return ""
}
