package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
)

// Config holds tool settings shared by the exml and ccfdecode commands.
type Config struct {
	// Paths
	BaseDir   string `json:"base_dir" yaml:"base_dir"`
	XMLDir    string `json:"xml_dir" yaml:"xml_dir"`
	CCFFile   string `json:"ccf_file" yaml:"ccf_file"`
	OutputDir string `json:"output_dir" yaml:"output_dir"`

	// Decode table
	OptionIDs []int `json:"option_ids" yaml:"option_ids"`
	AllIDs    bool  `json:"all_ids" yaml:"all_ids"`

	// Codec and runtime
	Strict   bool   `json:"strict" yaml:"strict"`
	Workers  int    `json:"workers" yaml:"workers"`
	LogLevel string `json:"log_level" yaml:"log_level"`
}

// Load reads a JSON or YAML config file, chosen by extension.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	default:
		err = json.Unmarshal(data, &cfg)
	}
	if err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	BaseDir   string
	OutputDir string
	OptionIDs []int
	AllIDs    bool
	Strict    bool
	Workers   int
	Verbose   bool
}

// Resolve fills in empty fields with defaults and resolves config-file paths
// against BaseDir. CLI flags take priority when non-zero/non-empty.
// defaultIDs is used when no allow-list is configured.
func (c *Config) Resolve(flags Flags, defaultIDs []int) {
	if flags.BaseDir != "" {
		c.BaseDir = flags.BaseDir
	}
	if len(flags.OptionIDs) > 0 {
		c.OptionIDs = flags.OptionIDs
	}
	if flags.AllIDs {
		c.AllIDs = true
	}
	if flags.Strict {
		c.Strict = true
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	if flags.Verbose {
		c.LogLevel = "debug"
	}

	if c.BaseDir == "" {
		c.BaseDir = detectBaseDir()
	}

	// Resolve relative paths against base dir
	if c.BaseDir != "" {
		if c.XMLDir == "" {
			c.XMLDir = filepath.Join(c.BaseDir, "Xml")
		} else if !filepath.IsAbs(c.XMLDir) {
			c.XMLDir = filepath.Join(c.BaseDir, c.XMLDir)
		}
		if c.CCFFile != "" && !filepath.IsAbs(c.CCFFile) {
			c.CCFFile = filepath.Join(c.XMLDir, c.CCFFile)
		}
		if c.OutputDir != "" && !filepath.IsAbs(c.OutputDir) {
			c.OutputDir = filepath.Join(c.BaseDir, c.OutputDir)
		}
	}

	// Paths given on the command line are relative to the working directory.
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}

	if len(c.OptionIDs) == 0 {
		c.OptionIDs = append([]int(nil), defaultIDs...)
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

// Logger builds a stderr logger at the configured level.
func (c Config) Logger() (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("config: log level: %w", err)
	}
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetLevel(level)
	return l, nil
}

// detectBaseDir looks for an SDD install ("<base>/Xml" holding .exml files)
// next to the executable or the working directory.
func detectBaseDir() string {
	var candidates []string
	if exe, _ := os.Executable(); exe != "" {
		dir := filepath.Dir(exe)
		candidates = append(candidates, dir, filepath.Dir(dir))
	}
	if cwd, _ := os.Getwd(); cwd != "" {
		candidates = append(candidates, cwd, filepath.Dir(cwd))
	}

	for _, base := range candidates {
		if matches, _ := filepath.Glob(filepath.Join(base, "Xml", "*.exml")); len(matches) > 0 {
			return base
		}
	}
	return ""
}
