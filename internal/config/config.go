package config

import (
	_ "embed"
	"fmt"
	"strings"

	"extrenamer/internal/errors"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config represents the application configuration structure.
// It holds the texts, prompts and answer sets of an interactive run.
type Config struct {
	Texts struct {
		Greeting string `yaml:"greeting"` // Banner printed at startup
		Help     string `yaml:"help"`     // Printed when the user types "help"
	} `yaml:"texts"`
	Prompts struct {
		Search     string `yaml:"search"`      // First prompt: extension to search for
		Replace    string `yaml:"replace"`     // Second prompt: new extension
		Confirm    string `yaml:"confirm"`     // Yes/no prompt before renaming
		PressEnter string `yaml:"press_enter"` // Final line before the window closes
	} `yaml:"prompts"`
	Answers struct {
		Affirmative []string `yaml:"affirmative"` // Answers that confirm the rename
		Negative    []string `yaml:"negative"`    // Answers that end the run
	} `yaml:"answers"`
	Settings struct {
		Debug      bool `yaml:"debug"`       // Emit debug diagnostics on stderr
		PressEnter bool `yaml:"press_enter"` // Wait for enter after a completed run
	} `yaml:"settings"`
	Theme struct {
		Name    string `yaml:"name"`    // Theme name (default, dark, light, monochrome)
		Primary string `yaml:"primary"` // Banner and headers
		Success string `yaml:"success"` // Renamed lines
		Warning string `yaml:"warning"` // Totals with errors
		Error   string `yaml:"error"`   // ** ERROR lines
		Info    string `yaml:"info"`    // Working directory and counts
		Border  string `yaml:"border"`  // Banner frame
	} `yaml:"theme"`
}

// New returns the built-in configuration.
// The embedded defaults are validated by tests, so a failure here is a
// build defect.
func New() *Config {
	cfg, err := Parse(nil)
	if err != nil {
		panic(fmt.Sprintf("embedded defaults are invalid: %v", err))
	}
	return cfg
}

// Parse overlays a YAML document on the built-in defaults and validates
// the result. Fields missing from data keep their default values.
func Parse(data []byte) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, errors.NewConfigError("error parsing defaults", "defaults.yaml", err)
	}

	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, errors.NewConfigError("error parsing config", "", err)
		}
	}

	if cfg.Theme.Primary == "" {
		if !isKnownTheme(cfg.Theme.Name) {
			return nil, errors.NewConfigError("unknown theme", cfg.Theme.Name, nil)
		}
		cfg.ApplyTheme(cfg.Theme.Name)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks if the configuration is valid.
// Returns error if any settings are invalid.
func (c *Config) Validate() error {
	if c == nil {
		return errors.NewConfigError("nil config", "", nil)
	}

	prompts := map[string]string{
		"prompts.search":  c.Prompts.Search,
		"prompts.replace": c.Prompts.Replace,
		"prompts.confirm": c.Prompts.Confirm,
	}
	for param, value := range prompts {
		if strings.TrimSpace(value) == "" {
			return errors.NewConfigError("prompt is required", param, nil)
		}
	}
	if c.Settings.PressEnter && strings.TrimSpace(c.Prompts.PressEnter) == "" {
		return errors.NewConfigError("prompt is required", "prompts.press_enter", nil)
	}

	if len(c.Answers.Affirmative) == 0 {
		return errors.NewConfigError("answer set is empty", "answers.affirmative", nil)
	}
	if len(c.Answers.Negative) == 0 {
		return errors.NewConfigError("answer set is empty", "answers.negative", nil)
	}

	seen := make(map[string]bool, len(c.Answers.Affirmative))
	for _, a := range c.Answers.Affirmative {
		a = strings.ToLower(strings.TrimSpace(a))
		if a == "" {
			return errors.NewConfigError("answer must not be blank", "answers.affirmative", nil)
		}
		seen[a] = true
	}
	for _, n := range c.Answers.Negative {
		n = strings.ToLower(strings.TrimSpace(n))
		if n == "" {
			return errors.NewConfigError("answer must not be blank", "answers.negative", nil)
		}
		if seen[n] {
			return errors.NewConfigError("answer is both affirmative and negative", n, nil)
		}
	}

	return nil
}

// GetTheme returns a predefined theme palette by name.
// If the theme doesn't exist, returns the default theme.
func GetTheme(name string) map[string]string {
	themes := map[string]map[string]string{
		"default": {
			"primary": "213", // Purple
			"success": "114", // Green
			"warning": "220", // Yellow
			"error":   "196", // Red
			"info":    "39",  // Blue
			"border":  "213", // Purple
		},
		"dark": {
			"primary": "105",
			"success": "78",
			"warning": "214",
			"error":   "160",
			"info":    "33",
			"border":  "105",
		},
		"light": {
			"primary": "135",
			"success": "150",
			"warning": "222",
			"error":   "210",
			"info":    "117",
			"border":  "135",
		},
		"monochrome": {
			"primary": "245",
			"success": "252",
			"warning": "241",
			"error":   "255",
			"info":    "248",
			"border":  "245",
		},
	}

	if theme, exists := themes[name]; exists {
		return theme
	}

	return themes["default"]
}

// ApplyTheme sets the theme colors from a predefined palette.
func (c *Config) ApplyTheme(name string) {
	theme := GetTheme(name)

	c.Theme.Name = name
	c.Theme.Primary = theme["primary"]
	c.Theme.Success = theme["success"]
	c.Theme.Warning = theme["warning"]
	c.Theme.Error = theme["error"]
	c.Theme.Info = theme["info"]
	c.Theme.Border = theme["border"]
}

// ListThemes returns a list of available theme names.
func ListThemes() []string {
	return []string{"default", "dark", "light", "monochrome"}
}

func isKnownTheme(name string) bool {
	for _, t := range ListThemes() {
		if t == name {
			return true
		}
	}
	return false
}
