package cli

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/arthofer/lineart/pkg/errors"
	"github.com/arthofer/lineart/pkg/pipeline"
)

// defaultConfigFile is the preset file looked up in the working directory.
const defaultConfigFile = "lineart.toml"

// Config is the TOML preset file schema:
//
//	[presets.hearts]
//	generator = "heart"
//	points = 120
//	distortion = 0.4
//	size = 1024
type Config struct {
	Presets map[string]Preset `toml:"presets"`
}

// Preset is a named set of generation options. Pointer fields distinguish
// "unset" from an explicit zero.
type Preset struct {
	Collection string   `toml:"collection"`
	Output     string   `toml:"output"`
	Images     int      `toml:"images"`
	Points     int      `toml:"points"`
	Size       int      `toml:"size"`
	Width      int      `toml:"width"`
	Height     int      `toml:"height"`
	Scale      int      `toml:"scale"`
	Margin     *float64 `toml:"margin"`
	Generator  string   `toml:"generator"`
	Distortion *float64 `toml:"distortion"`
	Seed       uint64   `toml:"seed"`
	Close      *bool    `toml:"close"`
	Caption    string   `toml:"caption"`
}

// loadConfig reads and decodes a preset config file. When path is empty it
// tries ./lineart.toml, then the XDG config directory.
func loadConfig(path string) (*Config, error) {
	if path == "" {
		var err error
		path, err = findConfigFile()
		if err != nil {
			return nil, err
		}
	}

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse config %s", path)
	}
	return &cfg, nil
}

// findConfigFile returns the first existing default config location.
func findConfigFile() (string, error) {
	if _, err := os.Stat(defaultConfigFile); err == nil {
		return defaultConfigFile, nil
	}
	dir, err := configDir()
	if err == nil {
		path := filepath.Join(dir, defaultConfigFile)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", errors.New(errors.ErrCodeInvalidInput, "no %s found (searched working directory and config directory)", defaultConfigFile)
}

// configDir returns the config directory using the XDG standard
// (~/.config/lineart/).
func configDir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}

// applyPreset merges the named preset into opts. Flags the user set
// explicitly on the command line keep precedence over preset values.
func applyPreset(cmd *cobra.Command, configPath, name string, opts *pipeline.Options) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	preset, ok := cfg.Presets[name]
	if !ok {
		return errors.New(errors.ErrCodeInvalidInput, "unknown preset: %q", name)
	}

	changed := cmd.Flags().Changed

	if preset.Collection != "" && !changed("collection") {
		opts.Collection = preset.Collection
	}
	if preset.Output != "" && !changed("output") {
		opts.OutputDir = preset.Output
	}
	if preset.Images > 0 && !changed("images") {
		opts.Images = preset.Images
	}
	if preset.Points > 0 && !changed("points") {
		opts.Points = preset.Points
	}
	if preset.Size > 0 && !changed("size") && !changed("width") && !changed("height") {
		opts.Width, opts.Height = preset.Size, preset.Size
	}
	if preset.Width > 0 && !changed("width") {
		opts.Width = preset.Width
	}
	if preset.Height > 0 && !changed("height") {
		opts.Height = preset.Height
	}
	if preset.Scale > 0 && !changed("scale") {
		opts.ScaleFactor = preset.Scale
	}
	if preset.Margin != nil && !changed("margin") {
		opts.Margin = *preset.Margin
	}
	if preset.Generator != "" && !changed("generator") {
		opts.Generator = preset.Generator
	}
	if preset.Distortion != nil && !changed("distortion") {
		opts.Distortion = *preset.Distortion
	}
	if preset.Seed != 0 && !changed("seed") {
		opts.Seed = preset.Seed
	}
	if preset.Close != nil && !changed("close") {
		opts.Close = *preset.Close
	}
	if preset.Caption != "" && !changed("caption") {
		opts.Caption = preset.Caption
	}
	return nil
}
