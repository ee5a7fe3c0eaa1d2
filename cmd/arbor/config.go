package main

import (
	"os"
	"slices"

	yaml "github.com/goccy/go-yaml"
	"github.com/npillmayer/arbor/order"
	"github.com/pkg/errors"
)

// Config holds the settings of a configuration file. Example:
//
//	order: collate:de
//	format: columns
//	color: never
//	iterative: true
//	linewidth: 72
//	limit: 100
type Config struct {
	Order     string `yaml:"order"`     // see order.ByName
	Format    string `yaml:"format"`    // lines, columns, tree, html or dot
	Color     string `yaml:"color"`     // auto, always or never
	Iterative bool   `yaml:"iterative"` // insert without recursion
	LineWidth int    `yaml:"linewidth"` // 0 means terminal width
	Limit     int    `yaml:"limit"`     // maximum number of range values, 0 for none
}

func defaultConfig() Config {
	return Config{
		Order:  "natural",
		Format: "lines",
		Color:  "auto",
	}
}

var (
	formats    = []string{"lines", "columns", "tree", "html", "dot"}
	colorModes = []string{"auto", "always", "never"}
)

// loadConfig reads a YAML configuration file. Settings missing from the file
// keep their defaults; an empty path yields the defaults.
func loadConfig(path string) (Config, error) {
	conf := defaultConfig()
	if path == "" {
		return conf, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return conf, errors.Wrap(err, "reading configuration")
	}
	if err := yaml.Unmarshal(data, &conf); err != nil {
		return conf, errors.Wrapf(err, "parsing configuration %s", path)
	}
	if err := conf.validate(); err != nil {
		return conf, errors.Wrapf(err, "configuration %s", path)
	}
	tracer().Debugf("configuration from %s: %+v", path, conf)
	return conf, nil
}

func (conf Config) validate() error {
	if _, err := order.ByName(conf.Order); err != nil {
		return err
	}
	if !slices.Contains(formats, conf.Format) {
		return errors.Errorf("unknown format %q", conf.Format)
	}
	if !slices.Contains(colorModes, conf.Color) {
		return errors.Errorf("unknown color mode %q", conf.Color)
	}
	if conf.LineWidth < 0 || conf.Limit < 0 {
		return errors.New("line width and limit must not be negative")
	}
	return nil
}
