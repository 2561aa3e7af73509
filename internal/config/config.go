// Package config loads the pizzaform YAML configuration.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-pizzaform/internal/logging"
	"github.com/goliatone/go-pizzaform/pkg/catalog"
	"github.com/goliatone/go-pizzaform/pkg/order"
)

const (
	DefaultAddr           = ":8080"
	DefaultLocale         = "es"
	DefaultRenderer       = "vanilla"
	DefaultShutdownGrace  = 10 * time.Second
	DefaultCatalogTimeout = 5 * time.Second
)

// CatalogConfig selects the catalog source.
type CatalogConfig struct {
	// Source is a file path, an http(s) URL, or empty for the bundled catalog.
	Source string `yaml:"source"`
	// Timeout caps remote fetches.
	Timeout time.Duration `yaml:"timeout"`
	// Watch reloads file sources when they change on disk.
	Watch bool `yaml:"watch"`
}

// Config is the root document.
type Config struct {
	Addr          string         `yaml:"addr"`
	Locale        string         `yaml:"locale"`
	Renderer      string         `yaml:"renderer"`
	ShutdownGrace time.Duration  `yaml:"shutdownGrace"`
	Catalog       CatalogConfig  `yaml:"catalog"`
	Fields        []order.Field  `yaml:"fields"`
	Log           logging.Config `yaml:"log"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Addr:          DefaultAddr,
		Locale:        DefaultLocale,
		Renderer:      DefaultRenderer,
		ShutdownGrace: DefaultShutdownGrace,
		Catalog:       CatalogConfig{Timeout: DefaultCatalogTimeout},
		Fields:        order.DefaultFields(),
		Log:           logging.Config{Level: "info"},
	}
}

// Load reads path over the defaults. An empty path returns Default().
func Load(path string) (Config, error) {
	if strings.TrimSpace(path) == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML over the defaults, rejecting unknown keys.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode: %w", err)
	}
	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) normalize() {
	c.Addr = strings.TrimSpace(c.Addr)
	c.Locale = strings.TrimSpace(c.Locale)
	c.Renderer = strings.TrimSpace(c.Renderer)
	c.Catalog.Source = strings.TrimSpace(c.Catalog.Source)
	if c.Addr == "" {
		c.Addr = DefaultAddr
	}
	if c.Locale == "" {
		c.Locale = DefaultLocale
	}
	if c.Renderer == "" {
		c.Renderer = DefaultRenderer
	}
	if c.ShutdownGrace <= 0 {
		c.ShutdownGrace = DefaultShutdownGrace
	}
	if c.Catalog.Timeout <= 0 {
		c.Catalog.Timeout = DefaultCatalogTimeout
	}
	if len(c.Fields) == 0 {
		c.Fields = order.DefaultFields()
	}
	for i := range c.Fields {
		c.Fields[i].Name = strings.TrimSpace(c.Fields[i].Name)
	}
}

// Validate reports every problem found.
func (c Config) Validate() error {
	var errs []error
	if _, err := catalog.ParseSource(c.Catalog.Source); err != nil {
		errs = append(errs, err)
	}
	seen := make(map[string]struct{}, len(c.Fields))
	for i, field := range c.Fields {
		switch {
		case field.Name == "":
			errs = append(errs, fmt.Errorf("fields[%d]: name is required", i))
			continue
		case field.Name == order.SizeField:
			errs = append(errs, fmt.Errorf("fields[%d]: name %q is reserved", i, field.Name))
		}
		if _, dup := seen[field.Name]; dup {
			errs = append(errs, fmt.Errorf("fields[%d]: duplicate name %q", i, field.Name))
		}
		seen[field.Name] = struct{}{}
		switch field.Type {
		case "", order.FieldTypeText, order.FieldTypeEmail, order.FieldTypeTel:
		default:
			errs = append(errs, fmt.Errorf("fields[%d]: unsupported type %q", i, field.Type))
		}
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// CatalogSource resolves the configured source.
func (c Config) CatalogSource() (catalog.Source, error) {
	return catalog.ParseSource(c.Catalog.Source)
}

// LoaderOptions returns loader settings matching the configured source.
func (c Config) LoaderOptions() catalog.LoaderOptions {
	return catalog.NewLoaderOptions(catalog.WithHTTPFallback(c.Catalog.Timeout))
}
