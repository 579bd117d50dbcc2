// Package config loads the vendor configuration: global field defaults plus
// per-vendor blocks with alias phrases and field overrides. A vendor value
// replaces the default for that key; lists are never merged.
package config

import (
	"fmt"
	"os"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"

	"github.com/rfaulk/invoice-harvester/internal/extract"
)

const (
	defaultTotalLookahead  = 2
	defaultNumberLookahead = 2
	defaultDateLookahead   = 1
)

// Config resolves field options per vendor. The zero value is unusable; use
// Load or Parse.
type Config struct {
	k *koanf.Koanf
}

// Load reads and parses the YAML configuration file at path.
func Load(path string) (*Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(content)
}

// Parse parses YAML configuration content.
func Parse(content []byte) (*Config, error) {
	k := koanf.New(".")
	if err := k.Load(rawbytes.Provider(content), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &Config{k: k}, nil
}

// Vendors returns the configured vendor keys.
func (c *Config) Vendors() []string {
	return c.k.MapKeys("vendors")
}

// Aliases returns vendor key -> alias phrases for vendor detection.
func (c *Config) Aliases() map[string][]string {
	out := make(map[string][]string)
	for _, v := range c.Vendors() {
		if aliases := c.k.Strings("vendors." + v + ".aliases"); len(aliases) > 0 {
			out[v] = aliases
		}
	}
	return out
}

// resolve returns the key path for a field option: the vendor override when
// present, the global default otherwise. ok is false when neither exists.
func (c *Config) resolve(vendor, key string) (string, bool) {
	if vendor != "" {
		if p := "vendors." + vendor + ".fields." + key; c.k.Exists(p) {
			return p, true
		}
	}
	p := "defaults.fields." + key
	return p, c.k.Exists(p)
}

func (c *Config) strs(vendor, key string) []string {
	if p, ok := c.resolve(vendor, key); ok {
		return c.k.Strings(p)
	}
	return nil
}

// stringsOrNil distinguishes an absent key (nil) from one explicitly set to
// an empty list; the engine treats those differently for adjuster words.
func (c *Config) strsOrNil(vendor, key string) []string {
	p, ok := c.resolve(vendor, key)
	if !ok {
		return nil
	}
	if v := c.k.Strings(p); v != nil {
		return v
	}
	return []string{}
}

func (c *Config) str(vendor, key string) string {
	if p, ok := c.resolve(vendor, key); ok {
		return c.k.String(p)
	}
	return ""
}

func (c *Config) intVal(vendor, key string, def int) int {
	if p, ok := c.resolve(vendor, key); ok {
		return c.k.Int(p)
	}
	return def
}

func (c *Config) floatVal(vendor, key string, def float64) float64 {
	if p, ok := c.resolve(vendor, key); ok {
		return c.k.Float64(p)
	}
	return def
}

// TotalOptions resolves the total engine options for a vendor. An unknown or
// empty vendor key yields the global defaults.
func (c *Config) TotalOptions(vendor string) extract.Options {
	discourage := c.strs(vendor, "total.discourage_words")
	discourage = append(discourage, c.strs(vendor, "total.ignore_words")...)

	return extract.Options{
		Anchors:         c.strs(vendor, "total.anchors"),
		AmountPattern:   c.str(vendor, "total.amount_pattern"),
		DiscourageWords: discourage,
		DueKeywords:     c.strs(vendor, "total.due_keywords"),
		NetKeywords:     c.strs(vendor, "total.net_keywords"),
		LookaheadLines:  c.intVal(vendor, "total.lookahead_lines", defaultTotalLookahead),
		AdjusterWords:   c.strsOrNil(vendor, "total.adjuster_words"),
		Weights:         c.weights(vendor),
	}
}

func (c *Config) weights(vendor string) extract.Weights {
	d := extract.DefaultWeights()
	return extract.Weights{
		Anchor:     c.floatVal(vendor, "total.weights.anchor", d.Anchor),
		DueKeyword: c.floatVal(vendor, "total.weights.due_keyword", d.DueKeyword),
		AnchorNext: c.floatVal(vendor, "total.weights.anchor_next", d.AnchorNext),
		NetKeyword: c.floatVal(vendor, "total.weights.net_keyword", d.NetKeyword),
		TaxContext: c.floatVal(vendor, "total.weights.tax_context", d.TaxContext),
		Discourage: c.floatVal(vendor, "total.weights.discourage", d.Discourage),
		Position:   c.floatVal(vendor, "total.weights.position", d.Position),
	}
}

// NumberOptions resolves the invoice number options for a vendor.
func (c *Config) NumberOptions(vendor string) extract.LabelOptions {
	return extract.LabelOptions{
		Anchors:        c.strs(vendor, "number.anchors"),
		Pattern:        c.str(vendor, "number.pattern"),
		LookaheadLines: c.intVal(vendor, "number.lookahead_lines", defaultNumberLookahead),
	}
}

// DateOptions resolves the invoice date options for a vendor.
func (c *Config) DateOptions(vendor string) extract.LabelOptions {
	return extract.LabelOptions{
		Anchors:        c.strs(vendor, "date.anchors"),
		Pattern:        c.str(vendor, "date.pattern"),
		LookaheadLines: c.intVal(vendor, "date.lookahead_lines", defaultDateLookahead),
	}
}
