// Package config loads game settings from defaults, an optional YAML file and flags.
package config

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/solitaire/constants"
	"github.com/lixenwraith/solitaire/core"
	"github.com/lixenwraith/solitaire/engine"
)

// ErrInvalidConfig is wrapped by every validation failure
var ErrInvalidConfig = errors.New("invalid config")

// Rule policy names
const (
	RulesPermissive = "permissive"
	RulesKlondike   = "klondike"
	RulesScript     = "script"
)

// Config is the full runtime configuration
type Config struct {
	// Seed for the shuffle; 0 picks one from the clock
	Seed          uint64        `yaml:"seed"`
	TableauFiles  int           `yaml:"tableau_files"`
	Rules         string        `yaml:"rules"`
	RulesScript   string        `yaml:"rules_script"`
	Strict        bool          `yaml:"strict"`
	Debug         bool          `yaml:"debug"`
	FrameInterval time.Duration `yaml:"frame_interval"`
	Layout        Layout        `yaml:"layout"`
}

// Layout mirrors engine.Layout in cells
type Layout struct {
	OriginX    int `yaml:"origin_x"`
	OriginY    int `yaml:"origin_y"`
	CardWidth  int `yaml:"card_width"`
	CardHeight int `yaml:"card_height"`
	Gap        int `yaml:"gap"`
	RowGap     int `yaml:"row_gap"`
	FanOffset  int `yaml:"fan_offset"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		TableauFiles:  constants.TableauFiles,
		Rules:         RulesPermissive,
		FrameInterval: constants.FrameUpdateInterval,
		Layout: Layout{
			OriginX:    constants.OriginX,
			OriginY:    constants.OriginY,
			CardWidth:  constants.CardWidth,
			CardHeight: constants.CardHeight,
			Gap:        constants.PileGap,
			RowGap:     constants.RowGap,
			FanOffset:  constants.FanOffset,
		},
	}
}

// Load reads a YAML file over the defaults and validates the result
// An empty path yields the validated defaults
func Load(path string) (Config, error) {
	c := Default()
	if path != "" {
		if err := c.readYAML(path); err != nil {
			return Config{}, err
		}
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// readYAML overlays keys present in the file; absent keys keep their values
func (c *Config) readYAML(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

// Validate checks ranges and cross-field requirements
func (c Config) Validate() error {
	if c.TableauFiles < 1 || c.TableauFiles > constants.MaxTableauFiles {
		return fmt.Errorf("%w: tableau_files %d outside [1, %d]", ErrInvalidConfig, c.TableauFiles, constants.MaxTableauFiles)
	}
	switch c.Rules {
	case RulesPermissive, RulesKlondike:
	case RulesScript:
		if c.RulesScript == "" {
			return fmt.Errorf("%w: rules %q requires rules_script", ErrInvalidConfig, c.Rules)
		}
	default:
		return fmt.Errorf("%w: unknown rules %q", ErrInvalidConfig, c.Rules)
	}
	if c.FrameInterval <= 0 {
		return fmt.Errorf("%w: frame_interval %v must be positive", ErrInvalidConfig, c.FrameInterval)
	}

	l := c.Layout
	if l.CardWidth < 4 || l.CardHeight < 2 {
		return fmt.Errorf("%w: card %dx%d too small for a label", ErrInvalidConfig, l.CardWidth, l.CardHeight)
	}
	if l.OriginX < 0 || l.OriginY < 0 || l.Gap < 0 || l.RowGap < 0 {
		return fmt.Errorf("%w: layout offsets must not be negative", ErrInvalidConfig)
	}
	if l.FanOffset < 1 || l.FanOffset > l.CardHeight {
		return fmt.Errorf("%w: fan_offset %d outside [1, %d]", ErrInvalidConfig, l.FanOffset, l.CardHeight)
	}
	return nil
}

// EngineLayout converts the layout section
func (c Config) EngineLayout() engine.Layout {
	return engine.Layout{
		Origin:     core.Point{X: c.Layout.OriginX, Y: c.Layout.OriginY},
		CardWidth:  c.Layout.CardWidth,
		CardHeight: c.Layout.CardHeight,
		Gap:        c.Layout.Gap,
		RowGap:     c.Layout.RowGap,
		FanOffset:  c.Layout.FanOffset,
	}
}

// Parse builds the configuration from command-line arguments
// Flags given explicitly override the file named by -config
func Parse(name string, args []string) (Config, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	def := Default()

	path := fs.String("config", "", "YAML configuration file")
	seed := fs.Uint64("seed", def.Seed, "Shuffle seed (0 = random)")
	files := fs.Int("files", def.TableauFiles, "Number of tableau files")
	rules := fs.String("rules", def.Rules, "Move rules: permissive, klondike, script")
	script := fs.String("rules-script", def.RulesScript, "Lua rules script (with -rules script)")
	strict := fs.Bool("strict", def.Strict, "Panic on invariant violations")
	debug := fs.Bool("debug", def.Debug, "Write debug log to logs/")
	frame := fs.Duration("frame", def.FrameInterval, "Frame interval")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	c := def
	if *path != "" {
		if err := c.readYAML(*path); err != nil {
			return Config{}, err
		}
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "seed":
			c.Seed = *seed
		case "files":
			c.TableauFiles = *files
		case "rules":
			c.Rules = *rules
		case "rules-script":
			c.RulesScript = *script
		case "strict":
			c.Strict = *strict
		case "debug":
			c.Debug = *debug
		case "frame":
			c.FrameInterval = *frame
		}
	})

	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}
