package simulation

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/lao-tseu-is-alive/go-smart-boids/pkg/behavior"
	"github.com/santhosh-tekuri/jsonschema/v5"
	"go.uber.org/multierr"
)

const schemaURL = "https://github.com/lao-tseu-is-alive/go-smart-boids/config.schema.json"

//go:embed config.schema.json
var configSchema string

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

type Config struct {
	// World
	Limits        float64 `json:"limits" toml:"limits"`
	NumberOfBoids int     `json:"numberOfBoids" toml:"numberOfBoids"`
	Seed          uint64  `json:"seed" toml:"seed"`

	// Rendering
	Delay            int     `json:"delay" toml:"delay"`             // ms between two frames
	DrawingSize      float64 `json:"drawingSize" toml:"drawingSize"` // triangle scale
	TrajectoryLength int     `json:"trajectoryLength" toml:"trajectoryLength"`

	// Boids behavior
	TurnsSmoothness       float64 `json:"turnsSmoothness" toml:"turnsSmoothness"` // 1 cannot turn, 0 turns instantly
	NeighboursConsidered  int     `json:"neighboursConsidered" toml:"neighboursConsidered"`
	CollisionParam        float64 `json:"collisionParam" toml:"collisionParam"`
	WallsParam            float64 `json:"wallsParam" toml:"wallsParam"`
	AverageDirectionParam float64 `json:"averageDirectionParam" toml:"averageDirectionParam"`
	GroupingParam         float64 `json:"groupingParam" toml:"groupingParam"`

	Workers int `json:"workers" toml:"workers"`
}

func DefaultConfig() *Config {
	return &Config{
		Limits:                600,
		NumberOfBoids:         30,
		Delay:                 15,
		DrawingSize:           5,
		TurnsSmoothness:       0.8,
		NeighboursConsidered:  3,
		CollisionParam:        0.2,
		WallsParam:            0.1,
		AverageDirectionParam: 0.2,
		GroupingParam:         1,
		Workers:               1,
	}
}

// LoadConfig loads configuration from a JSON or TOML file (chosen by extension),
// validates it against the embedded schema and then checks cross-field rules.
// Keys missing from the file keep their DefaultConfig value.
func LoadConfig(configFile string) (*Config, error) {
	// 1. Compile Schema
	sch, err := jsonschema.CompileString(schemaURL, configSchema)
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}

	// 2. Read Config File
	b, err := os.ReadFile(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}

	// 3. Decode into a generic document and validate it
	cfg := DefaultConfig()
	var doc interface{}
	switch ext := strings.ToLower(filepath.Ext(configFile)); ext {
	case ".json":
		dec := json.NewDecoder(bytes.NewReader(b))
		dec.UseNumber()
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode config json: %w", err)
		}
		if err := sch.Validate(doc); err != nil {
			return nil, fmt.Errorf("config validation failed: %w", err)
		}
		if err := json.Unmarshal(b, cfg); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config: %w", err)
		}
	case ".toml":
		var m map[string]interface{}
		if _, err := toml.Decode(string(b), &m); err != nil {
			return nil, fmt.Errorf("failed to decode config toml: %w", err)
		}
		doc = m
		if err := sch.Validate(doc); err != nil {
			return nil, fmt.Errorf("config validation failed: %w", err)
		}
		if _, err := toml.Decode(string(b), cfg); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format %q (want .json or .toml)", ext)
	}

	// 4. Cross-field rules the schema cannot express
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects configurations the simulation cannot run. A flock needs at
// least two boids and every boid must see at least one and fewer than all of them.
func (c *Config) Validate() error {
	var errs error
	check := func(ok bool, format string, args ...interface{}) {
		if !ok {
			errs = multierr.Append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Limits > 0 && !math.IsInf(c.Limits, 0), "limits must be positive, got %v", c.Limits)
	check(c.NumberOfBoids >= 2, "numberOfBoids must be at least 2, got %d", c.NumberOfBoids)
	check(c.NeighboursConsidered >= 1, "neighboursConsidered must be at least 1, got %d", c.NeighboursConsidered)
	check(c.NeighboursConsidered < c.NumberOfBoids,
		"neighboursConsidered (%d) must be lower than numberOfBoids (%d)", c.NeighboursConsidered, c.NumberOfBoids)
	check(c.TurnsSmoothness >= 0 && c.TurnsSmoothness < 1, "turnsSmoothness must be within [0, 1[, got %v", c.TurnsSmoothness)
	check(c.Delay >= 0, "delay must not be negative, got %d", c.Delay)
	check(c.DrawingSize > 0, "drawingSize must be positive, got %v", c.DrawingSize)
	check(c.TrajectoryLength >= 0, "trajectoryLength must not be negative, got %d", c.TrajectoryLength)
	check(c.Workers >= 1, "workers must be at least 1, got %d", c.Workers)
	for name, v := range map[string]float64{
		"collisionParam":        c.CollisionParam,
		"wallsParam":            c.WallsParam,
		"averageDirectionParam": c.AverageDirectionParam,
		"groupingParam":         c.GroupingParam,
	} {
		check(v >= 0 && !math.IsInf(v, 0), "%s must be a non-negative number, got %v", name, v)
	}

	if errs != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errs)
	}
	return nil
}

// Settings projects the configuration onto the rules every boid follows.
func (c *Config) Settings() behavior.Settings {
	return behavior.Settings{
		Bound:                c.Limits,
		NeighboursConsidered: c.NeighboursConsidered,
		GroupingWeight:       c.GroupingParam,
		AlignmentWeight:      c.AverageDirectionParam,
		CollisionParam:       c.CollisionParam,
		WallsParam:           c.WallsParam,
		TurnsSmoothness:      c.TurnsSmoothness,
	}
}

// TicksPerSecond converts the frame delay into a tick rate for the renderers.
func (c *Config) TicksPerSecond() int {
	if c.Delay <= 0 {
		return 60
	}
	return max(1, 1000/c.Delay)
}

// LoadConfigOrDefault returns DefaultConfig when configFile is empty and LoadConfig otherwise.
func LoadConfigOrDefault(configFile string) (*Config, error) {
	if configFile == "" {
		return DefaultConfig(), nil
	}
	return LoadConfig(configFile)
}
