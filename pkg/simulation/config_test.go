package simulation

import (
	"errors"
	"strings"
	"testing"
)

func TestDefaultConfig_IsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() = %v", err)
	}
}

func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name string
		file string
	}{
		{"json", "testdata/valid.json"},
		{"toml", "testdata/valid.toml"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadConfig(tt.file)
			if err != nil {
				t.Fatalf("LoadConfig(%s) error = %v", tt.file, err)
			}
			if cfg.Limits != 800 || cfg.NumberOfBoids != 50 || cfg.NeighboursConsidered != 5 {
				t.Errorf("world settings not loaded: %+v", cfg)
			}
			if cfg.TurnsSmoothness != 0.7 || cfg.CollisionParam != 0.25 {
				t.Errorf("behavior settings not loaded: %+v", cfg)
			}
			if cfg.TrajectoryLength != 20 || cfg.Workers != 2 || cfg.Seed != 7 || cfg.Delay != 20 {
				t.Errorf("runtime settings not loaded: %+v", cfg)
			}
		})
	}
}

func TestLoadConfig_MissingKeysKeepDefaults(t *testing.T) {
	cfg, err := LoadConfig("testdata/valid.toml")
	if err != nil {
		t.Fatal(err)
	}
	def := DefaultConfig()
	if cfg.WallsParam != def.WallsParam || cfg.GroupingParam != def.GroupingParam || cfg.DrawingSize != def.DrawingSize {
		t.Errorf("missing keys should keep defaults, got %+v", cfg)
	}
}

func TestLoadConfig_Errors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		invalid bool   // cross-field rules, wraps ErrInvalidConfig
		msg     string // expected part of the message
	}{
		{"unknown key rejected by schema", "testdata/unknown_key.json", false, "validation failed"},
		{"smoothness rejected by schema", "testdata/bad_smoothness.toml", false, "validation failed"},
		{"too many neighbours", "testdata/too_many_neighbours.json", true, "neighboursConsidered"},
		{"unsupported format", "testdata/config.yaml", false, "unsupported config format"},
		{"missing file", "testdata/nope.json", false, "failed to open"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(tt.file)
			if err == nil {
				t.Fatalf("LoadConfig(%s) succeeded; want an error", tt.file)
			}
			if got := errors.Is(err, ErrInvalidConfig); got != tt.invalid {
				t.Errorf("errors.Is(err, ErrInvalidConfig) = %v; want %v (err: %v)", got, tt.invalid, err)
			}
			if !strings.Contains(err.Error(), tt.msg) {
				t.Errorf("error %q does not mention %q", err, tt.msg)
			}
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"single boid", func(c *Config) { c.NumberOfBoids = 1; c.NeighboursConsidered = 0 }, "numberOfBoids"},
		{"no neighbour", func(c *Config) { c.NeighboursConsidered = 0 }, "neighboursConsidered"},
		{"sees everybody", func(c *Config) { c.NeighboursConsidered = c.NumberOfBoids }, "lower than numberOfBoids"},
		{"zero world", func(c *Config) { c.Limits = 0 }, "limits"},
		{"cannot turn", func(c *Config) { c.TurnsSmoothness = 1 }, "turnsSmoothness"},
		{"negative weight", func(c *Config) { c.WallsParam = -0.1 }, "wallsParam"},
		{"no worker", func(c *Config) { c.Workers = 0 }, "workers"},
		{"negative trajectory", func(c *Config) { c.TrajectoryLength = -1 }, "trajectoryLength"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("Validate() = %v; want ErrInvalidConfig", err)
			}
			if !strings.Contains(err.Error(), tt.field) {
				t.Errorf("error %q does not mention %q", err, tt.field)
			}
		})
	}
}

func TestConfig_ValidateReportsEveryProblem(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Limits = -1
	cfg.Workers = 0
	err := cfg.Validate()
	for _, field := range []string{"limits", "workers"} {
		if err == nil || !strings.Contains(err.Error(), field) {
			t.Errorf("Validate() = %v; want a mention of %s", err, field)
		}
	}
}

func TestConfig_Settings(t *testing.T) {
	cfg := DefaultConfig()
	cfg.GroupingParam = 0.5
	cfg.AverageDirectionParam = 0.4
	s := cfg.Settings()
	if s.Bound != cfg.Limits || s.GroupingWeight != 0.5 || s.AlignmentWeight != 0.4 ||
		s.NeighboursConsidered != cfg.NeighboursConsidered || s.TurnsSmoothness != cfg.TurnsSmoothness {
		t.Errorf("Settings() = %+v does not match %+v", s, cfg)
	}
}

func TestConfig_TicksPerSecond(t *testing.T) {
	tests := []struct {
		delay int
		want  int
	}{
		{0, 60},
		{15, 66},
		{1000, 1},
		{5000, 1},
	}
	for _, tt := range tests {
		cfg := DefaultConfig()
		cfg.Delay = tt.delay
		if got := cfg.TicksPerSecond(); got != tt.want {
			t.Errorf("TicksPerSecond(delay %d) = %d; want %d", tt.delay, got, tt.want)
		}
	}
}

func TestLoadConfigOrDefault(t *testing.T) {
	cfg, err := LoadConfigOrDefault("")
	if err != nil || *cfg != *DefaultConfig() {
		t.Errorf("LoadConfigOrDefault(\"\") = %+v, %v; want the defaults", cfg, err)
	}
	cfg, err = LoadConfigOrDefault("testdata/valid.json")
	if err != nil || cfg.NumberOfBoids != 50 {
		t.Errorf("LoadConfigOrDefault(valid.json) = %+v, %v", cfg, err)
	}
}
