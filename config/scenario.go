// Package config loads eventctl scenario files.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"github.com/go-playground/validator/v10"
	"github.com/saylorsolutions/serialevents/dispatch"
	"github.com/saylorsolutions/serialevents/env"
	"gopkg.in/yaml.v3"
	"log/slog"
	"os"
	"strings"
)

const (
	EnvLogLevel = "EVENTCTL_LOG_LEVEL" // EnvLogLevel overrides the scenario's log level.
	EnvFormat   = "EVENTCTL_FORMAT"    // EnvFormat forces the format of every dispatch in the scenario.
)

var (
	ErrInvalidScenario = errors.New("invalid scenario")

	validate = validator.New()
)

// Scenario is a set of listeners to register, and the dispatches to run against them.
type Scenario struct {
	Name       string     `yaml:"name"`
	LogLevel   string     `yaml:"logLevel" validate:"omitempty,oneof=debug info warn error"`
	Listeners  []Listener `yaml:"listeners" validate:"unique=Name,dive"`
	Dispatches []Dispatch `yaml:"dispatches" validate:"required,min=1,dive"`
}

// Listener is a named listener for one event, with optional filters.
type Listener struct {
	Name   string  `yaml:"name" validate:"required"`
	Event  string  `yaml:"event" validate:"required"`
	Class  *string `yaml:"class"`
	Format *string `yaml:"format"`
	Fail   bool    `yaml:"fail"`
}

// Descriptor maps the [Listener] to a [dispatch.Descriptor], bound by the listener's name.
func (l Listener) Descriptor() dispatch.Descriptor {
	return dispatch.Descriptor{
		Event:  l.Event,
		Method: l.Name,
		Class:  dispatch.OnlyIfSet(l.Class),
		Format: dispatch.OnlyIfSet(l.Format),
	}
}

// Dispatch is an event to dispatch with a class and format.
type Dispatch struct {
	Event  string `yaml:"event" validate:"required"`
	Class  string `yaml:"class"`
	Format string `yaml:"format"`
}

// Level returns the [slog.Level] for the scenario's log level, defaulting to info.
func (s *Scenario) Level() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// Load reads and parses a scenario file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario: %w", err)
	}
	scenario, err := Parse(data)
	if err != nil {
		return nil, err
	}
	if len(scenario.Name) == 0 {
		scenario.Name = path
	}
	return scenario, nil
}

// Parse decodes a scenario, applies environment overrides, and validates the result.
// Unknown fields are rejected.
func Parse(data []byte) (*Scenario, error) {
	var scenario Scenario
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidScenario, err)
	}
	scenario.applyEnv()
	if err := scenario.Validate(); err != nil {
		return nil, err
	}
	return &scenario, nil
}

// Validate checks the scenario's fields, and should be called again after any override is applied.
func (s *Scenario) Validate() error {
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidScenario, err)
	}
	return nil
}

func (s *Scenario) applyEnv() {
	if level := env.Val(EnvLogLevel, ""); len(level) > 0 {
		s.LogLevel = strings.ToLower(level)
	}
	if format := env.Val(EnvFormat, ""); len(format) > 0 {
		s.ForceFormat(format)
	}
}

// ForceFormat sets the format of every dispatch.
func (s *Scenario) ForceFormat(format string) {
	for i := range s.Dispatches {
		s.Dispatches[i].Format = format
	}
}
