// Package config loads and validates expansion run configuration from
// YAML and turns it into engine options.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/hubshy/graphsampler/pkg/expand"
)

var validate = validator.New()

// RunConfig describes one expansion run: the seeds, the strategy and its
// parameters, and the optional early-stop caps of the parameterised
// baseline.
type RunConfig struct {
	Seeds    []string `yaml:"seeds" validate:"required,min=1,dive,min=1"`
	Strategy string   `yaml:"strategy" validate:"required"`

	// RandomSeed feeds the random baseline; runs with the same seed and
	// graph replay identically.
	RandomSeed int64 `yaml:"random_seed"`

	// NodeWeight and Epsilon parameterise the priority-score strategy.
	NodeWeight float64 `yaml:"node_weight" validate:"gte=0,lte=1"`
	Epsilon    float64 `yaml:"epsilon" validate:"gte=0"`

	// HubDegreeThreshold enables hub-encounter instrumentation.
	HubDegreeThreshold int `yaml:"hub_degree_threshold" validate:"gte=0"`

	Limits LimitsConfig `yaml:"limits"`
}

// LimitsConfig mirrors expand.RunLimits. All-zero keeps the
// parameter-free design.
type LimitsConfig struct {
	TargetPaths   int `yaml:"target_paths" validate:"gte=0"`
	MaxIterations int `yaml:"max_iterations" validate:"gte=0"`
	MinIterations int `yaml:"min_iterations" validate:"gte=0"`
}

// knownStrategies lists the names BuildStrategy accepts.
var knownStrategies = map[string]struct{}{
	expand.StrategyDegreeAscending:  {},
	expand.StrategyDegreeDescending: {},
	expand.StrategyRandom:           {},
	expand.StrategyFIFO:             {},
	expand.StrategyFrontierBalanced: {},
	expand.StrategyPriorityScore:    {},
}

// Load reads and validates a RunConfig from a YAML file.
func Load(path string) (*RunConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

// Parse unmarshals and validates a RunConfig from YAML bytes.
func Parse(data []byte) (*RunConfig, error) {
	var cfg RunConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks struct tags plus the domain rules tags can't express.
func (c *RunConfig) Validate() error {
	if err := validate.Struct(c); err != nil {
		return formatValidationError(err)
	}
	if _, ok := knownStrategies[c.Strategy]; !ok {
		return fmt.Errorf("%w: %q", expand.ErrUnknownStrategy, c.Strategy)
	}
	if c.Limits.MinIterations > 0 && c.Limits.MaxIterations > 0 &&
		c.Limits.MinIterations > c.Limits.MaxIterations {
		return fmt.Errorf("limits: min_iterations (%d) exceeds max_iterations (%d)",
			c.Limits.MinIterations, c.Limits.MaxIterations)
	}
	return nil
}

// SeedIDs returns the seeds as engine node IDs.
func (c *RunConfig) SeedIDs() []expand.NodeID {
	ids := make([]expand.NodeID, len(c.Seeds))
	for i, s := range c.Seeds {
		ids[i] = expand.NodeID(s)
	}
	return ids
}

// BuildStrategy maps the configured name to a strategy value.
func (c *RunConfig) BuildStrategy() (expand.Strategy, error) {
	switch c.Strategy {
	case expand.StrategyDegreeAscending:
		return expand.NewDegreeAscending(), nil
	case expand.StrategyDegreeDescending:
		return expand.NewDegreeDescending(), nil
	case expand.StrategyRandom:
		return expand.NewRandom(c.RandomSeed), nil
	case expand.StrategyFIFO:
		return expand.NewFIFO(), nil
	case expand.StrategyFrontierBalanced:
		return expand.NewFrontierBalanced(), nil
	case expand.StrategyPriorityScore:
		return expand.NewPriorityScore(expand.PriorityOptions{
			NodeWeight: c.NodeWeight,
			Epsilon:    c.Epsilon,
		}), nil
	default:
		return nil, fmt.Errorf("%w: %q", expand.ErrUnknownStrategy, c.Strategy)
	}
}

// EngineOptions assembles expand.Options from the config. Logger, sink
// and metrics stay caller-supplied.
func (c *RunConfig) EngineOptions() (expand.Options, error) {
	strategy, err := c.BuildStrategy()
	if err != nil {
		return expand.Options{}, err
	}
	opts := expand.DefaultOptions()
	opts.Strategy = strategy
	opts.HubDegreeThreshold = c.HubDegreeThreshold
	opts.Limits = expand.RunLimits{
		TargetPaths:   c.Limits.TargetPaths,
		MaxIterations: c.Limits.MaxIterations,
		MinIterations: c.Limits.MinIterations,
	}
	return opts, nil
}

// formatValidationError renders the first struct-tag violation in a
// readable form.
func formatValidationError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return fmt.Errorf("config field %s failed %q validation", fe.Namespace(), fe.Tag())
	}
	return err
}
