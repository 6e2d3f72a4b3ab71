// Package recommend scores candidate neighborhoods against the
// collected questionnaire answers and ranks the best matches.
package recommend

import (
	"fmt"
	"math"
)

// Weights are the top-level factor weights of the compatibility
// score. They must sum to 1.0.
type Weights struct {
	Lifestyle float64 `json:"lifestyle" mapstructure:"lifestyle"`
	Priority  float64 `json:"priority" mapstructure:"priority"`
	Transport float64 `json:"transport" mapstructure:"transport"`
	Price     float64 `json:"price" mapstructure:"price"`
}

// DefaultWeights returns the four-factor weighting scheme.
func DefaultWeights() Weights {
	return Weights{
		Lifestyle: 0.15,
		Priority:  0.55,
		Transport: 0.15,
		Price:     0.15,
	}
}

// Validate checks that all weights are non-negative and sum to 1.0.
func (w Weights) Validate() error {
	for name, v := range map[string]float64{
		"lifestyle": w.Lifestyle,
		"priority":  w.Priority,
		"transport": w.Transport,
		"price":     w.Price,
	} {
		if v < 0 {
			return fmt.Errorf("weight %s must be non-negative, got %v", name, v)
		}
	}
	sum := w.Lifestyle + w.Priority + w.Transport + w.Price
	if math.Abs(sum-1.0) > 1e-9 {
		return fmt.Errorf("weights must sum to 1.0, got %v", sum)
	}
	return nil
}

// Caps are the saturation caps of the count-based sub-scores: a count
// at or above its cap scores 1.0.
type Caps struct {
	Activity      int `json:"activity" mapstructure:"activity"`
	FullServices  int `json:"full_services" mapstructure:"full_services"`
	Services      int `json:"services" mapstructure:"services"`
	Schools       int `json:"schools" mapstructure:"schools"`
	Malls         int `json:"malls" mapstructure:"malls"`
	Entertainment int `json:"entertainment" mapstructure:"entertainment"`
}

// DefaultCaps returns the saturation caps.
func DefaultCaps() Caps {
	return Caps{
		Activity:      35,
		FullServices:  45,
		Services:      35,
		Schools:       18,
		Malls:         8,
		Entertainment: 35,
	}
}

// Validate checks that every cap is positive.
func (c Caps) Validate() error {
	for name, v := range map[string]int{
		"activity":      c.Activity,
		"full_services": c.FullServices,
		"services":      c.Services,
		"schools":       c.Schools,
		"malls":         c.Malls,
		"entertainment": c.Entertainment,
	} {
		if v <= 0 {
			return fmt.Errorf("cap %s must be positive, got %d", name, v)
		}
	}
	return nil
}

// Config tunes one recommendation engine instance.
type Config struct {
	Weights Weights `json:"weights" mapstructure:"weights"`
	Caps    Caps    `json:"caps" mapstructure:"caps"`
	// AnchorWindowMeters is the distance at which an anchor-based
	// priority score reaches zero.
	AnchorWindowMeters float64 `json:"anchor_window_meters" mapstructure:"anchor_window_meters"`
	// ShortlistSize is how many nearest neighborhoods are evaluated
	// when the user picked an anchor.
	ShortlistSize int `json:"shortlist_size" mapstructure:"shortlist_size"`
	// TopK is how many ranked results a run returns.
	TopK int `json:"top_k" mapstructure:"top_k"`
	// FirstPriorityWeight and SecondPriorityWeight split the priority
	// score between the two selections; first choice dominates.
	FirstPriorityWeight  float64 `json:"first_priority_weight" mapstructure:"first_priority_weight"`
	SecondPriorityWeight float64 `json:"second_priority_weight" mapstructure:"second_priority_weight"`
}

// DefaultConfig returns the engine defaults.
func DefaultConfig() Config {
	return Config{
		Weights:              DefaultWeights(),
		Caps:                 DefaultCaps(),
		AnchorWindowMeters:   18000,
		ShortlistSize:        12,
		TopK:                 3,
		FirstPriorityWeight:  0.65,
		SecondPriorityWeight: 0.35,
	}
}

// Validate checks the full engine configuration.
func (c Config) Validate() error {
	if err := c.Weights.Validate(); err != nil {
		return err
	}
	if err := c.Caps.Validate(); err != nil {
		return err
	}
	if c.AnchorWindowMeters <= 0 {
		return fmt.Errorf("anchor window must be positive, got %v", c.AnchorWindowMeters)
	}
	if c.ShortlistSize <= 0 {
		return fmt.Errorf("shortlist size must be positive, got %d", c.ShortlistSize)
	}
	if c.TopK <= 0 {
		return fmt.Errorf("top_k must be positive, got %d", c.TopK)
	}
	if math.Abs(c.FirstPriorityWeight+c.SecondPriorityWeight-1.0) > 1e-9 {
		return fmt.Errorf("priority order weights must sum to 1.0, got %v",
			c.FirstPriorityWeight+c.SecondPriorityWeight)
	}
	return nil
}
