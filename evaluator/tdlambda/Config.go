package tdlambda

import (
	"fmt"

	env "github.com/samuelfneumann/gopredict/environment"
	"github.com/samuelfneumann/gopredict/evaluator"
)

func init() {
	// Register Config type so that it can be typed using
	// evaluator.TypedConfig to help with serialization/deserialization.
	evaluator.Register(evaluator.TDLambda, Config{})
}

// TraceType determines how the eligibility trace of a state is updated
// when the state is visited
type TraceType string

const (
	// Accumulating traces are incremented by 1 on each visit
	Accumulating TraceType = "Accumulating"

	// Replacing traces are reset to 1 on each visit
	Replacing TraceType = "Replacing"
)

// Config represents a configuration for the TD(λ) evaluator. If Trace
// is empty, accumulating traces are used.
type Config struct {
	LearningRate float64   `json:"learning_rate" yaml:"learning_rate"`
	Lambda       float64   `json:"lambda" yaml:"lambda"`
	Trace        TraceType `json:"trace,omitempty" yaml:"trace,omitempty"`
}

// CreateEvaluator creates the evaluator from the Config
func (c Config) CreateEvaluator(e env.Environment) (evaluator.Evaluator,
	error) {
	return New(e, c)
}

// Validate ensures that the Config is valid
func (c Config) Validate() error {
	if c.LearningRate <= 0 {
		return fmt.Errorf("learning rate must be positive (%v)",
			c.LearningRate)
	}
	if c.Lambda < 0 || c.Lambda > 1 {
		return fmt.Errorf("lambda %v not in [0, 1]", c.Lambda)
	}

	switch c.Trace {
	case "", Accumulating, Replacing:
	default:
		return fmt.Errorf("no such trace type %q", c.Trace)
	}
	return nil
}

// Type returns the type of the evaluator constructed by the Config
func (c Config) Type() evaluator.Type {
	return evaluator.TDLambda
}
