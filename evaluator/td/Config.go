package td

import (
	"fmt"

	env "github.com/samuelfneumann/gopredict/environment"
	"github.com/samuelfneumann/gopredict/evaluator"
)

func init() {
	// Register Config type so that it can be typed using
	// evaluator.TypedConfig to help with serialization/deserialization.
	evaluator.Register(evaluator.TD, Config{})
}

// Config represents a configuration for the TD(0) evaluator
type Config struct {
	LearningRate float64 `json:"learning_rate" yaml:"learning_rate"`
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
	return nil
}

// Type returns the type of the evaluator constructed by the Config
func (c Config) Type() evaluator.Type {
	return evaluator.TD
}
