package montecarlo

import (
	"fmt"

	env "github.com/samuelfneumann/gopredict/environment"
	"github.com/samuelfneumann/gopredict/evaluator"
)

func init() {
	// Register Config type so that it can be typed using
	// evaluator.TypedConfig to help with serialization/deserialization.
	evaluator.Register(evaluator.MonteCarlo, Config{})
}

// Config represents a configuration for the Monte Carlo evaluator.
//
// If LearningRate is 0, the value of each state is the sample average
// of the returns observed from it. Otherwise, values are moved towards
// each observed return with the fixed step size LearningRate.
//
// If EveryVisit is false, only the return following the first visit to
// a state in each episode is used.
type Config struct {
	LearningRate float64 `json:"learning_rate,omitempty" yaml:"learning_rate,omitempty"`
	EveryVisit   bool    `json:"every_visit,omitempty" yaml:"every_visit,omitempty"`
}

// CreateEvaluator creates the evaluator from the Config
func (c Config) CreateEvaluator(e env.Environment) (evaluator.Evaluator,
	error) {
	return New(e, c)
}

// Validate ensures that the Config is valid
func (c Config) Validate() error {
	if c.LearningRate < 0 {
		return fmt.Errorf("learning rate cannot be negative (%v)",
			c.LearningRate)
	}
	return nil
}

// Type returns the type of the evaluator constructed by the Config
func (c Config) Type() evaluator.Type {
	return evaluator.MonteCarlo
}
