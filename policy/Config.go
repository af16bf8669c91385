package policy

import "fmt"

// Type represents a type of policy that can be described by a Config
type Type string

const (
	TabularPolicy       Type = "Tabular"
	DeterministicPolicy Type = "Deterministic"
	UniformPolicy       Type = "Uniform"
)

// Config represents a configuration of a fixed policy. Only the fields
// relevant to the Config's Type need to be set:
//
//	Type			Fields
//	Tabular			Probabilities
//	Deterministic	Actions
//	Uniform			(none)
type Config struct {
	Name          string      `json:"name" yaml:"name"`
	Type          Type        `json:"type" yaml:"type"`
	Probabilities [][]float64 `json:"probabilities,omitempty" yaml:"probabilities,omitempty"`
	Actions       []int       `json:"actions,omitempty" yaml:"actions,omitempty"`
}

// Validate ensures that the Config is valid
func (c Config) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("validate: policy must be named")
	}

	switch c.Type {
	case TabularPolicy:
		if len(c.Probabilities) == 0 {
			return fmt.Errorf("validate: tabular policy %v has no "+
				"probabilities", c.Name)
		}

	case DeterministicPolicy:
		if len(c.Actions) == 0 {
			return fmt.Errorf("validate: deterministic policy %v has no "+
				"actions", c.Name)
		}

	case UniformPolicy:

	default:
		return fmt.Errorf("validate: no such policy type %q", c.Type)
	}
	return nil
}

// Create returns the policy described by the Config for an environment
// with numStates states and numActions actions
func (c Config) Create(numStates, numActions int,
	seed uint64) (Distribution, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("create: %v", err)
	}

	var (
		p   Distribution
		err error
	)
	switch c.Type {
	case TabularPolicy:
		p, err = NewTabular(c.Probabilities, seed)

	case DeterministicPolicy:
		p, err = NewDeterministic(c.Actions, numActions)

	case UniformPolicy:
		p, err = NewUniform(numStates, numActions, seed)
	}
	if err != nil {
		return nil, fmt.Errorf("create: policy %v: %v", c.Name, err)
	}

	if p.NumStates() != numStates || p.NumActions() != numActions {
		return nil, fmt.Errorf("create: policy %v is defined over %d "+
			"states and %d actions, environment has %d states and %d "+
			"actions", c.Name, p.NumStates(), p.NumActions(), numStates,
			numActions)
	}
	return p, nil
}
