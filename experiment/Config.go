package experiment

import (
	"fmt"
	"os"

	"github.com/samuelfneumann/gopredict/environment/envconfig"
	"github.com/samuelfneumann/gopredict/evaluator"
	"github.com/samuelfneumann/gopredict/evaluator/montecarlo"
	"github.com/samuelfneumann/gopredict/evaluator/td"
	"github.com/samuelfneumann/gopredict/evaluator/tdlambda"
	"github.com/samuelfneumann/gopredict/experiment/tracker"
	"github.com/samuelfneumann/gopredict/policy"
	"gopkg.in/yaml.v3"
)

// Config represents a configuration of a prediction experiment.
//
// All random components of the experiment are seeded from Seed. The
// environment is seeded with Seed and the i-th policy with Seed+i+1.
// Evaluators share the environment and are run one after another.
type Config struct {
	Seed        uint64                  `json:"seed" yaml:"seed"`
	Episodes    int                     `json:"episodes" yaml:"episodes"`
	Environment envconfig.Config        `json:"environment" yaml:"environment"`
	Policies    []policy.Config         `json:"policies" yaml:"policies"`
	Evaluators  []evaluator.TypedConfig `json:"evaluators" yaml:"evaluators"`
}

// DefaultConfig returns the configuration of a prediction experiment on
// the 5 state random walk. A uniform random policy and a policy which
// moves right with probability 0.75 are evaluated by Monte Carlo,
// TD(0) and TD(λ).
func DefaultConfig() Config {
	const states = 5

	right := make([][]float64, states+2)
	for s := range right {
		right[s] = []float64{0.25, 0.75}
	}

	return Config{
		Seed:     1,
		Episodes: 10000,
		Environment: envconfig.Config{
			Environment: envconfig.RandomWalk,
			Discount:    1.0,
			States:      states,
			Reward:      1.0,
		},
		Policies: []policy.Config{
			{Name: "uniform", Type: policy.UniformPolicy},
			{Name: "right", Type: policy.TabularPolicy, Probabilities: right},
		},
		Evaluators: []evaluator.TypedConfig{
			evaluator.NewTypedConfig("MC", montecarlo.Config{}),
			evaluator.NewTypedConfig("TD", td.Config{LearningRate: 0.1}),
			evaluator.NewTypedConfig("TDLambda", tdlambda.Config{
				LearningRate: 0.1,
				Lambda:       0.5,
			}),
		},
	}
}

// Load loads a Config from the YAML file at path. JSON files can also
// be loaded, since JSON is a subset of YAML.
func Load(path string) (Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("load: could not open config: %v", err)
	}
	defer file.Close()

	dec := yaml.NewDecoder(file)
	dec.KnownFields(true)

	var c Config
	if err := dec.Decode(&c); err != nil {
		return Config{}, fmt.Errorf("load: could not decode config %v: %v",
			path, err)
	}

	if err := c.Validate(); err != nil {
		return Config{}, fmt.Errorf("load: %v", err)
	}
	return c, nil
}

// Validate ensures that the Config is valid
func (c Config) Validate() error {
	if err := evaluator.CheckEpisodes(c.Episodes); err != nil {
		return fmt.Errorf("validate: %v", err)
	}
	if err := c.Environment.Validate(); err != nil {
		return fmt.Errorf("validate: environment: %v", err)
	}

	if len(c.Policies) == 0 {
		return fmt.Errorf("validate: no policies")
	}
	names := make(map[string]bool)
	for _, p := range c.Policies {
		if err := p.Validate(); err != nil {
			return fmt.Errorf("validate: %v", err)
		}
		if names[p.Name] {
			return fmt.Errorf("validate: duplicate policy name %v", p.Name)
		}
		names[p.Name] = true
	}

	if len(c.Evaluators) == 0 {
		return fmt.Errorf("validate: no evaluators")
	}
	names = make(map[string]bool)
	for _, e := range c.Evaluators {
		if err := e.Validate(); err != nil {
			return fmt.Errorf("validate: %v", err)
		}
		if names[e.String()] {
			return fmt.Errorf("validate: duplicate evaluator name %v", e)
		}
		names[e.String()] = true
	}

	return nil
}

// CreatePrediction creates the Prediction experiment described by the
// Config. The Trackers are registered with every evaluator.
func (c Config) CreatePrediction(t ...tracker.Tracker) (*Prediction, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("createPrediction: %v", err)
	}

	e, err := c.Environment.Create(c.Seed)
	if err != nil {
		return nil, fmt.Errorf("createPrediction: %v", err)
	}

	policies := make(map[string]policy.Policy, len(c.Policies))
	for i, pc := range c.Policies {
		p, err := pc.Create(e.NumStates(), e.NumActions(), c.Seed+uint64(i)+1)
		if err != nil {
			return nil, fmt.Errorf("createPrediction: %v", err)
		}
		policies[pc.Name] = p
	}

	evaluators := make(map[string]evaluator.Evaluator, len(c.Evaluators))
	for _, tc := range c.Evaluators {
		eval, err := tc.Config.CreateEvaluator(e)
		if err != nil {
			return nil, fmt.Errorf("createPrediction: evaluator %v: %v",
				tc, err)
		}
		evaluators[tc.String()] = eval
	}

	return NewPrediction(e, evaluators, policies, c.Episodes, t...)
}
