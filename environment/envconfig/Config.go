// Package envconfig provides configuration structs for configuring
// environments. Environment configurations in this package are JSON
// and YAML serializable.
package envconfig

import (
	"fmt"

	env "github.com/samuelfneumann/gopredict/environment"
	"github.com/samuelfneumann/gopredict/environment/gridworld"
	"github.com/samuelfneumann/gopredict/environment/mdp"
)

// EnvName stores the name of environments that can be configured with
// this package
type EnvName string

// Environments available for configuration
const (
	MDP        EnvName = "MDP"
	Chain      EnvName = "Chain"
	RandomWalk EnvName = "RandomWalk"
	GridWorld  EnvName = "GridWorld"
)

// Config implements a specific configuration of a specific environment.
// Only the fields relevant to the environment need to be set:
//
//	Environment		Fields
//	MDP				Transitions, Rewards, Terminal, Start
//	Chain			States, Reward
//	RandomWalk		States, Reward
//	GridWorld		Rows, Cols, Goals, Reward, StepReward, Start
//
// For the Chain environment, States is the total number of states. For
// the RandomWalk, States is the number of non-terminal states. Start
// holds (unnormalized) start state weights; if empty the environment's
// default start distribution is used. All environments can be cut off
// after EpisodeCutoff steps, which is disabled when EpisodeCutoff is 0.
type Config struct {
	Environment   EnvName       `json:"environment" yaml:"environment"`
	Discount      float64       `json:"discount" yaml:"discount"`
	EpisodeCutoff int           `json:"episode_cutoff,omitempty" yaml:"episode_cutoff,omitempty"`
	Start         []float64     `json:"start,omitempty" yaml:"start,omitempty"`
	States        int           `json:"states,omitempty" yaml:"states,omitempty"`
	Reward        float64       `json:"reward,omitempty" yaml:"reward,omitempty"`
	StepReward    float64       `json:"step_reward,omitempty" yaml:"step_reward,omitempty"`
	Transitions   [][][]float64 `json:"transitions,omitempty" yaml:"transitions,omitempty"`
	Rewards       [][][]float64 `json:"rewards,omitempty" yaml:"rewards,omitempty"`
	Terminal      []int         `json:"terminal,omitempty" yaml:"terminal,omitempty"`
	Rows          int           `json:"rows,omitempty" yaml:"rows,omitempty"`
	Cols          int           `json:"cols,omitempty" yaml:"cols,omitempty"`
	Goals         [][2]int      `json:"goals,omitempty" yaml:"goals,omitempty"`
}

// Validate returns an error describing why the Config is invalid, or
// nil if the Config is valid
func (c Config) Validate() error {
	if c.Discount < 0 || c.Discount > 1 {
		return fmt.Errorf("validate: discount %v not in [0, 1]", c.Discount)
	}
	if c.EpisodeCutoff < 0 {
		return fmt.Errorf("validate: negative episode cutoff %d",
			c.EpisodeCutoff)
	}

	switch c.Environment {
	case MDP:
		if len(c.Transitions) == 0 {
			return fmt.Errorf("validate: MDP requires transitions")
		}
		if len(c.Start) == 0 {
			return fmt.Errorf("validate: MDP requires start weights")
		}

	case Chain, RandomWalk:
		if c.States <= 0 {
			return fmt.Errorf("validate: %v requires a positive number of "+
				"states", c.Environment)
		}

	case GridWorld:
		if c.Rows <= 0 || c.Cols <= 0 {
			return fmt.Errorf("validate: GridWorld requires positive rows "+
				"and cols")
		}

	default:
		return fmt.Errorf("validate: no such environment %q", c.Environment)
	}
	return nil
}

// Create returns the environment described by the Config
func (c Config) Create(seed uint64) (*mdp.MDP, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("create: %v", err)
	}

	var (
		m   *mdp.MDP
		err error
	)
	switch c.Environment {
	case MDP:
		var s env.Starter
		if s, err = env.NewCategoricalStarter(c.Start,
			mdp.StarterSeed(seed)); err != nil {
			return nil, fmt.Errorf("create: %v", err)
		}
		m, err = mdp.New(c.Transitions, c.Rewards, c.Terminal, s, c.Discount,
			seed)

	case Chain:
		m, err = mdp.NewChain(c.States, c.Reward, c.Discount, seed)

	case RandomWalk:
		m, err = mdp.NewRandomWalk(c.States, c.Reward, c.Discount, seed)

	case GridWorld:
		m, err = CreateGridWorld(c, seed)
	}
	if err != nil {
		return nil, fmt.Errorf("create: %v", err)
	}

	if c.EpisodeCutoff > 0 {
		m.SetEnder(env.NewStepLimit(c.EpisodeCutoff))
	}
	return m, nil
}

// CreateGridWorld is a factory for creating the GridWorld environment
// described by the Config
func CreateGridWorld(c Config, seed uint64) (*mdp.MDP, error) {
	goals := make([]gridworld.Position, len(c.Goals))
	for i := range c.Goals {
		goals[i] = gridworld.Position(c.Goals[i])
	}

	gc := gridworld.Config{
		Rows:       c.Rows,
		Cols:       c.Cols,
		Goals:      goals,
		StepReward: c.StepReward,
		GoalReward: c.Reward,
		Discount:   c.Discount,
	}

	var starter env.Starter
	if len(c.Start) > 0 {
		s, err := env.NewCategoricalStarter(c.Start, mdp.StarterSeed(seed))
		if err != nil {
			return nil, fmt.Errorf("createGridWorld: %v", err)
		}
		starter = s
	}
	return gridworld.New(gc, starter, seed)
}
