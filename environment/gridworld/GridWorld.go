// Package gridworld implements 2D gridworld environments as tabular
// MDPs
package gridworld

import (
	"fmt"

	env "github.com/samuelfneumann/gopredict/environment"
	"github.com/samuelfneumann/gopredict/environment/mdp"
)

// Actions in a gridworld
const (
	Left int = iota
	Right
	Up
	Down
	Actions // Number of actions
)

// Position is an (x, y) coordinate in a gridworld, with x the column
// and y the row
type Position [2]int

// Config describes a gridworld. The agent moves deterministically in
// the direction of the chosen action, and bumping into a wall leaves
// the agent in place. Each step gives a reward of StepReward, except
// steps which enter a goal, which give GoalReward. Goals are terminal.
type Config struct {
	Rows, Cols int
	Goals      []Position
	StepReward float64
	GoalReward float64
	Discount   float64
}

// New returns the tabular MDP described by the gridworld configuration.
// If starter is nil, episodes start uniformly at random in any
// non-goal cell.
func New(c Config, starter env.Starter, seed uint64) (*mdp.MDP, error) {
	if c.Rows <= 0 || c.Cols <= 0 {
		return nil, fmt.Errorf("new: invalid dimensions %d x %d", c.Rows,
			c.Cols)
	}
	if len(c.Goals) == 0 {
		return nil, fmt.Errorf("new: at least one goal required")
	}

	states := c.Rows * c.Cols
	goal := make([]bool, states)
	terminal := make([]int, 0, len(c.Goals))
	for _, g := range c.Goals {
		if !inBounds(g, c.Rows, c.Cols) {
			return nil, fmt.Errorf("new: goal %v outside of %d x %d grid",
				g, c.Rows, c.Cols)
		}
		ind := cToInd(g[0], g[1], c.Cols)
		if !goal[ind] {
			goal[ind] = true
			terminal = append(terminal, ind)
		}
	}

	if starter == nil {
		var starts []int
		for s := 0; s < states; s++ {
			if !goal[s] {
				starts = append(starts, s)
			}
		}
		if len(starts) == 0 {
			return nil, fmt.Errorf("new: every cell is a goal")
		}

		var err error
		starter, err = env.NewUniformStarter(starts, states,
			mdp.StarterSeed(seed))
		if err != nil {
			return nil, fmt.Errorf("new: %v", err)
		}
	}

	transitions := make([][][]float64, states)
	rewards := make([][][]float64, states)
	for s := 0; s < states; s++ {
		transitions[s] = make([][]float64, Actions)
		rewards[s] = make([][]float64, Actions)
		x, y := indToC(s, c.Cols)

		for a := 0; a < Actions; a++ {
			transitions[s][a] = make([]float64, states)
			rewards[s][a] = make([]float64, states)

			next := s
			if !goal[s] {
				next = move(Position{x, y}, a, c.Rows, c.Cols)
			}
			transitions[s][a][next] = 1.0

			if goal[next] && !goal[s] {
				rewards[s][a][next] = c.GoalReward
			} else {
				rewards[s][a][next] = c.StepReward
			}
		}
	}

	return mdp.New(transitions, rewards, terminal, starter, c.Discount, seed)
}

// move returns the index of the cell reached by taking action a from p
func move(p Position, a, r, c int) int {
	x, y := p[0], p[1]
	switch a {
	case Left:
		x--
	case Right:
		x++
	case Up:
		y++
	case Down:
		y--
	}

	if !inBounds(Position{x, y}, r, c) {
		return cToInd(p[0], p[1], c)
	}
	return cToInd(x, y, c)
}

func inBounds(p Position, r, c int) bool {
	return p[0] >= 0 && p[0] < c && p[1] >= 0 && p[1] < r
}

// Index returns the state index of position p in a gridworld with c
// columns
func Index(p Position, c int) int {
	return cToInd(p[0], p[1], c)
}

func cToInd(x, y, c int) int {
	return y*c + x
}

func indToC(ind, c int) (int, int) {
	y := ind / c
	return ind - (y * c), y
}
