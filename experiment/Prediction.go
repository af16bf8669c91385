// Package experiment implements functionality for running prediction
// experiments, in which a number of evaluators estimate the value
// functions of a number of fixed policies in a single environment.
package experiment

import (
	"encoding/gob"
	"fmt"
	"os"
	"sort"

	env "github.com/samuelfneumann/gopredict/environment"
	"github.com/samuelfneumann/gopredict/evaluator"
	"github.com/samuelfneumann/gopredict/experiment/tracker"
	"github.com/samuelfneumann/gopredict/experiment/trackers"
	"github.com/samuelfneumann/gopredict/policy"
	ts "github.com/samuelfneumann/gopredict/timestep"
	"github.com/samuelfneumann/gopredict/utils/floatutils"
	"github.com/samuelfneumann/gopredict/utils/matutils"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Valuer is an environment which can compute the exact state-value
// function of a policy from its model. Exact values do not account for
// episodes being cut off after a fixed number of steps.
type Valuer interface {
	Value(p policy.Distribution) (*mat.VecDense, error)
}

// Prediction is an experiment which runs each of its evaluators on each
// of its policies for a fixed number of episodes. Evaluators and
// policies are run in order of their names.
//
// If the environment is a Valuer, each estimate is compared against
// the exact value function of the policy.
type Prediction struct {
	env        env.Environment
	episodes   int
	evaluators map[string]evaluator.Evaluator
	policies   map[string]policy.Policy
	stats      *runStats

	evaluatorNames []string
	policyNames    []string
}

// NewPrediction creates a new Prediction experiment. Each Tracker is
// registered with every evaluator that accepts Trackers, so that it
// sees the TimeSteps of all runs of the experiment.
func NewPrediction(e env.Environment, evaluators map[string]evaluator.Evaluator,
	policies map[string]policy.Policy, episodes int,
	t ...tracker.Tracker) (*Prediction, error) {
	if err := evaluator.CheckEpisodes(episodes); err != nil {
		return nil, fmt.Errorf("newPrediction: %v", err)
	}
	if len(evaluators) == 0 {
		return nil, fmt.Errorf("newPrediction: no evaluators")
	}
	if len(policies) == 0 {
		return nil, fmt.Errorf("newPrediction: no policies")
	}

	stats := &runStats{}
	evaluatorNames := make([]string, 0, len(evaluators))
	for name, eval := range evaluators {
		evaluatorNames = append(evaluatorNames, name)

		r, ok := eval.(evaluator.Registerer)
		if !ok {
			fmt.Fprintf(os.Stderr, "Warning: evaluator %v does not accept "+
				"trackers, episode statistics will not be recorded\n", name)
			continue
		}
		r.Register(stats)
		for _, tr := range t {
			r.Register(tr)
		}
	}

	policyNames := make([]string, 0, len(policies))
	for name := range policies {
		policyNames = append(policyNames, name)
	}
	sort.Strings(evaluatorNames)
	sort.Strings(policyNames)

	return &Prediction{
		env:            e,
		episodes:       episodes,
		evaluators:     evaluators,
		policies:       policies,
		stats:          stats,
		evaluatorNames: evaluatorNames,
		policyNames:    policyNames,
	}, nil
}

// Run runs every evaluator on every policy and returns the results.
// Results are ordered by evaluator name, then by policy name.
func (p *Prediction) Run() ([]Result, error) {
	exact, err := p.exactValues()
	if err != nil {
		return nil, fmt.Errorf("run: %v", err)
	}

	results := make([]Result, 0, len(p.evaluators)*len(p.policies))
	for _, evalName := range p.evaluatorNames {
		eval := p.evaluators[evalName]

		for _, policyName := range p.policyNames {
			p.stats.reset()
			values, err := eval.Evaluate(p.policies[policyName], p.episodes)
			if err != nil {
				return nil, fmt.Errorf("run: evaluator %v on policy %v: %w",
					evalName, policyName, err)
			}

			result := Result{
				Evaluator: evalName,
				Policy:    policyName,
				Episodes:  p.episodes,
				Values:    mat.Col(nil, 0, values),
			}
			result.setEpisodeStats(p.stats)
			if v, ok := exact[policyName]; ok && len(v) == len(result.Values) {
				result.setExact(v)
			}
			results = append(results, result)
		}
	}

	return results, nil
}

// exactValues computes the exact value function of each policy if the
// environment is a Valuer. Policies whose exact values cannot be
// computed are skipped with a warning.
func (p *Prediction) exactValues() (map[string][]float64, error) {
	exact := make(map[string][]float64)
	valuer, ok := p.env.(Valuer)
	if !ok {
		return exact, nil
	}

	for name, pol := range p.policies {
		dist, ok := pol.(policy.Distribution)
		if !ok {
			continue
		}

		v, err := valuer.Value(dist)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not compute exact values "+
				"of policy %v: %v\n", name, err)
			continue
		}
		if v.Len() != p.env.NumStates() {
			return nil, fmt.Errorf("exact values of policy %v have length %d, "+
				"environment has %d states", name, v.Len(), p.env.NumStates())
		}
		exact[name] = mat.Col(nil, 0, v)
	}
	return exact, nil
}

// Episodes returns the number of episodes each evaluator is run for
// on each policy
func (p *Prediction) Episodes() int {
	return p.episodes
}

// Result is the result of running one evaluator on one policy
type Result struct {
	Evaluator string
	Policy    string
	Episodes  int

	// Estimated state values
	Values []float64

	// Exact state values, RMSE and maximum absolute error of the
	// estimate. Exact is nil if the exact values are unknown.
	Exact    []float64
	RMSE     float64
	MaxError float64

	// Mean and standard deviation of the discounted episodic return,
	// and mean episode length
	MeanReturn float64
	StdReturn  float64
	MeanLength float64
	Timeouts   int
}

func (r *Result) setExact(exact []float64) {
	r.Exact = exact
	r.RMSE = floatutils.RMSE(r.Values, exact)
	r.MaxError, _ = floatutils.MaxError(r.Values, exact)
}

func (r *Result) setEpisodeStats(s *runStats) {
	returns := s.returns.Data()
	switch len(returns) {
	case 0:
	case 1:
		r.MeanReturn = returns[0]
	default:
		r.MeanReturn, r.StdReturn = stat.MeanStdDev(returns, nil)
	}

	if lengths := s.lengths.Data(); len(lengths) > 0 {
		r.MeanLength = stat.Mean(lengths, nil)
	}
	r.Timeouts = s.lengths.Timeouts()
}

// HasExact returns whether the Result holds the exact value function
func (r Result) HasExact() bool {
	return r.Exact != nil
}

// String returns the estimated values, and the error of the estimate if
// the exact values are known
func (r Result) String() string {
	values := mat.NewVecDense(len(r.Values), r.Values)
	s := fmt.Sprintf("%v policy %v: %v", r.Evaluator, r.Policy,
		matutils.FormatVec(values, 3))

	if r.HasExact() {
		s += fmt.Sprintf(" (rmse: %.4f, max error: %.4f)", r.RMSE,
			r.MaxError)
	}
	return s
}

// runStats tracks the episodic returns and lengths of a single run of
// an evaluator on a policy
type runStats struct {
	returns *trackers.Return
	lengths *trackers.EpisodeLength
}

// Track implements the tracker.Tracker interface
func (r *runStats) Track(step ts.TimeStep) {
	r.returns.Track(step)
	r.lengths.Track(step)
}

// Save implements the tracker.Tracker interface. Statistics are stored
// in Results rather than saved.
func (r *runStats) Save() error {
	return nil
}

func (r *runStats) reset() {
	r.returns = trackers.NewReturn("")
	r.lengths = trackers.NewEpisodeLength("")
}

// SaveResults gob-encodes results into the file filename
func SaveResults(filename string, results []Result) error {
	if err := tracker.SaveData(filename, results); err != nil {
		return fmt.Errorf("saveResults: %v", err)
	}
	return nil
}

// LoadResults loads Results saved with SaveResults
func LoadResults(filename string) ([]Result, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("loadResults: could not open results "+
			"file: %v", err)
	}
	defer file.Close()

	var results []Result
	if err := gob.NewDecoder(file).Decode(&results); err != nil {
		return nil, fmt.Errorf("loadResults: could not decode "+
			"results: %v", err)
	}
	return results, nil
}
