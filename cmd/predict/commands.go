package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/samuelfneumann/gopredict/experiment"
	"github.com/samuelfneumann/gopredict/experiment/tracker"
	"github.com/samuelfneumann/gopredict/experiment/trackers"
	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:   "predict",
		Short: "Estimate the value functions of fixed policies",
		Long: `predict runs model-free prediction algorithms (Monte Carlo,
TD(0) and TD(λ)) on tabular environments and compares their estimates
with the exact value functions of the evaluated policies.`,
		SilenceUsage: true,
	}

	runCmd = &cobra.Command{
		Use:   "run",
		Short: "Runs the prediction experiment described by a YAML config",
		Args:  cobra.NoArgs,
		RunE:  runExperiment,
	}
	configPath string
	episodes   int
	seed       uint64
	progress   bool
	outPath    string

	demoCmd = &cobra.Command{
		Use:   "demo",
		Short: "Evaluates two policies on the 5 state random walk",
		Long: `Evaluates a uniform random policy and a policy which moves right
with probability 0.75 on the 5 state random walk using Monte Carlo,
TD(0) with α = 0.1, and TD(λ) with α = 0.1 and λ = 0.5.`,
		Args: cobra.NoArgs,
		RunE: runDemo,
	}
	demoEpisodes int
)

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringVarP(&configPath, "config", "c", "",
		"Path to the experiment config file")
	runCmd.Flags().IntVarP(&episodes, "episodes", "n", 0,
		"Override the number of episodes in the config")
	runCmd.Flags().Uint64Var(&seed, "seed", 0,
		"Override the seed in the config")
	runCmd.Flags().BoolVar(&progress, "progress", false,
		"Display a progress bar on stderr")
	runCmd.Flags().StringVarP(&outPath, "out", "o", "",
		"Save the gob-encoded results to this file")
	_ = runCmd.MarkFlagRequired("config")

	rootCmd.AddCommand(demoCmd)
	demoCmd.Flags().IntVarP(&demoEpisodes, "episodes", "n",
		experiment.DefaultConfig().Episodes, "Number of episodes")
}

func runExperiment(cmd *cobra.Command, args []string) error {
	c, err := experiment.Load(configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("episodes") {
		c.Episodes = episodes
	}
	if cmd.Flags().Changed("seed") {
		c.Seed = seed
	}
	log.Printf("Loaded config %v: %d evaluators, %d policies, %d episodes",
		configPath, len(c.Evaluators), len(c.Policies), c.Episodes)

	var t []tracker.Tracker
	if progress {
		total := c.Episodes * len(c.Evaluators) * len(c.Policies)
		displayEvery := total / 100
		if displayEvery < 1 {
			displayEvery = 1
		}
		t = append(t, trackers.NewProgress(os.Stderr, 50, total,
			displayEvery))
	}

	results, err := run(c, t...)
	if err != nil {
		return err
	}

	if outPath != "" {
		if err := experiment.SaveResults(outPath, results); err != nil {
			return err
		}
		log.Printf("Saved results to %v", outPath)
	}
	return nil
}

func runDemo(cmd *cobra.Command, args []string) error {
	c := experiment.DefaultConfig()
	c.Episodes = demoEpisodes

	_, err := run(c)
	return err
}

// run runs the experiment described by c and prints its results
func run(c experiment.Config, t ...tracker.Tracker) ([]experiment.Result,
	error) {
	pred, err := c.CreatePrediction(t...)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	results, err := pred.Run()
	if err != nil {
		return nil, err
	}
	for _, tr := range t {
		if err := tr.Save(); err != nil {
			return nil, err
		}
	}
	log.Printf("Finished in %v", time.Since(start).Truncate(time.Millisecond))

	for _, r := range results {
		fmt.Println(r)
	}
	return results, nil
}
