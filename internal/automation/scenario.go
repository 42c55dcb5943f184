package automation

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/sortviz/internal/config"
)

// Scenario is a scripted list of headless runs.
type Scenario struct {
	Name        string        `yaml:"name"`
	Description string        `yaml:"description"`
	Runs        []ScenarioRun `yaml:"runs"`
}

// ScenarioRun is one run of a scenario. Input takes precedence over Preset.
// Zero expectations are not checked.
type ScenarioRun struct {
	Algorithm   string `yaml:"algorithm"`
	Input       []int  `yaml:"input"`
	Preset      string `yaml:"preset"`
	Seed        int64  `yaml:"seed"`
	ExpectSteps int    `yaml:"expect_steps"`
	ExpectSwaps int    `yaml:"expect_swaps"`
}

func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, fmt.Errorf("parse scenario %s: %w", path, err)
	}
	if len(scenario.Runs) == 0 {
		return nil, fmt.Errorf("scenario %s: no runs", path)
	}
	return &scenario, nil
}

func (r ScenarioRun) input() ([]int, error) {
	if r.Input != nil {
		return r.Input, nil
	}
	cfg := config.DefaultConfig()
	if r.Preset != "" {
		cfg.Preset = r.Preset
	}
	cfg.Seed = r.Seed
	return cfg.GetInput()
}

// RunScenario executes the runs in order and stops at the first failure.
func RunScenario(ctx context.Context, scenario *Scenario, opts Options) ([]Result, error) {
	results := make([]Result, 0, len(scenario.Runs))

	for i, run := range scenario.Runs {
		input, err := run.input()
		if err != nil {
			return results, fmt.Errorf("run %d: %w", i+1, err)
		}

		res, err := Execute(ctx, run.Algorithm, input, opts)
		if err != nil {
			return results, fmt.Errorf("run %d (%s): %w", i+1, run.Algorithm, err)
		}
		if run.ExpectSteps > 0 && res.Steps != run.ExpectSteps {
			return results, fmt.Errorf("run %d (%s): %w: %d steps, want %d", i+1, run.Algorithm, ErrCheck, res.Steps, run.ExpectSteps)
		}
		if swaps := int(res.Stats["swaps"]); run.ExpectSwaps > 0 && swaps != run.ExpectSwaps {
			return results, fmt.Errorf("run %d (%s): %w: %d swaps, want %d", i+1, run.Algorithm, ErrCheck, swaps, run.ExpectSwaps)
		}

		opts.log().Info("scenario run complete",
			"scenario", scenario.Name,
			"run", i+1,
			"of", len(scenario.Runs),
			"algorithm", res.Algorithm,
			"steps", res.Steps,
		)
		results = append(results, *res)
	}

	return results, nil
}
