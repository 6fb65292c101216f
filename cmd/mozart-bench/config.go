package main

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strconv"

	"github.com/casualjim/mozart/pool"
	"github.com/casualjim/mozart/timer"
	"gopkg.in/yaml.v3"
)

const (
	envTimes  = "MOZART_BENCH_TIMES"
	envRounds = "MOZART_BENCH_ROUNDS"
)

var (
	emitterModes = []string{"attentive", "fast"}
	boxModes     = []string{"inline", "heap", "pooled"}
)

type heapConfig struct {
	Capacity int `yaml:"capacity"`
	Prewarm  int `yaml:"prewarm"`
}

type scenario struct {
	Times    int        `yaml:"times"`
	Rounds   int        `yaml:"rounds"`
	Unit     timer.Unit `yaml:"unit"`
	Emitters []string   `yaml:"emitters"`
	Boxes    []string   `yaml:"boxes"`
	Heap     heapConfig `yaml:"heap"`
}

func defaultScenario() scenario {
	return scenario{
		Times:    1_000_000,
		Rounds:   5,
		Unit:     timer.Milliseconds,
		Emitters: slices.Clone(emitterModes),
		Boxes:    slices.Clone(boxModes),
		Heap: heapConfig{
			Capacity: pool.DefaultCapacity,
			Prewarm:  -1,
		},
	}
}

// loadScenario reads a YAML scenario on top of the defaults. An empty path
// returns the defaults.
func loadScenario(path string) (scenario, error) {
	sc := defaultScenario()
	if path == "" {
		return sc, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return sc, fmt.Errorf("failed to read scenario: %w", err)
	}
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return sc, fmt.Errorf("failed to parse scenario %s: %w", path, err)
	}
	return sc, nil
}

func (sc *scenario) applyEnv() error {
	for _, env := range []struct {
		name   string
		target *int
	}{
		{envTimes, &sc.Times},
		{envRounds, &sc.Rounds},
	} {
		v, ok := os.LookupEnv(env.name)
		if !ok || v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", env.name, err)
		}
		*env.target = n
	}
	return nil
}

func (sc scenario) validate() error {
	var errs []error
	if sc.Times <= 0 {
		errs = append(errs, fmt.Errorf("times must be positive, got %d", sc.Times))
	}
	if sc.Rounds <= 0 {
		errs = append(errs, fmt.Errorf("rounds must be positive, got %d", sc.Rounds))
	}
	for _, m := range sc.Emitters {
		if !slices.Contains(emitterModes, m) {
			errs = append(errs, fmt.Errorf("unknown emitter mode %q", m))
		}
	}
	for _, m := range sc.Boxes {
		if !slices.Contains(boxModes, m) {
			errs = append(errs, fmt.Errorf("unknown box mode %q", m))
		}
	}
	if _, err := pool.Resolve(pool.Capacity(sc.Heap.Capacity), pool.Prewarm(sc.Heap.Prewarm)); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
