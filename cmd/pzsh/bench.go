package main

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/pzsh/pzsh/pkg/budget"
	"github.com/pzsh/pzsh/pkg/config"
	"github.com/pzsh/pzsh/pkg/shell"
	"github.com/spf13/cobra"
)

// benchResult holds the distribution of startup times over a run.
type benchResult struct {
	Iterations int
	Min        time.Duration
	Max        time.Duration
	Mean       time.Duration
	P50        time.Duration
	P95        time.Duration
	P99        time.Duration
	StdDev     time.Duration
	Passed     bool
}

func (r benchResult) format() string {
	status := "✓"
	if !r.Passed {
		status = "✗"
	}
	ms := func(d time.Duration) float64 { return d.Seconds() * 1000 }
	return fmt.Sprintf(
		"Startup Benchmark (%d iterations)\n"+
			"────────────────────────────────\n"+
			"min:    %8.3fms\n"+
			"max:    %8.3fms\n"+
			"mean:   %8.3fms\n"+
			"p50:    %8.3fms\n"+
			"p95:    %8.3fms\n"+
			"p99:    %8.3fms\n"+
			"stddev: %8.3fms\n"+
			"────────────────────────────────\n"+
			"Budget: %dms %s (p99 < %dms)",
		r.Iterations,
		ms(r.Min), ms(r.Max), ms(r.Mean), ms(r.P50), ms(r.P95), ms(r.P99), ms(r.StdDev),
		budget.DefaultStartupMS, status, budget.DefaultStartupMS)
}

func runBench(iterations int) benchResult {
	// Warmup
	for i := 0; i < 10; i++ {
		_, _ = shell.New(config.Default())
	}

	times := make([]time.Duration, 0, iterations)
	for i := 0; i < iterations; i++ {
		cfg := config.Default()
		start := time.Now()
		_, _ = shell.New(cfg)
		times = append(times, time.Since(start))
	}

	sort.Slice(times, func(i, j int) bool { return times[i] < times[j] })

	var sum time.Duration
	for _, t := range times {
		sum += t
	}
	mean := sum / time.Duration(iterations)

	pct := func(p float64) time.Duration {
		idx := int(float64(len(times)) * p)
		if idx >= len(times) {
			idx = len(times) - 1
		}
		return times[idx]
	}

	meanNanos := float64(mean.Nanoseconds())
	var variance float64
	for _, t := range times {
		diff := float64(t.Nanoseconds()) - meanNanos
		variance += diff * diff
	}
	variance /= float64(len(times))

	p99 := pct(0.99)

	return benchResult{
		Iterations: iterations,
		Min:        times[0],
		Max:        times[len(times)-1],
		Mean:       mean,
		P50:        pct(0.50),
		P95:        pct(0.95),
		P99:        p99,
		StdDev:     time.Duration(math.Sqrt(variance)),
		Passed:     p99 < time.Duration(budget.DefaultStartupMS)*time.Millisecond,
	}
}

func newBenchCmd() *cobra.Command {
	var iterations int

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Benchmark shell startup time",
		RunE: func(cmd *cobra.Command, args []string) error {
			result := runBench(iterations)
			fmt.Println(result.format())
			if !result.Passed {
				return fmt.Errorf("startup exceeds the %dms budget", budget.DefaultStartupMS)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&iterations, "iterations", "i", 100, "Number of iterations")

	return cmd
}
