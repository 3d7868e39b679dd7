package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
)

var (
	bold  = color.New(color.Bold)
	red   = color.New(color.FgRed)
	green = color.New(color.FgGreen)
)

// runResult is one (workload, thread count) measurement.
type runResult struct {
	Workload string
	Threads  int
	Spawned  int
	Elapsed  time.Duration
	Err      error
}

// formatNumber formats an integer with comma separators
func formatNumber(n int) string {
	s := fmt.Sprintf("%d", n)
	var result strings.Builder
	for i, c := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			_, _ = result.WriteString(",")
		}
		_, _ = result.WriteRune(c)
	}
	return result.String()
}

// speedup returns base/elapsed formatted for the table.
func speedup(base, elapsed time.Duration) string {
	if base <= 0 || elapsed <= 0 {
		return "-"
	}
	return fmt.Sprintf("%.2fx", float64(base)/float64(elapsed))
}

func printConfiguration(threads []int, workloads []workload, repeat int) {
	_, _ = bold.Println("Configuration:")
	fmt.Printf("  Thread counts:    %v\n", threads)
	fmt.Printf("  Repetitions:      %d (best time kept)\n", repeat)
	for _, w := range workloads {
		fmt.Printf("  %-22s %s\n", w.Name()+":", w.Size())
	}
	fmt.Println()
}

func printResults(results []runResult) {
	fmt.Println()
	_, _ = bold.Println("RESULTS")
	fmt.Println()

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Workload", "Threads", "Workers", "Time", "Speedup")

	base := map[string]time.Duration{}
	for _, r := range results {
		if r.Err == nil && r.Threads == 1 {
			base[r.Workload] = r.Elapsed
		}
	}

	for _, r := range results {
		if r.Err != nil {
			_ = table.Append(r.Workload, fmt.Sprintf("%d", r.Threads), "-", "failed", red.Sprint(r.Err.Error()))
			continue
		}
		_ = table.Append(
			r.Workload,
			fmt.Sprintf("%d", r.Threads),
			fmt.Sprintf("%d", r.Spawned),
			r.Elapsed.Round(time.Microsecond).String(),
			speedup(base[r.Workload], r.Elapsed),
		)
	}

	if err := table.Render(); err != nil {
		_, _ = red.Println("Error in rendering results table")
	}
}
