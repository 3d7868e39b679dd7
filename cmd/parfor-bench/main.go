// Command parfor-bench times parfor.For and parfor.For2D on a few classic
// workloads across thread counts.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/schollz/progressbar/v3"

	"github.com/utkarsh5026/simplemt/parfor"
)

func main() {
	vectorFlag := flag.Int("vector", 10_000_000, "Vector length for the 1D vector add")
	matrixFlag := flag.Int("matrix", 512, "Matrix dimension for the 2D multiply")
	callsFlag := flag.Int("calls", 200, "Number of throttled calls (0 disables the workload)")
	rateFlag := flag.Float64("rate", 400, "Throttled calls per second")
	threadsFlag := flag.String("threads", "", "Comma separated thread counts (default 1,2,4,...,NumCPU)")
	repeatFlag := flag.Int("repeat", 3, "Runs per thread count; the best is reported")
	affinityFlag := flag.Bool("affinity", false, "Pin worker threads to CPU cores")
	verboseFlag := flag.Bool("v", false, "Print the timing line of every call to stderr")
	ciModeFlag := flag.Bool("ci", false, "CI mode: disable progress bar")
	flag.Parse()

	threads, err := parseThreads(*threadsFlag)
	if err != nil {
		_, _ = red.Fprintf(os.Stderr, "invalid -threads: %v\n", err)
		os.Exit(2)
	}

	workloads := []workload{
		newVectorAdd(*vectorFlag),
		newMatrixMultiply(*matrixFlag),
	}
	if *callsFlag > 0 {
		workloads = append(workloads, newThrottledCalls(*callsFlag, *rateFlag))
	}

	opts := []parfor.Option{parfor.WithSilentReport()}
	if *verboseFlag {
		opts = []parfor.Option{parfor.WithReporter(parfor.NewWriterReporter(os.Stderr))}
	}
	if *affinityFlag {
		opts = append(opts, parfor.WithCPUAffinity())
	}
	mt := parfor.NewMultithreader(opts...)

	repeat := max(*repeatFlag, 1)
	printConfiguration(threads, workloads, repeat)

	ciMode := isCIMode(*ciModeFlag)
	var bar *progressbar.ProgressBar
	if !ciMode {
		bar = progressbar.NewOptions(len(workloads)*len(threads),
			progressbar.OptionSetDescription("Running"),
			progressbar.OptionSetWidth(50),
			progressbar.OptionShowCount(),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "█",
				SaucerHead:    "█",
				SaucerPadding: "░",
				BarStart:      "│",
				BarEnd:        "│",
			}),
			progressbar.OptionEnableColorCodes(true),
		)
	}

	results := make([]runResult, 0, len(workloads)*len(threads))
	failed := false
	for _, w := range workloads {
		for _, n := range threads {
			if bar != nil {
				bar.Describe(fmt.Sprintf("%s, %d threads", w.Name(), n))
			}
			if ciMode {
				fmt.Printf("%s, %d threads\n", w.Name(), n)
			}

			r := measure(mt, w, n, repeat)
			results = append(results, r)
			failed = failed || r.Err != nil

			if bar != nil {
				_ = bar.Add(1)
			}
		}
	}
	if bar != nil {
		_ = bar.Finish()
	}

	printResults(results)
	if failed {
		os.Exit(1)
	}
	_, _ = green.Println("all results verified")
}

// measure runs w repeat times on n threads and keeps the fastest run.
func measure(mt *parfor.Multithreader, w workload, n, repeat int) runResult {
	res := runResult{Workload: w.Name(), Threads: n}
	for range repeat {
		rep, err := w.run(mt, n)
		if err == nil {
			err = w.verify()
		}
		if err != nil {
			res.Err = err
			return res
		}
		if res.Elapsed == 0 || rep.Elapsed < res.Elapsed {
			res.Elapsed = rep.Elapsed
			res.Spawned = rep.Spawned
		}
	}
	return res
}

// parseThreads reads a comma separated list, or doubles from 1 up to
// NumCPU when s is empty.
func parseThreads(s string) ([]int, error) {
	if strings.TrimSpace(s) == "" {
		var out []int
		for n := 1; n < runtime.NumCPU(); n *= 2 {
			out = append(out, n)
		}
		return append(out, runtime.NumCPU()), nil
	}

	var out []int
	for _, field := range strings.Split(s, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

func isCIMode(ciFlag bool) bool {
	if ciFlag {
		return true
	}

	ciEnvVars := []string{"CI", "GITHUB_ACTIONS", "GITLAB_CI", "CIRCLECI", "JENKINS_HOME"}
	for _, env := range ciEnvVars {
		value := os.Getenv(env)
		if value == "true" || value == "1" {
			return true
		}
	}
	return false
}
