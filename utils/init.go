package utils

import (
	"flag"
	"fmt"
	"log"
	"strings"
)

type options struct {
	relTol     float64
	absTol     float64
	width      uint
	task       string
	format     string
	output     string
	noColorize bool
	verbose    bool
	metrics    bool
}

const (
	_EVAL = iota
	_RENDER
	_NORMALIZE
	_OVERLAP_GRAPH
)

// Default tolerance used to judge two bound values as touching,
// or a non-empty interval as infinitesimal. Matches the relative
// tolerance of math.isclose in common numeric libraries.
const (
	DefaultRelTol = 1e-9
	DefaultAbsTol = 0.0
)

func CanColorize(col func(...interface{}) string) func(...interface{}) string {
	if opts.noColorize {
		return func(is ...interface{}) string {
			return fmt.Sprintf(strings.Repeat("%s", len(is)), is...)
		}
	}
	return col
}

var task = []struct{ flag, explanation string }{{
	"eval",
	"Evaluate an interval expression left to right and print the resulting members",
}, {
	"render",
	"Evaluate an interval expression and draw every member on an integer number line",
}, {
	"normalize",
	"Evaluate an interval expression and print the normalized (merged) result",
}, {
	"overlap-graph",
	"Evaluate an interval expression and export the graph of intersecting and touching members",
}}

var opts = &options{
	relTol: DefaultRelTol,
	absTol: DefaultAbsTol,
	width:  50,
	task:   task[_EVAL].flag,
	format: "dot",
}

type optInterface struct{}

type taskInterface struct{}

func Opts() optInterface {
	return optInterface{}
}

func (optInterface) NoColorize() bool {
	return opts.noColorize
}

// SetNoColorize toggles colorization outside of flag parsing.
func (optInterface) SetNoColorize(b bool) {
	opts.noColorize = b
}

func (optInterface) Verbose() bool {
	return opts.verbose
}

func (optInterface) SetVerbose(b bool) {
	opts.verbose = b
}

// Tolerance returns the relative and absolute closeness tolerances.
func (optInterface) Tolerance() (rel, abs float64) {
	return opts.relTol, opts.absTol
}

// SetTolerance overrides the closeness tolerances. It returns a function
// restoring the previous values.
func (optInterface) SetTolerance(rel, abs float64) (restore func()) {
	if rel < 0 || abs < 0 {
		log.Panicf("tolerances must be non-negative, got rel=%v abs=%v", rel, abs)
	}
	prevRel, prevAbs := opts.relTol, opts.absTol
	opts.relTol, opts.absTol = rel, abs
	return func() {
		opts.relTol, opts.absTol = prevRel, prevAbs
	}
}

func (optInterface) Metrics() bool {
	return opts.metrics
}

func (optInterface) RenderWidth() int {
	return int(opts.width)
}

func (optInterface) OutputFormat() string {
	return opts.format
}

func (optInterface) Output() string {
	return opts.output
}

func (optInterface) Task() taskInterface {
	return taskInterface{}
}

func (taskInterface) IsEval() bool {
	return opts.task == task[_EVAL].flag
}

func (taskInterface) IsRender() bool {
	return opts.task == task[_RENDER].flag
}

func (taskInterface) IsNormalize() bool {
	return opts.task == task[_NORMALIZE].flag
}

func (taskInterface) IsOverlapGraph() bool {
	return opts.task == task[_OVERLAP_GRAPH].flag
}

func init() {
	taskFlag := "\n"
	for _, task := range task {
		taskFlag += task.flag + " -- " + task.explanation + "\n"
	}
	taskFlag += "\n"

	flag.Float64Var(&(opts.relTol), "rel-tol", DefaultRelTol, "Relative tolerance used when deciding whether two bound values touch.")
	flag.Float64Var(&(opts.absTol), "abs-tol", DefaultAbsTol, "Absolute tolerance used when deciding whether two bound values touch.")
	flag.UintVar(&(opts.width), "width", 50, "Maximum number of columns drawn when rendering intervals.")
	flag.StringVar(&(opts.task), "task", task[_EVAL].flag, "Set the task to do during execution. Options:"+taskFlag)
	flag.StringVar(&(opts.format), "format", "dot", "output file format for overlap graphs [dot | svg | png | ...]")
	flag.StringVar(&(opts.output), "o", "", "output file for overlap graphs (defaults to stdout)")
	flag.BoolVar(&(opts.noColorize), "no-colorize", false, "Disable pretty printer colorization")
	flag.BoolVar(&(opts.verbose), "verbose", false, "enable verbose output")
	flag.BoolVar(&(opts.metrics), "metrics", false, "Report statistics about the evaluated region")

	// Set up logging
	log.SetFlags(log.Ltime | log.Lshortfile)
}

func ParseArgs() {
	// Calling flag.Parse in init messes up unit tests.
	// See https://stackoverflow.com/questions/60235896/flag-provided-but-not-defined-test-v
	flag.Parse()

	validTask := false
	for _, task := range task {
		if task.flag == opts.task {
			validTask = true
			break
		}
	}

	if !validTask {
		log.Fatalf("Value \"%s\" is not valid for -task", opts.task)
	}

	if opts.relTol < 0 || opts.absTol < 0 {
		log.Fatalf("Tolerances must be non-negative (rel-tol=%v, abs-tol=%v)", opts.relTol, opts.absTol)
	}

	if Opts().Task().IsOverlapGraph() {
		opts.noColorize = true
	}
}

func (optInterface) OnVerbose(do func()) {
	if Opts().Verbose() {
		do()
	}
}
