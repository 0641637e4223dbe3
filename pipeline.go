package main

import (
	"fmt"
	"log"

	"github.com/cs-au-dk/intervals/algebra/interval"

	"github.com/pkg/errors"
)

var ErrExpression = errors.New("malformed interval expression")

// operator folds an operand into the accumulated region.
type operator struct {
	name  string
	unary bool
	apply func(acc *interval.Multi, operand interval.Interval) *interval.Multi
}

var operators = map[string]operator{
	"+": {name: "union", apply: func(acc *interval.Multi, iv interval.Interval) *interval.Multi {
		return acc.AddOverlapping(iv)
	}},
	"|": {name: "merge", apply: func(acc *interval.Multi, iv interval.Interval) *interval.Multi {
		return acc.AddMerge(iv)
	}},
	"hard": {name: "add-hard", apply: func(acc *interval.Multi, iv interval.Interval) *interval.Multi {
		return acc.AddHard(iv)
	}},
	"soft": {name: "add-soft", apply: func(acc *interval.Multi, iv interval.Interval) *interval.Multi {
		return acc.AddSoft(iv)
	}},
	"-": {name: "subtract", apply: func(acc *interval.Multi, iv interval.Interval) *interval.Multi {
		return acc.Subtract(iv)
	}},
	"&": {name: "intersect", apply: func(acc *interval.Multi, iv interval.Interval) *interval.Multi {
		return acc.Intersect(iv)
	}},
	"ext": {name: "exterior", unary: true, apply: func(acc *interval.Multi, _ interval.Interval) *interval.Multi {
		return acc.Exterior()
	}},
	"norm": {name: "normalize", unary: true, apply: func(acc *interval.Multi, _ interval.Interval) *interval.Multi {
		return acc.Normalize()
	}},
}

type step struct {
	op      operator
	operand interval.Interval
}

// pipeline is an interval expression, evaluated left to right:
//
//	[0, 10] - [3, 5] | (20, 30) ext
type pipeline struct {
	initial interval.Interval
	steps   []step
}

// newPipeline parses the command line arguments of an interval expression.
func newPipeline(args []string) (pipeline, error) {
	var pl pipeline
	if len(args) == 0 {
		return pl, errors.Wrap(ErrExpression, "no intervals given")
	}

	var err error
	if pl.initial, err = interval.Parse(args[0]); err != nil {
		return pl, err
	}

	for i := 1; i < len(args); i++ {
		op, found := operators[args[i]]
		if !found {
			return pl, errors.Wrapf(ErrExpression, "unknown operator %q at position %d", args[i], i)
		}
		s := step{op: op}
		if !op.unary {
			if i++; i == len(args) {
				return pl, errors.Wrapf(ErrExpression, "operator %q is missing an operand", args[i-1])
			}
			if s.operand, err = interval.Parse(args[i]); err != nil {
				return pl, err
			}
		}
		pl.steps = append(pl.steps, s)
	}
	return pl, nil
}

// evaluate folds every step of the expression into a fresh Multi.
func (pl pipeline) evaluate() *interval.Multi {
	acc := interval.NewMulti(pl.initial)
	for _, s := range pl.steps {
		acc = s.op.apply(acc, s.operand)
		opts.OnVerbose(func() {
			if s.op.unary {
				log.Printf("%s: %s\n", s.op.name, acc)
			} else {
				log.Printf("%s %s: %s\n", s.op.name, s.operand, acc)
			}
		})
	}
	return acc
}

func (pl pipeline) String() string {
	str := pl.initial.String()
	for _, s := range pl.steps {
		str += " " + s.op.name
		if !s.op.unary {
			str += fmt.Sprintf(" %s", s.operand)
		}
	}
	return str
}
