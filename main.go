package main

import (
	"flag"
	"log"
	"os"

	"github.com/cs-au-dk/intervals/utils"
)

var (
	opts = utils.Opts()
	task = opts.Task()
)

func main() {
	utils.ParseArgs()

	pl, err := newPipeline(flag.Args())
	if err != nil {
		log.Println("Failed to parse the interval expression")
		log.Fatalln(err)
	}

	opts.OnVerbose(func() {
		log.Println("Evaluating", pl)
	})
	m := pl.evaluate()

	if err := runTask(os.Stdout, m); err != nil {
		log.Fatalln(err)
	}
	gatherMetrics(os.Stdout, m)
}
