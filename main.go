package main

import (
	"flag"
	"log"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/fatih/color"

	"github.com/dot5enko/tabsum/dataset"
	"github.com/dot5enko/tabsum/report"
	"github.com/dot5enko/tabsum/summary"
)

func main() {

	dump := flag.Bool("dump", false, "spew-dump the raw table before the report")
	noColor := flag.Bool("no-color", false, "disable colored section headings")
	flag.Parse()

	if *noColor {
		color.NoColor = true
	}

	table, tableErr := dataset.Employees()
	if tableErr != nil {
		log.Fatalf("dataset is broken: %s", tableErr.Error())
	}

	if *dump {
		spew.Dump(table)
	}

	rep, describeErr := summary.Describe(table, dataset.Categories())
	if describeErr != nil {
		log.Fatalf("unable to describe table: %s", describeErr.Error())
	}

	if renderErr := report.Render(os.Stdout, rep); renderErr != nil {
		log.Fatalf("unable to render report: %s", renderErr.Error())
	}
}
