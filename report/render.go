package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"

	"github.com/dot5enko/tabsum/schema"
	"github.com/dot5enko/tabsum/summary"
)

var heading = color.New(color.FgCyan, color.Bold)

// Render writes the human-readable report: column kinds, the category
// partition, a numeric statistics block, one frequency table per
// categorical column and a closing markdown summary table. Output is
// deterministic for a given report.
func Render(w io.Writer, rep *summary.TableReport) error {

	heading.Fprintf(w, "table '%s' (%s)\n", rep.Table, rep.Uid)
	fmt.Fprintf(w, "%d rows, %d columns\n\n", rep.Rows, len(rep.Columns))

	if err := renderKinds(w, rep); err != nil {
		return err
	}

	renderPartition(w, rep)

	if err := renderNumericBlock(w, rep); err != nil {
		return err
	}

	renderFrequencies(w, rep)

	renderMarkdownSummary(w, rep)

	return nil
}

func renderKinds(w io.Writer, rep *summary.TableReport) error {

	heading.Fprintln(w, "column kinds")

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, col := range rep.Columns {
		fmt.Fprintf(tw, "  %s\t%s\n", col.Name, col.Kind)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintln(w)
	return nil
}

func renderPartition(w io.Writer, rep *summary.TableReport) {

	heading.Fprintln(w, "classification")

	p := rep.Partition
	fmt.Fprintf(w, "  Discrete    : %s\n", joinOrNone(p.Discrete))
	fmt.Fprintf(w, "  Continuous  : %s\n", joinOrNone(p.Continuous))
	fmt.Fprintf(w, "  Categorical : %s\n", joinOrNone(p.Categorical))

	nominal, ordinal := []string{}, []string{}
	for _, col := range rep.Columns {
		switch col.Category {
		case schema.Nominal:
			nominal = append(nominal, col.Name)
		case schema.Ordinal:
			ordinal = append(ordinal, col.Name)
		}
	}
	fmt.Fprintf(w, "      Nominal : %s\n", joinOrNone(nominal))
	fmt.Fprintf(w, "      Ordinal : %s\n", joinOrNone(ordinal))
	fmt.Fprintln(w)
}

func renderNumericBlock(w io.Writer, rep *summary.TableReport) error {

	heading.Fprintln(w, "numeric statistics (std is sample, n-1)")

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "  column\tcount\tmin\tmax\tmean\tmedian\tstd")

	for _, col := range rep.Columns {
		if col.Numeric == nil {
			continue
		}
		n := col.Numeric
		fmt.Fprintf(tw, "  %s\t%d\t%.2f\t%.2f\t%.2f\t%.2f\t%.2f\n",
			col.Name, n.Count, n.Min, n.Max, n.Mean, n.Median, n.Std)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintln(w)
	return nil
}

func renderFrequencies(w io.Writer, rep *summary.TableReport) {

	for _, col := range rep.Columns {
		if col.Values == nil {
			continue
		}
		v := col.Values

		heading.Fprintf(w, "frequency: %s", col.Name)
		fmt.Fprintf(w, " (%d unique", v.UniqueCount)
		if len(v.Scale) > 0 {
			fmt.Fprintf(w, ", scale: %s", strings.Join(v.Scale, " < "))
		}
		fmt.Fprintln(w, ")")

		for _, vc := range v.Counts {
			percent := float64(vc.Count) / float64(rep.Rows) * 100
			fmt.Fprintf(w, "  %-16s %3d  %5.1f%%\n", vc.Value, vc.Count, percent)
		}
		fmt.Fprintln(w)
	}
}

func renderMarkdownSummary(w io.Writer, rep *summary.TableReport) {

	heading.Fprintln(w, "summary")

	fmt.Fprintln(w, "| column | kind | category | highlight |")
	fmt.Fprintln(w, "|--------|------|----------|-----------|")

	for _, col := range rep.Columns {
		fmt.Fprintf(w, "| %s | %s | %s | %s |\n",
			col.Name, col.Kind, col.Category, highlight(&col))
	}
}

func highlight(col *summary.ColumnReport) string {
	if col.Numeric != nil {
		return fmt.Sprintf("mean %.2f", col.Numeric.Mean)
	}
	if len(col.Values.Counts) == 0 {
		return "no values"
	}
	top := col.Values.Counts[0]
	return fmt.Sprintf("top %s (%d)", top.Value, top.Count)
}

func joinOrNone(names []string) string {
	if len(names) == 0 {
		return "(none)"
	}
	return strings.Join(names, ", ")
}
