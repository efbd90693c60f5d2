package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/clustergen/internal/cluster"
)

func printSummary(w io.Writer, res *cluster.Result) {
	r := lipgloss.NewRenderer(w)
	headerStyle := r.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("15"))
	strandStyle := r.NewStyle().
		Foreground(lipgloss.Color("14"))
	numberStyle := r.NewStyle().
		Foreground(lipgloss.Color("12"))

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	headers := []string{"Cluster", "Centroid", "Intensity", "P(mutate)", "Mean dist", "Std dev"}
	for i, h := range headers {
		if i > 0 {
			fmt.Fprint(tw, "\t")
		}
		fmt.Fprint(tw, headerStyle.Render(h))
	}
	fmt.Fprintln(tw)
	for _, c := range res.Clusters {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n",
			c.Index,
			strandStyle.Render(c.Centroid.String()),
			numberStyle.Render(fmt.Sprintf("%.2f", c.Intensity)),
			numberStyle.Render(fmt.Sprintf("%.3f", c.Probability)),
			numberStyle.Render(fmt.Sprintf("%.2f", c.Divergence.Mean())),
			numberStyle.Render(fmt.Sprintf("%.2f", c.Divergence.StdDev())))
	}
	tw.Flush()

	fmt.Fprintf(w, "\n%d rows in %d clusters, %d centroid candidates rejected, %s\n",
		res.Rows, len(res.Clusters), res.Rejected, res.Elapsed)
}
