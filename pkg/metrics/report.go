package metrics

import (
	"bytes"
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
)

// WriteReport renders event counts and phase timings as a table
func WriteReport(w io.Writer, counters *Counters, timers *Timers) error {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Metric", "Value"})

	if counters != nil {
		for e := Event(0); e < numEvents; e++ {
			table.Append([]string{e.String(), fmt.Sprintf("%d", counters.Count(e))})
		}
	}

	var total float64
	if timers != nil {
		for _, timer := range timers.Timers() {
			secs := timer.Elapsed().Seconds()
			total += secs
			table.Append([]string{timer.Name, fmt.Sprintf("%.2f secs", secs)})
		}
	}
	table.SetFooter([]string{"TOTAL", fmt.Sprintf("%.2f secs", total)})
	table.Render()

	_, err := io.Copy(w, &buf)
	return err
}
