package jobs

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

var (
	runningLabel  = color.New(color.FgGreen, color.Bold)
	finishedLabel = color.New(color.FgBlue, color.Bold)
)

// WriteReport prints the running and finished sections of report to w. A
// section with no jobs is left out.
func WriteReport(w io.Writer, report Report, colored bool) error {
	if err := writeSection(w, "Running:", runningLabel, report.Running, colored); err != nil {
		return err
	}
	return writeSection(w, "Finished:", finishedLabel, report.Finished, colored)
}

func writeSection(w io.Writer, label string, c *color.Color, jobs []Job, colored bool) error {
	if len(jobs) == 0 {
		return nil
	}

	if colored {
		label = c.Sprint(label)
	}
	if _, err := fmt.Fprintln(w, label); err != nil {
		return err
	}

	for _, job := range jobs {
		if _, err := fmt.Fprintf(w, "\t[%d]%s (Pid=%d)\n", job.ID, job.Command, job.PID); err != nil {
			return err
		}
	}
	return nil
}
