package responses

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
)

// WriteReport prints the per-process table followed by the averages.
// Per-process metrics are printed as exact integers and averages rounded to
// two decimals, not as single-precision float text such as 8.0 or 7.3333335.
func WriteReport(w io.Writer, response ScheduleResponse) error {
	if _, err := fmt.Fprintln(w, "Process\tTurnaround Time\tWaiting Time\tResponse Time"); err != nil {
		return errors.Wrap(err, "write report header")
	}
	for _, d := range response.Details {
		if _, err := fmt.Fprintf(w, "%d\t\t%d\t\t\t%d\t\t\t%d\n",
			d.ProcessId, d.TurnAroundTime, d.WaitingTime, d.ResponseTime); err != nil {
			return errors.Wrapf(err, "write report row for pid %d", d.ProcessId)
		}
	}
	_, err := fmt.Fprintf(w, "\nAverage Turnaround Time: %.2f\nAverage Waiting Time: %.2f\nAverage Response Time: %.2f\n",
		response.AverageTurnAroundTime, response.AverageWaitingTime, response.AverageResponseTime)
	return errors.Wrap(err, "write report averages")
}
