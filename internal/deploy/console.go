package deploy

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/microscalper/scdeploy/internal/models"

	"github.com/muesli/termenv"
)

// Console renders a run as plain sequential terminal output, the shape the
// original deploy script printed: banner, each step's git output, closing
// banner, then a blocking wait for a keypress.
type Console struct {
	In     io.Reader
	Out    io.Writer
	output *termenv.Output
}

// NewConsole creates a Console writing to out and reading the final
// keypress from in
func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{
		In:     in,
		Out:    out,
		output: termenv.NewOutput(out),
	}
}

// Run drives the full sequence through the runner and blocks on a final
// keypress before returning. The summary is returned for history recording.
func (c *Console) Run(runner *Runner) models.RunSummary {
	c.printBanner()

	total := len(runner.Steps())
	summary := runner.Run(func(e Event) {
		if e.Result == nil {
			c.printStepHeader(e.Step, total, e.Kind)
			return
		}
		c.printStepResult(*e.Result)
	})

	c.printSuccess()
	c.waitForKeypress()

	return summary
}

func (c *Console) printBanner() {
	line := strings.Repeat("=", 60)
	banner := c.output.String(StartBanner).Bold().Foreground(termenv.ANSICyan)
	fmt.Fprintf(c.Out, "\n%s\n%s\n%s\n\n", line, banner, line)
}

func (c *Console) printStepHeader(index, total int, kind models.StepKind) {
	header := fmt.Sprintf("[%d/%d] %s", index+1, total, kind.Display())
	fmt.Fprintln(c.Out, c.output.String(header).Bold().Foreground(termenv.ANSIYellow))
	fmt.Fprintln(c.Out, c.output.String("      $ "+kind.Command()).Faint())
}

func (c *Console) printStepResult(result models.StepResult) {
	if result.Output != "" {
		for _, line := range strings.Split(result.Output, "\n") {
			fmt.Fprintln(c.Out, "      "+line)
		}
	}
	if result.Failed {
		// Recorded only; the sequence and the closing banner are unaffected
		fmt.Fprintln(c.Out, c.output.String("      (command failed, continuing)").Foreground(termenv.ANSIRed))
	}
	fmt.Fprintln(c.Out)
}

func (c *Console) printSuccess() {
	line := strings.Repeat("=", 60)
	fmt.Fprintln(c.Out, line)
	fmt.Fprintln(c.Out, c.output.String(SuccessMessage).Bold().Foreground(termenv.ANSIGreen))
	fmt.Fprintln(c.Out, c.output.String("Dashboard: "+DashboardURL).Foreground(termenv.ANSICyan))
	fmt.Fprintln(c.Out, line)
}

func (c *Console) waitForKeypress() {
	fmt.Fprint(c.Out, "\nPress Enter to exit...")
	reader := bufio.NewReader(c.In)
	_, _ = reader.ReadString('\n')
}
