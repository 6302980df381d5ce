package bootstrapservice

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/nbstrap/nbstrap/internal/utils/strutils"
)

var (
	bannerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	successStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	failStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
)

const bannerWidth = 60

// Reporter prints the pipeline's user-facing status lines and banners.
type Reporter struct {
	Out io.Writer
}

// NewReporter returns a Reporter writing to stdout.
func NewReporter() *Reporter {
	return &Reporter{Out: os.Stdout}
}

func (r *Reporter) writer() io.Writer {
	if r.Out != nil {
		return r.Out
	}
	return os.Stdout
}

// Banner prints a visually separated banner naming the step about to run.
func (r *Reporter) Banner(title string) {
	rule := strings.Repeat("=", bannerWidth)
	fmt.Fprintln(r.writer(), bannerStyle.Render(rule))
	fmt.Fprintln(r.writer(), bannerStyle.Render("  "+strutils.ToTitleCase(title)))
	fmt.Fprintln(r.writer(), bannerStyle.Render(rule))
}

func (r *Reporter) Infof(format string, args ...any) {
	fmt.Fprintf(r.writer(), format+"\n", args...)
}

func (r *Reporter) Warnf(format string, args ...any) {
	fmt.Fprintln(r.writer(), warnStyle.Render(fmt.Sprintf("[!] "+format, args...)))
}

func (r *Reporter) Successf(format string, args ...any) {
	fmt.Fprintln(r.writer(), successStyle.Render(fmt.Sprintf(format, args...)))
}

func (r *Reporter) Failf(format string, args ...any) {
	fmt.Fprintln(r.writer(), failStyle.Render(fmt.Sprintf(format, args...)))
}

// ActivationHint returns the exact command the user runs to activate the
// virtual environment and start the notebook server.
func ActivationHint(venvDir string) string {
	return fmt.Sprintf("source %s/bin/activate && jupyter notebook", venvDir)
}

// FinishVenv prints the final banner for the venv variant, including the
// activation hint for the environment that was just created or reused.
func (r *Reporter) FinishVenv(venvDir string) {
	r.Banner("bootstrap complete")
	r.Infof("To start using Jupyter Notebook, run:")
	r.Infof("  %s", ActivationHint(venvDir))
}

// FinishSystem prints the final banner for the system-pip variant.
func (r *Reporter) FinishSystem(pkg string) {
	r.Banner("bootstrap complete")
	r.Infof("Installed %s. Run 'jupyter notebook' to start the server.", pkg)
}
