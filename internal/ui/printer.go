package ui

import (
	"fmt"
	"io"

	"extrenamer/internal/config"

	"github.com/charmbracelet/lipgloss"
)

// Styles are the lipgloss styles of one printer, bound to its renderer.
type Styles struct {
	Banner  lipgloss.Style
	Header  lipgloss.Style
	Info    lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
}

// NewStyles builds styles from the theme colors. The renderer decides the
// color profile, so output to a pipe or buffer stays plain text.
func NewStyles(r *lipgloss.Renderer, cfg *config.Config) Styles {
	return Styles{
		Banner: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(cfg.Theme.Border)).
			Foreground(lipgloss.Color(cfg.Theme.Primary)).
			Padding(0, 1),
		Header: r.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(cfg.Theme.Primary)),
		Info: r.NewStyle().
			Foreground(lipgloss.Color(cfg.Theme.Info)),
		Success: r.NewStyle().
			Foreground(lipgloss.Color(cfg.Theme.Success)),
		Warning: r.NewStyle().
			Foreground(lipgloss.Color(cfg.Theme.Warning)),
		Error: r.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(cfg.Theme.Error)),
	}
}

// Printer writes the user-facing transcript of a run. Only fixed labels are
// styled; file names are written verbatim.
type Printer struct {
	w      io.Writer
	styles Styles
}

// NewPrinter creates a Printer writing to w.
func NewPrinter(w io.Writer, cfg *config.Config) *Printer {
	return &Printer{
		w:      w,
		styles: NewStyles(lipgloss.NewRenderer(w), cfg),
	}
}

// Writer returns the underlying writer.
func (p *Printer) Writer() io.Writer {
	return p.w
}

// Banner prints text inside a rounded frame.
func (p *Printer) Banner(text string) {
	fmt.Fprintln(p.w, p.styles.Banner.Render(text))
}

// Println prints an unstyled line.
func (p *Printer) Println(text string) {
	fmt.Fprintln(p.w, text)
}

// Prompt prints a prompt without a trailing newline.
func (p *Printer) Prompt(text string) {
	fmt.Fprint(p.w, text)
}

// WorkingDir prints the directory the run operates on, then a blank line.
func (p *Printer) WorkingDir(dir string) {
	fmt.Fprintf(p.w, "%s %s\n\n", p.styles.Info.Render("Working directory -"), dir)
}

// PreviewHeader starts the list of matched files.
func (p *Printer) PreviewHeader() {
	fmt.Fprintln(p.w, p.styles.Header.Render("Matched files:"))
}

// PreviewItem prints one planned rename.
func (p *Printer) PreviewItem(oldName, newName string) {
	fmt.Fprintf(p.w, "%s rename to %s\n", oldName, newName)
}

// PreviewTotal closes the preview with the number of matched files.
func (p *Printer) PreviewTotal(n int) {
	fmt.Fprintln(p.w, " ----- ")
	fmt.Fprintf(p.w, "%s %d\n", p.styles.Info.Render("Total files found:"), n)
}

// ProcessedHeader starts the list of executed renames.
func (p *Printer) ProcessedHeader() {
	fmt.Fprintln(p.w, p.styles.Header.Render("Processed files:"))
}

// Renamed reports a successful rename.
func (p *Printer) Renamed(oldName, newName string) {
	fmt.Fprintf(p.w, "%s %s %s\n", oldName, p.styles.Success.Render("renamed to"), newName)
}

// Failed reports a rename that did not happen.
func (p *Printer) Failed(name string, err error) {
	fmt.Fprintf(p.w, "%s %s - %v\n", p.styles.Error.Render("** ERROR:"), name, err)
}

// Totals closes the run with the renamed and error counts.
func (p *Printer) Totals(renamed, errs int) {
	errStyle := p.styles.Info
	if errs > 0 {
		errStyle = p.styles.Warning
	}
	fmt.Fprintln(p.w, " ----- ")
	fmt.Fprintf(p.w, "%s %d\n", p.styles.Info.Render("Total files renamed:"), renamed)
	fmt.Fprintf(p.w, "%s %d\n", errStyle.Render("Errors:"), errs)
}
