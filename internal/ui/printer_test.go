package ui

import (
	"bytes"
	"fmt"
	"testing"

	"extrenamer/internal/config"
	"extrenamer/pkg/testutils"

	"github.com/stretchr/testify/assert"
)

func TestPrinterTranscript(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, config.New())

	p.PreviewHeader()
	p.PreviewItem("movie.avi", "movie.dat")
	p.PreviewTotal(1)
	p.ProcessedHeader()
	p.Renamed("movie.avi", "movie.dat")
	p.Failed("b.avi", fmt.Errorf("destination already exists: b.dat"))
	p.Totals(1, 1)

	want := "Matched files:\n" +
		"movie.avi rename to movie.dat\n" +
		" ----- \n" +
		"Total files found: 1\n" +
		"Processed files:\n" +
		"movie.avi renamed to movie.dat\n" +
		"** ERROR: b.avi - destination already exists: b.dat\n" +
		" ----- \n" +
		"Total files renamed: 1\n" +
		"Errors: 1\n"
	assert.Equal(t, want, testutils.StripANSI(buf.String()))
}

func TestPrinterBannerAndPrompt(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, config.New())

	p.Banner("Welcome")
	out := testutils.StripANSI(buf.String())
	assert.Contains(t, out, "Welcome")
	assert.Contains(t, out, "╭")
	buf.Reset()

	p.Prompt("Enter: ")
	assert.Equal(t, "Enter: ", buf.String())
	buf.Reset()

	p.WorkingDir("/tmp/files")
	assert.Equal(t, "Working directory - /tmp/files\n\n", testutils.StripANSI(buf.String()))
	assert.Same(t, &buf, p.Writer())
}

func TestFileNamesAreVerbatim(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, config.New())

	p.PreviewItem("tab\tname", "tab\tname.dat")
	assert.Equal(t, "tab\tname rename to tab\tname.dat\n", buf.String())
}
