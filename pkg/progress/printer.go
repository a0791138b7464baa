package progress

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"

	"github.com/moyu-x/filehasher/pkg/locale"
	"github.com/moyu-x/filehasher/pkg/result"
)

const Title = `
  ___ _ _     _  _         _
 | __(_) |___| || |__ _ __| |_  ___ _ _
 | _|| | / -_) __ / _` + "`" + ` (_-< ' \/ -_) '_|
 |_| |_|_\___|_||_\__,_/__/_||_\___|_|
`

const clearScreen = "\033[H\033[J"

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	captionStyle = lipgloss.NewStyle().Bold(true)
)

// Printer renders result snapshots as a caption table.
// Snapshots arrive through Notify from the scan workers and are drawn by a single
// goroutine, so a slow terminal never holds up hashing.
type Printer struct {
	out        io.Writer
	text       locale.Text
	tty        bool
	maxCaption int

	mu      sync.Mutex
	updates chan result.Snapshot
	done    chan struct{}
	started bool
}

// NewPrinter creates a printer writing to out. Terminal output gets the screen
// cleared before every table and styled captions.
func NewPrinter(out io.Writer, text locale.Text) *Printer {
	p := &Printer{
		out:     out,
		text:    text,
		updates: make(chan result.Snapshot, 1),
		done:    make(chan struct{}),
	}

	if f, ok := out.(*os.File); ok {
		p.tty = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}

	for _, key := range locale.SummaryKeys {
		if w := lipgloss.Width(text.CLI.Get(key)); w > p.maxCaption {
			p.maxCaption = w
		}
	}

	return p
}

// Start launches the render goroutine.
func (p *Printer) Start() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.started {
		return
	}
	p.started = true

	go func() {
		defer close(p.done)
		for snap := range p.updates {
			p.Render(snap)
		}
	}()
}

// Notify queues a snapshot for rendering. When a snapshot is already waiting the
// new one is dropped.
func (p *Printer) Notify(snap result.Snapshot) {
	select {
	case p.updates <- snap:
	default:
	}
}

// Close stops the render goroutine after the pending snapshot is drawn.
func (p *Printer) Close() {
	p.mu.Lock()
	started := p.started
	p.mu.Unlock()

	close(p.updates)
	if started {
		<-p.done
	}
}

// Render writes the title and the summary table for snap.
func (p *Printer) Render(snap result.Snapshot) {
	var b strings.Builder

	title := Title
	if p.tty {
		b.WriteString(clearScreen)
		title = titleStyle.Render(Title)
	}
	b.WriteString(title)
	b.WriteString("\n")

	rows := []struct {
		key   string
		value string
	}{
		{"total_files", humanize.Comma(snap.TotalFiles)},
		{"total_size", snap.HRTotalSize()},
		{"dup_files", humanize.Comma(int64(snap.RedundancyFiles))},
		{"dup_size", snap.HRRedundancySize()},
		{"dup_percent", snap.RedundancyPercent()},
		{"time_passed", snap.HRElapsed()},
	}

	for _, row := range rows {
		caption := p.text.CLI.Get(row.key)
		pad := strings.Repeat(" ", p.maxCaption-lipgloss.Width(caption))
		if p.tty {
			caption = captionStyle.Render(caption)
		}
		fmt.Fprintf(&b, " %s%s: %s\n", caption, pad, row.value)
	}

	io.WriteString(p.out, b.String())
}

// Done prints the closing lines with the report location.
func (p *Printer) Done(reportPath string) {
	fmt.Fprintf(p.out, "\n %s!\n", p.text.CLI.Get("done"))
	if reportPath != "" {
		fmt.Fprintf(p.out, " %s %s\n", p.text.CLI.Get("report_created"), reportPath)
	}
}
