package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"go.trai.ch/stale/internal/core/domain"
	"go.trai.ch/stale/internal/ui/output"
	"go.trai.ch/stale/internal/ui/style"
)

const timeLayout = "2006-01-02 15:04:05.000"

type printer struct {
	w    io.Writer
	out  *termenv.Output
	json bool
}

func (c *CLI) printer(cmd *cobra.Command) printer {
	w := cmd.OutOrStdout()
	return printer{w: w, out: output.New(w), json: c.jsonOutput}
}

type changeJSON struct {
	Dir        string    `json:"dir"`
	Name       string    `json:"name"`
	Path       string    `json:"path"`
	Package    string    `json:"package"`
	UUID       string    `json:"uuid"`
	ModTime    time.Time `json:"mtime"`
	Checkpoint time.Time `json:"checkpoint"`
	Relocated  bool      `json:"relocated"`
}

func toJSON(ch domain.ChangedFile) changeJSON {
	return changeJSON{
		Dir:        ch.Dir,
		Name:       ch.Name,
		Path:       ch.Path,
		Package:    ch.Package.Name(),
		UUID:       ch.Package.UUID().String(),
		ModTime:    ch.ModTime.Time(),
		Checkpoint: ch.Checkpoint.Time(),
		Relocated:  ch.Relocated(),
	}
}

// report writes the result of a one-shot check.
func (p printer) report(changes []domain.ChangedFile) error {
	if p.json {
		docs := make([]changeJSON, 0, len(changes))
		for _, ch := range changes {
			docs = append(docs, toJSON(ch))
		}
		return json.NewEncoder(p.w).Encode(docs)
	}

	if len(changes) == 0 {
		_, err := fmt.Fprintln(p.w, p.paint(style.Check+" no stale files", style.Green))
		return err
	}

	table := tablewriter.NewWriter(p.w)
	table.SetHeader([]string{"Status", "File", "Package", "Modified"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	for _, ch := range changes {
		table.Append(p.row(ch))
	}
	table.Render()

	_, err := fmt.Fprintln(p.w, p.paint(strconv.Itoa(len(changes))+" stale", style.Yellow))
	return err
}

// stream writes one line per change as the watch loop finds them.
func (p printer) stream(changes []domain.ChangedFile) error {
	if p.json {
		enc := json.NewEncoder(p.w)
		for _, ch := range changes {
			if err := enc.Encode(toJSON(ch)); err != nil {
				return err
			}
		}
		return nil
	}

	for _, ch := range changes {
		row := p.row(ch)
		if _, err := fmt.Fprintf(p.w, "%s %s %s\n", row[0], row[1], p.paint("("+row[2]+")", style.Slate)); err != nil {
			return err
		}
	}
	return nil
}

func (p printer) row(ch domain.ChangedFile) []string {
	status := p.paint(style.Tilde+" changed", style.Yellow)
	file := ch.Path
	if ch.Relocated() {
		status = p.paint(style.Arrow+" relocated", style.Iris)
		file = ch.Nominal() + " " + style.Arrow + " " + ch.Path
	}
	return []string{status, file, ch.Package.Name(), ch.ModTime.Time().Format(timeLayout)}
}

func (p printer) paint(s string, c lipgloss.Color) string {
	return output.Paint(p.out, s, termenv.RGBColor(string(c)))
}
