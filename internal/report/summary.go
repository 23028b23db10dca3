package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/born-ml/gates/internal/dataset"
	"github.com/born-ml/gates/internal/trainer"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// Palette
var (
	colorAccent  = lipgloss.Color("#20B9B4")
	colorSuccess = lipgloss.Color("#2CD7C7")
	colorWarning = lipgloss.Color("#F4D03F")
	colorBorder  = lipgloss.Color("#16858E")
)

// styles binds the palette to a renderer so color output follows the
// capabilities of the destination writer.
type styles struct {
	title   lipgloss.Style
	success lipgloss.Style
	warning lipgloss.Style
	header  lipgloss.Style
	cell    lipgloss.Style
	border  lipgloss.Style
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		title:   r.NewStyle().Bold(true).Foreground(colorAccent),
		success: r.NewStyle().Foreground(colorSuccess),
		warning: r.NewStyle().Foreground(colorWarning),
		header:  r.NewStyle().Bold(true).Padding(0, 1),
		cell:    r.NewStyle().Padding(0, 1),
		border:  r.NewStyle().Foreground(colorBorder),
	}
}

// Summary writes the final report of a run: final error, convergence,
// per-example predictions against the expected labels, and the learned
// parameters.
func Summary(w io.Writer, ds *dataset.Dataset, res *trainer.Result) error {
	s := newStyles(w)

	var b strings.Builder
	b.WriteString(s.title.Render("Final Results:"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "Final error: %.6f\n", res.MAE)
	if res.Converged {
		b.WriteString(s.success.Render(fmt.Sprintf("Converged after %d iterations!", res.Epochs-1)))
	} else {
		b.WriteString(s.warning.Render(fmt.Sprintf("Did not converge within %d iterations", res.Epochs)))
	}
	b.WriteString("\n\n")

	b.WriteString(s.title.Render("Predictions vs Expected:"))
	b.WriteString("\n")
	b.WriteString(predictionTable(s, ds, res))
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "Final weights: %s\n", FormatVector(res.Weights, 4))
	fmt.Fprintf(&b, "Final bias: %.4f\n", res.Bias)

	_, err := io.WriteString(w, b.String())
	return err
}

// predictionTable renders input, probability, thresholded class and
// expected label per example.
func predictionTable(s styles, ds *dataset.Dataset, res *trainer.Result) string {
	classes := res.Predictions(0.5)

	rows := make([][]string, ds.Len())
	for i := range ds.Len() {
		rows[i] = []string{
			FormatVector(ds.Input(i), -1),
			strconv.FormatFloat(res.Outputs[i], 'f', 4, 64),
			strconv.Itoa(classes[i]),
			strconv.FormatFloat(ds.Label(i), 'f', -1, 64),
		}
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(s.border).
		Headers("Input", "Predicted", "Class", "Expected").
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return s.header
			}
			return s.cell
		})

	return t.String()
}

// FormatVector formats values as "[a b c]" with the given precision
// (-1 for the shortest representation).
func FormatVector(v []float64, prec int) string {
	parts := make([]string, len(v))
	for i, x := range v {
		parts[i] = strconv.FormatFloat(x, 'f', prec, 64)
	}
	return "[" + strings.Join(parts, " ") + "]"
}
