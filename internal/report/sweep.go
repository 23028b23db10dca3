package report

import (
	"io"
	"strconv"

	"github.com/born-ml/gates/internal/optim"
	"github.com/born-ml/gates/internal/sweep"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// SweepTable writes one row per sweep outcome.
func SweepTable(w io.Writer, outcomes []sweep.Outcome) error {
	s := newStyles(w)

	rows := make([][]string, len(outcomes))
	for i, o := range outcomes {
		converged := s.warning.Render("NO")
		if o.Result.Converged {
			converged = s.success.Render("YES")
		}
		rows[i] = []string{
			o.Job.Name,
			o.Job.ID.String()[:8],
			o.Job.Dataset.Name(),
			modeName(o.Job.Config.Mode),
			strconv.Itoa(o.Result.Epochs),
			strconv.FormatFloat(o.Result.MAE, 'f', 6, 64),
			converged,
			FormatVector(o.Result.Weights, 3),
			strconv.FormatFloat(o.Result.Bias, 'f', 3, 64),
		}
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(s.border).
		Headers("Run", "ID", "Dataset", "Mode", "Epochs", "Error", "Converged", "Weights", "Bias").
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return s.header
			}
			return s.cell
		})

	_, err := io.WriteString(w, t.String()+"\n")
	return err
}

func modeName(m optim.Mode) string {
	if m == "" {
		return string(optim.ModeBatch)
	}
	return string(m)
}
