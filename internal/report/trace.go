// Package report renders training progress and results for humans.
//
// The trainer produces IterationRecord values and a Result; everything
// about how they are shown lives here.
package report

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/born-ml/gates/internal/trainer"
)

// Trace writes one tab-separated line per record:
//
//	Epoch	Error		Converged?
//	----------------------------------------
//	   0	0.213563	NO
type Trace struct {
	w      io.Writer
	header bool
}

// NewTrace creates a trace writer. The header is written before the
// first record.
func NewTrace(w io.Writer) *Trace {
	return &Trace{w: w}
}

// Observe implements trainer.Observer.
func (t *Trace) Observe(r trainer.IterationRecord) {
	if !t.header {
		fmt.Fprintln(t.w, "Epoch\tError\t\tConverged?")
		fmt.Fprintln(t.w, "----------------------------------------")
		t.header = true
	}
	fmt.Fprintln(t.w, FormatRecord(r))
}

// FormatRecord formats a record as "epoch<TAB>error<TAB>YES|NO".
func FormatRecord(r trainer.IterationRecord) string {
	return fmt.Sprintf("%4d\t%.6f\t%s", r.Epoch, r.MAE, yesNo(r.Converged))
}

func yesNo(b bool) string {
	if b {
		return "YES"
	}
	return "NO"
}

// Logger emits every record through slog at debug level.
type Logger struct {
	log *slog.Logger
}

// NewLogger creates a record logger. A nil logger uses slog.Default.
func NewLogger(log *slog.Logger) *Logger {
	if log == nil {
		log = slog.Default()
	}
	return &Logger{log: log}
}

// Observe implements trainer.Observer.
func (l *Logger) Observe(r trainer.IterationRecord) {
	l.log.Debug("epoch",
		"epoch", r.Epoch,
		"mae", r.MAE,
		"converged", r.Converged,
	)
}
