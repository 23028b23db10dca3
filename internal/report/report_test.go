package report

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/born-ml/gates/internal/dataset"
	"github.com/born-ml/gates/internal/nn"
	"github.com/born-ml/gates/internal/optim"
	"github.com/born-ml/gates/internal/parallel"
	"github.com/born-ml/gates/internal/sweep"
	"github.com/born-ml/gates/internal/trainer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func andConfig() trainer.Config {
	return trainer.Config{
		LearningRate:         1,
		MaxIterations:        500,
		ConvergenceThreshold: 0.01,
		ReportInterval:       25,
		Mode:                 optim.ModePerExample,
		Init:                 nn.Fixed{Weights: []float64{2, 2}, Bias: -3},
	}
}

func TestFormatRecord(t *testing.T) {
	assert.Equal(t, "   0\t0.213563\tNO", FormatRecord(trainer.IterationRecord{Epoch: 0, MAE: 0.2135625343}))
	assert.Equal(t, " 419\t0.009999\tYES", FormatRecord(trainer.IterationRecord{Epoch: 419, MAE: 0.009999, Converged: true}))
}

func TestTrace_HeaderOnce(t *testing.T) {
	var buf bytes.Buffer
	tr := NewTrace(&buf)

	tr.Observe(trainer.IterationRecord{Epoch: 0, MAE: 0.5})
	tr.Observe(trainer.IterationRecord{Epoch: 25, MAE: 0.25})

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "Epoch\tError\t\tConverged?", lines[0])
	assert.Equal(t, strings.Repeat("-", 40), lines[1])
	assert.Equal(t, "   0\t0.500000\tNO", lines[2])
	assert.Equal(t, "  25\t0.250000\tNO", lines[3])
}

func TestTrace_FollowsRun(t *testing.T) {
	var buf bytes.Buffer
	res, err := trainer.Run(dataset.And(), andConfig(), NewTrace(&buf))
	require.NoError(t, err)
	require.True(t, res.Converged)

	out := buf.String()
	assert.Contains(t, out, "   0\t0.213563\tNO\n")
	assert.True(t, strings.HasSuffix(out, "YES\n"))
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	NewLogger(log).Observe(trainer.IterationRecord{Epoch: 3, MAE: 0.125, Converged: true})

	out := buf.String()
	assert.Contains(t, out, "msg=epoch")
	assert.Contains(t, out, "epoch=3")
	assert.Contains(t, out, "mae=0.125")
	assert.Contains(t, out, "converged=true")
}

func TestLogger_DefaultLevelHidesRecords(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))

	NewLogger(log).Observe(trainer.IterationRecord{Epoch: 1})
	assert.Empty(t, buf.String())
}

func TestSummary_Converged(t *testing.T) {
	ds := dataset.And()
	res, err := trainer.Run(ds, andConfig())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Summary(&buf, ds, res))

	out := buf.String()
	assert.Contains(t, out, "Final Results:")
	assert.Contains(t, out, "Final error: ")
	assert.Contains(t, out, "Converged after 419 iterations!")
	assert.Contains(t, out, "Predictions vs Expected:")
	for _, in := range []string{"[0 0]", "[0 1]", "[1 0]", "[1 1]"} {
		assert.Contains(t, out, in)
	}
	assert.Contains(t, out, "Final weights: "+FormatVector(res.Weights, 4))
	assert.Contains(t, out, "Final bias: ")
}

func TestSummary_NotConverged(t *testing.T) {
	ds := dataset.Xor()
	cfg := andConfig()
	cfg.MaxIterations = 50
	cfg.Init = nn.Fixed{Weights: []float64{0, 0}}

	res, err := trainer.Run(ds, cfg)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Summary(&buf, ds, res))
	assert.Contains(t, buf.String(), "Did not converge within 50 iterations")
}

func TestFormatVector(t *testing.T) {
	assert.Equal(t, "[]", FormatVector(nil, 2))
	assert.Equal(t, "[1 0.5]", FormatVector([]float64{1, 0.5}, -1))
	assert.Equal(t, "[8.5200 -12.9500]", FormatVector([]float64{8.52, -12.95}, 4))
}

func TestSweepTable(t *testing.T) {
	jobs := []sweep.Job{
		{Name: "and-per-example", Dataset: dataset.And(), Config: andConfig()},
		{Name: "xor-batch", Dataset: dataset.Xor(), Config: trainer.Config{
			LearningRate:   1,
			MaxIterations:  20,
			ReportInterval: 10,
			Init:           nn.Fixed{Weights: []float64{0, 0}},
		}},
	}
	outcomes, err := sweep.Run(context.Background(), jobs, parallel.DefaultConfig())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, SweepTable(&buf, outcomes))

	out := buf.String()
	for _, want := range []string{"Run", "Dataset", "and-per-example", "xor-batch", "per_example", "batch", "YES", "NO", "20"} {
		assert.Contains(t, out, want)
	}
	assert.Contains(t, out, outcomes[0].Job.ID.String()[:8])
}
