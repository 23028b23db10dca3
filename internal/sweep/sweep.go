// Package sweep trains several independent configurations concurrently.
//
// Each job gets its own Trainer and therefore its own parameters; nothing
// is shared between runs.
package sweep

import (
	"context"
	"fmt"
	"time"

	"github.com/born-ml/gates/internal/dataset"
	"github.com/born-ml/gates/internal/parallel"
	"github.com/born-ml/gates/internal/trainer"
	"github.com/google/uuid"
)

// Job is one training run in a sweep.
type Job struct {
	ID      uuid.UUID // Assigned by Run when zero
	Name    string
	Dataset *dataset.Dataset
	Config  trainer.Config
}

// Outcome is the result of one job.
type Outcome struct {
	Job      Job
	Records  []trainer.IterationRecord
	Result   *trainer.Result
	Duration time.Duration
}

// Run trains all jobs and returns their outcomes in job order.
//
// Jobs are validated up front; an invalid job fails the whole sweep
// before any training starts. The returned error names the offending job.
func Run(ctx context.Context, jobs []Job, cfg parallel.Config) ([]Outcome, error) {
	trainers := make([]*trainer.Trainer, len(jobs))
	for i := range jobs {
		if jobs[i].ID == uuid.Nil {
			jobs[i].ID = uuid.New()
		}

		t, err := trainer.New(jobs[i].Dataset, jobs[i].Config)
		if err != nil {
			return nil, fmt.Errorf("job %q: %w", jobs[i].Name, err)
		}
		trainers[i] = t
	}

	outcomes := make([]Outcome, len(jobs))
	err := parallel.ForEach(ctx, len(jobs), func(ctx context.Context, i int) error {
		start := time.Now()

		t := trainers[i]
		var records []trainer.IterationRecord
		for !t.Done() {
			if err := ctx.Err(); err != nil {
				return err
			}
			if rec, ok := t.Advance(); ok {
				records = append(records, rec)
			}
		}

		outcomes[i] = Outcome{
			Job:      jobs[i],
			Records:  records,
			Result:   t.Result(),
			Duration: time.Since(start),
		}
		return nil
	}, cfg)
	if err != nil {
		return nil, err
	}

	return outcomes, nil
}
