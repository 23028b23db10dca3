package trainer

import (
	"iter"

	"github.com/born-ml/gates/internal/dataset"
	"github.com/born-ml/gates/internal/nn"
	"github.com/born-ml/gates/internal/optim"
	"gonum.org/v1/gonum/mat"
)

// IterationRecord describes one reported epoch.
type IterationRecord struct {
	Epoch     int     // Zero-based epoch index
	MAE       float64 // Mean absolute error of the parameters at the start of the epoch
	Converged bool    // MAE < ConvergenceThreshold
}

// Observer consumes iteration records as they are produced.
type Observer interface {
	Observe(IterationRecord)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(IterationRecord)

// Observe implements Observer.
func (f ObserverFunc) Observe(r IterationRecord) { f(r) }

// Result is the final state of a training run.
type Result struct {
	Weights   []float64 // Final weights
	Bias      float64   // Final bias
	Outputs   []float64 // Per-example probabilities from a final forward pass
	Epochs    int       // Number of epochs executed
	MAE       float64   // Mean absolute error of Outputs
	Converged bool      // Whether the threshold was reached before the budget ran out
}

// Parameters returns a copy of the final parameters.
func (r *Result) Parameters() *nn.Parameters {
	return (&nn.Parameters{Weights: r.Weights, Bias: r.Bias}).Clone()
}

// Predictions thresholds Outputs: 1 when the probability exceeds
// threshold, 0 otherwise.
func (r *Result) Predictions(threshold float64) []int {
	classes := make([]int, len(r.Outputs))
	for i, p := range r.Outputs {
		if p > threshold {
			classes[i] = 1
		}
	}
	return classes
}

// Trainer runs one training session over a fixed dataset.
//
// A Trainer exclusively owns its parameters and is not safe for
// concurrent use. Independent runs need independent Trainers.
type Trainer struct {
	ds     *dataset.Dataset
	cfg    Config
	opt    optim.Optimizer
	x      *mat.Dense
	y      *mat.VecDense
	params *nn.Parameters

	epoch     int // Next epoch to execute
	converged bool
	result    *Result
}

// New validates the configuration against the dataset and prepares a run.
//
// All failures happen here, before any forward pass: *ConfigurationError
// for invalid hyperparameters, *dataset.DimensionMismatchError when the
// initial weights do not match the dataset width.
func New(ds *dataset.Dataset, cfg Config) (*Trainer, error) {
	if ds == nil {
		return nil, dataset.ErrEmpty
	}

	params, err := Initialize(cfg, ds.Width())
	if err != nil {
		return nil, err
	}

	opt, err := NewOptimizer(cfg.mode(), cfg.LearningRate)
	if err != nil {
		return nil, err
	}

	return &Trainer{
		ds:     ds,
		cfg:    cfg,
		opt:    opt,
		x:      ds.Matrix(),
		y:      ds.LabelVector(),
		params: params,
	}, nil
}

// Dataset returns the dataset being trained on.
func (t *Trainer) Dataset() *dataset.Dataset { return t.ds }

// Config returns the configuration of the run.
func (t *Trainer) Config() Config { return t.cfg }

// Optimizer returns the update strategy the run applies.
func (t *Trainer) Optimizer() optim.Optimizer { return t.opt }

// Records returns the sequence of reported iteration records.
//
// Iterating drives training. An epoch is reported when
// epoch % ReportInterval == 0 or when it converged; the converged epoch
// is always the last one. Stopping the iteration early pauses the run
// and a later Records or Result call picks up where it stopped.
func (t *Trainer) Records() iter.Seq[IterationRecord] {
	return func(yield func(IterationRecord) bool) {
		t.advance(yield)
	}
}

// Result finishes any remaining epochs without reporting and returns
// the final state. Subsequent calls return the same Result.
func (t *Trainer) Result() *Result {
	t.advance(nil)

	if t.result == nil {
		t.result = t.finish()
	}
	return t.result
}

// Done reports whether the run has converged or exhausted its budget.
func (t *Trainer) Done() bool {
	return t.converged || t.epoch >= t.cfg.MaxIterations
}

// Advance runs a single epoch and returns its record and whether the
// record is reported under the interval rule. It does nothing and
// returns false once the run is done.
func (t *Trainer) Advance() (IterationRecord, bool) {
	if t.Done() {
		return IterationRecord{}, false
	}
	return t.iterate()
}

func (t *Trainer) advance(yield func(IterationRecord) bool) {
	for !t.Done() {
		rec, report := t.iterate()
		if report && yield != nil && !yield(rec) {
			return
		}
	}
}

// iterate runs one epoch: forward, error, convergence check and, unless
// converged, an update. The record carries the same MAE the stopping
// decision was made on.
func (t *Trainer) iterate() (IterationRecord, bool) {
	ev, err := evaluate(t.x, t.y, t.params)
	if err != nil {
		// Shapes were validated in New.
		panic("trainer: " + err.Error())
	}

	epoch := t.epoch
	t.epoch++
	t.converged = ev.mae < t.cfg.ConvergenceThreshold

	if !t.converged {
		t.opt.Step(t.params, t.x, ev.errs, ev.outputs)
	}

	rec := IterationRecord{Epoch: epoch, MAE: ev.mae, Converged: t.converged}
	return rec, epoch%t.cfg.ReportInterval == 0 || t.converged
}

func (t *Trainer) finish() *Result {
	ev, err := evaluate(t.x, t.y, t.params)
	if err != nil {
		panic("trainer: " + err.Error())
	}

	return &Result{
		Weights:   append([]float64(nil), t.params.Weights...),
		Bias:      t.params.Bias,
		Outputs:   append([]float64(nil), ev.outputs.RawVector().Data...),
		Epochs:    t.epoch,
		MAE:       ev.mae,
		Converged: t.converged,
	}
}

// Run trains on ds with cfg, passing every reported record to the
// observers in order, and returns the final result.
func Run(ds *dataset.Dataset, cfg Config, observers ...Observer) (*Result, error) {
	t, err := New(ds, cfg)
	if err != nil {
		return nil, err
	}

	for rec := range t.Records() {
		for _, o := range observers {
			o.Observe(rec)
		}
	}
	return t.Result(), nil
}
