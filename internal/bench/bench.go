package bench

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hupe1980/crcspeed"
	"golang.org/x/sync/errgroup"
)

// ErrMismatch is returned when candidates that must agree produce different CRCs.
var ErrMismatch = errors.New("crc results do not match")

// Candidate is one CRC implementation, widened to a 64-bit register.
type Candidate struct {
	Name string
	Fn   func(crc uint64, p []byte) uint64
}

// Widen adapts fn to a 64-bit register. Bits above the width of T are dropped
// on the way in and zero on the way out.
func Widen[T crcspeed.Word](fn crcspeed.Func[T]) func(uint64, []byte) uint64 {
	return func(crc uint64, p []byte) uint64 {
		return uint64(fn(T(crc), p))
	}
}

// Group is a set of candidates of one width that must agree.
type Group struct {
	Name       string
	Width      int
	Candidates []Candidate
}

// Result is the outcome of one timed run.
type Result struct {
	Group    string
	Name     string
	Width    int
	CRC      uint64
	Bytes    int
	Elapsed  time.Duration
	Mismatch bool
}

// Throughput returns bytes per second, or 0 if nothing was timed.
func (r Result) Throughput() float64 {
	if r.Elapsed <= 0 {
		return 0
	}
	return float64(r.Bytes) / r.Elapsed.Seconds()
}

// Hex formats the CRC with as many digits as the width needs.
func (r Result) Hex() string {
	return fmt.Sprintf("%0*x", r.Width/4, r.CRC)
}

// Report collects the results of Run in execution order.
type Report struct {
	Size    int
	Results []Result
}

// Mismatches returns the results that disagreed with their baseline.
func (r Report) Mismatches() []Result {
	var out []Result
	for _, res := range r.Results {
		if res.Mismatch {
			out = append(out, res)
		}
	}
	return out
}

// OK reports whether every candidate agreed with its baseline.
func (r Report) OK() bool {
	return len(r.Mismatches()) == 0
}

// Runner runs groups of candidates.
type Runner struct {
	logger  *crcspeed.Logger
	metrics crcspeed.MetricsCollector
	primer  []byte
}

// Option configures a Runner.
type Option func(*Runner)

// WithLogger sets the logger for per-run records.
func WithLogger(logger *crcspeed.Logger) Option {
	return func(r *Runner) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithMetricsCollector reports every timed run to mc.
func WithMetricsCollector(mc crcspeed.MetricsCollector) Option {
	return func(r *Runner) {
		if mc != nil {
			r.metrics = mc
		}
	}
}

// WithPrimer sets the buffer each candidate runs over once, untimed, before
// its timed run.
func WithPrimer(p []byte) Option {
	return func(r *Runner) {
		r.primer = p
	}
}

// New creates a Runner.
func New(optFns ...Option) *Runner {
	r := &Runner{
		logger:  crcspeed.NoopLogger(),
		metrics: crcspeed.NoopMetricsCollector{},
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(r)
		}
	}
	return r
}

// Run times every candidate of every group over buf, starting from a zero
// register. It stops early only if ctx is done; disagreement is reported in
// the Report, not as an error.
func (r *Runner) Run(ctx context.Context, buf []byte, groups ...Group) (Report, error) {
	report := Report{Size: len(buf)}

	for _, g := range groups {
		var baseline uint64
		for i, c := range g.Candidates {
			if err := ctx.Err(); err != nil {
				return report, err
			}

			res := r.timeRun(ctx, g, c, buf)
			if i == 0 {
				baseline = res.CRC
			} else if res.CRC != baseline {
				res.Mismatch = true
				r.logger.WarnContext(ctx, "crc mismatch",
					"group", g.Name,
					"name", c.Name,
					"expected", fmt.Sprintf("%0*x", g.Width/4, baseline),
					"actual", res.Hex(),
				)
			}
			report.Results = append(report.Results, res)
		}
	}

	return report, nil
}

func (r *Runner) timeRun(ctx context.Context, g Group, c Candidate, buf []byte) Result {
	if r.primer != nil {
		_ = c.Fn(0, r.primer)
	}

	start := time.Now()
	crc := c.Fn(0, buf)
	elapsed := time.Since(start)

	crc &= widthMask(g.Width)
	r.metrics.RecordUpdate(len(buf), elapsed)
	r.logger.WithName(c.Name).WithWidth(g.Width).LogRun(ctx, len(buf), crc, elapsed, nil)

	return Result{
		Group:   g.Name,
		Name:    c.Name,
		Width:   g.Width,
		CRC:     crc,
		Bytes:   len(buf),
		Elapsed: elapsed,
	}
}

// RunParallel runs c over buf on workers goroutines at once and returns the
// aggregate throughput. All workers must agree on the CRC.
func (r *Runner) RunParallel(ctx context.Context, buf []byte, width int, c Candidate, workers int) (Result, error) {
	if workers < 1 {
		workers = 1
	}

	crcs := make([]uint64, workers)
	g, gctx := errgroup.WithContext(ctx)

	start := time.Now()
	for i := range workers {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			crcs[i] = c.Fn(0, buf) & widthMask(width)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, err
	}
	elapsed := time.Since(start)

	res := Result{
		Group:   fmt.Sprintf("parallel x%d", workers),
		Name:    c.Name,
		Width:   width,
		CRC:     crcs[0],
		Bytes:   len(buf) * workers,
		Elapsed: elapsed,
	}
	r.metrics.RecordUpdate(res.Bytes, elapsed)
	log := r.logger.WithName(c.Name).WithWidth(width)

	for i, crc := range crcs[1:] {
		if crc != res.CRC {
			res.Mismatch = true
			err := fmt.Errorf("%w: worker %d got %0*x, worker 0 got %s", ErrMismatch, i+1, width/4, crc, res.Hex())
			log.LogRun(ctx, res.Bytes, crc, elapsed, err)
			return res, err
		}
	}

	log.LogRun(ctx, res.Bytes, res.CRC, elapsed, nil)
	return res, nil
}

func widthMask(width int) uint64 {
	if width <= 0 || width >= 64 {
		return ^uint64(0)
	}
	return (uint64(1) << width) - 1
}
