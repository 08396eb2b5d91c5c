// Package orchestration coordinates concurrent generation runs across
// element widths and aggregates their results for comparison.
package orchestration

import (
	"context"
	"math/big"
	"sort"
	"strconv"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/cainthebest/fibext"
	apperrors "github.com/cainthebest/fibext/internal/errors"
	"github.com/cainthebest/fibext/internal/logging"
	"github.com/cainthebest/fibext/internal/metrics"
)

// ctxCheckInterval is the number of pulls between context cancellation
// checks. Pulls are O(1), so checking every pull would dominate the loop.
const ctxCheckInterval = 4096

// tracerName identifies this package's OpenTelemetry tracer.
const tracerName = "github.com/cainthebest/fibext/internal/orchestration"

// RunSpec describes a single generation run.
type RunSpec struct {
	// Width is the element width label: "8", "16", "32", "64", "128" or "big".
	Width string
	// Policy is the overflow policy for the run.
	Policy fibext.Policy
	// MaxTerms bounds the run; 0 means run until exhaustion, which only
	// terminates for checked fixed-width runs.
	MaxTerms uint64
}

// RunResult encapsulates the outcome of a single generation run.
// It serves as a standardized container for results from different element
// widths, facilitating comparison and reporting.
type RunResult struct {
	// Width is the element width label of the run.
	Width string
	// Policy is the overflow policy used.
	Policy fibext.Policy
	// Count is the number of terms emitted.
	Count uint64
	// Last is the final emitted term in decimal notation.
	Last string
	// Saturated indicates the run ended by overflow exhaustion rather than
	// by reaching MaxTerms.
	Saturated bool
	// Duration is the time taken to complete the run.
	Duration time.Duration
	// Err contains any error that occurred (cancellation or timeout).
	Err error
}

// Deps bundles the observability collaborators of the orchestrator.
type Deps struct {
	Metrics *metrics.SequenceMetrics
	Logger  logging.Logger
}

// ExecuteRuns performs the given runs concurrently, one goroutine per spec,
// and returns their results in spec order. Each run owns an independent
// generator, so no coordination beyond the errgroup is needed.
func ExecuteRuns(ctx context.Context, specs []RunSpec, deps Deps) []RunResult {
	if deps.Logger == nil {
		deps.Logger = logging.NopLogger{}
	}

	g, ctx := errgroup.WithContext(ctx)
	results := make([]RunResult, len(specs))

	for i, spec := range specs {
		idx, s := i, spec
		g.Go(func() error {
			results[idx] = executeRun(ctx, s, deps)
			return nil
		})
	}

	g.Wait()
	return results
}

// SaturationSpecs returns checked-policy, run-to-exhaustion specs for every
// fixed element width, in ascending width order.
func SaturationSpecs() []RunSpec {
	widths := []string{"8", "16", "32", "64", "128"}
	specs := make([]RunSpec, len(widths))
	for i, w := range widths {
		specs[i] = RunSpec{Width: w, Policy: fibext.Checked}
	}
	return specs
}

// SortByCount orders results by emitted term count ascending, errors last.
func SortByCount(results []RunResult) {
	sort.SliceStable(results, func(i, j int) bool {
		if (results[i].Err == nil) != (results[j].Err == nil) {
			return results[i].Err == nil
		}
		return results[i].Count < results[j].Count
	})
}

// executeRun dispatches a single run to the generator for its width, wrapped
// in a trace span and recorded in the metrics collectors.
func executeRun(ctx context.Context, spec RunSpec, deps Deps) RunResult {
	tracer := otel.Tracer(tracerName)
	ctx, span := tracer.Start(ctx, "generate",
		trace.WithAttributes(
			attribute.String("fibext.width", spec.Width),
			attribute.String("fibext.policy", spec.Policy.String()),
			attribute.Int64("fibext.max_terms", int64(spec.MaxTerms)),
		))
	defer span.End()

	start := time.Now()
	res := runForWidth(ctx, spec)
	res.Duration = time.Since(start)

	span.SetAttributes(
		attribute.Int64("fibext.terms", int64(res.Count)),
		attribute.Bool("fibext.saturated", res.Saturated),
	)

	if deps.Metrics != nil {
		deps.Metrics.AddTerms(spec.Width, spec.Policy.String(), res.Count)
		deps.Metrics.ObserveRunDuration(res.Duration)
		if res.Saturated {
			deps.Metrics.ObserveExhaustion(spec.Width)
		}
	}

	if res.Err != nil {
		deps.Logger.Warn("run aborted",
			logging.String("width", spec.Width),
			logging.Uint64("terms", res.Count),
			logging.Err(res.Err))
	} else {
		deps.Logger.Debug("run finished",
			logging.String("width", spec.Width),
			logging.String("policy", spec.Policy.String()),
			logging.Uint64("terms", res.Count))
	}

	return res
}

func runForWidth(ctx context.Context, spec RunSpec) RunResult {
	res := RunResult{Width: spec.Width, Policy: spec.Policy}

	// An unbounded run only terminates when checked overflow can occur.
	if spec.MaxTerms == 0 && (spec.Policy != fibext.Checked || spec.Width == "big") {
		res.Err = apperrors.NewConfigError("unbounded run requires the checked policy on a fixed width")
		return res
	}

	switch spec.Width {
	case "8":
		pull(ctx, fibext.New[uint8](spec.Policy), spec.MaxTerms, formatUint[uint8], &res)
	case "16":
		pull(ctx, fibext.New[uint16](spec.Policy), spec.MaxTerms, formatUint[uint16], &res)
	case "32":
		pull(ctx, fibext.New[uint32](spec.Policy), spec.MaxTerms, formatUint[uint32], &res)
	case "64":
		pull(ctx, fibext.New[uint64](spec.Policy), spec.MaxTerms, formatUint[uint64], &res)
	case "128":
		pull(ctx, fibext.NewUint128(spec.Policy), spec.MaxTerms, fibext.Uint128.String, &res)
	case "big":
		pull(ctx, fibext.NewBig(spec.Policy), spec.MaxTerms, (*big.Int).String, &res)
	default:
		res.Err = apperrors.ValidationError{Field: "width", Message: "unknown width " + spec.Width}
	}
	return res
}

func formatUint[T interface{ ~uint8 | ~uint16 | ~uint32 | ~uint64 }](v T) string {
	return strconv.FormatUint(uint64(v), 10)
}

// pull drains up to max terms from gen into res, checking for cancellation
// periodically. max == 0 pulls until exhaustion.
func pull[T any](ctx context.Context, gen *fibext.Generator[T], max uint64, format func(T) string, res *RunResult) {
	var last T
	hasLast := false

	for max == 0 || res.Count < max {
		if res.Count%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				res.Err = apperrors.WrapError(err, "generation for width %s", res.Width)
				break
			}
		}
		v, ok := gen.Next()
		if !ok {
			res.Saturated = true
			break
		}
		last = v
		hasLast = true
		res.Count++
	}

	if hasLast {
		res.Last = format(last)
	}
}
