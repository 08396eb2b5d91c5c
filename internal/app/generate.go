package app

import (
	"context"
	"fmt"
	"io"
	"math/big"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/cainthebest/fibext"
	"github.com/cainthebest/fibext/internal/cli"
	"github.com/cainthebest/fibext/internal/config"
	apperrors "github.com/cainthebest/fibext/internal/errors"
	"github.com/cainthebest/fibext/internal/logging"
	"github.com/cainthebest/fibext/internal/metrics"
	"github.com/cainthebest/fibext/internal/orchestration"
	"github.com/cainthebest/fibext/internal/server"
)

// streamCtxCheckInterval is how many terms are printed between context
// cancellation checks.
const streamCtxCheckInterval = 1024

// runGenerate executes the default mode: stream terms for the configured
// width and policy.
func (a *Application) runGenerate(ctx context.Context, out io.Writer) int {
	ctx, cancelTimeout := context.WithTimeout(ctx, a.Config.Timeout)
	defer cancelTimeout()
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	logger := a.newLogger()
	reg := prometheus.NewRegistry()
	seq := metrics.NewSequenceMetrics(reg)

	stopServer := a.startMetricsServer(ctx, reg, logger)
	defer stopServer()

	if !a.Config.Quiet {
		cli.DisplayRunHeader(out, a.Config)
	}

	policy := a.policy()
	start := time.Now()
	res := streamTerms(ctx, a.Config, policy, out)
	duration := time.Since(start)

	seq.AddTerms(a.Config.Width, policy.String(), res.emitted)
	seq.ObserveRunDuration(duration)
	if res.exhausted {
		seq.ObserveExhaustion(a.Config.Width)
		if !a.Config.Quiet {
			cli.DisplayExhaustion(out, res.emitted)
		}
	}

	if res.err != nil {
		fmt.Fprintf(a.ErrWriter, "Error: %v\n", res.err)
		return exitCodeForError(res.err)
	}

	if a.Config.OutputFile != "" {
		meta := cli.RunMeta{
			Count:    res.emitted,
			Width:    a.Config.Width,
			Policy:   policy.String(),
			Duration: duration,
		}
		if err := cli.WriteTermsToFile(a.Config.OutputFile, meta, res.terms); err != nil {
			fmt.Fprintf(a.ErrWriter, "Error saving terms: %v\n", err)
			return apperrors.ExitErrorGeneric
		}
	}

	logger.Info("run complete",
		logging.String("width", a.Config.Width),
		logging.String("policy", policy.String()),
		logging.Uint64("terms", res.emitted),
		logging.String("duration", duration.String()))

	return apperrors.ExitSuccess
}

// runCompare executes the --all mode: checked saturation runs across every
// fixed width, presented as a comparison table.
func (a *Application) runCompare(ctx context.Context, out io.Writer) int {
	ctx, cancelTimeout := context.WithTimeout(ctx, a.Config.Timeout)
	defer cancelTimeout()
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	logger := a.newLogger()
	reg := prometheus.NewRegistry()
	seq := metrics.NewSequenceMetrics(reg)

	stopServer := a.startMetricsServer(ctx, reg, logger)
	defer stopServer()

	deps := orchestration.Deps{Metrics: seq, Logger: logger}

	var results []orchestration.RunResult
	runAll := func(update func(string)) error {
		results = orchestration.ExecuteRuns(ctx, orchestration.SaturationSpecs(), deps)
		update(" done")
		return nil
	}

	if a.Config.Quiet {
		_ = runAll(func(string) {})
	} else {
		_ = cli.WithSpinner(cli.NewSpinner(), " comparing widths...", runAll)
	}

	cli.DisplayComparison(out, results)

	for _, r := range results {
		if r.Err != nil {
			return exitCodeForError(r.Err)
		}
	}
	return apperrors.ExitSuccess
}

// newLogger returns the run logger; quiet mode discards log output.
func (a *Application) newLogger() logging.Logger {
	if a.Config.Quiet {
		return logging.NopLogger{}
	}
	return logging.NewDefaultLogger()
}

// policy maps the configuration to the overflow policy.
func (a *Application) policy() fibext.Policy {
	if a.Config.Checked {
		return fibext.Checked
	}
	return fibext.Wrapping
}

// startMetricsServer starts the Prometheus endpoint when an address is
// configured. The returned stop function shuts the server down and waits
// for it to exit.
func (a *Application) startMetricsServer(ctx context.Context, reg *prometheus.Registry, logger logging.Logger) func() {
	if a.Config.MetricsAddr == "" {
		return func() {}
	}

	srvCtx, cancel := context.WithCancel(ctx)
	srv := server.New(a.Config.MetricsAddr, reg, logger)
	done := make(chan struct{})
	go func() {
		defer close(done)
		if err := srv.Run(srvCtx); err != nil {
			logger.Error("metrics server failed", logging.Err(err))
		}
	}()

	return func() {
		cancel()
		<-done
	}
}

// streamResult captures the outcome of a streaming generation run.
type streamResult struct {
	emitted   uint64
	exhausted bool
	terms     []string
	err       error
}

// streamTerms prints terms for the configured width until the count is
// reached, the sequence exhausts, or the context ends.
func streamTerms(ctx context.Context, cfg config.AppConfig, policy fibext.Policy, out io.Writer) streamResult {
	switch cfg.Width {
	case config.Width8:
		return stream(ctx, cfg, fibext.New[uint8](policy), formatUint[uint8], out)
	case config.Width16:
		return stream(ctx, cfg, fibext.New[uint16](policy), formatUint[uint16], out)
	case config.Width32:
		return stream(ctx, cfg, fibext.New[uint32](policy), formatUint[uint32], out)
	case config.Width128:
		return stream(ctx, cfg, fibext.NewUint128(policy), fibext.Uint128.String, out)
	case config.WidthBig:
		return stream(ctx, cfg, fibext.NewBig(policy), (*big.Int).String, out)
	default:
		return stream(ctx, cfg, fibext.New[uint64](policy), formatUint[uint64], out)
	}
}

func formatUint[T interface{ ~uint8 | ~uint16 | ~uint32 | ~uint64 }](v T) string {
	return strconv.FormatUint(uint64(v), 10)
}

func stream[T any](ctx context.Context, cfg config.AppConfig, gen *fibext.Generator[T], format func(T) string, out io.Writer) streamResult {
	var res streamResult
	collect := cfg.OutputFile != ""

	for res.emitted < cfg.Count {
		if res.emitted%streamCtxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				res.err = err
				return res
			}
		}

		v, ok := gen.Next()
		if !ok {
			res.exhausted = true
			return res
		}

		term := format(v)
		cli.DisplayTerm(out, res.emitted, term, cfg.Quiet)
		if collect {
			res.terms = append(res.terms, term)
		}
		res.emitted++
	}
	return res
}
