// chainsim draws from a composed sampler across a pool of forked
// chains and reports the sample moments. It exists to exercise the
// chain and sampler packages end to end: deterministic seeding,
// fork-per-worker parallelism, and the optional observability stack.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/kbukum/chainkit/chain"
	"github.com/kbukum/chainkit/config"
	"github.com/kbukum/chainkit/logger"
	"github.com/kbukum/chainkit/observability"
	"github.com/kbukum/chainkit/random"
	"github.com/kbukum/chainkit/sampler"
	"github.com/kbukum/chainkit/version"
)

func main() {
	var (
		configFile  = flag.String("config", "", "path to config.yml")
		showVersion = flag.Bool("version", false, "print version and exit")
	)
	flag.Parse()

	if *showVersion {
		fmt.Println("chainsim", version.Get().String())
		return
	}

	if err := run(*configFile); err != nil {
		fmt.Fprintln(os.Stderr, "chainsim:", err)
		os.Exit(1)
	}
}

func run(configFile string) error {
	var opts []config.LoaderOption
	if configFile != "" {
		opts = append(opts, config.WithConfigFile(configFile))
	}

	var cfg config.Config
	if err := config.Load("chainsim", &cfg, opts...); err != nil {
		return err
	}

	logger.Init(cfg.Logging)
	log := logger.WithComponent("chainsim")

	ctx := context.Background()

	var metrics *observability.Metrics
	if cfg.Observability.Enabled {
		tp, err := observability.InitTracer(ctx, observability.TracerConfig{
			ServiceName:    cfg.Base.Name,
			ServiceVersion: version.Get().Version,
			Environment:    cfg.Base.Environment,
			Endpoint:       cfg.Observability.Endpoint,
			Insecure:       cfg.Observability.Insecure,
			SampleRate:     cfg.Observability.SampleRate,
		})
		if err != nil {
			return err
		}
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = tp.Shutdown(shutdownCtx)
		}()

		mp, err := observability.InitMeter(ctx, &observability.MeterConfig{
			ServiceName:    cfg.Base.Name,
			ServiceVersion: version.Get().Version,
			Environment:    cfg.Base.Environment,
			Endpoint:       cfg.Observability.Endpoint,
			Insecure:       cfg.Observability.Insecure,
		})
		if err != nil {
			return err
		}
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = mp.Shutdown(shutdownCtx)
		}()

		metrics, err = observability.NewMetrics(observability.Meter(cfg.Base.Name))
		if err != nil {
			return err
		}
	}

	// scale * Normal(mean, stddev) + shift, expressed through the
	// sampler space so the run exercises zip and pipe composition.
	space := sampler.NewSpace[float64](sampler.Float64Algebra{})
	expr := space.Add(
		space.Multiply(sampler.Normal(cfg.Run.Mean, cfg.Run.StdDev), cfg.Run.Scale),
		sampler.Constant(cfg.Run.Shift),
	)

	// One shared locked generator; each worker gets an independent
	// fork of the sampled chain.
	gen := random.NewLocked(random.NewSource(cfg.Run.Seed))
	root := expr.Sample(gen)
	root = chain.WithLogging(root, log, "chainsim.expr")
	if metrics != nil {
		root = chain.WithMetrics(root, metrics, "chainsim.expr")
		root = chain.WithTracing(root, "chainsim.expr")
	}

	rc := observability.NewRunContext("chainsim.expr", cfg.Run.Seed, cfg.Run.Draws, metrics)
	ctx = observability.WithRunContext(ctx, rc)
	ctx, span := rc.StartSpanForRun(ctx)

	log.Info("run starting", logger.Fields(
		logger.FieldRunID, rc.RunID,
		logger.FieldSeed, cfg.Run.Seed,
		logger.FieldDraws, cfg.Run.Draws,
		"workers", cfg.Run.Workers,
	))

	result, err := drawParallel(ctx, root, cfg.Run.Draws, cfg.Run.Workers)
	rc.EndRun(span, err)
	if err != nil {
		log.Error("run failed", logger.Fields(
			logger.FieldRunID, rc.RunID,
			logger.FieldError, err.Error(),
		))
		return err
	}

	log.Info("run complete", logger.Fields(
		logger.FieldRunID, rc.RunID,
		logger.FieldDraws, result.Count,
		"mean", result.Mean(),
		"stddev", result.StdDev(),
		logger.FieldDuration, rc.Duration().Milliseconds(),
	))

	fmt.Printf("draws=%d mean=%.6f stddev=%.6f elapsed=%s\n",
		result.Count, result.Mean(), result.StdDev(), rc.Duration().Round(time.Millisecond))
	return nil
}

// drawParallel forks one chain per worker and merges the per-worker
// moments. The first worker error cancels the remaining draws.
func drawParallel(ctx context.Context, root chain.Chain[float64], draws, workers int) (*moments, error) {
	if workers > draws {
		workers = draws
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		total    moments
		firstErr error
	)

	for w := 0; w < workers; w++ {
		n := draws / workers
		if w < draws%workers {
			n++
		}

		c := root.Fork()
		wg.Add(1)
		go func(c chain.Chain[float64], n int) {
			defer wg.Done()

			var local moments
			for i := 0; i < n; i++ {
				v, err := c.Next(ctx)
				if err != nil {
					mu.Lock()
					if firstErr == nil {
						firstErr = err
						cancel()
					}
					mu.Unlock()
					return
				}
				local.Push(v)
			}

			mu.Lock()
			total.Merge(&local)
			mu.Unlock()
		}(c, n)
	}

	wg.Wait()
	if firstErr != nil {
		return nil, firstErr
	}
	return &total, nil
}
