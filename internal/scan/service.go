package scan

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/privsweep/privsweep/internal/swarm"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Config carries per-run scan settings. It is constructed once by the caller
// and passed down explicitly; there is no process-wide state.
type Config struct {
	// SafePrefixes restricts discovery to operations assumed side-effect
	// free. Empty means DefaultSafePrefixes.
	SafePrefixes []string
	// RegionFilters are substring filters applied to each service's
	// available regions. Empty means every region.
	RegionFilters []string
	// Overrides supplies injected arguments per service and operation.
	Overrides *Overrides
	// Logger receives probe warnings. Nil means slog.Default.
	Logger *slog.Logger
}

func (c Config) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.Default()
}

// Service orchestrates one provider service's scan: it owns the regional
// clients, drives discovery, fans probes out through the shared pool, and
// folds the results into a per-operation report.
type Service struct {
	name    string
	cfg     Config
	pool    *swarm.Pool
	prober  *Prober
	regions []string
	clients []RegionalClient
	tracer  trace.Tracer
}

// NewService resolves regions and binds one client per region. An
// *InvalidRegionError return means the service is unavailable under the
// current region filters; the caller should skip it, not abort the run.
func NewService(ctx context.Context, name string, session Session, pool *swarm.Pool, cfg Config) (*Service, error) {
	regions, err := ResolveRegions(name, session.AvailableRegions(name), cfg.RegionFilters)
	if err != nil {
		return nil, err
	}

	clients := make([]RegionalClient, 0, len(regions))
	for _, region := range regions {
		client, err := session.NewClient(ctx, name, region)
		if err != nil {
			return nil, fmt.Errorf("binding %s client in %s: %w", name, region, err)
		}
		clients = append(clients, client)
	}

	return &Service{
		name:    name,
		cfg:     cfg,
		pool:    pool,
		prober:  NewProber(),
		regions: regions,
		clients: clients,
		tracer:  otel.Tracer("privsweep/scan"),
	}, nil
}

// Name returns the service name.
func (s *Service) Name() string { return s.name }

// Regions returns the resolved region set, in provider order.
func (s *Service) Regions() []string { return s.regions }

// probeOutcome pairs a result with its classification for the collect path.
type probeOutcome struct {
	result ProbeResult
	cls    Classification
}

// clientBatch tracks one regional client's in-flight probes.
type clientBatch struct {
	wg      sync.WaitGroup
	results chan probeOutcome
}

// Scan probes every safe operation in every resolved region and returns the
// per-operation aggregate. Every (operation, client) pair is submitted to
// the shared pool before any result is awaited, so probes fan out across
// regions as well as across operations. Collection then drains one client at
// a time, so the report map only ever has a single writer. Completion order
// does not affect the result: aggregation is a commutative set fold.
func (s *Service) Scan(ctx context.Context) (Report, error) {
	ctx, span := s.tracer.Start(ctx, "service.scan", trace.WithAttributes(
		attribute.String("service", s.name),
		attribute.Int("regions", len(s.regions)),
	))
	defer span.End()

	log := s.cfg.logger()

	// Discovery runs once: every regional client of a service advertises the
	// same operation set.
	operations := DiscoverOperations(s.clients[0], s.cfg.SafePrefixes)
	span.SetAttributes(attribute.Int("operations", len(operations)))

	batches := make([]*clientBatch, len(s.clients))
	for i, client := range s.clients {
		batch := &clientBatch{results: make(chan probeOutcome, len(operations))}
		batches[i] = batch

		for _, operation := range operations {
			op := operation
			cl := client
			args := s.cfg.Overrides.Lookup(s.name, op)

			batch.wg.Add(1)
			s.pool.Submit(func(taskCtx context.Context) {
				defer batch.wg.Done()
				result, cls := s.prober.Probe(taskCtx, cl, op, args)
				if cls.Throttled {
					s.pool.Throttled()
				}
				batch.results <- probeOutcome{result: result, cls: cls}
			})
		}
	}

	report := Report{}
	for _, batch := range batches {
		batch.wg.Wait()
		close(batch.results)

		for out := range batch.results {
			if out.cls.Dropped {
				log.Warn("probe dropped: connection failure",
					"service", s.name,
					"operation", out.result.Operation,
					"region", out.result.Region,
					"error", out.result.Err,
				)
				continue
			}
			if out.cls.Unrecognized {
				// Outside the modeled taxonomy; logged, still counted as
				// Errored per the classifier contract.
				log.Warn("probe hit unrecognized error",
					"service", s.name,
					"operation", out.result.Operation,
					"region", out.result.Region,
					"error", out.result.Err,
				)
			}
			report.fold(out.result)
		}
	}

	return report, nil
}
