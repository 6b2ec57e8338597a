package simulation

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/katalvlaran/giantgraph/builder"
	"github.com/katalvlaran/giantgraph/core"
	"github.com/katalvlaran/giantgraph/metrics"
)

// Package-level tracer for simulation operations.
var tracer = otel.Tracer("giantgraph.simulation")

// Simulation is one session driving one graph engine.
//
// mu serialises every operation: the random source is not safe for concurrent
// use, and the threshold flag must observe mutations in order.
type Simulation struct {
	mu sync.Mutex

	cfg       Config
	logger    *zap.Logger
	collector *metrics.Collector
	rng       *rand.Rand
	hook      func(Report)

	id          uuid.UUID
	graph       *core.Graph
	wasAbove    bool
	highlighted []int
}

// New creates a session with a fresh N-node engine.
func New(cfg Config, opts ...Option) (*Simulation, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	s := &Simulation{
		cfg:    cfg,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.resetLocked(); err != nil {
		return nil, err
	}

	return s, nil
}

// ID returns the session id. It changes on every Reset.
func (s *Simulation) ID() uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.id
}

// Graph returns the current engine. The pointer is replaced by Reset and
// GenerateRandomGraph; the engine itself is safe for concurrent reads.
func (s *Simulation) Graph() *core.Graph {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.graph
}

// Reset discards the engine and starts over with N isolated nodes, a new
// session id, no highlighted cycle and the threshold flag cleared.
func (s *Simulation) Reset(ctx context.Context) error {
	_, span := tracer.Start(ctx, "Simulation.Reset")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.resetLocked(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	span.SetAttributes(attribute.String("session.id", s.id.String()))

	return nil
}

// AttachSpring connects nodes a and b with an undirected edge.
//
// Returns ErrInvalidNodes when either index is out of range or a == b.
// Returns (false, nil) when a and b are already connected.
func (s *Simulation) AttachSpring(ctx context.Context, a, b int) (bool, error) {
	ctx, span := tracer.Start(ctx, "Simulation.AttachSpring",
		trace.WithAttributes(attribute.Int("node.a", a), attribute.Int("node.b", b)),
	)
	defer span.End()

	s.mu.Lock()
	added, crossed, err := s.attachLocked(ctx, a, b, metrics.SourceSpring)
	s.mu.Unlock()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return false, err
	}
	span.SetAttributes(attribute.Bool("edge.added", added))
	s.fire(crossed)

	return added, nil
}

// AddRandomConnection picks two distinct nodes uniformly at random and
// connects them. Connection.Added is false when they were already connected.
func (s *Simulation) AddRandomConnection(ctx context.Context) (Connection, error) {
	ctx, span := tracer.Start(ctx, "Simulation.AddRandomConnection")
	defer span.End()

	s.mu.Lock()
	conn, crossed, err := s.randomLocked(ctx)
	s.mu.Unlock()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return Connection{}, err
	}
	span.SetAttributes(
		attribute.Int("node.a", conn.From),
		attribute.Int("node.b", conn.To),
		attribute.Bool("edge.added", conn.Added),
	)
	s.fire(crossed)

	return conn, nil
}

// GenerateRandomGraph resets the session and samples G(N, p): every pair i<j is
// connected independently with probability p.
func (s *Simulation) GenerateRandomGraph(ctx context.Context, p float64) error {
	ctx, span := tracer.Start(ctx, "Simulation.GenerateRandomGraph",
		trace.WithAttributes(attribute.Float64("probability", p)),
	)
	defer span.End()

	if err := ctx.Err(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	s.mu.Lock()
	crossed, err := s.generateLocked(p)
	s.mu.Unlock()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	s.fire(crossed)

	return nil
}

// AutoRun adds random connections until the graph is above the giant-component
// threshold, maxSteps connections have been attempted, or ctx is done. It
// returns the number of attempts made; a graph already above the threshold
// takes zero steps.
func (s *Simulation) AutoRun(ctx context.Context, maxSteps int) (int, error) {
	ctx, span := tracer.Start(ctx, "Simulation.AutoRun",
		trace.WithAttributes(attribute.Int("max_steps", maxSteps)),
	)
	defer span.End()

	if maxSteps < 1 {
		err := fmt.Errorf("simulation: AutoRun(maxSteps=%d): %w", maxSteps, ErrInvalidArgument)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return 0, err
	}

	steps := 0
	for steps < maxSteps {
		if s.Graph().IsAboveGiantComponentThreshold() {
			break
		}
		if err := ctx.Err(); err != nil {
			span.SetAttributes(attribute.Int("steps", steps))
			return steps, err
		}
		if _, err := s.AddRandomConnection(ctx); err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return steps, err
		}
		steps++
	}
	span.SetAttributes(attribute.Int("steps", steps))
	s.logger.Info("auto-run finished",
		zap.Int("steps", steps),
		zap.Bool("above_threshold", s.Graph().IsAboveGiantComponentThreshold()),
	)

	return steps, nil
}

// HighlightCycle picks the cycle of a random unicyclic component and remembers
// it for reports until the next highlight or reset. Returns false when there is
// no unicyclic component; the previous highlight is then cleared.
func (s *Simulation) HighlightCycle(ctx context.Context) ([]int, bool) {
	_, span := tracer.Start(ctx, "Simulation.HighlightCycle")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	cycle, ok := s.graph.FindCycleToHighlight()
	s.highlighted = cycle
	span.SetAttributes(attribute.Bool("cycle.found", ok), attribute.Int("cycle.length", len(cycle)))
	if ok {
		s.logger.Debug("cycle highlighted", zap.Ints("cycle", cycle))
	}

	return append([]int(nil), cycle...), ok
}

// FindCycles enumerates every simple cycle of the current engine.
func (s *Simulation) FindCycles(ctx context.Context) ([][]int, error) {
	ctx, span := tracer.Start(ctx, "Simulation.FindCycles")
	defer span.End()

	cycles, err := s.Graph().FindCyclesContext(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	span.SetAttributes(attribute.Int("cycles", len(cycles)))

	return cycles, nil
}

// Stats returns the engine's statistics snapshot.
func (s *Simulation) Stats() core.Stats {
	return s.Graph().Stats()
}

// resetLocked builds a fresh engine. Callers hold s.mu.
func (s *Simulation) resetLocked() error {
	opts := []core.GraphOption{core.WithSeed(s.rng.Int63())}
	if s.cfg.CycleLimit > 0 {
		opts = append(opts, core.WithCycleLimit(s.cfg.CycleLimit))
	}
	g, err := core.NewGraph(s.cfg.Nodes, opts...)
	if err != nil {
		return fmt.Errorf("simulation: reset: %w", err)
	}

	s.graph = g
	s.id = uuid.New()
	s.wasAbove = false
	s.highlighted = nil
	s.collector.ResetObserved()
	s.collector.ObserveStats(g.Stats())
	s.logger.Info("simulation reset",
		zap.String("session", s.id.String()),
		zap.Int("nodes", s.cfg.Nodes),
	)

	return nil
}

// attachLocked validates and inserts a—b. Callers hold s.mu.
func (s *Simulation) attachLocked(_ context.Context, a, b int, source string) (bool, *Report, error) {
	n := s.cfg.Nodes
	if a < 0 || a >= n || b < 0 || b >= n || a == b {
		return false, nil, fmt.Errorf("simulation: AttachSpring(%d, %d) with %d nodes: %w", a, b, n, ErrInvalidNodes)
	}
	if s.graph.HasEdge(a, b) {
		return false, nil, nil
	}

	start := time.Now()
	if err := s.graph.AddUndirectedEdge(a, b); err != nil {
		return false, nil, fmt.Errorf("simulation: AttachSpring: %w", err)
	}
	crossed := s.refreshLocked(source, 1, start)
	s.logger.Debug("edge added",
		zap.String("session", s.id.String()),
		zap.Int("a", a),
		zap.Int("b", b),
		zap.String("source", source),
	)

	return true, crossed, nil
}

// randomLocked draws a distinct pair and attaches it. Callers hold s.mu.
func (s *Simulation) randomLocked(ctx context.Context) (Connection, *Report, error) {
	n := s.cfg.Nodes
	if n < 2 {
		return Connection{}, nil, fmt.Errorf("simulation: AddRandomConnection with %d nodes: %w", n, ErrTooFewNodes)
	}
	i := s.rng.Intn(n)
	j := s.rng.Intn(n)
	for j == i {
		j = s.rng.Intn(n)
	}

	added, crossed, err := s.attachLocked(ctx, i, j, metrics.SourceRandom)
	if err != nil {
		return Connection{}, nil, err
	}

	return Connection{From: i, To: j, Added: added}, crossed, nil
}

// generateLocked resets and samples G(N, p). Callers hold s.mu.
func (s *Simulation) generateLocked(p float64) (*Report, error) {
	if err := s.resetLocked(); err != nil {
		return nil, err
	}

	start := time.Now()
	err := builder.Apply(s.graph, []builder.BuilderOption{builder.WithRand(s.rng)}, builder.RandomSparse(p))
	if err != nil {
		return nil, fmt.Errorf("simulation: GenerateRandomGraph(%g): %w", p, err)
	}
	edges := s.graph.EdgeCount()
	crossed := s.refreshLocked(metrics.SourceGenerate, edges, start)
	s.logger.Info("random graph generated",
		zap.String("session", s.id.String()),
		zap.Float64("p", p),
		zap.Int("edges", edges),
	)

	return crossed, nil
}

// refreshLocked pushes the new state to metrics and detects an upward
// threshold crossing, returning the report to hand to the hook. Callers hold s.mu.
func (s *Simulation) refreshLocked(source string, added int, start time.Time) *Report {
	stats := s.graph.Stats()
	s.collector.EdgeAdded(source, added)
	s.collector.ObserveStats(stats)
	s.collector.ObserveStep(time.Since(start))

	crossed := !s.wasAbove && stats.AboveThreshold
	s.wasAbove = stats.AboveThreshold
	if !crossed {
		return nil
	}

	s.collector.ThresholdCrossed()
	s.logger.Info("giant component threshold reached",
		zap.String("session", s.id.String()),
		zap.Int("edges", stats.EdgeCount),
		zap.Float64("edge_probability", stats.EdgeProbability),
		zap.Int("giant_component_size", stats.GiantComponentSize),
		zap.Int("expected_giant_component_size", stats.ExpectedGiantComponentSize),
	)
	rep := s.reportLocked()

	return &rep
}

// fire runs the threshold hook outside the session lock.
func (s *Simulation) fire(rep *Report) {
	if rep == nil || s.hook == nil {
		return
	}
	s.hook(*rep)
}
