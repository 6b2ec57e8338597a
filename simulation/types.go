package simulation

import (
	"errors"
	"fmt"
	"math/rand"

	"go.uber.org/zap"

	"github.com/katalvlaran/giantgraph/metrics"
)

// Sentinel errors for simulation operations.
var (
	// ErrInvalidNodes indicates an out-of-range node index or a self-connection.
	ErrInvalidNodes = errors.New("simulation: invalid node pair")

	// ErrInvalidArgument indicates a parameter outside its domain.
	ErrInvalidArgument = errors.New("simulation: invalid argument")

	// ErrTooFewNodes indicates the graph has fewer than two nodes to connect.
	ErrTooFewNodes = errors.New("simulation: need at least two nodes")
)

// Config sizes one simulation session.
type Config struct {
	// Nodes is N, fixed for the lifetime of every engine the session builds.
	Nodes int
	// CycleLimit caps FindCycles; 0 means unlimited.
	CycleLimit int
	// TopComponents is how many of the largest components Report lists.
	TopComponents int
}

func (c Config) validate() error {
	if c.Nodes < 0 {
		return fmt.Errorf("simulation: Nodes=%d: %w", c.Nodes, ErrInvalidArgument)
	}
	if c.CycleLimit < 0 {
		return fmt.Errorf("simulation: CycleLimit=%d: %w", c.CycleLimit, ErrInvalidArgument)
	}
	if c.TopComponents < 0 {
		return fmt.Errorf("simulation: TopComponents=%d: %w", c.TopComponents, ErrInvalidArgument)
	}

	return nil
}

// Connection is the outcome of one random connection attempt.
type Connection struct {
	From int `json:"from" yaml:"from"`
	To   int `json:"to" yaml:"to"`
	// Added is false when the pair was already connected.
	Added bool `json:"added" yaml:"added"`
}

// Option configures a Simulation.
type Option func(*Simulation)

// WithLogger sets the structured logger. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("simulation: WithLogger(nil)")
	}
	return func(s *Simulation) { s.logger = l }
}

// WithCollector mirrors every state change into c.
func WithCollector(c *metrics.Collector) Option {
	return func(s *Simulation) { s.collector = c }
}

// WithRand sets the random source for every stochastic choice. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("simulation: WithRand(nil)")
	}
	return func(s *Simulation) { s.rng = r }
}

// WithSeed is WithRand with a fresh source seeded by seed.
func WithSeed(seed int64) Option {
	return func(s *Simulation) { s.rng = rand.New(rand.NewSource(seed)) }
}

// WithThresholdHook registers fn to run once each time the graph crosses the
// giant-component threshold from below. fn runs after the session lock is
// released, so it may call back into the Simulation.
func WithThresholdHook(fn func(Report)) Option {
	return func(s *Simulation) { s.hook = fn }
}
