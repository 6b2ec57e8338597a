// Package simulation runs a headless random-graph experiment on top of the
// core engine: nodes are connected one edge at a time (by hand, at random,
// or by sampling a whole G(n,p) graph) until a giant component emerges.
//
// A Simulation owns exactly one core.Graph at a time. Reset and
// GenerateRandomGraph replace the engine wholesale rather than clearing it.
// After every mutation the session refreshes its metrics, and the first time
// the edge probability reaches 1/N it logs the crossing and calls the
// threshold hook with a full Report.
//
// Every operation is wrapped in an OpenTelemetry span from the
// "giantgraph.simulation" tracer; with no provider installed these are no-ops.
package simulation
