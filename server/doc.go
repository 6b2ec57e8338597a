// Package server exposes one simulation session over HTTP.
//
// Routes (all bodies are JSON, every response carries the X-Session-ID header):
//
//	GET  /stats             engine statistics
//	GET  /report            full report (distribution, top components, assignment)
//	GET  /components        component analysis records
//	GET  /cycles            every simple cycle; 422 when the cycle limit is exceeded
//	POST /cycles/highlight  pick the cycle of a random unicyclic component
//	POST /edges             {"a": 0, "b": 1} attach a spring
//	POST /step              one random connection
//	POST /generate          {"p": 0.02} reset and sample G(N, p)
//	POST /reset             fresh session
//	POST /autorun/start     add a random connection every step interval
//	POST /autorun/stop      stop the ticker
//	GET  /metrics           Prometheus exposition
//
// Reset and generate stop a running auto-run.
package server
