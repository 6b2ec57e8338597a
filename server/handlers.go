package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/katalvlaran/giantgraph/builder"
	"github.com/katalvlaran/giantgraph/core"
	"github.com/katalvlaran/giantgraph/dfs"
	"github.com/katalvlaran/giantgraph/simulation"
)

// EdgeRequest is the body of POST /edges.
type EdgeRequest struct {
	A *int `json:"a" validate:"required,gte=0"`
	B *int `json:"b" validate:"required,gte=0"`
}

// GenerateRequest is the body of POST /generate.
type GenerateRequest struct {
	P *float64 `json:"p" validate:"required,gte=0,lte=1"`
}

// EdgeResponse answers POST /edges.
type EdgeResponse struct {
	Added bool       `json:"added"`
	Stats core.Stats `json:"stats"`
}

// StepResponse answers POST /step.
type StepResponse struct {
	Connection simulation.Connection `json:"connection"`
	Stats      core.Stats            `json:"stats"`
}

// CyclesResponse answers GET /cycles.
type CyclesResponse struct {
	Count  int     `json:"count"`
	Cycles [][]int `json:"cycles"`
}

// HighlightResponse answers POST /cycles/highlight.
type HighlightResponse struct {
	Found bool   `json:"found"`
	Cycle []int  `json:"cycle,omitempty"`
	Text  string `json:"text,omitempty"`
}

// AutorunResponse answers the /autorun routes.
type AutorunResponse struct {
	Running bool `json:"running"`
	Steps   int  `json:"steps"`
	Changed bool `json:"changed"`
}

// ErrorResponse is the body of every non-2xx answer.
type ErrorResponse struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

func (s *Server) getStats(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, s.sim.Stats())
}

func (s *Server) getReport(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, s.sim.Report())
}

func (s *Server) getComponents(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, s.sim.Graph().ComponentAnalysis())
}

func (s *Server) getCycles(w http.ResponseWriter, r *http.Request) {
	cycles, err := s.sim.FindCycles(r.Context())
	if err != nil {
		s.respondFailure(w, "find cycles", err)
		return
	}
	if cycles == nil {
		cycles = [][]int{}
	}
	s.respondJSON(w, http.StatusOK, CyclesResponse{Count: len(cycles), Cycles: cycles})
}

func (s *Server) highlightCycle(w http.ResponseWriter, r *http.Request) {
	cycle, ok := s.sim.HighlightCycle(r.Context())
	s.respondJSON(w, http.StatusOK, HighlightResponse{
		Found: ok,
		Cycle: cycle,
		Text:  simulation.FormatCycle(cycle),
	})
}

func (s *Server) attachSpring(w http.ResponseWriter, r *http.Request) {
	var req EdgeRequest
	if !s.decode(w, r, &req) {
		return
	}
	added, err := s.sim.AttachSpring(r.Context(), *req.A, *req.B)
	if err != nil {
		s.respondFailure(w, "attach spring", err)
		return
	}
	status := http.StatusCreated
	if !added {
		status = http.StatusOK
	}
	s.respondJSON(w, status, EdgeResponse{Added: added, Stats: s.sim.Stats()})
}

func (s *Server) step(w http.ResponseWriter, r *http.Request) {
	conn, err := s.sim.AddRandomConnection(r.Context())
	if err != nil {
		s.respondFailure(w, "step", err)
		return
	}
	s.respondJSON(w, http.StatusOK, StepResponse{Connection: conn, Stats: s.sim.Stats()})
}

func (s *Server) generate(w http.ResponseWriter, r *http.Request) {
	var req GenerateRequest
	if !s.decode(w, r, &req) {
		return
	}
	s.runner.stop()
	if err := s.sim.GenerateRandomGraph(r.Context(), *req.P); err != nil {
		s.respondFailure(w, "generate", err)
		return
	}
	w.Header().Set(SessionHeader, s.sim.ID().String())
	s.respondJSON(w, http.StatusOK, s.sim.Report())
}

func (s *Server) reset(w http.ResponseWriter, r *http.Request) {
	s.runner.stop()
	if err := s.sim.Reset(r.Context()); err != nil {
		s.respondFailure(w, "reset", err)
		return
	}
	w.Header().Set(SessionHeader, s.sim.ID().String())
	s.respondJSON(w, http.StatusOK, s.sim.Stats())
}

func (s *Server) autorunStatus(w http.ResponseWriter, r *http.Request) {
	running, steps := s.runner.status()
	s.respondJSON(w, http.StatusOK, AutorunResponse{Running: running, Steps: steps})
}

func (s *Server) autorunStart(w http.ResponseWriter, r *http.Request) {
	changed := s.runner.start()
	running, steps := s.runner.status()
	status := http.StatusAccepted
	if !changed {
		status = http.StatusConflict
	}
	s.respondJSON(w, status, AutorunResponse{Running: running, Steps: steps, Changed: changed})
}

func (s *Server) autorunStop(w http.ResponseWriter, r *http.Request) {
	changed := s.runner.stop()
	running, steps := s.runner.status()
	s.respondJSON(w, http.StatusOK, AutorunResponse{Running: running, Steps: steps, Changed: changed})
}

// decode reads and validates a JSON body, answering 400 on failure.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return false
	}
	if err := s.validate.Struct(dst); err != nil {
		s.respondError(w, http.StatusBadRequest, "validation error: "+err.Error())
		return false
	}

	return true
}

// respondFailure maps an operation error onto a status code.
func (s *Server) respondFailure(w http.ResponseWriter, op string, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, simulation.ErrInvalidNodes),
		errors.Is(err, builder.ErrInvalidProbability):
		status = http.StatusBadRequest
	case errors.Is(err, simulation.ErrTooFewNodes):
		status = http.StatusConflict
	case errors.Is(err, dfs.ErrCycleLimit):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		status = http.StatusServiceUnavailable
	}
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", zap.String("op", op), zap.Error(err))
	}
	s.respondError(w, status, err.Error())
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Error("failed to encode response", zap.Error(err))
	}
}

func (s *Server) respondError(w http.ResponseWriter, status int, message string) {
	s.respondJSON(w, status, ErrorResponse{Error: true, Message: message, Code: status})
}
