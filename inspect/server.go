// Package inspect serves an elaborated clock plan over HTTP so that the
// negotiated clocks, their sources, and the emitted oscillator fragments can
// be examined in a browser.
package inspect

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/pkg/browser"
	"github.com/syifan/goseth"

	"github.com/chiplab/harnessclock/harness"
)

// Server exposes one elaborated instantiator.
type Server struct {
	inst        *harness.Instantiator
	portNumber  int
	openBrowser bool

	listener net.Listener
}

// NewServer creates a server over the given instantiator.
func NewServer(inst *harness.Instantiator) *Server {
	return &Server{inst: inst}
}

// WithPortNumber sets the port to listen on. Ports below 1000 are rejected
// in favor of a random port.
func (s *Server) WithPortNumber(portNumber int) *Server {
	if portNumber < 1000 {
		slog.Warn("inspector port not allowed, using a random port",
			"port", portNumber)
		portNumber = 0
	}

	s.portNumber = portNumber

	return s
}

// WithBrowser makes Start open the inspector page in the default browser.
func (s *Server) WithBrowser() *Server {
	s.openBrowser = true
	return s
}

// Start begins serving in the background and returns the inspector URL.
func (s *Server) Start() (string, error) {
	addr := ":0"
	if s.portNumber > 1000 {
		addr = ":" + strconv.Itoa(s.portNumber)
	}

	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return "", fmt.Errorf("inspect: listening on %s: %w", addr, err)
	}
	s.listener = listener

	url := fmt.Sprintf("http://localhost:%d",
		listener.Addr().(*net.TCPAddr).Port)
	slog.Info("serving clock plan inspector", "url", url)

	go func() {
		if err := http.Serve(listener, s.Handler()); err != nil {
			slog.Error("inspector server stopped", "error", err)
		}
	}()

	if s.openBrowser {
		if err := browser.OpenURL(url); err != nil {
			slog.Warn("could not open browser", "error", err)
		}
	}

	return url, nil
}

// Stop closes the server's listener.
func (s *Server) Stop() {
	if s.listener != nil {
		s.listener.Close()
	}
}

// Handler returns the route table without starting a listener.
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/api/strategy", s.strategy)
	r.HandleFunc("/api/clocks", s.listClocks)
	r.HandleFunc("/api/clock/{name}", s.clockDetails)
	r.HandleFunc("/api/artifacts", s.listArtifacts)
	r.HandleFunc("/api/artifact/{module}", s.artifactSource)
	r.HandleFunc("/", s.index)

	return r
}

func (s *Server) strategy(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, map[string]any{
		"strategy":     s.inst.Strategy().Name(),
		"instantiated": s.inst.Instantiated(),
	})
}

type clockSummary struct {
	Name   string  `json:"name"`
	Freq   string  `json:"freq"`
	FreqHz float64 `json:"freq_hz"`
	Driven bool    `json:"driven"`
}

func (s *Server) listClocks(w http.ResponseWriter, _ *http.Request) {
	requests := s.inst.Registry().Requests()

	summaries := make([]clockSummary, 0, len(requests))
	for _, req := range requests {
		summaries = append(summaries, clockSummary{
			Name:   req.Name,
			Freq:   req.Freq.String(),
			FreqHz: float64(req.Freq),
			Driven: req.Bundle.Driven(),
		})
	}

	writeJSON(w, summaries)
}

func (s *Server) clockDetails(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	req := s.findClockOr404(w, name)
	if req == nil {
		return
	}

	serializer := goseth.NewSerializer()
	serializer.SetRoot(*req)
	serializer.SetMaxDepth(2)
	if err := serializer.Serialize(w); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (s *Server) listArtifacts(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, s.artifacts())
}

func (s *Server) artifactSource(w http.ResponseWriter, r *http.Request) {
	module := mux.Vars(r)["module"]

	for _, artifact := range s.artifacts() {
		if artifact.Module == module {
			w.Header().Set("Content-Type", "text/plain; charset=utf-8")
			fmt.Fprint(w, artifact.Render())
			return
		}
	}

	http.Error(w, "artifact "+module+" not found", http.StatusNotFound)
}

func (s *Server) index(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprintf(w, `<!DOCTYPE html>
<html>
<head><title>Harness Clock Plan</title></head>
<body>
<h1>Harness Clock Plan</h1>
<p>Strategy: %s</p>
<ul>
<li><a href="/api/clocks">clocks</a></li>
<li><a href="/api/artifacts">oscillator artifacts</a></li>
</ul>
</body>
</html>
`, s.inst.Strategy().Name())
}

func (s *Server) artifacts() []harness.OscillatorModel {
	if osc, ok := s.inst.Strategy().(*harness.AbsoluteFreqStrategy); ok {
		return osc.Artifacts()
	}

	return nil
}

func (s *Server) findClockOr404(
	w http.ResponseWriter,
	name string,
) *harness.ClockRequest {
	for _, req := range s.inst.Registry().Requests() {
		if req.Name == name {
			return &req
		}
	}

	http.Error(w, "clock "+name+" not found", http.StatusNotFound)

	return nil
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
