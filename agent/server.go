package agent

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"multiagent/game"
	"multiagent/game/grid"
	"multiagent/searcher"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

type decideRequest struct {
	Layout string `json:"layout"`
	Agent  Config `json:"agent"`
}

type decideResponse struct {
	Action   game.Action `json:"action"`
	Nodes    int         `json:"nodes"`
	Cutoffs  int         `json:"cutoffs"`
	Duration string      `json:"duration"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type server struct {
	defaults Config
}

// NewServer returns a handler answering POST /decide with Pacman's move for a layout.
// Fields missing from the request's agent config fall back to defaults.
func NewServer(defaults Config) http.Handler {
	s := &server{defaults: defaults}
	mux := http.NewServeMux()
	mux.HandleFunc("POST /decide", s.handleDecide)
	return mux
}

// Serve blocks serving decisions on addr.
func Serve(addr string, defaults Config) error {
	if err := defaults.Validate(); err != nil {
		return err
	}
	log.Info().Str("addr", addr).Str("agent", defaults.Agent).Int("depth", defaults.Depth).Msg("serving decisions")
	return http.ListenAndServe(addr, NewServer(defaults))
}

func (s *server) handleDecide(w http.ResponseWriter, r *http.Request) {
	req := decideRequest{Agent: s.defaults}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	state, err := grid.Parse(req.Layout)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	rng := rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	pacman, err := New(req.Agent, rng)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	action, metric, err := pacman.FindMove(state)
	if errors.Is(err, searcher.ErrNoLegalActions) {
		writeError(w, http.StatusUnprocessableEntity, err)
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	log.Debug().Str("agent", req.Agent.Agent).Str("action", string(action)).Msg("decided")
	writeJSON(w, http.StatusOK, decideResponse{
		Action:   action,
		Nodes:    metric.Nodes,
		Cutoffs:  metric.Cutoffs,
		Duration: metric.Duration.String(),
	})
}

func writeError(w http.ResponseWriter, status int, err error) {
	log.Warn().Err(err).Int("status", status).Msg("rejected decide request")
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}
