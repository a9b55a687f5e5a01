package cli

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/enetx/g"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/enetx/dfa"
)

// ReadResponse is the JSON body returned by GET /read.
type ReadResponse struct {
	RequestID  string    `json:"request_id"`
	Input      string    `json:"input"`
	Accepted   bool      `json:"accepted"`
	State      dfa.State `json:"state"`
	Kind       string    `json:"kind,omitempty"`
	Error      string    `json:"error,omitempty"`
	Suggestion string    `json:"suggestion,omitempty"`
}

// NewServeCommand creates the serve command.
func NewServeCommand(rootOpts *RootOptions) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the automaton over HTTP",
		Long: `Start an HTTP server that checks words against the automaton.

  GET /read?input=<word>   accept/reject as JSON (400 on invalid symbols)
  GET /metrics             Prometheus metrics

Each request runs on its own cursor; the definition is shared.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), rootOpts, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")

	return cmd
}

func runServe(ctx context.Context, opts *RootOptions, addr string) error {
	file, def, err := loadDefinition(opts)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load definition", err)
	}

	logger := opts.logger("serve").With().Str("definition", file.Title()).Logger()

	srv := &http.Server{
		Addr:              addr,
		Handler:           NewHandler(def, NewMetrics(), logger),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", addr).Msg("listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		logger.Info().Msg("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return WrapExitError(ExitCommandError, "server failed", err)
	}
}

// NewHandler serves reads against def. Every request gets its own automaton.
func NewHandler(def *dfa.Definition, metrics *Metrics, logger zerolog.Logger) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /read", func(w http.ResponseWriter, r *http.Request) {
		input := r.URL.Query().Get("input")
		a := def.NewAutomaton()

		accepted, err := a.Read(g.String(input))

		resp := ReadResponse{
			RequestID: uuid.New().String(),
			Input:     input,
			Accepted:  accepted,
			State:     a.Current(),
		}

		status := http.StatusOK
		result := "rejected"

		switch {
		case err != nil:
			status = http.StatusBadRequest
			result = "invalid"
			resp.Kind = dfa.KindOf(err).String()
			resp.Error = err.Error()

			var symErr *dfa.ErrInvalidSymbol
			if errors.As(err, &symErr) {
				resp.Suggestion = string(symErr.Suggestion)
			}
		case accepted:
			result = "accepted"
		}

		metrics.RecordRead(result, len(input))

		logger.Debug().
			Str("request_id", resp.RequestID).
			Str("result", result).
			Int("state", int(resp.State)).
			Msg("read")

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)

		if err := json.NewEncoder(w).Encode(resp); err != nil {
			logger.Error().Err(err).Str("request_id", resp.RequestID).Msg("failed to write response")
		}
	})

	mux.Handle("GET /metrics", promhttp.HandlerFor(metrics.Registry(), promhttp.HandlerOpts{}))

	return mux
}
