package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/aretw0/towers"
	"github.com/aretw0/towers/internal/config"
	"github.com/aretw0/towers/internal/presentation/tui"
	"github.com/aretw0/towers/pkg/domain"
	"github.com/aretw0/towers/pkg/observability"
	"github.com/aretw0/towers/pkg/session"
	"github.com/muesli/termenv"
	"github.com/prometheus/client_golang/prometheus"
)

// eventLine is the NDJSON record written per event in JSON mode.
type eventLine struct {
	Index int          `json:"index"`
	Event domain.Event `json:"event"`
}

// summaryLine is the NDJSON record written after the events when a summary is requested.
type summaryLine struct {
	Player string          `json:"player"`
	Turns  int             `json:"turns"`
	Done   bool            `json:"done"`
	Board  domain.Snapshot `json:"board"`
}

// Run plays one session with the given settings and writes its events to stdout.
// When a metrics address is set, the metrics stay served until ctx is cancelled.
func Run(ctx context.Context, cfg config.Config, stdout io.Writer) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := createLogger(cfg)
	if err != nil {
		return err
	}

	registry := prometheus.NewRegistry()
	metrics, err := observability.NewMetrics(registry)
	if err != nil {
		return fmt.Errorf("failed to register metrics: %w", err)
	}

	if cfg.MetricsAddr != "" {
		stop, err := serveMetrics(cfg.MetricsAddr, registry, logger)
		if err != nil {
			return err
		}
		defer stop()
	}

	sess, err := towers.NewSession(cfg.Disks, cfg.Player,
		session.WithLogger(logger),
		session.WithLifecycleHooks(metrics.Hooks()),
	)
	if err != nil {
		return fmt.Errorf("error initializing session: %w", err)
	}

	profile := colorProfile(cfg.Color, stdout)
	if cfg.Format == config.FormatText && profile != termenv.Ascii {
		tui.PrintBanner(stdout, profile, towers.Version)
	}

	runErr := writeEvents(ctx, sess, cfg, profile, stdout)
	if runErr == nil && cfg.Summary {
		runErr = writeSummary(sess, cfg, profile, stdout)
	}
	if isInterrupted(runErr) {
		logger.Info("session interrupted", "signal", signalOf(ctx), "turns", sess.Turns())
		return nil // Exit 0 for interruptions
	}
	if runErr != nil {
		return runErr
	}

	if cfg.MetricsAddr != "" {
		logger.Info("session finished, metrics still served; press Ctrl+C to exit", "addr", cfg.MetricsAddr)
		<-ctx.Done()
		logger.Info("stopping metrics server", "signal", signalOf(ctx))
	}
	return nil
}

func writeEvents(ctx context.Context, sess *session.Session, cfg config.Config, profile termenv.Profile, w io.Writer) error {
	styler := tui.NewStyler(profile)
	encoder := json.NewEncoder(w)

	for i, event := range Window(sess.Iter().All(), cfg.Skip, cfg.Take) {
		if err := ctx.Err(); err != nil {
			return err
		}
		if cfg.Format == config.FormatJSON {
			if err := encoder.Encode(eventLine{Index: i, Event: event}); err != nil {
				return fmt.Errorf("failed to write event: %w", err)
			}
			continue
		}
		if _, err := fmt.Fprintln(w, styler.FormatEvent(i, event)); err != nil {
			return fmt.Errorf("failed to write event: %w", err)
		}
	}
	return nil
}

func writeSummary(sess *session.Session, cfg config.Config, profile termenv.Profile, w io.Writer) error {
	if cfg.Format == config.FormatJSON {
		return json.NewEncoder(w).Encode(summaryLine{
			Player: sess.PlayerName(),
			Turns:  sess.Turns(),
			Done:   sess.Done(),
			Board:  sess.Board(),
		})
	}

	outcome, done := sess.Outcome()
	summary := tui.Summary{
		Player: sess.PlayerName(),
		Turns:  sess.Turns(),
		Done:   done,
		Final:  outcome,
		Board:  sess.Board(),
	}

	render, err := tui.NewRenderer(profile != termenv.Ascii)
	if err != nil {
		return err
	}
	out, err := render(summary.Markdown())
	if err != nil {
		return fmt.Errorf("failed to render summary: %w", err)
	}
	_, err = io.WriteString(w, out)
	return err
}

// serveMetrics starts the metrics endpoint in the background.
// The returned stop function shuts the server down and releases the listener.
func serveMetrics(addr string, gatherer prometheus.Gatherer, logger *slog.Logger) (stop func(), err error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("failed to listen on %s: %w", addr, err)
	}
	srv := &http.Server{
		Handler:           observability.NewRouter(gatherer),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", "err", err)
		}
	}()
	logger.Info("serving metrics", "addr", ln.Addr().String())

	return func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Warn("failed to stop metrics server", "err", err)
		}
		// Serve may not have picked up the listener yet.
		_ = ln.Close()
	}, nil
}
