package main

import (
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	httpadapter "svw.info/sudograph/internal/adapters/http"
	"svw.info/sudograph/internal/hint"
	"svw.info/sudograph/internal/infrastructure/storage"
	"svw.info/sudograph/internal/solver"
	"svw.info/sudograph/internal/usecase"
	"svw.info/sudograph/internal/validator"
)

var (
	serveAddr    string
	servePersist string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the JSON solve/validate/hint API",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "listen address")
	serveCmd.Flags().StringVar(&servePersist, "persist-path", "./data", "save directory")
}

// statusWriter captures HTTP status and bytes written.
type statusWriter struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}

// requestLogger logs method, path, status, bytes, and duration in a human-readable format.
func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w}
		next.ServeHTTP(sw, r)
		dur := time.Since(start)
		logger.Info("http",
			"method", r.Method,
			"path", r.URL.Path,
			"status", sw.status,
			"bytes", sw.bytes,
			"dur", dur.Round(time.Millisecond),
		)
	})
}

func runServe(cmd *cobra.Command, args []string) error {
	logger := newLogger()
	if err := os.MkdirAll(servePersist, 0o755); err != nil {
		return err
	}

	// Wire providers → use cases → HTTP adapter
	s := solver.NewGraphSolver()
	v := validator.New()
	hin := hint.NewSingles()
	st := storage.NewFS(servePersist)
	uc := usecase.NewService(s, v, hin, st)
	h := httpadapter.New(uc)

	mux := http.NewServeMux()
	h.Register(mux)
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              serveAddr,
		Handler:           requestLogger(logger, mux),
		ReadHeaderTimeout: 5 * time.Second,
	}
	logger.Info("listening", "addr", serveAddr, "persist", servePersist)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server error", "err", err)
		return err
	}
	return nil
}
