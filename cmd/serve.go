package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/bizleads/local-leads/internal/model"
	"github.com/bizleads/local-leads/internal/service"
)

var servePort int

// leadRequest is the JSON body shared by the three API endpoints. The access
// tier arrives in the X-Access-Tier header, set by the hosting application's
// auth layer; an absent header means public.
type leadRequest struct {
	Location  string `json:"location"`
	Industry  string `json:"industry"`
	Recipient string `json:"recipient,omitempty"`
}

// leadOp runs one service operation for a decoded request.
type leadOp func(ctx context.Context, tier model.AccessTier, req leadRequest) service.Response

// handleLeadOp decodes the request, parses the tier header, runs the
// operation, and writes the structured response. Pipeline failures come back
// as 200s with ok=false; only malformed bodies get a 400.
func handleLeadOp(op leadOp) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req leadRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"ok":false,"message":"invalid request body","leads":[]}` + "\n"))
			return
		}

		tier := model.ParseTier(r.Header.Get("X-Access-Tier"))
		resp := op(r.Context(), tier, req)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(resp)
	}
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API for lead searches and exports",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		svc := initService(ctx)

		r := chi.NewRouter()
		r.Use(middleware.Recoverer)
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{http.MethodGet, http.MethodPost},
			AllowedHeaders: []string{"Content-Type", "X-Access-Tier"},
		}))

		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
		})

		r.Post("/api/leads", handleLeadOp(func(ctx context.Context, tier model.AccessTier, req leadRequest) service.Response {
			return svc.Search(ctx, tier, req.Location, req.Industry)
		}))
		r.Post("/api/export/email", handleLeadOp(func(ctx context.Context, tier model.AccessTier, req leadRequest) service.Response {
			return svc.ExportEmail(ctx, tier, req.Location, req.Industry, req.Recipient)
		}))
		r.Post("/api/export/csv", handleLeadOp(func(ctx context.Context, tier model.AccessTier, req leadRequest) service.Response {
			return svc.ExportCSV(ctx, tier, req.Location, req.Industry)
		}))

		port := servePort
		if port == 0 {
			port = cfg.Server.Port
		}

		srv := &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: r,
		}

		// Graceful shutdown
		go func() {
			<-ctx.Done()
			zap.L().Info("shutting down server")
			_ = srv.Shutdown(context.Background())
		}()

		zap.L().Info("starting server", zap.Int("port", port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return eris.Wrap(err, "server listen")
		}

		return nil
	},
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "server port (default from config)")
	rootCmd.AddCommand(serveCmd)
}
