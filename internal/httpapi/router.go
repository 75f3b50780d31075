// Package httpapi exposes the webhook over HTTP.
package httpapi

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/jennylabs/jenny/internal/connectors/telegram"
)

const livenessText = "Jenny is online! This is the webhook endpoint for the Telegram bot."

// Gateway handles one decoded Telegram update.
type Gateway interface {
	HandleUpdate(ctx context.Context, update telegram.Update) error
}

type Dependencies struct {
	Gateway Gateway
	Logger  *slog.Logger
}

// NewRouter builds the HTTP handler. The webhook answers on both "/" and
// "/webhook" so either can be registered with Telegram.
func NewRouter(deps Dependencies) http.Handler {
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	mux := http.NewServeMux()
	webhook := webhookHandler(deps)
	mux.HandleFunc("/", webhook)
	mux.HandleFunc("/webhook", webhook)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	return mux
}

func webhookHandler(deps Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			w.Header().Set("Content-Type", "text/plain; charset=utf-8")
			_, _ = w.Write([]byte(livenessText))
		case http.MethodPost:
			var update telegram.Update
			if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
				deps.Logger.Error("webhook decode failed", "error", err)
				writeJSON(w, http.StatusInternalServerError, map[string]string{
					"status":  "error",
					"message": err.Error(),
				})
				return
			}
			if err := deps.Gateway.HandleUpdate(r.Context(), update); err != nil {
				deps.Logger.Error("webhook handling failed", "error", err)
				writeJSON(w, http.StatusInternalServerError, map[string]string{
					"status":  "error",
					"message": err.Error(),
				})
				return
			}
			writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		default:
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		}
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
