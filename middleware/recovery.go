package middleware

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/JenilSojitra/GenericApiReponse/response"
)

// RecoveryConfig configures the fault boundary.
type RecoveryConfig struct {
	// Logger receives the panic value and stack. Defaults to slog.Default.
	Logger *slog.Logger

	// RedactErrors replaces the fault message in the response body with a
	// generic one. Leave false in development to see the real message;
	// enable in production to avoid leaking internals to clients.
	RedactErrors bool
}

// Recovery is the fault boundary with default configuration: any panic
// escaping downstream handlers is caught once, logged with its stack, and
// answered as a 500 failure envelope carrying the fault message verbatim.
func Recovery(next http.Handler) http.Handler {
	return RecoveryWith(RecoveryConfig{})(next)
}

// RecoveryWith returns a fault boundary middleware with the given config.
// Install it outermost; the panic is considered handled and not rethrown.
func RecoveryWith(cfg RecoveryConfig) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}

				log := cfg.Logger
				if log == nil {
					log = slog.Default()
				}
				log.Error("panic recovered",
					slog.Any("error", rec),
					slog.String("request_id", GetRequestID(r.Context())),
					slog.String("stack", string(debug.Stack())),
				)

				msg := panicMessage(rec)
				if cfg.RedactErrors {
					msg = "An unexpected error occurred"
				}

				env := response.FailWith(
					response.NewError(response.CodeInternalError, msg),
					response.WithMessage("Internal server error"),
					response.WithCode(http.StatusInternalServerError),
				)

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				_ = json.NewEncoder(w).Encode(env)
			}()

			next.ServeHTTP(w, r)
		})
	}
}

func panicMessage(rec any) string {
	if err, ok := rec.(error); ok {
		return err.Error()
	}
	return fmt.Sprint(rec)
}
