package middlewares

import (
	"bytes"
	"context"
	"errors"
	"net/http"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-entities/internal/logger"
)

// TxMiddleware runs each request in a single database transaction.
// The response is buffered until the transaction ends: a handler status of 400 or
// above rolls the transaction back, anything else commits it. A failed commit
// replaces the buffered response with a 500. Hooks registered with AfterCommit
// run only after a successful commit, once the response has been flushed.
func TxMiddleware(db *sqlx.DB) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := logger.FromContext(ctx)

			tx, err := db.BeginTxx(ctx, nil)
			if err != nil {
				log.Errorw("failed to begin transaction", "error", err)
				writeInternalError(w)
				return
			}

			defer func() {
				if rec := recover(); rec != nil {
					tx.Rollback()
					panic(rec)
				}
			}()

			state := &txState{tx: tx}
			bw := &bufferedWriter{ResponseWriter: w, statusCode: http.StatusOK}

			next.ServeHTTP(bw, r.WithContext(context.WithValue(ctx, txKey, state)))

			if bw.statusCode >= http.StatusBadRequest {
				if err := tx.Rollback(); err != nil {
					log.Errorw("failed to rollback transaction", "error", err)
				}
				bw.flush()
				return
			}

			if err := tx.Commit(); err != nil {
				log.Errorw("failed to commit transaction", "error", err)
				writeInternalError(w)
				return
			}

			bw.flush()
			if err := http.NewResponseController(w).Flush(); err != nil && !errors.Is(err, http.ErrNotSupported) {
				log.Warnw("failed to flush response", "error", err)
			}

			hookCtx := context.WithoutCancel(ctx)
			for _, hook := range state.hooks {
				hook(hookCtx)
			}
		})
	}
}

// contextKey is an unexported type for keys in context
type contextKey struct{}

var txKey = contextKey{}

type txState struct {
	tx    *sqlx.Tx
	hooks []func(ctx context.Context)
}

// GetTxFromContext retrieves the transaction from the context. Returns nil if not present.
func GetTxFromContext(ctx context.Context) *sqlx.Tx {
	state, _ := ctx.Value(txKey).(*txState)
	if state == nil {
		return nil
	}
	return state.tx
}

// AfterCommit schedules fn to run once the request transaction commits.
// Without a transaction in ctx, fn runs immediately.
func AfterCommit(ctx context.Context, fn func(ctx context.Context)) {
	state, _ := ctx.Value(txKey).(*txState)
	if state == nil {
		fn(ctx)
		return
	}
	state.hooks = append(state.hooks, fn)
}

// bufferedWriter holds the status and body until the transaction outcome is known.
type bufferedWriter struct {
	http.ResponseWriter
	statusCode int
	body       bytes.Buffer
}

func (bw *bufferedWriter) WriteHeader(code int) {
	bw.statusCode = code
}

func (bw *bufferedWriter) Write(b []byte) (int, error) {
	return bw.body.Write(b)
}

func (bw *bufferedWriter) flush() {
	bw.ResponseWriter.WriteHeader(bw.statusCode)
	bw.ResponseWriter.Write(bw.body.Bytes())
}

func writeInternalError(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusInternalServerError)
	w.Write([]byte(`{"error":"Internal server error"}` + "\n"))
}
