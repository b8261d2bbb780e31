package middlewares

import (
	"bytes"
	"context"
	"net/http"

	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/phixelforge/internal/logger"
)

// TxMiddleware runs the request in a database transaction. The transaction is
// committed when the handler answers below 400 and rolled back otherwise.
// The response is held back until the outcome is known, so a failed commit
// answers 500 instead of the handler's status.
func TxMiddleware(db *sqlx.DB) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tx, err := db.BeginTxx(r.Context(), nil)
			if err != nil {
				logger.Log.Errorw("failed to begin transaction", "error", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
				return
			}

			defer func() {
				if rec := recover(); rec != nil {
					_ = tx.Rollback()
					panic(rec)
				}
			}()

			bw := newBufferedWriter(w)
			next.ServeHTTP(bw, r.WithContext(setTxToContext(r.Context(), tx)))

			if bw.statusCode >= http.StatusBadRequest {
				if err := tx.Rollback(); err != nil {
					logger.Log.Errorw("failed to rollback transaction", "error", err)
				}
				bw.flush()
				return
			}

			if err := tx.Commit(); err != nil {
				logger.Log.Errorw("failed to commit transaction", "error", err)
				bw.discard()
				writeError(w, http.StatusInternalServerError, "Internal server error")
				return
			}
			bw.flush()
		})
	}
}

// bufferedWriter holds the status and body of a response until flushed.
// Headers go straight to the underlying writer's map.
type bufferedWriter struct {
	w          http.ResponseWriter
	statusCode int
	body       bytes.Buffer
}

func newBufferedWriter(w http.ResponseWriter) *bufferedWriter {
	return &bufferedWriter{w: w, statusCode: http.StatusOK}
}

func (bw *bufferedWriter) Header() http.Header { return bw.w.Header() }

func (bw *bufferedWriter) WriteHeader(statusCode int) { bw.statusCode = statusCode }

func (bw *bufferedWriter) Write(b []byte) (int, error) { return bw.body.Write(b) }

func (bw *bufferedWriter) flush() {
	bw.w.WriteHeader(bw.statusCode)
	if bw.body.Len() > 0 {
		_, _ = bw.w.Write(bw.body.Bytes())
	}
}

// discard drops the held response along with the headers the handler set.
func (bw *bufferedWriter) discard() {
	bw.body.Reset()
	h := bw.w.Header()
	for k := range h {
		delete(h, k)
	}
}

type txKey struct{}

func setTxToContext(ctx context.Context, tx *sqlx.Tx) context.Context {
	return context.WithValue(ctx, txKey{}, tx)
}

// GetTxFromContext retrieves the transaction from the context. Returns nil if not present.
func GetTxFromContext(ctx context.Context) *sqlx.Tx {
	tx, _ := ctx.Value(txKey{}).(*sqlx.Tx)
	return tx
}
