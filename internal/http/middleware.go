package apihttp

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/example/demolab/internal/rate"
	"github.com/example/demolab/pkg/jsonutil"
	"github.com/google/uuid"
)

type ctxKey string

const ctxKeyRequestID ctxKey = "req_id"

// RequestID middleware injects a request id into context and response header.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := uuid.NewString()
		r = r.WithContext(context.WithValue(r.Context(), ctxKeyRequestID, reqID))
		w.Header().Set("X-Request-ID", reqID)
		next.ServeHTTP(w, r)
	})
}

// Logger middleware logs minimal structured info per request.
func Logger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rlw := &respLogger{ResponseWriter: w, status: 200}
		next.ServeHTTP(rlw, r)
		reqID, _ := r.Context().Value(ctxKeyRequestID).(string)
		ip := rate.IPFromRequest(r)
		log.Printf("event=request method=%s path=%s status=%d dur_ms=%d ip=%s req_id=%s", r.Method, r.URL.Path, rlw.status, time.Since(start).Milliseconds(), ip, reqID)
	})
}

type respLogger struct {
	http.ResponseWriter
	status int
}

func (r *respLogger) WriteHeader(code int) { r.status = code; r.ResponseWriter.WriteHeader(code) }

// CORS middleware: allows cross-origin requests from the demo page.
func CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RateLimit middleware enforces per-IP rate limiting.
func RateLimit(lm *rate.LimiterMap) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := rate.IPFromRequest(r)
			if !lm.Allow(ip) {
				jsonutil.Error(w, http.StatusTooManyRequests, "rate limited")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
