package httpapi

import (
	"context"
	"crypto/subtle"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrijs2005/heritagewatch/internal/common"
	"github.com/dmitrijs2005/heritagewatch/internal/server/services"
)

type ctxKey string

const principalKey ctxKey = "principal"

const requestIDHeaderName = "X-Request-Id"

func withPrincipal(ctx context.Context, p *services.Principal) context.Context {
	return context.WithValue(ctx, principalKey, p)
}

func principalFrom(ctx context.Context) *services.Principal {
	p, _ := ctx.Value(principalKey).(*services.Principal)
	return p
}

func (s *HTTPServer) requireAPIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := []byte(r.Header.Get(common.APIKeyHeaderName))
		if len(key) == 0 || subtle.ConstantTimeCompare(key, s.apiKey) != 1 {
			writeError(w, http.StatusForbidden, "invalid API key")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// requireSession accepts the session id in X-Authentication. Tools that only
// hold the signed token may send it as "Authorization: Bearer <token>".
func (s *HTTPServer) requireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var (
			p   *services.Principal
			err error
		)
		if id := r.Header.Get(common.AuthenticationHeaderName); id != "" {
			p, err = s.users.AuthenticateSession(r.Context(), id)
		} else if token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer "); ok && token != "" {
			p, err = s.users.Authenticate(r.Context(), token)
		} else {
			writeError(w, http.StatusUnauthorized, "missing session")
			return
		}
		if err != nil {
			if errors.Is(err, common.ErrorUnauthorized) {
				s.logger.Debug(r.Context(), "rejected session", "error", err)
				writeError(w, http.StatusUnauthorized, "session expired")
				return
			}
			s.fail(w, r, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(withPrincipal(r.Context(), p)))
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (s *HTTPServer) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		requestID, err := common.MakeRandHexString(8)
		if err == nil {
			w.Header().Set(requestIDHeaderName, requestID)
		}

		next.ServeHTTP(rec, r)

		s.logger.Info(r.Context(), "request",
			"request_id", requestID,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start))
	})
}
