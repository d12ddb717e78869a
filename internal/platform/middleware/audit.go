package middleware

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"jansetu/internal/audit"
	"jansetu/pkg/requestcontext"
)

// Recorder accepts audit events. Satisfied by audit.Worker.
type Recorder interface {
	Record(event *audit.Event)
}

// Audit records an audit event for every state-changing request. Read-only
// requests are skipped. Recording is non-blocking; a saturated audit pipeline
// never slows down request handling.
func Audit(recorder Recorder) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !mutating(r.Method) {
				next.ServeHTTP(w, r)
				return
			}

			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(sw, r)

			ctx := r.Context()
			outcome := "success"
			if sw.status >= http.StatusBadRequest {
				outcome = "failure"
			}
			recorder.Record(&audit.Event{
				Action:        r.Method + " " + chi.RouteContext(ctx).RoutePattern(),
				Actor:         "api",
				RequestID:     requestcontext.RequestID(ctx),
				CitizenID:     chi.URLParamFromCtx(ctx, "citizenID"),
				ApplicationID: chi.URLParamFromCtx(ctx, "applicationID"),
				SchemeID:      chi.URLParamFromCtx(ctx, "schemeID"),
				Outcome:       outcome,
				Details:       r.URL.Path,
			})
		})
	}
}

func mutating(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return true
	}
	return false
}
