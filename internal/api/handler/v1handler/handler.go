// Package v1handler implements the /v1 HTTP API.
package v1handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-faster/jx"
	"go.uber.org/zap"

	"linkrouter/internal/router"
	"linkrouter/pkg/logger"
	"linkrouter/pkg/serrors"
)

// Deps are the services the handlers call into.
type Deps struct {
	Router router.Router
}

type Handler struct {
	deps Deps
}

func New(deps Deps) *Handler {
	return &Handler{deps: deps}
}

// ErrorStatusCode is an error response together with its HTTP status.
type ErrorStatusCode struct {
	StatusCode int
	Response   Error
}

var kindStatus = map[serrors.Kind]int{ //nolint: gochecknoglobals
	serrors.ErrBadRequest:   http.StatusBadRequest,
	serrors.ErrUnauthorized: http.StatusUnauthorized,
	serrors.ErrForbidden:    http.StatusForbidden,
	serrors.ErrNotFound:     http.StatusNotFound,
	serrors.ErrConflict:     http.StatusConflict,
	serrors.ErrRateLimited:  http.StatusTooManyRequests,
	serrors.ErrUnavailable:  http.StatusServiceUnavailable,
	serrors.ErrTimeout:      http.StatusGatewayTimeout,
}

var kindMessage = map[serrors.Kind]string{ //nolint: gochecknoglobals
	serrors.ErrBadRequest:   "bad request",
	serrors.ErrUnauthorized: "unauthorized",
	serrors.ErrForbidden:    "forbidden",
	serrors.ErrNotFound:     "resource not found",
	serrors.ErrConflict:     "conflict",
	serrors.ErrRateLimited:  "too many requests",
	serrors.ErrUnavailable:  "service unavailable",
	serrors.ErrTimeout:      "timed out",
}

// NewError maps err to a response. Errors without a known kind are logged and
// reported as internal without leaking their text.
func (h Handler) NewError(ctx context.Context, err error) *ErrorStatusCode {
	kind := serrors.KindOf(err)
	status, ok := kindStatus[kind]
	if !ok {
		logger.Error(ctx, "internal error", zap.Error(err))

		return &ErrorStatusCode{
			StatusCode: http.StatusInternalServerError,
			Response: Error{
				Code:    serrors.ErrInternal.Error(),
				Message: "internal error",
			},
		}
	}

	msg := serrors.MessageOf(err)
	if msg == "" {
		msg = kindMessage[kind]
	}

	return &ErrorStatusCode{
		StatusCode: status,
		Response: Error{
			Code:    kind.Error(),
			Message: msg,
		},
	}
}

func writeJSON(w http.ResponseWriter, status int, encode func(e *jx.Encoder)) {
	var e jx.Encoder
	encode(&e)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(e.Bytes())
}

// writeError writes err as an error response.
func (h Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	res := h.NewError(r.Context(), err)
	writeJSON(w, res.StatusCode, func(e *jx.Encoder) { EncodeError(e, res.Response) })
}

// badRequest wraps a decoding failure.
func badRequest(err error) error {
	var se *serrors.Error
	if errors.As(err, &se) {
		return err
	}

	return serrors.Wrap(serrors.ErrBadRequest, err, "invalid request body: %s", err.Error())
}

// Register mounts the v1 routes on mux. Routes touching stored resolutions
// require a bearer token validated by sec.
func (h Handler) Register(mux *http.ServeMux, sec *SecHandler) {
	mux.HandleFunc("POST /v1/classify", h.Classify)
	mux.HandleFunc("POST /v1/linkify", h.Linkify)

	mux.Handle("POST /v1/resolutions", sec.Middleware(http.HandlerFunc(h.CreateResolution), h.writeError))
	mux.Handle("GET /v1/resolutions", sec.Middleware(http.HandlerFunc(h.ListResolutions), h.writeError))
	mux.Handle("GET /v1/resolutions/{id}", sec.Middleware(http.HandlerFunc(h.GetResolution), h.writeError))
	mux.Handle("DELETE /v1/resolutions/{id}", sec.Middleware(http.HandlerFunc(h.DeleteResolution), h.writeError))
}
