package v1handler

import (
	"net/http"
	"strconv"

	"github.com/go-faster/jx"
	"github.com/google/uuid"

	"linkrouter/internal/router"
	"linkrouter/pkg/domain"
	"linkrouter/pkg/serrors"
)

// DefaultLimit is the page size used when the limit parameter is absent.
const DefaultLimit = 20

func pathResolutionID(r *http.Request) (domain.ResolutionID, error) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		return domain.ResolutionID{}, serrors.Wrap(serrors.ErrBadRequest, err, "invalid resolution id")
	}

	return domain.ResolutionID(id), nil
}

// CreateResolution resolves and records a URL for the authenticated user.
func (h Handler) CreateResolution(w http.ResponseWriter, r *http.Request) {
	req, err := DecodeCreateResolutionRequest(r.Body)
	if err != nil {
		h.writeError(w, r, badRequest(err))

		return
	}

	res, err := h.deps.Router.Resolve(r.Context(), GetUserIDFromContext(r.Context()), req.URL, router.ResolveOptions{
		FromNotification: req.FromNotification,
	})
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	status := http.StatusOK
	if res.Status == domain.ResolutionStatusPending {
		status = http.StatusAccepted
	}
	writeJSON(w, status, func(e *jx.Encoder) { EncodeResolution(e, *res) })
}

// ListResolutions returns a page of the user's resolutions.
func (h Handler) ListResolutions(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	limit := uint64(DefaultLimit)
	if v := q.Get("limit"); v != "" {
		n, err := strconv.ParseUint(v, 10, 32)
		if err != nil || n == 0 {
			h.writeError(w, r, serrors.With(serrors.ErrBadRequest, "invalid limit"))

			return
		}
		limit = n
	}

	items, next, err := h.deps.Router.UserResolutions(r.Context(),
		GetUserIDFromContext(r.Context()),
		domain.DestinationKind(q.Get("kind")),
		q.Get("cursor"),
		uint(limit))
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, func(e *jx.Encoder) { EncodeResolutionList(e, items, next) })
}

// GetResolution returns one of the user's resolutions.
func (h Handler) GetResolution(w http.ResponseWriter, r *http.Request) {
	id, err := pathResolutionID(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	res, err := h.deps.Router.Result(r.Context(), GetUserIDFromContext(r.Context()), id)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, func(e *jx.Encoder) { EncodeResolution(e, *res) })
}

// DeleteResolution removes one of the user's resolutions.
func (h Handler) DeleteResolution(w http.ResponseWriter, r *http.Request) {
	id, err := pathResolutionID(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	if err := h.deps.Router.Delete(r.Context(), GetUserIDFromContext(r.Context()), id); err != nil {
		h.writeError(w, r, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}
