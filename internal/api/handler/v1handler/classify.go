package v1handler

import (
	"net/http"
	"strings"

	"github.com/go-faster/jx"

	"linkrouter/internal/linkify"
	"linkrouter/internal/linkparser"
	"linkrouter/pkg/serrors"
)

// Classify answers where a single URL or shorthand leads, without storing anything.
func (h Handler) Classify(w http.ResponseWriter, r *http.Request) {
	req, err := DecodeClassifyRequest(r.Body)
	if err != nil {
		h.writeError(w, r, badRequest(err))

		return
	}

	d := linkparser.Classify(req.URL)
	writeJSON(w, http.StatusOK, func(e *jx.Encoder) {
		EncodeClassification(e, d, linkparser.BuildURL(d))
	})
}

// Linkify classifies every anchor of an HTML fragment.
func (h Handler) Linkify(w http.ResponseWriter, r *http.Request) {
	req, err := DecodeLinkifyRequest(r.Body)
	if err != nil {
		h.writeError(w, r, badRequest(err))

		return
	}

	anchors, err := linkify.Extract(strings.NewReader(req.HTML))
	if err != nil {
		h.writeError(w, r, serrors.Wrap(serrors.ErrBadRequest, err, "could not parse html"))

		return
	}

	writeJSON(w, http.StatusOK, func(e *jx.Encoder) { EncodeAnchors(e, anchors) })
}
