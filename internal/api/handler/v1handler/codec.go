package v1handler

import (
	"io"
	"time"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"github.com/google/uuid"

	"linkrouter/internal/linkify"
	"linkrouter/pkg/domain"
)

// maxBodyBytes caps request bodies. Linkify bodies carry whole HTML fragments.
const maxBodyBytes = 1 << 20

// ClassifyRequest is the body of POST /v1/classify.
type ClassifyRequest struct {
	URL string
}

// LinkifyRequest is the body of POST /v1/linkify.
type LinkifyRequest struct {
	HTML string
}

// CreateResolutionRequest is the body of POST /v1/resolutions.
type CreateResolutionRequest struct {
	URL              string
	FromNotification bool
}

// Error is the body of every failed request.
type Error struct {
	Code    string
	Message string
}

func readBody(r io.Reader) (*jx.Decoder, error) {
	b, err := io.ReadAll(io.LimitReader(r, maxBodyBytes+1))
	if err != nil {
		return nil, errors.Wrap(err, "read body")
	}
	if len(b) > maxBodyBytes {
		return nil, errors.New("body too large")
	}

	return jx.DecodeBytes(b), nil
}

// DecodeClassifyRequest reads {"url": "..."}. Unknown fields are ignored.
func DecodeClassifyRequest(r io.Reader) (*ClassifyRequest, error) {
	d, err := readBody(r)
	if err != nil {
		return nil, err
	}

	var out ClassifyRequest
	if err := d.Obj(func(d *jx.Decoder, key string) error {
		switch key {
		case "url":
			v, err := d.Str()
			if err != nil {
				return errors.Wrap(err, "url")
			}
			out.URL = v
		default:
			return d.Skip()
		}

		return nil
	}); err != nil {
		return nil, errors.Wrap(err, "decode classify request")
	}

	return &out, nil
}

// DecodeLinkifyRequest reads {"html": "..."}.
func DecodeLinkifyRequest(r io.Reader) (*LinkifyRequest, error) {
	d, err := readBody(r)
	if err != nil {
		return nil, err
	}

	var out LinkifyRequest
	if err := d.Obj(func(d *jx.Decoder, key string) error {
		switch key {
		case "html":
			v, err := d.Str()
			if err != nil {
				return errors.Wrap(err, "html")
			}
			out.HTML = v
		default:
			return d.Skip()
		}

		return nil
	}); err != nil {
		return nil, errors.Wrap(err, "decode linkify request")
	}

	return &out, nil
}

// DecodeCreateResolutionRequest reads {"url": "...", "fromNotification": bool}.
func DecodeCreateResolutionRequest(r io.Reader) (*CreateResolutionRequest, error) {
	d, err := readBody(r)
	if err != nil {
		return nil, err
	}

	var out CreateResolutionRequest
	if err := d.Obj(func(d *jx.Decoder, key string) error {
		switch key {
		case "url":
			v, err := d.Str()
			if err != nil {
				return errors.Wrap(err, "url")
			}
			out.URL = v
		case "fromNotification":
			if d.Next() == jx.Null {
				return d.Null()
			}
			v, err := d.Bool()
			if err != nil {
				return errors.Wrap(err, "fromNotification")
			}
			out.FromNotification = v
		default:
			return d.Skip()
		}

		return nil
	}); err != nil {
		return nil, errors.Wrap(err, "decode resolution request")
	}

	return &out, nil
}

func encodeTime(e *jx.Encoder, t time.Time) {
	e.Str(t.UTC().Format(time.RFC3339Nano))
}

// EncodeDestination writes d with only the identifiers its kind uses.
func EncodeDestination(e *jx.Encoder, d domain.Destination) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("kind", func(e *jx.Encoder) { e.Str(string(d.Kind)) })
		if d.EntryID != 0 {
			e.Field("entryId", func(e *jx.Encoder) { e.Int64(d.EntryID) })
		}
		if d.LinkID != 0 {
			e.Field("linkId", func(e *jx.Encoder) { e.Int64(d.LinkID) })
		}
		if d.CommentID != 0 {
			e.Field("commentId", func(e *jx.Encoder) { e.Int64(d.CommentID) })
		}
		if d.User != "" {
			e.Field("user", func(e *jx.Encoder) { e.Str(d.User) })
		}
		if d.Tag != "" {
			e.Field("tag", func(e *jx.Encoder) { e.Str(d.Tag) })
		}
		if d.URL != "" {
			e.Field("url", func(e *jx.Encoder) { e.Str(d.URL) })
		}
	})
}

// EncodeClassification writes a destination together with its canonical web URL.
func EncodeClassification(e *jx.Encoder, d domain.Destination, canonical string) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("destination", func(e *jx.Encoder) { EncodeDestination(e, d) })
		if canonical != "" {
			e.Field("canonicalUrl", func(e *jx.Encoder) { e.Str(canonical) })
		}
	})
}

// EncodePreview writes the non-empty preview fields.
func EncodePreview(e *jx.Encoder, p domain.Preview) {
	e.Obj(func(e *jx.Encoder) {
		for _, f := range []struct{ name, value string }{
			{"url", p.URL},
			{"title", p.Title},
			{"description", p.Description},
			{"siteName", p.SiteName},
			{"image", p.Image},
			{"contentType", p.ContentType},
		} {
			if f.value == "" {
				continue
			}
			e.Field(f.name, func(e *jx.Encoder) { e.Str(f.value) })
		}
	})
}

// EncodeResolution writes the public view of a resolution.
func EncodeResolution(e *jx.Encoder, r domain.Resolution) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("id", func(e *jx.Encoder) { e.Str(uuid.UUID(r.ID).String()) })
		e.Field("input", func(e *jx.Encoder) { e.Str(r.Input) })
		e.Field("destination", func(e *jx.Encoder) { EncodeDestination(e, r.Destination) })
		e.Field("fromNotification", func(e *jx.Encoder) { e.Bool(r.FromNotification) })
		e.Field("status", func(e *jx.Encoder) { e.Str(string(r.Status)) })
		if !r.Preview.IsZero() {
			e.Field("preview", func(e *jx.Encoder) { EncodePreview(e, r.Preview) })
		}
		e.Field("attempts", func(e *jx.Encoder) { e.UInt(r.Attempts) })
		e.Field("createdAt", func(e *jx.Encoder) { encodeTime(e, r.CreatedAt) })
		if !r.UpdatedAt.IsZero() {
			e.Field("updatedAt", func(e *jx.Encoder) { encodeTime(e, r.UpdatedAt) })
		}
	})
}

// EncodeResolutionList writes a page of resolutions. nextCursor is null on the last page.
func EncodeResolutionList(e *jx.Encoder, items []domain.Resolution, nextCursor string) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("items", func(e *jx.Encoder) {
			e.Arr(func(e *jx.Encoder) {
				for i := range items {
					EncodeResolution(e, items[i])
				}
			})
		})
		e.Field("nextCursor", func(e *jx.Encoder) {
			if nextCursor == "" {
				e.Null()

				return
			}
			e.Str(nextCursor)
		})
	})
}

// EncodeAnchors writes the linkify response.
func EncodeAnchors(e *jx.Encoder, anchors []linkify.Anchor) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("items", func(e *jx.Encoder) {
			e.Arr(func(e *jx.Encoder) {
				for _, a := range anchors {
					e.Obj(func(e *jx.Encoder) {
						e.Field("text", func(e *jx.Encoder) { e.Str(a.Text) })
						e.Field("href", func(e *jx.Encoder) { e.Str(a.Href) })
						e.Field("destination", func(e *jx.Encoder) { EncodeDestination(e, a.Destination) })
					})
				}
			})
		})
	})
}

// EncodeError writes an error body.
func EncodeError(e *jx.Encoder, er Error) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("code", func(e *jx.Encoder) { e.Str(er.Code) })
		e.Field("message", func(e *jx.Encoder) { e.Str(er.Message) })
	})
}
