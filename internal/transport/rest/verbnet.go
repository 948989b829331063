package rest

import (
	"context"
	"errors"
	"iter"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/heartmarshall/verbnet-reader/internal/domain"
	"github.com/heartmarshall/verbnet-reader/internal/format"
	"github.com/heartmarshall/verbnet-reader/internal/index"
	"github.com/heartmarshall/verbnet-reader/internal/service/verbnet"
)

// maxBatchIDs caps the ids accepted by one batch request.
const maxBatchIDs = 500

// verbnetService defines the operations VerbNetHandler needs.
type verbnetService interface {
	classResolver
	Lemmas(ctx context.Context, classID string) ([]string, error)
	SenseIDs(ctx context.Context, classID string) ([]string, error)
	ClassIDs(ctx context.Context, q verbnet.ClassQuery) ([]string, error)
	Resolve(ctx context.Context, id string) (*domain.ClassNode, error)
	CollectFrames(ctx context.Context, classID string, includeAncestors bool) (iter.Seq[domain.FrameMatch], error)
	FramesForLemma(ctx context.Context, lemma string) (iter.Seq[domain.LemmaFrame], error)
	DocumentsFor(ctx context.Context, classIDs []string) ([]string, error)
	LongID(id string) (string, error)
	ShortID(id string) (string, error)
}

type frameRecorder interface {
	RecordFrames(operation string, n int)
}

// VerbNetHandler serves the lexicon endpoints.
type VerbNetHandler struct {
	svc       verbnetService
	frames    frameRecorder
	maxFrames int
	log       *slog.Logger
}

// NewVerbNetHandler creates a VerbNetHandler. maxFrames caps the frames in
// one response; frames may be nil.
func NewVerbNetHandler(svc verbnetService, frames frameRecorder, maxFrames int, logger *slog.Logger) *VerbNetHandler {
	return &VerbNetHandler{
		svc:       svc,
		frames:    frames,
		maxFrames: maxFrames,
		log:       logger.With("handler", "verbnet"),
	}
}

// Lemmas handles GET /api/v1/lemmas[?class=].
func (h *VerbNetHandler) Lemmas(w http.ResponseWriter, r *http.Request) {
	lemmas, err := h.svc.Lemmas(r.Context(), r.URL.Query().Get("class"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse{Items: emptyIfNil(lemmas)})
}

// Senses handles GET /api/v1/senses[?class=].
func (h *VerbNetHandler) Senses(w http.ResponseWriter, r *http.Request) {
	ids, err := h.svc.SenseIDs(r.Context(), r.URL.Query().Get("class"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse{Items: emptyIfNil(ids)})
}

// Classes handles GET /api/v1/classes[?lemma=|sense=|document=|parent=].
func (h *VerbNetHandler) Classes(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	ids, err := h.svc.ClassIDs(r.Context(), verbnet.ClassQuery{
		Lemma:         q.Get("lemma"),
		SenseID:       q.Get("sense"),
		DocumentID:    q.Get("document"),
		ParentClassID: q.Get("parent"),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse{Items: emptyIfNil(ids)})
}

// Class handles GET /api/v1/classes/{id}. The id may name a document or a
// class. ?format=text returns the pretty-printed class.
func (h *VerbNetHandler) Class(w http.ResponseWriter, r *http.Request) {
	node, err := h.svc.Resolve(r.Context(), r.PathValue("id"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if r.URL.Query().Get("format") == "text" {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(format.Class(node) + "\n"))
		return
	}
	writeJSON(w, http.StatusOK, toClassResponse(node))
}

// ClassBatch handles GET /api/v1/classes/batch?id=...&id=... Unknown ids
// are reported per item.
func (h *VerbNetHandler) ClassBatch(w http.ResponseWriter, r *http.Request) {
	ids := r.URL.Query()["id"]
	if len(ids) == 0 {
		writeError(w, http.StatusBadRequest, "at least one id is required")
		return
	}
	if len(ids) > maxBatchIDs {
		writeError(w, http.StatusBadRequest, "too many ids (max "+strconv.Itoa(maxBatchIDs)+")")
		return
	}

	resolved := loadClasses(r.Context(), h.svc, ids)

	resp := batchResponse{Items: make([]batchItem, len(ids))}
	for i, res := range resolved {
		item := batchItem{ID: ids[i]}
		switch {
		case res.Err == nil:
			c := toClassResponse(res.Node)
			item.Class = &c
		case errors.Is(res.Err, domain.ErrUnknownIdentifier):
			item.Error = res.Err.Error()
		default:
			handleError(h.log, w, r, res.Err)
			return
		}
		resp.Items[i] = item
	}
	writeJSON(w, http.StatusOK, resp)
}

// ClassFrames handles GET /api/v1/classes/{id}/frames[?ancestors=&limit=].
func (h *VerbNetHandler) ClassFrames(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	limit, err := h.limit(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	ancestors, err := parseBool(r.URL.Query().Get("ancestors"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "ancestors must be a boolean")
		return
	}

	seq, err := h.svc.CollectFrames(r.Context(), id, ancestors)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := framesResponse{ID: id, Frames: []frameResponse{}}
	for m := range seq {
		if len(resp.Frames) == limit {
			resp.Truncated = true
			break
		}
		resp.Frames = append(resp.Frames, toFrameMatchResponse(m))
	}
	h.record("class_frames", len(resp.Frames))
	writeJSON(w, http.StatusOK, resp)
}

// LemmaFrames handles GET /api/v1/lemmas/{lemma}/frames[?limit=].
func (h *VerbNetHandler) LemmaFrames(w http.ResponseWriter, r *http.Request) {
	lemma := r.PathValue("lemma")
	limit, err := h.limit(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	seq, err := h.svc.FramesForLemma(r.Context(), lemma)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := framesResponse{ID: lemma, Frames: []frameResponse{}}
	for m := range seq {
		if len(resp.Frames) == limit {
			resp.Truncated = true
			break
		}
		f := toFrameMatchResponse(m.FrameMatch)
		f.ClassID = m.ClassID
		resp.Frames = append(resp.Frames, f)
	}
	h.record("lemma_frames", len(resp.Frames))
	writeJSON(w, http.StatusOK, resp)
}

// Documents handles GET /api/v1/documents[?class=...]. Without class
// parameters every document is listed.
func (h *VerbNetHandler) Documents(w http.ResponseWriter, r *http.Request) {
	classIDs := r.URL.Query()["class"]
	docs, err := h.svc.DocumentsFor(r.Context(), classIDs)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse{Items: emptyIfNil(docs)})
}

// ID handles GET /api/v1/ids/{id}, returning both forms of a class id.
func (h *VerbNetHandler) ID(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	long, err := h.svc.LongID(id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	short := id
	if !index.IsShortID(id) {
		if short, err = h.svc.ShortID(id); err != nil {
			handleError(h.log, w, r, err)
			return
		}
	}
	writeJSON(w, http.StatusOK, idResponse{ID: id, Long: long, Short: short})
}

// limit reads ?limit=, defaulting to and capped at maxFrames.
func (h *VerbNetHandler) limit(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return h.maxFrames, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0, errors.New("limit must be a positive integer")
	}
	return min(n, h.maxFrames), nil
}

func (h *VerbNetHandler) record(operation string, n int) {
	if h.frames != nil {
		h.frames.RecordFrames(operation, n)
	}
}

func parseBool(s string) (bool, error) {
	if s == "" {
		return false, nil
	}
	return strconv.ParseBool(s)
}
