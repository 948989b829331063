// Package verbnet answers lexicon queries over an indexed VerbNet corpus:
// class resolution, frame collection with thematic-role inheritance and
// optional frame expansion.
package verbnet

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/verbnet-reader/internal/domain"
)

type documentStore interface {
	OpenParsed(ctx context.Context, documentID string) (*domain.ClassNode, error)
}

type classIndex interface {
	Documents() []string
	HasDocument(documentID string) bool
	DocumentOf(classID string) (string, bool)
	ClassesForLemma(lemma string) []string
	ClassesForSense(senseID string) []string
	ClassesInDocument(documentID string) []string
	ClassIDs() []string
	Lemmas() []string
	SenseIDs() []string
	LongID(id string) (string, error)
}

// Options configures a Service.
type Options struct {
	// ExpandSubstructures makes frame collection emit every reordering of
	// each frame's post-verb objects instead of the frame itself.
	ExpandSubstructures bool
}

// Service implements lexicon queries. It holds no mutable state and is safe
// for concurrent use as long as the store is.
type Service struct {
	log   *slog.Logger
	store documentStore
	index classIndex
	opts  Options
}

// NewService creates a new verbnet service.
func NewService(logger *slog.Logger, store documentStore, index classIndex, opts Options) *Service {
	return &Service{
		log:   logger.With("service", "verbnet"),
		store: store,
		index: index,
		opts:  opts,
	}
}

// ExpandsSubstructures reports whether frames are expanded.
func (s *Service) ExpandsSubstructures() bool {
	return s.opts.ExpandSubstructures
}
