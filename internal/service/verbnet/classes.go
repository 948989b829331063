package verbnet

import (
	"context"
	"slices"

	"github.com/heartmarshall/verbnet-reader/internal/domain"
	"github.com/heartmarshall/verbnet-reader/internal/index"
)

// ClassQuery selects class ids. At most one field may be set.
type ClassQuery struct {
	Lemma         string
	SenseID       string
	DocumentID    string
	ParentClassID string
}

// Validate rejects queries with more than one filter.
func (q ClassQuery) Validate() error {
	var set []string
	if q.Lemma != "" {
		set = append(set, "lemma")
	}
	if q.SenseID != "" {
		set = append(set, "sense")
	}
	if q.DocumentID != "" {
		set = append(set, "document")
	}
	if q.ParentClassID != "" {
		set = append(set, "parent")
	}
	if len(set) > 1 {
		return &domain.QueryError{Filters: set}
	}
	return nil
}

// Lemmas returns every lemma in the corpus, or the lemmas declared directly
// on classID when it is set. Both are sorted.
func (s *Service) Lemmas(ctx context.Context, classID string) ([]string, error) {
	if classID == "" {
		return s.index.Lemmas(), nil
	}

	node, err := s.ResolveClass(ctx, classID)
	if err != nil {
		return nil, err
	}
	lemmas := make([]string, 0, len(node.Members))
	for _, m := range node.Members {
		lemmas = append(lemmas, m.Lemma())
	}
	slices.Sort(lemmas)
	return lemmas, nil
}

// SenseIDs returns every sense id in the corpus (sorted), or the sense ids
// of classID's own members in declaration order.
func (s *Service) SenseIDs(ctx context.Context, classID string) ([]string, error) {
	if classID == "" {
		return s.index.SenseIDs(), nil
	}

	node, err := s.ResolveClass(ctx, classID)
	if err != nil {
		return nil, err
	}
	var ids []string
	for _, m := range node.Members {
		ids = append(ids, m.SenseIDs...)
	}
	return ids, nil
}

// ClassIDs returns the class ids selected by q. Lemma and sense filters keep
// index order, duplicates included; a document filter yields its classes
// sorted; a parent filter yields direct subclasses in declaration order.
// An empty query returns every class id, sorted.
func (s *Service) ClassIDs(ctx context.Context, q ClassQuery) ([]string, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	switch {
	case q.Lemma != "":
		return s.index.ClassesForLemma(q.Lemma), nil
	case q.SenseID != "":
		return s.index.ClassesForSense(q.SenseID), nil
	case q.DocumentID != "":
		return s.index.ClassesInDocument(q.DocumentID), nil
	case q.ParentClassID != "":
		parent, err := s.ResolveClass(ctx, q.ParentClassID)
		if err != nil {
			return nil, err
		}
		ids := make([]string, 0, len(parent.Subclasses))
		for _, sub := range parent.Subclasses {
			ids = append(ids, sub.ID)
		}
		return ids, nil
	default:
		return s.index.ClassIDs(), nil
	}
}

// DocumentsFor returns the documents defining classIDs, one per id. A nil
// slice returns every document in store order.
func (s *Service) DocumentsFor(_ context.Context, classIDs []string) ([]string, error) {
	if classIDs == nil {
		return s.index.Documents(), nil
	}

	docs := make([]string, 0, len(classIDs))
	for _, id := range classIDs {
		_, documentID, err := s.locate(id)
		if err != nil {
			return nil, err
		}
		docs = append(docs, documentID)
	}
	return docs, nil
}

// LongID converts a short id to the long id recorded in the index.
func (s *Service) LongID(id string) (string, error) {
	return s.index.LongID(id)
}

// ShortID converts a long id to its short form.
func (s *Service) ShortID(id string) (string, error) {
	return index.ShortID(id)
}
