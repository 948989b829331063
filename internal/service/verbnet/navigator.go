package verbnet

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/verbnet-reader/internal/domain"
)

// Resolved is the outcome of resolving one id in a batch.
type Resolved struct {
	Node *domain.ClassNode
	Err  error
}

// ResolveDocument returns the root class of a known document.
func (s *Service) ResolveDocument(ctx context.Context, documentID string) (*domain.ClassNode, error) {
	if !s.index.HasDocument(documentID) {
		return nil, domain.NewIdentifierError(documentID)
	}
	root, err := s.store.OpenParsed(ctx, documentID)
	if err != nil {
		return nil, fmt.Errorf("open document %s: %w", documentID, err)
	}
	return root, nil
}

// ResolveClass returns the class or subclass node for a short or long id.
func (s *Service) ResolveClass(ctx context.Context, classID string) (*domain.ClassNode, error) {
	long, documentID, err := s.locate(classID)
	if err != nil {
		return nil, err
	}

	root, err := s.store.OpenParsed(ctx, documentID)
	if err != nil {
		return nil, fmt.Errorf("open document %s: %w", documentID, err)
	}

	node := findClass(root, long)
	if node == nil {
		s.log.WarnContext(ctx, "indexed class missing from document",
			slog.String("class_id", long), slog.String("document_id", documentID))
		return nil, domain.NewIdentifierError(classID)
	}
	return node, nil
}

// Resolve accepts either a document id or a class id.
func (s *Service) Resolve(ctx context.Context, id string) (*domain.ClassNode, error) {
	if s.index.HasDocument(id) {
		return s.ResolveDocument(ctx, id)
	}
	return s.ResolveClass(ctx, id)
}

// ResolveClasses resolves many class ids, opening each owning document once.
// Results are aligned with ids; a failed id does not fail the others.
func (s *Service) ResolveClasses(ctx context.Context, ids []string) []Resolved {
	out := make([]Resolved, len(ids))
	roots := make(map[string]*domain.ClassNode)
	failed := make(map[string]error)

	for i, id := range ids {
		long, documentID, err := s.locate(id)
		if err != nil {
			out[i].Err = err
			continue
		}

		if err, ok := failed[documentID]; ok {
			out[i].Err = err
			continue
		}
		root, ok := roots[documentID]
		if !ok {
			root, err = s.store.OpenParsed(ctx, documentID)
			if err != nil {
				failed[documentID] = fmt.Errorf("open document %s: %w", documentID, err)
				out[i].Err = failed[documentID]
				continue
			}
			roots[documentID] = root
		}

		if node := findClass(root, long); node != nil {
			out[i].Node = node
		} else {
			out[i].Err = domain.NewIdentifierError(id)
		}
	}
	return out
}

// locate maps a class id to its long form and owning document.
func (s *Service) locate(classID string) (long, documentID string, err error) {
	long, err = s.index.LongID(classID)
	if err != nil {
		return "", "", err
	}
	documentID, ok := s.index.DocumentOf(long)
	if !ok {
		return "", "", domain.NewIdentifierError(classID)
	}
	return long, documentID, nil
}

// findClass searches node and its descendants in document order.
func findClass(node *domain.ClassNode, id string) *domain.ClassNode {
	if node.ID == id {
		return node
	}
	for i := range node.Subclasses {
		if found := findClass(&node.Subclasses[i], id); found != nil {
			return found
		}
	}
	return nil
}
