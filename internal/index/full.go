package index

import (
	"context"
	"fmt"

	"github.com/heartmarshall/verbnet-reader/internal/domain"
)

// BuildFull builds an index by walking the decoded tree of every document.
// For well-formed corpora it produces the same tables as BuildQuick.
func BuildFull(ctx context.Context, src treeSource) (*Index, error) {
	docs, err := src.ListDocuments(ctx)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}

	x := newIndex(docs)
	for _, doc := range docs {
		root, err := src.OpenParsed(ctx, doc)
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", doc, err)
		}
		if err := x.walk(root, doc); err != nil {
			return nil, err
		}
	}
	return x, nil
}

func (x *Index) walk(node *domain.ClassNode, doc string) error {
	if err := x.addClass(node.ID, doc); err != nil {
		return err
	}
	for _, m := range node.Members {
		x.addMember(node.ID, m.Lemma(), m.SenseIDs)
	}
	for i := range node.Subclasses {
		if err := x.walk(&node.Subclasses[i], doc); err != nil {
			return err
		}
	}
	return nil
}
