package verbnet

import (
	"context"
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/heartmarshall/verbnet-reader/internal/domain"
)

// CollectFrames returns the frames of classID paired with the thematic
// roles in effect for them. With includeAncestors the frames of every
// enclosing class are included too, outermost first.
//
// Resolution and the document read happen before CollectFrames returns;
// the sequence itself does no I/O and can be ranged over more than once.
func (s *Service) CollectFrames(ctx context.Context, classID string, includeAncestors bool) (iter.Seq[domain.FrameMatch], error) {
	long, documentID, err := s.locate(classID)
	if err != nil {
		return nil, err
	}
	root, err := s.store.OpenParsed(ctx, documentID)
	if err != nil {
		return nil, fmt.Errorf("open document %s: %w", documentID, err)
	}
	return s.frames(root, long, includeAncestors), nil
}

// FramesForLemma collects frames (ancestors included) for every class that
// lists lemma as a member, tagging each with the class id. A class listing
// the lemma twice contributes its frames twice.
func (s *Service) FramesForLemma(ctx context.Context, lemma string) (iter.Seq[domain.LemmaFrame], error) {
	type target struct {
		classID string
		root    *domain.ClassNode
	}

	classIDs := s.index.ClassesForLemma(lemma)
	targets := make([]target, 0, len(classIDs))
	for _, classID := range classIDs {
		documentID, ok := s.index.DocumentOf(classID)
		if !ok {
			return nil, domain.NewIdentifierError(classID)
		}
		root, err := s.store.OpenParsed(ctx, documentID)
		if err != nil {
			return nil, fmt.Errorf("open document %s: %w", documentID, err)
		}
		targets = append(targets, target{classID: classID, root: root})
	}

	return func(yield func(domain.LemmaFrame) bool) {
		for _, t := range targets {
			for m := range s.frames(t.root, t.classID, true) {
				if !yield(domain.LemmaFrame{FrameMatch: m, ClassID: t.classID}) {
					return
				}
			}
		}
	}, nil
}

func (s *Service) frames(root *domain.ClassNode, target string, includeAncestors bool) iter.Seq[domain.FrameMatch] {
	return func(yield func(domain.FrameMatch) bool) {
		s.visit(root, target, includeAncestors, slices.Clone(root.ThemRoles), yield)
	}
}

// visit walks node and its subclasses in document order. It returns false
// once the consumer stops.
//
// Ancestry is decided by id prefix: "put-9.1" is an ancestor of
// "put-9.1-1". An unrelated class whose id happens to prefix the target
// would be treated as an ancestor too.
func (s *Service) visit(
	node *domain.ClassNode,
	target string,
	includeAncestors bool,
	roles []domain.ThemRole,
	yield func(domain.FrameMatch) bool,
) bool {
	include := node.ID == target
	if includeAncestors {
		include = strings.HasPrefix(target, node.ID)
	}

	if include {
		for _, frame := range node.Frames {
			if !s.emit(frame, roles, yield) {
				return false
			}
		}
	}

	for i := range node.Subclasses {
		child := &node.Subclasses[i]
		if !s.visit(child, target, includeAncestors, mergeThemRoles(roles, child.ThemRoles), yield) {
			return false
		}
	}
	return true
}

func (s *Service) emit(frame domain.Frame, roles []domain.ThemRole, yield func(domain.FrameMatch) bool) bool {
	if !s.opts.ExpandSubstructures {
		return yield(domain.FrameMatch{Frame: frame, ThemRoles: roles})
	}
	for expanded := range Expand(frame) {
		if !yield(domain.FrameMatch{Frame: expanded, ThemRoles: roles}) {
			return false
		}
	}
	return true
}

// mergeThemRoles overlays a subclass's declared roles on the inherited
// ones. A role replaces the inherited role of the same type in place;
// roles of a new type are appended. The inputs are left untouched.
func mergeThemRoles(parent, child []domain.ThemRole) []domain.ThemRole {
	merged := slices.Clone(parent)
	for _, role := range child {
		i := slices.IndexFunc(merged, func(r domain.ThemRole) bool { return r.Type == role.Type })
		if i >= 0 {
			merged[i] = role
		} else {
			merged = append(merged, role)
		}
	}
	return merged
}
