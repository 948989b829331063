package verbnet

import (
	"iter"
	"slices"

	"github.com/heartmarshall/verbnet-reader/internal/domain"
)

// Expand enumerates the surface realizations a frame template stands for.
//
// The syntax is split after the first VERB slot. What follows is grouped
// into objects (a PREP directly followed by an NP is one object, every
// other slot is its own). For each subset size r = 0..k, every r-subset of
// the objects in index order is emitted in every ordering, lexicographic by
// position. Each result keeps the verb prefix and the semantics; the
// description and examples no longer describe it and are cleared.
//
// A frame with k objects yields ExpansionCount(k) frames, so callers should
// bound consumption on long frames.
func Expand(frame domain.Frame) iter.Seq[domain.Frame] {
	prefix, objects := splitSyntax(frame.Syntax)

	return func(yield func(domain.Frame) bool) {
		for r := 0; r <= len(objects); r++ {
			for subset := range combinations(len(objects), r) {
				for order := range permutations(subset) {
					if !yield(expandedFrame(frame, prefix, objects, order)) {
						return
					}
				}
			}
		}
	}
}

// ExpansionCount returns how many frames Expand yields for k objects:
// the sum over r = 0..k of k!/(k-r)!.
func ExpansionCount(k int) int {
	total, term := 1, 1
	for r := 1; r <= k; r++ {
		term *= k - r + 1
		total += term
	}
	return total
}

func splitSyntax(syntax []domain.SyntaxSlot) (prefix []domain.SyntaxSlot, objects [][]domain.SyntaxSlot) {
	verb := slices.IndexFunc(syntax, func(s domain.SyntaxSlot) bool { return s.Tag == domain.TagVerb })
	if verb < 0 {
		return syntax, nil
	}

	prefix = syntax[:verb+1]
	rest := syntax[verb+1:]
	for i := 0; i < len(rest); i++ {
		if rest[i].Tag == domain.TagPrep && i+1 < len(rest) && rest[i+1].Tag == domain.TagNP {
			objects = append(objects, rest[i:i+2])
			i++
			continue
		}
		objects = append(objects, rest[i:i+1])
	}
	return prefix, objects
}

func expandedFrame(frame domain.Frame, prefix []domain.SyntaxSlot, objects [][]domain.SyntaxSlot, order []int) domain.Frame {
	syntax := slices.Clone(prefix)
	for _, i := range order {
		syntax = append(syntax, objects[i]...)
	}
	return domain.Frame{
		Syntax:    syntax,
		Semantics: frame.Semantics,
	}
}

// combinations yields the r-subsets of 0..n-1 as ascending index slices,
// in lexicographic order.
func combinations(n, r int) iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		idx := make([]int, r)
		for i := range idx {
			idx[i] = i
		}
		for {
			if !yield(slices.Clone(idx)) {
				return
			}
			i := r - 1
			for i >= 0 && idx[i] == i+n-r {
				i--
			}
			if i < 0 {
				return
			}
			idx[i]++
			for j := i + 1; j < r; j++ {
				idx[j] = idx[j-1] + 1
			}
		}
	}
}

// permutations yields every ordering of items, lexicographic by position.
func permutations(items []int) iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		pos := make([]int, len(items))
		for i := range pos {
			pos[i] = i
		}
		for {
			out := make([]int, len(pos))
			for k, p := range pos {
				out[k] = items[p]
			}
			if !yield(out) {
				return
			}

			i := len(pos) - 2
			for i >= 0 && pos[i] >= pos[i+1] {
				i--
			}
			if i < 0 {
				return
			}
			j := len(pos) - 1
			for pos[j] <= pos[i] {
				j--
			}
			pos[i], pos[j] = pos[j], pos[i]
			slices.Reverse(pos[i+1:])
		}
	}
}
