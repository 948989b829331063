// Package format renders VerbNet classes and frames as indented plain text.
package format

import (
	"fmt"
	"strings"

	"github.com/heartmarshall/verbnet-reader/internal/domain"
)

// Width is the column limit for wrapped lines.
const Width = 70

// Class renders a class: id, subclasses, members, thematic roles and frames.
func Class(node *domain.ClassNode) string {
	var b strings.Builder
	b.WriteString(node.ID)
	b.WriteByte('\n')
	b.WriteString(Subclasses(node, "  "))
	b.WriteByte('\n')
	b.WriteString(Members(node, "  "))
	b.WriteByte('\n')
	b.WriteString("  Thematic roles:\n")
	b.WriteString(ThemRoles(node.ThemRoles, "    "))
	b.WriteByte('\n')
	b.WriteString("  Frames:\n")

	frames := make([]string, 0, len(node.Frames))
	for _, f := range node.Frames {
		frames = append(frames, Frame(f, "    "))
	}
	b.WriteString(strings.Join(frames, "\n"))
	return b.String()
}

// Subclasses renders the ids of the direct subclasses, wrapped.
func Subclasses(node *domain.ClassNode, indent string) string {
	ids := make([]string, 0, len(node.Subclasses))
	for _, sub := range node.Subclasses {
		ids = append(ids, sub.ID)
	}
	return labelled("Subclasses:", ids, indent)
}

// Members renders the member names as declared, wrapped.
func Members(node *domain.ClassNode, indent string) string {
	names := make([]string, 0, len(node.Members))
	for _, m := range node.Members {
		names = append(names, m.Name)
	}
	return labelled("Members:", names, indent)
}

// ThemRoles renders one "* Type[+mod -mod]" line per role.
func ThemRoles(roles []domain.ThemRole, indent string) string {
	lines := make([]string, 0, len(roles))
	for _, r := range roles {
		line := indent + "* " + r.Type
		if mods := restrictions(r.Restrictions); len(mods) > 0 {
			line += "[" + strings.Join(mods, " ") + "]"
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

// Frame renders a frame's description, syntax and semantics.
func Frame(f domain.Frame, indent string) string {
	var b strings.Builder
	b.WriteString(Description(f.Description, indent))
	b.WriteByte('\n')
	b.WriteString(Syntax(f.Syntax, indent+"  Syntax: "))
	b.WriteByte('\n')
	b.WriteString(indent + "  Semantics:\n")
	b.WriteString(Semantics(f.Semantics, indent+"    "))
	return b.String()
}

// FrameMatch renders a frame followed by the thematic roles in effect.
func FrameMatch(m domain.FrameMatch, indent string) string {
	return Frame(m.Frame, indent) + "\n" +
		indent + "  Thematic roles:\n" +
		ThemRoles(m.ThemRoles, indent+"    ")
}

// Description renders "primary (secondary)"; the secondary part is
// omitted when empty.
func Description(d domain.Description, indent string) string {
	s := indent + d.Primary
	if d.Secondary != "" {
		s += " (" + d.Secondary + ")"
	}
	return s
}

// Syntax renders slots as "NP[Agent] VERB PREP[on +loc]".
func Syntax(slots []domain.SyntaxSlot, indent string) string {
	pieces := make([]string, 0, len(slots))
	for _, slot := range slots {
		var mods []string
		if slot.Value != nil {
			mods = append(mods, *slot.Value)
		}
		mods = append(mods, restrictions(slot.Restrictions)...)

		piece := slot.Tag
		if len(mods) > 0 {
			piece += "[" + strings.Join(mods, " ") + "]"
		}
		pieces = append(pieces, piece)
	}
	return indent + strings.Join(pieces, " ")
}

// Semantics renders one "* pred(arg, arg)" line per predicate.
func Semantics(preds []domain.Predicate, indent string) string {
	lines := make([]string, 0, len(preds))
	for _, p := range preds {
		args := make([]string, 0, len(p.Args))
		for _, a := range p.Args {
			args = append(args, a.Value)
		}
		lines = append(lines, fmt.Sprintf("%s* %s(%s)", indent, p.Name, strings.Join(args, ", ")))
	}
	return strings.Join(lines, "\n")
}

func restrictions(rs []domain.Restriction) []string {
	out := make([]string, 0, len(rs))
	for _, r := range rs {
		out = append(out, r.String())
	}
	return out
}

func labelled(label string, words []string, indent string) string {
	if len(words) == 0 {
		words = []string{"(none)"}
	}
	return Wrap(append([]string{label}, words...), Width, indent, indent+"  ")
}

// Wrap fills words into lines of at most width columns. The first line
// starts with initial, the others with subsequent. A word wider than a line
// gets a line of its own.
func Wrap(words []string, width int, initial, subsequent string) string {
	var b strings.Builder
	line, col := initial, len(initial)
	empty := true

	for _, w := range words {
		if w == "" {
			continue
		}
		if !empty && col+1+len(w) > width {
			b.WriteString(line)
			b.WriteByte('\n')
			line, col, empty = subsequent, len(subsequent), true
		}
		if !empty {
			line += " "
			col++
		}
		line += w
		col += len(w)
		empty = false
	}
	b.WriteString(line)
	return b.String()
}
