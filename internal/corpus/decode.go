// Package corpus reads VerbNet class documents. It decodes the XML of one
// top-level class (with nested subclasses) into domain structs and serves
// documents from a directory. No index logic lives here.
package corpus

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/heartmarshall/verbnet-reader/internal/domain"
)

// VerbNet XML internal types for deserialization.

type vnClass struct {
	ID         string       `xml:"ID,attr"`
	Members    []vnMember   `xml:"MEMBERS>MEMBER"`
	ThemRoles  []vnThemRole `xml:"THEMROLES>THEMROLE"`
	Frames     []vnFrame    `xml:"FRAMES>FRAME"`
	Subclasses []vnClass    `xml:"SUBCLASSES>VNSUBCLASS"`
}

type vnMember struct {
	Name     string `xml:"name,attr"`
	WN       string `xml:"wn,attr"`
	Grouping string `xml:"grouping,attr"`
}

type vnRestr struct {
	Value string `xml:"Value,attr"`
	Type  string `xml:"type,attr"`
}

type vnThemRole struct {
	Type      string    `xml:"type,attr"`
	SelRestrs []vnRestr `xml:"SELRESTRS>SELRESTR"`
}

type vnDescription struct {
	Number    string `xml:"descriptionNumber,attr"`
	Primary   string `xml:"primary,attr"`
	Secondary string `xml:"secondary,attr"`
	XTag      string `xml:"xtag,attr"`
}

type vnFrame struct {
	Description vnDescription `xml:"DESCRIPTION"`
	Examples    []string      `xml:"EXAMPLES>EXAMPLE"`
	Syntax      vnSyntax      `xml:"SYNTAX"`
	Semantics   []vnPred      `xml:"SEMANTICS>PRED"`
}

// vnSyntax holds heterogeneous children (NP, VERB, PREP, ADJ, ...), so each
// slot keeps its element name.
type vnSyntax struct {
	Slots []vnSlot `xml:",any"`
}

type vnSlot struct {
	XMLName   xml.Name
	Value     *string   `xml:"value,attr"`
	SelRestrs []vnRestr `xml:"SELRESTRS>SELRESTR"`
	SynRestrs []vnRestr `xml:"SYNRESTRS>SYNRESTR"`
}

type vnPred struct {
	Value string  `xml:"value,attr"`
	Args  []vnArg `xml:"ARGS>ARG"`
}

type vnArg struct {
	Type  string `xml:"type,attr"`
	Value string `xml:"value,attr"`
}

// Decode parses one VerbNet class document.
func Decode(r io.Reader) (*domain.ClassNode, error) {
	var root vnClass
	if err := xml.NewDecoder(r).Decode(&root); err != nil {
		return nil, fmt.Errorf("decode XML: %w", err)
	}
	if root.ID == "" {
		return nil, fmt.Errorf("decode XML: root class has no ID attribute")
	}

	node := toDomainClass(root)
	return &node, nil
}

// DecodeString is Decode for an in-memory document.
func DecodeString(raw string) (*domain.ClassNode, error) {
	return Decode(strings.NewReader(raw))
}

func toDomainClass(c vnClass) domain.ClassNode {
	node := domain.ClassNode{
		ID:         c.ID,
		Members:    make([]domain.Member, 0, len(c.Members)),
		ThemRoles:  make([]domain.ThemRole, 0, len(c.ThemRoles)),
		Frames:     make([]domain.Frame, 0, len(c.Frames)),
		Subclasses: make([]domain.ClassNode, 0, len(c.Subclasses)),
	}

	for _, m := range c.Members {
		node.Members = append(node.Members, domain.Member{
			Name:     m.Name,
			SenseIDs: strings.Fields(m.WN),
			Grouping: m.Grouping,
		})
	}
	for _, tr := range c.ThemRoles {
		node.ThemRoles = append(node.ThemRoles, domain.ThemRole{
			Type:         tr.Type,
			Restrictions: toRestrictions(domain.RestrictionSel, tr.SelRestrs),
		})
	}
	for _, f := range c.Frames {
		node.Frames = append(node.Frames, toDomainFrame(f))
	}
	for _, sub := range c.Subclasses {
		node.Subclasses = append(node.Subclasses, toDomainClass(sub))
	}

	return node
}

func toDomainFrame(f vnFrame) domain.Frame {
	frame := domain.Frame{
		Description: domain.Description{
			Number:    f.Description.Number,
			Primary:   f.Description.Primary,
			Secondary: f.Description.Secondary,
			XTag:      f.Description.XTag,
		},
		Syntax:    make([]domain.SyntaxSlot, 0, len(f.Syntax.Slots)),
		Semantics: make([]domain.Predicate, 0, len(f.Semantics)),
	}

	for _, ex := range f.Examples {
		frame.Examples = append(frame.Examples, strings.TrimSpace(ex))
	}
	for _, s := range f.Syntax.Slots {
		restrs := toRestrictions(domain.RestrictionSel, s.SelRestrs)
		restrs = append(restrs, toRestrictions(domain.RestrictionSyn, s.SynRestrs)...)
		frame.Syntax = append(frame.Syntax, domain.SyntaxSlot{
			Tag:          s.XMLName.Local,
			Value:        s.Value,
			Restrictions: restrs,
		})
	}
	for _, p := range f.Semantics {
		pred := domain.Predicate{Name: p.Value, Args: make([]domain.Arg, 0, len(p.Args))}
		for _, a := range p.Args {
			pred.Args = append(pred.Args, domain.Arg{Type: a.Type, Value: a.Value})
		}
		frame.Semantics = append(frame.Semantics, pred)
	}

	return frame
}

func toRestrictions(kind domain.RestrictionKind, rs []vnRestr) []domain.Restriction {
	if len(rs) == 0 {
		return nil
	}
	out := make([]domain.Restriction, 0, len(rs))
	for _, r := range rs {
		out = append(out, domain.Restriction{Kind: kind, Value: r.Value, Type: r.Type})
	}
	return out
}
