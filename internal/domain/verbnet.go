package domain

// ClassNode is a VerbNet class or subclass. Subclasses are owned by their
// parent; the forest has no cycles and every ID is unique in a corpus.
type ClassNode struct {
	ID         string
	Members    []Member
	ThemRoles  []ThemRole
	Frames     []Frame
	Subclasses []ClassNode
}

// Member is a verb lemma declared on a class, with the external sense ids
// (WordNet sense keys) attached to it in that class.
type Member struct {
	Name     string
	SenseIDs []string
	Grouping string
}

// Lemma returns the member name without the uncertainty marker some
// corpora put in front of it ("?bash" -> "bash").
func (m Member) Lemma() string {
	if len(m.Name) > 0 && m.Name[0] == '?' {
		return m.Name[1:]
	}
	return m.Name
}

// RestrictionKind distinguishes selectional from syntactic restrictions.
type RestrictionKind string

const (
	RestrictionSel RestrictionKind = "sel"
	RestrictionSyn RestrictionKind = "syn"
)

// Restriction is a polarised constraint such as "+animate".
type Restriction struct {
	Kind  RestrictionKind
	Value string // "+" or "-"
	Type  string
}

// String renders the restriction the way VerbNet prints it: "+animate".
func (r Restriction) String() string {
	return r.Value + r.Type
}

// ThemRole is a thematic role with optional selectional restrictions.
type ThemRole struct {
	Type         string
	Restrictions []Restriction
}

// Description is the free-text header of a frame.
type Description struct {
	Number    string
	Primary   string
	Secondary string
	XTag      string
}

// Frame is one syntactic/semantic pattern licensed by a class.
type Frame struct {
	Description Description
	Examples    []string
	Syntax      []SyntaxSlot
	Semantics   []Predicate
}

// Syntax slot tags with special meaning to frame expansion.
const (
	TagVerb = "VERB"
	TagPrep = "PREP"
	TagNP   = "NP"
)

// SyntaxSlot is one position of a frame's surface syntax.
type SyntaxSlot struct {
	Tag          string
	Value        *string
	Restrictions []Restriction
}

// Predicate is a semantic predicate of a frame.
type Predicate struct {
	Name string
	Args []Arg
}

// Arg is a predicate argument.
type Arg struct {
	Type  string
	Value string
}

// FrameMatch pairs a frame with the thematic roles in effect for the class
// it was collected from.
type FrameMatch struct {
	Frame     Frame
	ThemRoles []ThemRole
}

// LemmaFrame is a FrameMatch tagged with the class that contains the lemma.
type LemmaFrame struct {
	FrameMatch
	ClassID string
}

// Document is a raw corpus document as held by a document store.
type Document struct {
	ID  string
	Raw string
}
