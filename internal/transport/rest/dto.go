package rest

import "github.com/heartmarshall/verbnet-reader/internal/domain"

type memberResponse struct {
	Name     string   `json:"name"`
	SenseIDs []string `json:"senseIds"`
	Grouping string   `json:"grouping,omitempty"`
}

type themRoleResponse struct {
	Type         string   `json:"type"`
	Restrictions []string `json:"restrictions,omitempty"`
}

type descriptionResponse struct {
	Number    string `json:"number,omitempty"`
	Primary   string `json:"primary"`
	Secondary string `json:"secondary,omitempty"`
	XTag      string `json:"xtag,omitempty"`
}

type slotResponse struct {
	Tag          string   `json:"tag"`
	Value        *string  `json:"value,omitempty"`
	Restrictions []string `json:"restrictions,omitempty"`
}

type argResponse struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

type predicateResponse struct {
	Predicate string        `json:"predicate"`
	Args      []argResponse `json:"args"`
}

type frameResponse struct {
	Description descriptionResponse `json:"description"`
	Examples    []string            `json:"examples"`
	Syntax      []slotResponse      `json:"syntax"`
	Semantics   []predicateResponse `json:"semantics"`
	ThemRoles   []themRoleResponse  `json:"themRoles,omitempty"`
	ClassID     string              `json:"classId,omitempty"`
}

type classResponse struct {
	ID         string             `json:"id"`
	Members    []memberResponse   `json:"members"`
	ThemRoles  []themRoleResponse `json:"themRoles"`
	Frames     []frameResponse    `json:"frames"`
	Subclasses []classResponse    `json:"subclasses"`
}

type framesResponse struct {
	ID        string          `json:"id"`
	Frames    []frameResponse `json:"frames"`
	Truncated bool            `json:"truncated"`
}

type listResponse struct {
	Items []string `json:"items"`
}

type batchItem struct {
	ID    string         `json:"id"`
	Class *classResponse `json:"class,omitempty"`
	Error string         `json:"error,omitempty"`
}

type batchResponse struct {
	Items []batchItem `json:"items"`
}

type idResponse struct {
	ID    string `json:"id"`
	Long  string `json:"long"`
	Short string `json:"short"`
}

func toClassResponse(n *domain.ClassNode) classResponse {
	out := classResponse{
		ID:         n.ID,
		Members:    make([]memberResponse, 0, len(n.Members)),
		ThemRoles:  toThemRoles(n.ThemRoles),
		Frames:     make([]frameResponse, 0, len(n.Frames)),
		Subclasses: make([]classResponse, 0, len(n.Subclasses)),
	}
	for _, m := range n.Members {
		senses := m.SenseIDs
		if senses == nil {
			senses = []string{}
		}
		out.Members = append(out.Members, memberResponse{Name: m.Name, SenseIDs: senses, Grouping: m.Grouping})
	}
	for _, f := range n.Frames {
		out.Frames = append(out.Frames, toFrameResponse(f))
	}
	for i := range n.Subclasses {
		out.Subclasses = append(out.Subclasses, toClassResponse(&n.Subclasses[i]))
	}
	return out
}

func toThemRoles(roles []domain.ThemRole) []themRoleResponse {
	out := make([]themRoleResponse, 0, len(roles))
	for _, r := range roles {
		out = append(out, themRoleResponse{Type: r.Type, Restrictions: toRestrictions(r.Restrictions)})
	}
	return out
}

func toRestrictions(rs []domain.Restriction) []string {
	if len(rs) == 0 {
		return nil
	}
	out := make([]string, 0, len(rs))
	for _, r := range rs {
		out = append(out, r.String())
	}
	return out
}

func toFrameResponse(f domain.Frame) frameResponse {
	out := frameResponse{
		Description: descriptionResponse{
			Number:    f.Description.Number,
			Primary:   f.Description.Primary,
			Secondary: f.Description.Secondary,
			XTag:      f.Description.XTag,
		},
		Examples:  f.Examples,
		Syntax:    make([]slotResponse, 0, len(f.Syntax)),
		Semantics: make([]predicateResponse, 0, len(f.Semantics)),
	}
	if out.Examples == nil {
		out.Examples = []string{}
	}
	for _, s := range f.Syntax {
		out.Syntax = append(out.Syntax, slotResponse{Tag: s.Tag, Value: s.Value, Restrictions: toRestrictions(s.Restrictions)})
	}
	for _, p := range f.Semantics {
		args := make([]argResponse, 0, len(p.Args))
		for _, a := range p.Args {
			args = append(args, argResponse{Type: a.Type, Value: a.Value})
		}
		out.Semantics = append(out.Semantics, predicateResponse{Predicate: p.Name, Args: args})
	}
	return out
}

func toFrameMatchResponse(m domain.FrameMatch) frameResponse {
	out := toFrameResponse(m.Frame)
	out.ThemRoles = toThemRoles(m.ThemRoles)
	return out
}

func emptyIfNil(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}
