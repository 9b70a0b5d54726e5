package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ScopeKind is the breadth of a bulk event creation.
type ScopeKind int

const (
	ScopeCampus ScopeKind = iota + 1
	ScopeInstitution
	ScopeGlobal
)

func (k ScopeKind) String() string {
	switch k {
	case ScopeCampus:
		return "campus"
	case ScopeInstitution:
		return "institution"
	case ScopeGlobal:
		return "global"
	default:
		return fmt.Sprintf("ScopeKind(%d)", int(k))
	}
}

// ParseScopeKind parses "campus", "institution" or "global".
func ParseScopeKind(s string) (ScopeKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "campus":
		return ScopeCampus, nil
	case "institution":
		return ScopeInstitution, nil
	case "global":
		return ScopeGlobal, nil
	}
	return 0, NewValidationError("scope.kind", fmt.Sprintf("unknown scope %q", s))
}

func (k ScopeKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *ScopeKind) UnmarshalText(b []byte) error {
	v, err := ParseScopeKind(string(b))
	if err != nil {
		return err
	}
	*k = v
	return nil
}

// Scope selects the campi targeted by a bulk event creation.
// Only the field matching Kind is meaningful.
// swagger:model Scope
type Scope struct {
	Kind        ScopeKind `json:"kind"`
	CampusID    CampusID  `json:"campus_id,omitempty"`
	Institution string    `json:"institution,omitempty"`
}

// CampusScope targets a single campus.
func CampusScope(id CampusID) Scope {
	return Scope{Kind: ScopeCampus, CampusID: id}
}

// InstitutionScope targets every campus of one institution.
func InstitutionScope(name string) Scope {
	return Scope{Kind: ScopeInstitution, Institution: name}
}

// GlobalScope targets every campus in the catalogue.
func GlobalScope() Scope {
	return Scope{Kind: ScopeGlobal}
}

// Validate checks that the field required by Kind is present.
func (s Scope) Validate() error {
	switch s.Kind {
	case ScopeCampus:
		if strings.TrimSpace(string(s.CampusID)) == "" {
			return NewValidationError("scope.campus_id", "campus is required")
		}
	case ScopeInstitution:
		if strings.TrimSpace(s.Institution) == "" {
			return NewValidationError("scope.institution", "institution is required")
		}
	case ScopeGlobal:
	default:
		return NewValidationError("scope.kind", "scope is required")
	}
	return nil
}

func (s Scope) String() string {
	switch s.Kind {
	case ScopeCampus:
		return "campus:" + string(s.CampusID)
	case ScopeInstitution:
		return "institution:" + s.Institution
	default:
		return s.Kind.String()
	}
}

// scopeJSON mirrors Scope so a missing kind decodes to zero instead of failing.
type scopeJSON struct {
	Kind        string   `json:"kind"`
	CampusID    CampusID `json:"campus_id"`
	Institution string   `json:"institution"`
}

func (s *Scope) UnmarshalJSON(b []byte) error {
	var raw scopeJSON
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	*s = Scope{CampusID: raw.CampusID, Institution: raw.Institution}
	if raw.Kind == "" {
		return nil
	}
	kind, err := ParseScopeKind(raw.Kind)
	if err != nil {
		return err
	}
	s.Kind = kind
	return nil
}
