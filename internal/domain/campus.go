package domain

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// CampusID identifies a campus. Known campi carry numeric ids in the stored
// configuration, campi seen only in submissions get a synthesized string id.
type CampusID string

// UnmarshalJSON accepts either a JSON string or a JSON number.
func (id *CampusID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*id = ""
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = CampusID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("campus id: %w", err)
	}
	if i, err := n.Int64(); err == nil {
		*id = CampusID(strconv.FormatInt(i, 10))
		return nil
	}
	*id = CampusID(n.String())
	return nil
}

// Campus is a campus as stored in the application configuration and in
// submissions.
// swagger:model Campus
type Campus struct {
	ID      CampusID `json:"id"`
	Name    string   `json:"name"`
	ICTName string   `json:"ictName"`
}

// CatalogueEntry is one campus of the participation universe.
// swagger:model CatalogueEntry
type CatalogueEntry struct {
	ID          CampusID `json:"id"`
	Institution string   `json:"institution"`
	Name        string   `json:"name"`
}

// Label returns "Institution - Campus".
func (e CatalogueEntry) Label() string {
	return e.Institution + " - " + e.Name
}

// Catalogue is the ordered, deduplicated list of campi used for scope
// resolution and as the denominator of participation ratios.
type Catalogue []CatalogueEntry

// Institutions returns the distinct institution names in catalogue order.
func (c Catalogue) Institutions() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, e := range c {
		if _, ok := seen[e.Institution]; ok {
			continue
		}
		seen[e.Institution] = struct{}{}
		out = append(out, e.Institution)
	}
	return out
}

// ByInstitution returns the entries of one institution in catalogue order.
func (c Catalogue) ByInstitution(name string) Catalogue {
	var out Catalogue
	for _, e := range c {
		if e.Institution == name {
			out = append(out, e)
		}
	}
	return out
}

// Filter returns entries whose campus name contains term, case-insensitively.
func (c Catalogue) Filter(term string) Catalogue {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return c
	}
	var out Catalogue
	for _, e := range c {
		if strings.Contains(strings.ToLower(e.Name), term) {
			out = append(out, e)
		}
	}
	return out
}

// Find returns the entry with the given id.
func (c Catalogue) Find(id CampusID) (CatalogueEntry, bool) {
	for _, e := range c {
		if e.ID == id {
			return e, true
		}
	}
	return CatalogueEntry{}, false
}

// CatalogueCache holds a recently built catalogue. A miss is (nil, false, nil).
type CatalogueCache interface {
	Get(ctx context.Context) (Catalogue, bool, error)
	Set(ctx context.Context, c Catalogue) error
	// Invalidate drops the cached catalogue after submissions or the
	// application configuration change.
	Invalidate(ctx context.Context) error
}
