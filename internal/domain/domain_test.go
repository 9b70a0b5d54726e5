package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCampusID_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		raw  string
		want CampusID
	}{
		{`"IFSP-Campus São Paulo"`, "IFSP-Campus São Paulo"},
		{`12`, "12"},
		{`null`, ""},
		{`1.5`, "1.5"},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			var id CampusID
			require.NoError(t, json.Unmarshal([]byte(tt.raw), &id))
			assert.Equal(t, tt.want, id)
		})
	}

	var c Campus
	require.NoError(t, json.Unmarshal([]byte(`{"id": 3, "name": "Campus Norte", "ictName": "IFX"}`), &c))
	assert.Equal(t, Campus{ID: "3", Name: "Campus Norte", ICTName: "IFX"}, c)

	var bad CampusID
	assert.Error(t, json.Unmarshal([]byte(`{}`), &bad))
}

func TestScope_JSON(t *testing.T) {
	var s Scope
	require.NoError(t, json.Unmarshal([]byte(`{"kind": "institution", "institution": "IFSP"}`), &s))
	assert.Equal(t, InstitutionScope("IFSP"), s)

	require.NoError(t, json.Unmarshal([]byte(`{"kind": "campus", "campus_id": 7}`), &s))
	assert.Equal(t, CampusScope("7"), s)

	require.NoError(t, json.Unmarshal([]byte(`{}`), &s))
	assert.ErrorIs(t, s.Validate(), ErrInvalidInput)

	err := json.Unmarshal([]byte(`{"kind": "everywhere"}`), &s)
	require.Error(t, err)

	b, err := json.Marshal(GlobalScope())
	require.NoError(t, err)
	assert.JSONEq(t, `{"kind": "global"}`, string(b))
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("end_date", "end date must not be before start date")
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Equal(t, "end_date: end date must not be before start date", err.Error())
}

func TestCalendar_CloneIsDeep(t *testing.T) {
	cal := NewCalendar()
	cal.Events["a"] = []Event{{ID: "1", CategoryID: RecessCategoryID, StartDate: "2025-01-01", EndDate: "2025-01-02"}}

	cp := cal.Clone()
	cp.Events["a"][0].ID = "changed"
	cp.Events["b"] = nil
	cp.Categories[0].Name = "changed"

	assert.Equal(t, "1", cal.Events["a"][0].ID)
	assert.NotContains(t, cal.Events, CampusID("b"))
	assert.Equal(t, "Recess", cal.Categories[0].Name)
}

func TestCatalogue_Helpers(t *testing.T) {
	c := Catalogue{
		{ID: "1", Institution: "IFSP", Name: "Campus Norte"},
		{ID: "2", Institution: "IFSP", Name: "Campus Sul"},
		{ID: "3", Institution: "UFRJ", Name: "Campus Norte"},
	}
	assert.Equal(t, []string{"IFSP", "UFRJ"}, c.Institutions())
	assert.Len(t, c.ByInstitution("IFSP"), 2)
	assert.Len(t, c.Filter("norte"), 2)
	assert.Len(t, c.Filter(""), 3)
	e, ok := c.Find("3")
	require.True(t, ok)
	assert.Equal(t, "UFRJ - Campus Norte", e.Label())
}

func TestMonthGrid_Weeks(t *testing.T) {
	g := MonthGrid{Cells: make([]DayCell, 9)}
	weeks := g.Weeks()
	require.Len(t, weeks, 2)
	assert.Len(t, weeks[1], 7)
	assert.True(t, weeks[1][6].Empty)
	assert.False(t, weeks[1][1].Empty)
}
