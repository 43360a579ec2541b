package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResumeDocument_AllBullets(t *testing.T) {
	doc := ResumeDocument{
		Experience: []ExperienceEntry{
			{Bullets: []Bullet{{ID: "b_1"}, {ID: "b_2"}}},
			{Bullets: []Bullet{{ID: "b_3"}}},
		},
		Projects: []ProjectEntry{
			{Bullets: []Bullet{{ID: "b_4"}}},
		},
	}

	var ids []string
	for _, b := range doc.AllBullets() {
		ids = append(ids, b.ID)
	}
	assert.Equal(t, []string{"b_1", "b_2", "b_3", "b_4"}, ids)
}

func TestResumeDocument_JSONMarshaling(t *testing.T) {
	doc := ResumeDocument{
		Basics: Basics{Name: StringPtr("Jane Doe"), Links: []string{}},
		Experience: []ExperienceEntry{{
			Company: StringPtr("Acme Corp"),
			Title:   StringPtr("Software Engineer"),
			Start:   StringPtr("2021-01"),
			End:     StringPtr(PresentDate),
			Stack:   []string{},
			Bullets: []Bullet{{ID: "b_0a1b2c3d", Text: "Built Python services", Skills: []string{"Python"}}},
		}},
		Projects:  []ProjectEntry{},
		Skills:    []string{"Python"},
		Education: []string{},
	}

	jsonBytes, err := json.Marshal(doc)
	require.NoError(t, err)
	s := string(jsonBytes)
	assert.Contains(t, s, `"name":"Jane Doe"`)
	assert.Contains(t, s, `"email":null`)
	assert.Contains(t, s, `"end":"PRESENT"`)
	assert.Contains(t, s, `"projects":[]`)
	assert.Contains(t, s, `"id":"b_0a1b2c3d"`)
}
