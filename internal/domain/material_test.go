package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisplayID(t *testing.T) {
	m := &Material{ID: "aaaa1111-2222-3333-4444-555566667777"}
	assert.Equal(t, "aaaa1111", m.DisplayID())

	short := &Material{ID: "abc"}
	assert.Equal(t, "abc", short.DisplayID())
}

func TestSectionCount(t *testing.T) {
	m := &Material{Sections: []Section{{}, {}, {}}}
	assert.Equal(t, 3, m.SectionCount())

	assert.Zero(t, (&Material{}).SectionCount())
}

func TestValidMaterialTypes(t *testing.T) {
	for _, typ := range []MaterialType{MaterialBook, MaterialVideo, MaterialCustom} {
		assert.True(t, ValidMaterialTypes[string(typ)])
	}
	assert.False(t, ValidMaterialTypes["podcast"])
}
