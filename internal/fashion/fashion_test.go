package fashion_test

import (
	"errors"
	"testing"

	"core-d-backend/internal/fashion"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseItemType(t *testing.T) {
	tests := []struct {
		label string
		want  fashion.ItemType
		ok    bool
	}{
		{"아우터", fashion.Outer, true},
		{"이너", fashion.Inner, true},
		{"하의", fashion.Bottom, true},
		{" 하의 ", fashion.Bottom, true},
		{"바지", fashion.Bottom, true},
		{"Pants", fashion.Bottom, true},
		{"Outer", fashion.Outer, true},
		{"INNER", fashion.Inner, true},
		{"신발", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			got, ok := fashion.ParseItemType(tt.label)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeItemType_Fallback(t *testing.T) {
	assert.Equal(t, fashion.Inner, fashion.NormalizeItemType("모자", fashion.Inner))
	assert.Equal(t, fashion.Outer, fashion.NormalizeItemType("", fashion.Outer))
	assert.Equal(t, fashion.Bottom, fashion.NormalizeItemType("바지", fashion.Inner))
}

func TestValidatePreferences(t *testing.T) {
	for _, a := range fashion.Aesthetics {
		for _, pc := range fashion.PersonalColors {
			assert.NoError(t, fashion.ValidatePreferences(a, pc), "%s/%s", a, pc)
		}
	}

	err := fashion.ValidatePreferences("힙합", "봄 웜")
	require.Error(t, err)
	assert.True(t, errors.Is(err, fashion.ErrInvalidAesthetic))
	assert.Contains(t, err.Error(), "추구미")

	err = fashion.ValidatePreferences("모리걸", "봄웜")
	require.Error(t, err)
	assert.True(t, errors.Is(err, fashion.ErrInvalidPersonalColor))
	assert.Contains(t, err.Error(), "퍼스널 컬러")

	var verr *fashion.ValidationError
	assert.True(t, errors.As(err, &verr))
}

func TestShapeFor(t *testing.T) {
	tests := []struct {
		itemType fashion.ItemType
		slots    []fashion.Slot
		desc     string
	}{
		{fashion.Outer, []fashion.Slot{fashion.SlotInner, fashion.SlotBottom, fashion.SlotShoes}, "이너(상의), 하의, 신발"},
		{fashion.Bottom, []fashion.Slot{fashion.SlotOuter, fashion.SlotInner, fashion.SlotShoes}, "아우터, 이너(상의), 신발"},
		{fashion.Inner, []fashion.Slot{fashion.SlotOuter, fashion.SlotBottom, fashion.SlotShoes}, "아우터, 하의, 신발"},
	}

	for _, tt := range tests {
		t.Run(string(tt.itemType), func(t *testing.T) {
			shape := fashion.ShapeFor(tt.itemType)
			assert.Equal(t, tt.slots, shape.Slots)
			assert.Equal(t, tt.desc, shape.Description())
			for _, slot := range tt.slots {
				assert.Contains(t, shape.Template(), `"`+string(slot)+`"`)
			}
			assert.NotContains(t, shape.Template(), `"`+string(fashion.SlotOf(tt.itemType))+`"`)
		})
	}
}

func TestShapeFor_UnknownTypeUsesInnerShape(t *testing.T) {
	assert.Equal(t, fashion.ShapeFor(fashion.Inner), fashion.ShapeFor("모자"))
}

func TestShapeTemplate(t *testing.T) {
	assert.Equal(t,
		`{"outer": "아우터 추천 (구체적으로)", "bottom": "하의 추천 (구체적으로)", "shoes": "신발 추천 (구체적으로)"}`,
		fashion.ShapeFor(fashion.Inner).Template())
}

func TestComplements(t *testing.T) {
	assert.ElementsMatch(t, []fashion.ItemType{fashion.Inner, fashion.Outer}, fashion.Complements(fashion.Bottom))
	assert.ElementsMatch(t, []fashion.ItemType{fashion.Bottom, fashion.Outer}, fashion.Complements(fashion.Inner))
	assert.ElementsMatch(t, []fashion.ItemType{fashion.Inner, fashion.Bottom}, fashion.Complements(fashion.Outer))
}
