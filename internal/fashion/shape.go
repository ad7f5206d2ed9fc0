package fashion

import (
	"fmt"
	"strings"
)

// Slot is a garment position in an outfit.
type Slot string

const (
	SlotOuter  Slot = "outer"
	SlotInner  Slot = "inner"
	SlotBottom Slot = "bottom"
	SlotShoes  Slot = "shoes"
)

var slotLabels = map[Slot]string{
	SlotOuter:  "아우터",
	SlotInner:  "이너(상의)",
	SlotBottom: "하의",
	SlotShoes:  "신발",
}

var slotOfItemType = map[ItemType]Slot{
	Outer:  SlotOuter,
	Inner:  SlotInner,
	Bottom: SlotBottom,
}

// Shape is the set of slots a recommendation must fill: the two garment
// slots other than the input's own, plus shoes.
type Shape struct {
	Slots []Slot
}

// ShapeFor selects the recommendation shape for an item type. Unknown types
// are treated as Inner.
func ShapeFor(t ItemType) Shape {
	if _, ok := slotOfItemType[t]; !ok {
		t = Inner
	}
	complements := Complements(t)
	slots := make([]Slot, 0, len(complements)+1)
	for _, c := range complements {
		slots = append(slots, SlotOf(c))
	}
	return Shape{Slots: append(slots, SlotShoes)}
}

// Description renders the slots as a Korean list, e.g. "아우터, 하의, 신발".
func (s Shape) Description() string {
	labels := make([]string, len(s.Slots))
	for i, slot := range s.Slots {
		labels[i] = slotLabels[slot]
	}
	return strings.Join(labels, ", ")
}

// Template renders the JSON object the model is asked to produce.
func (s Shape) Template() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, slot := range s.Slots {
		if i > 0 {
			b.WriteString(", ")
		}
		label := strings.SplitN(slotLabels[slot], "(", 2)[0]
		fmt.Fprintf(&b, "%q: %q", string(slot), label+" 추천 (구체적으로)")
	}
	b.WriteByte('}')
	return b.String()
}

// Complements returns the item types a wardrobe match may draw from for a
// selected item of type t.
func Complements(t ItemType) []ItemType {
	out := make([]ItemType, 0, 2)
	for _, candidate := range ItemTypes {
		if candidate != t {
			out = append(out, candidate)
		}
	}
	return out
}

// SlotOf reports the garment slot an item type occupies.
func SlotOf(t ItemType) Slot {
	return slotOfItemType[t]
}
