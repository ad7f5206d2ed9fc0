// Package fashion holds the closed vocabularies the styling endpoints accept
// and the recommendation shapes derived from a garment's item type.
package fashion

import (
	"errors"
	"fmt"
	"strings"
)

// ItemType is the clothing category of a single garment.
type ItemType string

const (
	Outer  ItemType = "아우터"
	Inner  ItemType = "이너"
	Bottom ItemType = "하의"
)

// ItemTypes lists the valid item types in display order.
var ItemTypes = []ItemType{Outer, Inner, Bottom}

// itemTypeAliases maps every label a model or an older client may produce
// onto the current vocabulary. "바지"/"Pants" come from an earlier prompt
// version that split bottoms by pants only.
var itemTypeAliases = map[string]ItemType{
	"아우터":    Outer,
	"이너":     Inner,
	"하의":     Bottom,
	"바지":     Bottom,
	"outer":  Outer,
	"inner":  Inner,
	"bottom": Bottom,
	"pants":  Bottom,
}

// ParseItemType normalizes a label, including legacy labels, to an ItemType.
func ParseItemType(label string) (ItemType, bool) {
	key := strings.TrimSpace(label)
	if t, ok := itemTypeAliases[key]; ok {
		return t, true
	}
	t, ok := itemTypeAliases[strings.ToLower(key)]
	return t, ok
}

// NormalizeItemType returns the ItemType for label, or fallback when the
// label is unknown.
func NormalizeItemType(label string, fallback ItemType) ItemType {
	if t, ok := ParseItemType(label); ok {
		return t
	}
	return fallback
}

// Aesthetics are the five style archetypes a user can pick.
var Aesthetics = []string{"모리걸", "고프코어", "발레코어", "올드머니", "긱시크"}

// PersonalColors are the four seasonal color categories.
var PersonalColors = []string{"봄 웜", "여름 쿨", "가을 웜", "겨울 쿨"}

var (
	ErrInvalidAesthetic     = errors.New("invalid aesthetic")
	ErrInvalidPersonalColor = errors.New("invalid personal color")
)

// ValidationError carries the user-facing message for a rejected option.
type ValidationError struct {
	Err     error
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func (e *ValidationError) Unwrap() error { return e.Err }

// ValidatePreferences checks the aesthetic and personal color against their
// enumerations. It is called before any upstream call is made.
func ValidatePreferences(aesthetic, personalColor string) error {
	if !contains(Aesthetics, aesthetic) {
		return &ValidationError{
			Err:     ErrInvalidAesthetic,
			Message: fmt.Sprintf("추구미는 %s 중 하나여야 합니다.", formatList(Aesthetics)),
		}
	}
	if !contains(PersonalColors, personalColor) {
		return &ValidationError{
			Err:     ErrInvalidPersonalColor,
			Message: fmt.Sprintf("퍼스널 컬러는 %s 중 하나여야 합니다.", formatList(PersonalColors)),
		}
	}
	return nil
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

func formatList(list []string) string {
	quoted := make([]string, len(list))
	for i, v := range list {
		quoted[i] = "'" + v + "'"
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}
