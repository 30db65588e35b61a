package domain

// Selector is the value of the gender filter control.
type Selector string

const (
	SelectAll    Selector = "All"
	SelectFemale Selector = "Female"
	SelectMale   Selector = "Male"
)

// Selectors lists the values offered by the filter control, in display order.
var Selectors = []Selector{SelectAll, SelectFemale, SelectMale}

func (s Selector) Valid() bool {
	switch s {
	case SelectAll, SelectFemale, SelectMale:
		return true
	}
	return false
}

// Gender returns the gender the selector narrows to; ok is false for "All".
func (s Selector) Gender() (Gender, bool) {
	switch s {
	case SelectFemale:
		return GenderFemale, true
	case SelectMale:
		return GenderMale, true
	}
	return "", false
}
