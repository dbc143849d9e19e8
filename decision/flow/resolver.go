package flow

import (
	"sort"

	"bati-cost/decision/record"
)

// ResolveVisibleSteps returns the steps applicable to the record, in
// catalog order. Pure and side-effect free: it is called on every record
// mutation. The renovation sub-catalog is appended before filtering when
// the project is explicitly a renovation.
func ResolveVisibleSteps(r *record.AnswerRecord) []Step {
	if r == nil {
		r = &record.AnswerRecord{}
	}

	steps := make([]Step, 0, len(baseCatalog)+len(renovationCatalog))
	steps = append(steps, baseCatalog...)
	if isRenovation(r) {
		steps = append(steps, renovationCatalog...)
	}
	sort.SliceStable(steps, func(i, j int) bool { return steps[i].Order < steps[j].Order })

	visible := steps[:0]
	for _, s := range steps {
		if s.Skip != nil && s.Skip(r) {
			continue
		}
		visible = append(visible, s)
	}
	return visible
}

// StepAt returns the visible step at the given position.
func StepAt(index int, r *record.AnswerRecord) (Step, bool) {
	steps := ResolveVisibleSteps(r)
	if index < 0 || index >= len(steps) {
		return Step{}, false
	}
	return steps[index], true
}

func indexOf(steps []Step, id string) int {
	for i, s := range steps {
		if s.ID == id {
			return i
		}
	}
	return -1
}
