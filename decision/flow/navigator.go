package flow

import "bati-cost/decision/record"

// Override routes a branch point to an explicit target step instead of the
// next visible position. Overrides are consulted in declaration order; the
// first whose predicate holds and whose target is currently visible wins.
type Override struct {
	From   string
	When   func(r *record.AnswerRecord) bool
	Target string
}

var nextOverrides = []Override{
	// Client type routes to the matching project-type variant.
	{From: StepClientType, When: isProfessional, Target: StepProjectTypeProfessional},
	{From: StepClientType, When: isIndividual, Target: StepProjectTypeIndividual},
	// An interior-design project needs no build questions at all.
	{From: StepProjectTypeIndividual, When: isDesign, Target: StepContact},
	{From: StepProjectTypeProfessional, When: isDesign, Target: StepContact},
	// Quick mode goes straight to the surface question.
	{From: StepEstimationMode, When: isQuickMode, Target: StepSurface},
}

// prevOverrides mirrors the branch points for backwards navigation.
var prevOverrides = []Override{
	{From: StepProjectTypeProfessional, When: func(*record.AnswerRecord) bool { return true }, Target: StepClientType},
	{From: StepProjectTypeIndividual, When: func(*record.AnswerRecord) bool { return true }, Target: StepClientType},
	{From: StepContact, When: func(r *record.AnswerRecord) bool { return isDesign(r) && isProfessional(r) }, Target: StepProjectTypeProfessional},
	{From: StepContact, When: func(r *record.AnswerRecord) bool { return isDesign(r) && !isProfessional(r) }, Target: StepProjectTypeIndividual},
	{From: StepSurface, When: isQuickMode, Target: StepEstimationMode},
}

// ClampIndex applies the reactivity invariant: whenever a record change
// shrinks the visible list below the current position, the position snaps
// to the last visible step.
func ClampIndex(current int, r *record.AnswerRecord) int {
	n := len(ResolveVisibleSteps(r))
	if n == 0 {
		return 0
	}
	if current >= n {
		return n - 1
	}
	if current < 0 {
		return 0
	}
	return current
}

// GoNext computes the next step index. The current step must validate:
// on blocking failures the index is returned unchanged together with the
// reasons. Branch overrides are consulted before the default advance.
func GoNext(current int, r *record.AnswerRecord) (int, ValidationResult) {
	steps := ResolveVisibleSteps(r)
	if len(steps) == 0 {
		return 0, ValidationResult{IsValid: true, Errors: []string{}}
	}
	current = ClampIndex(current, r)

	res := validateStep(steps[current], r)
	if !res.IsValid {
		return current, res
	}

	if idx, ok := resolveOverride(nextOverrides, steps, steps[current].ID, r); ok {
		return idx, res
	}
	if current+1 < len(steps) {
		return current + 1, res
	}
	return current, res
}

// GoPrevious computes the previous step index, mirroring the branch
// overrides. Going back never validates and never goes below zero.
func GoPrevious(current int, r *record.AnswerRecord) int {
	steps := ResolveVisibleSteps(r)
	if len(steps) == 0 {
		return 0
	}
	current = ClampIndex(current, r)

	if idx, ok := resolveOverride(prevOverrides, steps, steps[current].ID, r); ok {
		return idx
	}
	if current > 0 {
		return current - 1
	}
	return 0
}

func resolveOverride(overrides []Override, steps []Step, fromID string, r *record.AnswerRecord) (int, bool) {
	for _, o := range overrides {
		if o.From != fromID || !o.When(r) {
			continue
		}
		if idx := indexOf(steps, o.Target); idx >= 0 {
			return idx, true
		}
	}
	return 0, false
}
