// Package workflow models the fixed five-step form sequence as a DAG. A
// step's unlock condition is declared by data dependency, not by display
// position: Lead sits last in display order yet unlocks from room data
// alone, without operator or building records.
package workflow

// Step identifies one stage of the multi-form sequence.
type Step string

const (
	StepOperator Step = "operator"
	StepBuilding Step = "building"
	StepRoom     Step = "room"
	StepTenant   Step = "tenant"
	StepLead     Step = "lead"
)

type stepNode struct {
	id   Step
	deps []Step
}

// steps is the fixed display order with declared dependency edges. Lead
// deliberately omits operator/building even though room transitively needs
// building.
var steps = []stepNode{
	{id: StepOperator},
	{id: StepBuilding, deps: []Step{StepOperator}},
	{id: StepRoom, deps: []Step{StepBuilding}},
	{id: StepTenant, deps: []Step{StepOperator, StepBuilding, StepRoom}},
	{id: StepLead, deps: []Step{StepRoom}},
}

// Snapshot reports which steps currently have data: record IDs per step,
// supplied by the caller.
type Snapshot map[Step][]string

// ProgressInfo locates a step within the display sequence.
type ProgressInfo struct {
	Position int     `json:"position"`
	Total    int     `json:"total"`
	Percent  float64 `json:"percent"`
}

func indexOf(id Step) int {
	for i, s := range steps {
		if s.id == id {
			return i
		}
	}
	return -1
}

// Steps returns the step identifiers in display order.
func Steps() []Step {
	out := make([]Step, len(steps))
	for i, s := range steps {
		out[i] = s.id
	}
	return out
}

// Dependencies returns the declared dependency steps of id, nil for an
// independent or unknown step.
func Dependencies(id Step) []Step {
	i := indexOf(id)
	if i < 0 || len(steps[i].deps) == 0 {
		return nil
	}
	out := make([]Step, len(steps[i].deps))
	copy(out, steps[i].deps)
	return out
}

// Previous returns the display-order predecessor, nil at the first step or
// for an unknown step.
func Previous(id Step) *Step {
	i := indexOf(id)
	if i <= 0 {
		return nil
	}
	return &steps[i-1].id
}

// Next returns the display-order successor, nil at the last step or for an
// unknown step.
func Next(id Step) *Step {
	i := indexOf(id)
	if i < 0 || i == len(steps)-1 {
		return nil
	}
	return &steps[i+1].id
}

// IsAccessible reports whether every declared dependency of id has at least
// one record in the snapshot. Unknown steps are never accessible.
func IsAccessible(id Step, data Snapshot) bool {
	i := indexOf(id)
	if i < 0 {
		return false
	}
	for _, dep := range steps[i].deps {
		if len(data[dep]) == 0 {
			return false
		}
	}
	return true
}

// Progress reports the 1-based position of id within the display sequence.
func Progress(id Step) (ProgressInfo, bool) {
	i := indexOf(id)
	if i < 0 {
		return ProgressInfo{}, false
	}
	total := len(steps)
	return ProgressInfo{
		Position: i + 1,
		Total:    total,
		Percent:  float64(i+1) / float64(total) * 100,
	}, true
}
