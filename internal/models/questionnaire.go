package models

// Question identifiers for the default questionnaire.
const (
	QuestionLifestyle  = "lifestyle"
	QuestionPriorities = "priorities"
	QuestionTransport  = "transport"
	QuestionBudget     = "budget"
)

// LifestyleChoice answers the lifestyle question.
type LifestyleChoice string

const (
	LifestyleQuiet        LifestyleChoice = "quiet"
	LifestyleActive       LifestyleChoice = "active"
	LifestyleFullServices LifestyleChoice = "full_services"
)

// PriorityChoice answers the priorities question (multi-select, max 2,
// selection order significant).
type PriorityChoice string

const (
	PriorityNearWork      PriorityChoice = "near_work"
	PriorityNearFamily    PriorityChoice = "near_family"
	PriorityServices      PriorityChoice = "services"
	PrioritySchools       PriorityChoice = "schools"
	PriorityMalls         PriorityChoice = "malls"
	PriorityEntertainment PriorityChoice = "entertainment"
)

// RequiresAnchor reports whether this priority needs a picked anchor
// neighborhood before it can be scored.
func (p PriorityChoice) RequiresAnchor() bool {
	return p == PriorityNearWork || p == PriorityNearFamily
}

// TransportChoice answers the transport question.
type TransportChoice string

const (
	TransportMetroPrimary   TransportChoice = "metro_primary"
	TransportMetroSometimes TransportChoice = "metro_sometimes"
	TransportCar            TransportChoice = "car"
)

// BudgetChoice answers the budget question.
type BudgetChoice string

const (
	BudgetLow  BudgetChoice = "low"
	BudgetMid  BudgetChoice = "mid"
	BudgetHigh BudgetChoice = "high"
)

// SelectionMode controls how many options a question accepts.
type SelectionMode struct {
	Multi bool `json:"multi"`
	// Max is the exact number of selections a multi question requires.
	// Ignored for single-select questions.
	Max int `json:"max,omitempty"`
}

// SingleSelect is the selection mode for one-of questions.
func SingleSelect() SelectionMode { return SelectionMode{} }

// MultiSelect is the selection mode for pick-exactly-max questions.
func MultiSelect(max int) SelectionMode { return SelectionMode{Multi: true, Max: max} }

// Option is one selectable answer of a question.
type Option struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Icon  string `json:"icon"`
	// NeedsNeighborhoodPick marks options like "near my workplace"
	// that require the user to nominate an anchor neighborhood.
	NeedsNeighborhoodPick bool `json:"needs_neighborhood_pick"`
}

// Question is an immutable questionnaire entry defined at process start.
type Question struct {
	ID      string        `json:"id"`
	Title   string        `json:"title"`
	Options []Option      `json:"options"`
	Mode    SelectionMode `json:"mode"`
}

// OptionByID returns the question's option with the given id.
func (q Question) OptionByID(id string) (Option, bool) {
	for _, o := range q.Options {
		if o.ID == id {
			return o, true
		}
	}
	return Option{}, false
}

// AnswerSet accumulates the user's selections for one questionnaire
// run. Selected keeps insertion order per question; Anchors holds the
// picked anchor neighborhood name per anchor-flagged option.
type AnswerSet struct {
	Selected map[string][]string `json:"selected" yaml:"selected"`
	Anchors  map[string]string   `json:"anchors,omitempty" yaml:"anchors,omitempty"`
}

// NewAnswerSet returns an empty answer set.
func NewAnswerSet() *AnswerSet {
	return &AnswerSet{
		Selected: make(map[string][]string),
		Anchors:  make(map[string]string),
	}
}

// SelectedOptions returns the option ids selected for a question, in
// selection order.
func (a *AnswerSet) SelectedOptions(questionID string) []string {
	if a == nil || a.Selected == nil {
		return nil
	}
	return a.Selected[questionID]
}

// IsSelected reports whether an option is currently selected.
func (a *AnswerSet) IsSelected(questionID, optionID string) bool {
	for _, id := range a.SelectedOptions(questionID) {
		if id == optionID {
			return true
		}
	}
	return false
}

func (a *AnswerSet) first(questionID string) (string, bool) {
	ids := a.SelectedOptions(questionID)
	if len(ids) == 0 {
		return "", false
	}
	return ids[0], true
}

// Lifestyle returns the lifestyle answer, if one was selected.
func (a *AnswerSet) Lifestyle() (LifestyleChoice, bool) {
	id, ok := a.first(QuestionLifestyle)
	return LifestyleChoice(id), ok
}

// Priorities returns the selected priorities in selection order.
func (a *AnswerSet) Priorities() []PriorityChoice {
	ids := a.SelectedOptions(QuestionPriorities)
	out := make([]PriorityChoice, 0, len(ids))
	for _, id := range ids {
		out = append(out, PriorityChoice(id))
	}
	return out
}

// Transport returns the transport answer, if one was selected.
func (a *AnswerSet) Transport() (TransportChoice, bool) {
	id, ok := a.first(QuestionTransport)
	return TransportChoice(id), ok
}

// Budget returns the budget answer, if one was selected.
func (a *AnswerSet) Budget() (BudgetChoice, bool) {
	id, ok := a.first(QuestionBudget)
	return BudgetChoice(id), ok
}

// AnchorFor returns the picked anchor neighborhood name for an
// anchor-flagged option.
func (a *AnswerSet) AnchorFor(optionID string) (string, bool) {
	if a == nil || a.Anchors == nil {
		return "", false
	}
	name, ok := a.Anchors[optionID]
	return name, ok && name != ""
}

// SetAnchor records the picked anchor neighborhood for an option.
func (a *AnswerSet) SetAnchor(optionID, neighborhoodName string) {
	if a.Anchors == nil {
		a.Anchors = make(map[string]string)
	}
	a.Anchors[optionID] = neighborhoodName
}

// ClearAnchor removes the anchor pick for an option.
func (a *AnswerSet) ClearAnchor(optionID string) {
	delete(a.Anchors, optionID)
}
