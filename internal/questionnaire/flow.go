package questionnaire

import (
	"github.com/rs/zerolog/log"

	"github.com/haikapp/haik/internal/models"
)

// CompleteFunc is invoked when the user advances past the last
// question. It receives the collected answers; the flow keeps
// ownership of nothing after this point.
type CompleteFunc func(*models.AnswerSet)

// Flow drives one questionnaire run: strictly linear navigation over
// an immutable question list, collecting selections into an AnswerSet.
// It performs no I/O.
type Flow struct {
	questions  []models.Question
	index      int
	answers    *models.AnswerSet
	onComplete CompleteFunc
}

// NewFlow creates a flow over the given questions with empty answers.
func NewFlow(questions []models.Question, onComplete CompleteFunc) *Flow {
	return &Flow{
		questions:  questions,
		answers:    models.NewAnswerSet(),
		onComplete: onComplete,
	}
}

// Current returns the question at the cursor.
func (f *Flow) Current() models.Question {
	return f.questions[f.index]
}

// Step returns the 1-based position of the cursor.
func (f *Flow) Step() int { return f.index + 1 }

// Answers exposes the collected answers. The scoring stage consumes
// them read-only; callers must not mutate after completion.
func (f *Flow) Answers() *models.AnswerSet { return f.answers }

// Toggle applies a selection to a question. Single-select questions
// replace the current selection. Multi-select questions remove an
// already-selected option (clearing its anchor pick) or append the
// option if the maximum has not been reached; attempts beyond the
// maximum are no-ops.
func (f *Flow) Toggle(q models.Question, opt models.Option) {
	current := f.answers.Selected[q.ID]

	if !q.Mode.Multi {
		f.answers.Selected[q.ID] = []string{opt.ID}
		return
	}

	for i, id := range current {
		if id == opt.ID {
			f.answers.Selected[q.ID] = append(current[:i:i], current[i+1:]...)
			if opt.NeedsNeighborhoodPick {
				f.answers.ClearAnchor(opt.ID)
			}
			return
		}
	}

	if len(current) >= q.Mode.Max {
		return
	}
	f.answers.Selected[q.ID] = append(current, opt.ID)
}

// PickNeighborhood records the anchor neighborhood for an
// anchor-flagged option.
func (f *Flow) PickNeighborhood(optionID, neighborhoodName string) {
	f.answers.SetAnchor(optionID, neighborhoodName)
}

// CanAdvance reports whether the current question is fully answered:
// exactly one selection for single-select, exactly Max for
// multi-select.
func (f *Flow) CanAdvance() bool {
	q := f.Current()
	n := len(f.answers.SelectedOptions(q.ID))
	if q.Mode.Multi {
		return n == q.Mode.Max
	}
	return n == 1
}

// Next advances the cursor. On the last question it triggers the
// completion callback instead of advancing.
func (f *Flow) Next() {
	if f.index >= len(f.questions)-1 {
		log.Debug().Int("questions", len(f.questions)).Msg("questionnaire complete")
		if f.onComplete != nil {
			f.onComplete(f.answers)
		}
		return
	}
	f.index++
}

// Back retreats one question. No-op at the first question.
func (f *Flow) Back() {
	if f.index > 0 {
		f.index--
	}
}

// Reset discards all answers and returns the cursor to the first
// question, beginning a fresh run.
func (f *Flow) Reset() {
	f.index = 0
	f.answers = models.NewAnswerSet()
}
