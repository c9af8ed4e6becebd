package action

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrInvalidProgress = errors.New("progress must be between 0 and 100")
	ErrInvalidDueDate  = errors.New("due_date must be YYYY-MM-DD")
)

// Patch is a partial update. A nil field is absent. String fields holding an
// empty string are treated as absent too; Progress is presence-checked only,
// so an explicit 0 is applied.
type Patch struct {
	Status          *Status
	Assignee        *string
	DueDate         *string
	Progress        *int
	Title           *string
	ExpectedImpact  *string
	Effort          *string
	ExecutionMethod *string
}

func (p Patch) Validate() error {
	if p.Progress != nil && (*p.Progress < 0 || *p.Progress > 100) {
		return ErrInvalidProgress
	}
	if present(p.DueDate) {
		if _, err := time.Parse(DateLayout, strings.TrimSpace(*p.DueDate)); err != nil {
			return ErrInvalidDueDate
		}
	}
	return nil
}

func (p Patch) IsEmpty() bool {
	return p.Status == nil && p.Assignee == nil && p.DueDate == nil && p.Progress == nil &&
		p.Title == nil && p.ExpectedImpact == nil && p.Effort == nil && p.ExecutionMethod == nil
}

// Apply merges the present fields of p into a and returns the result.
func (p Patch) Apply(a Action) Action {
	out := a.Clone()
	if p.Status != nil && *p.Status != "" {
		out.Status = *p.Status
	}
	if present(p.Assignee) {
		out.Assignee = *p.Assignee
	}
	if present(p.DueDate) {
		out.DueDate = strings.TrimSpace(*p.DueDate)
	}
	if p.Progress != nil {
		out.Progress = *p.Progress
	}
	if present(p.Title) {
		out.Title = *p.Title
	}
	if present(p.ExpectedImpact) {
		out.ExpectedImpact = *p.ExpectedImpact
	}
	if present(p.Effort) {
		v := *p.Effort
		out.Effort = &v
	}
	if present(p.ExecutionMethod) {
		v := *p.ExecutionMethod
		out.ExecutionMethod = &v
	}
	return out
}

func present(s *string) bool {
	return s != nil && *s != ""
}
