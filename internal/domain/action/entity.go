package action

import (
	"time"

	"talent-align/internal/domain/directory"
)

// TargetType, Type and Status are open string enums: the constants below are the
// values this service knows about, anything else is carried through verbatim.
type TargetType string

const (
	TargetOrganization TargetType = "Organization"
	TargetPosition     TargetType = "Position"
	TargetEmployee     TargetType = "Employee"
)

func (t TargetType) Known() bool {
	switch t {
	case TargetOrganization, TargetPosition, TargetEmployee:
		return true
	default:
		return false
	}
}

type Type string

const (
	TypeOrgOptimization Type = "org_optimization"
	TypeJobTransfer     Type = "job_transfer"
	TypeTraining        Type = "training"
	TypeRecruitment     Type = "recruitment"
)

func (t Type) Known() bool {
	switch t {
	case TypeOrgOptimization, TypeJobTransfer, TypeTraining, TypeRecruitment:
		return true
	default:
		return false
	}
}

type Status string

const (
	StatusDraft     Status = "draft"
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

func (s Status) Known() bool {
	switch s {
	case StatusDraft, StatusActive, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

const (
	DefaultAssignee = "HRBP"
	DefaultDueIn    = 14 * 24 * time.Hour
	DateLayout      = "2006-01-02"
)

type Action struct {
	ID               string     `json:"id"`
	TargetObjectType TargetType `json:"target_object_type"`
	TargetObjectID   string     `json:"target_object_id"`
	ActionType       Type       `json:"action_type"`
	Status           Status     `json:"status"`
	Title            string     `json:"title"`
	ExpectedImpact   string     `json:"expected_impact"`
	Effort           *string    `json:"effort"`
	ExecutionMethod  *string    `json:"execution_method"`
	Assignee         string     `json:"assignee"`
	DueDate          string     `json:"due_date"`
	Progress         int        `json:"progress"`
}

// NewDraft builds a freshly generated action. The caller supplies the id so that
// id allocation stays with the store.
func NewDraft(id string, targetType TargetType, targetID string, actionType Type, expectedImpact string, now time.Time) Action {
	return Action{
		ID:               id,
		TargetObjectType: targetType,
		TargetObjectID:   targetID,
		ActionType:       actionType,
		Status:           StatusDraft,
		Title:            "行动任务：" + string(actionType),
		ExpectedImpact:   expectedImpact,
		Assignee:         DefaultAssignee,
		DueDate:          now.Add(DefaultDueIn).Format(DateLayout),
		Progress:         0,
	}
}

// BelongsTo reports whether the action targets orgID directly, or targets an
// employee or position whose own organization is exactly orgID. Ancestors of
// that organization do not match.
func (a Action) BelongsTo(orgID string, dir *directory.Directory) bool {
	if a.TargetObjectType == TargetOrganization {
		return a.TargetObjectID == orgID
	}
	owner, ok := dir.OrganizationOf(string(a.TargetObjectType), a.TargetObjectID)
	return ok && owner == orgID
}

func (a Action) Clone() Action {
	out := a
	if a.Effort != nil {
		v := *a.Effort
		out.Effort = &v
	}
	if a.ExecutionMethod != nil {
		v := *a.ExecutionMethod
		out.ExecutionMethod = &v
	}
	return out
}
