package dto

// UpdateActionRequest mirrors the merge-patch body. Pointers distinguish an
// absent key from a zero value; progress relies on that.
type UpdateActionRequest struct {
	ID              string  `json:"id" validate:"required"`
	Status          *string `json:"status"`
	Assignee        *string `json:"assignee"`
	DueDate         *string `json:"due_date"`
	Progress        *int    `json:"progress"`
	Title           *string `json:"title"`
	ExpectedImpact  *string `json:"expected_impact"`
	Effort          *string `json:"effort"`
	ExecutionMethod *string `json:"execution_method"`
}

type GenerateActionRequest struct {
	ObjectType string `json:"object_type" validate:"required"`
	ObjectID   string `json:"object_id" validate:"required"`
	ActionType string `json:"action_type" validate:"required"`
}

type GenerateActionResponse struct {
	ActionID       string `json:"action_id"`
	ExpectedImpact string `json:"expected_impact"`
}

type SimulateJobFitRequest struct {
	OrgID    string `json:"org_id" validate:"required"`
	Employee string `json:"employee" validate:"required"`
	Role     string `json:"role" validate:"required"`
}

type SimulateJobFitResponse struct {
	Match       int    `json:"match"`
	Performance int    `json:"performance"`
	Risk        int    `json:"risk"`
	Reason      string `json:"reason"`
}
