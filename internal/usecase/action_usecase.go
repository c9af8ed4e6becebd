package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"talent-align/internal/domain/action"
	"talent-align/internal/domain/directory"
	"talent-align/internal/domain/jobfit"
	"talent-align/internal/domain/organization"
	"talent-align/internal/logger"
	"talent-align/internal/metrics"
	"talent-align/internal/repository"
)

const (
	GeneratedExpectedImpact = "预计提升关键指标 6%"
	SimulatedExpectedImpact = "预计匹配度提升 8%"
)

// ActionNotifier receives committed action changes. Implementations must not block.
type ActionNotifier interface {
	ActionCreated(a action.Action)
	ActionUpdated(a action.Action)
}

type UpdateActionInput struct {
	ActionID string
	Patch    action.Patch
}

type GenerateActionInput struct {
	ObjectType string
	ObjectID   string
	ActionType string
}

type GeneratedAction struct {
	ActionID       string
	ExpectedImpact string
}

type SimulateInput struct {
	OrgID    string
	Employee string
	Role     string
}

type ActionUsecase interface {
	// ListActions returns every action when orgID is empty, otherwise only those
	// that target orgID directly or through one of its own employees or positions.
	ListActions(ctx context.Context, orgID string) ([]action.Action, error)
	UpdateAction(ctx context.Context, in UpdateActionInput) (action.Action, error)
	GenerateAction(ctx context.Context, in GenerateActionInput) (GeneratedAction, error)
	SimulateJobFit(ctx context.Context, in SimulateInput) (jobfit.Simulation, error)
}

type Actions struct {
	repo      repository.ActionRepository
	hierarchy *organization.Hierarchy
	directory *directory.Directory
	notifier  ActionNotifier
	log       *zap.Logger

	now   func() time.Time
	newID func() string
}

func NewActionUsecase(repo repository.ActionRepository, h *organization.Hierarchy, dir *directory.Directory, notifier ActionNotifier, log *zap.Logger) *Actions {
	return &Actions{
		repo:      repo,
		hierarchy: h,
		directory: dir,
		notifier:  notifier,
		log:       logger.OrNop(log).Named("actions"),
		now:       time.Now,
		newID:     uuid.NewString,
	}
}

func (u *Actions) ListActions(ctx context.Context, orgID string) ([]action.Action, error) {
	all, err := u.repo.List(ctx)
	if err != nil {
		u.log.Error("list actions failed", zap.Error(err))
		return nil, ErrInternal
	}

	orgID = strings.TrimSpace(orgID)
	if orgID == "" {
		return all, nil
	}

	scoped := make([]action.Action, 0)
	for _, a := range all {
		if a.BelongsTo(orgID, u.directory) {
			scoped = append(scoped, a)
		}
	}
	return scoped, nil
}

func (u *Actions) UpdateAction(ctx context.Context, in UpdateActionInput) (action.Action, error) {
	id := strings.TrimSpace(in.ActionID)
	if id == "" {
		return action.Action{}, ErrMissingActionID
	}
	if err := in.Patch.Validate(); err != nil {
		switch {
		case errors.Is(err, action.ErrInvalidProgress):
			return action.Action{}, ErrInvalidProgress
		case errors.Is(err, action.ErrInvalidDueDate):
			return action.Action{}, ErrInvalidDueDate
		default:
			return action.Action{}, err
		}
	}

	updated, err := u.repo.Update(ctx, id, func(current action.Action) (action.Action, error) {
		return in.Patch.Apply(current), nil
	})
	metrics.ActionMutation("update", err)
	if err != nil {
		if errors.Is(err, repository.ErrActionNotFound) {
			return action.Action{}, ErrActionNotFound
		}
		u.log.Error("update action failed", zap.String("action_id", id), zap.Error(err))
		return action.Action{}, ErrInternal
	}

	u.log.Info("action updated", zap.String("action_id", id), zap.String("status", string(updated.Status)), zap.Int("progress", updated.Progress))
	u.notify(func(n ActionNotifier) { n.ActionUpdated(updated) })
	return updated, nil
}

func (u *Actions) GenerateAction(ctx context.Context, in GenerateActionInput) (GeneratedAction, error) {
	objectType := strings.TrimSpace(in.ObjectType)
	objectID := strings.TrimSpace(in.ObjectID)
	actionType := strings.TrimSpace(in.ActionType)
	if objectType == "" || objectID == "" || actionType == "" {
		return GeneratedAction{}, ErrMissingFields
	}

	a, err := u.create(ctx, action.TargetType(objectType), objectID, action.Type(actionType), GeneratedExpectedImpact)
	if err != nil {
		return GeneratedAction{}, err
	}
	return GeneratedAction{ActionID: a.ID, ExpectedImpact: a.ExpectedImpact}, nil
}

// SimulateJobFit scores a hypothetical transfer and records it as a draft
// job_transfer action for the employee.
func (u *Actions) SimulateJobFit(ctx context.Context, in SimulateInput) (jobfit.Simulation, error) {
	orgID := strings.TrimSpace(in.OrgID)
	employee := strings.TrimSpace(in.Employee)
	role := strings.TrimSpace(in.Role)
	if orgID == "" || employee == "" || role == "" {
		return jobfit.Simulation{}, ErrMissingFields
	}
	if !u.hierarchy.Exists(orgID) {
		return jobfit.Simulation{}, ErrOrganizationNotFound
	}

	sim := jobfit.Simulate(employee, role)
	if _, err := u.create(ctx, action.TargetEmployee, employee, action.TypeJobTransfer, SimulatedExpectedImpact); err != nil {
		return jobfit.Simulation{}, err
	}
	return sim, nil
}

func (u *Actions) create(ctx context.Context, targetType action.TargetType, targetID string, actionType action.Type, impact string) (action.Action, error) {
	a := action.NewDraft(u.newID(), targetType, targetID, actionType, impact, u.now())
	if !targetType.Known() || !actionType.Known() {
		u.log.Debug("storing action with unrecognised enum value",
			zap.String("target_object_type", string(targetType)),
			zap.String("action_type", string(actionType)),
		)
	}

	err := u.repo.Create(ctx, a)
	metrics.ActionMutation("create", err)
	if err != nil {
		u.log.Error("create action failed", zap.String("action_id", a.ID), zap.Error(err))
		return action.Action{}, ErrInternal
	}

	u.log.Info("action created", zap.String("action_id", a.ID), zap.String("action_type", string(a.ActionType)))
	u.notify(func(n ActionNotifier) { n.ActionCreated(a) })
	return a, nil
}

func (u *Actions) notify(fn func(ActionNotifier)) {
	if u.notifier == nil {
		return
	}
	fn(u.notifier)
}
