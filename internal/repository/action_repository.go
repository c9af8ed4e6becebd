package repository

import (
	"context"
	"errors"
	"sync"

	"talent-align/internal/database"
	"talent-align/internal/domain/action"

	pkgerrors "github.com/pkg/errors"
)

var ErrActionNotFound = errors.New("action not found")

// UpdateFunc receives the current record and returns its replacement. It runs
// while the record is locked, so it must not call back into the repository.
type UpdateFunc func(current action.Action) (action.Action, error)

type ActionRepository interface {
	// Create stores a as the most recent action.
	Create(ctx context.Context, a action.Action) error
	Get(ctx context.Context, id string) (action.Action, error)
	Update(ctx context.Context, id string, fn UpdateFunc) (action.Action, error)
	// List returns every action, most recent first.
	List(ctx context.Context) ([]action.Action, error)
}

type MemoryActionRepository struct {
	mu      sync.Mutex
	actions []action.Action
}

// NewMemoryActionRepository starts from seed, which must already be ordered
// most recent first.
func NewMemoryActionRepository(seed []action.Action) *MemoryActionRepository {
	r := &MemoryActionRepository{actions: make([]action.Action, 0, len(seed))}
	for _, a := range seed {
		r.actions = append(r.actions, a.Clone())
	}
	return r
}

func (r *MemoryActionRepository) Create(_ context.Context, a action.Action) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.actions = append([]action.Action{a.Clone()}, r.actions...)
	return nil
}

func (r *MemoryActionRepository) Get(_ context.Context, id string) (action.Action, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return action.Action{}, ErrActionNotFound
	}
	return r.actions[i].Clone(), nil
}

func (r *MemoryActionRepository) Update(_ context.Context, id string, fn UpdateFunc) (action.Action, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return action.Action{}, ErrActionNotFound
	}
	next, err := fn(r.actions[i].Clone())
	if err != nil {
		return action.Action{}, err
	}
	next.ID = r.actions[i].ID
	r.actions[i] = next.Clone()
	return next, nil
}

func (r *MemoryActionRepository) List(_ context.Context) ([]action.Action, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]action.Action, 0, len(r.actions))
	for _, a := range r.actions {
		out = append(out, a.Clone())
	}
	return out, nil
}

func (r *MemoryActionRepository) indexOf(id string) int {
	for i := range r.actions {
		if r.actions[i].ID == id {
			return i
		}
	}
	return -1
}

type PostgresActionRepository struct {
	db database.DB
}

func NewPostgresActionRepository(db database.DB) *PostgresActionRepository {
	return &PostgresActionRepository{db: db}
}

const actionColumns = `id, target_object_type, target_object_id, action_type, status, title,
	expected_impact, effort, execution_method, assignee, to_char(due_date, 'YYYY-MM-DD'), progress`

func (r *PostgresActionRepository) Create(ctx context.Context, a action.Action) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO actions (id, target_object_type, target_object_id, action_type, status, title,
			expected_impact, effort, execution_method, assignee, due_date, progress)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11::date, $12)`,
		a.ID,
		string(a.TargetObjectType),
		a.TargetObjectID,
		string(a.ActionType),
		string(a.Status),
		a.Title,
		a.ExpectedImpact,
		a.Effort,
		a.ExecutionMethod,
		a.Assignee,
		a.DueDate,
		a.Progress,
	)
	if err != nil {
		return pkgerrors.Wrapf(err, "insert action %s", a.ID)
	}
	return nil
}

func (r *PostgresActionRepository) Get(ctx context.Context, id string) (action.Action, error) {
	a, err := scanAction(r.db.QueryRow(ctx, `SELECT `+actionColumns+` FROM actions WHERE id = $1`, id))
	if err != nil {
		if isNoRows(err) {
			return action.Action{}, ErrActionNotFound
		}
		return action.Action{}, pkgerrors.Wrapf(err, "get action %s", id)
	}
	return a, nil
}

func (r *PostgresActionRepository) Update(ctx context.Context, id string, fn UpdateFunc) (action.Action, error) {
	var out action.Action
	err := database.WithTx(ctx, r.db, func(tx database.Tx) error {
		current, err := scanAction(tx.QueryRow(ctx, `SELECT `+actionColumns+` FROM actions WHERE id = $1 FOR UPDATE`, id))
		if err != nil {
			if isNoRows(err) {
				return ErrActionNotFound
			}
			return pkgerrors.Wrapf(err, "lock action %s", id)
		}

		next, err := fn(current)
		if err != nil {
			return err
		}
		next.ID = current.ID

		_, err = tx.Exec(ctx,
			`UPDATE actions SET status = $2, title = $3, expected_impact = $4, effort = $5,
				execution_method = $6, assignee = $7, due_date = $8::date, progress = $9, updated_at = now()
			 WHERE id = $1`,
			next.ID,
			string(next.Status),
			next.Title,
			next.ExpectedImpact,
			next.Effort,
			next.ExecutionMethod,
			next.Assignee,
			next.DueDate,
			next.Progress,
		)
		if err != nil {
			return pkgerrors.Wrapf(err, "update action %s", id)
		}
		out = next
		return nil
	})
	if err != nil {
		return action.Action{}, err
	}
	return out, nil
}

func (r *PostgresActionRepository) List(ctx context.Context) ([]action.Action, error) {
	rows, err := r.db.Query(ctx, `SELECT `+actionColumns+` FROM actions ORDER BY seq DESC`)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "list actions")
	}
	defer rows.Close()

	out := make([]action.Action, 0)
	for rows.Next() {
		a, err := scanAction(rows)
		if err != nil {
			return nil, pkgerrors.Wrap(err, "scan action")
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, pkgerrors.Wrap(err, "list actions")
	}
	return out, nil
}

func scanAction(row database.Row) (action.Action, error) {
	var (
		a                      action.Action
		targetType, actionType string
		status                 string
	)
	err := row.Scan(
		&a.ID,
		&targetType,
		&a.TargetObjectID,
		&actionType,
		&status,
		&a.Title,
		&a.ExpectedImpact,
		&a.Effort,
		&a.ExecutionMethod,
		&a.Assignee,
		&a.DueDate,
		&a.Progress,
	)
	if err != nil {
		return action.Action{}, err
	}
	a.TargetObjectType = action.TargetType(targetType)
	a.ActionType = action.Type(actionType)
	a.Status = action.Status(status)
	return a, nil
}
