package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"talent-align/internal/domain/action"
	"talent-align/internal/domain/directory"
	"talent-align/internal/domain/jobfit"
	"talent-align/internal/domain/organization"
	"talent-align/internal/fixtures"
	"talent-align/internal/repository"
)

type fixtureWorld struct {
	hierarchy *organization.Hierarchy
	directory *directory.Directory
	catalog   fixtures.Catalog
	jobFit    fixtures.JobFit
}

func loadWorld(t *testing.T) fixtureWorld {
	t.Helper()
	c, err := fixtures.LoadCatalog()
	require.NoError(t, err)
	j, err := fixtures.LoadJobFit()
	require.NoError(t, err)
	h, err := organization.NewHierarchy(c.Organizations)
	require.NoError(t, err)
	return fixtureWorld{hierarchy: h, directory: directory.New(c.Positions, c.Employees), catalog: c, jobFit: j}
}

// memoryCache stores JSON like Redis does, so cache hits exercise decoding.
type memoryCache struct {
	mu    sync.Mutex
	items map[string][]byte
	gets  int
	sets  int
}

func newMemoryCache() *memoryCache {
	return &memoryCache{items: map[string][]byte{}}
}

func (c *memoryCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gets++
	b, ok := c.items[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, out)
}

func (c *memoryCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.sets++
	c.items[key] = b
	return nil
}

func (c *memoryCache) DeleteByPattern(_ context.Context, pattern string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	prefix := strings.TrimSuffix(pattern, "*")
	for k := range c.items {
		if strings.HasPrefix(k, prefix) {
			delete(c.items, k)
		}
	}
	return nil
}

type recordingNotifier struct {
	mu      sync.Mutex
	created []action.Action
	updated []action.Action
}

func (n *recordingNotifier) ActionCreated(a action.Action) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.created = append(n.created, a)
}

func (n *recordingNotifier) ActionUpdated(a action.Action) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.updated = append(n.updated, a)
}

type failingActionRepo struct{}

var errStoreDown = errors.New("store down")

func (failingActionRepo) Create(context.Context, action.Action) error { return errStoreDown }
func (failingActionRepo) Get(context.Context, string) (action.Action, error) {
	return action.Action{}, errStoreDown
}
func (failingActionRepo) Update(context.Context, string, repository.UpdateFunc) (action.Action, error) {
	return action.Action{}, errStoreDown
}
func (failingActionRepo) List(context.Context) ([]action.Action, error) { return nil, errStoreDown }

func fixturesWithoutData() fixtures.JobFit {
	return fixtures.JobFit{ByOrganization: map[string]jobfit.Snapshot{}}
}
