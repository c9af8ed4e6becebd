package app

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"talent-align/internal/config"
	"talent-align/internal/database"
	dbpostgres "talent-align/internal/database/postgres"
	"talent-align/internal/domain/directory"
	"talent-align/internal/domain/organization"
	"talent-align/internal/fixtures"
	"talent-align/internal/infrastructure/cache"
	"talent-align/internal/logger"
	"talent-align/internal/repository"
	"talent-align/internal/usecase"
	"talent-align/internal/ws"
)

// Container owns every long-lived dependency of the process.
type Container struct {
	Config config.Config
	Log    *zap.Logger

	DB    database.DB
	Cache *cache.Redis
	Hub   *ws.Hub

	Hierarchy *organization.Hierarchy
	Directory *directory.Directory

	Organizations *usecase.Organizations
	JobFit        *usecase.JobFit
	Actions       *usecase.Actions
}

type stores struct {
	catalog   repository.CatalogRepository
	snapshots repository.SnapshotRepository
	actions   repository.ActionRepository
}

func NewContainer(ctx context.Context, cfg config.Config, log *zap.Logger) (*Container, error) {
	log = logger.OrNop(log)
	c := &Container{Config: cfg, Log: log}

	s, err := c.openStores(ctx)
	if err != nil {
		return nil, err
	}

	if err := c.loadReferenceData(ctx, s.catalog); err != nil {
		_ = c.Close()
		return nil, err
	}

	c.Cache = cache.NewRedis(cfg.Redis, log)
	var payloadCache usecase.PayloadCache
	if c.Cache.Enabled() {
		payloadCache = c.Cache
	}

	c.Hub = ws.NewHub(log)

	c.Organizations = usecase.NewOrganizationUsecase(c.Hierarchy)
	c.JobFit = usecase.NewJobFitUsecase(c.Hierarchy, s.snapshots, payloadCache, cfg.Redis.TTL(), log)
	c.Actions = usecase.NewActionUsecase(s.actions, c.Hierarchy, c.Directory, ws.NewNotifier(c.Hub), log)

	log.Info("container ready",
		zap.String("store", cfg.Store.Backend),
		zap.Int("organizations", len(c.Hierarchy.All())),
		zap.Int("positions", c.Directory.Positions()),
		zap.Int("employees", c.Directory.Employees()),
		zap.Bool("cache", c.Cache.Enabled()),
	)
	return c, nil
}

func (c *Container) openStores(ctx context.Context) (stores, error) {
	switch c.Config.Store.Backend {
	case config.StorePostgres:
		connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()

		db, err := dbpostgres.Connect(connectCtx, c.Config.Database)
		if err != nil {
			return stores{}, fmt.Errorf("connect postgres: %w", err)
		}
		c.DB = db
		return stores{
			catalog:   repository.NewPostgresCatalogRepository(db),
			snapshots: repository.NewPostgresSnapshotRepository(db),
			actions:   repository.NewPostgresActionRepository(db),
		}, nil

	default:
		catalog, err := fixtures.LoadCatalog()
		if err != nil {
			return stores{}, err
		}
		jobFit, err := fixtures.LoadJobFit()
		if err != nil {
			return stores{}, err
		}
		return stores{
			catalog:   repository.NewFixtureCatalogRepository(catalog),
			snapshots: repository.NewFixtureSnapshotRepository(jobFit),
			actions:   repository.NewMemoryActionRepository(catalog.SeededActions(time.Now())),
		}, nil
	}
}

// loadReferenceData builds the immutable hierarchy and directory. A broken
// hierarchy is fatal: scoping and evaluation both depend on it.
func (c *Container) loadReferenceData(ctx context.Context, catalog repository.CatalogRepository) error {
	orgs, err := catalog.Organizations(ctx)
	if err != nil {
		return fmt.Errorf("load organizations: %w", err)
	}
	h, err := organization.NewHierarchy(orgs)
	if err != nil {
		return fmt.Errorf("build organization hierarchy: %w", err)
	}

	positions, err := catalog.Positions(ctx)
	if err != nil {
		return fmt.Errorf("load positions: %w", err)
	}
	employees, err := catalog.Employees(ctx)
	if err != nil {
		return fmt.Errorf("load employees: %w", err)
	}

	c.Hierarchy = h
	c.Directory = directory.New(positions, employees)
	return nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	var firstErr error
	if c.Cache != nil {
		if err := c.Cache.Close(); err != nil {
			firstErr = err
		}
	}
	if c.DB != nil {
		if err := c.DB.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
