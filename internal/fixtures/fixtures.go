package fixtures

import (
	"embed"
	"fmt"
	"time"

	"talent-align/internal/domain/action"
	"talent-align/internal/domain/directory"
	"talent-align/internal/domain/jobfit"
	"talent-align/internal/domain/organization"

	"gopkg.in/yaml.v3"
)

//go:embed data/*.yaml
var files embed.FS

type Catalog struct {
	Organizations []organization.Organization `yaml:"organizations"`
	Positions     []directory.Position        `yaml:"positions"`
	Employees     []directory.Employee        `yaml:"employees"`
	Actions       []SeedAction                `yaml:"actions"`
}

// SeedAction is a pre-seeded action whose due date is relative to load time.
type SeedAction struct {
	ID               string  `yaml:"id"`
	TargetObjectType string  `yaml:"target_object_type"`
	TargetObjectID   string  `yaml:"target_object_id"`
	ActionType       string  `yaml:"action_type"`
	Status           string  `yaml:"status"`
	Title            string  `yaml:"title"`
	ExpectedImpact   string  `yaml:"expected_impact"`
	Effort           *string `yaml:"effort"`
	ExecutionMethod  *string `yaml:"execution_method"`
	Assignee         string  `yaml:"assignee"`
	DueInDays        int     `yaml:"due_in_days"`
	Progress         int     `yaml:"progress"`
}

func (s SeedAction) ToAction(now time.Time) action.Action {
	return action.Action{
		ID:               s.ID,
		TargetObjectType: action.TargetType(s.TargetObjectType),
		TargetObjectID:   s.TargetObjectID,
		ActionType:       action.Type(s.ActionType),
		Status:           action.Status(s.Status),
		Title:            s.Title,
		ExpectedImpact:   s.ExpectedImpact,
		Effort:           s.Effort,
		ExecutionMethod:  s.ExecutionMethod,
		Assignee:         s.Assignee,
		DueDate:          now.AddDate(0, 0, s.DueInDays).Format(action.DateLayout),
		Progress:         s.Progress,
	}
}

// SeededActions converts the seeded actions, keeping most-recent-first order.
func (c Catalog) SeededActions(now time.Time) []action.Action {
	out := make([]action.Action, 0, len(c.Actions))
	for _, s := range c.Actions {
		out = append(out, s.ToAction(now))
	}
	return out
}

type JobFit struct {
	Base           jobfit.Snapshot            `yaml:"base"`
	ByOrganization map[string]jobfit.Snapshot `yaml:"by_organization"`
}

func LoadCatalog() (Catalog, error) {
	var c Catalog
	if err := decode("data/catalog.yaml", &c); err != nil {
		return Catalog{}, err
	}
	return c, nil
}

func LoadJobFit() (JobFit, error) {
	var j JobFit
	if err := decode("data/jobfit.yaml", &j); err != nil {
		return JobFit{}, err
	}
	if j.ByOrganization == nil {
		j.ByOrganization = map[string]jobfit.Snapshot{}
	}
	return j, nil
}

func decode(name string, out any) error {
	b, err := files.ReadFile(name)
	if err != nil {
		return fmt.Errorf("read fixture %s: %w", name, err)
	}
	if err := yaml.Unmarshal(b, out); err != nil {
		return fmt.Errorf("decode fixture %s: %w", name, err)
	}
	return nil
}
