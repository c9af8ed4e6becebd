package organization

type Level string

const (
	LevelGroup      Level = "group"
	LevelBU         Level = "bu"
	LevelDepartment Level = "department"
)

func (l Level) Known() bool {
	switch l {
	case LevelGroup, LevelBU, LevelDepartment:
		return true
	default:
		return false
	}
}

type Metrics struct {
	ROI         float64 `json:"roi" yaml:"roi"`
	HealthScore float64 `json:"health_score" yaml:"health_score"`
	JobFit      float64 `json:"job_fit" yaml:"job_fit"`
}

type Organization struct {
	ID       string  `json:"id" yaml:"id"`
	Name     string  `json:"name" yaml:"name"`
	ParentID *string `json:"parent_id" yaml:"parent_id"`
	Level    Level   `json:"level" yaml:"level"`
	Metrics  Metrics `json:"metrics" yaml:"metrics"`
}

func (o Organization) IsRoot() bool {
	return o.ParentID == nil || *o.ParentID == ""
}
