package directory

type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

type Position struct {
	ID             string   `json:"id" yaml:"id"`
	OrganizationID string   `json:"organization_id" yaml:"organization_id"`
	RequiredSkills []string `json:"required_skills" yaml:"required_skills"`
}

type Employee struct {
	ID             string    `json:"id" yaml:"id"`
	OrganizationID string    `json:"organization_id" yaml:"organization_id"`
	PositionID     string    `json:"position_id" yaml:"position_id"`
	RiskLevel      RiskLevel `json:"risk_level" yaml:"risk_level"`
}
