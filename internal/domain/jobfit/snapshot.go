package jobfit

// Snapshot is the job-fit analytics payload for one organization scope.
// Every top-level key is optional: a nil field means the key is absent,
// which matters when an organization override is laid over the base snapshot.
type Snapshot struct {
	EmployeeOptions       []Option                          `json:"employeeOptions,omitempty" yaml:"employeeOptions"`
	RoleOptions           []Option                          `json:"roleOptions,omitempty" yaml:"roleOptions"`
	Summary               *Summary                          `json:"summary,omitempty" yaml:"summary"`
	Distribution          *Distribution                     `json:"distribution,omitempty" yaml:"distribution"`
	TrendSeries           []TrendPoint                      `json:"trendSeries,omitempty" yaml:"trendSeries"`
	Matrix                []MatrixEntry                     `json:"matrix,omitempty" yaml:"matrix"`
	KeyFactors            []string                          `json:"keyFactors,omitempty" yaml:"keyFactors"`
	CapabilityGaps        []CapabilityGap                   `json:"capabilityGaps,omitempty" yaml:"capabilityGaps"`
	SingleMatch           *MatchDetail                      `json:"singleMatch,omitempty" yaml:"singleMatch"`
	SingleMatchByEmployee *EmployeeMatches                  `json:"singleMatchByEmployee,omitempty" yaml:"singleMatchByEmployee"`
	PositionDistribution  []PositionDistribution            `json:"positionDistribution,omitempty" yaml:"positionDistribution"`
	RoleDistributionByID  map[string][]PositionDistribution `json:"roleDistributionById,omitempty" yaml:"roleDistributionById"`
	RoleProfilesByID      map[string]RoleProfile            `json:"roleProfilesById,omitempty" yaml:"roleProfilesById"`
}

type Option struct {
	Label string `json:"label" yaml:"label"`
	Value string `json:"value" yaml:"value"`
}

type Summary struct {
	AvgMatch   float64 `json:"avgMatch" yaml:"avgMatch"`
	Level      string  `json:"level" yaml:"level"`
	Risk       string  `json:"risk" yaml:"risk"`
	KeyFinding string  `json:"keyFinding" yaml:"keyFinding"`
}

type Distribution struct {
	High         int `json:"high" yaml:"high"`
	Medium       int `json:"medium" yaml:"medium"`
	Low          int `json:"low" yaml:"low"`
	HardMismatch int `json:"hardMismatch" yaml:"hardMismatch"`
}

type TrendPoint struct {
	Period string  `json:"period" yaml:"period"`
	Score  float64 `json:"score" yaml:"score"`
}

type MatrixEntry struct {
	Employee string  `json:"employee" yaml:"employee"`
	Role     string  `json:"role" yaml:"role"`
	Match    float64 `json:"match" yaml:"match"`
	Level    string  `json:"level" yaml:"level"`
	Risk     string  `json:"risk" yaml:"risk"`
}

type CapabilityGap struct {
	Capability string  `json:"capability" yaml:"capability"`
	Gap        float64 `json:"gap" yaml:"gap"`
	Type       string  `json:"type" yaml:"type"`
	Target     float64 `json:"target" yaml:"target"`
	Current    float64 `json:"current" yaml:"current"`
}

type MatchDetail struct {
	Employee            string   `json:"employee" yaml:"employee"`
	Role                string   `json:"role" yaml:"role"`
	Match               float64  `json:"match" yaml:"match"`
	Level               string   `json:"level" yaml:"level"`
	Risk                string   `json:"risk" yaml:"risk"`
	HardMismatch        bool     `json:"hardMismatch" yaml:"hardMismatch"`
	MissingCapabilities []string `json:"missingCapabilities" yaml:"missingCapabilities"`
	SurplusCapabilities []string `json:"surplusCapabilities" yaml:"surplusCapabilities"`
	KeyFactors          []string `json:"keyFactors" yaml:"keyFactors"`
}

type PositionDistribution struct {
	Role   string `json:"role" yaml:"role"`
	High   int    `json:"high" yaml:"high"`
	Medium int    `json:"medium" yaml:"medium"`
	Low    int    `json:"low" yaml:"low"`
}

type RoleProfile struct {
	Model []CapabilityWeight `json:"model" yaml:"model"`
}

type CapabilityWeight struct {
	Capability string  `json:"capability" yaml:"capability"`
	Weight     float64 `json:"weight" yaml:"weight"`
	Target     float64 `json:"target" yaml:"target"`
	Current    float64 `json:"current" yaml:"current"`
}

// Overlay lays override over base key-for-key. A key present in override
// replaces the base value wholesale; nested values are never merged.
func Overlay(base, override Snapshot) Snapshot {
	out := base
	if override.EmployeeOptions != nil {
		out.EmployeeOptions = override.EmployeeOptions
	}
	if override.RoleOptions != nil {
		out.RoleOptions = override.RoleOptions
	}
	if override.Summary != nil {
		out.Summary = override.Summary
	}
	if override.Distribution != nil {
		out.Distribution = override.Distribution
	}
	if override.TrendSeries != nil {
		out.TrendSeries = override.TrendSeries
	}
	if override.Matrix != nil {
		out.Matrix = override.Matrix
	}
	if override.KeyFactors != nil {
		out.KeyFactors = override.KeyFactors
	}
	if override.CapabilityGaps != nil {
		out.CapabilityGaps = override.CapabilityGaps
	}
	if override.SingleMatch != nil {
		out.SingleMatch = override.SingleMatch
	}
	if override.SingleMatchByEmployee != nil {
		out.SingleMatchByEmployee = override.SingleMatchByEmployee
	}
	if override.PositionDistribution != nil {
		out.PositionDistribution = override.PositionDistribution
	}
	if override.RoleDistributionByID != nil {
		out.RoleDistributionByID = override.RoleDistributionByID
	}
	if override.RoleProfilesByID != nil {
		out.RoleProfilesByID = override.RoleProfilesByID
	}
	return out
}
