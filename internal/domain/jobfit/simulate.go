package jobfit

import (
	"fmt"
	"unicode/utf8"
)

type Simulation struct {
	Match       int    `json:"match"`
	Performance int    `json:"performance"`
	Risk        int    `json:"risk"`
	Reason      string `json:"reason"`
}

// Simulate produces deterministic what-if figures for placing employee into role.
// The figures depend only on the character lengths of the two identifiers.
func Simulate(employee, role string) Simulation {
	base := 72 + utf8.RuneCountInString(employee)%6
	match := base + utf8.RuneCountInString(role)%8
	return Simulation{
		Match:       match,
		Performance: min(15, match-70),
		Risk:        max(5, 30-(match-70)),
		Reason:      fmt.Sprintf("%s 与 %s 的技能匹配度更高。", employee, role),
	}
}
