package recommendation

import (
	"fmt"
	"strconv"

	"talent-align/internal/domain/action"
	"talent-align/internal/domain/jobfit"
)

type Priority string

const (
	PriorityP0 Priority = "P0"
	PriorityP1 Priority = "P1"
)

// Rule identifies the rule that produced a suggestion.
type Rule string

const (
	RuleHardMismatch   Rule = "hard_mismatch"
	RuleLowMatchVolume Rule = "low_match_volume"
	RuleTrendDrop      Rule = "trend_regression"
	RuleWeakestMatch   Rule = "weakest_individual"
	RuleTopGap         Rule = "top_capability_gap"
)

const (
	MaxSuggestions     = 5
	LowMatchThreshold  = 8
	IndividualP0Cutoff = 65.0
)

type Suggestion struct {
	Title      string            `json:"title"`
	Priority   Priority          `json:"priority"`
	Effect     string            `json:"effect"`
	Plan       string            `json:"plan"`
	EffortTime string            `json:"effort_time"`
	EffortCost string            `json:"effort_cost"`
	ActionType action.Type       `json:"actionType"`
	TargetType action.TargetType `json:"targetType"`
	TargetID   string            `json:"targetId"`
	Rationale  string            `json:"rationale"`
	Rule       Rule              `json:"-"`
}

type Result struct {
	Suggestions []Suggestion
	// Unresolved lists matrix employee names that had no id in singleMatchByEmployee
	// and were used verbatim as a target id.
	Unresolved []string
}

// Evaluate runs the rule cascade over snap for orgID. Rules run in a fixed
// order, each adds at most one suggestion, and that order is the ranking.
// Absent snapshot keys simply make the corresponding rule not fire.
func Evaluate(orgID string, snap jobfit.Snapshot) Result {
	res := Result{Suggestions: make([]Suggestion, 0, MaxSuggestions)}

	dist := jobfit.Distribution{}
	if snap.Distribution != nil {
		dist = *snap.Distribution
	}

	if dist.HardMismatch > 0 {
		res.Suggestions = append(res.Suggestions, Suggestion{
			Title:      "清理硬性不匹配岗位",
			Priority:   PriorityP0,
			Effect:     "硬性不匹配岗位清零",
			Plan:       "核查硬性不匹配岗位画像并调整任职门槛，执行调岗与补岗。",
			EffortTime: "2周",
			ActionType: action.TypeOrgOptimization,
			TargetType: action.TargetOrganization,
			TargetID:   orgID,
			Rationale:  fmt.Sprintf("硬性不匹配岗位 %d 个", dist.HardMismatch),
			Rule:       RuleHardMismatch,
		})
	}

	if dist.Low >= LowMatchThreshold {
		res.Suggestions = append(res.Suggestions, Suggestion{
			Title:      "启动低匹配岗位专项提升",
			Priority:   PriorityP0,
			Effect:     "低匹配岗位下降 30%",
			Plan:       "按岗位分组制定能力补齐方案，并设定月度复盘机制。",
			EffortTime: "3周",
			EffortCost: "¥5万",
			ActionType: action.TypeOrgOptimization,
			TargetType: action.TargetOrganization,
			TargetID:   orgID,
			Rationale:  fmt.Sprintf("低匹配岗位数量 %d 个", dist.Low),
			Rule:       RuleLowMatchVolume,
		})
	}

	if n := len(snap.TrendSeries); n >= 2 {
		prev, last := snap.TrendSeries[n-2], snap.TrendSeries[n-1]
		if last.Score < prev.Score {
			res.Suggestions = append(res.Suggestions, Suggestion{
				Title:      "匹配度回升专项复盘",
				Priority:   PriorityP1,
				Effect:     "匹配度回升 2-3 分",
				Plan:       "复盘近两期能力差距与业务指标变化，调整岗位权重配置。",
				EffortTime: "2周",
				ActionType: action.TypeOrgOptimization,
				TargetType: action.TargetOrganization,
				TargetID:   orgID,
				Rationale: fmt.Sprintf("匹配度环比下降：%s %s → %s %s",
					prev.Period, formatScore(prev.Score), last.Period, formatScore(last.Score)),
				Rule: RuleTrendDrop,
			})
		}
	}

	if weakest, ok := stableMin(snap.Matrix); ok {
		targetID, resolved := snap.SingleMatchByEmployee.IDByEmployeeName(weakest.Employee)
		if !resolved {
			targetID = weakest.Employee
			res.Unresolved = append(res.Unresolved, weakest.Employee)
		}
		priority := PriorityP1
		if weakest.Match < IndividualP0Cutoff {
			priority = PriorityP0
		}
		res.Suggestions = append(res.Suggestions, Suggestion{
			Title:      "个人匹配提升计划：" + weakest.Employee,
			Priority:   priority,
			Effect:     "匹配度提升 4-6 分",
			Plan:       "基于能力差距制定提升任务，安排导师辅导与岗位实践。",
			EffortTime: "2周",
			ActionType: action.TypeJobTransfer,
			TargetType: action.TargetEmployee,
			TargetID:   targetID,
			Rationale:  fmt.Sprintf("个人匹配度 %s，低于组织目标", formatScore(weakest.Match)),
			Rule:       RuleWeakestMatch,
		})
	}

	if len(res.Suggestions) < MaxSuggestions && len(snap.CapabilityGaps) > 0 {
		top := snap.CapabilityGaps[0].Capability
		res.Suggestions = append(res.Suggestions, Suggestion{
			Title:      "关键能力提升：" + top,
			Priority:   PriorityP1,
			Effect:     "关键能力达标率提升",
			Plan:       "围绕关键能力建立专项训练与认证机制。",
			EffortTime: "2周",
			ActionType: action.TypeOrgOptimization,
			TargetType: action.TargetOrganization,
			TargetID:   orgID,
			Rationale:  "关键差距能力 " + top,
			Rule:       RuleTopGap,
		})
	}

	if len(res.Suggestions) > MaxSuggestions {
		res.Suggestions = res.Suggestions[:MaxSuggestions]
	}
	return res
}

// stableMin returns the first entry holding the lowest match score.
func stableMin(entries []jobfit.MatrixEntry) (jobfit.MatrixEntry, bool) {
	if len(entries) == 0 {
		return jobfit.MatrixEntry{}, false
	}
	minEntry := entries[0]
	for _, e := range entries[1:] {
		if e.Match < minEntry.Match {
			minEntry = e
		}
	}
	return minEntry, true
}

func formatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
