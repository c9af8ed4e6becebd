package main

import (
	"github.com/spf13/cobra"

	"talent-align/internal/app"
)

type evaluateOutput struct {
	Organization string               `json:"organization"`
	Suggestions  []evaluateSuggestion `json:"suggestions"`
	Unresolved   []string             `json:"unresolved"`
}

type evaluateSuggestion struct {
	Rule       string `json:"rule"`
	Priority   string `json:"priority"`
	Title      string `json:"title"`
	TargetType string `json:"targetType"`
	TargetID   string `json:"targetId"`
	Rationale  string `json:"rationale"`
}

func newEvaluateCmd(g *globals) *cobra.Command {
	var orgID string

	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Run the recommendation rules for one organization and print the result",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := app.NewContainer(cmd.Context(), g.cfg, g.log)
			if err != nil {
				return err
			}
			defer c.Close()

			res, err := c.JobFit.Evaluate(cmd.Context(), orgID)
			if err != nil {
				return err
			}

			out := evaluateOutput{
				Organization: orgID,
				Suggestions:  make([]evaluateSuggestion, 0, len(res.Suggestions)),
				Unresolved:   res.Unresolved,
			}
			if out.Unresolved == nil {
				out.Unresolved = []string{}
			}
			for _, s := range res.Suggestions {
				out.Suggestions = append(out.Suggestions, evaluateSuggestion{
					Rule:       string(s.Rule),
					Priority:   string(s.Priority),
					Title:      s.Title,
					TargetType: string(s.TargetType),
					TargetID:   s.TargetID,
					Rationale:  s.Rationale,
				})
			}
			return writeJSON(cmd.OutOrStdout(), out)
		},
	}

	cmd.Flags().StringVar(&orgID, "org", "", "Organization id (defaults to the hierarchy root)")
	return cmd
}
