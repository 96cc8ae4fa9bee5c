package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/datavex/gateway/internal/observability"
	"github.com/datavex/gateway/internal/scoring"
)

var (
	scoreBudget     string
	scoreLocation   string
	scoreExperience float64
	scoreEmployees  float64
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a lead from intake answers",
	Long:  "Compute the deterministic 0-100 lead score and explainability tags from intake answers, without any provider call.",
	RunE:  runScore,
}

func init() {
	scoreCmd.Flags().StringVar(&scoreBudget, "budget", "", "Budget as free text (e.g. \"$15,000\", \"25 lakh\")")
	scoreCmd.Flags().StringVar(&scoreLocation, "location", "", "Lead location as free text")
	scoreCmd.Flags().Float64Var(&scoreExperience, "experience", 0, "Years of experience")
	scoreCmd.Flags().Float64Var(&scoreEmployees, "employees", 0, "Employee count")
	rootCmd.AddCommand(scoreCmd)
}

func runScore(_ *cobra.Command, _ []string) error {
	in := scoring.Input{
		Budget:          scoreBudget,
		Location:        scoreLocation,
		ExperienceYears: scoreExperience,
		EmployeeCount:   scoreEmployees,
	}
	result := scoring.NewScorer(scoring.Config{}).Score(in)

	observability.NewPrinter(os.Stdout).PrintScoreResult(in, result)
	return nil
}
