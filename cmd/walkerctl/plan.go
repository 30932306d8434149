package main

import (
	"encoding/json"
	"fmt"

	"waltgoat/walker-app/internal/catalog"
	"waltgoat/walker-app/internal/domain"
	"waltgoat/walker-app/internal/planner"

	"github.com/spf13/cobra"
)

var (
	previewLevel  string
	previewAge    int
	previewDays   []string
	previewEnergy int
	previewFocus  []string
	previewPain   []string
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Work with training plans",
}

var planPreviewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Print the plan the generator builds for a profile, without storing it",
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := planner.Options{Energy: previewEnergy}
		for _, f := range previewFocus {
			cat, ok := domain.ParseCategory(f)
			if !ok {
				return fmt.Errorf("unknown category %q", f)
			}
			opts.FocusCategories = append(opts.FocusCategories, cat)
		}
		for _, p := range previewPain {
			opts.JointPain = append(opts.JointPain, domain.JointPain(p))
		}

		profile := domain.UserProfile{
			Level:         domain.ParseFitnessLevel(previewLevel),
			Age:           previewAge,
			AvailableDays: previewDays,
		}
		plan, err := planner.New(catalog.Default(), nil).Generate(profile, opts)
		if err != nil {
			return err
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(plan)
	},
}

func init() {
	f := planPreviewCmd.Flags()
	f.StringVar(&previewLevel, "level", string(domain.LevelBeginner), "Principiante, Intermedio or Avanzato")
	f.IntVar(&previewAge, "age", 0, "Age used in the plan name")
	f.StringSliceVar(&previewDays, "days", nil, "Ordered day labels")
	f.IntVar(&previewEnergy, "energy", 0, "Energy 1..10")
	f.StringSliceVar(&previewFocus, "focus", nil, "Focus categories")
	f.StringSliceVar(&previewPain, "pain", nil, "Joint pain tags: ginocchia, spalle, schiena")
	planCmd.AddCommand(planPreviewCmd)
	rootCmd.AddCommand(planCmd)
}
