package main

import (
	"context"
	"encoding/json"
	"fmt"

	"waltgoat/walker-app/internal/catalog"
	"waltgoat/walker-app/internal/domain"
	"waltgoat/walker-app/internal/repository/mongo"

	"github.com/spf13/cobra"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
)

var (
	dumpCategory string
	dumpJSON     bool
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect the built-in exercise catalog",
}

var catalogDumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print the built-in exercises",
	RunE: func(cmd *cobra.Command, args []string) error {
		c := catalog.Default()
		exercises := c.All()
		if dumpCategory != "" {
			cat, ok := domain.ParseCategory(dumpCategory)
			if !ok {
				return fmt.Errorf("unknown category %q", dumpCategory)
			}
			exercises = c.ByCategory(cat)
		}

		out := cmd.OutOrStdout()
		if dumpJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(exercises)
		}
		fmt.Fprintln(out, "ID\tCATEGORY\tSETS\tREPS\tKG\tNAME")
		for _, ex := range exercises {
			fmt.Fprintf(out, "%s\t%s\t%d\t%d\t%.1f\t%s\n",
				ex.ID, ex.Category, ex.DefaultSets, ex.DefaultReps, ex.DefaultWeightKg, ex.Name)
		}
		return nil
	},
}

var seedCatalogCmd = &cobra.Command{
	Use:   "seed-catalog",
	Short: "Write the built-in exercises to an empty exercises collection",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(ctx context.Context, db *mongodriver.Database) error {
			n, err := mongo.NewMongoExerciseRepository(db).SeedIfEmpty(ctx, catalog.Builtin())
			if err != nil {
				return err
			}
			if n == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Exercises collection already populated, nothing written")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d exercises\n", n)
			return nil
		})
	},
}

var ensureIndexesCmd = &cobra.Command{
	Use:   "ensure-indexes",
	Short: "Create the database indexes",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(ctx context.Context, db *mongodriver.Database) error {
			mongo.EnsureIndexes(ctx, db)
			fmt.Fprintln(cmd.OutOrStdout(), "Indexes ensured")
			return nil
		})
	},
}

func init() {
	catalogDumpCmd.Flags().StringVar(&dumpCategory, "category", "", "Only exercises of this category")
	catalogDumpCmd.Flags().BoolVar(&dumpJSON, "json", false, "Print JSON instead of a table")
	catalogCmd.AddCommand(catalogDumpCmd)
	rootCmd.AddCommand(catalogCmd, seedCatalogCmd, ensureIndexesCmd)
}
