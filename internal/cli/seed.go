package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spec-kit/placement-service/internal/app"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the demo accounts and job",
	Long: `Load the demo data: admin/admin123, techcorp/emp123 (employer "Tech Corp"),
alice/student123 (student) and one job posting. Does nothing when the admin
account already exists.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := background(cmd)

		services, err := app.New(ctx, cfg, logger)
		if err != nil {
			return err
		}
		defer services.Close()

		seeded, err := services.Seeder.Seed(ctx)
		if err != nil {
			return err
		}
		if seeded {
			fmt.Fprintln(cmd.OutOrStdout(), "demo data loaded")
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), "demo data already present")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
