package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newReviewsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reviews <destination-id>",
		Short: "Show submitted reviews for a destination",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFormat(); err != nil {
				return err
			}
			id, err := strconv.Atoi(args[0])
			if err != nil || id <= 0 {
				return fmt.Errorf("invalid destination id %q", args[0])
			}

			a, closeApp, err := openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer closeApp()

			dest, err := a.Catalog.Get(id)
			if err != nil {
				return fmt.Errorf("destination %d: %w", id, err)
			}
			reviews, err := a.Reviews.List(cmd.Context(), id)
			if err != nil {
				return err
			}
			summary, err := a.Reviews.Summary(cmd.Context(), id)
			if err != nil {
				return err
			}

			if isJSON() {
				return printJSON(cmd.OutOrStdout(), map[string]any{
					"destination": dest,
					"reviews":     reviews,
					"summary":     summary,
				})
			}
			return printReviews(cmd.OutOrStdout(), dest, reviews, summary)
		},
	}
}
