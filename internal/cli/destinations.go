package cli

import (
	"github.com/spf13/cobra"

	"github.com/njprem/discover-zimbabwe/internal/service"
)

func newDestinationsCmd() *cobra.Command {
	var category, search string

	cmd := &cobra.Command{
		Use:     "destinations",
		Aliases: []string{"ls"},
		Short:   "List catalog destinations",
		Long:    "List destinations filtered by category and a case-insensitive search over name, location and description.",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFormat(); err != nil {
				return err
			}
			criteria, err := service.ParseCriteria(category, search)
			if err != nil {
				return err
			}

			a, closeApp, err := openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer closeApp()

			destinations := a.Catalog.List(criteria)
			if isJSON() {
				return printJSON(cmd.OutOrStdout(), destinations)
			}
			return printDestinationTable(cmd.OutOrStdout(), destinations)
		},
	}

	cmd.Flags().StringVar(&category, "category", "All", "category (All|Nature|Wildlife|Historical|Water)")
	cmd.Flags().StringVar(&search, "search", "", "search text")

	return cmd
}
