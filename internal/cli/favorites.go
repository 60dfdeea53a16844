package cli

import (
	"github.com/spf13/cobra"

	"github.com/njprem/discover-zimbabwe/internal/domain"
)

func newFavoritesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "favorites",
		Short: "Show favorited destinations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFormat(); err != nil {
				return err
			}
			a, closeApp, err := openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer closeApp()

			ids, err := a.Favorites.List(cmd.Context())
			if err != nil {
				return err
			}
			destinations := make([]domain.Destination, 0, len(ids))
			for _, id := range ids {
				if dest, err := a.Catalog.Get(id); err == nil {
					destinations = append(destinations, *dest)
				}
			}

			if isJSON() {
				return printJSON(cmd.OutOrStdout(), map[string]any{
					"favorites":    ids,
					"destinations": destinations,
				})
			}
			if len(destinations) == 0 {
				return printLine(cmd.OutOrStdout(), "No favorites yet.")
			}
			return printDestinationTable(cmd.OutOrStdout(), destinations)
		},
	}
}
