package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/njprem/discover-zimbabwe/internal/domain"
)

// printJSON marshals v as indented JSON.
func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printLine(w io.Writer, line string) error {
	_, err := fmt.Fprintln(w, line)
	return err
}

func printDestinationTable(w io.Writer, destinations []domain.Destination) error {
	if len(destinations) == 0 {
		return printLine(w, "No destinations found.")
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tCATEGORY\tLOCATION\tRATING\tREVIEWS")
	for _, d := range destinations {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%d\n", d.ID, d.Name, d.Category, d.Location, d.Rating.StringFixed(1), d.ReviewCount)
	}
	return tw.Flush()
}

func printReviews(w io.Writer, dest *domain.Destination, reviews []domain.Review, summary *domain.ReviewSummary) error {
	fmt.Fprintf(w, "%s (%s)\n", dest.Name, dest.Location)
	if len(reviews) == 0 {
		return printLine(w, "  No reviews yet.")
	}
	fmt.Fprintf(w, "  Average: %s from %d reviews\n", summary.AverageRating.StringFixed(1), summary.TotalReviews)
	for _, r := range reviews {
		fmt.Fprintf(w, "  %s  %s  %s\n", r.Date.Format("2006-01-02"), stars(r.Rating), r.User)
		fmt.Fprintf(w, "    %s\n", r.Comment)
	}
	return nil
}

func stars(rating int) string {
	if rating < 0 {
		rating = 0
	}
	if rating > 5 {
		rating = 5
	}
	return strings.Repeat("★", rating) + strings.Repeat("☆", 5-rating)
}
