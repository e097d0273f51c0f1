package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/repertoire/internal/catalogue"
)

var catalogueCmd = &cobra.Command{
	Use:   "catalogue",
	Short: "Inspect the loaded opening catalogue",
	RunE:  runCatalogue,
}

func init() {
	catalogueCmd.Flags().String("category", "", "Filter by ECO category letter (A-E)")
	catalogueCmd.Flags().String("search", "", "Substring match on name/family/variation")
	catalogueCmd.Flags().Int("min-popularity", 0, "Minimum popularity")
	catalogueCmd.Flags().String("eco", "", "Look up a single entry by ECO code")
}

func runCatalogue(cmd *cobra.Command, args []string) error {
	cat, _, err := loadCatalogue(cmd)
	if err != nil {
		return err
	}

	if code, _ := cmd.Flags().GetString("eco"); code != "" {
		e, ok := cat.ByECO(code)
		if !ok {
			fmt.Printf("%s: not found\n", code)
			return nil
		}
		printEntry(e)
		return nil
	}

	entries := cat.All()
	if letter, _ := cmd.Flags().GetString("category"); letter != "" {
		entries = cat.Category(letter)
	}
	if q, _ := cmd.Flags().GetString("search"); q != "" {
		entries = intersect(entries, cat.Search(q))
	}
	if n, _ := cmd.Flags().GetInt("min-popularity"); n > 0 {
		entries = intersect(entries, cat.MinPopularity(n))
	}

	for _, e := range entries {
		fmt.Printf("%s  %-50s %s\n", e.ECOCode, e.Name, e.MoveText)
	}
	fmt.Printf("%d entries\n", len(entries))
	return nil
}

func printEntry(e *catalogue.Entry) {
	fmt.Printf("%s  %s\n", e.ECOCode, e.Name)
	fmt.Printf("  family:       %s\n", e.Family)
	if e.Variation != "" {
		fmt.Printf("  variation:    %s\n", e.Variation)
	}
	if e.Subvariation != "" {
		fmt.Printf("  subvariation: %s\n", e.Subvariation)
	}
	fmt.Printf("  line:         %s\n", e.MoveText)
	fmt.Printf("  position:     %s\n", e.CanonicalPosition)
	fmt.Printf("  popularity:   %d (+%d =%d -%d)\n", e.Popularity, e.WhiteWins, e.Draws, e.BlackWins)
}

// intersect keeps the entries of a that also appear in b, preserving
// a's order.
func intersect(a, b []*catalogue.Entry) []*catalogue.Entry {
	in := make(map[string]bool, len(b))
	for _, e := range b {
		in[e.ECOCode] = true
	}
	var out []*catalogue.Entry
	for _, e := range a {
		if in[e.ECOCode] {
			out = append(out, e)
		}
	}
	return out
}
