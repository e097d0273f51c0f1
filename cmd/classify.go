package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/repertoire/internal/classify"
)

var classifyCmd = &cobra.Command{
	Use:   "classify <moves...>",
	Short: "Classify a move sequence against the catalogue",
	Long: `Classify a line of chess moves and print the deepest matching opening.

Moves can be given as separate arguments or one quoted move-text string;
move numbers are stripped either way:

  repertoire classify e4 c5 Nf3 d6
  repertoire classify "1. e4 c5 2. Nf3 d6"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runClassify,
}

func runClassify(cmd *cobra.Command, args []string) error {
	cat, rules, err := loadCatalogue(cmd)
	if err != nil {
		return err
	}

	classifier := classify.New(cat, rules)
	res := classifier.ClassifyText(strings.Join(args, " "))

	if !res.Matched() {
		fmt.Printf("no catalogue match (%d plies applied)\n", res.PliesApplied)
		return nil
	}

	e := res.Entry
	fmt.Printf("%s  %s\n", e.ECOCode, e.Name)
	if e.Variation != "" {
		fmt.Printf("  family: %s, variation: %s", e.Family, e.Variation)
		if e.Subvariation != "" {
			fmt.Printf(", subvariation: %s", e.Subvariation)
		}
		fmt.Println()
	}
	fmt.Printf("  line: %s\n", e.MoveText)
	fmt.Printf("  plies applied: %d\n", res.PliesApplied)
	return nil
}
