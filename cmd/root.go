package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/repertoire/internal/board"
	"github.com/abhisek/repertoire/internal/catalogue"
)

var rootCmd = &cobra.Command{
	Use:   "repertoire",
	Short: "Chess opening trainer",
	Long:  "Repertoire classifies chess lines against the opening catalogue and drills them with adaptive quizzes.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("catalogue", "", "Path to the opening catalogue JSON (overrides REPERTOIRE_CATALOGUE)")

	rootCmd.AddCommand(classifyCmd)
	rootCmd.AddCommand(quizCmd)
	rootCmd.AddCommand(catalogueCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveCataloguePath returns the catalogue path from the --catalogue
// flag, then the REPERTOIRE_CATALOGUE env var.
func resolveCataloguePath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("catalogue"); p != "" {
		return p, nil
	}
	if p := os.Getenv("REPERTOIRE_CATALOGUE"); p != "" {
		return p, nil
	}
	return "", fmt.Errorf("no catalogue: pass --catalogue or set REPERTOIRE_CATALOGUE")
}

// loadCatalogue builds the shared rules engine and loads the catalogue
// once for a command invocation.
func loadCatalogue(cmd *cobra.Command) (*catalogue.Catalogue, board.Model, error) {
	path, err := resolveCataloguePath(cmd)
	if err != nil {
		return nil, nil, err
	}
	rules := board.NewRules()
	cat, err := catalogue.Load(path, rules)
	if err != nil {
		return nil, nil, fmt.Errorf("load catalogue: %w", err)
	}
	return cat, rules, nil
}
