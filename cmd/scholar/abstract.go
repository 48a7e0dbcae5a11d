package main

import "github.com/spf13/cobra"

func init() {
	rootCmd.AddCommand(abstractCmd)
}

var abstractCmd = &cobra.Command{
	Use:   "abstract <file>",
	Short: "Extract the abstract",
	Long: `Extract the abstract, preferring an explicit Abstract header and
falling back to a heuristic scan of the opening paragraphs.`,
	Args: cobra.ExactArgs(1),
	RunE: runAbstract,
}

func runAbstract(cmd *cobra.Command, args []string) error {
	a, err := newAnalyzer()
	if err != nil {
		return err
	}
	abs, err := a.ExtractAbstract(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	return outputJSON(abs)
}
