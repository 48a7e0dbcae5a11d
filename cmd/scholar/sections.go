package main

import "github.com/spf13/cobra"

var (
	sectionsKey     bool
	sectionsSummary bool
)

func init() {
	sectionsCmd.Flags().BoolVar(&sectionsKey, "key", false, "Return only the key sections, truncated for agent use")
	sectionsCmd.Flags().BoolVar(&sectionsSummary, "summary", false, "Return a structural summary instead of full content")
	rootCmd.AddCommand(sectionsCmd)
}

var sectionsCmd = &cobra.Command{
	Use:   "sections <file>",
	Short: "Detect named academic sections",
	Long: `Detect named academic sections (abstract, introduction, methods,
results, discussion, conclusion, references) by their headers.

Example:
  scholar sections paper.pdf
  scholar sections --summary paper.pdf`,
	Args: cobra.ExactArgs(1),
	RunE: runSections,
}

func runSections(cmd *cobra.Command, args []string) error {
	a, err := newAnalyzer()
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	switch {
	case sectionsSummary:
		sum, err := a.SectionSummary(ctx, args[0])
		if err != nil {
			return err
		}
		return outputJSON(sum)
	case sectionsKey:
		key, err := a.ExtractKeySections(ctx, args[0])
		if err != nil {
			return err
		}
		return outputJSON(map[string]any{"key_sections": key})
	default:
		res, err := a.DetectSections(ctx, args[0])
		if err != nil {
			return err
		}
		return outputJSON(res)
	}
}
