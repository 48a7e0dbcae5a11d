package main

import "github.com/spf13/cobra"

func init() {
	rootCmd.AddCommand(metadataCmd)
}

var metadataCmd = &cobra.Command{
	Use:   "metadata <file>",
	Short: "Show document metadata",
	Args:  cobra.ExactArgs(1),
	RunE:  runMetadata,
}

func runMetadata(cmd *cobra.Command, args []string) error {
	a, err := newAnalyzer()
	if err != nil {
		return err
	}
	meta, err := a.Metadata(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	return outputJSON(meta)
}
