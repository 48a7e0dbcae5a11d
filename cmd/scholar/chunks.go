package main

import (
	"github.com/spf13/cobra"

	"github.com/dgallion1/scholardoc/internal/chunker"
)

var chunkSize int

func init() {
	chunksCmd.Flags().IntVar(&chunkSize, "size", chunker.DefaultChunkSize, "Soft character budget per chunk")
	rootCmd.AddCommand(chunksCmd)
}

var chunksCmd = &cobra.Command{
	Use:   "chunks <file>",
	Short: "Split processed text into bounded chunks",
	Long: `Split the processed document into sentence-aligned chunks under a
character budget, each tagged with its page range.`,
	Args: cobra.ExactArgs(1),
	RunE: runChunks,
}

func runChunks(cmd *cobra.Command, args []string) error {
	a, err := newAnalyzer()
	if err != nil {
		return err
	}
	chunks, err := a.ChunkContent(cmd.Context(), args[0], chunkSize)
	if err != nil {
		return err
	}
	return outputJSON(map[string]any{"chunks": chunks, "total_chunks": len(chunks)})
}
