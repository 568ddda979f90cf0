// internal/commands/validate.go
package bolumrag

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ozkanacar/bolumrag/internal/store"
)

// validateCmd checks the configured chunk file against the corpus schema.
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the chunk file against the corpus schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := GetConfig().Paths.ChunkStore
		if err := store.ValidateChunkFile(path); err != nil {
			return err
		}
		chunkStore, err := store.LoadChunks(path)
		if err != nil {
			return err
		}
		ok := color.New(color.FgGreen).Sprint("OK")
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s: %d chunks\n", ok, path, chunkStore.Size())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
