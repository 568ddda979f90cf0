// internal/commands/chat.go
package bolumrag

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/ozkanacar/bolumrag/internal/tui"
)

// chatCmd starts the interactive question loop. Each submitted question is
// an independent pipeline run; nothing carries over between questions.
var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Ask questions interactively",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		orchestrator, sink, err := buildOrchestrator(cfg)
		if err != nil {
			return err
		}
		defer sink.Close()

		summary := fmt.Sprintf("corpus: %s", cfg.Paths.ChunkStore)
		program := tea.NewProgram(tui.New(orchestrator, summary), tea.WithAltScreen())
		_, err = program.Run()
		return err
	},
}

func init() {
	rootCmd.AddCommand(chatCmd)
}
