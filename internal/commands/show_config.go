// internal/commands/show_config.go
package bolumrag

import (
	"github.com/k0kubun/pp"
	"github.com/spf13/cobra"

	"github.com/ozkanacar/bolumrag/internal/appconfig"
)

// configCmd groups configuration inspection commands.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect the resolved configuration",
}

// configShowCmd prints the resolved configuration. With --debug the full
// structure is dumped as well.
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the resolved configuration",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := GetConfig()
		appconfig.ShowConfig(cmd.OutOrStdout(), cfg)
		if debugMode {
			pp.Println(cfg)
		}
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	rootCmd.AddCommand(configCmd)
}
