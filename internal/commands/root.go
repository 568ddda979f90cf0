// internal/commands/root.go
package bolumrag

import (
	"fmt"
	"os"

	"github.com/k0kubun/pp"
	"github.com/spf13/cobra"

	"github.com/ozkanacar/bolumrag/internal/appconfig"
	"github.com/ozkanacar/bolumrag/internal/logging"
)

var (
	cfgFile       string
	question      string
	debugMode     bool
	currentConfig *appconfig.Config
	appVersion    = "dev"
	appCommit     = "none"
	appDate       = "unknown"
)

// rootCmd represents the base command when called without any subcommands.
// Called with --q it answers a single question and exits.
var rootCmd = &cobra.Command{
	Use:   "rag",
	Short: "rag — Türkçe soru/cevap over a chunked departmental corpus",
	Long: `rag answers natural-language questions in Turkish by retrieving the most
relevant chunk from a pre-chunked corpus and citing the source offsets.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := appconfig.Load(cfgFile)
		if err != nil {
			return err
		}
		currentConfig = &cfg

		if err := logging.Init(cfg.Paths.LogFile); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		if debugMode {
			pp.Println(cfg)
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if question == "" {
			return cmd.Help()
		}
		return runAsk(cmd, question)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", appVersion, appCommit, appDate)

	defer logging.Close()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", appconfig.DefaultConfigPath, "config file (e.g., ./config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "dump the resolved configuration before running")
	rootCmd.Flags().StringVar(&question, "q", "", "question to answer in a single run")
}

// GetConfig returns the loaded application configuration for other commands.
func GetConfig() *appconfig.Config {
	return currentConfig
}

// SetVersionInfo allows the main package to inject build-time variables.
func SetVersionInfo(version, commit, date string) {
	appVersion = version
	appCommit = commit
	appDate = date
}
