// internal/commands/eval.go
package bolumrag

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ozkanacar/bolumrag/internal/eval"
	"github.com/ozkanacar/bolumrag/internal/util"
)

var truthFile string

// evalCmd runs every ground-truth question through the pipeline and reports
// accuracy and latency.
var evalCmd = &cobra.Command{
	Use:   "eval",
	Short: "Evaluate answer accuracy against a ground-truth file",
	RunE: func(cmd *cobra.Command, args []string) error {
		cases, err := eval.LoadTestCases(truthFile)
		if err != nil {
			return err
		}

		orchestrator, sink, err := buildOrchestrator(GetConfig())
		if err != nil {
			return err
		}
		defer sink.Close()

		report := eval.Run(eval.NewAsker(orchestrator), cases)

		out := cmd.OutOrStdout()
		green := color.New(color.FgGreen)
		red := color.New(color.FgRed)
		for _, result := range report.Cases {
			q := util.TruncateRunes(result.Question, 60)
			switch {
			case result.Err != nil:
				red.Fprintf(out, "ERR  %s (%v)\n", q, result.Err)
			case result.Correct:
				green.Fprintf(out, "PASS %s (%.1fms)\n", q, result.LatencyMs)
			default:
				red.Fprintf(out, "FAIL %s (%.1fms)\n", q, result.LatencyMs)
			}
		}

		fmt.Fprintf(out, "\nAccuracy: %d/%d (%.1f%%)\n", report.Correct, report.Total, report.Accuracy()*100)
		fmt.Fprintf(out, "Latency:  avg %.1fms, p95 %.1fms\n", report.AvgLatencyMs, report.P95LatencyMs)
		if report.Failed > 0 {
			return fmt.Errorf("%d questions failed to run", report.Failed)
		}
		return nil
	},
}

func init() {
	evalCmd.Flags().StringVar(&truthFile, "truth", "", "ground-truth JSON file of questions and expected keywords")
	_ = evalCmd.MarkFlagRequired("truth")
	rootCmd.AddCommand(evalCmd)
}
