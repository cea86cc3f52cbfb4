package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/chiplab/harnessclock/harness"
	"github.com/chiplab/harnessclock/inspect"
	"github.com/chiplab/harnessclock/plan"
	"github.com/chiplab/harnessclock/record"
	sig "github.com/chiplab/harnessclock/signal"
	"github.com/chiplab/harnessclock/timing"
)

var elaborateCmd = &cobra.Command{
	Use:   "elaborate",
	Short: "Elaborate a clock plan and emit its artifacts",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cmd.SilenceUsage = true

		planPath, _ := cmd.Flags().GetString("plan")
		outDir, _ := cmd.Flags().GetString("out")
		refFreqText, _ := cmd.Flags().GetString("ref-freq")
		strategyName, _ := cmd.Flags().GetString("strategy")
		recordPath, _ := cmd.Flags().GetString("record")
		serve, _ := cmd.Flags().GetBool("inspect")
		port, _ := cmd.Flags().GetInt("port")

		loaded, err := plan.Load(planPath)
		if err != nil {
			return err
		}

		if strategyName == "" {
			strategyName = loaded.Strategy
		}
		strategy, err := harness.NewStrategy(strategyName)
		if err != nil {
			return err
		}

		if refFreqText == "" {
			refFreqText = envOr("HARNESSCLOCK_REF_FREQ", "1GHz")
		}
		refFreq, err := timing.ParseFreq(refFreqText)
		if err != nil {
			return err
		}

		inst := harness.New(strategy)
		if err := loaded.Apply(inst); err != nil {
			return err
		}

		ref := sig.NewBundle("harness")
		ref.Clock.Drive(sig.SquareWave{Freq: refFreq})
		ref.Reset.Drive(sig.Level(false))

		if err := inst.InstantiateHarnessClocks(ref); err != nil {
			return err
		}

		slog.Info("elaborated clock plan",
			"plan", planPath,
			"strategy", strategy.Name(),
			"clocks", inst.Registry().Len())

		if err := writeArtifacts(strategy, outDir); err != nil {
			return err
		}

		if recordPath != "" {
			record.WriteElaboration(record.New(recordPath), inst)
		}

		if serve {
			server := inspect.NewServer(inst).WithPortNumber(port).WithBrowser()
			if _, err := server.Start(); err != nil {
				return err
			}
			defer server.Stop()

			waitForInterrupt()
		}

		return nil
	},
}

func init() {
	elaborateCmd.Flags().String("plan", "clocks.hcl", "path to the HCL clock plan")
	elaborateCmd.Flags().String("out", ".", "directory for emitted oscillator fragments")
	elaborateCmd.Flags().String("ref-freq", "",
		"frequency of the harness reference clock "+
			"(default $HARNESSCLOCK_REF_FREQ or 1GHz)")
	elaborateCmd.Flags().String("strategy", "",
		"override the plan's clock source strategy")
	elaborateCmd.Flags().String("record", "",
		"record the elaborated plan into this SQLite database")
	elaborateCmd.Flags().Bool("inspect", false,
		"serve the elaborated plan over HTTP until interrupted")
	elaborateCmd.Flags().Int("port", 0, "inspector port (0 picks a random port)")

	rootCmd.AddCommand(elaborateCmd)
}

// writeArtifacts emits one .v file per oscillator the strategy created.
func writeArtifacts(strategy harness.Strategy, outDir string) error {
	osc, ok := strategy.(*harness.AbsoluteFreqStrategy)
	if !ok {
		return nil
	}

	for _, artifact := range osc.Artifacts() {
		path := filepath.Join(outDir, artifact.Module+".v")
		if err := os.WriteFile(path, []byte(artifact.Render()), 0644); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
		slog.Info("emitted oscillator fragment",
			"clock", artifact.Clock, "path", path)
	}

	return nil
}

func waitForInterrupt() {
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)
	<-done
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
