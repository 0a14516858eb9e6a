package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/hdmiprobe/internal/application/usecase"
	"github.com/bnema/hdmiprobe/internal/cli/model"
	"github.com/bnema/hdmiprobe/internal/cli/styles"
	"github.com/bnema/hdmiprobe/internal/domain/entity"
)

var (
	stabilityDuration int
	stabilityJSON     bool
)

var stabilityCmd = &cobra.Command{
	Use:   "stability",
	Short: "Watch the connection for signal dropouts",
	Long: `Poll the connected display count once per second for the configured
duration. A tick that sees zero displays counts as a signal drop, which
usually points at a marginal cable or connector.

Press 'q' to stop early; the samples collected so far are kept.

Examples:
  hdmiprobe stability                 # Default 10 second watch
  hdmiprobe stability --duration 60   # Longer watch
  hdmiprobe stability --json          # Machine-readable samples`,
	RunE: runStability,
}

func init() {
	rootCmd.AddCommand(stabilityCmd)

	stabilityCmd.Flags().IntVarP(&stabilityDuration, "duration", "d", 0, "sampling duration in seconds (0 = configured default)")
	stabilityCmd.Flags().BoolVar(&stabilityJSON, "json", false, "output the test record as JSON")
}

func runStability(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	duration := resolveDuration(app, stabilityDuration)

	if stabilityJSON {
		out, err := app.StabilityUC.Execute(app.Ctx(), usecase.SampleStabilityInput{DurationSeconds: duration})
		if err != nil {
			return err
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out.Record)
	}

	ctx, cancel := context.WithCancel(app.Ctx())
	defer cancel()

	runner := func(ctx context.Context, progress func(tick, total int)) (entity.TestRecord, error) {
		out, err := app.StabilityUC.Execute(ctx, usecase.SampleStabilityInput{
			DurationSeconds: duration,
			Progress:        progress,
		})
		if out == nil {
			return entity.TestRecord{}, err
		}
		return out.Record, err
	}

	m := model.NewStabilityModel(ctx, cancel, app.Theme, runner)
	p := tea.NewProgram(m)
	finalModel, err := p.Run()
	if err != nil {
		return fmt.Errorf("run progress display: %w", err)
	}

	final, ok := finalModel.(model.StabilityModel)
	if !ok {
		return fmt.Errorf("unexpected model type")
	}
	if final.Err() != nil && !final.Canceled() {
		return final.Err()
	}

	renderer := styles.NewReportRenderer(app.Theme)
	fmt.Println(renderer.RenderTest(final.Record()))
	if final.Canceled() {
		fmt.Println(app.Theme.WarningStyle.Render("Sampling stopped early."))
	}
	return nil
}
