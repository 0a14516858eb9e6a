package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/hdmiprobe/internal/application/usecase"
	"github.com/bnema/hdmiprobe/internal/cli"
	"github.com/bnema/hdmiprobe/internal/cli/model"
	"github.com/bnema/hdmiprobe/internal/cli/styles"
	"github.com/bnema/hdmiprobe/internal/domain/entity"
)

var (
	testDuration    int
	testStability   bool
	testNoStability bool
	testSave        bool
	testOutput      string
	testNoHistory   bool
	testJSON        bool
	testYes         bool
)

var testCmd = &cobra.Command{
	Use:   "test",
	Short: "Run the full capability test suite",
	Long: `Run every diagnostic in sequence: display detection, resolution and
refresh rate probing, bandwidth analysis, and timed signal stability
sampling, then an overall link quality verdict.

The stability phase watches the connection for the configured duration
(10 seconds by default) and can be stopped early with 'q'. Without flags
the command asks whether to run it and whether to save the report;
--stability/--no-stability, --save and --yes answer those prompts up
front.

Examples:
  hdmiprobe test                      # Full suite, prompts included
  hdmiprobe test --yes                # Full suite, no prompts, report saved
  hdmiprobe test --duration 30        # Longer stability watch
  hdmiprobe test --no-stability       # Skip the timed phase
  hdmiprobe test --save               # Write the JSON report file
  hdmiprobe test --json > report.json # Machine-readable output`,
	RunE: runTest,
}

func init() {
	rootCmd.AddCommand(testCmd)

	testCmd.Flags().IntVarP(&testDuration, "duration", "d", 0, "stability sampling duration in seconds (0 = configured default)")
	testCmd.Flags().BoolVar(&testStability, "stability", false, "run the timed stability test without asking")
	testCmd.Flags().BoolVar(&testNoStability, "no-stability", false, "skip the timed stability test")
	testCmd.Flags().BoolVarP(&testSave, "save", "s", false, "write the JSON report file without asking")
	testCmd.Flags().StringVarP(&testOutput, "output", "o", "", "report file path (implies --save)")
	testCmd.Flags().BoolVar(&testNoHistory, "no-history", false, "do not record the report in history")
	testCmd.Flags().BoolVar(&testJSON, "json", false, "output the report as JSON")
	testCmd.Flags().BoolVarP(&testYes, "yes", "y", false, "assume yes on every prompt")

	testCmd.MarkFlagsMutuallyExclusive("stability", "no-stability")
}

func runTest(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	input := usecase.RunCapabilitySuiteInput{
		StabilityDuration: resolveDuration(app, testDuration),
	}

	// JSON output mode (non-interactive, prompts suppressed)
	if testJSON {
		input.SkipStability = testNoStability
		return runTestJSON(app, input)
	}

	input.SkipStability = !wantStability(app)

	// Without the timed phase there is no progress to show
	if input.SkipStability {
		out, err := app.SuiteUC.Execute(app.Ctx(), input)
		if err != nil {
			return err
		}
		return finishTest(app, out.Report, false)
	}

	return runTestTUI(app, input)
}

// wantStability decides the timed phase: flags answer first, then the user.
func wantStability(app *cli.App) bool {
	switch {
	case testNoStability:
		return false
	case testStability || testYes:
		return true
	}

	confirmed, err := confirmPrompt(app, "Run the signal stability test?")
	if err != nil {
		// A broken prompt should not silently drop a test phase.
		return true
	}
	return confirmed
}

// runTestTUI runs the suite behind the live progress display. The stability
// phase dominates the wall time, so its ticks drive the bar.
func runTestTUI(app *cli.App, input usecase.RunCapabilitySuiteInput) error {
	ctx, cancel := context.WithCancel(app.Ctx())
	defer cancel()

	var suiteOut *usecase.RunCapabilitySuiteOutput
	runner := func(ctx context.Context, progress func(tick, total int)) (entity.TestRecord, error) {
		in := input
		in.Progress = progress
		out, err := app.SuiteUC.Execute(ctx, in)
		suiteOut = out
		return entity.TestRecord{}, err
	}

	m := model.NewStabilityModel(ctx, cancel, app.Theme, runner).WithLabel("Running capability suite")
	p := tea.NewProgram(m)
	finalModel, err := p.Run()
	if err != nil {
		return fmt.Errorf("run progress display: %w", err)
	}

	final, ok := finalModel.(model.StabilityModel)
	if !ok {
		return fmt.Errorf("unexpected model type")
	}

	if suiteOut == nil {
		return final.Err()
	}
	interrupted := final.Canceled() || final.Err() != nil
	return finishTest(app, suiteOut.Report, interrupted)
}

// runTestJSON outputs the report as JSON.
func runTestJSON(app *cli.App, input usecase.RunCapabilitySuiteInput) error {
	out, err := app.SuiteUC.Execute(app.Ctx(), input)
	if err != nil {
		return err
	}

	if shouldSaveReport(app) {
		if _, err := saveReport(app, out.Report); err != nil {
			return err
		}
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out.Report)
}

// finishTest renders the report and writes the file when asked to.
func finishTest(app *cli.App, report entity.ResultAggregate, interrupted bool) error {
	renderer := styles.NewReportRenderer(app.Theme)
	fmt.Println(renderer.Render(report))

	if interrupted {
		fmt.Println(app.Theme.WarningStyle.Render("Run interrupted; report not saved."))
		return nil
	}

	save := shouldSaveReport(app) || testYes
	if !save {
		confirmed, err := confirmPrompt(app, "Save the report to a file?")
		if err != nil {
			return err
		}
		save = confirmed
	}
	if !save {
		return nil
	}

	saved, err := saveReport(app, report)
	if err != nil {
		return err
	}
	fmt.Println(renderer.RenderSaved(saved.Path, saved.HistorySaved, saved.HistoryID))
	return nil
}

func shouldSaveReport(app *cli.App) bool {
	return testSave || testOutput != "" || app.Config.Report.AutoSave
}

func saveReport(app *cli.App, report entity.ResultAggregate) (*usecase.SaveReportOutput, error) {
	return app.SaveUC.Execute(app.Ctx(), usecase.SaveReportInput{
		Report:        report,
		Path:          testOutput,
		OutputDir:     app.Config.Report.ResolveOutputDir(),
		SkipHistory:   testNoHistory,
		RetentionDays: app.Config.History.RetentionDays,
	})
}

// resolveDuration picks the sampling duration: flag first, then config.
func resolveDuration(app *cli.App, flag int) int {
	if flag > 0 {
		return flag
	}
	return app.Config.Stability.DurationSeconds
}
