package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/hdmiprobe/internal/application/usecase"
	"github.com/bnema/hdmiprobe/internal/cli"
	"github.com/bnema/hdmiprobe/internal/cli/model"
	"github.com/bnema/hdmiprobe/internal/cli/styles"
)

var (
	historyJSON bool
	historyMax  int
)

const defaultHistoryMax = 50

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Browse past test reports",
	Long: `Interactive browser for stored test reports. Pick an entry to see the
full rendered report as it looked when the test ran.`,
	RunE: runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.Flags().BoolVar(&historyJSON, "json", false, "output as JSON")
	historyCmd.Flags().IntVar(&historyMax, "max", defaultHistoryMax, "maximum entries to show")
}

func runHistory(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	// JSON output mode (non-interactive)
	if historyJSON {
		out, err := app.HistoryUC.List(app.Ctx(), usecase.ListHistoryInput{Max: historyMax})
		if err != nil {
			return err
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out.Reports)
	}

	// Interactive TUI mode
	m := model.NewHistoryModel(app.Ctx(), app.Theme, app.HistoryUC, historyMax)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// showCmd prints one stored report.
var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a stored report",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

var showJSON bool

func init() {
	historyCmd.AddCommand(showCmd)

	showCmd.Flags().BoolVar(&showJSON, "json", false, "output as JSON")
}

func runShow(_ *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid report id %q", args[0])
	}

	out, err := app.HistoryUC.Show(app.Ctx(), usecase.ShowHistoryInput{ID: id})
	if err != nil {
		return err
	}
	if out.Report == nil {
		return fmt.Errorf("report %d not found", id)
	}

	if showJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out.Report)
	}

	histStyle := styles.NewHistoryRenderer(app.Theme)
	renderer := styles.NewReportRenderer(app.Theme)
	fmt.Println(histStyle.RenderEntry(out.Report))
	fmt.Println(renderer.Render(out.Report.Report))
	return nil
}

// clearCmd removes stored reports.
var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove stored reports",
	Long: `Remove stored reports, either all of them or only entries older than a
number of days. Asks for confirmation unless --yes is given.`,
	RunE: runClear,
}

var (
	clearAll       bool
	clearOlderThan int
	clearYes       bool
)

func init() {
	historyCmd.AddCommand(clearCmd)

	clearCmd.Flags().BoolVar(&clearAll, "all", false, "remove every stored report")
	clearCmd.Flags().IntVar(&clearOlderThan, "older-than", 0, "remove reports older than this many days")
	clearCmd.Flags().BoolVarP(&clearYes, "yes", "y", false, "skip the confirmation prompt")
}

func runClear(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	if !clearAll && clearOlderThan <= 0 {
		return fmt.Errorf("specify --all or --older-than <days>")
	}

	message := fmt.Sprintf("Remove reports older than %d days?", clearOlderThan)
	if clearAll {
		message = "Remove every stored report?"
	}

	if !clearYes {
		confirmed, err := confirmPrompt(app, message)
		if err != nil {
			return err
		}
		if !confirmed {
			fmt.Println(app.Theme.Subtle.Render("Nothing removed."))
			return nil
		}
	}

	out, err := app.HistoryUC.Clear(app.Ctx(), usecase.ClearHistoryInput{
		All:           clearAll,
		OlderThanDays: clearOlderThan,
	})
	if err != nil {
		return err
	}

	histStyle := styles.NewHistoryRenderer(app.Theme)
	fmt.Println(histStyle.RenderCleared(out.Removed))
	return nil
}

// confirmPrompt runs a blocking yes/no dialog.
func confirmPrompt(app *cli.App, message string) (bool, error) {
	m := model.NewConfirmPrompt(app.Theme, message)
	p := tea.NewProgram(m)
	finalModel, err := p.Run()
	if err != nil {
		return false, fmt.Errorf("run confirm dialog: %w", err)
	}

	final, ok := finalModel.(model.ConfirmPrompt)
	if !ok {
		return false, fmt.Errorf("unexpected model type")
	}
	return final.Confirmed(), nil
}

// statsCmd shows history statistics.
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show history statistics",
	RunE:  runStats,
}

var statsJSON bool

func init() {
	historyCmd.AddCommand(statsCmd)

	statsCmd.Flags().BoolVar(&statsJSON, "json", false, "output as JSON")
}

func runStats(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	out, err := app.HistoryUC.Stats(app.Ctx())
	if err != nil {
		return err
	}

	if statsJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out.Stats)
	}

	histStyle := styles.NewHistoryRenderer(app.Theme)
	fmt.Println(histStyle.RenderStats(*out.Stats))
	return nil
}
