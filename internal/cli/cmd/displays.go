package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/hdmiprobe/internal/application/usecase"
	"github.com/bnema/hdmiprobe/internal/cli/styles"
)

var (
	displaysJSON  bool
	displaysModes bool
)

var displaysCmd = &cobra.Command{
	Use:   "displays",
	Short: "List connected displays",
	Long: `List the displays the OS currently reports as connected, with their
EDID identity where available: manufacturer, product code, serial and
manufacture date.

Examples:
  hdmiprobe displays          # Connected displays
  hdmiprobe displays --modes  # Also list the mode catalog
  hdmiprobe displays --json   # Machine-readable output`,
	RunE: runDisplays,
}

func init() {
	rootCmd.AddCommand(displaysCmd)

	displaysCmd.Flags().BoolVar(&displaysJSON, "json", false, "output as JSON")
	displaysCmd.Flags().BoolVar(&displaysModes, "modes", false, "also list available display modes")
}

func runDisplays(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	out, err := app.DetectUC.Execute(app.Ctx(), usecase.DetectDisplaysInput{IncludeModes: displaysModes})
	if err != nil {
		return err
	}

	if displaysJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if displaysModes {
			return enc.Encode(out)
		}
		return enc.Encode(out.Displays)
	}

	renderer := styles.NewDisplaysRenderer(app.Theme)
	fmt.Println(renderer.Render(out.Displays))
	if displaysModes {
		fmt.Println(renderer.RenderModes(out.Modes))
	}
	return nil
}
