package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/hdmiprobe/internal/application/usecase"
	"github.com/bnema/hdmiprobe/internal/cli/styles"
)

var modesJSON bool

var modesCmd = &cobra.Command{
	Use:   "modes",
	Short: "List available display modes",
	Long: `List the distinct display modes the OS claims to support: resolution,
refresh rate and color depth. This is the raw catalog the resolution
and refresh rate tests probe against.`,
	RunE: runModes,
}

func init() {
	rootCmd.AddCommand(modesCmd)

	modesCmd.Flags().BoolVar(&modesJSON, "json", false, "output as JSON")
}

func runModes(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	out, err := app.DetectUC.Execute(app.Ctx(), usecase.DetectDisplaysInput{IncludeModes: true})
	if err != nil {
		return err
	}

	if modesJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out.Modes)
	}

	renderer := styles.NewDisplaysRenderer(app.Theme)
	fmt.Println(renderer.RenderModes(out.Modes))
	return nil
}
