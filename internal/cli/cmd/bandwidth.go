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
	bandwidthWidth   int
	bandwidthHeight  int
	bandwidthRefresh int
	bandwidthDepth   int
	bandwidthChroma  string
	bandwidthJSON    bool
)

var bandwidthCmd = &cobra.Command{
	Use:   "bandwidth",
	Short: "Compute required HDMI bandwidth",
	Long: `Compute the uncompressed bandwidth a video signal needs and which HDMI
revisions can carry it.

With no geometry flags the standard scenario matrix is shown, from
1080p@60Hz up to 4K@120Hz. Give --width, --height and --refresh to
analyze a single custom signal instead.

Examples:
  hdmiprobe bandwidth                                   # Scenario matrix
  hdmiprobe bandwidth --width 3840 --height 2160 --refresh 120
  hdmiprobe bandwidth --width 2560 --height 1440 --refresh 165 --depth 10
  hdmiprobe bandwidth --width 3840 --height 2160 --refresh 60 --chroma 4:2:0`,
	RunE: runBandwidth,
}

func init() {
	rootCmd.AddCommand(bandwidthCmd)

	bandwidthCmd.Flags().IntVar(&bandwidthWidth, "width", 0, "horizontal resolution in pixels")
	bandwidthCmd.Flags().IntVar(&bandwidthHeight, "height", 0, "vertical resolution in pixels")
	bandwidthCmd.Flags().IntVar(&bandwidthRefresh, "refresh", 0, "refresh rate in Hz")
	bandwidthCmd.Flags().IntVar(&bandwidthDepth, "depth", 0, "color depth in bits per channel (default 8)")
	bandwidthCmd.Flags().StringVar(&bandwidthChroma, "chroma", "", "chroma subsampling: 4:4:4, 4:2:2 or 4:2:0 (default 4:4:4)")
	bandwidthCmd.Flags().BoolVar(&bandwidthJSON, "json", false, "output as JSON")
}

func runBandwidth(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	input := usecase.AnalyzeBandwidthInput{
		Width:     bandwidthWidth,
		Height:    bandwidthHeight,
		RefreshHz: bandwidthRefresh,
		BitDepth:  bandwidthDepth,
		Chroma:    bandwidthChroma,
	}
	if !input.IsCatalog() && (input.Width == 0 || input.Height == 0 || input.RefreshHz == 0) {
		return fmt.Errorf("--width, --height and --refresh must be given together")
	}

	out, err := app.BandwidthUC.Execute(app.Ctx(), input)
	if err != nil {
		return err
	}

	if bandwidthJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if out.Single != nil {
			return enc.Encode(out.Single)
		}
		return enc.Encode(out.Scenarios)
	}

	renderer := styles.NewBandwidthRenderer(app.Theme)
	if out.Single != nil {
		fmt.Println(renderer.RenderSingle(*out.Single))
		return nil
	}
	fmt.Println(renderer.RenderMatrix(out.Scenarios))
	return nil
}
