package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/bnema/hdmiprobe/internal/cli/styles"
	"github.com/bnema/hdmiprobe/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long:  `View the effective configuration and generate the editor schema.`,
}

var configStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the config file and effective settings",
	Long: `Display the config file path and the settings currently in effect,
including values overridden via HDMIPROBE_* environment variables.`,
	RunE: runConfigStatus,
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Write the JSON schema next to the config file",
	Long: `Generate a JSON schema describing every configuration key. Editors with
a YAML language server pick it up for completion and validation.`,
	RunE: runConfigSchema,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configStatusCmd)
	configCmd.AddCommand(configSchemaCmd)
}

// runConfigStatus shows the config file path and effective settings.
func runConfigStatus(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	renderer := styles.NewConfigRenderer(app.Theme)

	configFile, err := config.GetConfigFile()
	if err != nil {
		fmt.Println(renderer.RenderError(err))
		return nil
	}

	_, statErr := os.Stat(configFile)
	exists := statErr == nil

	fmt.Println(renderer.RenderStatus(configFile, exists, *app.Config))
	return nil
}

// runConfigSchema writes the schema file.
func runConfigSchema(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	renderer := styles.NewConfigRenderer(app.Theme)

	if err := config.GenerateSchemaFile(); err != nil {
		fmt.Println(renderer.RenderError(err))
		return nil
	}

	configDir, err := config.GetConfigDir()
	if err != nil {
		fmt.Println(renderer.RenderError(err))
		return nil
	}

	fmt.Println(renderer.RenderSchemaWritten(filepath.Join(configDir, "config.schema.json")))
	return nil
}
