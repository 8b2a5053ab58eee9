package cmd

import (
	"fmt"

	"github.com/nikogura/readme-forge/pkg/config"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a default config file",
	Long: `Write a config file with default settings, at --config or
$HOME/.readme-forge/config.yaml. An existing file is never overwritten.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) (err error) {
	var path string
	path, err = config.InitConfig(getConfigFile())
	if err != nil {
		return err
	}

	fmt.Printf("✓ Config written to %s\n", path)
	fmt.Println("  Add your Anthropic API key, or set ANTHROPIC_API_KEY.")
	return err
}
