package cmd

import (
	"fmt"

	"github.com/nikogura/readme-forge/pkg/schema"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var schemaOutput string

//nolint:gochecknoglobals // Cobra boilerplate
var schemaCmd = &cobra.Command{
	Use:   "schema <profile|repo>",
	Short: "Print the JSON Schema of a data file",
	Long: `Print the JSON Schema describing profile or project data files. Point an
editor at it for completion and validation while writing YAML.

Example:
  readme-forge schema repo
  readme-forge schema profile --output profile.schema.json`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{string(schema.KindProfile), string(schema.KindRepo)},
	RunE:      runSchema,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(schemaCmd)
	schemaCmd.Flags().StringVarP(&schemaOutput, "output", "o", "", "Write the schema to this file instead of stdout")
}

func runSchema(cmd *cobra.Command, args []string) (err error) {
	var data []byte
	data, err = schema.JSON(schema.Kind(args[0]))
	if err != nil {
		return err
	}

	if schemaOutput == "" {
		fmt.Println(string(data))
		return err
	}

	err = afero.WriteFile(appFs, schemaOutput, append(data, '\n'), 0600)
	if err != nil {
		err = errors.Wrapf(err, "failed to write %s", schemaOutput)
		return err
	}

	fmt.Printf("✓ Schema written to %s\n", schemaOutput)
	return err
}
