package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/nikogura/readme-forge/pkg/config"
	"github.com/nikogura/readme-forge/pkg/renderer"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var verbose bool

//nolint:gochecknoglobals // Cobra boilerplate
var configFile string

//nolint:gochecknoglobals // Cobra boilerplate
var appFs = afero.NewOsFs()

//nolint:gochecknoglobals // Cobra boilerplate
var rootCmd = &cobra.Command{
	Use:   "readme-forge",
	Short: "Generate GitHub profile and project READMEs",
	Long: `readme-forge renders README markdown from a YAML or JSON data file.

Profile READMEs get a header, about bullets, skill icons, stats cards,
projects and socials. Project READMEs get badges, features, installation,
usage, API and configuration sections with a table of contents.

A project can also be imported straight from GitHub, with Claude writing the
description, features, usage and contributing sections.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default is $HOME/.readme-forge/config.yaml)")
}

// getVerbose returns the verbose flag value.
func getVerbose() (result bool) {
	result = verbose
	return result
}

// getConfigFile returns the config file path.
func getConfigFile() (result string) {
	result = configFile
	return result
}

// newLogger builds the logger handed to every package. Logs go to stderr so
// stdout stays clean for markdown.
func newLogger() (logger *logrus.Logger) {
	logger = logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	logger.SetLevel(logrus.InfoLevel)
	if getVerbose() {
		logger.SetLevel(logrus.DebugLevel)
	}
	return logger
}

func loadConfig() (cfg config.Config, err error) {
	cfg, err = config.Load(getConfigFile())
	if err != nil {
		err = errors.Wrap(err, "failed to load config")
		return cfg, err
	}
	return cfg, err
}

// getOutputDir prefers the flag, then the config, then the working directory.
func getOutputDir(flagValue, configValue string) (outDir string) {
	outDir = flagValue
	if outDir == "" {
		outDir = configValue
	}
	if outDir == "" {
		outDir = "."
	}
	return outDir
}

// emitMarkdown prints markdown to stdout or writes README.md into outDir.
func emitMarkdown(md, outDir string, toStdout bool) (err error) {
	if toStdout {
		fmt.Print(md)
		return err
	}

	path := filepath.Join(outDir, renderer.DefaultFileName)
	err = renderer.WriteMarkdown(appFs, md, path)
	if err != nil {
		return err
	}

	fmt.Printf("✓ README written to %s\n", path)
	return err
}
