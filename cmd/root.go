package cmd

import (
	"fmt"
	"os"

	"github.com/adaptlearn/access-api/pkg/config"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "access-api",
	Short: "Accessibility Content API server",
	Long: `Accessibility Content API - transforms uploaded content into accessible formats

The API ingests text, audio, and video and produces renditions adapted to
hearing, visual, and cognitive accessibility needs.

Features:
  • Speech-to-text transcription with word-timed SRT captions
  • Sign-language video rendering
  • Narrated audio descriptions of video scenes
  • Text simplification, key points, and focus guides
  • Interactive exercise generation with audio and visual aids`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// NewRootCmd creates a new root command (exported for testing)
func NewRootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	cobra.OnInitialize(loadConfig)
}

// loadConfig loads the configuration when a command needs it
func loadConfig() {
	// Version and help never need config
	cmd, _, _ := rootCmd.Find(os.Args[1:])
	if cmd != nil && (cmd.Name() == "version" || cmd.Name() == "help") {
		return
	}

	if err := config.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing config: %v\n", err)
		os.Exit(1)
	}
}
