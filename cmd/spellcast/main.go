package main

import (
	"os"

	"github.com/spf13/cobra"

	"codeberg.org/snonux/spellcast/internal/cli"
	"codeberg.org/snonux/spellcast/internal/processor"
	"codeberg.org/snonux/spellcast/internal/voices"
)

func main() {
	// Create flags instance
	flags := cli.NewFlags()

	// Create root command
	rootCmd := cli.CreateRootCommand(flags)

	// Set up command initialization
	cobra.OnInitialize(func() {
		cli.InitConfig(flags.CfgFile)
	})

	// Set the run function
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runCommand(cmd, args, flags)
	}

	// Execute command
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runCommand(cmd *cobra.Command, args []string, flags *cli.Flags) error {
	// Handle --list-voices flag
	if flags.ListVoices {
		lister := voices.NewLister(cli.GetOpenAIKey())
		return lister.ListVoices()
	}

	// Handle --list-models flag
	if flags.ListModels {
		lister := voices.NewLister(cli.GetOpenAIKey())
		return lister.ListModels()
	}

	// Create processor
	proc := processor.NewProcessor(flags)

	// Handle --precache flag
	if flags.Precache {
		return proc.Precache()
	}

	// Speak a single word when one is given
	if len(args) > 0 {
		return proc.SpeakWord(args[0])
	}

	// No input provided - launch GUI mode by default
	return proc.RunGUIMode()
}
