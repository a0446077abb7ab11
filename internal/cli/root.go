// Package cli provides the root command and CLI setup for seqalign.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

// verboseFlag enables debug logging when set.
var verboseFlag bool

// logFileFlag overrides the rotated log file location.
var logFileFlag string

const rootLongDescription = `Seqalign computes optimal global pairwise alignments of symbol sequences
with the Needleman-Wunsch algorithm: match/mismatch scoring, linear gap
penalties, and a deterministic diagonal-over-left-over-up tie break.

Sequences are given as command arguments or read from FASTA files
("-" reads stdin, ".gz" files are decompressed transparently).`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seqalign",
		Short: "Global pairwise sequence alignment tool",
		Long:  rootLongDescription,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(logFileFlag, verboseFlag)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", false, "enable debug logging")
	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, "", "log file path (rotated; default "+defaultLogFilename+")")
}

// bindFlagToConfig wires a cobra flag to a viper key so config/env values
// feed the flag default.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// isTTY reports whether w is an interactive terminal, switching colored
// alignment rendering on and off.
func isTTY(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
