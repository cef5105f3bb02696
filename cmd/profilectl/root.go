package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mirrorworks/profilekit/internal/config"
	"github.com/mirrorworks/profilekit/pkg/profile"
)

var (
	iniFile     string
	configPath  string
	verbose     bool
	saveOnWrite bool

	rdr *profile.Redirector
)

var rootCmd = &cobra.Command{
	Use:   "profilectl",
	Short: "Query and edit INI profile files through the redirector cache",
	Long: `profilectl drives the exact cache and marshaling path the redirected
profile API uses, so what it reads and writes is what an intercepted
application would observe.

Options are loaded from ` + config.DefaultPath + ` when present; flags override.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		opts, err := config.Load(configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if cmd.Flags().Changed("save-on-write") {
			opts.SaveOnWrite = saveOnWrite
		}
		rdr, err = profile.New(profile.Config{Options: opts})
		if err != nil {
			return fmt.Errorf("failed to create redirector: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if rdr != nil {
			rdr.SaveChangedFiles("profilectl exit")
			rdr.Close()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&iniFile, "file", "f", "", "INI file to operate on")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultPath, "Redirector settings file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().BoolVar(&saveOnWrite, "save-on-write", false, "Flush the file after every write")
}

func requireFile() error {
	if iniFile == "" {
		return fmt.Errorf("--file is required")
	}
	return nil
}

func printVerbose(format string, a ...interface{}) {
	if verbose {
		fmt.Fprintf(os.Stderr, format, a...)
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
