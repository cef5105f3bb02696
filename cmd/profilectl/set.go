package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newSetCmd())
}

func newSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <section> <key> <value>",
		Short: "Assign a value",
		Example: `  profilectl set Display Width 1920 -f game.ini
  profilectl set Display Width 1920 -f game.ini --save-on-write`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSet(args)
		},
	}
}

func runSet(args []string) error {
	if err := requireFile(); err != nil {
		return err
	}

	ok, err := rdr.WriteStringA([]byte(args[0]), []byte(args[1]), []byte(args[2]), []byte(iniFile))
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("write was not applied")
	}
	printVerbose("set [%s] %s=%s\n", args[0], args[1], args[2])
	return nil
}
