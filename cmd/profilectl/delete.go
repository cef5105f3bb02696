package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newDeleteCmd())
}

func newDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <section> [key]",
		Short: "Delete a key, or a whole section when no key is given",
		Example: `  profilectl delete Display Width -f game.ini
  profilectl delete Display -f game.ini`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDelete(args)
		},
	}
}

func runDelete(args []string) error {
	if err := requireFile(); err != nil {
		return err
	}

	var key []byte
	if len(args) == 2 {
		key = []byte(args[1])
	}

	ok, err := rdr.WriteStringA([]byte(args[0]), key, nil, []byte(iniFile))
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("nothing to delete")
	}
	if key == nil {
		printVerbose("deleted section [%s]\n", args[0])
	} else {
		printVerbose("deleted [%s] %s\n", args[0], args[1])
	}
	return nil
}
