package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var getDefault string

// readBufferSize matches the generous buffers legacy callers pass.
const readBufferSize = 64 * 1024

func init() {
	cmd := newGetCmd()
	cmd.Flags().StringVar(&getDefault, "default", "", "Value returned when the key is missing")
	rootCmd.AddCommand(cmd)
}

func newGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <section> <key>",
		Short: "Read a value",
		Example: `  profilectl get Display Width -f game.ini
  profilectl get Audio Volume -f game.ini --default 100`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGet(args)
		},
	}
}

func runGet(args []string) error {
	if err := requireFile(); err != nil {
		return err
	}

	var def []byte
	if getDefault != "" {
		def = []byte(getDefault)
	}

	buf := make([]byte, readBufferSize)
	n, err := rdr.GetStringA([]byte(args[0]), []byte(args[1]), def, buf, []byte(iniFile))
	if err != nil {
		return err
	}
	printVerbose("read %d characters\n", n)
	fmt.Println(string(buf[:n]))
	return nil
}
