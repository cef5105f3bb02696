package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mirrorworks/profilekit/internal/marshal"
)

func init() {
	rootCmd.AddCommand(newSectionsCmd())
	rootCmd.AddCommand(newKeysCmd())
	rootCmd.AddCommand(newSectionCmd())
}

func newSectionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sections",
		Short: "List section names",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireFile(); err != nil {
				return err
			}
			buf := make([]byte, readBufferSize)
			n, err := rdr.GetSectionNamesA(buf, []byte(iniFile))
			if err != nil {
				return err
			}
			printList(buf[:n+1])
			return nil
		},
	}
}

func newKeysCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keys <section>",
		Short: "List key names in a section",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireFile(); err != nil {
				return err
			}
			buf := make([]byte, readBufferSize)
			n, err := rdr.GetStringA([]byte(args[0]), nil, nil, buf, []byte(iniFile))
			if err != nil {
				return err
			}
			printList(buf[:n+1])
			return nil
		},
	}
}

func newSectionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "section <section>",
		Short: "Print a section as key=value lines",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireFile(); err != nil {
				return err
			}
			buf := make([]byte, readBufferSize)
			n, err := rdr.GetSectionA([]byte(args[0]), buf, []byte(iniFile))
			if err != nil {
				return err
			}
			printList(buf[:n+1])
			return nil
		},
	}
}

func printList(list []byte) {
	for _, item := range marshal.SplitList(list) {
		fmt.Println(string(item))
	}
}
