package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/boxesandglue/elemental/htmldom"
	"github.com/spf13/cobra"
)

func parseCmd(newBuilder builderFunc) *cobra.Command {
	var (
		dump     bool
		selector string
	)

	cmd := &cobra.Command{
		Use:   "parse [FILE]",
		Short: "Parse markup with a single root element",
		Long: `Parse markup from FILE or standard input. The markup must consist of
exactly one top-level element, otherwise the command fails. Leading and
trailing whitespace is ignored.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				data []byte
				err  error
			)
			if len(args) == 1 {
				data, err = os.ReadFile(args[0])
			} else {
				data, err = io.ReadAll(cmd.InOrStdin())
			}
			if err != nil {
				return err
			}

			b, err := newBuilder()
			if err != nil {
				return err
			}
			el, err := b.CreateElementFromHTMLString(strings.TrimSpace(string(data)))
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if selector != "" {
				root := el.(*htmldom.Element)
				matches, err := root.QuerySelectorAll(selector)
				if err != nil {
					return err
				}
				if ok, _ := root.Matches(selector); ok {
					info(out, "%s", htmldom.OuterHTML(root))
				}
				for _, m := range matches {
					info(out, "%s", htmldom.OuterHTML(m))
				}
				return nil
			}
			if dump {
				fmt.Fprintln(out, htmldom.Dump(el))
				return nil
			}
			fmt.Fprintln(out, htmldom.OuterHTML(el))
			return nil
		},
	}

	cmd.Flags().BoolVar(&dump, "dump", false, "print the node tree instead of HTML")
	cmd.Flags().StringVar(&selector, "select", "", "print the elements matching a CSS selector")

	return cmd
}
