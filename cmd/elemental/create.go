package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/boxesandglue/elemental"
	"github.com/boxesandglue/elemental/htmldom"
	"github.com/spf13/cobra"
)

func createCmd(newBuilder builderFunc) *cobra.Command {
	var (
		id       string
		class    string
		is       string
		attrs    []string
		bools    []string
		styles   []string
		data     []string
		texts    []string
		children []string
	)

	cmd := &cobra.Command{
		Use:   "create TAG",
		Short: "Create an element and print its HTML",
		Long: `Create an element from flags and print its outer HTML.

Children are appended in this order: every --text as a text node, then every
--html snippet, flattened into the element.`,
		Example: `  elemental create button --class "btn primary" --bool disabled=true --text Save
  elemental create my-widget --is fancy-button --data user=4`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := newBuilder()
			if err != nil {
				return err
			}
			bag := elemental.Attrs{}
			if id != "" {
				bag["id"] = id
			}
			if class != "" {
				bag["class"] = class
			}
			if is != "" {
				bag["is"] = is
			}
			if err := addPairs(attrs, func(k, v string) error {
				bag[k] = v
				return nil
			}); err != nil {
				return err
			}
			if err := addPairs(bools, func(k, v string) error {
				flag, err := strconv.ParseBool(v)
				if err != nil {
					return fmt.Errorf("--bool %s: %w", k, err)
				}
				bag[k] = flag
				return nil
			}); err != nil {
				return err
			}
			if len(styles) > 0 {
				st := elemental.Styles{}
				if err := addPairs(styles, func(k, v string) error {
					st[k] = v
					return nil
				}); err != nil {
					return err
				}
				bag["style"] = st
			}
			if len(data) > 0 {
				ds := elemental.Dataset{}
				if err := addPairs(data, func(k, v string) error {
					ds[k] = v
					return nil
				}); err != nil {
					return err
				}
				bag["dataSet"] = ds
			}

			kids := make([]any, 0, len(texts)+len(children))
			for _, t := range texts {
				kids = append(kids, t)
			}
			for _, markup := range children {
				frag, err := b.DangerousHTML(markup)
				if err != nil {
					return err
				}
				kids = append(kids, frag)
			}

			var el elemental.Element
			if strings.Contains(args[0], "-") {
				el, err = b.CreateCustomElement(args[0], bag, kids...)
			} else {
				el, err = b.CreateElementWithAttrs(args[0], bag, kids...)
			}
			if err != nil {
				return err
			}
			if err := htmldom.Render(cmd.OutOrStdout(), el); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout())
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&id, "id", "", "element id")
	flags.StringVar(&class, "class", "", "space separated class names")
	flags.StringVar(&is, "is", "", "customized built-in element name")
	flags.StringArrayVar(&attrs, "attr", nil, "attribute as key=value")
	flags.StringArrayVar(&bools, "bool", nil, "boolean attribute as key=true|false")
	flags.StringArrayVar(&styles, "style", nil, "style property as name=value")
	flags.StringArrayVar(&data, "data", nil, "data attribute as suffix=value")
	flags.StringArrayVar(&texts, "text", nil, "text child")
	flags.StringArrayVar(&children, "html", nil, "markup child (not sanitised)")

	return cmd
}

// addPairs splits each key=value pair and calls fn.
func addPairs(pairs []string, fn func(k, v string) error) error {
	for _, p := range pairs {
		k, v, ok := strings.Cut(p, "=")
		if !ok || k == "" {
			return fmt.Errorf("expected key=value, got %q", p)
		}
		if err := fn(k, v); err != nil {
			return err
		}
	}
	return nil
}
