package main

import (
	"fmt"
	"io"
	"os"

	"github.com/boxesandglue/elemental"
	"github.com/boxesandglue/elemental/htmldom"
	"github.com/spf13/cobra"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "\033[31mError:\033[0m %s\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var configFile string

	root := &cobra.Command{
		Use:   "elemental",
		Short: "Build and parse HTML elements",
		Long: `elemental builds single HTML elements from flags and parses markup
into exactly one root element, using the same rules as the Go package.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configFile, "config", "elemental.yaml", "configuration file")

	newBuilder := func() (*elemental.Builder, error) {
		cfg, err := elemental.LoadConfig(configFile)
		if err != nil {
			return nil, err
		}
		return elemental.New(htmldom.NewDocument(), elemental.WithConfig(cfg)), nil
	}

	root.AddCommand(
		createCmd(newBuilder),
		parseCmd(newBuilder),
		versionCmd(),
	)
	return root
}

type builderFunc func() (*elemental.Builder, error)

// info prints an info message.
func info(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "  %s\n", fmt.Sprintf(format, args...))
}
