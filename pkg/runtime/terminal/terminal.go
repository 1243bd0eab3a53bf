package terminal

import (
	"io"
	"os"

	"github.com/aqua-tools/aquascope/pkg/runtime/terminal/commands"
	"github.com/spf13/cobra"
)

// CLI represents the command-line interface
type CLI struct {
	rootCmd *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Input  io.Reader
	Output io.Writer
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Input == nil {
		opts.Input = os.Stdin
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	cli := &CLI{}
	cli.rootCmd = cli.newRootCmd(opts)
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

func (cli *CLI) newRootCmd(opts Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "aquascope",
		Short: "Surface-water change detection client",
	}

	cmd.AddCommand(commands.NewAnalyzeCmd(opts.Output, NewReporter(opts.Output)))
	cmd.AddCommand(commands.NewSearchCmd(opts.Input, opts.Output))

	return cmd
}
