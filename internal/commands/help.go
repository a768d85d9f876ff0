package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"text/tabwriter"

	"todoseed/internal/config"
	"todoseed/internal/exitcode"
	"todoseed/internal/service"
)

func init() {
	Register(&HelpCmd{registry: DefaultRegistry})
}

// HelpCmd implements the help command.
type HelpCmd struct {
	registry *Registry
}

// NewHelpCmd returns a help command listing the commands of r.
func NewHelpCmd(r *Registry) *HelpCmd {
	return &HelpCmd{registry: r}
}

func (c *HelpCmd) Name() string       { return "help" }
func (c *HelpCmd) Aliases() []string  { return nil }
func (c *HelpCmd) Synopsis() string   { return "Print usage" }
func (c *HelpCmd) Usage() string      { return "todoseed help" }
func (c *HelpCmd) NeedsBackend() bool { return false }

func (c *HelpCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *HelpCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	fmt.Fprintln(out, "Usage:")

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	if def, ok := c.registry.Default(); ok {
		fmt.Fprintf(tw, "  todoseed\t%s\n", def.Synopsis())
	}
	for _, cmd := range c.registry.All() {
		fmt.Fprintf(tw, "  %s\t%s\n", cmd.Usage(), cmd.Synopsis())
	}
	tw.Flush()

	fmt.Fprint(out, commonFlagsText)
	return exitcode.Success
}

const commonFlagsText = `
Common flags:
  --config <dir>   Override config directory
  --project <id>   Override the Google Cloud project
  --quiet          Suppress informational output
  --debug          Print debug logs to stderr
`
