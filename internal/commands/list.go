package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"todoseed/internal/config"
	"todoseed/internal/exitcode"
	"todoseed/internal/output"
	"todoseed/internal/service"
)

func init() {
	Register(&MyCmd{})
	Register(&TeamCmd{})
}

// MyCmd implements the my command: a user's own tasks, secret ones included.
type MyCmd struct {
	userID string
}

func (c *MyCmd) Name() string       { return "my" }
func (c *MyCmd) Aliases() []string  { return nil }
func (c *MyCmd) Synopsis() string   { return "List a user's own tasks" }
func (c *MyCmd) Usage() string      { return "todoseed my [--user <uid>]" }
func (c *MyCmd) NeedsBackend() bool { return true }

func (c *MyCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.userID, "user", "", "")
}

func (c *MyCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	if !noArgs(errOut, c.Name(), args) {
		return exitcode.UserError
	}

	tasks, err := svc.ListUserTasks(ctx, orDefault(c.userID, cfg.UserID))
	if err != nil {
		return backendError(errOut, err)
	}
	printTasks(cfg, tasks, out)
	return exitcode.Success
}

// TeamCmd implements the team command: the tasks a teammate may see.
type TeamCmd struct {
	teamID string
}

func (c *TeamCmd) Name() string       { return "team" }
func (c *TeamCmd) Aliases() []string  { return nil }
func (c *TeamCmd) Synopsis() string   { return "List a team's public tasks" }
func (c *TeamCmd) Usage() string      { return "todoseed team [--team <id>]" }
func (c *TeamCmd) NeedsBackend() bool { return true }

func (c *TeamCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.teamID, "team", "", "")
}

func (c *TeamCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	if !noArgs(errOut, c.Name(), args) {
		return exitcode.UserError
	}

	tasks, err := svc.ListTeamTasks(ctx, orDefault(c.teamID, cfg.TeamID))
	if err != nil {
		return backendError(errOut, err)
	}
	printTasks(cfg, tasks, out)
	return exitcode.Success
}

func printTasks(cfg *config.Config, tasks []service.Task, out io.Writer) {
	if len(tasks) == 0 {
		if !cfg.Quiet {
			fmt.Fprintln(out, "no tasks found")
		}
		return
	}
	for _, task := range tasks {
		output.FormatTask(out, task)
	}
}
