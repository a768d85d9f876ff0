package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"todoseed/internal/config"
	"todoseed/internal/exitcode"
	"todoseed/internal/output"
	"todoseed/internal/seed"
	"todoseed/internal/service"
)

func init() {
	Register(&SeedCmd{})
	if err := DefaultRegistry.SetDefault("seed"); err != nil {
		panic(err)
	}
}

// SeedCmd implements the seed command.
// Handles both `todoseed` (no args) and `todoseed seed`.
type SeedCmd struct {
	teamID string
	userID string
}

// SetTeam sets the team ID (for testing).
func (c *SeedCmd) SetTeam(teamID string) {
	c.teamID = teamID
}

func (c *SeedCmd) Name() string       { return "seed" }
func (c *SeedCmd) Aliases() []string  { return nil }
func (c *SeedCmd) Synopsis() string   { return "Write the three test tasks" }
func (c *SeedCmd) Usage() string      { return "todoseed seed [--team <id>] [--user <uid>]" }
func (c *SeedCmd) NeedsBackend() bool { return true }

func (c *SeedCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.teamID, "team", "", "")
	fs.StringVar(&c.userID, "user", "", "")
}

// Run writes every fixture in order. Writes are not rolled back: a failure
// leaves the earlier documents in place and the completion line unprinted.
func (c *SeedCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	if !noArgs(errOut, c.Name(), args) {
		return exitcode.UserError
	}

	teamID := orDefault(c.teamID, cfg.TeamID)
	userID := orDefault(c.userID, cfg.UserID)

	for _, task := range seed.Tasks(teamID, userID) {
		id, err := svc.CreateTask(ctx, task)
		if err != nil {
			return backendError(errOut, err)
		}
		output.FormatCreated(out, task, id)
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "Seeding completed.")
	}
	return exitcode.Success
}
