package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"todoseed/internal/config"
	"todoseed/internal/exitcode"
	"todoseed/internal/output"
	"todoseed/internal/service"
)

const defaultSheetRange = "Sheet1!A1"

func init() {
	Register(&ExportCmd{})
	Register(&BackupCmd{})
}

// ExportCmd implements the export command: the team's tasks as CSV.
type ExportCmd struct {
	teamID string
}

func (c *ExportCmd) Name() string       { return "export" }
func (c *ExportCmd) Aliases() []string  { return nil }
func (c *ExportCmd) Synopsis() string   { return "Export a team's tasks as CSV" }
func (c *ExportCmd) Usage() string      { return "todoseed export [--team <id>]" }
func (c *ExportCmd) NeedsBackend() bool { return true }

func (c *ExportCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.teamID, "team", "", "")
}

func (c *ExportCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	if !noArgs(errOut, c.Name(), args) {
		return exitcode.UserError
	}

	tasks, err := svc.AllTeamTasks(ctx, orDefault(c.teamID, cfg.TeamID))
	if err != nil {
		return backendError(errOut, err)
	}

	names := make(map[string]string)
	records := make([][]string, 0, len(tasks))
	for _, task := range tasks {
		name, ok := names[task.CreatedBy]
		if !ok {
			name, err = svc.UserDisplayName(ctx, task.CreatedBy)
			switch {
			case errors.Is(err, service.ErrNotFound):
				name = task.CreatedBy
			case err != nil:
				return backendError(errOut, err)
			}
			names[task.CreatedBy] = name
		}
		records = append(records, output.ExportRecord(task, name))
	}

	if err := output.WriteCSV(out, records); err != nil {
		fmt.Fprintf(errOut, "error: failed to write csv: %v\n", err)
		return exitcode.UserError
	}
	return exitcode.Success
}

// BackupCmd implements the backup command: the team's tasks copied into a
// Google spreadsheet.
type BackupCmd struct {
	sheetID   string
	teamID    string
	cellRange string
}

func (c *BackupCmd) Name() string       { return "backup" }
func (c *BackupCmd) Aliases() []string  { return nil }
func (c *BackupCmd) Synopsis() string   { return "Copy a team's tasks to a spreadsheet" }
func (c *BackupCmd) Usage() string      { return "todoseed backup --sheet <id> [--team <id>] [--range <A1>]" }
func (c *BackupCmd) NeedsBackend() bool { return true }

func (c *BackupCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.sheetID, "sheet", "", "")
	fs.StringVar(&c.teamID, "team", "", "")
	fs.StringVar(&c.cellRange, "range", defaultSheetRange, "")
}

func (c *BackupCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	if !noArgs(errOut, c.Name(), args) {
		return exitcode.UserError
	}
	if c.sheetID == "" {
		fmt.Fprintln(errOut, "error: spreadsheet id required (--sheet)")
		return exitcode.UserError
	}

	tasks, err := svc.AllTeamTasks(ctx, orDefault(c.teamID, cfg.TeamID))
	if err != nil {
		return backendError(errOut, err)
	}

	rows := make([][]interface{}, 0, len(tasks)+1)
	rows = append(rows, output.SheetHeader)
	for _, task := range tasks {
		rows = append(rows, output.SheetRow(task))
	}

	if err := svc.WriteSheet(ctx, c.sheetID, orDefault(c.cellRange, defaultSheetRange), rows); err != nil {
		return backendError(errOut, err)
	}

	if !cfg.Quiet {
		fmt.Fprintf(out, "ok: %d tasks\n", len(tasks))
	}
	return exitcode.Success
}
