// Package output provides formatters for CLI output.
package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"todoseed/internal/service"
)

// sheetTimeLayout matches JavaScript's Date.toISOString.
const sheetTimeLayout = "2006-01-02T15:04:05.000Z"

// ExportHeader is the header row of the team CSV export.
var ExportHeader = []string{"Date", "User Name", "Content", "Priority", "Status"}

// SheetHeader is the header row of a spreadsheet backup.
var SheetHeader = []interface{}{"Created At", "Content", "Priority", "Secret", "Completed"}

// FormatCreated formats the line printed after a seeded write.
// Format: "Created task: {CONTENT} (ID: {ID})\n"
func FormatCreated(w io.Writer, task service.Task, id string) {
	fmt.Fprintf(w, "Created task: %s (ID: %s)\n", task.Content, id)
}

// FormatTask formats a task line for the my/team listings.
// Format: "P{N}  [ ]  {CONTENT}  ({ID})\n"; completed tasks show [x],
// secret tasks get a " [secret]" suffix.
func FormatTask(w io.Writer, task service.Task) {
	check := "[ ]"
	if task.IsCompleted {
		check = "[x]"
	}
	line := fmt.Sprintf("P%d  %s  %s  (%s)", task.Priority, check, normalizeContent(task.Content), task.ID)
	if task.IsSecret {
		line += " [secret]"
	}
	fmt.Fprintln(w, line)
}

// ExportRecord builds one CSV export row for task.
func ExportRecord(task service.Task, userName string) []string {
	status := "Pending"
	if task.IsCompleted {
		status = "Completed"
	}
	return []string{
		task.CreatedAt.UTC().Format(time.DateOnly),
		userName,
		task.Content,
		strconv.Itoa(task.Priority),
		status,
	}
}

// WriteCSV writes ExportHeader followed by records.
func WriteCSV(w io.Writer, records [][]string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(ExportHeader); err != nil {
		return err
	}
	if err := cw.WriteAll(records); err != nil {
		return err
	}
	return cw.Error()
}

// SheetRow builds one spreadsheet backup row for task.
// A missing creation time becomes an empty cell.
func SheetRow(task service.Task) []interface{} {
	created := ""
	if !task.CreatedAt.IsZero() {
		created = task.CreatedAt.UTC().Format(sheetTimeLayout)
	}
	return []interface{}{created, task.Content, task.Priority, task.IsSecret, task.IsCompleted}
}

// normalizeContent normalizes task content for display.
// - Empty or whitespace-only content becomes "(untitled)"
// - Newlines are replaced with spaces
func normalizeContent(content string) string {
	content = strings.ReplaceAll(content, "\r", " ")
	content = strings.ReplaceAll(content, "\n", " ")

	if strings.TrimSpace(content) == "" {
		return "(untitled)"
	}
	return content
}
