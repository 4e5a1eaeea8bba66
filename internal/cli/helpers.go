// Package cli contains the cobra commands for wrk. Commands are thin glue:
// they parse arguments, call the item service, and format output. All
// semantics live in internal/app and below.
package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/example/wrk/internal/ctxutil"
	"github.com/example/wrk/internal/models"
)

// actorContext returns a context carrying name as the acting agent. Services
// use it as the fallback author or agent when no flag is given.
func actorContext(name string) context.Context {
	return ctxutil.WithActor(context.Background(), name)
}

// statusLabel returns a colored status string for terminal output.
func statusLabel(status string) string {
	switch status {
	case models.StatusOpen:
		return color.New(color.FgGreen).Sprint(status)
	case models.StatusInProgress:
		return color.New(color.FgYellow).Sprint(status)
	case models.StatusClosed:
		return color.New(color.FgHiBlack).Sprint(status)
	default:
		return status
	}
}

// itemLine formats the one-line list representation of an item.
func itemLine(it *models.WorkItem) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s  P%d [%s] %s  %s", it.ID, it.Priority, it.Type, statusLabel(it.Status), it.Title)
	if len(it.Labels) > 0 {
		fmt.Fprintf(&b, "  (%s)", strings.Join(it.Labels, ", "))
	}
	if it.Assignee != "" {
		fmt.Fprintf(&b, "  @%s", it.Assignee)
	}
	return b.String()
}
