// Package render formats operator-facing output: the progress bar, the
// document status table, and retrieval result previews. Everything here
// writes plain text to an io.Writer so command tests can capture it.
package render

import (
	"fmt"
	"io"
	"strings"

	"ragflowctl/internal/api"
	"ragflowctl/internal/domain/valueobject"
)

const (
	// barWidth is the character width of the progress bar.
	barWidth = 20

	barFillRune  = "█"
	barEmptyRune = "-"
)

// defaultProgressMessage stands in when a task reports no status line.
const defaultProgressMessage = "Processing..."

// Bar renders a fixed-width progress bar for a fraction in [0, 1]. The fill
// count truncates, so half done is exactly half the bar.
func Bar(fraction float64) string {
	percent := fraction * 100

	filled := int(barWidth * percent / 100)
	if filled < 0 {
		filled = 0
	}
	if filled > barWidth {
		filled = barWidth
	}

	return strings.Repeat(barFillRune, filled) + strings.Repeat(barEmptyRune, barWidth-filled)
}

// TaskStatus writes one progress snapshot of an enrichment task.
func TaskStatus(w io.Writer, kind valueobject.TaskKind, task *api.TraceTask) {
	message := task.ProgressMessage
	if message == "" {
		message = defaultProgressMessage
	}

	fmt.Fprintf(w, "Task: %s | ID: %s\n", kind.Display(), task.ID)
	fmt.Fprintf(w, "Progress: [%s] %.1f%%\n", Bar(task.Progress), task.Progress*100)
	fmt.Fprintf(w, "Status: %s\n", message)

	if task.Complete() {
		fmt.Fprintln(w, "\n✅ Task Complete!")
	}
}
