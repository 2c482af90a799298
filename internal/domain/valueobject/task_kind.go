package valueobject

import (
	"fmt"
	"strings"
)

// TaskKind identifies a long-running enrichment pipeline that can be started
// and traced on a knowledge base.
type TaskKind string

// Task kind constants.
const (
	TaskKindGraphRAG TaskKind = "graphrag"
	TaskKindRaptor   TaskKind = "raptor"
)

// validTaskKinds contains all valid task kinds.
var validTaskKinds = map[TaskKind]bool{
	TaskKindGraphRAG: true,
	TaskKindRaptor:   true,
}

// NewTaskKind creates a new TaskKind with validation. Input is lowercased so
// operators can type either casing on the command line.
func NewTaskKind(kind string) (TaskKind, error) {
	k := TaskKind(strings.ToLower(strings.TrimSpace(kind)))
	if !validTaskKinds[k] {
		return "", fmt.Errorf("invalid task kind %q (valid: %s, %s)", kind, TaskKindGraphRAG, TaskKindRaptor)
	}
	return k, nil
}

// String returns the string representation of the task kind.
func (k TaskKind) String() string {
	return string(k)
}

// Display returns the uppercase form used in operator-facing output.
func (k TaskKind) Display() string {
	return strings.ToUpper(string(k))
}

// AllTaskKinds returns all valid task kinds.
func AllTaskKinds() []TaskKind {
	kinds := make([]TaskKind, 0, len(validTaskKinds))
	for kind := range validTaskKinds {
		kinds = append(kinds, kind)
	}
	return kinds
}
