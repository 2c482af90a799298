package render

import (
	"fmt"
	"io"
	"strings"

	"ragflowctl/internal/api"
)

const (
	// nameColumnWidth is the display width of the document name column.
	nameColumnWidth = 40
	// nameTruncateAt is where long names are cut before the ellipsis.
	nameTruncateAt = 37

	tableRuleWidth = 80

	// unknownStatus is displayed when the service omitted a run state.
	unknownStatus = "UNKNOWN"
)

// DocumentTable writes the parsing status table for one page of documents.
func DocumentTable(w io.Writer, docs []api.Document) {
	fmt.Fprintf(w, "%-*s | %-10s | %-10s | %-10s\n", nameColumnWidth, "Name", "Status", "Tokens", "Chunks")
	fmt.Fprintln(w, strings.Repeat("-", tableRuleWidth))

	for _, doc := range docs {
		fmt.Fprintf(w, "%-*s | %-10s | %-10d | %-10d\n",
			nameColumnWidth, truncateName(doc.Name), statusLabel(doc), doc.TokenCount, doc.ChunkCount)
	}
}

// DatasetTable writes the knowledge base listing.
func DatasetTable(w io.Writer, datasets []api.Dataset) {
	fmt.Fprintf(w, "%-34s | %-30s | %-6s\n", "ID", "Name", "Docs")
	fmt.Fprintln(w, strings.Repeat("-", tableRuleWidth))

	for _, ds := range datasets {
		fmt.Fprintf(w, "%-34s | %-30s | %-6d\n", ds.ID, truncateRunes(ds.Name, 30), ds.DocumentCount)
	}
}

// truncateName shortens long document names so the table stays aligned.
func truncateName(name string) string {
	runes := []rune(name)
	if len(runes) > nameTruncateAt {
		return string(runes[:nameTruncateAt]) + "..."
	}
	return name
}

// truncateRunes cuts s to at most width characters.
func truncateRunes(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width-3]) + "..."
}

func statusLabel(doc api.Document) string {
	if strings.TrimSpace(doc.Run) == "" {
		return unknownStatus
	}
	return doc.Status().String()
}
