package render

import (
	"fmt"
	"io"
	"strings"

	"ragflowctl/internal/api"
)

// previewLimit is how many characters of a chunk are shown per result.
const previewLimit = 150

// unknownDocument is displayed when a chunk carries no source document name.
const unknownDocument = "Unknown Document"

// ChunkList writes numbered retrieval results with truncated previews.
func ChunkList(w io.Writer, chunks []api.Chunk) {
	for i, chunk := range chunks {
		name := chunk.DocumentName
		if name == "" {
			name = unknownDocument
		}

		fmt.Fprintf(w, "%d. [%.4f] %s\n", i+1, chunk.Similarity, name)
		fmt.Fprintf(w, "   \"%s\"\n\n", preview(chunk.Text()))
	}
}

// preview cuts the chunk body down to previewLimit characters, flattening
// newlines and marking the cut with an ellipsis. Short bodies pass through
// untouched.
func preview(content string) string {
	runes := []rune(content)
	if len(runes) <= previewLimit {
		return content
	}
	cut := strings.ReplaceAll(string(runes[:previewLimit]), "\n", " ")
	return cut + "..."
}
