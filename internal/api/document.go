package api

import "ragflowctl/internal/domain/valueobject"

// Paging defaults for document listings.
const (
	DefaultDocumentPage     = 1
	DefaultDocumentPageSize = 20
)

// Document is an uploaded file tracked by a knowledge base.
type Document struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Run        string `json:"run"`
	TokenCount int    `json:"token_count"`
	ChunkCount int    `json:"chunk_count"`
}

// Status returns the document's normalized run status.
func (d Document) Status() valueobject.RunStatus {
	return valueobject.ParseRunStatus(d.Run)
}

// DocumentPage is one page of a document listing.
type DocumentPage struct {
	Docs  []Document `json:"docs"`
	Total int        `json:"total"`
}

// AllDone returns true if every document on the page finished parsing. An
// empty page reports false since there is nothing ready to retrieve against.
func (p DocumentPage) AllDone() bool {
	if len(p.Docs) == 0 {
		return false
	}
	for _, doc := range p.Docs {
		if !doc.Status().IsDone() {
			return false
		}
	}
	return true
}

// ParseDocumentsRequest is the payload for triggering chunking on a batch of
// documents.
type ParseDocumentsRequest struct {
	DocumentIDs []string `json:"document_ids"`
}
