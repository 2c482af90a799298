package api

// Defaults applied to retrieval queries.
const (
	DefaultSimilarityThreshold = 0.2
	DefaultTopK                = 5
)

// RetrievalRequest is the payload for a similarity search across one or more
// knowledge bases.
type RetrievalRequest struct {
	DatasetIDs          []string `json:"dataset_ids"`
	Question            string   `json:"question"`
	SimilarityThreshold float64  `json:"similarity_threshold"`
	TopK                int      `json:"top_k"`
}

// RetrievalResult is the ranked chunk list returned by a similarity search.
type RetrievalResult struct {
	Chunks []Chunk `json:"chunks"`
	Total  int     `json:"total"`
}

// Chunk is one retrieved passage. Depending on server version the text lives
// in either content_with_weight or content.
type Chunk struct {
	Content           string  `json:"content"`
	ContentWithWeight string  `json:"content_with_weight"`
	DocumentName      string  `json:"document_name"`
	Similarity        float64 `json:"similarity"`
}

// Text returns the chunk body, preferring the weighted form when present.
func (c Chunk) Text() string {
	if c.ContentWithWeight != "" {
		return c.ContentWithWeight
	}
	return c.Content
}
