package api

// Defaults applied when creating a knowledge base.
const (
	DefaultPermission  = "me"
	DefaultChunkMethod = "naive"
)

// CreateDatasetRequest is the payload for creating a knowledge base.
type CreateDatasetRequest struct {
	Name        string `json:"name"`
	Permission  string `json:"permission"`
	ChunkMethod string `json:"chunk_method"`
}

// Dataset is a knowledge base as reported by the service.
type Dataset struct {
	ID            string       `json:"id"`
	Name          string       `json:"name"`
	Permission    string       `json:"permission,omitempty"`
	ChunkMethod   string       `json:"chunk_method,omitempty"`
	DocumentCount int          `json:"document_count,omitempty"`
	ParserConfig  ParserConfig `json:"parser_config,omitempty"`
}

// EnsureParserConfig returns the dataset's parser configuration, initializing
// an empty one when the service omitted it.
func (d *Dataset) EnsureParserConfig() ParserConfig {
	if d.ParserConfig == nil {
		d.ParserConfig = make(ParserConfig)
	}
	return d.ParserConfig
}

// Defaults applied when listing knowledge bases.
const (
	DefaultDatasetPage     = 1
	DefaultDatasetPageSize = 20
)

// DatasetListQuery narrows a dataset listing. Zero fields are omitted from
// the query string.
type DatasetListQuery struct {
	ID       string
	Page     int
	PageSize int
}

// UpdateDatasetRequest is the payload for mutating a knowledge base. Only the
// parser configuration is updatable from this client; the full object is sent
// back to the service so settings unknown to this client survive the write.
type UpdateDatasetRequest struct {
	ParserConfig ParserConfig `json:"parser_config"`
}

// ParserConfig is the ingestion pipeline configuration attached to a dataset.
// The service owns its schema and grows it over time, so it is carried as a
// loose object and mutated in place rather than remodeled field by field.
type ParserConfig map[string]any

// EnableGraphRAG turns on knowledge-graph extraction, preserving any other
// settings already present in the graphrag section.
func (c ParserConfig) EnableGraphRAG() {
	c.section("graphrag")["use_graphrag"] = true
}

// EnableRaptor turns on hierarchical summarization, preserving any other
// settings already present in the raptor section.
func (c ParserConfig) EnableRaptor() {
	c.section("raptor")["use_raptor"] = true
}

// section returns the named nested object, creating or replacing it when the
// existing value is absent or not an object.
func (c ParserConfig) section(name string) map[string]any {
	if m, ok := c[name].(map[string]any); ok {
		return m
	}
	m := make(map[string]any)
	c[name] = m
	return m
}
