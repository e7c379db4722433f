package retrieval

const (
	DefaultTopK = 5
)

type SearchInput struct {
	Query    string
	TopK     int
	MinScore float64
}

type SearchOutput struct {
	Documents []RetrievedDocument
}

// RetrievedDocument is one chunk of context returned by similarity search.
type RetrievedDocument struct {
	ID       string
	FileName string
	Content  string
	Score    float64
}
