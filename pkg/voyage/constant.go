package voyage

const (
	// Endpoint is the Voyage AI embeddings API endpoint.
	Endpoint = "https://api.voyageai.com/v1/embeddings"

	// Model is the embedding model used for all requests.
	Model = "voyage-3"

	// VectorSize is the embedding dimension produced by Model.
	VectorSize = 1024
)
