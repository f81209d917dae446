package models

// Product represents a cake in the catalog.
//
// IDs are positive integers assigned by the store (max existing + 1). The
// numeric id doubles as the Mongo primary key, matching the relational
// layout (id, name, description, price, stock).
type Product struct {
	ID          int64   `bson:"_id" json:"id"`
	Name        string  `bson:"name" json:"name"`
	Description string  `bson:"description,omitempty" json:"description,omitempty"`
	Price       float64 `bson:"price" json:"price"`
	Stock       int64   `bson:"stock" json:"stock"`
}

// ProductFields carries the mutable fields of a product for create and
// update requests. The id is never client-supplied.
type ProductFields struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Stock       int64   `json:"stock"`
}

// ChatRequest is the body of a chatbot request.
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatResponse tags the reply with where it came from.
type ChatResponse struct {
	Source string `json:"source"` // SourceLocal or SourceAI
	Reply  string `json:"reply"`
}

const (
	// SourceLocal marks replies answered from the catalog.
	SourceLocal = "local"
	// SourceAI marks replies produced by the AI fallback.
	SourceAI = "ai"
)
