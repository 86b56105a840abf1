package models

// ImageRef is a snapshot of an image link embedded in a venture at edit time.
// It is a copy, not a live reference to a file record.
type ImageRef struct {
	Link        string `json:"link"`
	Description string `json:"description"`
}

// Venture is one listing inside a user's ventures document. IDSpace is unique
// within that user's list.
type Venture struct {
	IDSpace     string     `json:"idSpace"`
	Name        string     `json:"name"`
	Price       string     `json:"price"` // currency-formatted, e.g. "R$ 250.000"
	Images      []ImageRef `json:"images"`
	Description string     `json:"description"`
	Location    string     `json:"location"`
}
