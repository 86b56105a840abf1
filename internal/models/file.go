package models

// FileRecord describes one stored image: the generated filename, its public
// URL and the venture (idSpace) it belongs to. The idSpace link is by
// convention only, there is no foreign key to the ventures document.
type FileRecord struct {
	Filename    string `json:"filename"`
	URL         string `json:"url"`
	IDSpace     string `json:"idSpace"`
	Description string `json:"description"`
}
