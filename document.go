package quasar

type DocumentID int

type Document struct {
	Title   string `json:"title" db:"title"`
	Content string `json:"content" db:"content"`
	URL     string `json:"url" db:"url"`
}

func NewDocument(title, content, url string) Document {
	return Document{
		Title:   title,
		Content: content,
		URL:     url,
	}
}
