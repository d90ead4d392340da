package types

// IndexDocument is the decoded text of one fetched index page.
type IndexDocument struct {
	URL     string
	Content string
}
