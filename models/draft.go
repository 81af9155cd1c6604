package models

// DocumentDraft is unvalidated user input for creating a document or
// editing a branch body. Validation happens before any encryption.
type DocumentDraft struct {
	// Title is the plaintext title the user typed.
	Title string

	// Content is the plaintext line-based body.
	Content string
}
