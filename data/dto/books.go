package dto

// BookInput is the payload for the createBook and updateBook mutations.
// The ID field identifies the record to update; it is ignored on create.
type BookInput struct {
	ID            int64  `json:"id"`
	Title         string `json:"title"`
	Author        string `json:"author"`
	YearPublished string `json:"year_published"`
	Review        int32  `json:"review"`
}
