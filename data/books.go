package data

// The Book struct contains the data fields for a book record. The ID is
// assigned by the database on insert and is immutable thereafter. The year
// published is deliberately stored as text, not as a numeric or date type.
type Book struct {
	ID            int64  `json:"id"`
	Title         string `json:"title"`
	Author        string `json:"author"`
	YearPublished string `json:"year_published"`
	Review        int32  `json:"review"`
}
