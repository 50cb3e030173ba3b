package entity

// ListFilter carries pagination and an optional substring search for listing
// queries. Search matches against the field each repository documents
// (first_name for accounts, name for establishments).
type ListFilter struct {
	Take   int
	Skip   int
	Search string
}
