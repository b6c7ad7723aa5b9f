package models

// PageSize is the fixed number of items per page for every collection
// endpoint.
const PageSize = 20

// Page is the uniform envelope of every collection response.
//
// Next and Previous are absolute URLs of the adjacent pages, or null when
// the page is the last or the first respectively. Results is never null;
// an empty page serializes as an empty array.
type Page struct {
	Count    int64   `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  any     `json:"results"`
}
