package models

// Post is an authored text post. Rows are never mutated or deleted.
type Post struct {
	ID          int64  `db:"id"`
	CreatedDate string `db:"created_date"`
	Title       string `db:"title"`
	Body        string `db:"body"`
	AuthorID    int64  `db:"authorid"`
}

// PostRequest carries the create-post form fields. The author is never
// part of the request; it is stamped from the session identity at insert
// time.
type PostRequest struct {
	Title string `form:"title"`
	Body  string `form:"body"`
}
