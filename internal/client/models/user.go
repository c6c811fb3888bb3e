package models

// User is a row of the registered-users table. Values are never modified
// after a fetch.
type User struct {
	ID        int
	FirstName string
	LastName  string
	Age       int
	Gender    string
	ImageURL  string
}
