package domain

// User is the minimal identity attached to the pipeline state. Session and
// login bookkeeping live outside the pipeline.
type User struct {
	ID    string
	Email string
}
