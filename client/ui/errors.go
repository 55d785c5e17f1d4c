package ui

// ActionableError carries a message the overlay can show to the player as is.
type ActionableError struct {
	Message string
}

func (e *ActionableError) Error() string {
	return e.Message
}
