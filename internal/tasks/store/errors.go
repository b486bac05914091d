package store

// ValidationError reports rejected input at the store's write boundary.
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

var (
	ErrTitleAndDescriptionRequired = &ValidationError{Field: "title,description", Msg: "Title and Description are required!"}
	ErrTitleRequired               = &ValidationError{Field: "title", Msg: "Title is required!"}
	ErrDescriptionRequired         = &ValidationError{Field: "description", Msg: "Description is required!"}
)

// validateNew applies the add-task rules in priority order.
func validateNew(titleBlank, descriptionBlank bool) error {
	switch {
	case titleBlank && descriptionBlank:
		return ErrTitleAndDescriptionRequired
	case titleBlank:
		return ErrTitleRequired
	case descriptionBlank:
		return ErrDescriptionRequired
	}
	return nil
}
