package forms

// FormField is the value of a form input and the result of its last validation.
type FormField[T any] struct {
	Value     T
	ErrorCode ErrorCode
}

func (f FormField[T]) HasError() bool {
	return f.ErrorCode > NoError
}

func (f FormField[T]) IsValid() bool {
	return !f.HasError()
}
