package dto

// QuestionInput is the request body for submitting a question.
// A null ID creates a new question; a present ID updates the existing one.
type QuestionInput struct {
	// Question identifier; null when creating a new question
	ID *int64 `json:"id" format:"int64" extensions:"x-nullable" doc:"Question identifier; null when creating a new question" example:"1"`
	// Text of the question; must not be blank
	QuestionText string `json:"questionText" validate:"required,notblank" doc:"Text of the question; must not be blank" example:"What is this?"`
}

// Equal reports whether both inputs carry the same ID value and text.
func (q QuestionInput) Equal(o QuestionInput) bool {
	if q.QuestionText != o.QuestionText {
		return false
	}
	if q.ID == nil || o.ID == nil {
		return q.ID == nil && o.ID == nil
	}
	return *q.ID == *o.ID
}

// DecodeQuestionInput decodes and validates a QuestionInput request body.
func DecodeQuestionInput(data []byte) (QuestionInput, error) {
	return Decode[QuestionInput](data)
}
