package qaa

// QAA is a single question and answer record.
type QAA struct {
	ID       int64  `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// QuestionRequest is the body of create and question update calls.
type QuestionRequest struct {
	Question string `json:"question" binding:"required,min=1,max=500"`
}

// AnswerRequest is the body of answer update calls.
type AnswerRequest struct {
	Answer string `json:"answer" binding:"required,min=1,max=500"`
}

// IDRequest binds the record identifier from the request path.
type IDRequest struct {
	ID int64 `uri:"id" binding:"required,gt=0"`
}
