package request_models

type AnswerRequest struct {
	Answer string `json:"answer"`
}
