package survey

import (
	"bytes"
	"encoding/json"
)

// SurveyDocument is the nested projection of a survey graph that the
// client renders: questions in survey order, each with its answers and
// the resolved routing to the next question.
type SurveyDocument struct {
	ID        uint               `json:"id"`
	Name      string             `json:"name"`
	Questions []QuestionDocument `json:"questions"`
}

type QuestionDocument struct {
	ID        uint             `json:"id"`
	Text      string           `json:"text"`
	ShortText string           `json:"short_text"`
	Type      string           `json:"type"`
	Meta      json.RawMessage  `json:"meta"`
	Answers   []AnswerDocument `json:"answers"`
}

type AnswerDocument struct {
	ID             uint   `json:"id"`
	Text           string `json:"text"`
	Sort           int    `json:"sort"`
	QuestionID     *uint  `json:"question_id"`
	NextQuestionID *uint  `json:"next_question_id"`
}

// UpdatePayload is the body of a survey update. Clients send either a
// bare array of question edits or an object with an optional name and an
// optional questions list.
type UpdatePayload struct {
	Name      *string
	Questions []QuestionEdit
}

// QuestionEdit mutates an existing question. Pointer fields distinguish
// an absent key from a zero value: id, text, short_text and type are
// required, meta is overwritten only when supplied.
type QuestionEdit struct {
	ID        *uint           `json:"id"`
	Text      *string         `json:"text"`
	ShortText *string         `json:"short_text"`
	Type      *string         `json:"type"`
	Meta      json.RawMessage `json:"meta"`
	Answers   []AnswerEdit    `json:"answers"`
}

// AnswerEdit mutates an existing answer and its link. id, text and
// question_id are required; sort is overwritten only when supplied. A nil
// next_question_id (absent or null) clears the link's routing.
type AnswerEdit struct {
	ID             *uint   `json:"id"`
	Text           *string `json:"text"`
	Sort           *int    `json:"sort"`
	QuestionID     *uint   `json:"question_id"`
	NextQuestionID *uint   `json:"next_question_id"`
}

func (p *UpdatePayload) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) > 0 && trimmed[0] == '[' {
		return json.Unmarshal(data, &p.Questions)
	}

	var obj struct {
		Name      *string        `json:"name"`
		Questions []QuestionEdit `json:"questions"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}

	p.Name = obj.Name
	p.Questions = obj.Questions
	return nil
}
