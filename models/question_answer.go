package models

// QuestionAnswer links an answer to its owning question and routes to the
// next question in the flow. NextQuestionID is nil for terminal answers.
// A given answer appears at most once under a given question.
type QuestionAnswer struct {
	ID             uint  `gorm:"primaryKey" json:"id"`
	QuestionID     uint  `gorm:"not null;uniqueIndex:idx_question_answer" json:"question_id"`
	AnswerID       uint  `gorm:"not null;uniqueIndex:idx_question_answer" json:"answer_id"`
	NextQuestionID *uint `gorm:"index" json:"next_question_id"`

	// References
	Question     Question  `gorm:"foreignKey:QuestionID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	Answer       Answer    `gorm:"foreignKey:AnswerID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	NextQuestion *Question `gorm:"foreignKey:NextQuestionID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`
}
