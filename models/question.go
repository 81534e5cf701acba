package models

import "gorm.io/datatypes"

// Question types. Radio accepts exactly one choice, checkbox any number.
const (
	QuestionTypeRadio    = "radio"
	QuestionTypeCheckbox = "checkbox"
)

// Question belongs to exactly one Survey. Meta holds free-form client
// data such as the editor canvas position.
type Question struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	SurveyID  uint           `gorm:"not null;index" json:"survey_id"`
	Text      string         `gorm:"type:text;not null" json:"text"`
	ShortText string         `gorm:"not null;size:255" json:"short_text"`
	Type      string         `gorm:"not null;size:20" json:"type"`
	Meta      datatypes.JSON `gorm:"type:jsonb" json:"meta"`

	// Links this question owns, one per selectable answer.
	Links []QuestionAnswer `gorm:"foreignKey:QuestionID" json:"-"`
}
