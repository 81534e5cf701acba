package models

// Answer is a selectable option. It is attached to questions through
// QuestionAnswer links; in practice each answer sits behind one link.
type Answer struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Text string `gorm:"not null;size:255" json:"text"`
	Sort int    `gorm:"default:0" json:"sort"` // ascending display order
}
