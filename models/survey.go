package models

// Survey is the root of a branching questionnaire graph
type Survey struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"not null;size:255" json:"name"`
	Sort int    `gorm:"default:0" json:"sort"`

	Questions []Question `gorm:"foreignKey:SurveyID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"questions"`
}
