package config

import (
	"log"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/artw-company/l14/models"
)

type seedAnswer struct {
	text string
	sort int
	next string // key of the next question, "" for terminal answers
}

type seedQuestion struct {
	key       string
	text      string
	shortText string
	qType     string
	meta      string
	answers   []seedAnswer
}

// Seed loads the demo travel survey when the store is empty. Safe to call
// on every start.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Survey{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	questions := []seedQuestion{
		{
			key: "purpose", text: "What is the purpose of your trip?", shortText: "General",
			qType: models.QuestionTypeCheckbox, meta: `{"position":{"x":0,"y":0}}`,
			answers: []seedAnswer{
				{text: "Vacation", sort: 25, next: "age"},
				{text: "Business trip", sort: 26, next: "age"},
				{text: "Family travel", sort: 27, next: "age"},
			},
		},
		{
			key: "age", text: "How old are you?", shortText: "Age group",
			qType: models.QuestionTypeRadio, meta: `{"position":{"x":300,"y":0}}`,
			answers: []seedAnswer{
				{text: "Under 18", sort: 1, next: "priorities"},
				{text: "18 to 60", sort: 2, next: "priorities"},
				{text: "Over 60", sort: 3, next: "season"},
			},
		},
		{
			key: "priorities", text: "What matters most to you when travelling?", shortText: "Priorities",
			qType: models.QuestionTypeCheckbox, meta: `{"position":{"x":600,"y":-150}}`,
			answers: []seedAnswer{
				{text: "Comfort", sort: 19, next: "budget"},
				{text: "Savings", sort: 20, next: "budget"},
				{text: "New experiences", sort: 21, next: "budget"},
			},
		},
		{
			key: "season", text: "Which season do you prefer for travelling?", shortText: "Season",
			qType: models.QuestionTypeCheckbox, meta: `{"position":{"x":600,"y":150}}`,
			answers: []seedAnswer{
				{text: "Summer", sort: 22, next: "budget"},
				{text: "Winter", sort: 23, next: "budget"},
				{text: "Any time", sort: 24, next: "budget"},
			},
		},
		{
			key: "budget", text: "What is your approximate budget?", shortText: "Finances",
			qType: models.QuestionTypeCheckbox, meta: `{"position":{"x":900,"y":0}}`,
			answers: []seedAnswer{
				{text: "Under $500", sort: 16, next: "duration"},
				{text: "$500 to $1000", sort: 17, next: "duration"},
				{text: "Over $1000", sort: 18, next: "duration"},
			},
		},
		{
			key: "duration", text: "How long is the trip you are planning?", shortText: "Duration",
			qType: models.QuestionTypeCheckbox, meta: `{"position":{"x":1200,"y":0}}`,
			answers: []seedAnswer{
				{text: "Up to a week", sort: 7, next: "services"},
				{text: "One to two weeks", sort: 8, next: "services"},
				{text: "More than two weeks", sort: 9, next: "services"},
			},
		},
		{
			key: "services", text: "Do you need any additional services?", shortText: "Extras",
			qType: models.QuestionTypeRadio, meta: `{"position":{"x":1500,"y":0}}`,
			answers: []seedAnswer{
				{text: "Airport transfer", sort: 10, next: "transport"},
				{text: "Children's programs", sort: 11, next: "tours"},
				{text: "Nothing needed", sort: 12, next: "tours"},
			},
		},
		{
			key: "transport", text: "Which kind of transport do you prefer?", shortText: "Transport",
			qType: models.QuestionTypeCheckbox, meta: `{"position":{"x":1800,"y":-150}}`,
			answers: []seedAnswer{
				{text: "Plane", sort: 4, next: "benefits"},
				{text: "Train", sort: 5, next: "benefits"},
				{text: "Car", sort: 6, next: "benefits"},
			},
		},
		{
			key: "tours", text: "Would you like exclusive guided tours?", shortText: "Tours",
			qType: models.QuestionTypeCheckbox, meta: `{"position":{"x":1800,"y":150}}`,
			answers: []seedAnswer{
				{text: "Yes", sort: 13, next: "benefits"},
				{text: "No", sort: 14, next: "benefits"},
				{text: "Maybe", sort: 15, next: "benefits"},
			},
		},
		{
			key: "benefits", text: "Are you eligible for any discounts?", shortText: "Discounts",
			qType: models.QuestionTypeCheckbox, meta: `{"position":{"x":2100,"y":0}}`,
			answers: []seedAnswer{
				{text: "Student", sort: 28},
				{text: "Veteran", sort: 29},
				{text: "Disability", sort: 30},
			},
		},
	}

	return db.Transaction(func(tx *gorm.DB) error {
		survey := models.Survey{Name: "Main survey"}
		if err := tx.Create(&survey).Error; err != nil {
			return err
		}

		// Two passes: questions first so links can point forward in the flow.
		created := make(map[string]*models.Question, len(questions))
		for _, sq := range questions {
			q := models.Question{
				SurveyID:  survey.ID,
				Text:      sq.text,
				ShortText: sq.shortText,
				Type:      sq.qType,
				Meta:      datatypes.JSON(sq.meta),
			}
			if err := tx.Create(&q).Error; err != nil {
				return err
			}
			created[sq.key] = &q
		}

		for _, sq := range questions {
			question := created[sq.key]
			for _, sa := range sq.answers {
				answer := models.Answer{Text: sa.text, Sort: sa.sort}
				if err := tx.Create(&answer).Error; err != nil {
					return err
				}

				link := models.QuestionAnswer{
					QuestionID: question.ID,
					AnswerID:   answer.ID,
				}
				if sa.next != "" {
					next := created[sa.next]
					link.NextQuestionID = &next.ID
				}
				if err := tx.Create(&link).Error; err != nil {
					return err
				}
			}
		}

		log.Printf("Seed: created survey %q with %d questions", survey.Name, len(questions))
		return nil
	})
}
