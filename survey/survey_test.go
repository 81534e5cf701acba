package survey

import (
	"fmt"
	"strings"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/artw-company/l14/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// A named shared-cache memory database so every pooled connection
	// sees the same data within a test.
	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	err = db.AutoMigrate(&models.Survey{}, &models.Question{}, &models.Answer{}, &models.QuestionAnswer{})
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

// fixture mirrors the demo editing scenario: q1 routes "Yes" to q2 and
// "No" nowhere, q2's answers are both terminal. A second survey exists to
// exercise cross-survey validation.
type fixture struct {
	survey         models.Survey
	q1, q2         models.Question
	a1, a2, a3, a4 models.Answer
	l1, l2, l3, l4 models.QuestionAnswer

	other  models.Survey
	otherQ models.Question
}

func seedGraph(t *testing.T, db *gorm.DB) fixture {
	t.Helper()

	var f fixture

	f.survey = models.Survey{Name: "Simple survey"}
	mustCreate(t, db, &f.survey)

	f.q1 = models.Question{
		SurveyID:  f.survey.ID,
		Text:      "Do you like travelling?",
		ShortText: "Travelling",
		Type:      models.QuestionTypeRadio,
		Meta:      []byte(`{}`),
	}
	mustCreate(t, db, &f.q1)

	f.q2 = models.Question{
		SurveyID:  f.survey.ID,
		Text:      "Which transport do you prefer?",
		ShortText: "Transport",
		Type:      models.QuestionTypeRadio,
		Meta:      []byte(`{}`),
	}
	mustCreate(t, db, &f.q2)

	f.a1 = models.Answer{Text: "Yes", Sort: 2}
	f.a2 = models.Answer{Text: "No", Sort: 1}
	f.a3 = models.Answer{Text: "Plane", Sort: 0}
	f.a4 = models.Answer{Text: "Train", Sort: 1}
	for _, a := range []*models.Answer{&f.a1, &f.a2, &f.a3, &f.a4} {
		mustCreate(t, db, a)
	}

	f.l1 = models.QuestionAnswer{QuestionID: f.q1.ID, AnswerID: f.a1.ID, NextQuestionID: &f.q2.ID}
	f.l2 = models.QuestionAnswer{QuestionID: f.q1.ID, AnswerID: f.a2.ID}
	f.l3 = models.QuestionAnswer{QuestionID: f.q2.ID, AnswerID: f.a3.ID}
	f.l4 = models.QuestionAnswer{QuestionID: f.q2.ID, AnswerID: f.a4.ID}
	for _, l := range []*models.QuestionAnswer{&f.l1, &f.l2, &f.l3, &f.l4} {
		mustCreate(t, db, l)
	}

	f.other = models.Survey{Name: "Another survey"}
	mustCreate(t, db, &f.other)
	f.otherQ = models.Question{
		SurveyID:  f.other.ID,
		Text:      "Unrelated question",
		ShortText: "Unrelated",
		Type:      models.QuestionTypeRadio,
		Meta:      []byte(`{}`),
	}
	mustCreate(t, db, &f.otherQ)

	return f
}

func mustCreate(t *testing.T, db *gorm.DB, value any) {
	t.Helper()
	if err := db.Create(value).Error; err != nil {
		t.Fatalf("failed to create fixture %T: %v", value, err)
	}
}

func uintPtr(v uint) *uint    { return &v }
func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }

// questionEdit builds a fully valid edit for a question, to be tweaked by
// individual tests.
func questionEdit(q models.Question) QuestionEdit {
	return QuestionEdit{
		ID:        uintPtr(q.ID),
		Text:      strPtr(q.Text),
		ShortText: strPtr(q.ShortText),
		Type:      strPtr(q.Type),
	}
}

func answerEdit(a models.Answer, questionID uint, next *uint) AnswerEdit {
	return AnswerEdit{
		ID:             uintPtr(a.ID),
		Text:           strPtr(a.Text),
		QuestionID:     uintPtr(questionID),
		NextQuestionID: next,
	}
}

func findAnswerDoc(t *testing.T, q QuestionDocument, id uint) AnswerDocument {
	t.Helper()
	for _, a := range q.Answers {
		if a.ID == id {
			return a
		}
	}
	t.Fatalf("answer %d not found in question %d document", id, q.ID)
	return AnswerDocument{}
}

func findQuestionDoc(t *testing.T, doc *SurveyDocument, id uint) QuestionDocument {
	t.Helper()
	for _, q := range doc.Questions {
		if q.ID == id {
			return q
		}
	}
	t.Fatalf("question %d not found in survey document", id)
	return QuestionDocument{}
}
