package survey

import (
	"context"
	"fmt"
	"strconv"

	"gorm.io/datatypes"

	"github.com/artw-company/l14/fault"
	"github.com/artw-company/l14/models"
)

// Updater applies a batch of question, answer and link edits to an
// existing survey. Every write is an overwrite of an existing row, so
// re-applying the same payload yields the same state; the update path
// never creates or deletes questions, answers or links.
type Updater struct {
	repo Repository
}

func NewUpdater(repo Repository) *Updater {
	return &Updater{repo: repo}
}

// Update validates and applies the payload, then returns the freshly
// serialized survey. The name change, when present, is saved before the
// question transaction opens and is not undone by a later validation
// failure. All question, answer and link edits run inside one transaction
// that commits fully or not at all; the first violation aborts it.
func (u *Updater) Update(ctx context.Context, surveyID uint, payload UpdatePayload) (*SurveyDocument, error) {
	s, err := u.repo.FindSurveyByID(ctx, surveyID)
	if err != nil {
		return nil, err
	}

	if payload.Name != nil {
		s.Name = *payload.Name
		if err := u.repo.SaveSurvey(ctx, s); err != nil {
			return nil, fault.NewInternal("an unexpected error occurred", err)
		}
	}

	if len(payload.Questions) == 0 {
		return Serialize(s), nil
	}

	err = u.repo.Transaction(ctx, func(tx Repository) error {
		if err := u.updateQuestions(ctx, tx, s, payload.Questions); err != nil {
			return err
		}
		return u.updateAnswersAndLinks(ctx, tx, s, payload.Questions)
	})
	if err != nil {
		if fault.IsValidation(err) || fault.IsInternal(err) {
			return nil, err
		}
		return nil, fault.NewInternal("an unexpected error occurred", err)
	}

	updated, err := u.repo.FindSurveyByID(ctx, surveyID)
	if err != nil {
		return nil, err
	}
	return Serialize(updated), nil
}

// updateQuestions overwrites text, short text and type of every edited
// question. Meta is overwritten only when the edit supplies it.
func (u *Updater) updateQuestions(ctx context.Context, tx Repository, s *models.Survey, edits []QuestionEdit) error {
	existing := make(map[uint]*models.Question, len(s.Questions))
	for i := range s.Questions {
		existing[s.Questions[i].ID] = &s.Questions[i]
	}

	for _, edit := range edits {
		if edit.ID == nil || *edit.ID == 0 {
			return fault.NewValidation(fmt.Sprintf("question with id=%s not found in this survey", editID(edit.ID)))
		}
		q, ok := existing[*edit.ID]
		if !ok {
			return fault.NewValidation(fmt.Sprintf("question with id=%d not found in this survey", *edit.ID))
		}
		if edit.Text == nil || edit.ShortText == nil || edit.Type == nil {
			return fault.NewValidation(fmt.Sprintf("missing required fields in question data with id=%d", *edit.ID))
		}

		q.Text = *edit.Text
		q.ShortText = *edit.ShortText
		q.Type = *edit.Type
		if edit.Meta != nil {
			q.Meta = datatypes.JSON(edit.Meta)
		}

		if err := tx.SaveQuestion(ctx, q); err != nil {
			return err
		}
	}

	return nil
}

type linkKey struct {
	questionID uint
	answerID   uint
}

// updateAnswersAndLinks overwrites answer text (and sort, when supplied)
// and repoints each link's next question. The lookups are computed once
// from the transaction snapshot; links are never created here, a missing
// (question, answer) pair is a validation failure.
func (u *Updater) updateAnswersAndLinks(ctx context.Context, tx Repository, s *models.Survey, edits []QuestionEdit) error {
	questionIDs := make(map[uint]struct{}, len(s.Questions))
	for _, q := range s.Questions {
		questionIDs[q.ID] = struct{}{}
	}

	answers, err := tx.AnswersBySurvey(ctx, s.ID)
	if err != nil {
		return err
	}
	answersByID := make(map[uint]*models.Answer, len(answers))
	for i := range answers {
		answersByID[answers[i].ID] = &answers[i]
	}

	links, err := tx.LinksBySurvey(ctx, s.ID)
	if err != nil {
		return err
	}
	linksByPair := make(map[linkKey]*models.QuestionAnswer, len(links))
	for i := range links {
		linksByPair[linkKey{links[i].QuestionID, links[i].AnswerID}] = &links[i]
	}

	for _, edit := range edits {
		questionID := *edit.ID

		for _, ae := range edit.Answers {
			if ae.ID == nil || ae.Text == nil || ae.QuestionID == nil {
				return fault.NewValidation(fmt.Sprintf("missing required fields in answer data for question id=%d", questionID))
			}

			answer, ok := answersByID[*ae.ID]
			if !ok {
				return fault.NewValidation(fmt.Sprintf("answer with id=%d not found", *ae.ID))
			}

			if *ae.QuestionID != questionID {
				return fault.NewValidation(fmt.Sprintf("question_id %d does not match question id %d", *ae.QuestionID, questionID))
			}

			answer.Text = *ae.Text
			if ae.Sort != nil {
				answer.Sort = *ae.Sort
			}
			if err := tx.SaveAnswer(ctx, answer); err != nil {
				return err
			}

			link, ok := linksByPair[linkKey{questionID, *ae.ID}]
			if !ok {
				return fault.NewValidation(fmt.Sprintf("link for question id=%d and answer id=%d not found", questionID, *ae.ID))
			}

			if ae.NextQuestionID != nil {
				if _, ok := questionIDs[*ae.NextQuestionID]; !ok {
					return fault.NewValidation(fmt.Sprintf("next question with id=%d not found in this survey", *ae.NextQuestionID))
				}
			}

			link.NextQuestionID = ae.NextQuestionID
			if err := tx.SaveLink(ctx, link); err != nil {
				return err
			}
		}
	}

	return nil
}

func editID(id *uint) string {
	if id == nil {
		return "null"
	}
	return strconv.FormatUint(uint64(*id), 10)
}
