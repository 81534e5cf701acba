package survey

import (
	"context"

	"github.com/artw-company/l14/models"
)

// Repository is the narrow store-access surface the reader and updater
// need. Implementations must guarantee that Transaction runs fn against a
// repository whose writes commit together or not at all.
type Repository interface {
	// FindSurveyByID loads the survey with its full graph: questions,
	// links and the answers behind them. Returns fault.NotFound when the
	// id does not exist.
	FindSurveyByID(ctx context.Context, id uint) (*models.Survey, error)

	// AnswersBySurvey returns every answer reachable from the survey's
	// questions through a link.
	AnswersBySurvey(ctx context.Context, surveyID uint) ([]models.Answer, error)

	// LinksBySurvey returns every link owned by the survey's questions.
	LinksBySurvey(ctx context.Context, surveyID uint) ([]models.QuestionAnswer, error)

	SaveSurvey(ctx context.Context, s *models.Survey) error
	SaveQuestion(ctx context.Context, q *models.Question) error
	SaveAnswer(ctx context.Context, a *models.Answer) error
	SaveLink(ctx context.Context, l *models.QuestionAnswer) error

	// Transaction runs fn inside one atomic transaction and rolls every
	// write back when fn returns an error.
	Transaction(ctx context.Context, fn func(Repository) error) error
}
