package survey

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/artw-company/l14/fault"
	"github.com/artw-company/l14/models"
)

// GormRepository implements Repository on top of a gorm connection or
// transaction handle.
type GormRepository struct {
	DB *gorm.DB
}

func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{DB: db}
}

func (r *GormRepository) FindSurveyByID(ctx context.Context, id uint) (*models.Survey, error) {
	var survey models.Survey
	err := r.DB.WithContext(ctx).
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("questions.id")
		}).
		Preload("Questions.Links", func(db *gorm.DB) *gorm.DB {
			return db.Order("question_answers.id")
		}).
		Preload("Questions.Links.Answer").
		First(&survey, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fault.NewNotFound("survey not found")
		}
		return nil, err
	}
	return &survey, nil
}

func (r *GormRepository) AnswersBySurvey(ctx context.Context, surveyID uint) ([]models.Answer, error) {
	var answers []models.Answer
	err := r.DB.WithContext(ctx).
		Distinct("answers.*").
		Joins("JOIN question_answers ON question_answers.answer_id = answers.id").
		Joins("JOIN questions ON questions.id = question_answers.question_id").
		Where("questions.survey_id = ?", surveyID).
		Find(&answers).Error
	if err != nil {
		return nil, err
	}
	return answers, nil
}

func (r *GormRepository) LinksBySurvey(ctx context.Context, surveyID uint) ([]models.QuestionAnswer, error) {
	var links []models.QuestionAnswer
	err := r.DB.WithContext(ctx).
		Joins("JOIN questions ON questions.id = question_answers.question_id").
		Where("questions.survey_id = ?", surveyID).
		Find(&links).Error
	if err != nil {
		return nil, err
	}
	return links, nil
}

func (r *GormRepository) SaveSurvey(ctx context.Context, s *models.Survey) error {
	return r.DB.WithContext(ctx).Omit("Questions").Save(s).Error
}

func (r *GormRepository) SaveQuestion(ctx context.Context, q *models.Question) error {
	return r.DB.WithContext(ctx).Omit("Links").Save(q).Error
}

func (r *GormRepository) SaveAnswer(ctx context.Context, a *models.Answer) error {
	return r.DB.WithContext(ctx).Save(a).Error
}

func (r *GormRepository) SaveLink(ctx context.Context, l *models.QuestionAnswer) error {
	// Column-map update so a nil NextQuestionID is written as NULL and
	// the association structs stay untouched.
	return r.DB.WithContext(ctx).Model(&models.QuestionAnswer{}).
		Where("id = ?", l.ID).
		Updates(map[string]any{
			"question_id":      l.QuestionID,
			"answer_id":        l.AnswerID,
			"next_question_id": l.NextQuestionID,
		}).Error
}

func (r *GormRepository) Transaction(ctx context.Context, fn func(Repository) error) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&GormRepository{DB: tx})
	})
}
