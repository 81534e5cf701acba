package survey

import (
	"context"
)

// Reader fetches a survey and projects it into its nested document.
type Reader struct {
	repo Repository
}

func NewReader(repo Repository) *Reader {
	return &Reader{repo: repo}
}

// Read returns the serialized survey graph, or fault.NotFound when no
// survey carries the id. It never mutates the store and is safe to call
// concurrently with updates.
func (r *Reader) Read(ctx context.Context, surveyID uint) (*SurveyDocument, error) {
	s, err := r.repo.FindSurveyByID(ctx, surveyID)
	if err != nil {
		return nil, err
	}
	return Serialize(s), nil
}
