package survey

import (
	"encoding/json"
	"sort"

	"github.com/artw-company/l14/models"
)

// Serialize projects a survey graph into its nested document. The survey
// must be loaded with Questions, Questions.Links and Questions.Links.Answer.
//
// An answer's question_id and next_question_id come from the first link
// carrying that answer; "first" means lowest link id. Answers are almost
// always behind a single link, but nothing in the schema forbids reuse
// across questions, so the ambiguity is resolved deterministically here.
func Serialize(s *models.Survey) *SurveyDocument {
	firstLinks := make(map[uint]models.QuestionAnswer)
	for _, q := range s.Questions {
		for _, link := range q.Links {
			if existing, ok := firstLinks[link.AnswerID]; !ok || link.ID < existing.ID {
				firstLinks[link.AnswerID] = link
			}
		}
	}

	doc := &SurveyDocument{
		ID:        s.ID,
		Name:      s.Name,
		Questions: make([]QuestionDocument, 0, len(s.Questions)),
	}

	for _, q := range s.Questions {
		links := make([]models.QuestionAnswer, len(q.Links))
		copy(links, q.Links)
		sort.Slice(links, func(i, j int) bool { return links[i].ID < links[j].ID })
		sort.SliceStable(links, func(i, j int) bool { return links[i].Answer.Sort < links[j].Answer.Sort })

		answers := make([]AnswerDocument, 0, len(links))
		for _, link := range links {
			answers = append(answers, serializeAnswer(link.Answer, firstLinks))
		}

		doc.Questions = append(doc.Questions, QuestionDocument{
			ID:        q.ID,
			Text:      q.Text,
			ShortText: q.ShortText,
			Type:      q.Type,
			Meta:      metaDocument(q.Meta),
			Answers:   answers,
		})
	}

	return doc
}

func serializeAnswer(a models.Answer, firstLinks map[uint]models.QuestionAnswer) AnswerDocument {
	doc := AnswerDocument{
		ID:   a.ID,
		Text: a.Text,
		Sort: a.Sort,
	}

	if link, ok := firstLinks[a.ID]; ok {
		questionID := link.QuestionID
		doc.QuestionID = &questionID
		doc.NextQuestionID = link.NextQuestionID
	}

	return doc
}

func metaDocument(meta []byte) json.RawMessage {
	if len(meta) == 0 {
		return json.RawMessage("{}")
	}
	return json.RawMessage(meta)
}
