package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/artw-company/l14/fault"
	"github.com/artw-company/l14/survey"
	"github.com/artw-company/l14/utils"
)

// SurveyHandler is the HTTP shell around the survey graph engine. It
// decodes requests into plain data, calls the core and maps the fault
// taxonomy onto status codes.
type SurveyHandler struct {
	Reader  *survey.Reader
	Updater *survey.Updater
}

func NewSurveyHandler(repo survey.Repository) *SurveyHandler {
	return &SurveyHandler{
		Reader:  survey.NewReader(repo),
		Updater: survey.NewUpdater(repo),
	}
}

// GET /api/surveys/{surveyID}
func (h *SurveyHandler) GetSurvey(w http.ResponseWriter, r *http.Request) {
	surveyID, ok := parseSurveyID(w, r)
	if !ok {
		return
	}

	doc, err := h.Reader.Read(r.Context(), surveyID)
	if err != nil {
		log.Printf("GetSurvey: survey %d (request %s): %v", surveyID, utils.RequestID(r), err)
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, doc)
}

// PUT /api/surveys/{surveyID}
func (h *SurveyHandler) UpdateSurvey(w http.ResponseWriter, r *http.Request) {
	surveyID, ok := parseSurveyID(w, r)
	if !ok {
		return
	}

	var payload survey.UpdatePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.Printf("UpdateSurvey: invalid request body for survey %d: %v", surveyID, err)
		writeDetail(w, http.StatusBadRequest, "invalid request body")
		return
	}

	doc, err := h.Updater.Update(r.Context(), surveyID, payload)
	if err != nil {
		log.Printf("UpdateSurvey: survey %d (request %s): %v", surveyID, utils.RequestID(r), err)
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, doc)
}

// PATCH /api/surveys/{surveyID} — partial updates are not supported, the
// client always sends the full edit batch through PUT.
func (h *SurveyHandler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeDetail(w, http.StatusMethodNotAllowed, "method not allowed")
}

func parseSurveyID(w http.ResponseWriter, r *http.Request) (uint, bool) {
	raw := r.PathValue("surveyID")
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		writeDetail(w, http.StatusBadRequest, "survey id must be an integer")
		return 0, false
	}
	return uint(id), true
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case fault.IsNotFound(err):
		writeDetail(w, http.StatusNotFound, fault.Detail(err))
	case fault.IsValidation(err):
		writeDetail(w, http.StatusBadRequest, fault.Detail(err))
	default:
		writeDetail(w, http.StatusInternalServerError, fault.Detail(err))
	}
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("writeJSON: error encoding response: %v", err)
	}
}
