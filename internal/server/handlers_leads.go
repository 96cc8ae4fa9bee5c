package server

import (
	"net/http"

	"github.com/datavex/gateway/internal/scoring"
)

// ---------------------------------------------------------------------
// Lead Assessment Handler
// ---------------------------------------------------------------------

type assessmentAnswers struct {
	Budget     string  `json:"budget"`
	Location   string  `json:"location"`
	Experience float64 `json:"experience"`
	Employees  float64 `json:"employees"`
}

type assessmentRequest struct {
	Email   string            `json:"email" validate:"required,email"`
	Answers assessmentAnswers `json:"answers"`
}

type assessmentResponse struct {
	Email string   `json:"email"`
	Score int      `json:"score"`
	Tags  []string `json:"tags"`
}

// handleAssessment scores intake answers deterministically. No model call
// is ever made here; storing the score on the lead record is the CRM
// collaborator's job.
func (s *Server) handleAssessment(w http.ResponseWriter, r *http.Request) {
	var req assessmentRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	result := s.scorer.Score(scoring.Input{
		Budget:          req.Answers.Budget,
		Location:        req.Answers.Location,
		ExperienceYears: req.Answers.Experience,
		EmployeeCount:   req.Answers.Employees,
	})

	s.jsonResponse(w, http.StatusOK, assessmentResponse{
		Email: req.Email,
		Score: result.Score,
		Tags:  result.Tags,
	})
}
