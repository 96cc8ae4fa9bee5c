package server

import (
	"net/http"

	"github.com/datavex/gateway/internal/gateway"
	"github.com/datavex/gateway/internal/prompt"
)

// ---------------------------------------------------------------------
// AI Gateway Handlers
// ---------------------------------------------------------------------

type suggestContentRequest struct {
	Content        string `json:"content" validate:"required"`
	Title          string `json:"title"`
	Type           string `json:"type"`
	TargetAudience string `json:"targetAudience"`
}

func (s *Server) handleSuggestContent(w http.ResponseWriter, r *http.Request) {
	var req suggestContentRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	result, err := s.gw.SuggestContent(r.Context(), gateway.ContentRequest{
		Content:  req.Content,
		Title:    req.Title,
		Type:     req.Type,
		Audience: req.TargetAudience,
	})
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to generate content suggestions")
		return
	}

	s.jsonResponse(w, http.StatusOK, result)
}

type suggestSEORequest struct {
	Title           string   `json:"title"`
	MetaDescription string   `json:"metaDescription"`
	Content         string   `json:"content"`
	Keywords        []string `json:"keywords"`
}

func (s *Server) handleSuggestSEO(w http.ResponseWriter, r *http.Request) {
	var req suggestSEORequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	result, err := s.gw.SuggestSEO(r.Context(), gateway.SEORequest{
		Title:           req.Title,
		MetaDescription: req.MetaDescription,
		Content:         req.Content,
		Keywords:        req.Keywords,
	})
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to generate SEO suggestions")
		return
	}

	s.jsonResponse(w, http.StatusOK, result)
}

type parseResumeRequest struct {
	ResumeText string `json:"resumeText" validate:"required"`
}

func (s *Server) handleParseResume(w http.ResponseWriter, r *http.Request) {
	var req parseResumeRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	result, err := s.gw.ParseResume(r.Context(), req.ResumeText)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to parse resume")
		return
	}

	s.jsonResponse(w, http.StatusOK, result)
}

type chatRequest struct {
	Message string        `json:"message" validate:"required"`
	History []prompt.Turn `json:"history" validate:"dive"`
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	result, err := s.gw.Chat(r.Context(), req.Message, req.History)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to generate chat reply")
		return
	}

	s.jsonResponse(w, http.StatusOK, result)
}
