package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/brunnokenzokillaruna/careertrackpro-sub000/internal/generation"
	"github.com/brunnokenzokillaruna/careertrackpro-sub000/internal/ingestion"
	"github.com/brunnokenzokillaruna/careertrackpro-sub000/internal/pdf"
	"github.com/brunnokenzokillaruna/careertrackpro-sub000/internal/types"
)

var validate = validator.New()

// GenerateRequest is the request body for POST /generate.
type GenerateRequest struct {
	UserID         string `json:"user_id,omitempty"`
	Company        string `json:"company,omitempty"`
	Position       string `json:"position,omitempty"`
	JobDescription string `json:"job_description" validate:"required"`
	Language       string `json:"language,omitempty"`
	CredentialID   string `json:"credential_id,omitempty" validate:"omitempty,uuid4"`
}

// GenerateResponse is the response body for POST /generate.
type GenerateResponse struct {
	ID string `json:"id,omitempty"`
	*generation.Result
}

// handleGenerate runs the full pipeline for one application and
// returns the document pair.
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if err := validate.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	genReq := generation.Request{
		App: types.ApplicationContext{
			Company:  strings.TrimSpace(req.Company),
			Position: strings.TrimSpace(req.Position),
		},
		JobDescription: ingestion.CleanJobDescription(req.JobDescription),
		Language:       types.Language(req.Language),
	}
	if req.UserID != "" {
		id, err := uuid.Parse(req.UserID)
		if err != nil {
			s.errorResponse(w, http.StatusBadRequest, "invalid user_id")
			return
		}
		genReq.UserID = id
	}
	if req.CredentialID != "" {
		id, err := uuid.Parse(req.CredentialID)
		if err != nil {
			s.errorResponse(w, http.StatusBadRequest, "invalid credential_id")
			return
		}
		genReq.CredentialID = &id
	}

	result, err := s.generator.Generate(r.Context(), genReq)
	if err != nil {
		var verr *generation.ValidationError
		if errors.As(err, &verr) {
			s.errorResponse(w, http.StatusBadRequest, verr.Error())
			return
		}
		s.logger.Error("generation failed", "error", err)
		s.errorResponse(w, http.StatusInternalServerError, "generation failed")
		return
	}

	resp := GenerateResponse{Result: result}
	if s.results != nil {
		id, err := s.results.SaveResult(r.Context(), genReq.UserID, genReq.App, result)
		if err != nil {
			// Persistence is best effort; the pair is still returned.
			s.logger.Error("failed to persist result", "error", err)
		} else {
			resp.ID = id.String()
		}
	}

	s.jsonResponse(w, http.StatusOK, resp)
}

// PDFRequest is the request body for POST /documents/pdf.
type PDFRequest struct {
	Content      string `json:"content" validate:"required"`
	DocumentType string `json:"documentType" validate:"required,oneof=resume cover_letter"`
	Name         string `json:"name,omitempty"`
	Company      string `json:"company,omitempty"`
	JobPosition  string `json:"jobPosition,omitempty"`
}

// handleDocumentPDF rasterizes normalized content to a downloadable
// A4 PDF.
func (s *Server) handleDocumentPDF(w http.ResponseWriter, r *http.Request) {
	var req PDFRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if err := validate.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	kind := types.DocumentKind(req.DocumentType)
	doc := types.GeneratedDocument{Kind: kind, NormalizedText: req.Content}
	filename := pdf.FileName(kind, req.Name, req.Company)

	out, err := s.renderer.Render(r.Context(), doc, strings.TrimSuffix(filename, ".pdf"))
	if err != nil {
		// Retryable: no partial file is exposed.
		s.logger.Error("pdf render failed", "error", err)
		s.errorResponse(w, http.StatusInternalServerError, "pdf rendering failed, please retry")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(out)
}

// jsonResponse writes a JSON response.
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Error("failed to encode response", "error", err)
	}
}

// errorResponse writes an error JSON response.
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

// validationMessage flattens validator errors into one message.
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, fmt.Sprintf("%s failed %s validation", fe.Field(), fe.Tag()))
	}
	return strings.Join(parts, "; ")
}
