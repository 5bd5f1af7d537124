package server

import (
	"errors"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/jonathan/cv-matcher/internal/extract"
	"github.com/jonathan/cv-matcher/internal/match"
	"github.com/jonathan/cv-matcher/internal/types"
)

// maxUploadBytes caps résumé uploads at 10 MiB.
const maxUploadBytes = 10 << 20

// handleJobs returns the aggregated job pool. Source failures have already
// degraded to empty contributions, so this always answers 200.
func (s *Server) handleJobs(w http.ResponseWriter, r *http.Request) {
	jobs := s.jobs.FetchAll(r.Context())
	if jobs == nil {
		jobs = []types.Job{}
	}

	s.jsonResponse(w, http.StatusOK, types.JobsResponse{Total: len(jobs), Jobs: jobs})
}

// handleMatch extracts text from the uploaded résumé, aggregates the job pool
// and returns the ranked matches. Bad input fails fast with 400 before any
// scoring work; an embedding failure is a 500.
func (s *Server) handleMatch(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)

	file, header, err := r.FormFile("cv")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "cv file field is required")
		return
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(file)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "failed to read uploaded file")
		return
	}

	cvText, err := s.extract(header.Filename, data)
	if err != nil {
		var typeErr *extract.UnsupportedTypeError
		var parseErr *extract.ParseError
		switch {
		case errors.As(err, &typeErr):
			s.errorResponse(w, http.StatusBadRequest, typeErr.Error())
		case errors.As(err, &parseErr):
			s.errorResponse(w, http.StatusBadRequest, "could not extract text from the uploaded file")
		default:
			s.errorResponse(w, http.StatusInternalServerError, "text extraction failed")
		}
		return
	}

	if strings.TrimSpace(cvText) == "" {
		s.errorResponse(w, http.StatusBadRequest, "CV is empty")
		return
	}

	jobs := s.jobs.FetchAll(r.Context())

	result, err := s.matcher.Rank(r.Context(), cvText, jobs)
	if err != nil {
		var emptyErr *match.EmptyResumeError
		if errors.As(err, &emptyErr) {
			s.errorResponse(w, http.StatusBadRequest, emptyErr.Error())
			return
		}
		log.Printf("Match failed: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "failed to score matches")
		return
	}

	s.jsonResponse(w, http.StatusOK, result)
}

// handleHealth is a liveness probe.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}
