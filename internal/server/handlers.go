package server

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"creator-toolkit/internal/descriptions"
	"creator-toolkit/internal/models"
	"creator-toolkit/internal/research"
	"creator-toolkit/internal/session"
	"creator-toolkit/internal/thumbnails"
	"creator-toolkit/internal/titles"
)

// External calls block the action, so the budgets are generous: a research
// pass fans out into many platform calls, generation actions make one.
const (
	researchTimeout   = 3 * time.Minute
	completionTimeout = 90 * time.Second
)

func (s *Server) handleResearchSearch(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	sid := s.sessionID(w, r)

	var criteria models.SearchCriteria
	if err := decodeJSON(r, &criteria); err != nil {
		s.fail(w, "research.search", start, http.StatusBadRequest, err)
		return
	}
	applyCriteriaDefaults(&criteria)
	if strings.TrimSpace(criteria.Niches) == "" {
		s.fail(w, "research.search", start, http.StatusBadRequest, fmt.Errorf("niche keywords are required"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), researchTimeout)
	defer cancel()

	result, err := s.researcher.Search(ctx, criteria)
	if err != nil {
		s.fail(w, "research.search", start, http.StatusBadGateway, err)
		return
	}

	s.store.Update(sid, func(st *session.State) {
		st.Criteria = &criteria
		st.Results = result
	})
	s.ok(w, "research.search", start, result)
}

type insightRequest struct {
	VideoID string `json:"video_id"`
}

func (s *Server) handleResearchInsight(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	sid := s.sessionID(w, r)

	var req insightRequest
	if err := decodeJSON(r, &req); err != nil {
		s.fail(w, "research.insight", start, http.StatusBadRequest, err)
		return
	}
	if req.VideoID == "" {
		s.fail(w, "research.insight", start, http.StatusBadRequest, fmt.Errorf("video_id is required"))
		return
	}

	var record *models.VideoRecord
	s.store.View(sid, func(st *session.State) {
		if st.Results == nil {
			return
		}
		for i := range st.Results.Records {
			if st.Results.Records[i].ID == req.VideoID {
				record = &st.Results.Records[i]
				return
			}
		}
	})
	if record == nil {
		s.fail(w, "research.insight", start, http.StatusNotFound,
			fmt.Errorf("video %s is not in the current result set; run a search first", req.VideoID))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), completionTimeout)
	defer cancel()

	insight, err := research.Insight(ctx, s.completer, *record)
	if err != nil {
		s.fail(w, "research.insight", start, http.StatusBadGateway, err)
		return
	}
	s.ok(w, "research.insight", start, map[string]string{"insight": insight})
}

type keywordsRequest struct {
	Input string `json:"input"`
}

func (s *Server) handleKeywordsAnalyze(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	sid := s.sessionID(w, r)

	var req keywordsRequest
	if err := decodeJSON(r, &req); err != nil {
		s.fail(w, "keywords.analyze", start, http.StatusBadRequest, err)
		return
	}
	if strings.TrimSpace(req.Input) == "" {
		s.fail(w, "keywords.analyze", start, http.StatusBadRequest, fmt.Errorf("at least one keyword or phrase is required"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), completionTimeout)
	defer cancel()

	reports, err := s.generator.Analyze(ctx, req.Input)
	if err != nil {
		s.fail(w, "keywords.analyze", start, http.StatusBadGateway, err)
		return
	}

	s.store.Update(sid, func(st *session.State) { st.LastKeywords = reports })
	s.ok(w, "keywords.analyze", start, map[string]any{"keywords": reports})
}

func (s *Server) handleTitlesOptimise(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	sid := s.sessionID(w, r)

	var req titles.Request
	if err := decodeJSON(r, &req); err != nil {
		s.fail(w, "titles.optimise", start, http.StatusBadRequest, err)
		return
	}
	if strings.TrimSpace(req.Keyword) == "" {
		s.fail(w, "titles.optimise", start, http.StatusBadRequest, fmt.Errorf("a target keyword is required"))
		return
	}
	if req.Temperature == 0 {
		req.Temperature = 0.7
	}

	ctx, cancel := context.WithTimeout(r.Context(), completionTimeout)
	defer cancel()

	suggestions, err := titles.Optimise(ctx, s.completer, req)
	if err != nil {
		s.fail(w, "titles.optimise", start, http.StatusBadGateway, err)
		return
	}

	s.store.Update(sid, func(st *session.State) { st.LastTitles = suggestions })
	s.ok(w, "titles.optimise", start, map[string]any{"titles": suggestions})
}

func (s *Server) handleDescriptionGenerate(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	sid := s.sessionID(w, r)

	var params models.DraftParams
	if err := decodeJSON(r, &params); err != nil {
		s.fail(w, "descriptions.generate", start, http.StatusBadRequest, err)
		return
	}
	if strings.TrimSpace(params.Title) == "" || strings.TrimSpace(params.Keyword) == "" {
		s.fail(w, "descriptions.generate", start, http.StatusBadRequest, fmt.Errorf("title and keyword are required"))
		return
	}
	if params.Temperature == 0 {
		params.Temperature = 0.7
	}

	ctx, cancel := context.WithTimeout(r.Context(), completionTimeout)
	defer cancel()

	draft, err := descriptions.Generate(ctx, s.completer, params)
	if err != nil {
		s.fail(w, "descriptions.generate", start, http.StatusBadGateway, err)
		return
	}

	s.store.Update(sid, func(st *session.State) { st.Draft = draft })
	s.ok(w, "descriptions.generate", start, draft)
}

type reviseRequest struct {
	Feedback string                `json:"feedback"`
	Draft    *models.DraftArtifact `json:"draft,omitempty"`
}

func (s *Server) handleDescriptionRevise(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	sid := s.sessionID(w, r)

	var req reviseRequest
	if err := decodeJSON(r, &req); err != nil {
		s.fail(w, "descriptions.revise", start, http.StatusBadRequest, err)
		return
	}
	if strings.TrimSpace(req.Feedback) == "" {
		s.fail(w, "descriptions.revise", start, http.StatusBadRequest, fmt.Errorf("revision feedback is required"))
		return
	}

	// The draft travels with the request; the session copy is only a
	// convenience fallback.
	draft := req.Draft
	if draft == nil {
		s.store.View(sid, func(st *session.State) { draft = st.Draft })
	}
	if draft == nil {
		s.fail(w, "descriptions.revise", start, http.StatusBadRequest,
			fmt.Errorf("no draft to revise; generate a description first"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), completionTimeout)
	defer cancel()

	revised, err := descriptions.Revise(ctx, s.completer, draft, req.Feedback)
	if err != nil {
		s.fail(w, "descriptions.revise", start, http.StatusBadGateway, err)
		return
	}

	s.store.Update(sid, func(st *session.State) { st.Draft = revised })
	s.ok(w, "descriptions.revise", start, revised)
}

func (s *Server) handleThumbnailConcepts(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	sid := s.sessionID(w, r)

	var req thumbnails.ConceptRequest
	if err := decodeJSON(r, &req); err != nil {
		s.fail(w, "thumbnails.concepts", start, http.StatusBadRequest, err)
		return
	}
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Keyword) == "" {
		s.fail(w, "thumbnails.concepts", start, http.StatusBadRequest, fmt.Errorf("title and keyword are required"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), completionTimeout)
	defer cancel()

	concepts, err := s.thumbs.Concepts(ctx, req)
	if err != nil {
		s.fail(w, "thumbnails.concepts", start, http.StatusBadGateway, err)
		return
	}

	s.store.Update(sid, func(st *session.State) { st.LastConcepts = concepts })
	s.ok(w, "thumbnails.concepts", start, map[string]any{"concepts": concepts})
}

type generateImageRequest struct {
	Prompt  string `json:"prompt"`
	Size    string `json:"size,omitempty"`
	Quality string `json:"quality,omitempty"`
}

func (s *Server) handleThumbnailGenerate(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	s.sessionID(w, r)

	var req generateImageRequest
	if err := decodeJSON(r, &req); err != nil {
		s.fail(w, "thumbnails.generate", start, http.StatusBadRequest, err)
		return
	}
	if strings.TrimSpace(req.Prompt) == "" {
		s.fail(w, "thumbnails.generate", start, http.StatusBadRequest, fmt.Errorf("an image prompt is required"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), completionTimeout)
	defer cancel()

	url, err := s.thumbs.Generate(ctx, req.Prompt, req.Size, req.Quality)
	if err != nil {
		s.fail(w, "thumbnails.generate", start, http.StatusBadGateway, err)
		return
	}
	s.ok(w, "thumbnails.generate", start, map[string]string{"url": url})
}

// applyCriteriaDefaults fills the fields the UI would preselect.
func applyCriteriaDefaults(c *models.SearchCriteria) {
	if c.MonthsBack <= 0 {
		c.MonthsBack = 6
	}
	if c.MonthsBack > 12 {
		c.MonthsBack = 12
	}
	if c.MaxResults <= 0 {
		c.MaxResults = 50
	}
	if c.MaxResults > 200 {
		c.MaxResults = 200
	}
	if c.Subscribers.Max == 0 {
		c.Subscribers.Max = 1000000
	}
	if c.Views.Max == 0 {
		c.Views.Max = 500000
	}
	if c.Shorts == "" {
		c.Shorts = models.ShortsAll
	}
	if c.SortBy == "" {
		c.SortBy = models.SortViralScore
	}
	if c.SortOrder == "" {
		c.SortOrder = models.SortDescending
	}
	if c.Language == "" {
		c.Language = "en"
	}
	if c.MatchMode == "" {
		c.MatchMode = models.MatchAny
	}
}
