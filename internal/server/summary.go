package server

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/henripigeon/grade-tracker/internal/grades"
	"github.com/henripigeon/grade-tracker/internal/types"
	"github.com/patrickmn/go-cache"
)

const (
	summaryCacheKey = "summary"
	chartCacheKey   = "chart"
)

// entrySummary is one course with its computed standing.
type entrySummary struct {
	ID              string  `json:"id"`
	Course          string  `json:"course"`
	Term            string  `json:"term"`
	GoalGrade       string  `json:"goal_grade,omitempty"`
	Letter          string  `json:"letter"`
	Numeric         float64 `json:"numeric"`
	Credits         float64 `json:"credits"`
	RemainingWeight float64 `json:"remaining_weight"`
}

type termSummary struct {
	Term  string `json:"term"`
	Count int    `json:"count"`
	CGPA  string `json:"cgpa"`
}

type summaryResponse struct {
	Entries []entrySummary `json:"entries"`
	Terms   []termSummary  `json:"terms"`
	Overall string         `json:"overall"`
}

// Per-entry, per-term, and overall standings. Cached briefly; every
// mutation flushes the cache.
func (s *Server) getSummary(c *gin.Context) {
	if cached, found := s.summaryCache.Get(summaryCacheKey); found {
		c.JSON(http.StatusOK, cached.(summaryResponse))
		return
	}

	entries, err := s.db.ListEntries(c.Request.Context())
	if err != nil {
		log.Printf("failed to list entries: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build summary"})
		return
	}

	summary := buildSummary(entries)
	s.summaryCache.Set(summaryCacheKey, summary, cache.DefaultExpiration)

	c.JSON(http.StatusOK, summary)
}

func buildSummary(entries []types.CourseEntry) summaryResponse {
	summary := summaryResponse{
		Entries: make([]entrySummary, 0, len(entries)),
		Terms:   []termSummary{},
		Overall: grades.AverageCGPA(entries),
	}

	for _, entry := range entries {
		item := entrySummary{
			ID:        entry.ID,
			Course:    entry.Course,
			Term:      entry.TermLabel(),
			GoalGrade: entry.GoalGrade,
			Letter:    grades.EntryLetter(entry),
			Numeric:   grades.EntryNumeric(entry),
			Credits:   grades.Credits(entry),
		}
		if entry.EntryType == types.EntryTypeScale {
			item.RemainingWeight = grades.RemainingWeight(entry.Assignments)
		}
		summary.Entries = append(summary.Entries, item)
	}

	for _, term := range grades.TermLabels(entries) {
		var group []types.CourseEntry
		for _, entry := range entries {
			if entry.TermLabel() == term {
				group = append(group, entry)
			}
		}
		summary.Terms = append(summary.Terms, termSummary{
			Term:  term,
			Count: len(group),
			CGPA:  grades.AverageCGPA(group),
		})
	}

	return summary
}

// Chart series for the bar chart: one bar per term plus Overall
func (s *Server) getChart(c *gin.Context) {
	if cached, found := s.summaryCache.Get(chartCacheKey); found {
		c.JSON(http.StatusOK, cached.(grades.ChartData))
		return
	}

	entries, err := s.db.ListEntries(c.Request.Context())
	if err != nil {
		log.Printf("failed to list entries: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build chart"})
		return
	}

	chart := grades.BuildChart(entries)
	s.summaryCache.Set(chartCacheKey, chart, cache.DefaultExpiration)

	c.JSON(http.StatusOK, chart)
}

// Distinct terms in encounter order
func (s *Server) getTerms(c *gin.Context) {
	entries, err := s.db.ListEntries(c.Request.Context())
	if err != nil {
		log.Printf("failed to list entries: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list terms"})
		return
	}

	terms := grades.TermLabels(entries)
	if terms == nil {
		terms = []string{}
	}

	c.JSON(http.StatusOK, gin.H{
		"count": len(terms),
		"terms": terms,
	})
}
