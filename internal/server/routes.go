package server

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/henripigeon/grade-tracker/internal/firebase"
	"github.com/henripigeon/grade-tracker/internal/types"
)

func (s *Server) RegisterRoutes() http.Handler {
	router := gin.Default()

	// Health check endpoint
	router.GET("/health", s.healthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	v1.Use(s.RateLimitMiddleware())
	{
		entries := v1.Group("/entries")
		{
			entries.GET("/", s.listEntries)
			entries.POST("/", s.createEntry)
			entries.PUT("/:id", s.updateEntry)
			entries.DELETE("/:id", s.deleteEntry)
		}

		v1.GET("/summary", s.getSummary)
		v1.GET("/chart", s.getChart)
		v1.GET("/terms", s.getTerms)
	}

	return router
}

// Health check endpoint
func (s *Server) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"message": "grade tracker API is running",
	})
}

// entryRequest is the payload for create and update. Validation mirrors the
// add/edit form: native constraints only, the arithmetic assumes numeric
// fields arrive valid.
type entryRequest struct {
	Course      string              `json:"course" binding:"required"`
	Year        string              `json:"year" binding:"required"`
	Semester    string              `json:"semester" binding:"required"`
	GoalGrade   string              `json:"goal_grade"`
	EntryType   string              `json:"entry_type" binding:"required,oneof=final scale"`
	FinalGrade  string              `json:"final_grade"`
	Assignments []assignmentRequest `json:"assignments" binding:"dive"`
	Credits     float64             `json:"credits"`
}

type assignmentRequest struct {
	Name   string   `json:"name" binding:"required"`
	Grade  *float64 `json:"grade"`
	Weight float64  `json:"weight" binding:"required"`
}

// toEntry builds a CourseEntry keeping only the grading fields selected by
// the entry type, so a record switched from "scale" to "final" does not
// drag stale assignments along.
func (r entryRequest) toEntry() types.CourseEntry {
	entry := types.CourseEntry{
		Course:    r.Course,
		Year:      r.Year,
		Semester:  r.Semester,
		GoalGrade: r.GoalGrade,
		EntryType: types.EntryType(r.EntryType),
		Credits:   r.Credits,
	}

	switch entry.EntryType {
	case types.EntryTypeFinal:
		entry.FinalGrade = r.FinalGrade
	case types.EntryTypeScale:
		assignments := make([]types.Assignment, 0, len(r.Assignments))
		for _, a := range r.Assignments {
			assignments = append(assignments, types.Assignment{
				Name:   a.Name,
				Grade:  a.Grade,
				Weight: a.Weight,
			})
		}
		entry.Assignments = assignments
	}

	return entry
}

// List all entries in store order
func (s *Server) listEntries(c *gin.Context) {
	entries, err := s.db.ListEntries(c.Request.Context())
	if err != nil {
		log.Printf("failed to list entries: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list entries"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"count":   len(entries),
		"entries": entries,
	})
}

// Create an entry, then reload the whole collection. There is no optimistic
// update anywhere: the store is the single source of truth and every
// mutation is followed by a full read back.
func (s *Server) createEntry(c *gin.Context) {
	var req entryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := s.db.CreateEntry(c.Request.Context(), req.toEntry())
	if err != nil {
		log.Printf("failed to create entry: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create entry"})
		return
	}

	s.summaryCache.Flush()

	entries, err := s.db.ListEntries(c.Request.Context())
	if err != nil {
		log.Printf("failed to reload entries: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to reload entries"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":      id,
		"count":   len(entries),
		"entries": entries,
	})
}

// Update an entry (full-record replace), then reload
func (s *Server) updateEntry(c *gin.Context) {
	id := c.Param("id")

	var req entryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := s.db.UpdateEntry(c.Request.Context(), id, req.toEntry()); err != nil {
		if errors.Is(err, firebase.ErrEntryNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "entry not found"})
			return
		}
		log.Printf("failed to update entry %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update entry"})
		return
	}

	s.summaryCache.Flush()

	entries, err := s.db.ListEntries(c.Request.Context())
	if err != nil {
		log.Printf("failed to reload entries: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to reload entries"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":      id,
		"count":   len(entries),
		"entries": entries,
	})
}

// Delete an entry, then reload
func (s *Server) deleteEntry(c *gin.Context) {
	id := c.Param("id")

	if err := s.db.DeleteEntry(c.Request.Context(), id); err != nil {
		if errors.Is(err, firebase.ErrEntryNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "entry not found"})
			return
		}
		log.Printf("failed to delete entry %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete entry"})
		return
	}

	s.summaryCache.Flush()

	entries, err := s.db.ListEntries(c.Request.Context())
	if err != nil {
		log.Printf("failed to reload entries: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to reload entries"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":      id,
		"count":   len(entries),
		"entries": entries,
	})
}
