// Package cmstest provides an in-process fake of the CMS REST API for tests.
package cmstest

import (
	"net/http"
	"net/http/httptest"
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/lysyi3m/slug-sync/app/seo"
)

// Server serves collection listings and accepts sitemap records.
type Server struct {
	*httptest.Server

	mu          sync.Mutex
	collections map[string][]map[string]any
	failTypes   map[string]int
	failURLs    map[string]int
	posted      []seo.Record
	requests    []string
}

// New starts a server that lists collections keyed by content type name.
// Callers must Close it.
func New(collections map[string][]map[string]any) *Server {
	s := &Server{
		collections: collections,
		failTypes:   make(map[string]int),
		failURLs:    make(map[string]int),
	}
	if s.collections == nil {
		s.collections = make(map[string][]map[string]any)
	}
	s.Server = httptest.NewServer(s.router())
	return s
}

// FailContentType makes listing name answer with status.
func (s *Server) FailContentType(name string, status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failTypes[name] = status
}

// FailURL makes posting a sitemap record for url answer with status.
func (s *Server) FailURL(url string, status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failURLs[url] = status
}

// Posted returns the sitemap records accepted so far, in arrival order.
func (s *Server) Posted() []seo.Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]seo.Record, len(s.posted))
	copy(out, s.posted)
	return out
}

// Requests returns "METHOD /path?query" for every request received.
func (s *Server) Requests() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.requests))
	copy(out, s.requests)
	return out
}

func (s *Server) router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(s.recordRequest)

	r.POST("/sitemaps", s.createSitemap)
	r.GET("/:type", s.listCollection)

	return r
}

func (s *Server) recordRequest(c *gin.Context) {
	s.mu.Lock()
	s.requests = append(s.requests, c.Request.Method+" "+c.Request.URL.RequestURI())
	s.mu.Unlock()
	c.Next()
}

func (s *Server) listCollection(c *gin.Context) {
	name := c.Param("type")

	if c.Query("_limit") != "-1" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "expected _limit=-1"})
		return
	}

	s.mu.Lock()
	status, failing := s.failTypes[name]
	entries, ok := s.collections[name]
	s.mu.Unlock()

	if failing {
		c.JSON(status, gin.H{"error": "forced failure"})
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not Found"})
		return
	}
	if entries == nil {
		entries = []map[string]any{}
	}

	c.JSON(http.StatusOK, entries)
}

func (s *Server) createSitemap(c *gin.Context) {
	var record seo.Record
	if err := c.ShouldBindJSON(&record); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s.mu.Lock()
	status, failing := s.failURLs[record.URL]
	if !failing {
		s.posted = append(s.posted, record)
	}
	s.mu.Unlock()

	if failing {
		c.JSON(status, gin.H{"error": "forced failure"})
		return
	}

	c.JSON(http.StatusOK, record)
}
