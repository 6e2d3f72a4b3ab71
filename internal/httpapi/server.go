// Package httpapi exposes the recommendation core over HTTP for the
// mobile client and for local inspection.
package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/haikapp/haik/internal/amenity"
	"github.com/haikapp/haik/internal/catalog"
	"github.com/haikapp/haik/internal/models"
	"github.com/haikapp/haik/internal/pricedata"
	"github.com/haikapp/haik/internal/recommend"
)

// Server wires the read-only reference data and the places
// collaborator into HTTP handlers. Each recommendation request runs
// with its own session cache, so concurrent requests never share
// mutable state.
type Server struct {
	catalog  *catalog.Catalog
	prices   *pricedata.Service
	searcher amenity.Searcher
	fetchCfg amenity.FetcherConfig
	recCfg   recommend.Config
}

// NewServer creates the HTTP facade.
func NewServer(cat *catalog.Catalog, prices *pricedata.Service, searcher amenity.Searcher, fetchCfg amenity.FetcherConfig, recCfg recommend.Config) *Server {
	return &Server{
		catalog:  cat,
		prices:   prices,
		searcher: searcher,
		fetchCfg: fetchCfg,
		recCfg:   recCfg,
	}
}

// Router builds the gin handler.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", s.handleHealth)

	v1 := r.Group("/api/v1")
	{
		v1.GET("/neighborhoods", s.handleNeighborhoods)
		v1.GET("/prices/:name", s.handlePrice)
		v1.POST("/recommend", s.handleRecommend)
	}

	return r
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleNeighborhoods(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"neighborhoods": s.catalog.All(),
		"total":         s.catalog.Len(),
	})
}

type priceResponse struct {
	Neighborhood      string   `json:"neighborhood"`
	AvgPricePerMeter  *float64 `json:"avg_price_per_meter"`
	TransactionsCount int      `json:"transactions_count"`
	Tier              string   `json:"tier"`
}

func (s *Server) handlePrice(c *gin.Context) {
	name := c.Param("name")

	record, ok := s.prices.Record(name)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "no price data for neighborhood"})
		return
	}

	c.JSON(http.StatusOK, priceResponse{
		Neighborhood:      record.Neighborhood,
		AvgPricePerMeter:  record.AvgPricePerMeter,
		TransactionsCount: record.TransactionsCount,
		Tier:              s.prices.TierFor(name).String(),
	})
}

type recommendRequest struct {
	Selected map[string][]string `json:"selected" binding:"required"`
	Anchors  map[string]string   `json:"anchors"`
}

type recommendResponse struct {
	Results []models.RecommendedNeighborhood `json:"results"`
}

func (s *Server) handleRecommend(c *gin.Context) {
	var req recommendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	answers := &models.AnswerSet{Selected: req.Selected, Anchors: req.Anchors}

	// One cache per request: the session cache belongs to a single
	// recommendation flow.
	fetcher := amenity.NewFetcher(s.searcher, amenity.NewCountCache(), s.fetchCfg)
	engine, err := recommend.NewEngine(s.catalog, s.prices, fetcher, s.recCfg)
	if err != nil {
		log.Error().Err(err).Msg("engine construction failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	results, err := engine.Run(c.Request.Context(), answers, nil)
	if err != nil {
		log.Warn().Err(err).Msg("recommendation run aborted")
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "recommendation run aborted"})
		return
	}

	c.JSON(http.StatusOK, recommendResponse{Results: results})
}
