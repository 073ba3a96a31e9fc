package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"filmoteka/internal/omdb"

	"github.com/gin-gonic/gin"
)

// MetadataProvider is the upstream slice the proxy endpoints need.
type MetadataProvider interface {
	Search(ctx context.Context, title string, page int) (*omdb.SearchResult, error)
	DetailByID(ctx context.Context, imdbID string) (*omdb.MovieDetail, error)
}

// RecommendationService resolves the curated recommendation batch.
type RecommendationService interface {
	Recommend(ctx context.Context, limit int) ([]omdb.MovieDetail, error)
}

type OMDBHandler struct {
	provider    MetadataProvider
	recommender RecommendationService
}

func NewOMDBHandler(provider MetadataProvider, recommender RecommendationService) *OMDBHandler {
	return &OMDBHandler{provider: provider, recommender: recommender}
}

func (h *OMDBHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/search", h.Search)
	rg.GET("/detail/:id", h.Detail)
	rg.GET("/recommended", h.Recommended)
}

func (h *OMDBHandler) Search(c *gin.Context) {
	title := strings.TrimSpace(c.Query("title"))
	if title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title query parameter is required"})
		return
	}

	page := 1
	if raw := c.Query("page"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			page = parsed
		}
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	result, err := h.provider.Search(ctx, title, page)
	if err != nil {
		respondUpstreamError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *OMDBHandler) Detail(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id parameter is required"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	result, err := h.provider.DetailByID(ctx, id)
	if err != nil {
		respondUpstreamError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *OMDBHandler) Recommended(c *gin.Context) {
	limit := omdb.DefaultRecommendLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit parameter"})
			return
		}
		limit = parsed
	}

	// the slowest endpoint: bounded fan-out against a rate-limited upstream
	ctx, cancel := context.WithTimeout(c.Request.Context(), 60*time.Second)
	defer cancel()

	results, err := h.recommender.Recommend(ctx, limit)
	if err != nil {
		if errors.Is(err, omdb.ErrNoRecommendations) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		respondUpstreamError(c, err)
		return
	}
	c.JSON(http.StatusOK, results)
}

// respondUpstreamError translates client errors: a negative upstream payload
// keeps its message as a 404, transport failures become a bad gateway.
func respondUpstreamError(c *gin.Context, err error) {
	var notFound *omdb.NotFoundError
	switch {
	case errors.As(err, &notFound):
		c.JSON(http.StatusNotFound, gin.H{"error": notFound.Message})
	case errors.Is(err, omdb.ErrUnavailable):
		c.JSON(http.StatusBadGateway, gin.H{"error": "metadata provider unavailable"})
	default:
		respondInternalError(c, err)
	}
}
