package handler

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"filmoteka/internal/http-api/dto"
	"filmoteka/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type MovieHandler struct {
	svc service.MovieService
}

func NewMovieHandler(svc service.MovieService) *MovieHandler {
	return &MovieHandler{svc: svc}
}

func (h *MovieHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.GET("/search", h.Search)
	rg.GET("/:id", h.Get)
	rg.POST("", h.Create)
	rg.PUT("/:id", h.Update)
	rg.DELETE("/:id", h.Delete)
}

func (h *MovieHandler) List(c *gin.Context) {
	opts, err := dto.ParseMovieQuery(c.Request.URL.Query())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	list, total, err := h.svc.List(ctx, opts)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	movies := make([]dto.MovieResponse, 0, len(list))
	for _, m := range list {
		movies = append(movies, dto.FromModelToResponse(m))
	}

	c.JSON(http.StatusOK, dto.PaginatedMovieResponse{
		Page:   opts.Page,
		Pages:  (total + int64(opts.Limit) - 1) / int64(opts.Limit),
		Total:  total,
		Movies: movies,
	})
}

func (h *MovieHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	m, err := h.svc.GetByID(ctx, id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromModelToResponse(*m))
}

func (h *MovieHandler) Create(c *gin.Context) {
	var in dto.CreateMovieDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	model := in.ToModel()

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.svc.Create(ctx, &model); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.FromModelToResponse(model))
}

func (h *MovieHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var in dto.UpdateMovieDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	updated, err := h.svc.Update(ctx, id, in)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromModelToResponse(*updated))
}

func (h *MovieHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.svc.Delete(ctx, id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "movie deleted"})
}

func (h *MovieHandler) Search(c *gin.Context) {
	q := strings.TrimSpace(c.Query("q"))

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	list, err := h.svc.SearchByText(ctx, q)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	resp := make([]dto.MovieResponse, 0, len(list))
	for _, m := range list {
		resp = append(resp, dto.FromModelToResponse(m))
	}
	c.JSON(http.StatusOK, resp)
}
