package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"filmoteka/internal/http-api/dto"
	"filmoteka/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type ListHandler struct {
	svc service.ListService
}

func NewListHandler(svc service.ListService) *ListHandler {
	return &ListHandler{svc: svc}
}

func (h *ListHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.GET("/:id", h.Get)
	rg.POST("", h.Create)
	rg.PUT("/:id", h.Update)
	rg.DELETE("/:id", h.Delete)
	rg.POST("/:id/movies", h.AddMovies)
	rg.DELETE("/:id/movies", h.RemoveMovies)
}

func (h *ListHandler) List(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	lists, err := h.svc.GetAll(ctx)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	resp := make([]dto.ListResponse, 0, len(lists))
	for _, l := range lists {
		resp = append(resp, dto.ListFromModel(l))
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ListHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	l, err := h.svc.GetByID(ctx, id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ListFromModel(*l))
}

func (h *ListHandler) Create(c *gin.Context) {
	var in dto.CreateListDTO
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
	c.JSON(http.StatusCreated, dto.ListFromModel(model))
}

func (h *ListHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var in dto.UpdateListDTO
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
	c.JSON(http.StatusOK, dto.ListFromModel(*updated))
}

func (h *ListHandler) Delete(c *gin.Context) {
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
	c.JSON(http.StatusOK, gin.H{"message": "list deleted"})
}

func (h *ListHandler) AddMovies(c *gin.Context) {
	h.changeMovies(c, h.svc.AddMovies)
}

func (h *ListHandler) RemoveMovies(c *gin.Context) {
	h.changeMovies(c, h.svc.RemoveMovies)
}

func (h *ListHandler) changeMovies(c *gin.Context, op func(context.Context, int64, []int64) error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var in dto.ListMoviesDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := op(ctx, id, in.MovieIDs); err != nil {
		respondServiceError(c, err)
		return
	}

	updated, err := h.svc.GetByID(ctx, id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ListFromModel(*updated))
}
