package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/taller-admin/internal/derive"
	"github.com/BruksfildServices01/taller-admin/internal/httperr"
	"github.com/BruksfildServices01/taller-admin/internal/httpresp"
	"github.com/BruksfildServices01/taller-admin/internal/workspace"
)

// crud serves create, update and delete for one collection. The list
// endpoint differs per entity and lives on each handler.
type crud[V interface{ Key() uint }, I, P any] struct {
	store *workspace.Collection[V, I, P]
}

func (h crud[V, I, P]) Create(c *gin.Context) {
	var req I
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "datos inválidos")
		return
	}

	v, err := h.store.Create(c.Request.Context(), req)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.Created(c, v)
}

func (h crud[V, I, P]) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var patch P
	if err := c.ShouldBindJSON(&patch); err != nil {
		httperr.BadRequest(c, "invalid_request", "datos inválidos")
		return
	}

	v, err := h.store.Update(c.Request.Context(), id, patch)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, v)
}

func (h crud[V, I, P]) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.store.Delete(c.Request.Context(), id); err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.NoContent(c)
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		httperr.BadRequest(c, "invalid_id", "identificador inválido")
		return 0, false
	}
	return uint(id), true
}

func listFilter(c *gin.Context) derive.ListFilter {
	return derive.ListFilter{
		Query:  c.Query("query"),
		Status: c.Query("status"),
	}
}
