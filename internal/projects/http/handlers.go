package http

import (
	"bytes"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/rs/zerolog"

	"github.com/GoSim-25-26J-441/portfolio-backend/internal/auth"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/projects/domain"
)

const (
	msgNotFound       = "Project not found"
	msgNoData         = "No data provided"
	msgMissingFields  = "Missing required fields"
	msgAlreadyExists  = "Project with this ID already exists"
	msgDeleted        = "Project deleted successfully"
	msgInvalidJSON    = "Invalid JSON body"
	msgInvalidTypes   = "Invalid field types"
	msgInternalServer = "Internal server error"
)

var (
	errNoData       = errors.New(msgNoData)
	errInvalidJSON  = errors.New(msgInvalidJSON)
	errInvalidTypes = errors.New(msgInvalidTypes)
)

func (h *Handler) list(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context())
	if err != nil {
		h.internalError(c, "list projects", err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) get(c *gin.Context) {
	p, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, "get project", err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *Handler) create(c *gin.Context) {
	payload, err := decodePayload(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	if err := h.validate.Struct(payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": msgMissingFields})
		return
	}

	p, err := h.svc.Create(c.Request.Context(), payload.project())
	if err != nil {
		h.fail(c, "create project", err)
		return
	}
	audit(c, "project created", p.ID)
	c.JSON(http.StatusCreated, p)
}

func (h *Handler) update(c *gin.Context) {
	id := c.Param("id")

	// existence is checked before the body is looked at
	if _, err := h.svc.Get(c.Request.Context(), id); err != nil {
		h.fail(c, "get project", err)
		return
	}

	payload, err := decodePayload(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	p, err := h.svc.Update(c.Request.Context(), id, payload.patch())
	if err != nil {
		h.fail(c, "update project", err)
		return
	}
	audit(c, "project updated", id)
	c.JSON(http.StatusOK, p)
}

func (h *Handler) delete(c *gin.Context) {
	id := c.Param("id")
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		h.fail(c, "delete project", err)
		return
	}
	audit(c, "project deleted", id)
	c.JSON(http.StatusOK, gin.H{"message": msgDeleted})
}

// decodePayload reads the request body as a JSON object. An empty body or an
// empty object is errNoData.
func decodePayload(c *gin.Context) (projectPayload, error) {
	var payload projectPayload

	body, err := c.GetRawData()
	if err != nil {
		return payload, errInvalidJSON
	}
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return payload, errNoData
	}

	var raw map[string]any
	if err := binding.JSON.BindBody(body, &raw); err != nil {
		return payload, errInvalidJSON
	}
	if len(raw) == 0 {
		return payload, errNoData
	}

	// the body is a valid object, so any failure here is a type mismatch
	if err := binding.JSON.BindBody(body, &payload); err != nil {
		return payload, errInvalidTypes
	}
	return payload, nil
}

func (h *Handler) fail(c *gin.Context, op string, err error) {
	switch {
	case errors.Is(err, domain.ErrProjectNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": msgNotFound})
	case errors.Is(err, domain.ErrProjectExists):
		c.JSON(http.StatusConflict, gin.H{"message": msgAlreadyExists})
	default:
		h.internalError(c, op, err)
	}
}

func audit(c *gin.Context, msg, id string) {
	zerolog.Ctx(c.Request.Context()).Info().
		Str("project_id", id).
		Str("username", auth.Username(c)).
		Str("token_jti", c.GetString(auth.CtxTokenID)).
		Msg(msg)
}

func (h *Handler) internalError(c *gin.Context, op string, err error) {
	zerolog.Ctx(c.Request.Context()).Error().Err(err).Str("op", op).Msg("project request failed")
	c.JSON(http.StatusInternalServerError, gin.H{"message": msgInternalServer})
}
