package http

import (
	"encoding/json"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"

	"userboard/internal/features/user/service"
)

type UserHandler struct {
	service service.UserService
}

func NewUserHandler(service service.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// RegisterRoutes mounts the page on the engine root and the JSON listing on
// the API group.
func (h *UserHandler) RegisterRoutes(router *gin.Engine, api *gin.RouterGroup) {
	router.GET("/", h.Index)
	api.GET("/users", h.ListUsers)
}

// Index renders the directory page. The button label is the JSON of the full
// user listing, embedded verbatim: an empty table renders the literal [],
// and nothing in the payload is sanitized or truncated.
func (h *UserHandler) Index(c *gin.Context) {
	users, err := h.service.List(c.Request.Context())
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	payload, err := json.Marshal(users)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.HTML(http.StatusOK, "index.html", gin.H{
		"Users": template.HTML(payload),
	})
}

// ListUsers exposes the same listing as JSON.
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.service.List(c.Request.Context())
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, users)
}
