package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/synergysphere/synergysphere/internal/middleware"
	"github.com/synergysphere/synergysphere/internal/services"
	"github.com/synergysphere/synergysphere/pkg/flash"
	"gorm.io/gorm"
)

type ChatHandler struct {
	chatService *services.ChatService
}

func NewChatHandler(db *gorm.DB) *ChatHandler {
	return &ChatHandler{chatService: services.NewChatService(db)}
}

// Post appends a chat message to the project's discussion.
// An empty message redirects back without a flash; it is not an error worth
// announcing.
// POST /project/:id/chat
func (h *ChatHandler) Post(c *gin.Context) {
	projectID := middleware.GetProjectID(c)
	detailURL := fmt.Sprintf("/project/%d", projectID)

	content := c.PostForm("content")

	if _, err := h.chatService.Post(projectID, middleware.GetUserID(c), content); err != nil {
		if !errors.Is(err, services.ErrEmptyMessage) {
			flash.Set(c, flash.CategoryDanger, "Failed to post message")
		}
		c.Redirect(http.StatusFound, detailURL)
		return
	}

	c.Redirect(http.StatusFound, detailURL)
}
