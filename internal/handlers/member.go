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

type MemberHandler struct {
	memberService *services.MemberService
}

func NewMemberHandler(db *gorm.DB) *MemberHandler {
	return &MemberHandler{memberService: services.NewMemberService(db)}
}

// Add handles the add-member form. Adding an existing member is reported as
// informational, not an error.
// POST /project/:id/member/add
func (h *MemberHandler) Add(c *gin.Context) {
	projectID := middleware.GetProjectID(c)
	detailURL := fmt.Sprintf("/project/%d", projectID)

	email := c.PostForm("email")

	_, err := h.memberService.AddMember(projectID, email)
	switch {
	case err == nil:
		flash.Set(c, flash.CategorySuccess, "Member added")
	case errors.Is(err, services.ErrAlreadyMember):
		flash.Set(c, flash.CategoryInfo, "User is already a member")
	case errors.Is(err, services.ErrUserNotFound):
		flash.Set(c, flash.CategoryWarning, "No user with that email")
	default:
		flash.Set(c, flash.CategoryDanger, "Failed to add member")
	}

	c.Redirect(http.StatusFound, detailURL)
}
