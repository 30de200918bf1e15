package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/synergysphere/synergysphere/internal/models"
	"github.com/synergysphere/synergysphere/pkg/response"
	"gorm.io/gorm"
)

const ContextProjectID = "project_id"

// MembershipRequired gates every /project/:id route on an exact
// (project, user) membership lookup. A missing membership yields 403 before
// the project is even loaded, so non-members learn nothing beyond the denial.
func MembershipRequired(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		projectID, err := strconv.ParseUint(c.Param("id"), 10, 32)
		if err != nil {
			response.NotFound(c, "project not found")
			c.Abort()
			return
		}

		userID := GetUserID(c)

		var count int64
		if err := db.Model(&models.ProjectMember{}).
			Where("project_id = ? AND user_id = ?", uint(projectID), userID).
			Count(&count).Error; err != nil {
			response.ServerError(c, "membership lookup failed")
			c.Abort()
			return
		}

		if count == 0 {
			response.Forbidden(c, "you are not a member of this project")
			c.Abort()
			return
		}

		c.Set(ContextProjectID, uint(projectID))
		c.Next()
	}
}

// GetProjectID gets the membership-checked project ID from context.
func GetProjectID(c *gin.Context) uint {
	if id, exists := c.Get(ContextProjectID); exists {
		return id.(uint)
	}
	return 0
}
