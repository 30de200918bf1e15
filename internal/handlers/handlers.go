package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/synergysphere/synergysphere/pkg/flash"
	"github.com/synergysphere/synergysphere/pkg/response"
)

// view sends a page's view model, attaching any pending flash message.
// Rendering itself is the frontend's job; handlers only shape the data.
func view(c *gin.Context, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	if msg := flash.Consume(c); msg != nil {
		data["flash"] = msg
	}
	response.Success(c, data)
}
