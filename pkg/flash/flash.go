// Package flash implements one-shot status messages carried in a cookie:
// set on a redirect, shown on the next rendered page, then cleared.
package flash

import (
	"encoding/base64"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
)

const cookieName = "flash"

// Flash message categories.
const (
	CategorySuccess = "success"
	CategoryInfo    = "info"
	CategoryWarning = "warning"
	CategoryDanger  = "danger"
)

// Message is a single transient status message.
type Message struct {
	Category string `json:"category"`
	Text     string `json:"text"`
}

// Set stores a flash message to be consumed by the next view request.
func Set(c *gin.Context, category, text string) {
	data, err := json.Marshal(Message{Category: category, Text: text})
	if err != nil {
		return
	}
	encoded := base64.URLEncoding.EncodeToString(data)
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(cookieName, encoded, 300, "/", "", false, true)
}

// Consume returns the pending flash message, if any, and clears it.
func Consume(c *gin.Context) *Message {
	encoded, err := c.Cookie(cookieName)
	if err != nil || encoded == "" {
		return nil
	}

	// Clear regardless of whether decoding succeeds; a flash is shown once.
	c.SetCookie(cookieName, "", -1, "/", "", false, true)

	data, err := base64.URLEncoding.DecodeString(encoded)
	if err != nil {
		return nil
	}

	var msg Message
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil
	}
	return &msg
}
