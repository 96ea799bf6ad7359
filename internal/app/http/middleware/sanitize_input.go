package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/microcosm-cc/bluemonday"
)

// SanitizeInput cleans all string fields of mutating requests with
// bluemonday. JSON bodies are rewritten; form and multipart values are
// sanitized in place after parsing, since the content routes accept
// multipart forms.
func SanitizeInput() gin.HandlerFunc {
	policy := bluemonday.StrictPolicy()

	return func(c *gin.Context) {
		if c.Request.Method != http.MethodPost &&
			c.Request.Method != http.MethodPut &&
			c.Request.Method != http.MethodPatch {
			c.Next()
			return
		}

		ct := c.ContentType()
		switch {
		case strings.HasPrefix(ct, "application/json"):
			var body map[string]interface{}
			buf, err := io.ReadAll(c.Request.Body)
			if err != nil {
				c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid body"})
				return
			}
			if err := json.Unmarshal(buf, &body); err != nil {
				c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Malformed JSON"})
				return
			}
			for k, v := range body {
				if str, ok := v.(string); ok {
					body[k] = policy.Sanitize(str)
				}
			}
			newBody, _ := json.Marshal(body)
			c.Request.Body = io.NopCloser(bytes.NewBuffer(newBody))
			c.Request.ContentLength = int64(len(newBody))

		case strings.HasPrefix(ct, "multipart/form-data"):
			if form, err := c.MultipartForm(); err == nil && form != nil {
				for k, vals := range form.Value {
					for i, v := range vals {
						vals[i] = policy.Sanitize(v)
					}
					form.Value[k] = vals
				}
			}
			// ParseMultipartForm copies values into PostForm; clean that
			// view too since handlers read through c.PostForm.
			for k, vals := range c.Request.PostForm {
				for i, v := range vals {
					vals[i] = policy.Sanitize(v)
				}
				c.Request.PostForm[k] = vals
			}

		case ct == "application/x-www-form-urlencoded":
			if err := c.Request.ParseForm(); err == nil {
				for k, vals := range c.Request.PostForm {
					for i, v := range vals {
						vals[i] = policy.Sanitize(v)
					}
					c.Request.PostForm[k] = vals
				}
			}
		}

		c.Next()
	}
}
