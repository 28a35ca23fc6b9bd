package httpapi

import (
	"github.com/gin-gonic/gin"
)

// stream pushes every schedule change as a server-sent "change" event until
// the client goes away.
func (s *Server) stream(c *gin.Context) {
	ch, stop := s.changes.Subscribe()
	defer stop()

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Writer.Flush()

	ctx := c.Request.Context()
	for {
		select {
		case <-ctx.Done():
			return
		case change, ok := <-ch:
			if !ok {
				return
			}
			c.SSEvent("change", change)
			c.Writer.Flush()
		}
	}
}
