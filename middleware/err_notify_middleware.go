package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"

	teamnotify "gig-works-backend/lib/team-notify"
)

// ErrNotify forwards 5xx responses to the team channel, so store failures
// surface without anyone tailing the logs.
func ErrNotify() fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()
		statusCode := c.Response().StatusCode()

		if statusCode >= http.StatusInternalServerError {
			body := string(c.Response().Body())

			var data struct {
				Status  string `json:"status"`
				Message string `json:"message"`
			}
			unmErr := json.Unmarshal(c.Response().Body(), &data)
			if unmErr != nil {
				log.WithError(err).Warn("error unmarshalling response body in middleware")
			}

			method := c.Method()
			path := c.OriginalURL()
			if r := c.Route(); r != nil {
				path = r.Path
			}

			msg := data.Message
			if msg == "" {
				msg = body
			}

			go func() {
				notifyErr := teamnotify.Instance.Send(
					fmt.Sprintf("API error %d on %v %v: %v", statusCode, method, path, msg))
				if notifyErr != nil {
					log.WithError(notifyErr).Warn("error sending error notification")
				}
			}()
		}

		return err
	}
}
