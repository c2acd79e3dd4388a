package teamnotify

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"gig-works-backend/config"
)

// Provider posts a message to the internal team channel through an
// incoming webhook. Fire and forget: failures are logged by callers and
// never fail the triggering operation.
type Provider interface {
	Send(text string) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		webhookUrl: config.Conf.TeamNotify.WebhookUrl,
	}
}

type impl struct {
	webhookUrl string
}

func (i impl) Send(text string) error {
	if i.webhookUrl == "" {
		log.Warn("team notification skipped, webhook url is not configured")
		return nil
	}
	payload, err := json.Marshal(map[string]string{"text": text})
	if err != nil {
		return errors.Wrap(err, "failed to encode the webhook payload")
	}
	resp, err := http.Post(i.webhookUrl, "application/json", strings.NewReader(string(payload)))
	if err != nil {
		return errors.Wrap(err, "failed to call the team webhook")
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return fmt.Errorf("team webhook responded with status %v", resp.StatusCode)
	}
	return nil
}
