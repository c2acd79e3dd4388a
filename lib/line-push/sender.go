package linepush

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"gig-works-backend/config"
)

// Provider pushes a text message to a worker's linked LINE identity.
// Delivery is best effort: callers log a failed send and keep their own
// result committed.
type Provider interface {
	Send(lineUserID, text string) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		pushUrl:      config.Conf.Line.PushUrl,
		channelToken: config.Conf.Line.ChannelToken,
	}
}

type impl struct {
	pushUrl      string
	channelToken string
}

type pushRequest struct {
	To       string        `json:"to"`
	Messages []textMessage `json:"messages"`
}

type textMessage struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

func (i impl) Send(lineUserID, text string) error {
	logger := log.WithField("line_user_id", lineUserID)
	if i.channelToken == "" {
		logger.Warn("push message skipped, LINE channel token is not configured")
		return nil
	}
	if lineUserID == "" {
		return errors.New("recipient identity is empty")
	}
	body, err := json.Marshal(pushRequest{
		To: lineUserID,
		Messages: []textMessage{
			{Type: "text", Text: text},
		},
	})
	if err != nil {
		return errors.Wrap(err, "failed to encode the push request")
	}
	req, err := http.NewRequest(http.MethodPost, i.pushUrl, bytes.NewReader(body))
	if err != nil {
		return errors.Wrap(err, "failed to build the push request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+i.channelToken)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "failed to call the push api")
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return fmt.Errorf("push api responded with status %v", resp.StatusCode)
	}
	logger.Info("push message sent")
	return nil
}
