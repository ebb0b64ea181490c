package otlearn

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/golang/glog"
)

// Notifier posts periodic progress updates to a webhook (a Slack
// incoming-webhook URL in practice) so a long-running simulation can
// be watched without tailing its log.
type Notifier struct {
	webhookURL string
	client     *http.Client
}

// NewNotifier returns a Notifier posting to url, or nil if url is
// empty (notifications disabled).
func NewNotifier(url string) *Notifier {
	if url == "" {
		return nil
	}
	return &Notifier{webhookURL: url, client: &http.Client{Timeout: 10 * time.Second}}
}

type notifyPayload struct {
	Text string `json:"text"`
}

// Notify posts a one-line progress message. Delivery failures are
// logged and otherwise ignored; a notification is a convenience, not
// part of the search's correctness.
func (n *Notifier) Notify(step int, currentEnergy, bestEnergy float64) {
	if n == nil {
		return
	}
	msg := notifyPayload{Text: progressLine(step, currentEnergy, bestEnergy)}
	body, err := json.Marshal(msg)
	if err != nil {
		glog.Warningf("notify: marshal failed: %v", err)
		return
	}
	resp, err := n.client.Post(n.webhookURL, "application/json", bytes.NewReader(body))
	if err != nil {
		glog.Warningf("notify: post failed: %v", err)
		return
	}
	resp.Body.Close()
}

func progressLine(step int, currentEnergy, bestEnergy float64) string {
	return fmt.Sprintf("step %d: energy=%.2f best=%.2f", step, currentEnergy, bestEnergy)
}
