package clients

import (
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"
)

type notification struct {
	Event     string    `json:"event"`
	AccountID int       `json:"account_id"`
	Payload   any       `json:"payload,omitempty"`
	SentAt    time.Time `json:"sent_at"`
}

// Notifier delivers outbound webhook events. Delivery is fire-and-forget:
// failures are logged, never returned to the caller.
type Notifier struct {
	client HTTPClientI
	url    string
}

func NewNotifier(url string) *Notifier {
	return &Notifier{
		client: &HTTPClientAdapter{client: &http.Client{Timeout: timeout}},
		url:    url,
	}
}

func (n *Notifier) Notify(event string, accountID int, payload any) {
	if n.url == "" {
		zap.L().Debug("notification webhook not configured, skipping",
			zap.String("event", event), zap.Int("accountID", accountID))
		return
	}

	body, err := json.Marshal(notification{
		Event:     event,
		AccountID: accountID,
		Payload:   payload,
		SentAt:    time.Now(),
	})
	if err != nil {
		zap.L().Error("failed to marshal notification", zap.String("event", event), zap.Error(err))
		return
	}

	statusCode, _, err := n.client.Post(n.url, nil, body)
	if err != nil {
		zap.L().Error("failed to deliver notification",
			zap.String("event", event), zap.Int("accountID", accountID), zap.Error(err))
		return
	}
	if statusCode >= http.StatusBadRequest {
		zap.L().Error("notification endpoint rejected event",
			zap.String("event", event), zap.Int("status", statusCode))
	}
}

func (n *Notifier) SetClient(mock HTTPClientI) {
	n.client = mock
}
