package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"teamhub/internal/adapters/persistence/models"
)

// NotificationService pushes team announcements to a chat webhook. Disabled
// unless TEAM_WEBHOOK_URL is configured; every notify method is then a no-op.
type NotificationService struct {
	webhookURL string
	enabled    bool
	client     *http.Client
}

// NewNotificationService creates a new notification service
func NewNotificationService() *NotificationService {
	url := os.Getenv("TEAM_WEBHOOK_URL")
	return &NotificationService{
		webhookURL: url,
		enabled:    url != "",
		client:     &http.Client{Timeout: 10 * time.Second},
	}
}

// IsEnabled checks if notification is enabled
func (s *NotificationService) IsEnabled() bool {
	return s.enabled
}

// sendWebhook posts a message to the configured webhook
func (s *NotificationService) sendWebhook(message string) error {
	if !s.enabled {
		return nil
	}

	payload, err := json.Marshal(map[string]string{"text": message})
	if err != nil {
		return err
	}

	resp, err := s.client.Post(s.webhookURL, "application/json", bytes.NewReader(payload))
	if err != nil {
		log.Printf("⚠️ Webhook delivery failed: %v", err)
		return err
	}
	defer resp.Body.Close()

	return nil
}

// NotifyNewEvent announces a newly scheduled event
func (s *NotificationService) NotifyNewEvent(event *models.Event) {
	kind := "Training session"
	opponent := ""
	if event.EventType == models.EventTypeFriendly {
		kind = "Friendly match"
		if event.Opponent != nil {
			opponent = fmt.Sprintf(" vs %s", *event.Opponent)
		}
	}

	message := fmt.Sprintf(`📅 New event scheduled

%s: %s%s
Date: %s
Location: %s`,
		kind,
		event.Title,
		opponent,
		event.EventDate.Format("2006-01-02"),
		event.Location,
	)

	s.sendWebhook(message)
}

// NotifyFeeOverdue reminds about an overdue membership fee
func (s *NotificationService) NotifyFeeOverdue(fee *models.MembershipFee, memberName string) {
	message := fmt.Sprintf(`⏰ Membership fee overdue

Member: %s
Period: %s
Outstanding: %.2f
Due since: %s`,
		memberName,
		fee.Period,
		fee.RemainingBalance(),
		fee.DueDate.Format("2006-01-02"),
	)

	s.sendWebhook(message)
}

// NotifyFeePaid announces a fully settled fee
func (s *NotificationService) NotifyFeePaid(fee *models.MembershipFee, memberName string) {
	message := fmt.Sprintf(`✅ Membership fee settled

Member: %s
Period: %s
Amount: %.2f`,
		memberName,
		fee.Period,
		fee.Amount,
	)

	s.sendWebhook(message)
}
