package services

import (
	"context"
	"time"

	"teamhub/internal/adapters/persistence/models"
	"teamhub/internal/core/feecalc"

	"gorm.io/gorm"
)

// DashboardService aggregates team-wide statistics for the overview screens
type DashboardService struct {
	db *gorm.DB
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{db: db}
}

// DashboardData represents the team overview
type DashboardData struct {
	// Member statistics
	TotalMembers  int64 `json:"total_members"`
	ActiveMembers int64 `json:"active_members"`

	// Event statistics
	TotalEvents       int64 `json:"total_events"`
	TrainingSessions  int64 `json:"training_sessions"`
	FriendlyMatches   int64 `json:"friendly_matches"`
	EventsThisMonth   int64 `json:"events_this_month"`

	// Fee statistics
	FeesCollected   float64 `json:"fees_collected"`
	FeesOutstanding float64 `json:"fees_outstanding"`
	OverdueFees     int64   `json:"overdue_fees"`

	// Contribution statistics
	TotalContributions float64 `json:"total_contributions"`

	// Recent activity
	UpcomingEvents []EventSummary `json:"upcoming_events"`
	RecentFees     []FeeSummary   `json:"recent_fees"`
}

// EventSummary represents a compact event row for the dashboard
type EventSummary struct {
	ID        uint      `json:"id"`
	Title     string    `json:"title"`
	EventType string    `json:"event_type"`
	EventDate time.Time `json:"event_date"`
	Location  string    `json:"location"`
}

// FeeSummary represents a compact fee row for the dashboard
type FeeSummary struct {
	ID         uint      `json:"id"`
	MemberID   uint      `json:"member_id"`
	Period     string    `json:"period"`
	Amount     float64   `json:"amount"`
	AmountPaid float64   `json:"amount_paid"`
	Status     string    `json:"status"`
	DueDate    time.Time `json:"due_date"`
}

// GetDashboard returns the aggregated team overview
func (s *DashboardService) GetDashboard(ctx context.Context) (*DashboardData, error) {
	data := &DashboardData{}
	db := s.db.WithContext(ctx)
	now := time.Now()

	// Member counts
	db.Model(&models.Member{}).Count(&data.TotalMembers)
	db.Model(&models.Member{}).Where("is_active = ?", true).Count(&data.ActiveMembers)

	// Event counts
	db.Model(&models.Event{}).Count(&data.TotalEvents)
	db.Model(&models.Event{}).Where("event_type = ?", models.EventTypeTraining).Count(&data.TrainingSessions)
	db.Model(&models.Event{}).Where("event_type = ?", models.EventTypeFriendly).Count(&data.FriendlyMatches)

	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	db.Model(&models.Event{}).
		Where("event_date >= ? AND event_date < ?", monthStart, monthStart.AddDate(0, 1, 0)).
		Count(&data.EventsThisMonth)

	// Fee totals
	db.Model(&models.MembershipFee{}).
		Select("COALESCE(SUM(amount_paid), 0)").
		Scan(&data.FeesCollected)
	db.Model(&models.MembershipFee{}).
		Select("COALESCE(SUM(GREATEST(amount - amount_paid, 0)), 0)").
		Scan(&data.FeesOutstanding)
	db.Model(&models.MembershipFee{}).
		Where("status <> ? AND due_date < ? AND end_date >= ?", string(feecalc.StatusPaid), now, now).
		Count(&data.OverdueFees)

	// Contribution total
	db.Model(&models.Contribution{}).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&data.TotalContributions)

	// Upcoming events
	var events []models.Event
	db.Where("event_date >= ?", now.Truncate(24*time.Hour)).
		Order("event_date ASC").
		Limit(5).
		Find(&events)
	for _, e := range events {
		data.UpcomingEvents = append(data.UpcomingEvents, EventSummary{
			ID:        e.ID,
			Title:     e.Title,
			EventType: e.EventType,
			EventDate: e.EventDate,
			Location:  e.Location,
		})
	}

	// Recent fees
	var fees []models.MembershipFee
	db.Order("created_at DESC").Limit(5).Find(&fees)
	for _, f := range fees {
		data.RecentFees = append(data.RecentFees, FeeSummary{
			ID:         f.ID,
			MemberID:   f.MemberID,
			Period:     f.Period,
			Amount:     f.Amount,
			AmountPaid: f.AmountPaid,
			Status:     f.Status,
			DueDate:    f.DueDate,
		})
	}

	return data, nil
}
