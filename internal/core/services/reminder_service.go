package services

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// ReminderService runs the daily overdue-fee scan and pushes reminders
// through the notification service.
type ReminderService struct {
	feeService          *FeeService
	notificationService *NotificationService
	cron                *cron.Cron
}

// NewReminderService creates a new reminder service
func NewReminderService(
	feeService *FeeService,
	notificationService *NotificationService,
) *ReminderService {
	return &ReminderService{
		feeService:          feeService,
		notificationService: notificationService,
		cron:                cron.New(),
	}
}

// Start schedules the daily scan at 08:00 server time
func (s *ReminderService) Start() error {
	_, err := s.cron.AddFunc("0 8 * * *", func() {
		if err := s.RunOverdueScan(context.Background()); err != nil {
			log.Printf("⚠️ Overdue fee scan failed: %v", err)
		}
	})
	if err != nil {
		return err
	}

	s.cron.Start()
	log.Println("✅ Fee reminder scheduler started (daily 08:00)")
	return nil
}

// Stop stops the scheduler and waits for a running scan to finish
func (s *ReminderService) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	log.Println("✅ Fee reminder scheduler stopped")
}

// RunOverdueScan finds fees past their due date but still inside their
// coverage window and sends one reminder per fee.
func (s *ReminderService) RunOverdueScan(ctx context.Context) error {
	now := time.Now()

	fees, err := s.feeService.ListOverdueFees(ctx, now)
	if err != nil {
		return err
	}

	if len(fees) == 0 {
		log.Println("✅ Overdue fee scan: nothing due")
		return nil
	}

	for _, fee := range fees {
		memberName := ""
		if fee.Member != nil {
			memberName = fee.Member.FullName
		}
		s.notificationService.NotifyFeeOverdue(fee, memberName)
	}

	log.Printf("✅ Overdue fee scan: %d reminder(s) sent", len(fees))
	return nil
}
