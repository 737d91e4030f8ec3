package services

import (
	"context"
	"errors"
	"log"
	"strings"

	"teamhub/internal/adapters/persistence/models"
	"teamhub/internal/adapters/persistence/repositories"

	"gorm.io/gorm"
)

// Attendance service errors
var (
	ErrInvalidAttendanceStatus = errors.New("attendance status must be PRESENT, ABSENT, LATE or EXCUSED")
)

// AttendanceService handles per-event attendance sheets
type AttendanceService struct {
	attendanceRepo *repositories.AttendanceRepository
	eventRepo      *repositories.EventRepository
	memberRepo     repositories.MemberRepository
}

// NewAttendanceService creates a new attendance service
func NewAttendanceService(
	attendanceRepo *repositories.AttendanceRepository,
	eventRepo *repositories.EventRepository,
	memberRepo repositories.MemberRepository,
) *AttendanceService {
	return &AttendanceService{
		attendanceRepo: attendanceRepo,
		eventRepo:      eventRepo,
		memberRepo:     memberRepo,
	}
}

// MarkAttendanceInput represents mark attendance input
type MarkAttendanceInput struct {
	MemberID uint   `json:"member_id" validate:"required"`
	Status   string `json:"status" validate:"required"`
	Remark   string `json:"remark"`
}

// EventAttendanceOutput represents the attendance sheet for one event
type EventAttendanceOutput struct {
	Event   *models.Event              `json:"event"`
	Records []*models.AttendanceRecord `json:"records"`
	Counts  map[string]int64           `json:"counts"`
}

// MarkAttendance marks one member's attendance for an event. Re-marking the
// same member overwrites the previous status instead of adding a row.
func (s *AttendanceService) MarkAttendance(ctx context.Context, eventID, markedBy uint, input *MarkAttendanceInput) (*models.AttendanceRecord, error) {
	status := strings.ToUpper(strings.TrimSpace(input.Status))
	switch status {
	case models.AttendancePresent, models.AttendanceAbsent, models.AttendanceLate, models.AttendanceExcused:
	default:
		return nil, ErrInvalidAttendanceStatus
	}

	if _, err := s.eventRepo.GetByID(ctx, eventID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}

	exists, err := s.memberRepo.Exists(ctx, input.MemberID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrMemberNotFound
	}

	record := &models.AttendanceRecord{
		EventID:  eventID,
		MemberID: input.MemberID,
		Status:   status,
		MarkedBy: markedBy,
		Remark:   input.Remark,
	}

	if err := s.attendanceRepo.Upsert(ctx, record); err != nil {
		return nil, err
	}

	log.Printf("✅ Attendance marked: event %d member %d -> %s", eventID, input.MemberID, status)
	return record, nil
}

// GetEventAttendance returns the attendance sheet for one event
func (s *AttendanceService) GetEventAttendance(ctx context.Context, eventID uint) (*EventAttendanceOutput, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}

	records, err := s.attendanceRepo.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}

	counts, err := s.attendanceRepo.CountByStatus(ctx, eventID)
	if err != nil {
		return nil, err
	}

	return &EventAttendanceOutput{
		Event:   event,
		Records: records,
		Counts:  counts,
	}, nil
}

// GetMemberAttendance returns one member's attendance history
func (s *AttendanceService) GetMemberAttendance(ctx context.Context, memberID uint) ([]*models.AttendanceRecord, error) {
	exists, err := s.memberRepo.Exists(ctx, memberID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrMemberNotFound
	}

	return s.attendanceRepo.ListByMember(ctx, memberID)
}
