package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"

	"teamhub/internal/adapters/persistence/repositories"
)

// ReportService builds CSV exports of the team's records
type ReportService struct {
	memberRepo     repositories.MemberRepository
	feeRepo        repositories.FeeRepository
	attendanceRepo *repositories.AttendanceRepository
	eventRepo      *repositories.EventRepository
}

// NewReportService creates a new report service
func NewReportService(
	memberRepo repositories.MemberRepository,
	feeRepo repositories.FeeRepository,
	attendanceRepo *repositories.AttendanceRepository,
	eventRepo *repositories.EventRepository,
) *ReportService {
	return &ReportService{
		memberRepo:     memberRepo,
		feeRepo:        feeRepo,
		attendanceRepo: attendanceRepo,
		eventRepo:      eventRepo,
	}
}

// ExportMembersCSV exports the member registry as CSV
func (s *ReportService) ExportMembersCSV(ctx context.Context) ([]byte, error) {
	members, err := s.memberRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"id", "full_name", "phone", "email", "position", "jersey_no", "joined_at", "active"}); err != nil {
		return nil, err
	}

	for _, m := range members {
		jersey := ""
		if m.JerseyNo != nil {
			jersey = strconv.Itoa(*m.JerseyNo)
		}
		row := []string{
			strconv.FormatUint(uint64(m.ID), 10),
			m.FullName,
			m.Phone,
			m.Email,
			m.Position,
			jersey,
			m.JoinedAt.Format("2006-01-02"),
			strconv.FormatBool(m.IsActive),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ExportFeesCSV exports the fee ledger as CSV, optionally filtered by status
func (s *ReportService) ExportFeesCSV(ctx context.Context, status string) ([]byte, error) {
	fees, _, err := s.feeRepo.List(ctx, 0, 10000, status)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"id", "member_id", "member_name", "period", "amount", "amount_paid", "remaining", "start_date", "end_date", "due_date", "status"}); err != nil {
		return nil, err
	}

	for _, f := range fees {
		memberName := ""
		if f.Member != nil {
			memberName = f.Member.FullName
		}
		row := []string{
			strconv.FormatUint(uint64(f.ID), 10),
			strconv.FormatUint(uint64(f.MemberID), 10),
			memberName,
			f.Period,
			fmt.Sprintf("%.2f", f.Amount),
			fmt.Sprintf("%.2f", f.AmountPaid),
			fmt.Sprintf("%.2f", f.RemainingBalance()),
			f.StartDate.Format("2006-01-02"),
			f.EndDate.Format("2006-01-02"),
			f.DueDate.Format("2006-01-02"),
			f.Status,
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ExportEventAttendanceCSV exports one event's attendance sheet as CSV
func (s *ReportService) ExportEventAttendanceCSV(ctx context.Context, eventID uint) ([]byte, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, ErrEventNotFound
	}

	records, err := s.attendanceRepo.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"event", "event_date", "member_id", "member_name", "status", "remark"}); err != nil {
		return nil, err
	}

	for _, r := range records {
		memberName := ""
		if r.Member != nil {
			memberName = r.Member.FullName
		}
		row := []string{
			event.Title,
			event.EventDate.Format("2006-01-02"),
			strconv.FormatUint(uint64(r.MemberID), 10),
			memberName,
			r.Status,
			r.Remark,
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
