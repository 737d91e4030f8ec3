package repositories

import (
	"context"

	"teamhub/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// AttendanceRepository handles attendance persistence
type AttendanceRepository struct {
	db *gorm.DB
}

// NewAttendanceRepository creates a new attendance repository
func NewAttendanceRepository(db *gorm.DB) *AttendanceRepository {
	return &AttendanceRepository{db: db}
}

// GetByEventAndMember gets the attendance row for one member at one event
func (r *AttendanceRepository) GetByEventAndMember(ctx context.Context, eventID, memberID uint) (*models.AttendanceRecord, error) {
	var record models.AttendanceRecord
	err := r.db.WithContext(ctx).
		Where("event_id = ? AND member_id = ?", eventID, memberID).
		First(&record).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// Upsert creates the attendance row or updates it in place on re-mark
func (r *AttendanceRepository) Upsert(ctx context.Context, record *models.AttendanceRecord) error {
	existing, err := r.GetByEventAndMember(ctx, record.EventID, record.MemberID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return r.db.WithContext(ctx).Create(record).Error
		}
		return err
	}

	existing.Status = record.Status
	existing.MarkedBy = record.MarkedBy
	existing.Remark = record.Remark
	if err := r.db.WithContext(ctx).Save(existing).Error; err != nil {
		return err
	}
	*record = *existing
	return nil
}

// ListByEvent lists the attendance sheet for an event
func (r *AttendanceRepository) ListByEvent(ctx context.Context, eventID uint) ([]*models.AttendanceRecord, error) {
	var records []*models.AttendanceRecord
	err := r.db.WithContext(ctx).
		Preload("Member").
		Where("event_id = ?", eventID).
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

// ListByMember lists one member's attendance history
func (r *AttendanceRepository) ListByMember(ctx context.Context, memberID uint) ([]*models.AttendanceRecord, error) {
	var records []*models.AttendanceRecord
	err := r.db.WithContext(ctx).
		Preload("Event").
		Where("member_id = ?", memberID).
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

// CountByStatus counts attendance rows for an event grouped by status
func (r *AttendanceRepository) CountByStatus(ctx context.Context, eventID uint) (map[string]int64, error) {
	var rows []struct {
		Status string
		Total  int64
	}
	err := r.db.WithContext(ctx).
		Model(&models.AttendanceRecord{}).
		Select("status, COUNT(*) as total").
		Where("event_id = ?", eventID).
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Total
	}
	return counts, nil
}
