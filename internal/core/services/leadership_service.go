package services

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"teamhub/internal/adapters/persistence/models"
	"teamhub/internal/adapters/persistence/repositories"

	"gorm.io/gorm"
)

// Leadership service errors
var (
	ErrLeadershipNotFound      = errors.New("leadership assignment not found")
	ErrLeadershipTitleRequired = errors.New("leadership title is required")
	ErrLeadershipDuplicate     = errors.New("member already holds this title")
)

// LeadershipService handles leadership assignments (captain, coach, treasurer)
type LeadershipService struct {
	leadershipRepo *repositories.LeadershipRepository
	memberRepo     repositories.MemberRepository
}

// NewLeadershipService creates a new leadership service
func NewLeadershipService(
	leadershipRepo *repositories.LeadershipRepository,
	memberRepo repositories.MemberRepository,
) *LeadershipService {
	return &LeadershipService{
		leadershipRepo: leadershipRepo,
		memberRepo:     memberRepo,
	}
}

// AssignLeadershipInput represents assign leadership input
type AssignLeadershipInput struct {
	MemberID uint   `json:"member_id" validate:"required"`
	Title    string `json:"title" validate:"required,min=2,max=50"`
	Since    string `json:"since"`
}

// AssignLeadership assigns a leadership title to a member. A member cannot
// hold the same title twice at the same time.
func (s *LeadershipService) AssignLeadership(ctx context.Context, input *AssignLeadershipInput) (*models.LeadershipRole, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, ErrLeadershipTitleRequired
	}

	exists, err := s.memberRepo.Exists(ctx, input.MemberID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrMemberNotFound
	}

	_, err = s.leadershipRepo.GetActiveByMemberAndTitle(ctx, input.MemberID, title)
	if err == nil {
		return nil, ErrLeadershipDuplicate
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	since := time.Now()
	if input.Since != "" {
		parsed, err := time.Parse("2006-01-02", input.Since)
		if err != nil {
			return nil, errors.New("since must be YYYY-MM-DD")
		}
		since = parsed
	}

	role := &models.LeadershipRole{
		MemberID: input.MemberID,
		Title:    title,
		Since:    since,
		IsActive: true,
	}

	if err := s.leadershipRepo.Create(ctx, role); err != nil {
		return nil, err
	}

	log.Printf("✅ Leadership assigned: member %d -> %s", input.MemberID, title)
	return role, nil
}

// EndLeadership ends an active leadership assignment
func (s *LeadershipService) EndLeadership(ctx context.Context, id uint) (*models.LeadershipRole, error) {
	role, err := s.leadershipRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLeadershipNotFound
		}
		return nil, err
	}

	now := time.Now()
	role.Until = &now
	role.IsActive = false

	if err := s.leadershipRepo.Update(ctx, role); err != nil {
		return nil, err
	}

	return role, nil
}

// DeleteLeadership removes an assignment entirely
func (s *LeadershipService) DeleteLeadership(ctx context.Context, id uint) error {
	if _, err := s.leadershipRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrLeadershipNotFound
		}
		return err
	}
	return s.leadershipRepo.Delete(ctx, id)
}

// ListLeadership lists assignments, optionally only active ones
func (s *LeadershipService) ListLeadership(ctx context.Context, activeOnly bool) ([]*models.LeadershipRole, error) {
	return s.leadershipRepo.List(ctx, activeOnly)
}
