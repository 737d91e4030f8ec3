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

// Member service errors
var (
	ErrMemberNotFound     = errors.New("member not found")
	ErrMemberNameRequired = errors.New("member full name is required")
)

// MemberService handles the team member registry
type MemberService struct {
	memberRepo repositories.MemberRepository
}

// NewMemberService creates a new member service
func NewMemberService(memberRepo repositories.MemberRepository) *MemberService {
	return &MemberService{memberRepo: memberRepo}
}

// CreateMemberInput represents create member input
type CreateMemberInput struct {
	FullName string `json:"full_name" validate:"required,min=2,max=100"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	Position string `json:"position"`
	JerseyNo *int   `json:"jersey_no"`
	JoinedAt string `json:"joined_at"`
}

// UpdateMemberInput represents update member input
type UpdateMemberInput struct {
	FullName *string `json:"full_name"`
	Phone    *string `json:"phone"`
	Email    *string `json:"email"`
	Position *string `json:"position"`
	JerseyNo *int    `json:"jersey_no"`
	IsActive *bool   `json:"is_active"`
}

// ListMembersInput represents list members input
type ListMembersInput struct {
	Page       int
	Limit      int
	ActiveOnly bool
}

// ListMembersOutput represents list members output
type ListMembersOutput struct {
	Members    []*models.Member `json:"members"`
	Total      int64            `json:"total"`
	Page       int              `json:"page"`
	Limit      int              `json:"limit"`
	TotalPages int              `json:"total_pages"`
}

// CreateMember creates a new member registry entry
func (s *MemberService) CreateMember(ctx context.Context, input *CreateMemberInput) (*models.Member, error) {
	name := strings.TrimSpace(input.FullName)
	if name == "" {
		return nil, ErrMemberNameRequired
	}

	joinedAt := time.Now()
	if input.JoinedAt != "" {
		parsed, err := time.Parse("2006-01-02", input.JoinedAt)
		if err != nil {
			return nil, errors.New("joined_at must be YYYY-MM-DD")
		}
		joinedAt = parsed
	}

	member := &models.Member{
		FullName: name,
		Phone:    strings.TrimSpace(input.Phone),
		Email:    strings.TrimSpace(input.Email),
		Position: strings.TrimSpace(input.Position),
		JerseyNo: input.JerseyNo,
		JoinedAt: joinedAt,
		IsActive: true,
	}

	if err := s.memberRepo.Create(ctx, member); err != nil {
		return nil, err
	}

	log.Printf("✅ Member created: %s (ID: %d)", member.FullName, member.ID)
	return member, nil
}

// GetMemberByID gets a member by ID
func (s *MemberService) GetMemberByID(ctx context.Context, id uint) (*models.Member, error) {
	member, err := s.memberRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, err
	}
	return member, nil
}

// UpdateMember updates a member registry entry
func (s *MemberService) UpdateMember(ctx context.Context, id uint, input *UpdateMemberInput) (*models.Member, error) {
	member, err := s.GetMemberByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.FullName != nil {
		name := strings.TrimSpace(*input.FullName)
		if name == "" {
			return nil, ErrMemberNameRequired
		}
		member.FullName = name
	}
	if input.Phone != nil {
		member.Phone = strings.TrimSpace(*input.Phone)
	}
	if input.Email != nil {
		member.Email = strings.TrimSpace(*input.Email)
	}
	if input.Position != nil {
		member.Position = strings.TrimSpace(*input.Position)
	}
	if input.JerseyNo != nil {
		member.JerseyNo = input.JerseyNo
	}
	if input.IsActive != nil {
		member.IsActive = *input.IsActive
	}

	if err := s.memberRepo.Update(ctx, member); err != nil {
		return nil, err
	}

	return member, nil
}

// DeleteMember soft deletes a member registry entry
func (s *MemberService) DeleteMember(ctx context.Context, id uint) error {
	if _, err := s.GetMemberByID(ctx, id); err != nil {
		return err
	}
	return s.memberRepo.Delete(ctx, id)
}

// ListMembers lists members with pagination
func (s *MemberService) ListMembers(ctx context.Context, input *ListMembersInput) (*ListMembersOutput, error) {
	if input.Page < 1 {
		input.Page = 1
	}
	if input.Limit < 1 {
		input.Limit = 20
	}
	if input.Limit > 100 {
		input.Limit = 100
	}

	offset := (input.Page - 1) * input.Limit

	members, total, err := s.memberRepo.List(ctx, offset, input.Limit, input.ActiveOnly)
	if err != nil {
		return nil, err
	}

	totalPages := int(total) / input.Limit
	if int(total)%input.Limit > 0 {
		totalPages++
	}

	return &ListMembersOutput{
		Members:    members,
		Total:      total,
		Page:       input.Page,
		Limit:      input.Limit,
		TotalPages: totalPages,
	}, nil
}

// SearchMembers searches members by name
func (s *MemberService) SearchMembers(ctx context.Context, query string, limit int) ([]*models.Member, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []*models.Member{}, nil
	}
	if limit < 1 || limit > 50 {
		limit = 20
	}
	return s.memberRepo.Search(ctx, query, limit)
}
