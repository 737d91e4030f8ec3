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

// Contribution service errors
var (
	ErrContributionNotFound    = errors.New("contribution not found")
	ErrContributorRequired     = errors.New("contribution needs a member or a contributor name")
	ErrInvalidContributionAmt  = errors.New("contribution amount must be greater than zero")
	ErrInvalidContributionDate = errors.New("contributed_at must be YYYY-MM-DD")
)

// ContributionService handles one-off contributions to the team
type ContributionService struct {
	contributionRepo *repositories.ContributionRepository
	memberRepo       repositories.MemberRepository
}

// NewContributionService creates a new contribution service
func NewContributionService(
	contributionRepo *repositories.ContributionRepository,
	memberRepo repositories.MemberRepository,
) *ContributionService {
	return &ContributionService{
		contributionRepo: contributionRepo,
		memberRepo:       memberRepo,
	}
}

// RecordContributionInput represents record contribution input
type RecordContributionInput struct {
	MemberID        *uint   `json:"member_id"`
	ContributorName string  `json:"contributor_name"`
	Amount          float64 `json:"amount" validate:"required,gt=0"`
	Purpose         string  `json:"purpose"`
	ContributedAt   string  `json:"contributed_at"`
}

// UpdateContributionInput represents update contribution input
type UpdateContributionInput struct {
	Amount        *float64 `json:"amount"`
	Purpose       *string  `json:"purpose"`
	ContributedAt *string  `json:"contributed_at"`
}

// ListContributionsOutput represents list contributions output
type ListContributionsOutput struct {
	Contributions []*models.Contribution `json:"contributions"`
	Total         int64                  `json:"total"`
	TotalAmount   float64                `json:"total_amount"`
	Page          int                    `json:"page"`
	Limit         int                    `json:"limit"`
	TotalPages    int                    `json:"total_pages"`
}

// RecordContribution records a contribution. The contributor is either a
// registered member or an external supporter named free-form, never both
// missing.
func (s *ContributionService) RecordContribution(ctx context.Context, recordedBy uint, input *RecordContributionInput) (*models.Contribution, error) {
	if input.Amount <= 0 {
		return nil, ErrInvalidContributionAmt
	}

	name := strings.TrimSpace(input.ContributorName)
	if input.MemberID == nil && name == "" {
		return nil, ErrContributorRequired
	}

	if input.MemberID != nil {
		exists, err := s.memberRepo.Exists(ctx, *input.MemberID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, ErrMemberNotFound
		}
	}

	contributedAt := time.Now()
	if input.ContributedAt != "" {
		parsed, err := time.Parse("2006-01-02", input.ContributedAt)
		if err != nil {
			return nil, ErrInvalidContributionDate
		}
		contributedAt = parsed
	}

	contribution := &models.Contribution{
		MemberID:        input.MemberID,
		ContributorName: name,
		Amount:          input.Amount,
		Purpose:         strings.TrimSpace(input.Purpose),
		ContributedAt:   contributedAt,
		RecordedBy:      recordedBy,
	}

	if err := s.contributionRepo.Create(ctx, contribution); err != nil {
		return nil, err
	}

	log.Printf("✅ Contribution recorded: %.2f (ID: %d)", contribution.Amount, contribution.ID)
	return contribution, nil
}

// GetContributionByID gets a contribution by ID
func (s *ContributionService) GetContributionByID(ctx context.Context, id uint) (*models.Contribution, error) {
	contribution, err := s.contributionRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContributionNotFound
		}
		return nil, err
	}
	return contribution, nil
}

// UpdateContribution corrects a contribution record. The contributor is
// fixed at recording time; only the amount, purpose and date can change.
func (s *ContributionService) UpdateContribution(ctx context.Context, id uint, input *UpdateContributionInput) (*models.Contribution, error) {
	contribution, err := s.GetContributionByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Amount != nil {
		if *input.Amount <= 0 {
			return nil, ErrInvalidContributionAmt
		}
		contribution.Amount = *input.Amount
	}
	if input.Purpose != nil {
		contribution.Purpose = strings.TrimSpace(*input.Purpose)
	}
	if input.ContributedAt != nil {
		parsed, err := time.Parse("2006-01-02", *input.ContributedAt)
		if err != nil {
			return nil, ErrInvalidContributionDate
		}
		contribution.ContributedAt = parsed
	}

	if err := s.contributionRepo.Update(ctx, contribution); err != nil {
		return nil, err
	}

	log.Printf("✅ Contribution updated: %.2f (ID: %d)", contribution.Amount, contribution.ID)
	return contribution, nil
}

// DeleteContribution removes a contribution record
func (s *ContributionService) DeleteContribution(ctx context.Context, id uint) error {
	if _, err := s.GetContributionByID(ctx, id); err != nil {
		return err
	}
	return s.contributionRepo.Delete(ctx, id)
}

// ListContributions lists contributions with pagination plus the running total
func (s *ContributionService) ListContributions(ctx context.Context, page, limit int) (*ListContributionsOutput, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}

	offset := (page - 1) * limit

	contributions, total, err := s.contributionRepo.List(ctx, offset, limit)
	if err != nil {
		return nil, err
	}

	totalAmount, err := s.contributionRepo.SumTotal(ctx)
	if err != nil {
		return nil, err
	}

	totalPages := int(total) / limit
	if int(total)%limit > 0 {
		totalPages++
	}

	return &ListContributionsOutput{
		Contributions: contributions,
		Total:         total,
		TotalAmount:   totalAmount,
		Page:          page,
		Limit:         limit,
		TotalPages:    totalPages,
	}, nil
}
