package repositories

import (
	"context"
	"time"

	"teamhub/internal/adapters/persistence/models"
)

// UserRepository defines user repository interface
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByMemberID(ctx context.Context, memberID uint) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, offset, limit int) ([]*models.User, int64, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	CountByRole(ctx context.Context, role string) (int64, error)
}

// RefreshTokenRepository defines refresh token repository interface
type RefreshTokenRepository interface {
	Create(ctx context.Context, token *models.RefreshToken) error
	GetByTokenHash(ctx context.Context, tokenHash string) (*models.RefreshToken, error)
	Revoke(ctx context.Context, id uint) error
	RevokeByTokenHash(ctx context.Context, tokenHash string) error
	RevokeAllByUserID(ctx context.Context, userID uint) error
	DeleteExpired(ctx context.Context) error
}

// MemberRepository defines the team-member registry interface
type MemberRepository interface {
	Create(ctx context.Context, member *models.Member) error
	GetByID(ctx context.Context, id uint) (*models.Member, error)
	Update(ctx context.Context, member *models.Member) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, offset, limit int, activeOnly bool) ([]*models.Member, int64, error)
	ListAll(ctx context.Context) ([]*models.Member, error)
	Search(ctx context.Context, query string, limit int) ([]*models.Member, error)
	Exists(ctx context.Context, id uint) (bool, error)
}

// FeeRepository defines the membership fee ledger interface
type FeeRepository interface {
	Create(ctx context.Context, fee *models.MembershipFee) error
	GetByID(ctx context.Context, id uint) (*models.MembershipFee, error)
	Update(ctx context.Context, fee *models.MembershipFee) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, offset, limit int, status string) ([]*models.MembershipFee, int64, error)
	ListByMember(ctx context.Context, memberID uint) ([]*models.MembershipFee, error)
	ListOverlapping(ctx context.Context, memberID uint, start, end time.Time) ([]*models.MembershipFee, error)
	ListOverdue(ctx context.Context, asOf time.Time) ([]*models.MembershipFee, error)
	CreatePayment(ctx context.Context, payment *models.FeePayment) error
	ListPayments(ctx context.Context, feeID uint) ([]*models.FeePayment, error)
	SumByStatus(ctx context.Context) (collected float64, outstanding float64, err error)
}
