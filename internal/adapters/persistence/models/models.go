package models

import (
	"time"

	"gorm.io/gorm"

	"teamhub/internal/core/authz"
)

// User represents the users table (accounts that can sign in)
type User struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	MemberID  *uint          `gorm:"uniqueIndex" json:"member_id"`
	Username  string         `gorm:"uniqueIndex;size:50;not null" json:"username"`
	Email     string         `gorm:"uniqueIndex;size:100;not null" json:"email"`
	Password  string         `gorm:"size:255;not null" json:"-"`
	Role      string         `gorm:"size:20;default:'member'" json:"role"`
	IsActive  bool           `gorm:"default:true" json:"is_active"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Member *Member `gorm:"foreignKey:MemberID" json:"-"`
}

func (User) TableName() string {
	return "users"
}

// ResolvedRole returns the account role, falling back to the default role
// when the stored value is empty or unknown.
func (u *User) ResolvedRole() authz.Role {
	role := authz.Role(u.Role)
	if !role.Valid() {
		return authz.DefaultRole
	}
	return role
}

// UserResponse DTO
type UserResponse struct {
	ID        uint      `json:"id"`
	MemberID  *uint     `json:"member_id,omitempty"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"is_active"`
	FullName  string    `json:"full_name,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func (u *User) ToResponse() *UserResponse {
	return &UserResponse{
		ID:        u.ID,
		MemberID:  u.MemberID,
		Username:  u.Username,
		Email:     u.Email,
		Role:      string(u.ResolvedRole()),
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
	}
}

// RefreshToken represents refresh_tokens table
type RefreshToken struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	UserID    uint       `gorm:"index;not null" json:"user_id"`
	TokenHash string     `gorm:"size:255;not null;index" json:"-"`
	ExpiresAt time.Time  `gorm:"not null" json:"expires_at"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
	RevokedAt *time.Time `gorm:"index" json:"revoked_at"`
	User      User       `gorm:"foreignKey:UserID" json:"-"`
}

func (RefreshToken) TableName() string {
	return "refresh_tokens"
}

func (rt *RefreshToken) IsRevoked() bool {
	return rt.RevokedAt != nil
}

func (rt *RefreshToken) IsExpired() bool {
	return time.Now().After(rt.ExpiresAt)
}

// Member represents the team member registry
type Member struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	FullName  string         `gorm:"size:100;not null" json:"full_name"`
	Phone     string         `gorm:"size:30" json:"phone"`
	Email     string         `gorm:"size:100" json:"email"`
	Position  string         `gorm:"size:50" json:"position"`
	JerseyNo  *int           `json:"jersey_no"`
	JoinedAt  time.Time      `gorm:"type:date" json:"joined_at"`
	IsActive  bool           `gorm:"default:true" json:"is_active"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Member) TableName() string {
	return "members"
}

// AutoMigrate runs auto migration for all tables
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&RefreshToken{},
		&Member{},
		&Event{},
		&AttendanceRecord{},
		&LeadershipRole{},
		&Contribution{},
		&MembershipFee{},
		&FeePayment{},
		&InventoryItem{},
	)
}
