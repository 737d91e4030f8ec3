package models

import (
	"time"

	"gorm.io/gorm"

	"teamhub/internal/core/feecalc"
)

// MembershipFee represents one member's fee obligation for one billing
// period. StartDate, EndDate, DueDate and Amount are derived from the period
// catalog at creation time and never accepted from the client. AmountPaid
// only grows: payments are appended as FeePayment rows and rolled up here.
type MembershipFee struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	MemberID   uint           `gorm:"not null;index" json:"member_id"`
	Period     string         `gorm:"size:20;not null" json:"period"`
	Amount     float64        `gorm:"type:decimal(15,2);not null" json:"amount"`
	AmountPaid float64        `gorm:"type:decimal(15,2);not null;default:0" json:"amount_paid"`
	StartDate  time.Time      `gorm:"type:date;not null;index" json:"start_date"`
	EndDate    time.Time      `gorm:"type:date;not null" json:"end_date"`
	DueDate    time.Time      `gorm:"type:date;not null" json:"due_date"`
	Status     string         `gorm:"size:20;not null;default:'pending'" json:"status"`
	CreatedBy  uint           `gorm:"not null" json:"created_by"`
	CreatedAt  time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`

	Member   *Member      `gorm:"foreignKey:MemberID" json:"member,omitempty"`
	Payments []FeePayment `gorm:"foreignKey:FeeID" json:"payments,omitempty"`
}

func (MembershipFee) TableName() string {
	return "membership_fees"
}

// ToRecord maps the row onto the calculator's record type.
func (f *MembershipFee) ToRecord() feecalc.Record {
	return feecalc.Record{
		StartDate:  f.StartDate,
		EndDate:    f.EndDate,
		DueDate:    f.DueDate,
		Amount:     f.Amount,
		AmountPaid: f.AmountPaid,
	}
}

// RemainingBalance is the outstanding amount on this fee.
func (f *MembershipFee) RemainingBalance() float64 {
	return feecalc.RemainingBalance(f.Amount, f.AmountPaid)
}

// MembershipFeeResponse DTO
type MembershipFeeResponse struct {
	ID               uint      `json:"id"`
	MemberID         uint      `json:"member_id"`
	MemberName       string    `json:"member_name,omitempty"`
	Period           string    `json:"period"`
	Amount           float64   `json:"amount"`
	AmountPaid       float64   `json:"amount_paid"`
	RemainingBalance float64   `json:"remaining_balance"`
	StartDate        time.Time `json:"start_date"`
	EndDate          time.Time `json:"end_date"`
	DueDate          time.Time `json:"due_date"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"created_at"`
}

func (f *MembershipFee) ToResponse() *MembershipFeeResponse {
	resp := &MembershipFeeResponse{
		ID:               f.ID,
		MemberID:         f.MemberID,
		Period:           f.Period,
		Amount:           f.Amount,
		AmountPaid:       f.AmountPaid,
		RemainingBalance: f.RemainingBalance(),
		StartDate:        f.StartDate,
		EndDate:          f.EndDate,
		DueDate:          f.DueDate,
		Status:           f.Status,
		CreatedAt:        f.CreatedAt,
	}
	if f.Member != nil {
		resp.MemberName = f.Member.FullName
	}
	return resp
}

// FeePayment represents one recorded payment against a fee
type FeePayment struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	FeeID      uint      `gorm:"not null;index" json:"fee_id"`
	Amount     float64   `gorm:"type:decimal(15,2);not null" json:"amount"`
	Method     string    `gorm:"size:30" json:"method"`
	Reference  string    `gorm:"size:100" json:"reference"`
	PaidAt     time.Time `gorm:"not null" json:"paid_at"`
	RecordedBy uint      `gorm:"not null" json:"recorded_by"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`

	Fee      *MembershipFee `gorm:"foreignKey:FeeID" json:"fee,omitempty"`
	Recorder *User          `gorm:"foreignKey:RecordedBy" json:"recorder,omitempty"`
}

func (FeePayment) TableName() string {
	return "fee_payments"
}
