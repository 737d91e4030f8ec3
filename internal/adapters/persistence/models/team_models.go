package models

import (
	"time"

	"gorm.io/gorm"
)

// Event types
const (
	EventTypeTraining = "TRAINING"
	EventTypeFriendly = "FRIENDLY"
)

// Event represents a training session or friendly match
type Event struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Title     string         `gorm:"size:150;not null" json:"title"`
	EventType string         `gorm:"size:20;not null;index" json:"event_type"`
	EventDate time.Time      `gorm:"type:date;not null;index" json:"event_date"`
	StartTime *string        `gorm:"size:10" json:"start_time"`
	Location  string         `gorm:"size:200" json:"location"`
	Opponent  *string        `gorm:"size:100" json:"opponent"`
	Notes     string         `gorm:"type:text" json:"notes"`
	CreatedBy uint           `gorm:"not null" json:"created_by"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Creator    *User              `gorm:"foreignKey:CreatedBy" json:"creator,omitempty"`
	Attendance []AttendanceRecord `gorm:"foreignKey:EventID" json:"attendance,omitempty"`
}

func (Event) TableName() string {
	return "events"
}

// Attendance statuses
const (
	AttendancePresent = "PRESENT"
	AttendanceAbsent  = "ABSENT"
	AttendanceLate    = "LATE"
	AttendanceExcused = "EXCUSED"
)

// AttendanceRecord represents one member's attendance at one event.
// One row per (event, member); re-marking updates in place.
type AttendanceRecord struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	EventID   uint      `gorm:"not null;uniqueIndex:idx_event_member" json:"event_id"`
	MemberID  uint      `gorm:"not null;uniqueIndex:idx_event_member" json:"member_id"`
	Status    string    `gorm:"size:20;not null" json:"status"`
	MarkedBy  uint      `gorm:"not null" json:"marked_by"`
	Remark    string    `gorm:"size:200" json:"remark"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Event  *Event  `gorm:"foreignKey:EventID" json:"event,omitempty"`
	Member *Member `gorm:"foreignKey:MemberID" json:"member,omitempty"`
	Marker *User   `gorm:"foreignKey:MarkedBy" json:"marker,omitempty"`
}

func (AttendanceRecord) TableName() string {
	return "attendance_records"
}

// LeadershipRole represents a leadership assignment (captain, coach, ...)
type LeadershipRole struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	MemberID  uint           `gorm:"not null;index" json:"member_id"`
	Title     string         `gorm:"size:50;not null" json:"title"`
	Since     time.Time      `gorm:"type:date;not null" json:"since"`
	Until     *time.Time     `gorm:"type:date" json:"until"`
	IsActive  bool           `gorm:"default:true;index" json:"is_active"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Member *Member `gorm:"foreignKey:MemberID" json:"member,omitempty"`
}

func (LeadershipRole) TableName() string {
	return "leadership_roles"
}

// Contribution represents a one-off contribution to the team (money or goods
// in money terms). The contributor is either a registered member or an
// external supporter named free-form.
type Contribution struct {
	ID              uint           `gorm:"primaryKey" json:"id"`
	MemberID        *uint          `gorm:"index" json:"member_id"`
	ContributorName string         `gorm:"size:100" json:"contributor_name"`
	Amount          float64        `gorm:"type:decimal(15,2);not null" json:"amount"`
	Purpose         string         `gorm:"size:200" json:"purpose"`
	ContributedAt   time.Time      `gorm:"type:date;not null" json:"contributed_at"`
	RecordedBy      uint           `gorm:"not null" json:"recorded_by"`
	CreatedAt       time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`

	Member   *Member `gorm:"foreignKey:MemberID" json:"member,omitempty"`
	Recorder *User   `gorm:"foreignKey:RecordedBy" json:"recorder,omitempty"`
}

func (Contribution) TableName() string {
	return "contributions"
}

// Inventory item conditions
const (
	ConditionGood    = "GOOD"
	ConditionWorn    = "WORN"
	ConditionDamaged = "DAMAGED"
)

// InventoryItem represents a piece of team equipment
type InventoryItem struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Name      string         `gorm:"size:100;not null" json:"name"`
	Category  string         `gorm:"size:50;index" json:"category"`
	Quantity  int            `gorm:"not null;default:0" json:"quantity"`
	Condition string         `gorm:"size:20;default:'GOOD'" json:"condition"`
	Notes     string         `gorm:"type:text" json:"notes"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (InventoryItem) TableName() string {
	return "inventory_items"
}
