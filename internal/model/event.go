package model

import "time"

// 活动状态
const (
	EventStatusUpcoming  = "upcoming"
	EventStatusOngoing   = "ongoing"
	EventStatusCompleted = "completed"
	EventStatusCancelled = "cancelled"
)

// 报名状态
const RegistrationStatusRegistered = "registered"

// Event 活动，对应 events；MaxParticipants 为空表示不限人数
type Event struct {
	ID              int64     `gorm:"primaryKey"                 json:"id"`
	Title           string    `gorm:"type:varchar(200);not null" json:"title"`
	Description     *string   `gorm:"type:text"                  json:"description"`
	DepartmentID    *int64    `                                  json:"department_id"`
	StartTime       time.Time `gorm:"not null"                   json:"start_time"`
	EndTime         time.Time `gorm:"not null"                   json:"end_time"`
	Location        *string   `gorm:"type:varchar(200)"          json:"location"`
	MaxParticipants *int      `                                  json:"max_participants"`
	Status          string    `gorm:"type:varchar(20);not null;default:'upcoming'" json:"status"`
	CreatedBy       *int64    `                                  json:"created_by"`
	Timestamps
}

// TableName 指定表名
func (Event) TableName() string { return "events" }

// EventDetail 活动列表/详情视图
type EventDetail struct {
	Event
	DepartmentName  *string `json:"department_name"`
	CreatedByName   *string `json:"created_by_name"`
	RegisteredCount int64   `json:"registered_count"`
}

// Registration 活动报名，对应 registrations，(event_id, member_id) 唯一
type Registration struct {
	ID           int64     `gorm:"primaryKey"                                    json:"id"`
	EventID      int64     `gorm:"not null"                                      json:"event_id"`
	MemberID     int64     `gorm:"not null"                                      json:"member_id"`
	Status       string    `gorm:"type:varchar(20);not null;default:'registered'" json:"status"`
	Notes        *string   `gorm:"type:text"                                     json:"notes"`
	RegisteredAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"            json:"registered_at"`
}

// TableName 指定表名
func (Registration) TableName() string { return "registrations" }

// RegistrationDetail 报名名单视图
type RegistrationDetail struct {
	Registration
	Name  *string `json:"name"`
	Phone *string `json:"phone"`
	Email *string `json:"email"`
}
