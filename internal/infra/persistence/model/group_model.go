// Package model contains the GORM-specific structs that map domain entities to tables.
package model

import (
	"time"
)

// GroupModel is the GORM-specific struct for the 'groups' table.
// The primary key doubles as the human-readable join code.
type GroupModel struct {
	ID          string `gorm:"type:varchar(16);primary_key"`
	DisplayName string `gorm:"type:varchar(120);not null"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (GroupModel) TableName() string {
	return "groups"
}

// MembershipModel is the GORM-specific struct for the 'group_members' table.
type MembershipModel struct {
	GroupID     string `gorm:"type:varchar(16);primary_key"`
	UserID      string `gorm:"type:varchar(128);primary_key"`
	DisplayName string `gorm:"type:varchar(120);not null"`
	JoinedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (MembershipModel) TableName() string {
	return "group_members"
}
