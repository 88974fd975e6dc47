package models

import "time"

type UserModel struct {
	ID         int64  `gorm:"primaryKey"`
	TelegramID int64  `gorm:"not null;uniqueIndex"`
	Phone      string `gorm:"size:20;not null"`
	FullName   string `gorm:"size:255;not null"`
	CityID     *int64 `gorm:"index"`
	Language   string `gorm:"size:5;not null;default:uk"`
	IsActive   bool   `gorm:"not null;default:true"`
	IsAdmin    bool   `gorm:"not null;default:false"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (UserModel) TableName() string { return "users" }
