package models

import (
	"strings"
	"time"

	"github.com/twinj/uuid"
	"gorm.io/gorm"
)

type ResetPassword struct {
	ID        uint      `gorm:"primary_key;autoIncrement" json:"id"`
	Email     string    `gorm:"size:100;not null" json:"email"`
	Token     string    `gorm:"size:255;not null;unique" json:"token"`
	CreatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (rp *ResetPassword) BeforeCreate(tx *gorm.DB) (err error) {
	if strings.TrimSpace(rp.Token) == "" {
		rp.Token = uuid.NewV4().String()
	}
	return nil
}

func (rp *ResetPassword) Prepare() {
	rp.Email = strings.ToLower(strings.TrimSpace(rp.Email))
	rp.CreatedAt = time.Now()
}

func (rp *ResetPassword) SaveDetails(db *gorm.DB) (*ResetPassword, error) {
	err := db.Create(&rp).Error
	if err != nil {
		return nil, err
	}
	return rp, nil
}

func (rp *ResetPassword) DeleteDetails(db *gorm.DB) (int64, error) {
	result := db.Where("token = ?", rp.Token).Delete(&ResetPassword{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
