package repository

import (
	"Postboard/api/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FollowRepository interface {
	// Create inserts the edge and reports whether a row was actually written;
	// an existing pair is a no-op thanks to the unique index.
	Create(followerID, followedID uint) (bool, error)
	Delete(followerID, followedID uint) (int64, error)
	Exists(followerID, followedID uint) (bool, error)
	FollowedIDs(followerID uint) ([]uint, error)
}

type followRepository struct {
	db *gorm.DB
}

func NewFollowRepository(db *gorm.DB) FollowRepository { return &followRepository{db: db} }

func (r *followRepository) Create(followerID, followedID uint) (bool, error) {
	follow := models.Follow{FollowerID: followerID, FollowedID: followedID}
	result := r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&follow)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *followRepository) Delete(followerID, followedID uint) (int64, error) {
	result := r.db.Where("follower_id = ? AND followed_id = ?", followerID, followedID).
		Delete(&models.Follow{})
	return result.RowsAffected, result.Error
}

func (r *followRepository) Exists(followerID, followedID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Follow{}).
		Where("follower_id = ? AND followed_id = ?", followerID, followedID).
		Count(&count).Error
	return count > 0, err
}

func (r *followRepository) FollowedIDs(followerID uint) ([]uint, error) {
	var ids []uint
	err := r.db.Model(&models.Follow{}).
		Where("follower_id = ?", followerID).
		Pluck("followed_id", &ids).Error
	return ids, err
}
