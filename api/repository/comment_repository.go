package repository

import (
	"Postboard/api/models"

	"gorm.io/gorm"
)

type CommentRepository interface {
	ByPost(postID uint) ([]models.Comment, error)
	Save(comment *models.Comment) error
	CountByPost(postID uint) (int64, error)
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository { return &commentRepository{db: db} }

func (r *commentRepository) ByPost(postID uint) ([]models.Comment, error) {
	comments := []models.Comment{}
	err := r.db.Preload("Author").Where("post_id = ?", postID).
		Order(feedOrder).Find(&comments).Error
	return comments, err
}

func (r *commentRepository) Save(comment *models.Comment) error {
	return r.db.Create(comment).Error
}

func (r *commentRepository) CountByPost(postID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Comment{}).Where("post_id = ?", postID).Count(&count).Error
	return count, err
}
