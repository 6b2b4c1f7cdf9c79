package repository

import (
	"Postboard/api/models"

	"gorm.io/gorm"
)

// feedOrder is the canonical feed ordering: newest first, insertion order as
// the tiebreaker for equal timestamps.
const feedOrder = "created_at DESC, id DESC"

type PostRepository interface {
	All() ([]models.Post, error)
	ByID(id uint) (*models.Post, error)
	ByAuthor(authorID uint) ([]models.Post, error)
	ByAuthorsIn(authorIDs []uint) ([]models.Post, error)
	ByGroup(groupID uint) ([]models.Post, error)
	CountByAuthor(authorID uint) (int64, error)
	Save(post *models.Post) error
	Update(post *models.Post) error
	Delete(id uint) (int64, error)
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository { return &postRepository{db: db} }

func (r *postRepository) feed() *gorm.DB {
	return r.db.Preload("Author").Preload("Group").Order(feedOrder)
}

func (r *postRepository) All() ([]models.Post, error) {
	var posts []models.Post
	err := r.feed().Find(&posts).Error
	return posts, err
}

func (r *postRepository) ByID(id uint) (*models.Post, error) {
	var post models.Post
	if err := r.db.Preload("Author").Preload("Group").First(&post, id).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *postRepository) ByAuthor(authorID uint) ([]models.Post, error) {
	var posts []models.Post
	err := r.feed().Where("author_id = ?", authorID).Find(&posts).Error
	return posts, err
}

func (r *postRepository) ByAuthorsIn(authorIDs []uint) ([]models.Post, error) {
	posts := []models.Post{}
	if len(authorIDs) == 0 {
		return posts, nil
	}
	err := r.feed().Where("author_id IN ?", authorIDs).Find(&posts).Error
	return posts, err
}

func (r *postRepository) ByGroup(groupID uint) ([]models.Post, error) {
	var posts []models.Post
	err := r.feed().Where("group_id = ?", groupID).Find(&posts).Error
	return posts, err
}

func (r *postRepository) CountByAuthor(authorID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Post{}).Where("author_id = ?", authorID).Count(&count).Error
	return count, err
}

func (r *postRepository) Save(post *models.Post) error {
	return r.db.Create(post).Error
}

func (r *postRepository) Update(post *models.Post) error {
	return r.db.Model(&models.Post{}).Where("id = ?", post.ID).
		Updates(map[string]interface{}{
			"text":       post.Text,
			"group_id":   post.GroupID,
			"image_path": post.ImagePath,
			"updated_at": post.UpdatedAt,
		}).Error
}

func (r *postRepository) Delete(id uint) (int64, error) {
	if err := r.db.Where("post_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
		return 0, err
	}
	result := r.db.Where("id = ?", id).Delete(&models.Post{})
	return result.RowsAffected, result.Error
}
