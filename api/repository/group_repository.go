package repository

import (
	"Postboard/api/models"

	"gorm.io/gorm"
)

type GroupRepository interface {
	All() ([]models.Group, error)
	BySlug(slug string) (*models.Group, error)
	ByID(id uint) (*models.Group, error)
	Save(group *models.Group) error
}

type groupRepository struct {
	db *gorm.DB
}

func NewGroupRepository(db *gorm.DB) GroupRepository { return &groupRepository{db: db} }

func (r *groupRepository) All() ([]models.Group, error) {
	var groups []models.Group
	err := r.db.Order("title ASC").Find(&groups).Error
	return groups, err
}

func (r *groupRepository) BySlug(slug string) (*models.Group, error) {
	var group models.Group
	if err := r.db.Where("slug = ?", slug).Take(&group).Error; err != nil {
		return nil, err
	}
	return &group, nil
}

func (r *groupRepository) ByID(id uint) (*models.Group, error) {
	var group models.Group
	if err := r.db.First(&group, id).Error; err != nil {
		return nil, err
	}
	return &group, nil
}

func (r *groupRepository) Save(group *models.Group) error {
	return r.db.Create(group).Error
}
