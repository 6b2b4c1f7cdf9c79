package repository

import (
	"strings"

	"Postboard/api/models"

	"gorm.io/gorm"
)

type UserRepository interface {
	ByID(id uint) (*models.User, error)
	ByUsername(username string) (*models.User, error)
	ByEmail(email string) (*models.User, error)
	Save(user *models.User) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository { return &userRepository{db: db} }

func (r *userRepository) ByID(id uint) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) ByUsername(username string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("username = ?", strings.ToLower(username)).Take(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) ByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("lower(email) = ?", strings.ToLower(email)).Take(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) Save(user *models.User) error {
	return r.db.Create(user).Error
}
