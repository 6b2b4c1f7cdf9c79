package service

import (
	"errors"

	"Postboard/api/repository"
)

// ErrNotFollowing is returned when an unfollow targets an edge that does not
// exist; the UI only offers unfollow where a follow is present, so the
// controller surfaces it as not found.
var ErrNotFollowing = errors.New("not following this author")

type FollowService interface {
	Follow(followerID, targetID uint) error
	Unfollow(followerID, targetID uint) error
	IsFollowing(followerID, targetID uint) (bool, error)
}

type followService struct {
	follows repository.FollowRepository
}

func NewFollowService(follows repository.FollowRepository) FollowService {
	return &followService{follows: follows}
}

// Follow is idempotent: a duplicate follow and a self-follow both succeed
// without writing a row.
func (s *followService) Follow(followerID, targetID uint) error {
	if followerID == targetID {
		return nil
	}
	_, err := s.follows.Create(followerID, targetID)
	return err
}

func (s *followService) Unfollow(followerID, targetID uint) error {
	deleted, err := s.follows.Delete(followerID, targetID)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return ErrNotFollowing
	}
	return nil
}

func (s *followService) IsFollowing(followerID, targetID uint) (bool, error) {
	if followerID == 0 || followerID == targetID {
		return false, nil
	}
	return s.follows.Exists(followerID, targetID)
}
