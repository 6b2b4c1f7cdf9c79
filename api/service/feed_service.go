package service

import (
	"Postboard/api/models"
	"Postboard/api/repository"
)

// FeedService composes the four post feeds. Every feed comes back newest
// first with the post ID breaking timestamp ties.
type FeedService interface {
	Global() ([]models.Post, error)
	Group(slug string) (*models.Group, []models.Post, error)
	Profile(username string) (*models.User, []models.Post, int64, error)
	Following(viewerID uint) ([]models.Post, error)
}

type feedService struct {
	posts   repository.PostRepository
	groups  repository.GroupRepository
	users   repository.UserRepository
	follows repository.FollowRepository
}

func NewFeedService(
	posts repository.PostRepository,
	groups repository.GroupRepository,
	users repository.UserRepository,
	follows repository.FollowRepository,
) FeedService {
	return &feedService{posts: posts, groups: groups, users: users, follows: follows}
}

func (s *feedService) Global() ([]models.Post, error) {
	return s.posts.All()
}

func (s *feedService) Group(slug string) (*models.Group, []models.Post, error) {
	group, err := s.groups.BySlug(slug)
	if err != nil {
		return nil, nil, err
	}
	posts, err := s.posts.ByGroup(group.ID)
	if err != nil {
		return nil, nil, err
	}
	return group, posts, nil
}

func (s *feedService) Profile(username string) (*models.User, []models.Post, int64, error) {
	author, err := s.users.ByUsername(username)
	if err != nil {
		return nil, nil, 0, err
	}
	posts, err := s.posts.ByAuthor(author.ID)
	if err != nil {
		return nil, nil, 0, err
	}
	// Post count is the author's total, not the size of the current page.
	count, err := s.posts.CountByAuthor(author.ID)
	if err != nil {
		return nil, nil, 0, err
	}
	return author, posts, count, nil
}

func (s *feedService) Following(viewerID uint) ([]models.Post, error) {
	authorIDs, err := s.follows.FollowedIDs(viewerID)
	if err != nil {
		return nil, err
	}
	// Following nobody is an empty feed, not an error.
	return s.posts.ByAuthorsIn(authorIDs)
}
