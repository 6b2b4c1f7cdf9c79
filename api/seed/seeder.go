package seed

import (
	"log"

	"Postboard/api/models"

	"gorm.io/gorm"
)

var users = []models.User{
	{Username: "leo", Email: "leo@postboard.local", Password: "password"},
	{Username: "sphinx", Email: "sphinx@postboard.local", Password: "password"},
}

var groups = []models.Group{
	{Title: "Cats", Slug: "cats", Description: "Posts about cats"},
	{Title: "Snakes", Slug: "snakes", Description: "Posts about snakes"},
}

var posts = []models.Post{
	{Text: "A cat walked into the room and demanded attention."},
	{Text: "Snakes, as it turns out, do not care for attention at all."},
}

// Load fills an empty database with demo content. Existing rows are left
// alone, so it is safe to run on every boot.
func Load(db *gorm.DB) {
	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		log.Printf("seed: cannot count users: %v", err)
		return
	}
	if count > 0 {
		return
	}

	for i := range users {
		users[i].Prepare()
		if err := db.Create(&users[i]).Error; err != nil {
			log.Printf("seed: cannot create user %s: %v", users[i].Username, err)
			return
		}
	}
	for i := range groups {
		groups[i].Prepare()
		if err := db.Create(&groups[i]).Error; err != nil {
			log.Printf("seed: cannot create group %s: %v", groups[i].Slug, err)
			return
		}
	}
	for i := range posts {
		posts[i].Prepare()
		posts[i].AuthorID = users[i%len(users)].ID
		posts[i].GroupID = &groups[i%len(groups)].ID
		if err := db.Create(&posts[i]).Error; err != nil {
			log.Printf("seed: cannot create post: %v", err)
			return
		}
	}
	log.Printf("seed: loaded %d users, %d groups, %d posts", len(users), len(groups), len(posts))
}
