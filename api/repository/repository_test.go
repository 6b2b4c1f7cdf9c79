package repository

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"Postboard/api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:repo_%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{}, &models.Group{}, &models.Post{},
		&models.Comment{}, &models.Follow{},
	))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, username string) models.User {
	t.Helper()
	user := models.User{Username: username, Email: username + "@example.com", Password: "password"}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func TestFeedOrdersByTimestampThenID(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostRepository(db)
	author := seedUser(t, db, "leo")

	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	older := models.Post{Text: "older", AuthorID: author.ID, CreatedAt: at.Add(-time.Hour)}
	tieFirst := models.Post{Text: "tie first", AuthorID: author.ID, CreatedAt: at}
	tieSecond := models.Post{Text: "tie second", AuthorID: author.ID, CreatedAt: at}
	for _, post := range []*models.Post{&older, &tieFirst, &tieSecond} {
		require.NoError(t, db.Create(post).Error)
	}

	posts, err := repo.All()
	require.NoError(t, err)
	require.Len(t, posts, 3)

	// Equal timestamps fall back to insertion order, newest insert first
	assert.Equal(t, "tie second", posts[0].Text)
	assert.Equal(t, "tie first", posts[1].Text)
	assert.Equal(t, "older", posts[2].Text)
}

func TestByAuthorsInWithNoAuthorsSkipsTheQuery(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostRepository(db)
	author := seedUser(t, db, "leo")
	require.NoError(t, db.Create(&models.Post{Text: "present", AuthorID: author.ID}).Error)

	posts, err := repo.ByAuthorsIn(nil)
	require.NoError(t, err)
	assert.Empty(t, posts)
}

func TestDeletePostAlsoDeletesComments(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostRepository(db)
	author := seedUser(t, db, "leo")

	post := models.Post{Text: "with comments", AuthorID: author.ID}
	require.NoError(t, db.Create(&post).Error)
	require.NoError(t, db.Create(&models.Comment{Text: "hi", PostID: post.ID, UserID: author.ID}).Error)

	deleted, err := repo.Delete(post.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	var comments int64
	require.NoError(t, db.Model(&models.Comment{}).Count(&comments).Error)
	assert.Equal(t, int64(0), comments)
}

func TestFollowCreateIsIdempotentAtTheConstraintLevel(t *testing.T) {
	db := newTestDB(t)
	repo := NewFollowRepository(db)
	follower := seedUser(t, db, "reader")
	followed := seedUser(t, db, "leo")

	created, err := repo.Create(follower.ID, followed.ID)
	require.NoError(t, err)
	assert.True(t, created)

	created, err = repo.Create(follower.ID, followed.ID)
	require.NoError(t, err)
	assert.False(t, created)

	var count int64
	require.NoError(t, db.Model(&models.Follow{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestFollowDeleteReportsAffectedRows(t *testing.T) {
	db := newTestDB(t)
	repo := NewFollowRepository(db)
	follower := seedUser(t, db, "reader")
	followed := seedUser(t, db, "leo")

	deleted, err := repo.Delete(follower.ID, followed.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), deleted)

	_, err = repo.Create(follower.ID, followed.ID)
	require.NoError(t, err)

	deleted, err = repo.Delete(follower.ID, followed.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)
}

func TestFollowedIDs(t *testing.T) {
	db := newTestDB(t)
	repo := NewFollowRepository(db)
	follower := seedUser(t, db, "reader")
	a := seedUser(t, db, "leo")
	b := seedUser(t, db, "sphinx")

	for _, followed := range []models.User{a, b} {
		_, err := repo.Create(follower.ID, followed.ID)
		require.NoError(t, err)
	}

	ids, err := repo.FollowedIDs(follower.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []uint{a.ID, b.ID}, ids)
}

func TestUserLookupsAreCaseInsensitive(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)

	user := models.User{Username: "leo", Email: "leo@example.com", Password: "password"}
	require.NoError(t, db.Create(&user).Error)

	found, err := repo.ByUsername("LEO")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)

	found, err = repo.ByEmail("Leo@Example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)
}
