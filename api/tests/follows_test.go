package tests

import (
	"net/http"
	"testing"

	"Postboard/api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFollowTwiceLeavesOneRow(t *testing.T) {
	server, _ := newTestServer(t)

	follower := createUser(t, server, "reader")
	author := createUser(t, server, "leo")
	cookie := sessionCookie(t, follower.ID)

	for i := 0; i < 2; i++ {
		w := performRequest(server, http.MethodPost, "/profile/leo/follow/", nil, cookie)
		require.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/follow/", w.Header().Get("Location"))
	}

	var count int64
	require.NoError(t, server.DB.Model(&models.Follow{}).
		Where("follower_id = ? AND followed_id = ?", follower.ID, author.ID).
		Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestSelfFollowWritesNoRow(t *testing.T) {
	server, _ := newTestServer(t)

	user := createUser(t, server, "leo")

	w := performRequest(server, http.MethodPost, "/profile/leo/follow/", nil, sessionCookie(t, user.ID))
	require.Equal(t, http.StatusFound, w.Code)

	var count int64
	require.NoError(t, server.DB.Model(&models.Follow{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestUnfollowWithoutFollowingReturns404(t *testing.T) {
	server, _ := newTestServer(t)

	follower := createUser(t, server, "reader")
	createUser(t, server, "leo")

	w := performRequest(server, http.MethodPost, "/profile/leo/unfollow/", nil, sessionCookie(t, follower.ID))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUnfollowRemovesTheRow(t *testing.T) {
	server, _ := newTestServer(t)

	follower := createUser(t, server, "reader")
	author := createUser(t, server, "leo")
	require.NoError(t, server.DB.Create(&models.Follow{FollowerID: follower.ID, FollowedID: author.ID}).Error)

	w := performRequest(server, http.MethodPost, "/profile/leo/unfollow/", nil, sessionCookie(t, follower.ID))
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/follow/", w.Header().Get("Location"))

	var count int64
	require.NoError(t, server.DB.Model(&models.Follow{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestFollowUnknownUserReturns404(t *testing.T) {
	server, _ := newTestServer(t)

	follower := createUser(t, server, "reader")

	w := performRequest(server, http.MethodPost, "/profile/nobody/follow/", nil, sessionCookie(t, follower.ID))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
