package tests

import (
	"fmt"
	"net/http"
	"net/url"
	"testing"

	"Postboard/api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatePostRedirectsToAuthorProfile(t *testing.T) {
	server, _ := newTestServer(t)

	author := createUser(t, server, "leo")

	w := performRequest(server, http.MethodPost, "/create/",
		url.Values{"text": {"my first entry"}}, sessionCookie(t, author.ID))

	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/profile/leo/", w.Header().Get("Location"))

	var post models.Post
	require.NoError(t, server.DB.Where("author_id = ?", author.ID).Take(&post).Error)
	assert.Equal(t, "my first entry", post.Text)
	assert.Nil(t, post.GroupID)
}

func TestCreatePostWithGroupAssignsTheGroup(t *testing.T) {
	server, _ := newTestServer(t)

	author := createUser(t, server, "leo")
	group := createGroup(t, server, "Cats", "cats")

	w := performRequest(server, http.MethodPost, "/create/",
		url.Values{"text": {"a cat entry"}, "group": {fmt.Sprint(group.ID)}},
		sessionCookie(t, author.ID))
	require.Equal(t, http.StatusFound, w.Code)

	var post models.Post
	require.NoError(t, server.DB.Where("author_id = ?", author.ID).Take(&post).Error)
	require.NotNil(t, post.GroupID)
	assert.Equal(t, group.ID, *post.GroupID)
}

func TestCreatePostWithoutTextRerendersForm(t *testing.T) {
	server, _ := newTestServer(t)

	author := createUser(t, server, "leo")

	w := performRequest(server, http.MethodPost, "/create/",
		url.Values{"text": {"  "}}, sessionCookie(t, author.ID))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Text is required")

	var count int64
	require.NoError(t, server.DB.Model(&models.Post{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestAnonymousCreateRedirectsToLogin(t *testing.T) {
	server, _ := newTestServer(t)

	w := performRequest(server, http.MethodGet, "/create/", nil)
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/auth/login/?next=%2Fcreate%2F", w.Header().Get("Location"))
}

func TestEditByNonAuthorRedirectsWithoutChanges(t *testing.T) {
	server, _ := newTestServer(t)

	author := createUser(t, server, "leo")
	intruder := createUser(t, server, "sphinx")
	post := createPost(t, server, author, "original wording")

	// The edit form itself is never shown to a non-author
	w := performRequest(server, http.MethodGet, fmt.Sprintf("/posts/%d/edit/", post.ID),
		nil, sessionCookie(t, intruder.ID))
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, fmt.Sprintf("/posts/%d/", post.ID), w.Header().Get("Location"))

	w = performRequest(server, http.MethodPost, fmt.Sprintf("/posts/%d/edit/", post.ID),
		url.Values{"text": {"defaced"}}, sessionCookie(t, intruder.ID))

	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, fmt.Sprintf("/posts/%d/", post.ID), w.Header().Get("Location"))

	var reloaded models.Post
	require.NoError(t, server.DB.First(&reloaded, post.ID).Error)
	assert.Equal(t, "original wording", reloaded.Text)
}

func TestEditByAuthorUpdatesThePost(t *testing.T) {
	server, _ := newTestServer(t)

	author := createUser(t, server, "leo")
	post := createPost(t, server, author, "original wording")

	w := performRequest(server, http.MethodPost, fmt.Sprintf("/posts/%d/edit/", post.ID),
		url.Values{"text": {"updated wording"}}, sessionCookie(t, author.ID))

	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, fmt.Sprintf("/posts/%d/", post.ID), w.Header().Get("Location"))

	var reloaded models.Post
	require.NoError(t, server.DB.First(&reloaded, post.ID).Error)
	assert.Equal(t, "updated wording", reloaded.Text)
}

func TestDeleteByAuthorRemovesPostAndComments(t *testing.T) {
	server, _ := newTestServer(t)

	author := createUser(t, server, "leo")
	commenter := createUser(t, server, "sphinx")
	post := createPost(t, server, author, "short lived")

	comment := models.Comment{Text: "gone soon too", PostID: post.ID, UserID: commenter.ID}
	comment.Prepare()
	require.NoError(t, server.DB.Create(&comment).Error)

	w := performRequest(server, http.MethodPost, fmt.Sprintf("/posts/%d/delete/", post.ID),
		nil, sessionCookie(t, author.ID))
	require.Equal(t, http.StatusFound, w.Code)

	var posts, comments int64
	require.NoError(t, server.DB.Model(&models.Post{}).Count(&posts).Error)
	require.NoError(t, server.DB.Model(&models.Comment{}).Count(&comments).Error)
	assert.Equal(t, int64(0), posts)
	assert.Equal(t, int64(0), comments)
}

func TestPostDetailShowsAuthorPostCount(t *testing.T) {
	server, _ := newTestServer(t)

	author := createUser(t, server, "leo")
	post := createPost(t, server, author, "counted entry")
	createPost(t, server, author, "another entry")

	w := performRequest(server, http.MethodGet, fmt.Sprintf("/posts/%d/", post.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "counted entry")
	assert.Contains(t, w.Body.String(), "2 post(s)")
}

func TestMissingPostReturns404(t *testing.T) {
	server, _ := newTestServer(t)

	for _, target := range []string{"/posts/999/", "/posts/banana/"} {
		w := performRequest(server, http.MethodGet, target, nil)
		assert.Equal(t, http.StatusNotFound, w.Code, target)
	}
}
