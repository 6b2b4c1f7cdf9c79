package controllers

import (
	"fmt"
	"html"
	"net/http"
	"strconv"
	"strings"
	"time"

	"Postboard/api/models"
	"Postboard/api/utils/httpctx"

	"github.com/gin-gonic/gin"
)

func (server *Server) postFromParam(c *gin.Context) (*models.Post, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		server.renderNotFound(c)
		return nil, false
	}
	post, err := server.posts.ByID(uint(id))
	if err != nil {
		server.renderNotFound(c)
		return nil, false
	}
	return post, true
}

func (server *Server) PostDetail(c *gin.Context) {
	post, ok := server.postFromParam(c)
	if !ok {
		return
	}
	server.renderPostDetail(c, http.StatusOK, post, nil)
}

// renderPostDetail is shared with the comment handler so a rejected comment
// can re-render the page with field errors.
func (server *Server) renderPostDetail(c *gin.Context, status int, post *models.Post, formErrors map[string]string) {
	comments, err := server.comments.ByPost(post.ID)
	if err != nil {
		server.serverError(c, err)
		return
	}
	postCount, err := server.posts.CountByAuthor(post.AuthorID)
	if err != nil {
		server.serverError(c, err)
		return
	}

	server.render(c, status, "post_detail.html", gin.H{
		"post":       post,
		"comments":   comments,
		"post_count": postCount,
		"errors":     formErrors,
	})
}

func (server *Server) NewPost(c *gin.Context) {
	server.renderPostForm(c, http.StatusOK, nil, nil)
}

func (server *Server) renderPostForm(c *gin.Context, status int, post *models.Post, formErrors map[string]string) {
	groups, err := server.groups.All()
	if err != nil {
		server.serverError(c, err)
		return
	}

	server.render(c, status, "create_post.html", gin.H{
		"is_edit": post != nil && post.ID != 0,
		"post":    post,
		"groups":  groups,
		"errors":  formErrors,
	})
}

func (server *Server) CreatePost(c *gin.Context) {
	viewerID, ok := httpctx.CurrentUserID(c)
	if !ok {
		server.renderNotFound(c)
		return
	}

	post := models.Post{
		Text:     c.PostForm("text"),
		AuthorID: viewerID,
	}
	post.Prepare()

	errs := post.Validate()
	if groupErr := server.assignGroup(&post, c.PostForm("group")); groupErr != "" {
		errs["Invalid_group"] = groupErr
	}

	if file, err := c.FormFile("image"); err == nil {
		imagePath, uploadErr := server.uploadPostImage(c, file)
		if uploadErr != nil {
			errs["Invalid_image"] = uploadErr.Error()
		} else {
			post.ImagePath = imagePath
		}
	}

	if len(errs) > 0 {
		server.renderPostForm(c, http.StatusOK, &post, errs)
		return
	}

	if err := server.posts.Save(&post); err != nil {
		server.serverError(c, err)
		return
	}

	viewer, _ := httpctx.CurrentUser(c)
	c.Redirect(http.StatusFound, fmt.Sprintf("/profile/%s/", viewer.Username))
}

func (server *Server) EditPostForm(c *gin.Context) {
	post, ok := server.postFromParam(c)
	if !ok {
		return
	}

	viewerID, _ := httpctx.CurrentUserID(c)
	if post.AuthorID != viewerID {
		c.Redirect(http.StatusFound, fmt.Sprintf("/posts/%d/", post.ID))
		return
	}
	server.renderPostForm(c, http.StatusOK, post, nil)
}

func (server *Server) EditPost(c *gin.Context) {
	post, ok := server.postFromParam(c)
	if !ok {
		return
	}

	// Non-authors are bounced to the detail page, never shown an error
	viewerID, _ := httpctx.CurrentUserID(c)
	if post.AuthorID != viewerID {
		c.Redirect(http.StatusFound, fmt.Sprintf("/posts/%d/", post.ID))
		return
	}

	post.Text = html.EscapeString(strings.TrimSpace(c.PostForm("text")))
	post.UpdatedAt = time.Now()

	errs := post.Validate()
	if groupErr := server.assignGroup(post, c.PostForm("group")); groupErr != "" {
		errs["Invalid_group"] = groupErr
	}

	if file, err := c.FormFile("image"); err == nil {
		imagePath, uploadErr := server.uploadPostImage(c, file)
		if uploadErr != nil {
			errs["Invalid_image"] = uploadErr.Error()
		} else {
			post.ImagePath = imagePath
		}
	}

	if len(errs) > 0 {
		server.renderPostForm(c, http.StatusOK, post, errs)
		return
	}

	if err := server.posts.Update(post); err != nil {
		server.serverError(c, err)
		return
	}
	c.Redirect(http.StatusFound, fmt.Sprintf("/posts/%d/", post.ID))
}

func (server *Server) DeletePost(c *gin.Context) {
	post, ok := server.postFromParam(c)
	if !ok {
		return
	}

	viewerID, _ := httpctx.CurrentUserID(c)
	if post.AuthorID != viewerID {
		c.Redirect(http.StatusFound, fmt.Sprintf("/posts/%d/", post.ID))
		return
	}

	if _, err := server.posts.Delete(post.ID); err != nil {
		server.serverError(c, err)
		return
	}

	viewer, _ := httpctx.CurrentUser(c)
	c.Redirect(http.StatusFound, fmt.Sprintf("/profile/%s/", viewer.Username))
}

// assignGroup resolves the optional group form value. Empty means no group.
func (server *Server) assignGroup(post *models.Post, raw string) string {
	if raw == "" {
		post.GroupID = nil
		return ""
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return "Unknown group"
	}
	group, err := server.groups.ByID(uint(id))
	if err != nil {
		return "Unknown group"
	}
	post.GroupID = &group.ID
	return ""
}
