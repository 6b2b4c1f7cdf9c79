package controllers

import (
	"fmt"
	"net/http"

	"Postboard/api/models"
	"Postboard/api/utils/httpctx"

	"github.com/gin-gonic/gin"
)

func (server *Server) AddComment(c *gin.Context) {
	post, ok := server.postFromParam(c)
	if !ok {
		return
	}
	viewerID, ok := httpctx.CurrentUserID(c)
	if !ok {
		server.renderNotFound(c)
		return
	}

	comment := models.Comment{
		Text:   c.PostForm("text"),
		PostID: post.ID,
		UserID: viewerID,
	}
	comment.Prepare()

	if errs := comment.Validate(); len(errs) > 0 {
		server.renderPostDetail(c, http.StatusOK, post, errs)
		return
	}

	if err := server.comments.Save(&comment); err != nil {
		server.serverError(c, err)
		return
	}
	c.Redirect(http.StatusFound, fmt.Sprintf("/posts/%d/", post.ID))
}
