package controllers

import (
	"errors"
	"net/http"

	"Postboard/api/service"
	"Postboard/api/utils/httpctx"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func (server *Server) ProfileFollow(c *gin.Context) {
	viewerID, ok := httpctx.CurrentUserID(c)
	if !ok {
		server.renderNotFound(c)
		return
	}
	target, err := server.users.ByUsername(c.Param("username"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			server.renderNotFound(c)
			return
		}
		server.serverError(c, err)
		return
	}

	// Self-follow and repeat follows are silently absorbed
	if err := server.follows.Follow(viewerID, target.ID); err != nil {
		server.serverError(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/follow/")
}

func (server *Server) ProfileUnfollow(c *gin.Context) {
	viewerID, ok := httpctx.CurrentUserID(c)
	if !ok {
		server.renderNotFound(c)
		return
	}
	target, err := server.users.ByUsername(c.Param("username"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			server.renderNotFound(c)
			return
		}
		server.serverError(c, err)
		return
	}

	if err := server.follows.Unfollow(viewerID, target.ID); err != nil {
		if errors.Is(err, service.ErrNotFollowing) {
			server.renderNotFound(c)
			return
		}
		server.serverError(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/follow/")
}
