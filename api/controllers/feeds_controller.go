package controllers

import (
	"errors"
	"log"
	"net/http"

	"Postboard/api/pagination"
	"Postboard/api/utils/httpctx"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Index serves the global feed. Rendered pages are cached byte-for-byte per
// page number, so the template must not contain viewer-specific markup.
func (server *Server) Index(c *gin.Context) {
	pageNumber := pagination.ParsePageNumber(c.Query("page"))
	key := indexCacheKey(pageNumber)
	ctx := c.Request.Context()

	if server.Cache != nil {
		if body, err := server.Cache.Get(ctx, key); err == nil && body != nil {
			c.Data(http.StatusOK, htmlContentType, body)
			return
		} else if err != nil {
			log.Printf("cache get %s: %v", key, err)
		}
	}

	posts, err := server.feeds.Global()
	if err != nil {
		server.serverError(c, err)
		return
	}
	page := pagination.Paginate(posts, pageNumber)

	body, err := server.renderToBytes("index.html", gin.H{"page": page})
	if err != nil {
		server.serverError(c, err)
		return
	}

	if server.Cache != nil {
		if err := server.Cache.Set(ctx, key, body, server.indexTTL); err != nil {
			log.Printf("cache set %s: %v", key, err)
		}
	}
	c.Data(http.StatusOK, htmlContentType, body)
}

func (server *Server) GroupPosts(c *gin.Context) {
	group, posts, err := server.feeds.Group(c.Param("slug"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			server.renderNotFound(c)
			return
		}
		server.serverError(c, err)
		return
	}

	page := pagination.Paginate(posts, pagination.ParsePageNumber(c.Query("page")))
	server.render(c, http.StatusOK, "group_list.html", gin.H{
		"group": group,
		"page":  page,
	})
}

func (server *Server) Profile(c *gin.Context) {
	author, posts, postCount, err := server.feeds.Profile(c.Param("username"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			server.renderNotFound(c)
			return
		}
		server.serverError(c, err)
		return
	}

	following := false
	if viewerID, ok := httpctx.CurrentUserID(c); ok {
		following, err = server.follows.IsFollowing(viewerID, author.ID)
		if err != nil {
			server.serverError(c, err)
			return
		}
	}

	page := pagination.Paginate(posts, pagination.ParsePageNumber(c.Query("page")))
	server.render(c, http.StatusOK, "profile.html", gin.H{
		"author":     author,
		"page":       page,
		"post_count": postCount,
		"following":  following,
	})
}

// FollowIndex serves the personalized feed of posts by followed authors.
func (server *Server) FollowIndex(c *gin.Context) {
	viewerID, ok := httpctx.CurrentUserID(c)
	if !ok {
		server.renderNotFound(c)
		return
	}

	posts, err := server.feeds.Following(viewerID)
	if err != nil {
		server.serverError(c, err)
		return
	}

	page := pagination.Paginate(posts, pagination.ParsePageNumber(c.Query("page")))
	server.render(c, http.StatusOK, "follow.html", gin.H{"page": page})
}

func (server *Server) NotFound(c *gin.Context) {
	server.renderNotFound(c)
}
