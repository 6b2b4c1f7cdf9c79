package controllers

import (
	"bytes"
	"log"
	"net/http"

	"Postboard/api/utils/httpctx"

	"github.com/gin-gonic/gin"
)

const htmlContentType = "text/html; charset=utf-8"

// renderToBytes executes a page template into a buffer so the result can be
// cached and written as a single body.
func (server *Server) renderToBytes(name string, data gin.H) ([]byte, error) {
	if data == nil {
		data = gin.H{}
	}
	var buf bytes.Buffer
	if err := server.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (server *Server) render(c *gin.Context, status int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	if viewer, ok := httpctx.CurrentUser(c); ok {
		data["viewer"] = viewer
	}

	body, err := server.renderToBytes(name, data)
	if err != nil {
		log.Printf("render %s: %v", name, err)
		c.String(http.StatusInternalServerError, "Internal server error")
		return
	}
	c.Data(status, htmlContentType, body)
}

func (server *Server) renderNotFound(c *gin.Context) {
	server.render(c, http.StatusNotFound, "not_found.html", gin.H{})
}

func (server *Server) serverError(c *gin.Context, err error) {
	log.Printf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	c.String(http.StatusInternalServerError, "Internal server error")
}
