package fileformat

import (
	"path/filepath"
	"strings"

	"github.com/twinj/uuid"
)

// UniqueFormat builds a collision-free object key for an uploaded file while
// keeping the original extension.
func UniqueFormat(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	return uuid.NewV4().String() + ext
}
