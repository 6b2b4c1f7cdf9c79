// Package pagination slices an ordered feed into fixed-size pages. The page
// size is a process-wide setting, never request-supplied.
package pagination

import (
	"os"
	"strconv"

	"Postboard/api/models"
)

const DefaultPageSize = 10

var pageSize = DefaultPageSize

// ConfigureFromEnv picks up POSTS_PER_PAGE; anything unparsable keeps the
// default.
func ConfigureFromEnv() {
	raw := os.Getenv("POSTS_PER_PAGE")
	if raw == "" {
		return
	}
	if n, err := strconv.Atoi(raw); err == nil && n > 0 {
		pageSize = n
	}
}

func PageSize() int {
	return pageSize
}

// SetPageSize overrides the configured page size. Intended for tests.
func SetPageSize(n int) {
	if n > 0 {
		pageSize = n
	}
}

type Page struct {
	Posts       []models.Post
	Number      int
	TotalPages  int
	HasNext     bool
	HasPrevious bool
}

func (p Page) Next() int     { return p.Number + 1 }
func (p Page) Previous() int { return p.Number - 1 }

// ParsePageNumber turns the raw ?page= query value into a page number.
// Missing or invalid values fall back to page 1.
func ParsePageNumber(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// Paginate returns the requested page of posts. A request past the end is
// clamped to the last page rather than failing, so stale pager links keep
// working.
func Paginate(posts []models.Post, requested int) Page {
	size := pageSize
	totalPages := (len(posts) + size - 1) / size
	if totalPages < 1 {
		totalPages = 1
	}

	number := requested
	if number < 1 {
		number = 1
	}
	if number > totalPages {
		number = totalPages
	}

	start := (number - 1) * size
	end := start + size
	if start > len(posts) {
		start = len(posts)
	}
	if end > len(posts) {
		end = len(posts)
	}

	return Page{
		Posts:       posts[start:end],
		Number:      number,
		TotalPages:  totalPages,
		HasNext:     number < totalPages,
		HasPrevious: number > 1,
	}
}
