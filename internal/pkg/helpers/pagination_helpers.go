package helpers

import (
	"math"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	DefaultPageSize = 10
	DefaultPage     = 1 // Default page is 1-based

	// MaxPageSize and MaxPage keep offset arithmetic far from overflow.
	MaxPageSize = 1000
	MaxPage     = 1_000_000
)

// leadingInt reads an optional sign followed by digits and ignores whatever
// trails them, so "2abc" is 2. The magnitude saturates at math.MaxInt32.
func leadingInt(s string) (int, bool) {
	s = strings.TrimLeft(s, " \t\r\n")
	neg := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}

	n, found := 0, false
	for i := 0; i < len(s) && s[i] >= '0' && s[i] <= '9'; i++ {
		found = true
		if n < math.MaxInt32 {
			n = n*10 + int(s[i]-'0')
		}
	}
	if n > math.MaxInt32 {
		n = math.MaxInt32
	}
	if neg {
		n = -n
	}
	return n, found
}

// ParsePositiveInt returns the integer prefix of s, or def when s has no
// leading digits or the value is below 1.
func ParsePositiveInt(s string, def int) int {
	n, ok := leadingInt(s)
	if !ok || n < 1 {
		return def
	}
	return n
}

// ParsePaginationParams extracts page and pageSize from the query string,
// clamped to MaxPage and MaxPageSize.
func ParsePaginationParams(c *gin.Context) (page, pageSize int) {
	page = min(ParsePositiveInt(c.Query("page"), DefaultPage), MaxPage)
	pageSize = min(ParsePositiveInt(c.Query("pageSize"), DefaultPageSize), MaxPageSize)
	return page, pageSize
}

// CalculateOffsetLimit calculates the offset and limit for SQL queries based on 1-based page index.
func CalculateOffsetLimit(page, pageSize int) (offset, limit uint64) {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if page < 1 {
		page = DefaultPage
	}
	pageSize = min(pageSize, MaxPageSize)
	page = min(page, MaxPage)
	return uint64(page-1) * uint64(pageSize), uint64(pageSize)
}

// TotalPages is ceil(totalItems / pageSize); zero when there are no items.
func TotalPages(totalItems int64, pageSize int) int {
	if totalItems <= 0 || pageSize < 1 {
		return 0
	}
	return int(math.Ceil(float64(totalItems) / float64(pageSize)))
}
