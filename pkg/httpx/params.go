package httpx

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
)

// ErrInvalidPage — limit/offset не числа или offset < 0.
var ErrInvalidPage = errors.New("invalid limit/offset")

// Page — страница выборки.
type Page struct {
	Limit  int
	Offset int
}

// ParsePage — limit/offset из query. Пустой limit → defaultLimit, limit вне [1, maxLimit]
// прижимается к границе; нечисловые значения и отрицательный offset → ErrInvalidPage.
func ParsePage(c *gin.Context, defaultLimit, maxLimit int) (Page, error) {
	page := Page{Limit: defaultLimit}

	if raw := c.Query("limit"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return Page{}, ErrInvalidPage
		}
		page.Limit = min(max(v, 1), maxLimit)
	}
	if raw := c.Query("offset"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			return Page{}, ErrInvalidPage
		}
		page.Offset = v
	}
	return page, nil
}
