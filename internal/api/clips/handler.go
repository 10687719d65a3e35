package clipsapi

import (
	"net/http"

	"clipgenie/internal/api/apierror"
	"clipgenie/internal/app/http/middleware"
	"clipgenie/internal/domain/render"
	"clipgenie/internal/session"

	"github.com/gin-gonic/gin"
)

// RenderRequest carries no raw brand fields: brand settings only reach a clip
// through the account's brand kit, which is plan-checked when read.
type RenderRequest struct {
	Title           string  `json:"title" binding:"required"`
	DurationSeconds float64 `json:"duration_seconds" binding:"required,gt=0"`
	UseBrandKit     bool    `json:"use_brand_kit"`
}

// POST /clips/render
func RenderClip(c *gin.Context) {
	var req RenderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title and a positive duration_seconds are required"})
		return
	}

	sess := middleware.CurrentSession(c)
	opts := render.Options{Title: req.Title, DurationSeconds: req.DurationSeconds}

	var clip render.Clip
	err := sess.Do(func(s *session.Session) error {
		if req.UseBrandKit {
			kit, err := s.BrandKit.Get()
			if err != nil {
				return err
			}
			opts = opts.WithBrandKit(kit)
		}
		clip = render.RenderClip(opts, s.Plan)
		return nil
	})
	if err != nil {
		apierror.Write(c, err)
		return
	}

	c.JSON(http.StatusOK, clip)
}
