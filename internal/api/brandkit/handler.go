package brandkitapi

import (
	"fmt"
	"maps"
	"net/http"

	"clipgenie/internal/api/apierror"
	"clipgenie/internal/app/http/middleware"
	"clipgenie/internal/domain/brandkit"
	"clipgenie/internal/session"

	"github.com/gin-gonic/gin"
)

// GET /brand-kit
func GetBrandKit(c *gin.Context) {
	sess := middleware.CurrentSession(c)

	var snapshot brandkit.BrandKit
	err := sess.Do(func(s *session.Session) error {
		kit, err := s.BrandKit.Get()
		if err != nil {
			return err
		}
		snapshot = copyKit(kit)
		return nil
	})
	if err != nil {
		apierror.Write(c, err)
		return
	}

	c.JSON(http.StatusOK, snapshot)
}

// PUT /brand-kit
//
// Body is a JSON object. font, primary_color and logo_path are the known fields
// (null or absent leaves them untouched); every other key is stored in extra.
func UpdateBrandKit(c *gin.Context) {
	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Body must be a JSON object"})
		return
	}

	update, err := parseUpdate(body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sess := middleware.CurrentSession(c)

	var snapshot brandkit.BrandKit
	err = sess.Do(func(s *session.Session) error {
		kit, err := s.BrandKit.Update(update)
		if err != nil {
			return err
		}
		snapshot = copyKit(kit)
		return nil
	})
	if err != nil {
		apierror.Write(c, err)
		return
	}

	c.JSON(http.StatusOK, snapshot)
}

func parseUpdate(body map[string]any) (brandkit.Update, error) {
	var u brandkit.Update
	extra := map[string]any{}

	for k, v := range body {
		var target **string
		switch k {
		case "font":
			target = &u.Font
		case "primary_color":
			target = &u.PrimaryColor
		case "logo_path":
			target = &u.LogoPath
		default:
			extra[k] = v
			continue
		}

		if v == nil {
			continue
		}
		s, ok := v.(string)
		if !ok {
			return brandkit.Update{}, fmt.Errorf("%s must be a string", k)
		}
		*target = &s
	}

	if len(extra) > 0 {
		u.Extra = extra
	}
	return u, nil
}

// copyKit detaches a kit from the manager so it can be encoded after the
// session lock is released.
func copyKit(kit *brandkit.BrandKit) brandkit.BrandKit {
	cp := *kit
	cp.Extra = maps.Clone(kit.Extra)
	return cp
}
