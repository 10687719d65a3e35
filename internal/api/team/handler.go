package teamapi

import (
	"net/http"

	"clipgenie/internal/api/apierror"
	"clipgenie/internal/app/http/middleware"
	"clipgenie/internal/domain/team"
	"clipgenie/internal/session"

	"github.com/gin-gonic/gin"
)

type AddMemberRequest struct {
	UserID string `json:"user_id" binding:"required"`
	Email  string `json:"email" binding:"required,email"`
	Role   string `json:"role"`
}

// GET /team/members
func ListMembers(c *gin.Context) {
	sess := middleware.CurrentSession(c)

	var members []team.Member
	err := sess.Do(func(s *session.Session) error {
		var err error
		members, err = s.Team.ListMembers()
		return err
	})
	if err != nil {
		apierror.Write(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"owner_id": sess.Team.OwnerID(),
		"members":  members,
	})
}

// POST /team/members
func AddMember(c *gin.Context) {
	var req AddMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id and a valid email are required"})
		return
	}

	sess := middleware.CurrentSession(c)

	var member team.Member
	err := sess.Do(func(s *session.Session) error {
		m, err := s.Team.AddMember(req.UserID, req.Email, req.Role)
		if err != nil {
			return err
		}
		member = *m
		return nil
	})
	if err != nil {
		apierror.Write(c, err)
		return
	}

	c.JSON(http.StatusCreated, member)
}

// GET /team/members/:user_id
func GetMember(c *gin.Context) {
	userID := c.Param("user_id")
	sess := middleware.CurrentSession(c)

	var (
		member team.Member
		found  bool
	)
	err := sess.Do(func(s *session.Session) error {
		m, ok, err := s.Team.GetMember(userID)
		if err != nil {
			return err
		}
		if ok {
			member, found = *m, true
		}
		return nil
	})
	if err != nil {
		apierror.Write(c, err)
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Team member not found"})
		return
	}

	c.JSON(http.StatusOK, member)
}

// DELETE /team/members/:user_id
func RemoveMember(c *gin.Context) {
	userID := c.Param("user_id")
	sess := middleware.CurrentSession(c)

	var removed team.Member
	err := sess.Do(func(s *session.Session) error {
		m, err := s.Team.RemoveMember(userID)
		if err != nil {
			return err
		}
		removed = *m
		return nil
	})
	if err != nil {
		apierror.Write(c, err)
		return
	}

	c.JSON(http.StatusOK, removed)
}
