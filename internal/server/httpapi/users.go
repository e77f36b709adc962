package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cookenu/internal/server/models"
)

type userView struct {
	ID       string `json:"id"`
	Nickname string `json:"nickname"`
	Email    string `json:"email"`
}

func toUserView(u *models.User) userView {
	return userView{ID: u.ID, Nickname: u.Nickname, Email: u.Email}
}

func (s *Server) signup(c *gin.Context) {
	var req struct {
		Nickname string `json:"nickname"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	// Malformed JSON gets the same message as absent fields.
	_ = c.ShouldBindJSON(&req)

	token, err := s.users.Signup(c.Request.Context(), req.Nickname, req.Email, req.Password)
	if err != nil {
		s.writeError(c, err)
		return
	}

	s.logger.Info(c.Request.Context(), "user signed up", "email", req.Email)
	c.JSON(http.StatusCreated, gin.H{
		"message": "User created successfully",
		"token":   token,
	})
}

func (s *Server) login(c *gin.Context) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	_ = c.ShouldBindJSON(&req)

	token, err := s.users.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "You're logged!",
		"token":   token,
	})
}

func (s *Server) listUsers(c *gin.Context) {
	result, err := s.users.List(c.Request.Context(), identityFrom(c), c.Query("search"))
	if err != nil {
		s.writeError(c, err)
		return
	}

	views := make([]userView, 0, len(result))
	for _, u := range result {
		views = append(views, toUserView(u))
	}
	c.JSON(http.StatusOK, gin.H{"users": views})
}

func (s *Server) profile(c *gin.Context) {
	user, err := s.users.Profile(c.Request.Context(), identityFrom(c))
	if err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": toUserView(user)})
}

func (s *Server) deleteUser(c *gin.Context) {
	caller := identityFrom(c)
	targetID := c.Param("id")

	if err := s.users.Delete(c.Request.Context(), caller, targetID); err != nil {
		s.writeError(c, err)
		return
	}

	s.logger.Info(c.Request.Context(), "user deleted", "target", targetID, "by", caller.UserID)
	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}
