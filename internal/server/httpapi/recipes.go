package httpapi

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"cookenu/internal/server/models"
)

type recipeView struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	CreatorID   string    `json:"creator_id"`
}

func toRecipeView(r *models.Recipe) recipeView {
	return recipeView{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
		CreatorID:   r.CreatorID,
	}
}

func toRecipeViews(list []*models.Recipe) []recipeView {
	views := make([]recipeView, 0, len(list))
	for _, r := range list {
		views = append(views, toRecipeView(r))
	}
	return views
}

type recipeRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

func (s *Server) createRecipe(c *gin.Context) {
	var req recipeRequest
	_ = c.ShouldBindJSON(&req)

	recipe, err := s.recipes.Create(c.Request.Context(), identityFrom(c), req.Title, req.Description)
	if err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Success",
		"recipe":  toRecipeView(recipe),
	})
}

func (s *Server) editRecipe(c *gin.Context) {
	var req recipeRequest
	_ = c.ShouldBindJSON(&req)

	recipe, err := s.recipes.Edit(c.Request.Context(), identityFrom(c), c.Param("id"), req.Title, req.Description)
	if err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Successfully updated!",
		"recipe":  toRecipeView(recipe),
	})
}

func (s *Server) deleteRecipe(c *gin.Context) {
	if err := s.recipes.Delete(c.Request.Context(), identityFrom(c), c.Param("id")); err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Recipe deleted successfully!"})
}

func (s *Server) listRecipes(c *gin.Context) {
	result, err := s.recipes.List(c.Request.Context(), identityFrom(c), c.Query("search"))
	if err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"recipes": toRecipeViews(result)})
}

func (s *Server) myRecipes(c *gin.Context) {
	result, err := s.recipes.ListMine(c.Request.Context(), identityFrom(c))
	if err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"recipes": toRecipeViews(result)})
}
