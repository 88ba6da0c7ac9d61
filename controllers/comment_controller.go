package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MrShtrahman/mongo-M220-project/middleware"
	"github.com/MrShtrahman/mongo-M220-project/models"
	"github.com/MrShtrahman/mongo-M220-project/services"
)

type CommentController struct {
	commentService *services.CommentService
	authService    *services.AuthService
}

func NewCommentController(commentService *services.CommentService, authService *services.AuthService) *CommentController {
	return &CommentController{
		commentService: commentService,
		authService:    authService,
	}
}

func (ctrl *CommentController) AddComment(c *gin.Context) {
	claims, ok := middleware.ClaimsFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var req models.AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "movie_id and comment are required"})
		return
	}

	comments, err := ctrl.commentService.AddComment(c.Request.Context(), claims, req.MovieID, req.Comment)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "comments": comments})
}

func (ctrl *CommentController) UpdateComment(c *gin.Context) {
	claims, ok := middleware.ClaimsFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var req models.UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "comment_id, movie_id and updated_comment are required"})
		return
	}

	comments, err := ctrl.commentService.UpdateComment(c.Request.Context(), claims, req.CommentID, req.MovieID, req.UpdatedComment)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"comments": comments})
}

func (ctrl *CommentController) DeleteComment(c *gin.Context) {
	claims, ok := middleware.ClaimsFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var req models.DeleteCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "comment_id and movie_id are required"})
		return
	}

	comments, err := ctrl.commentService.DeleteComment(c.Request.Context(), claims, req.CommentID, req.MovieID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"comments": comments})
}

// CommentReport serves the top-commenters aggregation. Admin only.
func (ctrl *CommentController) CommentReport(c *gin.Context) {
	claims, ok := middleware.ClaimsFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	isAdmin, err := ctrl.authService.IsAdmin(c.Request.Context(), claims)
	if err != nil {
		respondError(c, err)
		return
	}
	if !isAdmin {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "admin access required"})
		return
	}

	report, err := ctrl.commentService.MostActiveCommenters(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"report": report})
}
