package models

type RegisterRequest struct {
	Name     string `json:"name" binding:"required,min=3"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type DeleteUserRequest struct {
	Password string `json:"password" binding:"required"`
}

type UpdatePreferencesRequest struct {
	Preferences map[string]interface{} `json:"preferences"`
}

type AddCommentRequest struct {
	MovieID string `json:"movie_id" binding:"required"`
	Comment string `json:"comment" binding:"required"`
}

type UpdateCommentRequest struct {
	CommentID      string `json:"comment_id" binding:"required"`
	MovieID        string `json:"movie_id" binding:"required"`
	UpdatedComment string `json:"updated_comment" binding:"required"`
}

type DeleteCommentRequest struct {
	CommentID string `json:"comment_id" binding:"required"`
	MovieID   string `json:"movie_id" binding:"required"`
}
