package handler

import (
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/mishasvintus/product_review_service/internal/domain"
)

// AddUserRequest represents request body for POST /users/add.
type AddUserRequest struct {
	UserID   string `json:"user_id" binding:"required"`
	Username string `json:"username" binding:"required"`
	IsActive *bool  `json:"is_active"`
}

// SetIsActiveRequest represents request body for POST /users/setIsActive.
type SetIsActiveRequest struct {
	UserID   string `json:"user_id" binding:"required"`
	IsActive *bool  `json:"is_active" binding:"required"`
}

// CreateDocumentRequest represents request body for POST /documents/create.
type CreateDocumentRequest struct {
	Kind     string `json:"kind" binding:"required,document_kind"`
	Title    string `json:"title" binding:"required,max=255"`
	AuthorID string `json:"author_id" binding:"required"`
}

// DocumentRequest represents request body for POST /documents/submit and /documents/autoAssign.
type DocumentRequest struct {
	DocumentID string `json:"document_id" binding:"required"`
}

// AssignReviewerRequest represents request body for POST /documents/assignReviewer.
// A null or missing reviewer_id clears the level.
type AssignReviewerRequest struct {
	DocumentID string  `json:"document_id" binding:"required"`
	Level      int     `json:"level" binding:"required,review_level"`
	ReviewerID *string `json:"reviewer_id"`
}

// DecisionRequest represents request body for POST /documents/approve and /documents/reject.
type DecisionRequest struct {
	DocumentID string `json:"document_id" binding:"required"`
	Level      int    `json:"level" binding:"required,review_level"`
}

// BatchApproveRequest represents request body for POST /documents/batchApprove.
type BatchApproveRequest struct {
	DocumentIDs []string `json:"document_ids" binding:"required,min=1,max=500,dive,required"`
	Level       int      `json:"level" binding:"required,review_level"`
}

// CreateVersionRequest represents request body for POST /versions/create.
type CreateVersionRequest struct {
	Name        string `json:"name" binding:"required,max=255"`
	ReleaseDate string `json:"release_date" binding:"required,datetime=2006-01-02"`
}

// UpdateReleaseDateRequest represents request body for POST /versions/updateReleaseDate.
type UpdateReleaseDateRequest struct {
	VersionID   string `json:"version_id" binding:"required"`
	ReleaseDate string `json:"release_date" binding:"required,datetime=2006-01-02"`
}

var registerOnce sync.Once

// RegisterValidators adds the review-specific tags to gin's validator.
// Safe to call more than once.
func RegisterValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		_ = v.RegisterValidation("review_level", func(fl validator.FieldLevel) bool {
			return domain.Level(fl.Field().Int()).IsValid()
		})
		_ = v.RegisterValidation("document_kind", func(fl validator.FieldLevel) bool {
			return domain.DocumentKind(fl.Field().String()).IsValid()
		})
	})
}
