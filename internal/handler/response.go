package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mishasvintus/product_review_service/internal/domain"
	"github.com/mishasvintus/product_review_service/internal/service"
)

// ErrorCode represents API error codes.
type ErrorCode string

const (
	ErrorNotFound         ErrorCode = "NOT_FOUND"
	ErrorNotAssigned      ErrorCode = "NOT_ASSIGNED"
	ErrorMissingReviewer  ErrorCode = "MISSING_REVIEWER"
	ErrorInvalidDate      ErrorCode = "INVALID_DATE"
	ErrorInactiveReviewer ErrorCode = "INACTIVE_REVIEWER"
	ErrorUserExists       ErrorCode = "USER_EXISTS"
	ErrorNoCandidate      ErrorCode = "NO_CANDIDATE"
	ErrorNotUnderReview   ErrorCode = "NOT_UNDER_REVIEW"
)

// ErrorResponse represents error response structure.
type ErrorResponse struct {
	Error struct {
		Code    ErrorCode `json:"code"`
		Message string    `json:"message"`
	} `json:"error"`
}

// SuccessResponse represents success response structure.
type SuccessResponse struct {
	User     *UserResponse     `json:"user,omitempty"`
	Document *DocumentResponse `json:"document,omitempty"`
	Version  *VersionResponse  `json:"version,omitempty"`
}

// UserResponse wraps user data.
type UserResponse struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	IsActive bool   `json:"is_active"`
}

// ReviewLevelResponse describes one review level of a document.
type ReviewLevelResponse struct {
	ReviewerID string `json:"reviewer_id"`
	Decision   string `json:"decision"`
}

// DocumentResponse wraps document data.
type DocumentResponse struct {
	DocumentID   string               `json:"document_id"`
	Kind         string               `json:"kind"`
	Title        string               `json:"title"`
	AuthorID     string               `json:"author_id"`
	Lifecycle    string               `json:"lifecycle"`
	ReviewStatus string               `json:"review_status"`
	Reviewer1    *ReviewLevelResponse `json:"reviewer1"`
	Reviewer2    *ReviewLevelResponse `json:"reviewer2"`
	CreatedAt    string               `json:"createdAt,omitempty"`
	UpdatedAt    string               `json:"updatedAt,omitempty"`
	PublishedAt  string               `json:"publishedAt,omitempty"`
}

// DocumentShortResponse represents a short document in lists.
type DocumentShortResponse struct {
	DocumentID   string `json:"document_id"`
	Kind         string `json:"kind"`
	Title        string `json:"title"`
	AuthorID     string `json:"author_id"`
	Lifecycle    string `json:"lifecycle"`
	ReviewStatus string `json:"review_status"`
}

// DocumentListResponse wraps document list response.
type DocumentListResponse struct {
	Documents []DocumentShortResponse `json:"documents"`
}

// GetReviewResponse wraps get review response.
type GetReviewResponse struct {
	UserID    string                  `json:"user_id"`
	Documents []DocumentShortResponse `json:"documents"`
}

// BatchApproveResponse wraps batch approval result.
type BatchApproveResponse struct {
	Affected  int                `json:"affected"`
	Skipped   int                `json:"skipped"`
	NotFound  []string           `json:"not_found,omitempty"`
	Documents []DocumentResponse `json:"documents"`
	Message   string             `json:"message,omitempty"`
}

// WindowResponse is an inclusive date range.
type WindowResponse struct {
	Start string `json:"start"`
	End   string `json:"end"`
	Days  int    `json:"days"`
}

// ScheduleResponse wraps a release schedule.
type ScheduleResponse struct {
	ReleaseDate string         `json:"release_date"`
	Drafting    WindowResponse `json:"drafting"`
	Prototyping WindowResponse `json:"prototyping"`
	Development WindowResponse `json:"development"`
	Testing     WindowResponse `json:"testing"`
}

// VersionResponse wraps version data.
type VersionResponse struct {
	VersionID   string           `json:"version_id"`
	Name        string           `json:"name"`
	ReleaseDate string           `json:"release_date"`
	Schedule    ScheduleResponse `json:"schedule"`
	CreatedAt   string           `json:"createdAt,omitempty"`
}

// VersionListResponse wraps version list response.
type VersionListResponse struct {
	Versions []VersionResponse `json:"versions"`
}

// StatisticsResponse wraps statistics response.
type StatisticsResponse struct {
	Overall struct {
		TotalDocuments int64 `json:"total_documents"`
		TotalUsers     int64 `json:"total_users"`
		TotalVersions  int64 `json:"total_versions"`
	} `json:"overall"`
	Lifecycle     map[string]int64       `json:"lifecycle"`
	ReviewStatus  map[string]int64       `json:"review_status"`
	ReviewerStats []ReviewerStatResponse `json:"reviewer_stats"`
}

// ReviewerStatResponse represents the number of documents waiting on a reviewer.
type ReviewerStatResponse struct {
	UserID string `json:"user_id"`
	Count  int64  `json:"count"`
}

// Error sends error response.
func Error(c *gin.Context, code ErrorCode, message string, statusCode int) {
	c.JSON(statusCode, ErrorResponse{
		Error: struct {
			Code    ErrorCode `json:"code"`
			Message string    `json:"message"`
		}{
			Code:    code,
			Message: message,
		},
	})
}

// NotFound sends 404 error.
func NotFound(c *gin.Context, message string) {
	Error(c, ErrorNotFound, message, http.StatusNotFound)
}

// Conflict sends 409 error.
func Conflict(c *gin.Context, code ErrorCode, message string) {
	Error(c, code, message, http.StatusConflict)
}

// BadRequest sends 400 error.
func BadRequest(c *gin.Context, message string) {
	Error(c, "", message, http.StatusBadRequest)
}

// InternalError sends 500 error.
func InternalError(c *gin.Context, message string) {
	Error(c, "", message, http.StatusInternalServerError)
}

func userToResponse(u *domain.User) *UserResponse {
	return &UserResponse{
		UserID:   u.UserID,
		Username: u.Username,
		IsActive: u.IsActive,
	}
}

func levelToResponse(l domain.ReviewLevel) *ReviewLevelResponse {
	reviewer, ok := l.Reviewer()
	if !ok {
		return nil
	}
	decision, _ := l.Decision()
	return &ReviewLevelResponse{ReviewerID: reviewer, Decision: string(decision)}
}

// documentToResponse converts domain.Document to DocumentResponse.
func documentToResponse(d *domain.Document) *DocumentResponse {
	resp := &DocumentResponse{
		DocumentID:   d.DocumentID,
		Kind:         string(d.Kind),
		Title:        d.Title,
		AuthorID:     d.AuthorID,
		Lifecycle:    string(d.Lifecycle),
		ReviewStatus: string(d.ReviewStatus()),
		Reviewer1:    levelToResponse(d.Review.First),
		Reviewer2:    levelToResponse(d.Review.Second),
	}

	if d.CreatedAt != nil {
		resp.CreatedAt = d.CreatedAt.Format(time.RFC3339)
	}
	if d.UpdatedAt != nil {
		resp.UpdatedAt = d.UpdatedAt.Format(time.RFC3339)
	}
	if d.PublishedAt != nil {
		resp.PublishedAt = d.PublishedAt.Format(time.RFC3339)
	}

	return resp
}

func documentsToShort(docs []domain.Document) []DocumentShortResponse {
	out := make([]DocumentShortResponse, len(docs))
	for i := range docs {
		d := &docs[i]
		out[i] = DocumentShortResponse{
			DocumentID:   d.DocumentID,
			Kind:         string(d.Kind),
			Title:        d.Title,
			AuthorID:     d.AuthorID,
			Lifecycle:    string(d.Lifecycle),
			ReviewStatus: string(d.ReviewStatus()),
		}
	}
	return out
}

func windowToResponse(w domain.DateWindow) WindowResponse {
	return WindowResponse{
		Start: w.Start.Format(domain.DateLayout),
		End:   w.End.Format(domain.DateLayout),
		Days:  w.Days(),
	}
}

func scheduleToResponse(s domain.ReleaseSchedule) ScheduleResponse {
	return ScheduleResponse{
		ReleaseDate: s.ReleaseDate.Format(domain.DateLayout),
		Drafting:    windowToResponse(s.Drafting),
		Prototyping: windowToResponse(s.Prototyping),
		Development: windowToResponse(s.Development),
		Testing:     windowToResponse(s.Testing),
	}
}

func versionToResponse(v *domain.Version) *VersionResponse {
	resp := &VersionResponse{
		VersionID:   v.VersionID,
		Name:        v.Name,
		ReleaseDate: v.ReleaseDate().Format(domain.DateLayout),
		Schedule:    scheduleToResponse(v.Schedule),
	}
	if v.CreatedAt != nil {
		resp.CreatedAt = v.CreatedAt.Format(time.RFC3339)
	}
	return resp
}

func statisticsToResponse(s *service.Statistics) StatisticsResponse {
	var resp StatisticsResponse
	resp.Overall.TotalDocuments = s.Overall.TotalDocuments
	resp.Overall.TotalUsers = s.Overall.TotalUsers
	resp.Overall.TotalVersions = s.Overall.TotalVersions

	resp.Lifecycle = make(map[string]int64, len(s.Lifecycle))
	for k, v := range s.Lifecycle {
		resp.Lifecycle[string(k)] = v
	}
	resp.ReviewStatus = make(map[string]int64, len(s.ReviewStatus))
	for k, v := range s.ReviewStatus {
		resp.ReviewStatus[string(k)] = v
	}

	resp.ReviewerStats = make([]ReviewerStatResponse, len(s.Awaiting))
	for i, r := range s.Awaiting {
		resp.ReviewerStats[i] = ReviewerStatResponse{UserID: r.UserID, Count: r.Count}
	}
	return resp
}
