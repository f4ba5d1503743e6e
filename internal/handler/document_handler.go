package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mishasvintus/product_review_service/internal/domain"
	"github.com/mishasvintus/product_review_service/internal/service"
)

// DocumentHandler handles document and review HTTP requests.
type DocumentHandler struct {
	documentService DocumentServiceInterface
}

// NewDocumentHandler creates a new document handler.
func NewDocumentHandler(documentService DocumentServiceInterface) *DocumentHandler {
	return &DocumentHandler{documentService: documentService}
}

// CreateDocument handles POST /documents/create.
func (h *DocumentHandler) CreateDocument(c *gin.Context) {
	var req CreateDocumentRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request body")
		return
	}

	doc, err := h.documentService.CreateDocument(domain.DocumentKind(req.Kind), req.Title, req.AuthorID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			NotFound(c, "author not found")
			return
		}
		InternalError(c, err.Error())
		return
	}

	c.JSON(http.StatusCreated, SuccessResponse{
		Document: documentToResponse(doc),
	})
}

// GetDocument handles GET /documents/get.
func (h *DocumentHandler) GetDocument(c *gin.Context) {
	documentID := c.Query("document_id")
	if documentID == "" {
		BadRequest(c, "document_id parameter is required")
		return
	}

	doc, err := h.documentService.GetDocument(documentID)
	if err != nil {
		writeReviewError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{
		Document: documentToResponse(doc),
	})
}

// ListDocuments handles GET /documents/list.
func (h *DocumentHandler) ListDocuments(c *gin.Context) {
	var filter domain.DocumentFilter

	if v := c.Query("kind"); v != "" {
		kind, err := domain.NewDocumentKind(v)
		if err != nil {
			BadRequest(c, err.Error())
			return
		}
		filter.Kind = kind
	}
	if v := c.Query("lifecycle"); v != "" {
		lifecycle, err := domain.NewLifecycleStatus(v)
		if err != nil {
			BadRequest(c, err.Error())
			return
		}
		filter.Lifecycle = lifecycle
	}
	if v := c.Query("review_status"); v != "" {
		status, err := domain.NewReviewStatus(v)
		if err != nil {
			BadRequest(c, err.Error())
			return
		}
		filter.ReviewStatus = status
	}

	docs, err := h.documentService.ListDocuments(filter)
	if err != nil {
		InternalError(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, DocumentListResponse{
		Documents: documentsToShort(docs),
	})
}

// AssignReviewer handles POST /documents/assignReviewer.
func (h *DocumentHandler) AssignReviewer(c *gin.Context) {
	var req AssignReviewerRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request body")
		return
	}

	var reviewerID string
	if req.ReviewerID != nil {
		reviewerID = *req.ReviewerID
	}

	doc, err := h.documentService.AssignReviewer(req.DocumentID, domain.Level(req.Level), reviewerID)
	if err != nil {
		writeReviewError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{
		Document: documentToResponse(doc),
	})
}

// AutoAssign handles POST /documents/autoAssign.
func (h *DocumentHandler) AutoAssign(c *gin.Context) {
	h.documentStep(c, h.documentService.AutoAssignReviewers)
}

// SubmitForReview handles POST /documents/submit.
func (h *DocumentHandler) SubmitForReview(c *gin.Context) {
	h.documentStep(c, h.documentService.SubmitForReview)
}

// Approve handles POST /documents/approve.
func (h *DocumentHandler) Approve(c *gin.Context) {
	h.decisionStep(c, h.documentService.Approve)
}

// Reject handles POST /documents/reject.
func (h *DocumentHandler) Reject(c *gin.Context) {
	h.decisionStep(c, h.documentService.Reject)
}

// BatchApprove handles POST /documents/batchApprove.
func (h *DocumentHandler) BatchApprove(c *gin.Context) {
	var req BatchApproveRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request body")
		return
	}

	result, err := h.documentService.BatchApprove(req.DocumentIDs, domain.Level(req.Level))
	if err != nil {
		writeReviewError(c, err)
		return
	}

	resp := BatchApproveResponse{
		Affected:  result.Affected,
		Skipped:   result.Skipped,
		NotFound:  result.NotFound,
		Documents: make([]DocumentResponse, len(result.Documents)),
	}
	for i := range result.Documents {
		resp.Documents[i] = *documentToResponse(&result.Documents[i])
	}
	if result.Affected == 0 {
		resp.Message = "no documents eligible for approval at this level"
	}

	c.JSON(http.StatusOK, resp)
}

func (h *DocumentHandler) documentStep(c *gin.Context, step func(string) (*domain.Document, error)) {
	var req DocumentRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request body")
		return
	}

	doc, err := step(req.DocumentID)
	if err != nil {
		writeReviewError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{
		Document: documentToResponse(doc),
	})
}

func (h *DocumentHandler) decisionStep(c *gin.Context, step func(string, domain.Level) (*domain.Document, error)) {
	var req DecisionRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request body")
		return
	}

	doc, err := step(req.DocumentID, domain.Level(req.Level))
	if err != nil {
		writeReviewError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{
		Document: documentToResponse(doc),
	})
}

// writeReviewError maps document service errors to responses.
func writeReviewError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrDocumentNotFound):
		NotFound(c, "document not found")
	case errors.Is(err, service.ErrUserNotFound):
		NotFound(c, "user not found")
	case errors.Is(err, service.ErrReviewerNotAssigned):
		Conflict(c, ErrorNotAssigned, "no reviewer assigned at this level")
	case errors.Is(err, service.ErrMissingReviewer1):
		Conflict(c, ErrorMissingReviewer, "first-level reviewer must be assigned before submitting")
	case errors.Is(err, service.ErrNotUnderReview):
		Conflict(c, ErrorNotUnderReview, "document must be submitted for review first")
	case errors.Is(err, service.ErrNoCandidate):
		Conflict(c, ErrorNoCandidate, "no active reviewer candidate available")
	case errors.Is(err, service.ErrInactiveReviewer):
		Error(c, ErrorInactiveReviewer, err.Error(), http.StatusBadRequest)
	case errors.Is(err, service.ErrInvalidLevel):
		BadRequest(c, err.Error())
	default:
		InternalError(c, err.Error())
	}
}
