package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/mishasvintus/product_review_service/internal/domain"
	"github.com/mishasvintus/product_review_service/internal/handler"
	"github.com/mishasvintus/product_review_service/internal/handler/mocks"
	"github.com/mishasvintus/product_review_service/internal/service"
)

func TestUserHandler_AddUser(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    any
		mockSetup      func(*mocks.MockUserServiceInterface)
		expectedStatus int
		expectedCode   handler.ErrorCode
	}{
		{
			name:        "success - active by default",
			requestBody: map[string]any{"user_id": "u1", "username": "Alice"},
			mockSetup: func(m *mocks.MockUserServiceInterface) {
				u := domain.User{UserID: "u1", Username: "Alice", IsActive: true}
				m.EXPECT().CreateUser(u).Return(&u, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:        "success - explicitly inactive",
			requestBody: map[string]any{"user_id": "u2", "username": "Bob", "is_active": false},
			mockSetup: func(m *mocks.MockUserServiceInterface) {
				u := domain.User{UserID: "u2", Username: "Bob", IsActive: false}
				m.EXPECT().CreateUser(u).Return(&u, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:        "error - user exists",
			requestBody: map[string]any{"user_id": "u1", "username": "Alice"},
			mockSetup: func(m *mocks.MockUserServiceInterface) {
				m.EXPECT().CreateUser(gomock.Any()).Return(nil, service.ErrUserExists)
			},
			expectedStatus: http.StatusConflict,
			expectedCode:   handler.ErrorUserExists,
		},
		{
			name:           "error - missing username",
			requestBody:    map[string]any{"user_id": "u1"},
			mockSetup:      func(m *mocks.MockUserServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockService := mocks.NewMockUserServiceInterface(ctrl)
			tt.mockSetup(mockService)

			h := handler.NewUserHandler(mockService)
			w := serve(t, h.AddUser, http.MethodPost, "/users/add", tt.requestBody)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedCode != "" {
				assert.Equal(t, tt.expectedCode, decodeError(t, w).Error.Code)
			}
		})
	}
}

func TestUserHandler_SetIsActive(t *testing.T) {
	tests := []struct {
		name             string
		requestBody      any
		mockSetup        func(*mocks.MockUserServiceInterface)
		expectedStatus   int
		validateResponse func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name:        "success - deactivates user",
			requestBody: map[string]any{"user_id": "u1", "is_active": false},
			mockSetup: func(m *mocks.MockUserServiceInterface) {
				m.EXPECT().SetIsActive("u1", false).Return(&domain.User{UserID: "u1", Username: "Alice"}, nil)
			},
			expectedStatus: http.StatusOK,
			validateResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				response := decodeSuccess(t, w)
				require.NotNil(t, response.User)
				assert.False(t, response.User.IsActive)
			},
		},
		{
			name:           "error - missing is_active",
			requestBody:    map[string]any{"user_id": "u1"},
			mockSetup:      func(m *mocks.MockUserServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
			validateResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert.Equal(t, "invalid request body", decodeError(t, w).Error.Message)
			},
		},
		{
			name:        "error - user not found",
			requestBody: map[string]any{"user_id": "ghost", "is_active": true},
			mockSetup: func(m *mocks.MockUserServiceInterface) {
				m.EXPECT().SetIsActive("ghost", true).Return(nil, service.ErrUserNotFound)
			},
			expectedStatus: http.StatusNotFound,
			validateResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert.Equal(t, "user not found", decodeError(t, w).Error.Message)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockService := mocks.NewMockUserServiceInterface(ctrl)
			tt.mockSetup(mockService)

			h := handler.NewUserHandler(mockService)
			w := serve(t, h.SetIsActive, http.MethodPost, "/users/setIsActive", tt.requestBody)

			assert.Equal(t, tt.expectedStatus, w.Code)
			tt.validateResponse(t, w)
		})
	}
}

func TestUserHandler_GetReview(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockService := mocks.NewMockUserServiceInterface(ctrl)
		mockService.EXPECT().GetUserReviews("alice").Return([]domain.Document{*reviewingDoc(t)}, nil)

		h := handler.NewUserHandler(mockService)
		w := serve(t, h.GetReview, http.MethodGet, "/users/getReview?user_id=alice", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		var response handler.GetReviewResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "alice", response.UserID)
		require.Len(t, response.Documents, 1)
		assert.Equal(t, docID, response.Documents[0].DocumentID)
	})

	t.Run("unknown user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockService := mocks.NewMockUserServiceInterface(ctrl)
		mockService.EXPECT().GetUserReviews("ghost").Return(nil, service.ErrUserNotFound)

		h := handler.NewUserHandler(mockService)
		w := serve(t, h.GetReview, http.MethodGet, "/users/getReview?user_id=ghost", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("missing parameter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h := handler.NewUserHandler(mocks.NewMockUserServiceInterface(ctrl))

		w := serve(t, h.GetReview, http.MethodGet, "/users/getReview", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestUserHandler_GetUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockUserServiceInterface(ctrl)
	mockService.EXPECT().GetUser("u1").Return(&domain.User{UserID: "u1", Username: "Alice", IsActive: true}, nil)

	h := handler.NewUserHandler(mockService)
	w := serve(t, h.GetUser, http.MethodGet, "/users/get?user_id=u1", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	response := decodeSuccess(t, w)
	require.NotNil(t, response.User)
	assert.Equal(t, "Alice", response.User.Username)
	assert.True(t, response.User.IsActive)
}
