package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"marauder-server/internal/handler"
	"marauder-server/internal/models"
	"marauder-server/internal/service"
	serviceMocks "marauder-server/internal/service/mocks"
)

const (
	testJWTSecret     = "test-secret"
	testInternalToken = "internal-secret"
)

type handlerFixture struct {
	router    *gin.Engine
	profiles  *serviceMocks.ProfileService
	inventory *serviceMocks.InventoryService
	quests    *serviceMocks.QuestService
	reports   *serviceMocks.ReportService
	locations *serviceMocks.LocationService
	dashboard *serviceMocks.DashboardService
}

func newHandlerFixture() *handlerFixture {
	gin.SetMode(gin.TestMode)
	f := &handlerFixture{
		profiles:  new(serviceMocks.ProfileService),
		inventory: new(serviceMocks.InventoryService),
		quests:    new(serviceMocks.QuestService),
		reports:   new(serviceMocks.ReportService),
		locations: new(serviceMocks.LocationService),
		dashboard: new(serviceMocks.DashboardService),
	}

	h := handler.NewHandler(f.profiles, f.inventory, f.quests, f.reports, f.locations, f.dashboard, zap.NewNop())
	f.router = gin.New()
	h.RegisterRoutes(f.router,
		handler.AuthMiddleware(testJWTSecret, zap.NewNop()),
		handler.InternalAuthMiddleware(testInternalToken, zap.NewNop()),
		nil,
	)
	return f
}

func anyCtx() any { return mock.Anything }

func bearerToken(t *testing.T, userID uuid.UUID) string {
	t.Helper()
	claims := &models.Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testJWTSecret))
	require.NoError(t, err)
	return "Bearer " + token
}

func doRequest(f *handlerFixture, method, path, auth string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	t.Run("Missing token is unauthorized", func(t *testing.T) {
		f := newHandlerFixture()
		w := doRequest(f, http.MethodGet, "/api/v1/dashboard", "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Garbage token is unauthorized", func(t *testing.T) {
		f := newHandlerFixture()
		w := doRequest(f, http.MethodGet, "/api/v1/dashboard", "Bearer not-a-token", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Token signed with another secret is rejected", func(t *testing.T) {
		f := newHandlerFixture()
		claims := &models.Claims{
			UserID: uuid.New(),
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("wrong-secret"))
		require.NoError(t, err)

		w := doRequest(f, http.MethodGet, "/api/v1/dashboard", "Bearer "+token, nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestGetDashboardEndpoint(t *testing.T) {
	f := newHandlerFixture()
	userID := uuid.New()
	dash := &service.Dashboard{
		Profile:         &models.PlayerProfile{ID: uuid.New(), UserID: userID, Level: 2},
		CompletedQuests: 5,
	}
	f.dashboard.On("GetDashboard", anyCtx(), userID).Return(dash, nil).Once()

	w := doRequest(f, http.MethodGet, "/api/v1/dashboard", bearerToken(t, userID), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var got service.Dashboard
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, 5, got.CompletedQuests)
	assert.Equal(t, 2, got.Profile.Level)
}

func TestQuestEndpoints(t *testing.T) {
	userID := uuid.New()

	t.Run("Accept maps level precondition to 412", func(t *testing.T) {
		f := newHandlerFixture()
		questID := uuid.New()
		f.quests.On("Accept", anyCtx(), userID, questID).Return(nil, models.ErrQuestLevelTooLow).Once()

		w := doRequest(f, http.MethodPost, "/api/v1/quests/"+questID.String()+"/accept", bearerToken(t, userID), nil)
		assert.Equal(t, http.StatusPreconditionFailed, w.Code)

		var resp models.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, models.ErrCodePreconditionFailed, resp.Code)
	})

	t.Run("Accept maps duplicate take to 409", func(t *testing.T) {
		f := newHandlerFixture()
		questID := uuid.New()
		f.quests.On("Accept", anyCtx(), userID, questID).Return(nil, models.ErrQuestAlreadyTaken).Once()

		w := doRequest(f, http.MethodPost, "/api/v1/quests/"+questID.String()+"/accept", bearerToken(t, userID), nil)
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("Successful accept returns 201 with the progress record", func(t *testing.T) {
		f := newHandlerFixture()
		questID := uuid.New()
		progress := &models.QuestProgress{ID: uuid.New(), QuestID: questID, Status: models.QuestStatusAccepted}
		f.quests.On("Accept", anyCtx(), userID, questID).Return(progress, nil).Once()

		w := doRequest(f, http.MethodPost, "/api/v1/quests/"+questID.String()+"/accept", bearerToken(t, userID), nil)
		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("Complete maps repeated completion to 409", func(t *testing.T) {
		f := newHandlerFixture()
		progressID := uuid.New()
		f.quests.On("Complete", anyCtx(), userID, progressID).Return(nil, models.ErrQuestAlreadyCompleted).Once()

		w := doRequest(f, http.MethodPost, "/api/v1/quests/progress/"+progressID.String()+"/complete", bearerToken(t, userID), nil)
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("Advance rejects malformed progress id", func(t *testing.T) {
		f := newHandlerFixture()
		w := doRequest(f, http.MethodPost, "/api/v1/quests/progress/not-a-uuid/advance", bearerToken(t, userID),
			map[string]string{"status": "FAILED"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestReportEndpoints(t *testing.T) {
	userID := uuid.New()

	t.Run("Submission returns 201", func(t *testing.T) {
		f := newHandlerFixture()
		created := &models.MapReport{
			ID:         uuid.New(),
			ReportType: models.ReportTypeObstruction,
			Status:     models.ReportStatusSubmitted,
		}
		f.reports.On("Submit", anyCtx(), userID, models.ReportSubmission{
			Latitude:    51.5,
			Longitude:   -0.08,
			ReportType:  models.ReportTypeObstruction,
			Description: "Fallen tree",
		}).Return(created, nil).Once()

		w := doRequest(f, http.MethodPost, "/api/v1/reports", bearerToken(t, userID), map[string]any{
			"latitude":    51.5,
			"longitude":   -0.08,
			"report_type": "OBSTRUCTION",
			"description": "Fallen tree",
		})
		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("Missing description fails binding", func(t *testing.T) {
		f := newHandlerFixture()
		w := doRequest(f, http.MethodPost, "/api/v1/reports", bearerToken(t, userID), map[string]any{
			"latitude":    51.5,
			"longitude":   -0.08,
			"report_type": "OBSTRUCTION",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Duplicate verification maps to 409", func(t *testing.T) {
		f := newHandlerFixture()
		reportID := uuid.New()
		f.reports.On("Verify", anyCtx(), userID, reportID, true, (*string)(nil)).
			Return(nil, models.ErrDuplicateVerification).Once()

		w := doRequest(f, http.MethodPost, "/api/v1/reports/"+reportID.String()+"/verify", bearerToken(t, userID),
			map[string]any{"agrees_with_report": true})
		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestInternalEndpoints(t *testing.T) {
	t.Run("Internal routes require the service token", func(t *testing.T) {
		f := newHandlerFixture()
		req := httptest.NewRequest(http.MethodGet, "/internal/reports?status=SUBMITTED", nil)
		w := httptest.NewRecorder()
		f.router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("Resolve passes the decision through", func(t *testing.T) {
		f := newHandlerFixture()
		reportID := uuid.New()
		resolverID := uuid.New()
		notes := "Confirmed on the ground"
		resolved := &models.MapReport{ID: reportID, Status: models.ReportStatusVerified}

		f.reports.On("Resolve", anyCtx(), reportID, resolverID, models.ReportStatusVerified, &notes).
			Return(resolved, nil).Once()

		body, _ := json.Marshal(map[string]any{
			"status":      "VERIFIED",
			"resolver_id": resolverID.String(),
			"admin_notes": notes,
		})
		req := httptest.NewRequest(http.MethodPost, "/internal/reports/"+reportID.String()+"/resolve", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Internal-Service-Token", testInternalToken)
		w := httptest.NewRecorder()
		f.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		f.reports.AssertExpectations(t)
	})
}
