package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/clearboard/clearboard-backend/internal/platform/apierr"
	"github.com/clearboard/clearboard-backend/internal/requestdata"
	"github.com/clearboard/clearboard-backend/internal/services"
)

type stubAssessmentService struct {
	services.AssessmentService

	insights   *services.SummaryInsightsView
	insightErr error
	gotUser    uuid.UUID
	gotTeacher uuid.UUID
}

func (s *stubAssessmentService) SummaryInsights(ctx context.Context, userID, teacherID uuid.UUID) (*services.SummaryInsightsView, error) {
	s.gotUser, s.gotTeacher = userID, teacherID
	if s.insightErr != nil {
		return nil, s.insightErr
	}
	return s.insights, nil
}

func insightsRouter(h *AssessmentHandler, userID uuid.UUID) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/teachers/:id/summary-insights", func(c *gin.Context) {
		if userID != uuid.Nil {
			ctx := requestdata.WithRequestData(c.Request.Context(), &requestdata.RequestData{UserID: userID})
			c.Request = c.Request.WithContext(ctx)
		}
		h.SummaryInsights(c)
	})
	return router
}

func TestSummaryInsightsReturnsView(t *testing.T) {
	userID, teacherID := uuid.New(), uuid.New()
	score := 72.5
	stub := &stubAssessmentService{insights: &services.SummaryInsightsView{
		TeacherID:         teacherID,
		OverallTrendScore: &score,
		Summary:           "Overall performance: Yellow (score 72.5/100).",
		Recommendations:   []string{},
		ElementAverages:   []services.ElementInsight{},
		AssessmentCount:   4,
	}}
	router := insightsRouter(NewAssessmentHandler(stub), userID)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/teachers/"+teacherID.String()+"/summary-insights", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var got services.SummaryInsightsView
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if got.TeacherID != teacherID || got.OverallTrendScore == nil || *got.OverallTrendScore != 72.5 {
		t.Fatalf("unexpected view: %+v", got)
	}
	if stub.gotUser != userID || stub.gotTeacher != teacherID {
		t.Fatalf("handler passed wrong identifiers: user=%s teacher=%s", stub.gotUser, stub.gotTeacher)
	}
}

func TestSummaryInsightsRequiresIdentity(t *testing.T) {
	router := insightsRouter(NewAssessmentHandler(&stubAssessmentService{}), uuid.Nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/teachers/"+uuid.NewString()+"/summary-insights", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without an identity, got %d", w.Code)
	}
}

func TestSummaryInsightsMapsServiceErrors(t *testing.T) {
	stub := &stubAssessmentService{insightErr: apierr.NotFound("teacher_not_found", "teacher not found")}
	router := insightsRouter(NewAssessmentHandler(stub), uuid.New())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/teachers/"+uuid.NewString()+"/summary-insights", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for an unknown teacher, got %d", w.Code)
	}
	var env ErrorEnvelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("invalid error body: %v", err)
	}
	if env.Error.Code != "teacher_not_found" {
		t.Fatalf("expected the service error code on the wire, got %+v", env)
	}
}
