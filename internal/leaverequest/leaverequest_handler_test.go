package leaverequest_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-leave/internal/leaverequest"
	leaverequesterrors "go-leave/internal/leaverequest/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeLeaveService struct {
	CreateFn  func(ctx context.Context, employeeID string, req leaverequest.CreateLeaveRequest) (*leaverequest.CreateLeaveResponse, error)
	GetByIDFn func(ctx context.Context, actorID, role, id string) (*leaverequest.LeaveRequestResponse, error)
	GetAllFn  func(ctx context.Context, actorID, role string) ([]leaverequest.LeaveRequestResponse, error)
	UpdateFn  func(ctx context.Context, actorID, id string, req leaverequest.UpdateLeaveRequest) (*leaverequest.LeaveRequestResponse, error)
	SubmitFn  func(ctx context.Context, actorID, id string) (*leaverequest.LeaveRequestResponse, error)
	ApproveFn func(ctx context.Context, actorID, id string, req leaverequest.ApproveLeaveRequest) error
	RejectFn  func(ctx context.Context, actorID, id string, req leaverequest.RejectLeaveRequest) error
	CancelFn  func(ctx context.Context, actorID, id string, req leaverequest.CancelLeaveRequest) error
	DeleteFn  func(ctx context.Context, actorID, id string) error
}

func (f *fakeLeaveService) Create(ctx context.Context, employeeID string, req leaverequest.CreateLeaveRequest) (*leaverequest.CreateLeaveResponse, error) {
	return f.CreateFn(ctx, employeeID, req)
}
func (f *fakeLeaveService) GetByID(ctx context.Context, actorID, role, id string) (*leaverequest.LeaveRequestResponse, error) {
	return f.GetByIDFn(ctx, actorID, role, id)
}
func (f *fakeLeaveService) GetAll(ctx context.Context, actorID, role string) ([]leaverequest.LeaveRequestResponse, error) {
	return f.GetAllFn(ctx, actorID, role)
}
func (f *fakeLeaveService) Update(ctx context.Context, actorID, id string, req leaverequest.UpdateLeaveRequest) (*leaverequest.LeaveRequestResponse, error) {
	return f.UpdateFn(ctx, actorID, id, req)
}
func (f *fakeLeaveService) Submit(ctx context.Context, actorID, id string) (*leaverequest.LeaveRequestResponse, error) {
	return f.SubmitFn(ctx, actorID, id)
}
func (f *fakeLeaveService) Approve(ctx context.Context, actorID, id string, req leaverequest.ApproveLeaveRequest) error {
	return f.ApproveFn(ctx, actorID, id, req)
}
func (f *fakeLeaveService) Reject(ctx context.Context, actorID, id string, req leaverequest.RejectLeaveRequest) error {
	return f.RejectFn(ctx, actorID, id, req)
}
func (f *fakeLeaveService) Cancel(ctx context.Context, actorID, id string, req leaverequest.CancelLeaveRequest) error {
	return f.CancelFn(ctx, actorID, id, req)
}
func (f *fakeLeaveService) Delete(ctx context.Context, actorID, id string) error {
	return f.DeleteFn(ctx, actorID, id)
}

func setupHandler(svc leaverequest.Service) *leaverequest.Handler {
	return leaverequest.NewHandler(svc, zap.NewNop())
}

func TestLeaveRequestHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		employeeID := uuid.New().String()
		svc := &fakeLeaveService{
			CreateFn: func(ctx context.Context, eid string, req leaverequest.CreateLeaveRequest) (*leaverequest.CreateLeaveResponse, error) {
				assert.Equal(t, employeeID, eid)
				assert.Equal(t, "2026-03-02", req.StartDate)
				return &leaverequest.CreateLeaveResponse{
					ID:            uuid.New().String(),
					RequestNumber: "LV-2026-007",
				}, nil
			},
		}

		h := setupHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body := `{
			"leave_type_id": "` + uuid.New().String() + `",
			"start_date": "2026-03-02",
			"end_date": "2026-03-06",
			"reason": "Family trip out of town"
		}`
		c.Request = httptest.NewRequest(http.MethodPost, "/leave-requests", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")
		c.Set("employee_id", employeeID)

		h.Create(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), "LV-2026-007")
	})

	t.Run("missing reason is a binding error", func(t *testing.T) {
		h := setupHandler(&fakeLeaveService{})
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body := `{
			"leave_type_id": "` + uuid.New().String() + `",
			"start_date": "2026-03-02",
			"end_date": "2026-03-06"
		}`
		c.Request = httptest.NewRequest(http.MethodPost, "/leave-requests", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("validation error from service", func(t *testing.T) {
		svc := &fakeLeaveService{
			CreateFn: func(ctx context.Context, eid string, req leaverequest.CreateLeaveRequest) (*leaverequest.CreateLeaveResponse, error) {
				return nil, leaverequesterrors.ErrLeaveOverlap
			},
		}

		h := setupHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body := `{
			"leave_type_id": "` + uuid.New().String() + `",
			"start_date": "2026-03-02",
			"end_date": "2026-03-06",
			"reason": "Family trip out of town"
		}`
		c.Request = httptest.NewRequest(http.MethodPost, "/leave-requests", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Create(c)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), "overlap")
	})
}

func TestLeaveRequestHandler_Approve(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		actorID := uuid.New().String()
		requestID := uuid.New().String()
		svc := &fakeLeaveService{
			ApproveFn: func(ctx context.Context, aid, id string, req leaverequest.ApproveLeaveRequest) error {
				assert.Equal(t, actorID, aid)
				assert.Equal(t, requestID, id)
				return nil
			},
		}

		h := setupHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		c.Request = httptest.NewRequest(http.MethodPost, "/leave-requests/"+requestID+"/approve", strings.NewReader(`{}`))
		c.Request.Header.Set("Content-Type", "application/json")
		c.Params = gin.Params{{Key: "id", Value: requestID}}
		c.Set("employee_id", actorID)

		h.Approve(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("wrong approver", func(t *testing.T) {
		svc := &fakeLeaveService{
			ApproveFn: func(ctx context.Context, aid, id string, req leaverequest.ApproveLeaveRequest) error {
				return leaverequesterrors.ErrNotCurrentApprover
			},
		}

		h := setupHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		c.Request = httptest.NewRequest(http.MethodPost, "/leave-requests/x/approve", strings.NewReader(`{}`))
		c.Request.Header.Set("Content-Type", "application/json")
		c.Params = gin.Params{{Key: "id", Value: "x"}}

		h.Approve(c)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestLeaveRequestHandler_Reject_RequiresReason(t *testing.T) {
	gin.SetMode(gin.TestMode)

	h := setupHandler(&fakeLeaveService{})
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Request = httptest.NewRequest(http.MethodPost, "/leave-requests/x/reject", strings.NewReader(`{}`))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = gin.Params{{Key: "id", Value: "x"}}

	h.Reject(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLeaveRequestHandler_GetAll(t *testing.T) {
	gin.SetMode(gin.TestMode)

	actorID := uuid.New().String()
	svc := &fakeLeaveService{
		GetAllFn: func(ctx context.Context, aid, role string) ([]leaverequest.LeaveRequestResponse, error) {
			assert.Equal(t, actorID, aid)
			assert.Equal(t, "employee", role)
			return []leaverequest.LeaveRequestResponse{{RequestNumber: "LV-2026-003"}}, nil
		},
	}

	h := setupHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Request = httptest.NewRequest(http.MethodGet, "/leave-requests", nil)
	c.Set("employee_id", actorID)
	c.Set("role", "employee")

	h.GetAll(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "LV-2026-003")
}

func TestLeaveRequestHandler_Delete(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeLeaveService{
		DeleteFn: func(ctx context.Context, aid, id string) error {
			return leaverequesterrors.ErrInvalidTransition
		},
	}

	h := setupHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Request = httptest.NewRequest(http.MethodDelete, "/leave-requests/x", nil)
	c.Params = gin.Params{{Key: "id", Value: "x"}}

	h.Delete(c)

	assert.Equal(t, http.StatusConflict, w.Code)
}
