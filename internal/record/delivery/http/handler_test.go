package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"records-srv/internal/model"
	"records-srv/internal/record"
	"records-srv/pkg/paginator"

	"github.com/gin-gonic/gin"
)

// mockLogger implements log.Logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Debugf(ctx context.Context, template string, args ...any) {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Infof(ctx context.Context, template string, args ...any)  {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Warnf(ctx context.Context, template string, args ...any)  {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Errorf(ctx context.Context, template string, args ...any) {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, args ...any) {}

type mockUseCase struct {
	lastList  *record.ListInput
	listOut   record.ListOutput
	listErr   error
	lastDel   *int64
	deleteErr error
}

func (m *mockUseCase) List(ctx context.Context, ip record.ListInput) (record.ListOutput, error) {
	m.lastList = &ip
	if m.listErr != nil {
		return record.ListOutput{}, m.listErr
	}
	return m.listOut, nil
}

func (m *mockUseCase) Delete(ctx context.Context, id int64) error {
	m.lastDel = &id
	return m.deleteErr
}

func newTestRouter(uc record.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := New(&mockLogger{}, uc)
	h.MapRoutes(r.Group("/api/v1/records"))
	return r
}

func TestHandler_List_QueryBoundary(t *testing.T) {
	tests := []struct {
		name       string
		url        string
		wantStatus int
		wantTerm   string
		wantOffset *int64
	}{
		{
			name:       "absent offset means first page",
			url:        "/api/v1/records",
			wantStatus: http.StatusOK,
			wantOffset: paginator.At(0),
		},
		{
			name:       "explicit offset passes through",
			url:        "/api/v1/records?offset=20",
			wantStatus: http.StatusOK,
			wantOffset: paginator.At(20),
		},
		{
			name:       "search term passes through untrimmed",
			url:        "/api/v1/records?q=+ann&offset=20",
			wantStatus: http.StatusOK,
			wantTerm:   " ann",
			wantOffset: paginator.At(20),
		},
		{
			name:       "negative offset is rejected",
			url:        "/api/v1/records?offset=-1",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "non-integer offset is rejected",
			url:        "/api/v1/records?offset=abc",
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{}
			r := newTestRouter(uc)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			r.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d (body: %s)", w.Code, tt.wantStatus, w.Body.String())
			}

			if tt.wantStatus != http.StatusOK {
				if uc.lastList != nil {
					t.Error("usecase reached despite rejected input")
				}
				return
			}

			if uc.lastList == nil {
				t.Fatal("usecase was not called")
			}
			if uc.lastList.SearchTerm != tt.wantTerm {
				t.Errorf("SearchTerm = %q, want %q", uc.lastList.SearchTerm, tt.wantTerm)
			}
			if (uc.lastList.Offset == nil) != (tt.wantOffset == nil) {
				t.Fatalf("Offset = %v, want %v", uc.lastList.Offset, tt.wantOffset)
			}
			if uc.lastList.Offset != nil && *uc.lastList.Offset != *tt.wantOffset {
				t.Errorf("Offset = %d, want %d", *uc.lastList.Offset, *tt.wantOffset)
			}
		})
	}
}

func TestHandler_List_Envelope(t *testing.T) {
	uc := &mockUseCase{
		listOut: record.ListOutput{
			Records: []model.Record{
				{ID: 1, Name: "Leanne Graham", Username: "Bret", Email: "leanne@example.com"},
			},
			NextOffset: paginator.At(20),
		},
	}
	r := newTestRouter(uc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/records", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var body struct {
		ErrorCode int      `json:"error_code"`
		Data      listResp `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if body.ErrorCode != 0 {
		t.Errorf("error_code = %d, want 0", body.ErrorCode)
	}
	if len(body.Data.Records) != 1 || body.Data.Records[0].Name != "Leanne Graham" {
		t.Errorf("unexpected records payload: %+v", body.Data.Records)
	}
	if body.Data.NextOffset == nil || *body.Data.NextOffset != 20 {
		t.Errorf("next_offset = %v, want 20", body.Data.NextOffset)
	}
}

func TestHandler_Delete(t *testing.T) {
	tests := []struct {
		name       string
		url        string
		deleteErr  error
		wantStatus int
		wantID     *int64
	}{
		{
			name:       "success",
			url:        "/api/v1/records/7",
			wantStatus: http.StatusOK,
			wantID:     paginator.At(7),
		},
		{
			name:       "not found maps to 404",
			url:        "/api/v1/records/99",
			deleteErr:  record.ErrRecordNotFound,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "non-integer id is rejected",
			url:        "/api/v1/records/abc",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "store fault maps to 500",
			url:        "/api/v1/records/7",
			deleteErr:  fmt.Errorf("connection refused"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{deleteErr: tt.deleteErr}
			r := newTestRouter(uc)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodDelete, tt.url, nil)
			r.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d (body: %s)", w.Code, tt.wantStatus, w.Body.String())
			}

			if tt.wantID != nil {
				if uc.lastDel == nil || *uc.lastDel != *tt.wantID {
					t.Errorf("deleted id = %v, want %d", uc.lastDel, *tt.wantID)
				}
			}
		})
	}
}
