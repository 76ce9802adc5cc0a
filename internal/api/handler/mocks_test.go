package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/souravmahato2004/Attendance-Management-System-sub000/config"
	"github.com/souravmahato2004/Attendance-Management-System-sub000/internal/api/validation"
	"github.com/souravmahato2004/Attendance-Management-System-sub000/internal/dto"
	"github.com/souravmahato2004/Attendance-Management-System-sub000/internal/model"
	"github.com/souravmahato2004/Attendance-Management-System-sub000/internal/service"
	"github.com/souravmahato2004/Attendance-Management-System-sub000/pkg/response"
)

func init() {
	gin.SetMode(gin.TestMode)
	if err := validation.Setup(); err != nil {
		panic(err)
	}
}

// ═══════════════════════════════════════════════════════════
// Mock Services
// ═══════════════════════════════════════════════════════════

// ── Mock AuthService ──

type mockAuthService struct {
	loginRole     model.Role
	loginResult   *dto.SessionResponse
	loginErr      error
	teacherResult *dto.TeacherSignupResponse
	studentResult *dto.StudentSignupResponse
	signupErr     error
}

func (m *mockAuthService) Login(_ context.Context, role model.Role, _ *dto.LoginRequest) (*dto.SessionResponse, error) {
	m.loginRole = role
	return m.loginResult, m.loginErr
}
func (m *mockAuthService) TeacherSignup(_ context.Context, _ *dto.TeacherSignupRequest) (*dto.TeacherSignupResponse, error) {
	return m.teacherResult, m.signupErr
}
func (m *mockAuthService) StudentSignup(_ context.Context, _ *dto.StudentSignupRequest) (*dto.StudentSignupResponse, error) {
	return m.studentResult, m.signupErr
}
func (m *mockAuthService) EnsureAdmin(_ context.Context, _ *config.AdminConfig) error { return nil }

// ── Mock CatalogService ──

type mockCatalogService struct {
	items     []dto.CatalogItem
	course    *dto.CourseResponse
	err       error
	lastQuery *dto.CourseQuery
}

func (m *mockCatalogService) ListPrograms(_ context.Context) ([]dto.CatalogItem, error) {
	return m.items, m.err
}
func (m *mockCatalogService) ListDepartments(_ context.Context) ([]dto.CatalogItem, error) {
	return m.items, m.err
}
func (m *mockCatalogService) GetCourse(_ context.Context, q *dto.CourseQuery) (*dto.CourseResponse, error) {
	m.lastQuery = q
	return m.course, m.err
}

// ── Mock SubjectService ──

type mockSubjectService struct {
	list      []dto.SubjectResponse
	added     *dto.AddSubjectsResponse
	err       error
	deletedID int64
}

func (m *mockSubjectService) List(_ context.Context, _ *dto.CohortQuery) ([]dto.SubjectResponse, error) {
	return m.list, m.err
}
func (m *mockSubjectService) AddToCourse(_ context.Context, _ *dto.AddSubjectsToCourseRequest) (*dto.AddSubjectsResponse, error) {
	return m.added, m.err
}
func (m *mockSubjectService) Delete(_ context.Context, id int64) error {
	m.deletedID = id
	return m.err
}

// ── Mock TeacherService ──

type mockTeacherService struct {
	teacher    *dto.TeacherResponse
	assignment *dto.AssignmentResponse
	subjects   []dto.AssignedSubjectResponse
	err        error
	updateReq  *dto.UpdateTeacherRequest
	lastID     string
}

func (m *mockTeacherService) List(_ context.Context) ([]dto.TeacherResponse, error) {
	if m.teacher == nil {
		return []dto.TeacherResponse{}, m.err
	}
	return []dto.TeacherResponse{*m.teacher}, m.err
}
func (m *mockTeacherService) Get(_ context.Context, id string) (*dto.TeacherResponse, error) {
	m.lastID = id
	return m.teacher, m.err
}
func (m *mockTeacherService) Update(_ context.Context, id string, req *dto.UpdateTeacherRequest) (*dto.TeacherResponse, error) {
	m.lastID, m.updateReq = id, req
	return m.teacher, m.err
}
func (m *mockTeacherService) Delete(_ context.Context, id string) error {
	m.lastID = id
	return m.err
}
func (m *mockTeacherService) Assign(_ context.Context, _ *dto.AssignSubjectRequest) (*dto.AssignmentResponse, error) {
	return m.assignment, m.err
}
func (m *mockTeacherService) Unassign(_ context.Context, _ int64) error { return m.err }
func (m *mockTeacherService) Subjects(_ context.Context, _ string) ([]dto.AssignedSubjectResponse, error) {
	return m.subjects, m.err
}

// ── Mock StudentService ──

type mockStudentService struct {
	student  *dto.StudentResponse
	subjects []dto.SubjectResponse
	err      error
	lastID   int64
}

func (m *mockStudentService) List(_ context.Context, _ *dto.CohortQuery) ([]dto.StudentResponse, error) {
	return []dto.StudentResponse{}, m.err
}
func (m *mockStudentService) Get(_ context.Context, id int64) (*dto.StudentResponse, error) {
	m.lastID = id
	return m.student, m.err
}
func (m *mockStudentService) Update(_ context.Context, id int64, _ *dto.UpdateStudentRequest) (*dto.StudentResponse, error) {
	m.lastID = id
	return m.student, m.err
}
func (m *mockStudentService) Delete(_ context.Context, id int64) error {
	m.lastID = id
	return m.err
}
func (m *mockStudentService) Subjects(_ context.Context, _ int64) ([]dto.SubjectResponse, error) {
	return m.subjects, m.err
}

// ── Mock AttendanceService ──

type mockAttendanceService struct {
	roster    *dto.RosterResponse
	saved     *dto.SaveAttendanceResponse
	class     *dto.ClassReportResponse
	stats     *dto.StudentStatsResponse
	err       error
	saveCalls int
	statsQ    *dto.StudentStatsQuery
}

func (m *mockAttendanceService) Roster(_ context.Context, _ *dto.RosterQuery) (*dto.RosterResponse, error) {
	return m.roster, m.err
}
func (m *mockAttendanceService) Save(_ context.Context, _ *dto.SaveAttendanceRequest) (*dto.SaveAttendanceResponse, error) {
	m.saveCalls++
	return m.saved, m.err
}
func (m *mockAttendanceService) ClassReport(_ context.Context, _ *dto.ClassReportQuery) (*dto.ClassReportResponse, error) {
	return m.class, m.err
}
func (m *mockAttendanceService) StudentStats(_ context.Context, _ int64, q *dto.StudentStatsQuery) (*dto.StudentStatsResponse, error) {
	m.statsQ = q
	return m.stats, m.err
}

// ── Mock ReportService ──

type mockReportService struct {
	report    *dto.ReportResponse
	dashboard *dto.DashboardStatsResponse
	err       error
	lastQuery *dto.ReportQuery
	lastToday time.Time
}

func (m *mockReportService) Monthly(_ context.Context, q *dto.ReportQuery) (*dto.ReportResponse, error) {
	m.lastQuery = q
	return m.report, m.err
}
func (m *mockReportService) Dashboard(_ context.Context, today time.Time) (*dto.DashboardStatsResponse, error) {
	m.lastToday = today
	return m.dashboard, m.err
}

// ── Mock ExportService ──

type mockExportService struct {
	file *service.ExportFile
	err  error
}

func (m *mockExportService) ExportMonthly(_ context.Context, _ *dto.ExportQuery) (*service.ExportFile, error) {
	return m.file, m.err
}

// ═══════════════════════════════════════════════════════════
// Test Helpers
// ═══════════════════════════════════════════════════════════

var nopLogger = zap.NewNop()

func jsonBody(v interface{}) io.Reader {
	b, _ := json.Marshal(v)
	return bytes.NewReader(b)
}

// serve 注册单个路由并发起请求
func serve(method, pattern, target string, body io.Reader, h gin.HandlerFunc) *httptest.ResponseRecorder {
	r := gin.New()
	r.Handle(method, pattern, h)

	req := httptest.NewRequest(method, target, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func parseResponse(w *httptest.ResponseRecorder) response.Response {
	var resp response.Response
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	return resp
}

// parseData 将 data 字段解到 out
func parseData(w *httptest.ResponseRecorder, out interface{}) error {
	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
		return err
	}
	return json.Unmarshal(envelope.Data, out)
}

func assertStatus(t *testing.T, w *httptest.ResponseRecorder, want int) {
	t.Helper()
	if w.Code != want {
		t.Fatalf("期望状态码 %d，实际 %d: %s", want, w.Code, w.Body.String())
	}
}
