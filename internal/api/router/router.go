package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/souravmahato2004/Attendance-Management-System-sub000/config"
	"github.com/souravmahato2004/Attendance-Management-System-sub000/internal/api/handler"
	"github.com/souravmahato2004/Attendance-Management-System-sub000/internal/api/middleware"
	"github.com/souravmahato2004/Attendance-Management-System-sub000/internal/model"
)

// Setup 初始化并返回 Gin 路由引擎
// limiter 为 nil 时登录/注册接口不限流
func Setup(cfg *config.Config, h *handler.Handler, limiter middleware.Limiter, logger *zap.Logger) *gin.Engine {
	r := gin.New()

	// ── 全局中间件 ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger, "/health"))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(cfg.Server.BodyLimitBytes))

	// ── 健康检查 ──
	r.GET("/health", h.Health.Health)

	api := r.Group("/api")
	{
		// 认证模块（不签发 token，登录仅返回用户信息）
		authLimit := middleware.RateLimit(limiter, cfg.RateLimit.AuthPerMinute, time.Minute, logger)
		api.POST("/admin/login", authLimit, h.Auth.Login(model.RoleAdmin))
		api.POST("/teacher/login", authLimit, h.Auth.Login(model.RoleTeacher))
		api.POST("/student/login", authLimit, h.Auth.Login(model.RoleStudent))
		api.POST("/teacher/signup", authLimit, h.Auth.TeacherSignup)
		api.POST("/student/signup", authLimit, h.Auth.StudentSignup)

		// 基础数据
		api.GET("/programs", h.Catalog.ListPrograms)
		api.GET("/departments", h.Catalog.ListDepartments)
		api.GET("/courses", h.Catalog.GetCourse)

		// 科目模块
		api.GET("/subjects", h.Subject.ListSubjects)
		api.POST("/subjects-to-course", h.Subject.AddSubjectsToCourse)
		api.DELETE("/subjects/:id", h.Subject.DeleteSubject)

		// 教师模块
		api.GET("/teachers", h.Teacher.ListTeachers)
		api.GET("/teacher/:id", h.Teacher.GetTeacher)
		api.PUT("/teacher/:id", h.Teacher.UpdateTeacher)
		api.DELETE("/teacher/:id", h.Teacher.DeleteTeacher)
		api.GET("/teacher/:id/subjects", h.Teacher.GetTeacherSubjects)
		api.POST("/assignSubjects", h.Teacher.AssignSubject)
		api.DELETE("/unassignSubject/:id", h.Teacher.UnassignSubject)

		// 学生模块
		api.GET("/students", h.Student.ListStudents)
		api.GET("/student/:id", h.Student.GetStudent)
		api.PUT("/student/:id", h.Student.UpdateStudent)
		api.DELETE("/student/:id", h.Student.DeleteStudent)
		api.GET("/student/:id/subjects", h.Student.GetStudentSubjects)
		api.GET("/student/:id/attendance-stats", h.Student.GetAttendanceStats)

		// 考勤模块
		api.GET("/attendance", h.Attendance.GetRoster)
		api.POST("/attendance", h.Attendance.SaveAttendance)
		api.GET("/attendance/report", h.Attendance.GetClassReport)

		// 管理端报表
		api.GET("/report-data", h.Report.GetReportData)
		api.GET("/report-data/export", h.Export.ExportReport)
		api.GET("/dashboard-stats", h.Report.GetDashboardStats)
	}

	return r
}
