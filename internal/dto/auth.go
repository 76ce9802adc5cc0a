package dto

import "github.com/souravmahato2004/Attendance-Management-System-sub000/internal/model"

// ── 认证模块 DTO ──

// LoginRequest 登录请求（三种角色共用）
type LoginRequest struct {
	Email    string `json:"email"    binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// TeacherSignupRequest 教师注册请求，department 为院系名称
type TeacherSignupRequest struct {
	ID         string `json:"id"         binding:"required,notblank,max=50"`
	Name       string `json:"name"       binding:"required,notblank,max=100"`
	Email      string `json:"email"      binding:"required,email,max=255"`
	Password   string `json:"password"   binding:"required,min=6,max=72"`
	Department string `json:"department" binding:"required,notblank"`
}

// StudentSignupRequest 学生注册请求，program / department 为名称
type StudentSignupRequest struct {
	Name       string `json:"name"        binding:"required,notblank,max=100"`
	Email      string `json:"email"       binding:"required,email,max=255"`
	Password   string `json:"password"    binding:"required,min=6,max=72"`
	RollNumber string `json:"roll_number" binding:"required,notblank,max=50"`
	Program    string `json:"program"     binding:"required,notblank"`
	Department string `json:"department"  binding:"required,notblank"`
	Semester   int    `json:"semester"    binding:"required,min=1,max=12"`
}

// ── 认证模块响应 ──

// TeacherSignupResponse 教师注册成功
type TeacherSignupResponse struct {
	ID string `json:"id"`
}

// StudentSignupResponse 学生注册成功
type StudentSignupResponse struct {
	ID int64 `json:"id"`
}

// SessionResponse 登录结果：role 决定三个 profile 中哪一个非空
type SessionResponse struct {
	Role    model.Role      `json:"role"`
	Admin   *AdminProfile   `json:"admin,omitempty"`
	Teacher *TeacherProfile `json:"teacher,omitempty"`
	Student *StudentProfile `json:"student,omitempty"`
}

// AdminProfile 管理员会话信息
type AdminProfile struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// TeacherProfile 教师会话信息
type TeacherProfile struct {
	ID         string       `json:"id"`
	Name       string       `json:"name"`
	Email      string       `json:"email"`
	Department *CatalogItem `json:"department,omitempty"`
}

// StudentProfile 学生会话信息
type StudentProfile struct {
	ID         int64        `json:"id"`
	Name       string       `json:"name"`
	Email      string       `json:"email"`
	RollNumber string       `json:"roll_number"`
	Program    *CatalogItem `json:"program,omitempty"`
	Department *CatalogItem `json:"department,omitempty"`
	Semester   int          `json:"semester"`
}
