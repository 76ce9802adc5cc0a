package handler

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/souravmahato2004/Attendance-Management-System-sub000/pkg/response"
)

// MustGetIDParam 从路径参数中提取正整数 ID。
// 解析失败时写入 400 响应并返回 false，调用方应直接 return。
func MustGetIDParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		response.BadRequest(c, codeInvalidParams, name+" 必须为正整数")
		return 0, false
	}
	return id, true
}

// MustGetStringParam 提取非空字符串路径参数（教师工号）。
func MustGetStringParam(c *gin.Context, name string) (string, bool) {
	v := strings.TrimSpace(c.Param(name))
	if v == "" {
		response.BadRequest(c, codeInvalidParams, name+" 不能为空")
		return "", false
	}
	return v, true
}
