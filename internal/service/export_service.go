package service

import (
	"bytes"
	"context"
	"fmt"

	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/souravmahato2004/Attendance-Management-System-sub000/internal/dto"
	pkgerrors "github.com/souravmahato2004/Attendance-Management-System-sub000/pkg/errors"
)

// ── 导出模块业务错误 ──

var ErrExportGenerateFail = pkgerrors.New(pkgerrors.KindInternal, 10701, "生成导出文件失败")

// 导出格式
const (
	FormatXLSX = "xlsx"
	FormatPDF  = "pdf"
)

// ExportFile 导出结果，由 Handler 设置响应头后写出
type ExportFile struct {
	Filename    string
	ContentType string
	Body        []byte
}

// ExportService 导出业务接口
//
// 设计说明：
//   - 数据完全来自 ReportService.Monthly，导出与页面展示口径一致
//   - xlsx 使用 excelize，pdf 使用 gofpdf
//   - gofpdf 内置字体只支持 Latin-1，PDF 表头使用英文
type ExportService interface {
	ExportMonthly(ctx context.Context, q *dto.ExportQuery) (*ExportFile, error)
}

type exportService struct {
	reports ReportService
	logger  *zap.Logger
}

// NewExportService 创建 ExportService 实例
func NewExportService(reports ReportService, logger *zap.Logger) ExportService {
	return &exportService{reports: reports, logger: logger}
}

func (s *exportService) ExportMonthly(ctx context.Context, q *dto.ExportQuery) (*ExportFile, error) {
	data, err := s.reports.Monthly(ctx, &q.ReportQuery)
	if err != nil {
		return nil, err
	}

	info := data.StudentInfo
	base := fmt.Sprintf("attendance_%s_%s_sem%d_%s_%d",
		slug(info.Program), slug(info.Department), info.Semester, info.MonthName, info.Year)

	switch q.Format {
	case FormatPDF:
		body, err := renderPDF(data)
		if err != nil {
			s.logger.Error("生成 PDF 失败", zap.Error(err))
			return nil, pkgerrors.Wrap(ErrExportGenerateFail, err)
		}
		return &ExportFile{Filename: base + ".pdf", ContentType: "application/pdf", Body: body}, nil
	default:
		body, err := renderXLSX(data)
		if err != nil {
			s.logger.Error("生成 Excel 失败", zap.Error(err))
			return nil, pkgerrors.Wrap(ErrExportGenerateFail, err)
		}
		return &ExportFile{
			Filename:    base + ".xlsx",
			ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
			Body:        body,
		}, nil
	}
}

// ═══════════════════════════════════════════════════════════
// Excel
// ═══════════════════════════════════════════════════════════
//
// 输出格式：
//   - 第 1 行：标题（专业 / 院系 / 学期 / 月份）
//   - 第 2 行：学生数、科目数
//   - 第 4 行起：日期 | 星期 | 出勤 | 缺勤 | 迟到 | 科目
//   - 末尾：汇总行

var xlsxHeaders = []string{"日期", "星期", "出勤", "缺勤", "迟到", "科目"}

func renderXLSX(data *dto.ReportResponse) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "考勤月报"
	idx, err := f.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(idx)
	_ = f.DeleteSheet("Sheet1")

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	_ = f.SetColWidth(sheet, "A", "A", 12)
	_ = f.SetColWidth(sheet, "B", "B", 12)
	_ = f.SetColWidth(sheet, "C", "E", 8)
	_ = f.SetColWidth(sheet, "F", "F", 40)

	info := data.StudentInfo
	_ = f.SetCellValue(sheet, "A1", fmt.Sprintf("%s / %s / 第%d学期 / %s %d",
		info.Program, info.Department, info.Semester, info.MonthName, info.Year))
	_ = f.MergeCell(sheet, "A1", "F1")
	_ = f.SetCellStyle(sheet, "A1", "A1", headerStyle)
	_ = f.SetCellValue(sheet, "A2", fmt.Sprintf("学生 %d 人，科目 %d 门", info.TotalStudents, info.TotalSubjects))

	row := 4
	for i, h := range xlsxHeaders {
		_ = f.SetCellValue(sheet, cell(colName(i), row), h)
	}
	_ = f.SetCellStyle(sheet, cell("A", row), cell(colName(len(xlsxHeaders)-1), row), headerStyle)

	for _, d := range data.TableData {
		row++
		values := []interface{}{d.Date, d.Weekday, d.Present, d.Absent, d.Late, d.Subjects}
		for i, v := range values {
			_ = f.SetCellValue(sheet, cell(colName(i), row), v)
		}
	}

	sum := data.Summary
	row += 2
	_ = f.SetCellValue(sheet, cell("A", row), "汇总")
	if sum.Message != "" {
		_ = f.SetCellValue(sheet, cell("B", row), sum.Message)
	} else {
		values := []interface{}{
			fmt.Sprintf("%d 天", sum.TotalDays), sum.TotalPresent, sum.TotalAbsent, sum.TotalLate,
			fmt.Sprintf("平均出勤率 %d%%", sum.AverageAttendancePercent),
		}
		for i, v := range values {
			_ = f.SetCellValue(sheet, cell(colName(i+1), row), v)
		}
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ═══════════════════════════════════════════════════════════
// PDF
// ═══════════════════════════════════════════════════════════

func renderPDF(data *dto.ReportResponse) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	info := data.StudentInfo
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, "MONTHLY ATTENDANCE REPORT")
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 10)
	lines := [][2]string{
		{"Program:", info.Program},
		{"Department:", info.Department},
		{"Semester:", fmt.Sprintf("%d", info.Semester)},
		{"Month:", fmt.Sprintf("%s %d", info.MonthName, info.Year)},
		{"Students / Subjects:", fmt.Sprintf("%d / %d", info.TotalStudents, info.TotalSubjects)},
	}
	for _, l := range lines {
		pdf.SetFont("Arial", "", 10)
		pdf.Cell(45, 6, l[0])
		pdf.SetFont("Arial", "B", 10)
		pdf.Cell(0, 6, l[1])
		pdf.Ln(5)
	}
	pdf.Ln(5)

	widths := []float64{25, 25, 18, 18, 18, 76}
	headers := []string{"DATE", "DAY", "PRESENT", "ABSENT", "LATE", "SUBJECTS"}
	pdf.SetFont("Arial", "B", 9)
	pdf.SetFillColor(68, 114, 196)
	pdf.SetTextColor(255, 255, 255)
	for i, h := range headers {
		ln := 0
		if i == len(headers)-1 {
			ln = 1
		}
		pdf.CellFormat(widths[i], 8, h, "1", ln, "C", true, 0, "")
	}

	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Arial", "", 9)
	pdf.SetFillColor(245, 245, 245)
	for n, d := range data.TableData {
		fill := n%2 == 0
		pdf.CellFormat(widths[0], 7, d.Date, "1", 0, "C", fill, 0, "")
		pdf.CellFormat(widths[1], 7, d.Weekday, "1", 0, "C", fill, 0, "")
		pdf.CellFormat(widths[2], 7, fmt.Sprintf("%d", d.Present), "1", 0, "C", fill, 0, "")
		pdf.CellFormat(widths[3], 7, fmt.Sprintf("%d", d.Absent), "1", 0, "C", fill, 0, "")
		pdf.CellFormat(widths[4], 7, fmt.Sprintf("%d", d.Late), "1", 0, "C", fill, 0, "")
		pdf.CellFormat(widths[5], 7, d.Subjects, "1", 1, "L", fill, 0, "")
	}

	pdf.Ln(6)
	sum := data.Summary
	pdf.SetFont("Arial", "B", 10)
	if sum.Message != "" {
		pdf.Cell(0, 6, sum.Message)
	} else {
		pdf.Cell(0, 6, fmt.Sprintf("Days: %d   Present: %d   Absent: %d   Late: %d   Average attendance: %d%%",
			sum.TotalDays, sum.TotalPresent, sum.TotalAbsent, sum.TotalLate, sum.AverageAttendancePercent))
	}
	pdf.Ln(6)

	buf := new(bytes.Buffer)
	if err := pdf.Output(buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ── 辅助函数 ──

func colName(idx int) string {
	name, _ := excelize.ColumnNumberToName(idx + 1)
	return name
}

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}

// slug 文件名中只保留字母数字
func slug(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			out = append(out, r)
		case r == ' ' || r == '.' || r == '-':
			if len(out) > 0 && out[len(out)-1] != '_' {
				out = append(out, '_')
			}
		}
	}
	if len(out) == 0 {
		return "course"
	}
	return string(out)
}
