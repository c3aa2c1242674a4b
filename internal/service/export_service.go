package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"mergington-api/internal/i18n"
	"mergington-api/internal/repository"
)

// ── 导出模块业务错误 ──

var (
	ErrExportGenerateFail = errors.New("failed to generate roster workbook")
)

// ExportService 导出业务接口
//
// 名单以 bytes.Buffer 返回，由 Handler 层设置下载响应头。
// 表格格式：第 1 行标题，第 2 行表头，之后每个活动一行。
type ExportService interface {
	// ExportRosters 导出全部活动报名名单为 Excel
	ExportRosters(ctx context.Context, lang i18n.Lang) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewExportService 创建 ExportService 实例
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger}
}

// 表头列顺序
var exportColumns = []i18n.Key{
	i18n.ExportActivity,
	i18n.ExportDescription,
	i18n.ExportSchedule,
	i18n.ExportCapacity,
	i18n.ExportEnrolled,
	i18n.ExportSpotsLeft,
	i18n.ExportParticipants,
}

func (s *exportService) ExportRosters(ctx context.Context, lang i18n.Lang) (*bytes.Buffer, string, error) {
	activities := s.repo.Activity.List(ctx)

	f := excelize.NewFile()
	defer f.Close()

	sheetName := i18n.T(lang, i18n.ExportSheet, nil)
	idx, err := f.NewSheet(sheetName)
	if err != nil {
		s.logger.Error("创建 Sheet 失败", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	// 列宽
	widths := []float64{22, 48, 36, 12, 10, 10, 36}
	for i, w := range widths {
		col := colName(i)
		f.SetColWidth(sheetName, col, col, w)
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	wrapStyle, _ := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{WrapText: true, Vertical: "top"},
	})

	// 标题行
	lastCol := colName(len(exportColumns) - 1)
	f.SetCellValue(sheetName, "A1", i18n.T(lang, i18n.ExportTitle, nil))
	f.MergeCell(sheetName, "A1", cell(lastCol, 1))
	f.SetCellStyle(sheetName, "A1", "A1", headerStyle)

	// 表头
	for i, key := range exportColumns {
		f.SetCellValue(sheetName, cell(colName(i), 2), i18n.T(lang, key, nil))
	}
	f.SetCellStyle(sheetName, "A2", cell(lastCol, 2), headerStyle)

	// 数据行
	row := 3
	for i := range activities {
		a := &activities[i]
		values := []interface{}{
			a.Name,
			localized(lang, a.Description, a.DescriptionZh),
			localized(lang, a.Schedule, a.ScheduleZh),
			a.MaxParticipants,
			len(a.Participants),
			a.SpotsLeft(),
			strings.Join(a.Participants, "\n"),
		}
		for col, v := range values {
			f.SetCellValue(sheetName, cell(colName(col), row), v)
		}
		f.SetCellStyle(sheetName, cell("A", row), cell(lastCol, row), wrapStyle)
		row++
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("写入 Excel 失败", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	s.logger.Info("导出报名名单", zap.Int("activities", len(activities)), zap.String("lang", string(lang)))

	return buf, i18n.T(lang, i18n.ExportFilename, nil), nil
}

// ── 辅助函数 ──

func colName(idx int) string {
	name, _ := excelize.ColumnNumberToName(idx + 1)
	return name
}

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}
