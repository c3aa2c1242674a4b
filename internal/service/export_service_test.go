package service

import (
	"context"
	"testing"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"mergington-api/internal/i18n"
	"mergington-api/internal/model"
	"mergington-api/internal/repository"
)

// ── 测试辅助 ──

func setupTestExportService() (ExportService, *repository.Repository) {
	repo := repository.NewRepository(model.SeedActivities())
	return NewExportService(repo, zap.NewNop()), repo
}

func openWorkbook(t *testing.T, svc ExportService, lang i18n.Lang) (*excelize.File, string) {
	t.Helper()
	buf, filename, err := svc.ExportRosters(context.Background(), lang)
	if err != nil {
		t.Fatalf("ExportRosters 应成功: %v", err)
	}
	f, err := excelize.OpenReader(buf)
	if err != nil {
		t.Fatalf("无法解析导出的 Excel: %v", err)
	}
	t.Cleanup(func() { f.Close() })
	return f, filename
}

// ── ExportRosters 测试 ──

func TestExportService_ExportRosters_English(t *testing.T) {
	svc, _ := setupTestExportService()
	f, filename := openWorkbook(t, svc, i18n.EN)

	if filename != "activity_rosters.xlsx" {
		t.Errorf("文件名不符: %s", filename)
	}

	sheet := "Rosters"
	rows, err := f.GetRows(sheet)
	if err != nil {
		t.Fatalf("读取 Sheet 失败: %v", err)
	}
	// 标题 + 表头 + 3 个活动
	if len(rows) != 5 {
		t.Fatalf("期望 5 行，实际=%d", len(rows))
	}
	if rows[1][0] != "Activity" || rows[1][6] != "Participants" {
		t.Errorf("表头不符: %v", rows[1])
	}
	if rows[2][0] != "Chess Club" {
		t.Errorf("第一个活动应为 Chess Club，实际=%s", rows[2][0])
	}
	if rows[2][3] != "12" || rows[2][4] != "2" || rows[2][5] != "10" {
		t.Errorf("Chess Club 人数统计不符: %v", rows[2])
	}
	if rows[2][6] != "michael@mergington.edu\ndaniel@mergington.edu" {
		t.Errorf("名单不符: %q", rows[2][6])
	}
}

func TestExportService_ExportRosters_Chinese(t *testing.T) {
	svc, _ := setupTestExportService()
	f, filename := openWorkbook(t, svc, i18n.ZH)

	if filename != "课外活动报名名单.xlsx" {
		t.Errorf("文件名不符: %s", filename)
	}
	v, _ := f.GetCellValue("报名名单", "B3")
	if v != "学习象棋策略并参加象棋比赛" {
		t.Errorf("期望中文描述，实际=%s", v)
	}
}

func TestExportService_ExportRosters_ReflectsSignups(t *testing.T) {
	svc, repo := setupTestExportService()
	if _, err := repo.Activity.AddParticipant(context.Background(), "Gym Class", "new@mergington.edu", false); err != nil {
		t.Fatalf("AddParticipant 应成功: %v", err)
	}

	f, _ := openWorkbook(t, svc, i18n.EN)
	v, _ := f.GetCellValue("Rosters", "E5")
	if v != "3" {
		t.Errorf("Gym Class 报名人数期望 3，实际=%s", v)
	}
}
