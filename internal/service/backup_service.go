package service

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/valyala/fasttemplate"
	"go.uber.org/zap"

	"github.com/Nearak/Journal/internal/config"
	"github.com/Nearak/Journal/pkg/nostd"
)

const (
	defaultBackupSchedule = "0 3 * * *"
	defaultBackupTemplate = "journal-{{date}}.json"
)

// BackupService 定时把账本快照导出为JSON文件。
// 备份失败只记录告警，内存与数据库中的账本始终是权威数据，
// 不会因备份失败而回滚或中断。
type BackupService struct {
	logger  *zap.Logger
	journal *JournalService
	conf    config.BackupConf
	cron    *cron.Cron
}

// NewBackupService 创建备份服务
func NewBackupService(logger *zap.Logger, journal *JournalService, conf *config.Config) *BackupService {
	return &BackupService{
		logger:  logger,
		journal: journal,
		conf:    conf.Backup,
	}
}

// Start 按配置的cron表达式启动定时备份
func (s *BackupService) Start(ctx context.Context) error {
	if !s.conf.Enabled {
		s.logger.Info("journal backup disabled")
		return nil
	}

	schedule := s.conf.Schedule
	if schedule == "" {
		schedule = defaultBackupSchedule
	}

	s.cron = cron.New()
	if _, err := s.cron.AddFunc(schedule, func() {
		if err := s.RunOnce(ctx); err != nil {
			s.logger.Warn("journal backup failed", zap.Error(err))
		}
	}); err != nil {
		return fmt.Errorf("invalid backup schedule %q: %w", schedule, err)
	}

	s.cron.Start()
	s.logger.Info("journal backup scheduled",
		zap.String("schedule", schedule),
		zap.String("dir", s.conf.Dir))
	return nil
}

// Stop 停止定时备份
func (s *BackupService) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}

// RunOnce 立即执行一次备份
func (s *BackupService) RunOnce(ctx context.Context) error {
	snapshot, err := s.journal.ExportSnapshot(ctx)
	if err != nil {
		return fmt.Errorf("failed to export snapshot: %w", err)
	}

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	dir := s.conf.Dir
	if dir == "" {
		dir = "backups"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create backup dir: %w", err)
	}

	path, err := nostd.SafePathJoin(dir, s.backupFilename())
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write backup file: %w", err)
	}

	s.logger.Info("journal backup written",
		zap.String("path", path),
		zap.Int("trades", len(snapshot.Trades)))
	return nil
}

func (s *BackupService) backupFilename() string {
	tpl := s.conf.FilenameTemplate
	if tpl == "" {
		tpl = defaultBackupTemplate
	}
	return fasttemplate.New(tpl, "{{", "}}").ExecuteString(map[string]interface{}{
		"date": time.Now().Format("2006-01-02"),
	})
}
