package models

import (
	"time"

	"gorm.io/datatypes"
)

// JournalConfig 日志账户配置（单行记录）
type JournalConfig struct {
	ID             string                      `gorm:"primaryKey;size:36" json:"id"`
	InitialCapital float64                     `gorm:"type:decimal(20,8);not null" json:"initial_capital"` // 初始资金
	QuickPairs     datatypes.JSONSlice[string] `gorm:"type:json" json:"quick_pairs"`                       // 常用货币对快捷选项
	CreatedAt      time.Time                   `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time                   `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName 指定表名
func (JournalConfig) TableName() string {
	return "journal_config"
}
