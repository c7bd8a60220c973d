package config

type Config struct {
	Journal JournalConf `json:"journal"`
	Auth    AuthConf    `json:"auth"`
	Backup  BackupConf  `json:"backup"`
}

type JournalConf struct {
	DefaultCapital float64  `json:"default_capital"` // 初始资金默认值，未配置时为 10000
	QuickPairs     []string `json:"quick_pairs"`     // 首次初始化时的常用货币对
}

type AuthConf struct {
	JWTSecret    string `json:"jwt_secret"`    // 为空时随机生成，重启后旧会话失效
	SessionHours int    `json:"session_hours"` // 会话有效期（小时），默认24
}

type BackupConf struct {
	Enabled          bool   `json:"enabled"`           // 是否启用定时备份
	Schedule         string `json:"schedule"`          // cron 表达式，默认每天凌晨3点
	Dir              string `json:"dir"`               // 备份文件目录
	FilenameTemplate string `json:"filename_template"` // 文件名模板，支持 {{date}} 占位符
}
