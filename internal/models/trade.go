package models

import (
	"time"

	"gorm.io/gorm"
)

// 持仓方向
const (
	PositionBuy  = "buy"
	PositionSell = "sell"
)

// 交易结果
const (
	ResultProfit    = "profit"
	ResultLoss      = "loss"
	ResultBreakeven = "breakeven"
)

// Trade 交易日志记录
type Trade struct {
	ID           string         `gorm:"primaryKey;type:varchar(26)" json:"id"`
	Date         string         `gorm:"type:varchar(10);not null;index" json:"date"`            // 交易日期 YYYY-MM-DD
	CurrencyPair string         `gorm:"type:varchar(20);not null;index" json:"currency_pair"`   // 货币对，如 EURUSD
	TradeType    string         `gorm:"type:varchar(50);not null" json:"trade_type"`            // 交易类型/策略，如 Scalping
	Position     string         `gorm:"type:varchar(10);not null" json:"position"`              // buy/sell
	Result       string         `gorm:"type:varchar(10);not null" json:"result"`                // profit/loss/breakeven
	Amount       float64        `gorm:"type:decimal(20,8);not null" json:"amount"`              // 盈亏金额，亏损必须为非正数
	Notes        string         `gorm:"type:text" json:"notes"`                                 // 备注
	Emotions     string         `gorm:"type:text" json:"emotions"`                              // 交易时的情绪
	CreatedAt    time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

// TableName 指定表名
func (Trade) TableName() string {
	return "trades"
}

// IsProfit 是否为盈利交易
func (t Trade) IsProfit() bool {
	return t.Result == ResultProfit
}

// IsLoss 是否为亏损交易
func (t Trade) IsLoss() bool {
	return t.Result == ResultLoss
}

// ParsedDate 解析交易日期，格式错误时返回零值
func (t Trade) ParsedDate() time.Time {
	d, err := time.Parse("2006-01-02", t.Date)
	if err != nil {
		return time.Time{}
	}
	return d
}
