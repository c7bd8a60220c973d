// Package analytics 交易日志的派生统计计算。
// 所有函数都是纯函数：同样的输入必然产生同样的输出，不持有任何状态，
// 每次数据变更后由调用方整体重算。
package analytics

import "github.com/Nearak/Journal/internal/models"

// Stats 交易统计汇总
type Stats struct {
	TotalTrades  int     `json:"total_trades"`
	Wins         int     `json:"wins"`
	Losses       int     `json:"losses"`
	Breakeven    int     `json:"breakeven"`
	TotalProfit  float64 `json:"total_profit"`  // 盈利总额，>= 0
	TotalLoss    float64 `json:"total_loss"`    // 亏损总额，<= 0
	WinRate      float64 `json:"win_rate"`      // 胜率百分比，保本交易不计入分母
	NetPnl       float64 `json:"net_pnl"`       // 净盈亏 = TotalProfit + TotalLoss
	ProfitFactor float64 `json:"profit_factor"` // 盈亏比 = TotalProfit / |TotalLoss|
}

// ComputeStats 计算交易统计，与记录顺序无关
func ComputeStats(trades []models.Trade) Stats {
	var s Stats
	s.TotalTrades = len(trades)

	for _, t := range trades {
		switch {
		case t.IsProfit():
			s.Wins++
			s.TotalProfit += t.Amount
		case t.IsLoss():
			s.Losses++
			s.TotalLoss += t.Amount
		}
	}
	s.Breakeven = s.TotalTrades - s.Wins - s.Losses

	// 保本交易不参与胜率分母，避免除零
	if decided := s.Wins + s.Losses; decided > 0 {
		s.WinRate = float64(s.Wins) / float64(decided) * 100
	}

	// TotalLoss 本身是非正数，净盈亏用加法
	s.NetPnl = s.TotalProfit + s.TotalLoss

	if s.TotalLoss < 0 {
		s.ProfitFactor = s.TotalProfit / -s.TotalLoss
	}

	return s
}
