package analytics

import "github.com/Nearak/Journal/internal/models"

// PairPnl 按货币对汇总的盈亏
type PairPnl struct {
	Pair   string  `json:"pair"`
	Profit float64 `json:"profit"` // >= 0
	Loss   float64 `json:"loss"`   // <= 0，保留负号便于堆叠图直接求净值
}

// AggregateByPair 按货币对分组汇总盈亏。
// 分组键使用原始大小写（与表格过滤的大小写不敏感匹配刻意不同，
// 维持既有行为），输出顺序为各货币对首次出现的顺序。
// 保本交易不计入任何一侧。
func AggregateByPair(trades []models.Trade) []PairPnl {
	index := make(map[string]int)
	result := make([]PairPnl, 0)

	for _, t := range trades {
		i, ok := index[t.CurrencyPair]
		if !ok {
			i = len(result)
			index[t.CurrencyPair] = i
			result = append(result, PairPnl{Pair: t.CurrencyPair})
		}
		switch {
		case t.IsProfit():
			result[i].Profit += t.Amount
		case t.IsLoss():
			result[i].Loss += t.Amount
		}
	}

	return result
}
