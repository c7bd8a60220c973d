package analytics

import (
	"fmt"
	"sort"

	"github.com/Nearak/Journal/internal/models"
)

// StartLabel 资金曲线起始点的标签
const StartLabel = "start"

// CurvePoint 资金曲线上的一个点
type CurvePoint struct {
	Label   string  `json:"label"`
	Balance float64 `json:"balance"`
}

// BuildBalanceCurve 根据初始资金与交易记录构建资金增长曲线。
// 输入顺序无关：内部按交易日期升序排序（同一天的交易保持原有相对顺序），
// 再逐笔累加盈亏。曲线始终以初始资金的合成起始点开头，
// 因此点数恒等于交易数 + 1。
func BuildBalanceCurve(trades []models.Trade, initialCapital float64) []CurvePoint {
	curve := make([]CurvePoint, 0, len(trades)+1)
	curve = append(curve, CurvePoint{Label: StartLabel, Balance: initialCapital})

	sorted := make([]models.Trade, len(trades))
	copy(sorted, trades)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].ParsedDate().Before(sorted[j].ParsedDate())
	})

	balance := initialCapital
	for i, t := range sorted {
		balance += t.Amount
		curve = append(curve, CurvePoint{
			Label:   fmt.Sprintf("trade %d", i+1),
			Balance: balance,
		})
	}

	return curve
}
