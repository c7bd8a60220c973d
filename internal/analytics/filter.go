package analytics

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/Nearak/Journal/internal/models"
)

// FilterAll 过滤条件的"全部"哨兵值
const FilterAll = "all"

// 排序方向
const (
	SortAscending  = "ascending"
	SortDescending = "descending"
)

// Filter 交易表格的组合过滤条件，三个条件取交集
type Filter struct {
	CurrencyPair string `json:"currency_pair"` // 子串匹配，大小写不敏感，空串匹配全部
	Position     string `json:"position"`      // 精确匹配，空串或 all 匹配全部
	Result       string `json:"result"`        // 精确匹配，空串或 all 匹配全部
}

// SortSpec 单键排序规则
type SortSpec struct {
	Key       string `json:"key"`
	Direction string `json:"direction"` // ascending/descending
}

// FilterTrades 过滤交易记录，返回新切片，保持输入顺序
func FilterTrades(trades []models.Trade, f Filter) []models.Trade {
	pair := strings.ToLower(f.CurrencyPair)

	result := make([]models.Trade, 0, len(trades))
	for _, t := range trades {
		if pair != "" && !strings.Contains(strings.ToLower(t.CurrencyPair), pair) {
			continue
		}
		if !matchesExact(f.Position, t.Position) {
			continue
		}
		if !matchesExact(f.Result, t.Result) {
			continue
		}
		result = append(result, t)
	}
	return result
}

func matchesExact(want, got string) bool {
	return want == "" || want == FilterAll || want == got
}

// SortTrades 按排序规则稳定排序，spec 为 nil 时保持原顺序。
// amount 按数值比较，其余字段转为文本后按区域感知的字典序比较；
// descending 方向取比较结果的相反数。不修改输入切片。
func SortTrades(trades []models.Trade, spec *SortSpec) []models.Trade {
	result := make([]models.Trade, len(trades))
	copy(result, trades)

	if spec == nil || spec.Key == "" {
		return result
	}

	collator := collate.New(language.English)
	desc := spec.Direction == SortDescending

	sort.SliceStable(result, func(i, j int) bool {
		c := compareTrades(collator, result[i], result[j], spec.Key)
		if desc {
			c = -c
		}
		return c < 0
	})

	return result
}

func compareTrades(collator *collate.Collator, a, b models.Trade, key string) int {
	if key == "amount" {
		switch {
		case a.Amount < b.Amount:
			return -1
		case a.Amount > b.Amount:
			return 1
		default:
			return 0
		}
	}
	return collator.CompareString(sortField(a, key), sortField(b, key))
}

func sortField(t models.Trade, key string) string {
	switch key {
	case "id":
		return t.ID
	case "date":
		return t.Date
	case "currency_pair":
		return t.CurrencyPair
	case "trade_type":
		return t.TradeType
	case "position":
		return t.Position
	case "result":
		return t.Result
	case "notes":
		return t.Notes
	case "emotions":
		return t.Emotions
	default:
		return ""
	}
}
