package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cast"
	"go.uber.org/zap"

	"github.com/Nearak/Journal/internal/analytics"
	"github.com/Nearak/Journal/internal/service"
)

// JournalHandler 交易日志HTTP处理器
type JournalHandler struct {
	logger  *zap.Logger
	journal *service.JournalService
}

// NewJournalHandler 创建交易日志处理器
func NewJournalHandler(logger *zap.Logger, journal *service.JournalService) *JournalHandler {
	return &JournalHandler{
		logger:  logger,
		journal: journal,
	}
}

// ListTrades 获取交易列表（支持过滤与排序）
// GET /api/journal/trades?currency_pair=&position=all&result=all&sort_key=&sort_direction=&limit=
func (h *JournalHandler) ListTrades(c echo.Context) error {
	ctx := c.Request().Context()

	filter := analytics.Filter{
		CurrencyPair: c.QueryParam("currency_pair"),
		Position:     c.QueryParam("position"),
		Result:       c.QueryParam("result"),
	}

	var sortSpec *analytics.SortSpec
	if key := c.QueryParam("sort_key"); key != "" {
		direction := c.QueryParam("sort_direction")
		if direction != analytics.SortDescending {
			direction = analytics.SortAscending
		}
		sortSpec = &analytics.SortSpec{Key: key, Direction: direction}
	}

	trades, err := h.journal.ListTrades(ctx, filter, sortSpec)
	if err != nil {
		return err
	}

	// limit 仅裁剪展示数量，0 表示不限制
	if limit := cast.ToInt(c.QueryParam("limit")); limit > 0 && limit < len(trades) {
		trades = trades[:limit]
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"count":  len(trades),
		"trades": trades,
	})
}

// AddTrade 新增交易
// POST /api/journal/trades
func (h *JournalHandler) AddTrade(c echo.Context) error {
	ctx := c.Request().Context()

	var draft service.TradeDraft
	if err := c.Bind(&draft); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"error": "请求参数错误",
		})
	}

	if err := c.Validate(&draft); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"error": "货币对、交易类型、方向与结果均为必填项",
		})
	}

	trade, err := h.journal.AddTrade(ctx, draft)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, trade)
}

// DeleteTrade 删除交易，ID不存在时同样返回成功
// DELETE /api/journal/trades/:id
func (h *JournalHandler) DeleteTrade(c echo.Context) error {
	ctx := c.Request().Context()

	id := c.Param("id")
	if err := h.journal.DeleteTrade(ctx, id); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "删除成功",
	})
}

// GetStats 获取统计汇总
// GET /api/journal/stats
func (h *JournalHandler) GetStats(c echo.Context) error {
	ctx := c.Request().Context()

	stats, err := h.journal.GetStats(ctx)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, stats)
}

// GetEquityCurve 获取资金增长曲线
// GET /api/journal/equity-curve
func (h *JournalHandler) GetEquityCurve(c echo.Context) error {
	ctx := c.Request().Context()

	curve, err := h.journal.GetBalanceCurve(ctx)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"count": len(curve),
		"data":  curve,
	})
}

// GetPairPnl 获取按货币对汇总的盈亏
// GET /api/journal/pnl-by-pair
func (h *JournalHandler) GetPairPnl(c echo.Context) error {
	ctx := c.Request().Context()

	pairs, err := h.journal.GetPairPnl(ctx)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"count": len(pairs),
		"data":  pairs,
	})
}

// GetConfig 获取账户配置
// GET /api/journal/config
func (h *JournalHandler) GetConfig(c echo.Context) error {
	ctx := c.Request().Context()

	conf, err := h.journal.GetConfig(ctx)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, conf)
}

// UpdateCapital 更新初始资金
// PUT /api/journal/capital
func (h *JournalHandler) UpdateCapital(c echo.Context) error {
	ctx := c.Request().Context()

	var req struct {
		Amount float64 `json:"amount" validate:"required"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"error": "请求参数错误",
		})
	}

	conf, err := h.journal.UpdateCapital(ctx, req.Amount)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, conf)
}

// UpdateQuickPairs 更新常用货币对
// PUT /api/journal/quick-pairs
func (h *JournalHandler) UpdateQuickPairs(c echo.Context) error {
	ctx := c.Request().Context()

	var req struct {
		Pairs []string `json:"pairs"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"error": "请求参数错误",
		})
	}

	conf, err := h.journal.UpdateQuickPairs(ctx, req.Pairs)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, conf)
}

// Export 下载账本快照
// GET /api/journal/export
func (h *JournalHandler) Export(c echo.Context) error {
	ctx := c.Request().Context()

	snapshot, err := h.journal.ExportSnapshot(ctx)
	if err != nil {
		return err
	}

	filename := fmt.Sprintf("journal-%s.json", snapshot.ExportedAt.Format("2006-01-02"))
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))

	return c.JSON(http.StatusOK, snapshot)
}

// RegisterRoutes 注册路由
func (h *JournalHandler) RegisterRoutes(g *echo.Group) {
	journal := g.Group("/journal")

	journal.GET("/trades", h.ListTrades)
	journal.POST("/trades", h.AddTrade)
	journal.DELETE("/trades/:id", h.DeleteTrade)

	journal.GET("/stats", h.GetStats)
	journal.GET("/equity-curve", h.GetEquityCurve)
	journal.GET("/pnl-by-pair", h.GetPairPnl)

	journal.GET("/config", h.GetConfig)
	journal.PUT("/capital", h.UpdateCapital)
	journal.PUT("/quick-pairs", h.UpdateQuickPairs)

	journal.GET("/export", h.Export)
}
