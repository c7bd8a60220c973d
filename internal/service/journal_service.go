package service

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"

	"github.com/go-orz/orz"
	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Nearak/Journal/internal/analytics"
	"github.com/Nearak/Journal/internal/config"
	"github.com/Nearak/Journal/internal/models"
	"github.com/Nearak/Journal/internal/repo"
	"github.com/Nearak/Journal/internal/xe"
)

// 配置单行记录的固定主键
const journalConfigID = "00000000-0000-0000-0000-000000000000"

// DefaultInitialCapital 初始资金的兜底默认值
const DefaultInitialCapital = 10000

var defaultQuickPairs = []string{"EURUSD", "GBPUSD", "USDJPY", "XAUUSD"}

// JournalService 交易日志服务，账本的唯一持有者。
// 所有变更（新增、删除、修改初始资金）都经过这里，
// 派生统计每次基于当前全量数据重新计算。
type JournalService struct {
	logger *zap.Logger

	*orz.Service
	tradeRepo  *repo.TradeRepo
	configRepo *repo.JournalConfigRepo

	defaultCapital float64
	quickPairs     []string
}

// NewJournalService 创建交易日志服务
func NewJournalService(db *gorm.DB, conf *config.Config, logger *zap.Logger) *JournalService {
	defaultCapital := conf.Journal.DefaultCapital
	if !(defaultCapital > 0) || math.IsInf(defaultCapital, 0) {
		defaultCapital = DefaultInitialCapital
	}
	quickPairs := conf.Journal.QuickPairs
	if len(quickPairs) == 0 {
		quickPairs = defaultQuickPairs
	}

	return &JournalService{
		logger:         logger,
		Service:        orz.NewService(db),
		tradeRepo:      repo.NewTradeRepo(db),
		configRepo:     repo.NewJournalConfigRepo(db),
		defaultCapital: defaultCapital,
		quickPairs:     quickPairs,
	}
}

// TradeDraft 新增交易的请求载荷
type TradeDraft struct {
	Date         string  `json:"date"`
	CurrencyPair string  `json:"currency_pair" validate:"required"`
	TradeType    string  `json:"trade_type" validate:"required"`
	Position     string  `json:"position" validate:"required,oneof=buy sell"`
	Result       string  `json:"result" validate:"required,oneof=profit loss breakeven"`
	Amount       float64 `json:"amount"`
	Notes        string  `json:"notes"`
	Emotions     string  `json:"emotions"`
}

// AddTrade 校验并写入一笔交易。
// 符号约定在这里统一落实：亏损存为 -|amount|，盈利存为 |amount|，
// 保本保留用户输入的原值。校验失败时不会产生任何残留记录。
func (s *JournalService) AddTrade(ctx context.Context, draft TradeDraft) (*models.Trade, error) {
	draft.CurrencyPair = strings.TrimSpace(draft.CurrencyPair)
	draft.TradeType = strings.TrimSpace(draft.TradeType)

	if draft.CurrencyPair == "" || draft.TradeType == "" {
		return nil, xe.ErrInvalidTrade
	}
	if math.IsNaN(draft.Amount) || math.IsInf(draft.Amount, 0) {
		return nil, xe.ErrInvalidTrade
	}
	if draft.Position != models.PositionBuy && draft.Position != models.PositionSell {
		return nil, xe.ErrInvalidParams
	}

	switch draft.Result {
	case models.ResultProfit, models.ResultLoss, models.ResultBreakeven:
	default:
		return nil, xe.ErrInvalidParams
	}

	if draft.Date == "" {
		draft.Date = time.Now().Format("2006-01-02")
	}
	if _, err := time.Parse("2006-01-02", draft.Date); err != nil {
		return nil, xe.ErrInvalidDate
	}

	amount := draft.Amount
	switch draft.Result {
	case models.ResultLoss:
		amount = -math.Abs(amount)
	case models.ResultProfit:
		amount = math.Abs(amount)
	}

	trade := &models.Trade{
		ID:           ulid.Make().String(),
		Date:         draft.Date,
		CurrencyPair: draft.CurrencyPair,
		TradeType:    draft.TradeType,
		Position:     draft.Position,
		Result:       draft.Result,
		Amount:       amount,
		Notes:        draft.Notes,
		Emotions:     draft.Emotions,
	}

	if err := s.tradeRepo.Create(ctx, trade); err != nil {
		return nil, err
	}

	s.logger.Info("trade added",
		zap.String("id", trade.ID),
		zap.String("currency_pair", trade.CurrencyPair),
		zap.String("result", trade.Result),
		zap.Float64("amount", trade.Amount))

	return trade, nil
}

// DeleteTrade 按ID删除交易，ID不存在时为无操作，不报错
func (s *JournalService) DeleteTrade(ctx context.Context, id string) error {
	if err := s.tradeRepo.DeleteById(ctx, id); err != nil {
		return err
	}
	s.logger.Info("trade deleted", zap.String("id", id))
	return nil
}

// ListTrades 按过滤与排序条件获取交易列表，默认顺序为写入顺序
func (s *JournalService) ListTrades(ctx context.Context, filter analytics.Filter, sortSpec *analytics.SortSpec) ([]models.Trade, error) {
	trades, err := s.tradeRepo.FindAllOrdered(ctx)
	if err != nil {
		return nil, err
	}
	return analytics.SortTrades(analytics.FilterTrades(trades, filter), sortSpec), nil
}

// GetStats 计算当前账本的统计汇总
func (s *JournalService) GetStats(ctx context.Context) (analytics.Stats, error) {
	trades, err := s.tradeRepo.FindAllOrdered(ctx)
	if err != nil {
		return analytics.Stats{}, err
	}
	return analytics.ComputeStats(trades), nil
}

// GetBalanceCurve 计算资金增长曲线
func (s *JournalService) GetBalanceCurve(ctx context.Context) ([]analytics.CurvePoint, error) {
	trades, err := s.tradeRepo.FindAllOrdered(ctx)
	if err != nil {
		return nil, err
	}
	conf, err := s.GetConfig(ctx)
	if err != nil {
		return nil, err
	}
	return analytics.BuildBalanceCurve(trades, conf.InitialCapital), nil
}

// GetPairPnl 计算按货币对汇总的盈亏
func (s *JournalService) GetPairPnl(ctx context.Context) ([]analytics.PairPnl, error) {
	trades, err := s.tradeRepo.FindAllOrdered(ctx)
	if err != nil {
		return nil, err
	}
	return analytics.AggregateByPair(trades), nil
}

// GetConfig 获取账户配置，不存在时以默认值惰性创建
func (s *JournalService) GetConfig(ctx context.Context) (*models.JournalConfig, error) {
	conf, err := s.configRepo.FindById(ctx, journalConfigID)
	if err == nil {
		return &conf, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		// 持久化状态异常时回退到默认值，仅记录告警
		s.logger.Warn("failed to load journal config, falling back to defaults", zap.Error(err))
		return &models.JournalConfig{
			ID:             journalConfigID,
			InitialCapital: s.defaultCapital,
			QuickPairs:     s.quickPairs,
		}, nil
	}

	created := &models.JournalConfig{
		ID:             journalConfigID,
		InitialCapital: s.defaultCapital,
		QuickPairs:     s.quickPairs,
	}
	if err := s.configRepo.Create(ctx, created); err != nil {
		return nil, err
	}
	s.logger.Info("journal config initialized", zap.Float64("initial_capital", created.InitialCapital))
	return created, nil
}

// UpdateCapital 更新初始资金，必须为有限正数
func (s *JournalService) UpdateCapital(ctx context.Context, amount float64) (*models.JournalConfig, error) {
	if !(amount > 0) || math.IsInf(amount, 0) {
		return nil, xe.ErrInvalidCapital
	}

	var updated *models.JournalConfig
	err := s.Transaction(ctx, func(ctx context.Context) error {
		conf, err := s.GetConfig(ctx)
		if err != nil {
			return err
		}
		conf.InitialCapital = amount
		if err := s.configRepo.Save(ctx, conf); err != nil {
			return err
		}
		updated = conf
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("initial capital updated", zap.Float64("initial_capital", amount))
	return updated, nil
}

// UpdateQuickPairs 更新常用货币对快捷选项
func (s *JournalService) UpdateQuickPairs(ctx context.Context, pairs []string) (*models.JournalConfig, error) {
	cleaned := make([]string, 0, len(pairs))
	for _, p := range pairs {
		if p = strings.TrimSpace(p); p != "" {
			cleaned = append(cleaned, p)
		}
	}

	var updated *models.JournalConfig
	err := s.Transaction(ctx, func(ctx context.Context) error {
		conf, err := s.GetConfig(ctx)
		if err != nil {
			return err
		}
		conf.QuickPairs = cleaned
		if err := s.configRepo.Save(ctx, conf); err != nil {
			return err
		}
		updated = conf
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// JournalSnapshot 账本导出格式：交易数组 + 初始资金
type JournalSnapshot struct {
	Trades         []models.Trade `json:"trades"`
	InitialCapital float64        `json:"initial_capital"`
	ExportedAt     time.Time      `json:"exported_at"`
}

// ExportSnapshot 导出完整账本快照
func (s *JournalService) ExportSnapshot(ctx context.Context) (*JournalSnapshot, error) {
	trades, err := s.tradeRepo.FindAllOrdered(ctx)
	if err != nil {
		return nil, err
	}
	conf, err := s.GetConfig(ctx)
	if err != nil {
		return nil, err
	}

	return &JournalSnapshot{
		Trades:         trades,
		InitialCapital: conf.InitialCapital,
		ExportedAt:     time.Now(),
	}, nil
}
