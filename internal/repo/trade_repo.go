package repo

import (
	"context"

	"github.com/go-orz/orz"
	"gorm.io/gorm"

	"github.com/Nearak/Journal/internal/models"
)

func NewTradeRepo(db *gorm.DB) *TradeRepo {
	return &TradeRepo{
		Repository: orz.NewRepository[models.Trade, string](db),
	}
}

type TradeRepo struct {
	orz.Repository[models.Trade, string]
}

// FindAllOrdered 按写入顺序获取全部交易记录，作为表格的默认展示顺序
func (r TradeRepo) FindAllOrdered(ctx context.Context) ([]models.Trade, error) {
	var trades []models.Trade
	db := r.GetDB(ctx)
	err := db.Table(r.GetTableName()).
		Order("created_at ASC, id ASC").
		Find(&trades).Error
	return trades, err
}
