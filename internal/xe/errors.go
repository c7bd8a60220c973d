package xe

import "github.com/go-orz/orz"

var (
	ErrInvalidParams  = orz.NewError(10400, "参数无效")
	ErrInvalidToken   = orz.NewError(10403, "令牌无效")
	ErrInvalidTrade   = orz.NewError(10000, "交易记录不完整或金额无效")
	ErrInvalidCapital = orz.NewError(10001, "初始资金必须为有效的正数")
	ErrInvalidDate    = orz.NewError(10002, "交易日期格式必须为 YYYY-MM-DD")
)
