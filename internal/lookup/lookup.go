package lookup

import (
	"context"
	"fmt"
)

// ErrOrderNotFound 订单不存在
var ErrOrderNotFound = fmt.Errorf("订单不存在")

// Product 商品概要
type Product struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Stock int     `json:"stockQuantity"`
}

// OrderInfo 订单概要
type OrderInfo struct {
	Status            string `json:"status"` // pending, processing, shipped, delivered, cancelled
	EstimatedDelivery string `json:"estimatedDeliveryDate"`
}

// StoreInfo 门店概要
type StoreInfo struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

// CatalogLookup 商品目录查询（外部协作方，只读、尽力而为）
type CatalogLookup interface {
	// FindActiveProductsByName 按名称片段查询在售且有货的商品，最多返回 limit 条
	FindActiveProductsByName(ctx context.Context, fragment string, limit int) ([]Product, error)
}

// OrderLookup 订单查询
type OrderLookup interface {
	// FindOrderByID 按订单号查询，不存在返回 ErrOrderNotFound
	FindOrderByID(ctx context.Context, id string) (*OrderInfo, error)
}

// StoreLookup 门店查询
type StoreLookup interface {
	// ListActiveStores 列出营业中的门店，最多返回 limit 家
	ListActiveStores(ctx context.Context, limit int) ([]StoreInfo, error)
}
