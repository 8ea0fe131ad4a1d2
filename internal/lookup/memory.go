package lookup

import (
	"context"
	"strings"
	"sync"
)

// MemoryCatalog 内存商品目录（模拟电商业务数据）
type MemoryCatalog struct {
	mu       sync.RWMutex
	products []Product
}

// NewMemoryCatalog 创建内存商品目录
func NewMemoryCatalog() *MemoryCatalog {
	return &MemoryCatalog{
		products: []Product{
			{Name: "Farm Fresh Chicken Breast", Price: 320.00, Stock: 85},
			{Name: "Free-Range Whole Chicken", Price: 260.00, Stock: 40},
			{Name: "Premium Beef Tenderloin", Price: 899.00, Stock: 22},
			{Name: "Atlantic Salmon Fillet", Price: 1250.00, Stock: 18},
			{Name: "Fresh Tuna Steak", Price: 980.00, Stock: 0},
			{Name: "Tiger Prawns (Large)", Price: 720.00, Stock: 55},
			{Name: "Mud Crab (Live)", Price: 1100.00, Stock: 12},
			{Name: "Tender Lamb Chops", Price: 780.00, Stock: 30},
			{Name: "Pork Belly Slices", Price: 540.00, Stock: 26},
			{Name: "Rock Lobster Tail", Price: 2100.00, Stock: 6},
			{Name: "River Fish (Rohu)", Price: 280.00, Stock: 64},
		},
	}
}

// FindActiveProductsByName 按名称片段查询有货商品
func (c *MemoryCatalog) FindActiveProductsByName(ctx context.Context, fragment string, limit int) ([]Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	lower := strings.ToLower(fragment)
	found := []Product{}
	for _, p := range c.products {
		if len(found) >= limit {
			break
		}
		if p.Stock > 0 && strings.Contains(strings.ToLower(p.Name), lower) {
			found = append(found, p)
		}
	}
	return found, nil
}

// SetProducts 替换目录数据（测试与管理端用）
func (c *MemoryCatalog) SetProducts(products []Product) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.products = products
}

// MemoryOrders 内存订单查询
type MemoryOrders struct {
	mu     sync.RWMutex
	orders map[string]OrderInfo
}

// NewMemoryOrders 创建内存订单查询
func NewMemoryOrders() *MemoryOrders {
	return &MemoryOrders{
		orders: map[string]OrderInfo{
			"1001": {Status: "shipped", EstimatedDelivery: "2025-01-12"},
			"1002": {Status: "processing", EstimatedDelivery: "2025-01-14"},
			"1003": {Status: "delivered", EstimatedDelivery: "2025-01-08"},
		},
	}
}

// FindOrderByID 按订单号查询
func (o *MemoryOrders) FindOrderByID(ctx context.Context, id string) (*OrderInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	o.mu.RLock()
	defer o.mu.RUnlock()

	order, ok := o.orders[id]
	if !ok {
		return nil, ErrOrderNotFound
	}
	return &order, nil
}

// SetOrder 写入订单数据（测试与管理端用）
func (o *MemoryOrders) SetOrder(id string, info OrderInfo) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.orders[id] = info
}

// MemoryStores 内存门店查询
type MemoryStores struct {
	mu     sync.RWMutex
	stores []StoreInfo
}

// NewMemoryStores 创建内存门店查询
func NewMemoryStores() *MemoryStores {
	return &MemoryStores{
		stores: []StoreInfo{
			{Name: "Fresh Meats Koramangala", Address: "80 Feet Road, Koramangala 4th Block, Bengaluru"},
			{Name: "Fresh Meats Indiranagar", Address: "100 Feet Road, Indiranagar, Bengaluru"},
			{Name: "Fresh Meats Whitefield", Address: "Phoenix Marketcity Road, Whitefield, Bengaluru"},
			{Name: "Fresh Meats HSR Layout", Address: "27th Main Road, HSR Sector 1, Bengaluru"},
		},
	}
}

// ListActiveStores 列出营业中的门店
func (s *MemoryStores) ListActiveStores(ctx context.Context, limit int) ([]StoreInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit > len(s.stores) {
		limit = len(s.stores)
	}
	out := make([]StoreInfo, limit)
	copy(out, s.stores[:limit])
	return out, nil
}

// SetStores 替换门店数据（测试与管理端用）
func (s *MemoryStores) SetStores(stores []StoreInfo) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stores = stores
}
