package bot

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/freshbot/freshbot-go/internal/lookup"
	"go.uber.org/zap"
)

// Reply 一次应答的结果
type Reply struct {
	Text     string // 回复文本
	Escalate bool   // 是否需要转人工
}

// Responder 上下文应答器
//
// 应答优先级：规则命中 > 实体相关的意图处理 > 意图通用话术 > fallback。
// 外部查询全部限时，失败一律降级为固定话术，绝不向上抛错。
type Responder struct {
	rules      *RuleRepository
	classifier *Classifier
	extractor  *Extractor
	catalog    lookup.CatalogLookup
	orders     lookup.OrderLookup
	stores     lookup.StoreLookup
	timeout    time.Duration
	randInt    func(n int) int // 可注入的随机源，测试中可固定
	logger     *zap.Logger
}

// NewResponder 创建应答器
func NewResponder(
	rules *RuleRepository,
	classifier *Classifier,
	extractor *Extractor,
	catalog lookup.CatalogLookup,
	orders lookup.OrderLookup,
	stores lookup.StoreLookup,
	timeout time.Duration,
	logger *zap.Logger,
) *Responder {
	return &Responder{
		rules:      rules,
		classifier: classifier,
		extractor:  extractor,
		catalog:    catalog,
		orders:     orders,
		stores:     stores,
		timeout:    timeout,
		randInt:    rand.Intn,
		logger:     logger,
	}
}

// SetRandInt 替换随机源
func (r *Responder) SetRandInt(f func(n int) int) {
	r.randInt = f
}

// Respond 生成应答
//
// 内部任何意外故障都会被捕获，降级为 fallback 话术并强制转人工。
func (r *Responder) Respond(ctx context.Context, text string) (reply Reply) {
	defer func() {
		if rec := recover(); rec != nil {
			r.logger.Error("应答流程异常，降级为兜底话术", zap.Any("panic", rec))
			reply = Reply{Text: r.pick(cannedResponses[FallbackIntent]), Escalate: true}
		}
	}()

	text = strings.TrimSpace(text)
	if text == "" {
		return Reply{Text: "I'm here to help! What would you like to know about our meat and seafood products?"}
	}

	// 1. 规则快路径
	if rule := r.rules.FindMatch(text); rule != nil {
		r.logger.Info("规则应答", zap.Int("priority", rule.Priority), zap.Bool("escalate", rule.EscalateToAgent))
		return Reply{Text: rule.Response, Escalate: rule.EscalateToAgent}
	}

	// 2. 意图 + 实体
	intent := r.classifier.Classify(text)
	entities := r.extractor.Extract(text)

	r.logger.Info("上下文应答",
		zap.String("intent", intent),
		zap.Strings("products", entities.Products),
		zap.Strings("numbers", entities.Numbers))

	switch {
	case intent == "product_inquiry" && len(entities.Products) > 0:
		return Reply{Text: r.handleProductInquiry(ctx, entities.Products)}
	case intent == "order_status" && len(entities.Numbers) > 0:
		return Reply{Text: r.handleOrderStatus(ctx, entities.Numbers)}
	case intent == "pricing" && len(entities.Products) > 0:
		return Reply{Text: r.handlePricing(ctx, entities.Products)}
	case intent == "availability" && len(entities.Products) > 0:
		return Reply{Text: r.handleAvailability(ctx, entities.Products)}
	case intent == "store_location":
		return Reply{Text: r.handleStoreLocation(ctx, text)}
	case intent == "complaint":
		text, escalate := r.handleComplaint(text)
		return Reply{Text: text, Escalate: escalate}
	}

	// 3. 意图通用话术 / 4. fallback
	responses, ok := cannedResponses[intent]
	if !ok || intent == FallbackIntent {
		return Reply{Text: r.pick(cannedResponses[FallbackIntent]), Escalate: true}
	}
	return Reply{Text: r.pick(responses)}
}

// handleProductInquiry 商品咨询
func (r *Responder) handleProductInquiry(ctx context.Context, products []string) string {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	found := []lookup.Product{}
	for _, term := range products {
		matches, err := r.catalog.FindActiveProductsByName(ctx, term, 3)
		if err != nil {
			r.logger.Warn("商品查询失败", zap.String("term", term), zap.Error(err))
			return fmt.Sprintf("I'd love to help you find %s! Let me connect you with our product specialists who can show you our best options.", products[0])
		}
		found = append(found, matches...)
	}

	if len(found) == 0 {
		return fmt.Sprintf("I understand you're looking for %s. Let me check our current inventory and connect you with our team for the latest availability.", products[0])
	}

	if len(found) > 3 {
		found = found[:3]
	}
	names := make([]string, len(found))
	for i, p := range found {
		names[i] = p.Name
	}
	return fmt.Sprintf("Great choice! I found these %s options for you: %s. Would you like to know more about any specific item?",
		products[0], strings.Join(names, ", "))
}

// handleOrderStatus 订单状态查询
func (r *Responder) handleOrderStatus(ctx context.Context, numbers []string) string {
	orderNumber := numbers[0]

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	order, err := r.orders.FindOrderByID(ctx, orderNumber)
	if err == lookup.ErrOrderNotFound {
		return fmt.Sprintf("I couldn't find order #%s in our system. Please check the number or contact our support team for detailed tracking.", orderNumber)
	}
	if err != nil {
		r.logger.Warn("订单查询失败", zap.String("orderId", orderNumber), zap.Error(err))
		return fmt.Sprintf("Let me help you track order #%s. I'll connect you with our order management team for real-time updates.", orderNumber)
	}

	statusMsg, ok := orderStatusMessages[order.Status]
	if !ok {
		statusMsg = "Your order is being processed"
	}
	delivery := order.EstimatedDelivery
	if delivery == "" {
		delivery = "TBD"
	}
	return fmt.Sprintf("Order #%s: %s. Expected delivery: %s.", orderNumber, statusMsg, delivery)
}

// handlePricing 价格咨询
func (r *Responder) handlePricing(ctx context.Context, products []string) string {
	productName := products[0]

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	matches, err := r.catalog.FindActiveProductsByName(ctx, productName, 2)
	if err != nil {
		r.logger.Warn("价格查询失败", zap.String("term", productName), zap.Error(err))
		return fmt.Sprintf("Let me get you the best pricing information for %s. Our team will share current rates and special offers with you.", productName)
	}

	if len(matches) == 0 {
		return fmt.Sprintf("I'll get you the latest pricing for %s. Our team will provide you with current rates and any available discounts.", productName)
	}

	lines := make([]string, len(matches))
	for i, p := range matches {
		lines[i] = fmt.Sprintf("%s: ₹%.2f", p.Name, p.Price)
	}
	return fmt.Sprintf("Here are the current prices for %s:\n%s\n\nPrices may vary based on quantity and current offers!",
		productName, strings.Join(lines, "\n"))
}

// handleAvailability 库存咨询
func (r *Responder) handleAvailability(ctx context.Context, products []string) string {
	productName := products[0]

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	matches, err := r.catalog.FindActiveProductsByName(ctx, productName, 10)
	if err != nil {
		r.logger.Warn("库存查询失败", zap.String("term", productName), zap.Error(err))
		return fmt.Sprintf("Let me check the current availability of %s for you. Our inventory team will provide real-time stock information.", productName)
	}

	if len(matches) == 0 {
		return fmt.Sprintf("I'm checking availability for %s. It might be temporarily out of stock, but I'll connect you with our team for the latest updates and alternatives.", productName)
	}

	return fmt.Sprintf("Good news! %s is currently available. We have %d options in stock. Would you like to see them?",
		titleCase(productName), len(matches))
}

// handleStoreLocation 门店咨询
func (r *Responder) handleStoreLocation(ctx context.Context, text string) string {
	lower := strings.ToLower(text)
	mentionsArea := false
	for _, kw := range []string{"near", "in", "at", "around", "close to"} {
		if strings.Contains(lower, kw) {
			mentionsArea = true
			break
		}
	}
	if !mentionsArea {
		return "I can help you find our nearest store! Could you please tell me your area or preferred location?"
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	stores, err := r.stores.ListActiveStores(ctx, 3)
	if err != nil || len(stores) == 0 {
		if err != nil {
			r.logger.Warn("门店查询失败", zap.Error(err))
		}
		return "I'd love to help you find our stores nearby! Let me connect you with our location team for detailed information and directions."
	}

	lines := make([]string, len(stores))
	for i, s := range stores {
		lines[i] = fmt.Sprintf("%s: %s", s.Name, s.Address)
	}
	return fmt.Sprintf("Here are our store locations:\n%s\n\nWould you like directions to any specific location?",
		strings.Join(lines, "\n"))
}

// handleComplaint 投诉处理，按负面情绪词数量分级
func (r *Responder) handleComplaint(text string) (string, bool) {
	severity := ComplaintSeverity(text)
	r.logger.Info("投诉严重度评分", zap.Int("severity", severity))

	if severity >= 2 {
		return "I sincerely apologize for this experience. This is clearly important, and I want to ensure it's resolved immediately. I'm escalating this to our senior support manager who will contact you within 15 minutes.", true
	}
	return "I'm sorry to hear about this issue. Your feedback is valuable to us. Please share more details so I can help resolve this quickly, or would you prefer to speak with our support supervisor?", false
}

// pick 从候选话术中随机选一条
func (r *Responder) pick(responses []string) string {
	if len(responses) == 0 {
		return ""
	}
	return responses[r.randInt(len(responses))]
}

// titleCase 单词首字母大写
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// orderStatusMessages 订单状态话术
var orderStatusMessages = map[string]string{
	"pending":    "Your order is confirmed and being prepared",
	"processing": "Your order is being processed in our facility",
	"shipped":    "Your order has been shipped and is on the way",
	"delivered":  "Your order has been delivered successfully",
	"cancelled":  "Your order has been cancelled",
}
