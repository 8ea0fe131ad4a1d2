package bot

import (
	"strings"
	"sync"

	"go.uber.org/zap"
)

// FallbackIntent 兜底意图，任何意图得分为 0 时返回
const FallbackIntent = "fallback"

// Intent 意图及其触发关键词
type Intent struct {
	Name     string   `json:"name"`
	Keywords []string `json:"keywords"`
}

// Classifier 关键词意图分类器
//
// 意图表是有序列表：多个意图得分并列时，表中靠前者胜出，
// 避免依赖 map 迭代顺序带来的不确定性。
type Classifier struct {
	mu      sync.RWMutex
	intents []Intent
	logger  *zap.Logger
}

// NewClassifier 创建意图分类器
func NewClassifier(intents []Intent, logger *zap.Logger) *Classifier {
	c := &Classifier{logger: logger}
	c.Replace(intents)
	return c
}

// Replace 整体替换意图表（管理端批量加载）
func (c *Classifier) Replace(intents []Intent) {
	snapshot := make([]Intent, len(intents))
	copy(snapshot, intents)
	for i := range snapshot {
		kws := make([]string, len(snapshot[i].Keywords))
		for j, kw := range snapshot[i].Keywords {
			kws[j] = strings.ToLower(strings.TrimSpace(kw))
		}
		snapshot[i].Keywords = kws
	}

	c.mu.Lock()
	c.intents = snapshot
	c.mu.Unlock()

	c.logger.Info("意图表已替换", zap.Int("count", len(snapshot)))
}

// Classify 返回得分最高的意图，全部为 0 分时返回 fallback
//
// 得分 = 命中关键词个数，消息整体与关键词完全相等再加 2 分。
func (c *Classifier) Classify(text string) string {
	c.mu.RLock()
	intents := c.intents
	c.mu.RUnlock()

	lower := strings.ToLower(text)
	trimmed := strings.TrimSpace(lower)

	best := FallbackIntent
	bestScore := 0
	for _, intent := range intents {
		score := 0
		for _, kw := range intent.Keywords {
			if kw == "" {
				continue
			}
			if strings.Contains(lower, kw) {
				score++
			}
			if kw == trimmed {
				score += 2
			}
		}
		if score > bestScore {
			bestScore = score
			best = intent.Name
		}
	}

	c.logger.Debug("意图分类完成",
		zap.String("intent", best),
		zap.Int("score", bestScore))
	return best
}

// DefaultIntents 平台内置意图表
func DefaultIntents() []Intent {
	return []Intent{
		{Name: "greeting", Keywords: []string{"hello", "hi", "hey", "good morning", "good afternoon", "good evening"}},
		{Name: "product_inquiry", Keywords: []string{"product", "item", "meat", "seafood", "chicken", "fish", "beef", "pork", "lamb"}},
		{Name: "order_status", Keywords: []string{"order", "status", "delivery", "track", "tracking"}},
		{Name: "pricing", Keywords: []string{"price", "cost", "expensive", "cheap", "discount", "offer"}},
		{Name: "availability", Keywords: []string{"available", "stock", "out of stock", "in stock"}},
		{Name: "delivery", Keywords: []string{"delivery", "shipping", "deliver", "when will"}},
		{Name: "payment", Keywords: []string{"payment", "pay", "card", "cash", "refund"}},
		{Name: "account", Keywords: []string{"account", "profile", "login", "register", "password"}},
		{Name: "complaint", Keywords: []string{"problem", "issue", "complaint", "wrong", "bad", "defective"}},
		{Name: "compliment", Keywords: []string{"good", "excellent", "great", "awesome", "thank you", "thanks"}},
		{Name: "store_location", Keywords: []string{"store", "location", "address", "near me", "branch"}},
		{Name: "nutrition", Keywords: []string{"nutrition", "healthy", "calories", "protein", "fat"}},
		{Name: "recipe", Keywords: []string{"recipe", "cook", "cooking", "how to prepare", "marinate"}},
		{Name: "goodbye", Keywords: []string{"bye", "goodbye", "see you", "exit", "quit"}},
	}
}
