package bot

import (
	"sort"
	"strings"
	"sync"

	"go.uber.org/zap"
)

// ResponseRule 管理员配置的关键词应答规则
type ResponseRule struct {
	Keywords        []string `json:"keywords"` // 命中任一关键词即触发（子串匹配，忽略大小写）
	Response        string   `json:"response"`
	Priority        int      `json:"priority"` // 优先级高的先匹配
	EscalateToAgent bool     `json:"escalateToAgent"`
	Active          bool     `json:"active"`
}

// RuleRepository 应答规则仓库
//
// 规则表是只读快照，管理员更新时整体替换，读取方永远看不到中间状态。
type RuleRepository struct {
	mu     sync.RWMutex
	rules  []ResponseRule // 已按 (priority 降序, 插入顺序) 排好
	logger *zap.Logger
}

// NewRuleRepository 创建规则仓库
func NewRuleRepository(rules []ResponseRule, logger *zap.Logger) *RuleRepository {
	r := &RuleRepository{logger: logger}
	r.Replace(rules)
	return r
}

// Replace 整体替换规则表（管理端批量加载）
func (r *RuleRepository) Replace(rules []ResponseRule) {
	snapshot := make([]ResponseRule, len(rules))
	copy(snapshot, rules)
	for i := range snapshot {
		for j, kw := range snapshot[i].Keywords {
			snapshot[i].Keywords[j] = strings.ToLower(strings.TrimSpace(kw))
		}
	}
	// 稳定排序：同优先级保持插入顺序
	sort.SliceStable(snapshot, func(i, j int) bool {
		return snapshot[i].Priority > snapshot[j].Priority
	})

	r.mu.Lock()
	r.rules = snapshot
	r.mu.Unlock()

	r.logger.Info("规则表已替换", zap.Int("count", len(snapshot)))
}

// FindMatch 查找第一条命中的规则，未命中返回 nil
//
// 每条消息最多产生一条规则应答。
func (r *RuleRepository) FindMatch(text string) *ResponseRule {
	r.mu.RLock()
	rules := r.rules
	r.mu.RUnlock()

	lower := strings.ToLower(text)
	for i := range rules {
		rule := &rules[i]
		if !rule.Active {
			continue
		}
		for _, kw := range rule.Keywords {
			if kw != "" && strings.Contains(lower, kw) {
				r.logger.Debug("规则命中",
					zap.String("keyword", kw),
					zap.Int("priority", rule.Priority))
				matched := *rule
				return &matched
			}
		}
	}
	return nil
}

// Count 当前规则数量
func (r *RuleRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.rules)
}
