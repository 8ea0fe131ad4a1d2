package bot

import "strings"

// 转人工触发短语，独立于规则与意图，命中即转人工
var escalationPhrases = []string{
	"speak to manager",
	"human agent",
	"not satisfied",
	"escalate",
	"supervisor",
}

// 投诉负面情绪词，用于投诉严重度评分
var complaintKeywords = []string{
	"wrong", "bad", "terrible", "awful", "disappointed", "angry", "frustrated",
}

// HandoffNotice 转人工时追加的提示消息
const HandoffNotice = "I'm connecting you with our expert support team for personalized assistance. Please wait a moment."

// ContainsEscalationPhrase 消息是否包含转人工短语
//
// 匹配时忽略冠词，"speak to a manager" 同样命中 "speak to manager"。
func ContainsEscalationPhrase(text string) bool {
	lower := strings.ToLower(text)
	stripped := stripArticles(lower)
	for _, phrase := range escalationPhrases {
		if strings.Contains(lower, phrase) || strings.Contains(stripped, phrase) {
			return true
		}
	}
	return false
}

// stripArticles 去掉冠词后重组文本
func stripArticles(text string) string {
	words := strings.Fields(text)
	out := words[:0]
	for _, w := range words {
		if w == "a" || w == "an" || w == "the" {
			continue
		}
		out = append(out, w)
	}
	return strings.Join(out, " ")
}

// ComplaintSeverity 统计消息中负面情绪词的数量
func ComplaintSeverity(text string) int {
	lower := strings.ToLower(text)
	severity := 0
	for _, kw := range complaintKeywords {
		if strings.Contains(lower, kw) {
			severity++
		}
	}
	return severity
}
