package bot

import (
	"strings"
)

// ExtractedEntities 单条消息里抽取出的结构化实体，全部尽力而为，可为空
type ExtractedEntities struct {
	Products []string // 命中的商品词，按词表顺序，每个词最多一次
	Numbers  []string // 连续数字串，从左到右
	Emails   []string // 邮箱地址，从左到右
}

// productVocabulary 商品词表，抽取顺序即此顺序
var productVocabulary = []string{
	"chicken", "beef", "pork", "lamb", "fish",
	"salmon", "tuna", "prawns", "crab", "lobster",
}

// Extractor 实体抽取器，纯函数，不保留状态
//
// 用显式扫描代替正则，避免回溯并保证对任意输入不会失败。
type Extractor struct{}

// NewExtractor 创建实体抽取器
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract 从消息文本中抽取实体，任何输入都返回非 nil 的空切片
func (e *Extractor) Extract(text string) ExtractedEntities {
	entities := ExtractedEntities{
		Products: []string{},
		Numbers:  []string{},
		Emails:   []string{},
	}

	lower := strings.ToLower(text)
	for _, term := range productVocabulary {
		if strings.Contains(lower, term) {
			entities.Products = append(entities.Products, term)
		}
	}

	entities.Numbers = scanNumbers(text)
	entities.Emails = scanEmails(text)
	return entities
}

// scanNumbers 提取所有极大数字串
func scanNumbers(text string) []string {
	numbers := []string{}
	start := -1
	for i, r := range text {
		if r >= '0' && r <= '9' {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			numbers = append(numbers, text[start:i])
			start = -1
		}
	}
	if start >= 0 {
		numbers = append(numbers, text[start:])
	}
	return numbers
}

// scanEmails 提取 local@domain.tld 形式的邮箱地址
//
// local 部分允许字母数字及 ._%+-，domain 部分允许字母数字及 .-，
// 顶级域必须是至少 2 个字母。
func scanEmails(text string) []string {
	emails := []string{}
	for i := 0; i < len(text); i++ {
		if text[i] != '@' {
			continue
		}

		// 向左扩展 local 部分
		start := i
		for start > 0 && isLocalChar(text[start-1]) {
			start--
		}
		if start == i {
			continue
		}

		// 向右扩展 domain 部分
		end := i + 1
		for end < len(text) && isDomainChar(text[end]) {
			end++
		}
		domain := strings.TrimRight(text[i+1:end], ".-")
		if domain == "" {
			continue
		}

		// 顶级域：最后一个点之后至少 2 个字母
		dot := strings.LastIndexByte(domain, '.')
		if dot <= 0 || dot == len(domain)-1 {
			continue
		}
		tld := domain[dot+1:]
		if len(tld) < 2 || !isAlpha(tld) {
			continue
		}

		emails = append(emails, text[start:i+1]+domain)
		i = i + 1 + len(domain)
	}
	return emails
}

func isLocalChar(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' ||
		c == '.' || c == '_' || c == '%' || c == '+' || c == '-'
}

func isDomainChar(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' ||
		c == '.' || c == '-'
}

func isAlpha(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !(c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z') {
			return false
		}
	}
	return true
}
