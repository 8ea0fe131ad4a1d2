package bot

import (
	"testing"

	"go.uber.org/zap"
)

func newTestClassifier(t *testing.T) *Classifier {
	t.Helper()
	return NewClassifier(DefaultIntents(), zap.NewNop())
}

func TestClassifyFallbackOnNoMatch(t *testing.T) {
	c := newTestClassifier(t)

	for _, text := range []string{"zzqqy", "????", ""} {
		if intent := c.Classify(text); intent != FallbackIntent {
			t.Errorf("Classify(%q) = %q, want fallback", text, intent)
		}
	}
}

func TestClassifyExactMatchBoost(t *testing.T) {
	c := newTestClassifier(t)

	// "hi" 同时是 greeting 的子串命中与整句精确命中，得分 1+2
	if intent := c.Classify("  hi  "); intent != "greeting" {
		t.Errorf("Classify(hi) = %q, want greeting", intent)
	}
}

func TestClassifyHighestScoreWins(t *testing.T) {
	c := newTestClassifier(t)

	// order + status + track 三个 order_status 关键词压过其他意图
	if intent := c.Classify("track the status of my order"); intent != "order_status" {
		t.Errorf("intent = %q, want order_status", intent)
	}
}

func TestClassifyCaseInsensitive(t *testing.T) {
	c := newTestClassifier(t)

	if intent := c.Classify("NUTRITION and CALORIES info"); intent != "nutrition" {
		t.Errorf("intent = %q, want nutrition", intent)
	}
}

func TestClassifyReplaceTable(t *testing.T) {
	c := newTestClassifier(t)
	c.Replace([]Intent{
		{Name: "bulk_order", Keywords: []string{"wholesale", "bulk"}},
	})

	if intent := c.Classify("wholesale bulk pricing"); intent != "bulk_order" {
		t.Errorf("intent = %q, want bulk_order", intent)
	}
	if intent := c.Classify("hello"); intent != FallbackIntent {
		t.Errorf("intent = %q, want fallback after table replacement", intent)
	}
}
