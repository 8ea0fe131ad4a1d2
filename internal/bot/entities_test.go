package bot

import (
	"reflect"
	"testing"
)

func TestExtractEmptyMessage(t *testing.T) {
	e := NewExtractor()
	entities := e.Extract("")

	if entities.Products == nil || len(entities.Products) != 0 {
		t.Errorf("expected empty products, got %v", entities.Products)
	}
	if entities.Numbers == nil || len(entities.Numbers) != 0 {
		t.Errorf("expected empty numbers, got %v", entities.Numbers)
	}
	if entities.Emails == nil || len(entities.Emails) != 0 {
		t.Errorf("expected empty emails, got %v", entities.Emails)
	}
}

func TestExtractNumbersAndEmails(t *testing.T) {
	e := NewExtractor()
	entities := e.Extract("order 12345 contact me@x.com")

	if !reflect.DeepEqual(entities.Numbers, []string{"12345"}) {
		t.Errorf("numbers = %v, want [12345]", entities.Numbers)
	}
	if !reflect.DeepEqual(entities.Emails, []string{"me@x.com"}) {
		t.Errorf("emails = %v, want [me@x.com]", entities.Emails)
	}
}

func TestExtractNumberRuns(t *testing.T) {
	e := NewExtractor()
	entities := e.Extract("ids 12 and 345, code a99b7")

	want := []string{"12", "345", "99", "7"}
	if !reflect.DeepEqual(entities.Numbers, want) {
		t.Errorf("numbers = %v, want %v", entities.Numbers, want)
	}
}

func TestExtractProductsVocabularyOrder(t *testing.T) {
	e := NewExtractor()
	entities := e.Extract("Do you have SALMON or chicken? I love salmon chicken")

	// 按词表顺序返回，每个词最多一次
	want := []string{"chicken", "salmon"}
	if !reflect.DeepEqual(entities.Products, want) {
		t.Errorf("products = %v, want %v", entities.Products, want)
	}
}

func TestExtractMultipleEmails(t *testing.T) {
	e := NewExtractor()
	entities := e.Extract("reach a.b+c@shop.co or support@fresh-meats.in today")

	want := []string{"a.b+c@shop.co", "support@fresh-meats.in"}
	if !reflect.DeepEqual(entities.Emails, want) {
		t.Errorf("emails = %v, want %v", entities.Emails, want)
	}
}

func TestExtractRejectsInvalidEmails(t *testing.T) {
	e := NewExtractor()

	for _, text := range []string{"@x.com", "me@", "me@x", "me@x.c", "me@x.c0m."} {
		entities := e.Extract(text)
		if len(entities.Emails) != 0 {
			t.Errorf("Extract(%q).Emails = %v, want empty", text, entities.Emails)
		}
	}
}

func TestExtractIsPure(t *testing.T) {
	e := NewExtractor()
	first := e.Extract("beef 42 me@x.com")
	second := e.Extract("beef 42 me@x.com")

	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated extraction differs: %v vs %v", first, second)
	}
}
