package store

import (
	"context"
	"errors"
	"testing"
	"time"
)

func testDoc(faqID, question, searchKey, status string) FaqDocument {
	now := time.Now().UTC()
	return FaqDocument{
		FaqID:     faqID,
		ChatbotID: "bot-1",
		Question:  question,
		Answer:    "answer for " + faqID,
		SearchKey: searchKey,
		Status:    status,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func newMemStore(t *testing.T, collection string, docs ...FaqDocument) *BleveStore {
	t.Helper()
	s := NewBleveStore("")
	ctx := context.Background()
	if err := s.EnsureCollection(ctx, collection); err != nil {
		t.Fatalf("EnsureCollection() error = %v", err)
	}
	for _, doc := range docs {
		if err := s.IndexDocument(ctx, collection, doc); err != nil {
			t.Fatalf("IndexDocument(%s) error = %v", doc.FaqID, err)
		}
	}
	return s
}

func TestBleveStore_KeywordSearch_Chinese(t *testing.T) {
	s := newMemStore(t, "faq_bot-1",
		testDoc("faq-pwd", "如何重置密碼？", "如何重置密碼", StatusActive),
		testDoc("faq-return", "退貨流程是什麼？", "退貨流程", StatusActive),
	)

	got, err := s.KeywordSearch(context.Background(), "faq_bot-1", "重置密碼", 10)
	if err != nil {
		t.Fatalf("KeywordSearch() error = %v", err)
	}
	if len(got) == 0 {
		t.Fatal("KeywordSearch() returned no hits")
	}
	if got[0].Doc.FaqID != "faq-pwd" {
		t.Errorf("KeywordSearch() best hit = %q, want faq-pwd", got[0].Doc.FaqID)
	}
	if got[0].Score <= 0 {
		t.Errorf("KeywordSearch() score = %v, want > 0", got[0].Score)
	}
	if got[0].Doc.Question != "如何重置密碼？" {
		t.Errorf("KeywordSearch() question = %q, want original script", got[0].Doc.Question)
	}
	for _, c := range got {
		if c.Doc.FaqID == "faq-return" {
			t.Error("KeywordSearch() returned unrelated document faq-return")
		}
	}
}

func TestBleveStore_KeywordSearch_ExcludesInactive(t *testing.T) {
	s := newMemStore(t, "faq_bot-1",
		testDoc("faq-live", "配送時間", "配送時間", StatusActive),
		testDoc("faq-hidden", "配送費用", "配送費用", StatusInactive),
	)

	got, err := s.KeywordSearch(context.Background(), "faq_bot-1", "配送", 10)
	if err != nil {
		t.Fatalf("KeywordSearch() error = %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("KeywordSearch() returned %d hits, want 1", len(got))
	}
	if got[0].Doc.FaqID != "faq-live" {
		t.Errorf("KeywordSearch() hit = %q, want the active document", got[0].Doc.FaqID)
	}
}

func TestBleveStore_KeywordSearch_Limit(t *testing.T) {
	s := newMemStore(t, "faq_bot-1",
		testDoc("faq-1", "訂單查詢", "訂單查詢", StatusActive),
		testDoc("faq-2", "訂單取消", "訂單取消", StatusActive),
		testDoc("faq-3", "訂單修改", "訂單修改", StatusActive),
	)

	got, err := s.KeywordSearch(context.Background(), "faq_bot-1", "訂單", 2)
	if err != nil {
		t.Fatalf("KeywordSearch() error = %v", err)
	}
	if len(got) != 2 {
		t.Errorf("KeywordSearch() returned %d hits, want limit=2", len(got))
	}
}

func TestBleveStore_IndexDocument_Overwrite(t *testing.T) {
	s := newMemStore(t, "faq_bot-1",
		testDoc("faq-1", "如何取消訂單？", "取消訂單", StatusActive),
	)
	ctx := context.Background()

	updated := testDoc("faq-1", "如何修改地址？", "修改地址", StatusActive)
	if err := s.IndexDocument(ctx, "faq_bot-1", updated); err != nil {
		t.Fatalf("IndexDocument() error = %v", err)
	}

	got, err := s.KeywordSearch(ctx, "faq_bot-1", "取消訂單", 10)
	if err != nil {
		t.Fatalf("KeywordSearch() error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("old search key still matches after overwrite: %v", got)
	}

	got, err = s.KeywordSearch(ctx, "faq_bot-1", "修改地址", 10)
	if err != nil {
		t.Fatalf("KeywordSearch() error = %v", err)
	}
	if len(got) != 1 || got[0].Doc.Question != "如何修改地址？" {
		t.Errorf("KeywordSearch() after overwrite = %v, want the updated document", got)
	}
}

func TestBleveStore_DeleteDocument(t *testing.T) {
	s := newMemStore(t, "faq_bot-1",
		testDoc("faq-1", "退款政策", "退款政策", StatusActive),
	)
	ctx := context.Background()

	if err := s.DeleteDocument(ctx, "faq_bot-1", "faq-1"); err != nil {
		t.Fatalf("DeleteDocument() error = %v", err)
	}
	// Deleting an id that was never indexed is a no-op.
	if err := s.DeleteDocument(ctx, "faq_bot-1", "never-indexed"); err != nil {
		t.Fatalf("DeleteDocument() on absent id error = %v", err)
	}

	got, err := s.KeywordSearch(ctx, "faq_bot-1", "退款政策", 10)
	if err != nil {
		t.Fatalf("KeywordSearch() error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("KeywordSearch() after delete = %v, want no hits", got)
	}
}

func TestBleveStore_MissingCollection(t *testing.T) {
	s := NewBleveStore("")
	ctx := context.Background()

	if _, err := s.KeywordSearch(ctx, "faq_missing", "查詢", 10); !errors.Is(err, ErrCollectionNotFound) {
		t.Errorf("KeywordSearch() error = %v, want ErrCollectionNotFound", err)
	}
	if err := s.IndexDocument(ctx, "faq_missing", testDoc("faq-1", "q", "q", StatusActive)); !errors.Is(err, ErrCollectionNotFound) {
		t.Errorf("IndexDocument() error = %v, want ErrCollectionNotFound", err)
	}
	if err := s.DeleteDocument(ctx, "faq_missing", "faq-1"); !errors.Is(err, ErrCollectionNotFound) {
		t.Errorf("DeleteDocument() error = %v, want ErrCollectionNotFound", err)
	}

	exists, err := s.CollectionExists(ctx, "faq_missing")
	if err != nil {
		t.Fatalf("CollectionExists() error = %v", err)
	}
	if exists {
		t.Error("CollectionExists() = true for a collection that was never created")
	}
}

func TestBleveStore_DeleteCollection(t *testing.T) {
	s := newMemStore(t, "faq_bot-1",
		testDoc("faq-1", "客服時間", "客服時間", StatusActive),
	)
	ctx := context.Background()

	if err := s.DeleteCollection(ctx, "faq_bot-1"); err != nil {
		t.Fatalf("DeleteCollection() error = %v", err)
	}
	// Deleting again is a no-op.
	if err := s.DeleteCollection(ctx, "faq_bot-1"); err != nil {
		t.Fatalf("second DeleteCollection() error = %v", err)
	}

	if _, err := s.KeywordSearch(ctx, "faq_bot-1", "客服", 10); !errors.Is(err, ErrCollectionNotFound) {
		t.Errorf("KeywordSearch() after delete error = %v, want ErrCollectionNotFound", err)
	}
}

func TestBleveStore_OnDisk(t *testing.T) {
	root := t.TempDir()
	s := NewBleveStore(root)
	ctx := context.Background()

	if err := s.EnsureCollection(ctx, "faq_bot-1"); err != nil {
		t.Fatalf("EnsureCollection() error = %v", err)
	}
	// Ensuring an existing on-disk index is idempotent.
	if err := s.EnsureCollection(ctx, "faq_bot-1"); err != nil {
		t.Fatalf("second EnsureCollection() error = %v", err)
	}

	if err := s.IndexDocument(ctx, "faq_bot-1", testDoc("faq-1", "營業時間", "營業時間", StatusActive)); err != nil {
		t.Fatalf("IndexDocument() error = %v", err)
	}
	got, err := s.KeywordSearch(ctx, "faq_bot-1", "營業時間", 10)
	if err != nil {
		t.Fatalf("KeywordSearch() error = %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("KeywordSearch() returned %d hits, want 1", len(got))
	}

	// A fresh store over the same root sees the index on disk.
	fresh := NewBleveStore(root)
	exists, err := fresh.CollectionExists(ctx, "faq_bot-1")
	if err != nil {
		t.Fatalf("CollectionExists() error = %v", err)
	}
	if !exists {
		t.Error("CollectionExists() = false for an index present on disk")
	}

	if err := s.DeleteCollection(ctx, "faq_bot-1"); err != nil {
		t.Fatalf("DeleteCollection() error = %v", err)
	}
	exists, err = fresh.CollectionExists(ctx, "faq_bot-1")
	if err != nil {
		t.Fatalf("CollectionExists() after delete error = %v", err)
	}
	if exists {
		t.Error("CollectionExists() = true after the index was removed")
	}
}
