package index

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"faqsearch/internal/store/mocks"
)

func TestCollectionName(t *testing.T) {
	tests := []struct {
		chatbotID string
		want      string
	}{
		{chatbotID: "bot-1", want: "faq_bot-1"},
		{chatbotID: "550e8400-e29b-41d4-a716-446655440000", want: "faq_550e8400-e29b-41d4-a716-446655440000"},
	}
	for _, tt := range tests {
		if got := CollectionName(tt.chatbotID); got != tt.want {
			t.Errorf("CollectionName(%q) = %q, want %q", tt.chatbotID, got, tt.want)
		}
	}
}

func TestManager_NilStore(t *testing.T) {
	m := NewManager(nil)
	ctx := context.Background()

	if m.Enabled() {
		t.Error("Enabled() = true, want false")
	}
	if m.Ensure(ctx, "bot-1") {
		t.Error("Ensure() = true, want false")
	}
	if m.Recreate(ctx, "bot-1") {
		t.Error("Recreate() = true, want false")
	}
	if m.Delete(ctx, "bot-1") {
		t.Error("Delete() = true, want false")
	}
	if m.Exists(ctx, "bot-1") {
		t.Error("Exists() = true, want false")
	}
}

func TestManager_Ensure(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockStore := mocks.NewMockDocumentStore(ctrl)

	// Ensure is idempotent; calling it twice hits the store twice and succeeds
	// both times.
	mockStore.EXPECT().
		EnsureCollection(gomock.Any(), "faq_bot-1").
		Return(nil).
		Times(2)

	m := NewManager(mockStore)
	ctx := context.Background()
	if !m.Ensure(ctx, "bot-1") {
		t.Error("Ensure() = false, want true")
	}
	if !m.Ensure(ctx, "bot-1") {
		t.Error("second Ensure() = false, want true")
	}
}

func TestManager_Ensure_StoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockStore := mocks.NewMockDocumentStore(ctrl)

	mockStore.EXPECT().
		EnsureCollection(gomock.Any(), "faq_bot-1").
		Return(errors.New("store unavailable"))

	m := NewManager(mockStore)
	if m.Ensure(context.Background(), "bot-1") {
		t.Error("Ensure() = true, want false on store error")
	}
}

func TestManager_Recreate(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockStore := mocks.NewMockDocumentStore(ctrl)

	gomock.InOrder(
		mockStore.EXPECT().DeleteCollection(gomock.Any(), "faq_bot-1").Return(nil),
		mockStore.EXPECT().EnsureCollection(gomock.Any(), "faq_bot-1").Return(nil),
	)

	m := NewManager(mockStore)
	if !m.Recreate(context.Background(), "bot-1") {
		t.Error("Recreate() = false, want true")
	}
}

func TestManager_Recreate_DeleteFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockStore := mocks.NewMockDocumentStore(ctrl)

	mockStore.EXPECT().
		DeleteCollection(gomock.Any(), "faq_bot-1").
		Return(errors.New("store unavailable"))

	m := NewManager(mockStore)
	if m.Recreate(context.Background(), "bot-1") {
		t.Error("Recreate() = true, want false when delete fails")
	}
}

func TestManager_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockStore := mocks.NewMockDocumentStore(ctrl)

	mockStore.EXPECT().
		DeleteCollection(gomock.Any(), "faq_bot-1").
		Return(nil)

	m := NewManager(mockStore)
	if !m.Delete(context.Background(), "bot-1") {
		t.Error("Delete() = false, want true")
	}
}

func TestManager_Exists(t *testing.T) {
	tests := []struct {
		name   string
		exists bool
		err    error
		want   bool
	}{
		{name: "present", exists: true, want: true},
		{name: "absent", exists: false, want: false},
		{name: "store error reads as absent", err: errors.New("store unavailable"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockStore := mocks.NewMockDocumentStore(ctrl)

			mockStore.EXPECT().
				CollectionExists(gomock.Any(), "faq_bot-1").
				Return(tt.exists, tt.err)

			m := NewManager(mockStore)
			if got := m.Exists(context.Background(), "bot-1"); got != tt.want {
				t.Errorf("Exists() = %v, want %v", got, tt.want)
			}
		})
	}
}
