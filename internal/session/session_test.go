package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Lixing-Zhang/bandi-strawberry/internal/catalog"
	"github.com/Lixing-Zhang/bandi-strawberry/internal/models"
)

func newTestSession() *Session {
	return newSession("test", catalog.Default().Products, time.Now())
}

func TestNewSession_Defaults(t *testing.T) {
	s := newTestSession()

	assert.Equal(t, ViewStore, s.View)
	assert.Equal(t, TabDashboard, s.AdminTab)
	assert.False(t, s.CartOpen)
	assert.False(t, s.AddModalOpen)
	assert.True(t, s.Cart.IsEmpty())
	assert.Equal(t, NewDraft(), s.Draft)
	assert.Equal(t, "500g", s.Draft.Unit)
}

func TestSession_ToggleView(t *testing.T) {
	s := newTestSession()

	assert.Equal(t, ViewAdmin, s.ToggleView())
	assert.Equal(t, ViewStore, s.ToggleView())
}

func TestSession_ShowProductsLeavesAdmin(t *testing.T) {
	s := newTestSession()
	s.View = ViewAdmin
	s.CartOpen = true

	s.ShowProducts()

	assert.Equal(t, ViewStore, s.View)
	assert.False(t, s.CartOpen)
}

func TestSession_SetAdminTab(t *testing.T) {
	tests := []struct {
		input   string
		want    AdminTab
		wantErr error
	}{
		{input: "products", want: TabProducts},
		{input: "주문현황", want: TabOrders},
		{input: "대시보드", want: TabDashboard},
		{input: "settings", want: TabDashboard, wantErr: ErrInvalidTab},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			s := newTestSession()
			err := s.SetAdminTab(tt.input)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, s.AdminTab)
		})
	}
}

func TestSession_ToggleDetails(t *testing.T) {
	s := newTestSession()

	assert.True(t, s.ToggleDetails("premium-box"))
	assert.True(t, s.ToggleDetails("couple-pack"))
	assert.True(t, s.IsExpanded("premium-box"))
	assert.Equal(t, []string{"couple-pack", "premium-box"}, s.ExpandedIDs())

	assert.False(t, s.ToggleDetails("premium-box"))
	assert.False(t, s.IsExpanded("premium-box"))
	assert.Equal(t, []string{"couple-pack"}, s.ExpandedIDs())
}

func TestSession_FlashIsOneShot(t *testing.T) {
	s := newTestSession()
	s.SetFlash("주문이 완료되었습니다! 감사합니다.")

	assert.Equal(t, "주문이 완료되었습니다! 감사합니다.", s.TakeFlash())
	assert.Empty(t, s.TakeFlash())
}

func TestSession_ResetDraft(t *testing.T) {
	s := newTestSession()
	s.Draft = models.ProductDraft{Name: "여름 딸기", Price: 15000, Unit: "1kg"}

	s.ResetDraft()

	assert.Equal(t, NewDraft(), s.Draft)
}

func TestContextRoundTrip(t *testing.T) {
	s := newTestSession()

	got, ok := FromContext(NewContext(context.Background(), s))
	require.True(t, ok)
	assert.Same(t, s, got)

	_, ok = FromContext(context.Background())
	assert.False(t, ok)
}
