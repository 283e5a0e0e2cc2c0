package aquarium

import (
	"io"
	"log/slog"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/pthm-cable/aquarium/assets"
	"github.com/pthm-cable/aquarium/assets/mocks"
	"github.com/pthm-cable/aquarium/components"
	"github.com/pthm-cable/aquarium/config"
)

// leftHalf is opaque on the left half of a 40 pixel wide image.
type leftHalf struct{}

func (leftHalf) Opaque(x, y int) bool { return x >= 0 && x < 20 && y >= 0 && y < 20 }

func newMockAquarium(t *testing.T, catalog assets.Catalog) *Aquarium {
	t.Helper()
	return New(Options{
		Config:  config.Default(),
		Catalog: catalog,
		Seed:    testSeed,
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
}

func TestHitTestUsesMask(t *testing.T) {
	ctrl := gomock.NewController(t)
	catalog := mocks.NewMockCatalog(ctrl)
	catalog.EXPECT().
		Footprint(BetaImage).
		Return(components.Footprint{Width: 40, Height: 20, Mask: leftHalf{}}, nil)

	aq := newMockAquarium(t, catalog)
	fish := NewBetaFish(aq)
	fish.SetLocation(100, 100)

	if !fish.HitTest(85, 100) {
		t.Error("expected hit on the opaque half")
	}
	if fish.HitTest(115, 100) {
		t.Error("expected miss on the transparent half")
	}
	if fish.HitTest(200, 100) {
		t.Error("expected miss outside the footprint")
	}

	fish.SetMirror(true)
	if fish.HitTest(85, 100) {
		t.Error("mirrored fish: expected miss on the now transparent half")
	}
	if !fish.HitTest(115, 100) {
		t.Error("mirrored fish: expected hit on the now opaque half")
	}
}

func TestFootprintFallback(t *testing.T) {
	ctrl := gomock.NewController(t)
	catalog := mocks.NewMockCatalog(ctrl)
	catalog.EXPECT().
		Footprint(gomock.Any()).
		Return(components.Footprint{}, assets.ErrUnknownAsset)

	aq := newMockAquarium(t, catalog)
	castle := NewCastle(aq)

	cfg := config.Default()
	if castle.Width() != cfg.Assets.DefaultWidth || castle.Height() != cfg.Assets.DefaultHeight {
		t.Errorf("expected default footprint %vx%v, got %vx%v",
			cfg.Assets.DefaultWidth, cfg.Assets.DefaultHeight, castle.Width(), castle.Height())
	}
}

func TestDistanceTo(t *testing.T) {
	aq := newTestAquarium(t)
	a := NewCastle(aq)
	b := NewBetaFish(aq)
	a.SetLocation(0, 0)
	b.SetLocation(3, 4)

	if d := a.DistanceTo(b); d != 5 {
		t.Errorf("DistanceTo = %v, want 5", d)
	}
	if d := b.DistanceTo(a); d != 5 {
		t.Errorf("DistanceTo = %v, want 5", d)
	}
	b.SetLocation(0.5, 0.5)
	if d := a.DistanceTo(b); d >= 1 {
		t.Errorf("nearly coincident items should overlap, got distance %v", d)
	}
}

func TestFixedSpeeds(t *testing.T) {
	tests := []struct {
		name   string
		create func(a *Aquarium) Item
		vx, vy float64
	}{
		{"beta", func(a *Aquarium) Item { return NewBetaFish(a) }, 20, -10},
		{"sparty", func(a *Aquarium) Item { return NewSpartyFish(a) }, 30, 30},
		{"stinky", func(a *Aquarium) Item { return NewStinkyFish(a) }, 300, -20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, seed := range []uint64{1, testSeed} {
				aq := newTestAquarium(t)
				aq.Random().Seed(seed)
				item := tt.create(aq)
				f, ok := item.(interface{ Speed() (float64, float64) })
				if !ok {
					t.Fatalf("%s does not expose Speed", tt.name)
				}
				vx, vy := f.Speed()
				if vx != tt.vx || vy != tt.vy {
					t.Errorf("seed %d: speed = (%v, %v), want (%v, %v)", seed, vx, vy, tt.vx, tt.vy)
				}
			}
		})
	}
}

func TestRandomFishSpeed(t *testing.T) {
	aq := newTestAquarium(t)

	aq.Random().Seed(7)
	f1 := NewFish(aq, BetaImage)
	aq.Random().Seed(7)
	f2 := NewFish(aq, BetaImage)

	vx1, vy1 := f1.Speed()
	vx2, vy2 := f2.Speed()
	if vx1 != vx2 || vy1 != vy2 {
		t.Errorf("same seed gave different speeds: (%v, %v) vs (%v, %v)", vx1, vy1, vx2, vy2)
	}
	for _, v := range []float64{vx1, vy1} {
		if v < 20 || v > 50 {
			t.Errorf("speed component %v outside [20, 50]", v)
		}
	}
	if f1.Type() != "" {
		t.Errorf("generic fish should be untagged, got %q", f1.Type())
	}
}

func TestFishBounce(t *testing.T) {
	aq := newTestAquarium(t)
	fish := NewBetaFish(aq) // 100 pixels wide, canvas 1024x800, margin 10
	aq.Add(fish)

	// Right edge turns at 1024 - 10 - 50 = 964
	fish.SetLocation(950, 400)
	fish.SetSpeed(100, 0)
	fish.Update(0.1)
	if vx, _ := fish.Speed(); vx != 100 || fish.Mirrored() {
		t.Fatalf("turned too early at x=%v", fish.X())
	}
	fish.Update(0.1)
	if vx, _ := fish.Speed(); vx != -100 {
		t.Errorf("expected vx -100 after hitting the right edge, got %v", vx)
	}
	if !fish.Mirrored() {
		t.Error("fish swimming left should be mirrored")
	}

	// Left edge turns at 10 + 50 = 60
	fish.SetLocation(65, 400)
	fish.Update(0.1)
	if vx, _ := fish.Speed(); vx != 100 {
		t.Errorf("expected vx 100 after hitting the left edge, got %v", vx)
	}
	if fish.Mirrored() {
		t.Error("fish swimming right should not be mirrored")
	}

	// Bottom edge turns at 800 - 10 - 50 = 740, mirror untouched
	fish.SetLocation(500, 735)
	fish.SetSpeed(0, 100)
	fish.Update(0.1)
	if _, vy := fish.Speed(); vy != -100 {
		t.Errorf("expected vy -100 after hitting the bottom, got %v", vy)
	}
	if fish.Mirrored() {
		t.Error("vertical bounce should not mirror")
	}

	// Top edge turns at 60
	fish.SetLocation(500, 65)
	fish.Update(0.1)
	if _, vy := fish.Speed(); vy != 100 {
		t.Errorf("expected vy 100 after hitting the top, got %v", vy)
	}
}

func TestRemovedItemHandle(t *testing.T) {
	aq := newTestAquarium(t)
	fish := NewStinkyFish(aq)
	castle := NewCastle(aq)
	aq.Add(fish)
	aq.Add(castle)
	x, y := fish.X(), fish.Y()

	aq.Remove(fish)
	aq.Clear()

	for _, item := range []Item{fish, castle} {
		if item.X() != 0 || item.Y() != 0 || item.Width() != 0 || item.Type() != "" {
			t.Errorf("dead %T should read zero values, got (%v, %v) width %v type %q",
				item, item.X(), item.Y(), item.Width(), item.Type())
		}
		item.SetLocation(5, 5)
		item.SetMirror(true)
		item.Update(1)
		if item.HitTest(0, 0) || item.HitTest(x, y) || item.Mirrored() {
			t.Errorf("dead %T should not hit or mirror", item)
		}
	}

	fish.SetSpeed(1, 1)
	if vx, vy := fish.Speed(); vx != 0 || vy != 0 {
		t.Errorf("dead fish speed = (%v, %v), want (0, 0)", vx, vy)
	}

	// A fresh item reusing the freed state is unaffected by the old handles
	next := NewBetaFish(aq)
	aq.Add(next)
	fish.SetLocation(900, 900)
	assertAt(t, next, 200, 200)
}
