package storage

import (
	"testing"

	"kafe-backend/internal/models"
)

func TestRequirements(t *testing.T) {
	// Latte ve cappuccino aynı sütü paylaşıyor, miktarlar toplanmalı
	products := []models.Product{
		{
			ID: 1,
			Recipe: []models.ProductIngredient{
				{IngredientID: 10, Amount: 200}, // süt
				{IngredientID: 11, Amount: 18},  // espresso çekirdeği
			},
		},
		{
			ID: 2,
			Recipe: []models.ProductIngredient{
				{IngredientID: 10, Amount: 150},
				{IngredientID: 12, Amount: 5},
			},
		},
	}

	required := Requirements(products)

	if len(required) != 3 {
		t.Fatalf("3 malzeme bekleniyordu, %d geldi", len(required))
	}
	if required[10] != 350 {
		t.Errorf("malzeme 10 için 350 bekleniyordu, %v geldi", required[10])
	}
	if required[11] != 18 {
		t.Errorf("malzeme 11 için 18 bekleniyordu, %v geldi", required[11])
	}
	if required[12] != 5 {
		t.Errorf("malzeme 12 için 5 bekleniyordu, %v geldi", required[12])
	}
}

func TestRequirementsEmpty(t *testing.T) {
	if got := Requirements(nil); len(got) != 0 {
		t.Errorf("boş ürün listesi için boş map bekleniyordu, %v geldi", got)
	}
}

func TestCheckSufficiency(t *testing.T) {
	tests := []struct {
		name     string
		levels   map[uint]float64
		required map[uint]float64
		wantID   uint
		wantOK   bool
	}{
		{
			name:     "tüm malzemeler yeterli",
			levels:   map[uint]float64{10: 500, 11: 100},
			required: map[uint]float64{10: 350, 11: 18},
			wantOK:   true,
		},
		{
			name:     "tam sınırda yeterli",
			levels:   map[uint]float64{10: 350},
			required: map[uint]float64{10: 350},
			wantOK:   true,
		},
		{
			name:     "stok 5 varken 6 istenirse reddedilir",
			levels:   map[uint]float64{10: 5},
			required: map[uint]float64{10: 6},
			wantID:   10,
			wantOK:   false,
		},
		{
			name:     "stok satırı olmayan malzeme stoksuz sayılır",
			levels:   map[uint]float64{10: 500},
			required: map[uint]float64{10: 100, 11: 1},
			wantID:   11,
			wantOK:   false,
		},
		{
			name:     "sıfır gereksinim satırsız malzemede de yeterli",
			levels:   map[uint]float64{},
			required: map[uint]float64{10: 0},
			wantOK:   true,
		},
		{
			name:     "birden çok yetersizse en küçük id döner",
			levels:   map[uint]float64{},
			required: map[uint]float64{12: 1, 10: 1, 11: 1},
			wantID:   10,
			wantOK:   false,
		},
		{
			name:     "gereksinim yoksa her zaman yeterli",
			levels:   map[uint]float64{},
			required: map[uint]float64{},
			wantOK:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotID, gotOK := CheckSufficiency(tt.levels, tt.required)
			if gotOK != tt.wantOK {
				t.Fatalf("ok=%v bekleniyordu, %v geldi", tt.wantOK, gotOK)
			}
			if !tt.wantOK && gotID != tt.wantID {
				t.Errorf("yetersiz malzeme id=%d bekleniyordu, %d geldi", tt.wantID, gotID)
			}
		})
	}
}

func TestResolveDelta(t *testing.T) {
	tests := []struct {
		name       string
		current    float64
		found      bool
		delta      float64
		wantNext   float64
		wantCreate bool
		wantErr    bool
	}{
		{name: "satır yokken pozitif fark satır açar", found: false, delta: 10, wantNext: 10, wantCreate: true},
		{name: "satır yokken negatif fark hata", found: false, delta: -3, wantErr: true},
		{name: "mevcut satıra tedarik eklenir", current: 5, found: true, delta: 10, wantNext: 15},
		{name: "mevcut satırdan sipariş düşülür", current: 15, found: true, delta: -6, wantNext: 9},
		{name: "sıfır fark miktarı değiştirmez", current: 7, found: true, delta: 0, wantNext: 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, create, err := resolveDelta(tt.current, tt.found, tt.delta)
			if tt.wantErr {
				if err == nil {
					t.Fatal("hata bekleniyordu")
				}
				return
			}
			if err != nil {
				t.Fatalf("beklenmeyen hata: %v", err)
			}
			if next != tt.wantNext || create != tt.wantCreate {
				t.Errorf("next=%v create=%v bekleniyordu, next=%v create=%v geldi",
					tt.wantNext, tt.wantCreate, next, create)
			}
		})
	}
}

// Boş satıra a sonra b tedarik edilirse sonuç a+b olmalı.
func TestResolveDeltaSupplyAdditive(t *testing.T) {
	first, create, err := resolveDelta(0, false, 10)
	if err != nil || !create || first != 10 {
		t.Fatalf("ilk tedarik satır açıp 10 bırakmalıydı: next=%v create=%v err=%v", first, create, err)
	}

	second, create, err := resolveDelta(first, true, 5)
	if err != nil || create || second != 15 {
		t.Fatalf("ikinci tedarik 15 bırakmalıydı: next=%v create=%v err=%v", second, create, err)
	}
}

func TestInsufficientStockErrorMessage(t *testing.T) {
	err := &InsufficientStockError{IngredientName: "Süt"}
	want := "Bu ürünler için yeterli malzeme yok (Süt)"
	if err.Error() != want {
		t.Errorf("hata mesajı %q bekleniyordu, %q geldi", want, err.Error())
	}
}
