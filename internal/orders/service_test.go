package orders

import (
	"reflect"
	"testing"

	"kafe-backend/internal/models"
)

func TestOrderAmount(t *testing.T) {
	products := []models.Product{
		{ID: 1, Price: 120.50},
		{ID: 2, Price: 85},
		{ID: 3, Price: 60.25},
	}
	if got := orderAmount(products); got != 265.75 {
		t.Errorf("tutar 265.75 bekleniyordu, %v geldi", got)
	}
	if got := orderAmount(nil); got != 0 {
		t.Errorf("boş sipariş için 0 bekleniyordu, %v geldi", got)
	}
}

func TestDedupe(t *testing.T) {
	tests := []struct {
		name string
		in   []uint
		want []uint
	}{
		{name: "tekrar eden id'ler atılır", in: []uint{3, 1, 3, 2, 1}, want: []uint{1, 2, 3}},
		{name: "sıralı döner", in: []uint{9, 4, 7}, want: []uint{4, 7, 9}},
		{name: "boş liste", in: nil, want: []uint{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := dedupe(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("%v bekleniyordu, %v geldi", tt.want, got)
			}
		})
	}
}
