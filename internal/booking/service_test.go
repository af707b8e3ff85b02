package booking

import (
	"errors"
	"testing"

	"kafe-backend/internal/models"
)

func tableNumbers(tables []models.Table) []uint {
	out := make([]uint, len(tables))
	for i, t := range tables {
		out[i] = t.Number
	}
	return out
}

func TestAssignTablesSmallestFirst(t *testing.T) {
	candidates := []models.Table{
		{ID: 1, Number: 1, MaxSeats: 6},
		{ID: 2, Number: 2, MaxSeats: 2},
		{ID: 3, Number: 3, MaxSeats: 4},
	}

	assigned, err := AssignTables(candidates, 5)
	if err != nil {
		t.Fatalf("beklenmeyen hata: %v", err)
	}

	// 2 kişilik + 4 kişilik = 6 >= 5, büyük masa boşta kalır
	got := tableNumbers(assigned)
	if len(got) != 2 || got[0] != 2 || got[1] != 3 {
		t.Errorf("masa [2 3] bekleniyordu, %v geldi", got)
	}
}

func TestAssignTablesSingleTableEnough(t *testing.T) {
	candidates := []models.Table{
		{ID: 1, Number: 1, MaxSeats: 4},
		{ID: 2, Number: 2, MaxSeats: 8},
	}

	assigned, err := AssignTables(candidates, 3)
	if err != nil {
		t.Fatalf("beklenmeyen hata: %v", err)
	}
	if len(assigned) != 1 || assigned[0].Number != 1 {
		t.Errorf("sadece 1 numaralı masa bekleniyordu, %v geldi", tableNumbers(assigned))
	}
}

func TestAssignTablesInsufficientCapacity(t *testing.T) {
	candidates := []models.Table{
		{ID: 1, Number: 1, MaxSeats: 2},
		{ID: 2, Number: 2, MaxSeats: 1},
	}

	_, err := AssignTables(candidates, 4)
	if !errors.Is(err, ErrInsufficientCapacity) {
		t.Errorf("ErrInsufficientCapacity bekleniyordu, %v geldi", err)
	}

	_, err = AssignTables(nil, 1)
	if !errors.Is(err, ErrInsufficientCapacity) {
		t.Errorf("müsait masa yokken ErrInsufficientCapacity bekleniyordu, %v geldi", err)
	}
}

func TestAssignTablesEqualSeatsOrderedByNumber(t *testing.T) {
	candidates := []models.Table{
		{ID: 1, Number: 5, MaxSeats: 2},
		{ID: 2, Number: 3, MaxSeats: 2},
	}

	assigned, err := AssignTables(candidates, 2)
	if err != nil {
		t.Fatalf("beklenmeyen hata: %v", err)
	}
	if len(assigned) != 1 || assigned[0].Number != 3 {
		t.Errorf("düşük numaralı masa bekleniyordu, %v geldi", tableNumbers(assigned))
	}
}
