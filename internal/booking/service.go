package booking

import (
	"errors"
	"sort"

	"kafe-backend/internal/models"
)

var ErrInsufficientCapacity = errors.New("uygun masa kapasitesi yetersiz")

// AssignTables: Müsait masalardan misafir sayısını karşılayacak kadarını
// seçer. En küçük masalar önce atanır; toplam kapasite misafir sayısını
// karşılamıyorsa rezervasyon reddedilir.
func AssignTables(candidates []models.Table, guests uint) ([]models.Table, error) {
	sorted := make([]models.Table, len(candidates))
	copy(sorted, candidates)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].MaxSeats != sorted[j].MaxSeats {
			return sorted[i].MaxSeats < sorted[j].MaxSeats
		}
		return sorted[i].Number < sorted[j].Number
	})

	assigned := make([]models.Table, 0, len(sorted))
	var capacity uint
	for _, t := range sorted {
		if capacity >= guests {
			break
		}
		assigned = append(assigned, t)
		capacity += t.MaxSeats
	}

	if capacity < guests {
		return nil, ErrInsufficientCapacity
	}
	return assigned, nil
}
