package schedule

import (
	"time"

	"kafe-backend/internal/models"

	"gorm.io/gorm"
)

// Overlaps: İki zaman aralığının kesişip kesişmediğini söyler.
// Sadece uç noktaları paylaşan aralıklar (a.end == b.start) kesişmez,
// biri diğerini tamamen kapsıyorsa kesişir.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// hasConflict: Personelin önerilen aralıkla kesişen vardiyası var mı?
func hasConflict(db *gorm.DB, userID uint, start, end time.Time) (bool, error) {
	var count int64
	err := db.Model(&models.Schedule{}).
		Where("user_id = ? AND start_time < ? AND end_time > ?", userID, end, start).
		Count(&count).Error
	return count > 0, err
}
