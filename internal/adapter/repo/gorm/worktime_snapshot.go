package gormrepo

import (
	"context"

	"gorm.io/gorm"

	"citypulse/internal/domain/building"
)

// WorkTimeSnapshot persists the full operating-hours table. Snapshots are
// replace-all: the table mirrors the in-memory registry after every save.
type WorkTimeSnapshot struct {
	db *gorm.DB
}

func NewWorkTimeSnapshot(db *gorm.DB) WorkTimeSnapshot {
	return WorkTimeSnapshot{db: db}
}

func (s WorkTimeSnapshot) SaveAll(ctx context.Context, entries map[building.ID]building.WorkTime) error {
	rows := make([]WorkTimeRow, 0, len(entries))
	for id, wt := range entries {
		rows = append(rows, WorkTimeRow{
			BuildingID:             uint32(id),
			WorkAtNight:            wt.WorkAtNight,
			WorkAtWeekends:         wt.WorkAtWeekends,
			HasExtendedWorkShift:   wt.HasExtendedWorkShift,
			HasContinuousWorkShift: wt.HasContinuousWorkShift,
			WorkShifts:             wt.WorkShifts,
		})
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&WorkTimeRow{}).Error; err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.CreateInBatches(rows, 500).Error
	})
}

func (s WorkTimeSnapshot) LoadAll(ctx context.Context) (map[building.ID]building.WorkTime, error) {
	var rows []WorkTimeRow
	if err := s.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make(map[building.ID]building.WorkTime, len(rows))
	for _, row := range rows {
		out[building.ID(row.BuildingID)] = building.WorkTime{
			WorkAtNight:            row.WorkAtNight,
			WorkAtWeekends:         row.WorkAtWeekends,
			HasExtendedWorkShift:   row.HasExtendedWorkShift,
			HasContinuousWorkShift: row.HasContinuousWorkShift,
			WorkShifts:             row.WorkShifts,
		}
	}
	return out, nil
}
