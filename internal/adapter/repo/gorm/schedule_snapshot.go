package gormrepo

import (
	"context"
	"time"

	"gorm.io/gorm"

	"citypulse/internal/domain/building"
	"citypulse/internal/domain/citizen"
)

// ScheduleSnapshot persists citizen schedules in their compact 8-byte wire
// form, relative to the reference time passed by the caller.
type ScheduleSnapshot struct {
	db *gorm.DB

	// maxTravelTime must match between save and load; it scales the travel
	// bytes of the record.
	maxTravelTime float64
}

func NewScheduleSnapshot(db *gorm.DB, maxTravelTime float64) ScheduleSnapshot {
	return ScheduleSnapshot{db: db, maxTravelTime: maxTravelTime}
}

func (s ScheduleSnapshot) SaveAll(ctx context.Context, ref time.Time, entries map[citizen.ID]citizen.Schedule) error {
	rows := make([]ScheduleRow, 0, len(entries))
	for id, sched := range entries {
		record := sched.MarshalRecord(ref, s.maxTravelTime)
		rows = append(rows, ScheduleRow{
			CitizenID:      uint32(id),
			WorkBuilding:   uint32(sched.WorkBuilding),
			SchoolBuilding: uint32(sched.SchoolBuilding),
			Record:         record[:],
		})
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&ScheduleRow{}).Error; err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.CreateInBatches(rows, 500).Error
	})
}

func (s ScheduleSnapshot) LoadAll(ctx context.Context, ref time.Time, resolve citizen.HoursResolver) (map[citizen.ID]citizen.Schedule, error) {
	var rows []ScheduleRow
	if err := s.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make(map[citizen.ID]citizen.Schedule, len(rows))
	for _, row := range rows {
		if len(row.Record) != citizen.RecordSize {
			continue // corrupt row; the citizen restarts from scratch
		}
		var record [citizen.RecordSize]byte
		copy(record[:], row.Record)
		sched := citizen.UnmarshalRecord(record, ref, building.ID(row.WorkBuilding), s.maxTravelTime, resolve)
		sched.SchoolBuilding = building.ID(row.SchoolBuilding)
		out[citizen.ID(row.CitizenID)] = sched
	}
	return out, nil
}
