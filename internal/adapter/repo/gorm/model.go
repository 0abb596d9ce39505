package gormrepo

// WorkTimeRow is the persisted form of one building's operating hours.
type WorkTimeRow struct {
	BuildingID uint32 `gorm:"primaryKey"`

	WorkAtNight            bool
	WorkAtWeekends         bool
	HasExtendedWorkShift   bool
	HasContinuousWorkShift bool
	WorkShifts             uint8
}

func (WorkTimeRow) TableName() string { return "work_times" }

// ScheduleRow is the persisted form of one citizen's schedule: the fixed
// 8-byte record plus the building assignment that lives outside it.
type ScheduleRow struct {
	CitizenID      uint32 `gorm:"primaryKey"`
	WorkBuilding   uint32
	SchoolBuilding uint32
	Record         []byte `gorm:"size:8"`
}

func (ScheduleRow) TableName() string { return "schedules" }
