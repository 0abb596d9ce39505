package behavior

import (
	"citypulse/internal/app/ports"
	"citypulse/internal/domain/citizen"
)

// WorkBehavior decides work-related transitions for a citizen. Standard
// implementations are stateless between simulated days; BeginNewDay resets
// whatever a day of scheduling accumulated.
type WorkBehavior interface {
	BeginNewDay()
	ShouldGoToWork(s *citizen.Schedule, info ports.CitizenInfo) bool
	ScheduleGoToWork(s *citizen.Schedule, info ports.CitizenInfo) bool
	UpdateWorkShift(s *citizen.Schedule, age citizen.Age)
	ScheduleLunch(id citizen.ID, s *citizen.Schedule, age citizen.Age) bool
	ScheduleReturnFromLunch(s *citizen.Schedule)
	ScheduleReturnFromWork(s *citizen.Schedule)
}

// SchoolBehavior mirrors WorkBehavior for students.
type SchoolBehavior interface {
	BeginNewDay()
	ShouldGoToSchool(s *citizen.Schedule, info ports.CitizenInfo) bool
	ScheduleGoToSchool(s *citizen.Schedule, info ports.CitizenInfo) bool
	UpdateSchoolClass(s *citizen.Schedule, age citizen.Age)
	ScheduleLunch(id citizen.ID, s *citizen.Schedule, age citizen.Age) bool
	ScheduleReturnFromLunch(s *citizen.Schedule)
	ScheduleReturnFromSchool(s *citizen.Schedule)
}

// SpareTimeBehavior supplies the chance-out-of-100 values the orchestrator
// rolls against when a citizen has no work or school obligation.
type SpareTimeBehavior interface {
	BeginNewDay()
	ShoppingChance(age citizen.Age) uint32
	RelaxingChance(age citizen.Age, shift citizen.WorkShift) uint32
	BusinessChance(age citizen.Age) uint32
}
