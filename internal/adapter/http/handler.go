package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"citypulse/internal/adapter/metrics/inmemory"
	"citypulse/internal/app/availability"
	"citypulse/internal/app/ports"
	"citypulse/internal/app/resident"
	"citypulse/internal/app/worktime"
	"citypulse/internal/domain/building"
	"citypulse/internal/domain/citizen"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

var errInvalidID = errors.New("invalid id")

type Handler struct {
	Schedules    ports.ScheduleRepository
	ResidentUC   resident.UseCase
	Availability availability.Policy
	WorkTimes    worktime.Registry
	Buildings    ports.BuildingProvider
	KPI          *inmemory.Recorder
}

func (h Handler) RegisterRoutes(s *server.Hertz) {
	api := s.Group("/api")
	api.GET("/citizens/:id/schedule", h.citizenSchedule)
	api.POST("/citizens/:id/vacation", h.startVacation)
	api.GET("/buildings/:id/status", h.buildingStatus)
	api.GET("/buildings/:id/worktime", h.getWorkTime)
	api.PUT("/buildings/:id/worktime", h.setWorkTime)
	api.DELETE("/buildings/:id/worktime", h.removeWorkTime)

	s.GET("/ops/kpi", h.kpi)
}

type scheduleResponse struct {
	CitizenID        uint32     `json:"citizen_id"`
	CurrentState     string     `json:"current_state"`
	ScheduledState   string     `json:"scheduled_state"`
	ScheduledAt      *time.Time `json:"scheduled_at,omitempty"`
	WorkShift        uint8      `json:"work_shift"`
	SchoolClass      uint8      `json:"school_class"`
	WorksOnWeekends  bool       `json:"works_on_weekends"`
	WorkBuilding     uint32     `json:"work_building"`
	SchoolBuilding   uint32     `json:"school_building"`
	EventBuilding    uint32     `json:"event_building,omitempty"`
	TravelTimeToWork float64    `json:"travel_time_to_work"`
	WorkStatus       uint8      `json:"work_status"`
	SchoolStatus     uint8      `json:"school_status"`
	VacationDaysLeft uint8      `json:"vacation_days_left"`
}

type vacationRequest struct {
	Days uint8 `json:"days"`
}

type buildingStatusResponse struct {
	BuildingID          uint32           `json:"building_id"`
	Working             bool             `json:"working"`
	EntertainmentTarget bool             `json:"entertainment_target"`
	ShoppingTarget      bool             `json:"shopping_target"`
	WorkTime            workTimeDocument `json:"work_time"`
	Configured          bool             `json:"configured"`
}

type workTimeDocument struct {
	WorkAtNight            bool  `json:"work_at_night"`
	WorkAtWeekends         bool  `json:"work_at_weekends"`
	HasExtendedWorkShift   bool  `json:"has_extended_work_shift"`
	HasContinuousWorkShift bool  `json:"has_continuous_work_shift"`
	WorkShifts             uint8 `json:"work_shifts"`
}

func (h Handler) citizenSchedule(_ context.Context, ctx *app.RequestContext) {
	id, err := parseID(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}
	s, err := h.Schedules.Get(citizen.ID(id))
	if err != nil {
		writeError(ctx, err)
		return
	}
	resp := scheduleResponse{
		CitizenID:        id,
		CurrentState:     s.CurrentState.String(),
		ScheduledState:   s.ScheduledState.String(),
		WorkShift:        uint8(s.WorkShift),
		SchoolClass:      uint8(s.SchoolClass),
		WorksOnWeekends:  s.WorksOnWeekends,
		WorkBuilding:     uint32(s.WorkBuilding),
		SchoolBuilding:   uint32(s.SchoolBuilding),
		EventBuilding:    uint32(s.EventBuilding),
		TravelTimeToWork: s.TravelTimeToWork,
		WorkStatus:       uint8(s.WorkStatus),
		SchoolStatus:     uint8(s.SchoolStatus),
		VacationDaysLeft: s.VacationDaysLeft,
	}
	if !s.ScheduledStateTime.IsZero() {
		at := s.ScheduledStateTime
		resp.ScheduledAt = &at
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) startVacation(_ context.Context, ctx *app.RequestContext) {
	id, err := parseID(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}
	var body vacationRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	if body.Days == 0 {
		writeErrorBody(ctx, consts.StatusBadRequest, "bad_request", "days must be positive")
		return
	}
	if err := h.ResidentUC.StartVacation(citizen.ID(id), body.Days); err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, map[string]any{"citizen_id": id, "vacation_days": body.Days})
}

func (h Handler) buildingStatus(_ context.Context, ctx *app.RequestContext) {
	id, err := parseID(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}
	bid := building.ID(id)
	if _, err := h.Buildings.Info(bid); err != nil {
		writeError(ctx, err)
		return
	}
	resp := buildingStatusResponse{
		BuildingID:          id,
		Working:             h.Availability.IsBuildingWorking(bid),
		EntertainmentTarget: h.Availability.IsEntertainmentTarget(bid),
		ShoppingTarget:      h.Availability.IsShoppingTarget(bid),
		Configured:          h.WorkTimes.Exists(bid),
	}
	resp.WorkTime = toWorkTimeDocument(h.WorkTimes.Get(bid))
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) getWorkTime(_ context.Context, ctx *app.RequestContext) {
	id, err := parseID(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}
	bid := building.ID(id)
	if !h.WorkTimes.Exists(bid) {
		writeError(ctx, ports.ErrNotFound)
		return
	}
	ctx.JSON(consts.StatusOK, toWorkTimeDocument(h.WorkTimes.Get(bid)))
}

func (h Handler) setWorkTime(_ context.Context, ctx *app.RequestContext) {
	id, err := parseID(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}
	var body workTimeDocument
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	if body.WorkShifts < 1 || body.WorkShifts > 3 {
		writeErrorBody(ctx, consts.StatusBadRequest, "bad_request", "work_shifts must be 1..3")
		return
	}
	h.WorkTimes.Set(building.ID(id), building.WorkTime{
		WorkAtNight:            body.WorkAtNight,
		WorkAtWeekends:         body.WorkAtWeekends,
		HasExtendedWorkShift:   body.HasExtendedWorkShift,
		HasContinuousWorkShift: body.HasContinuousWorkShift,
		WorkShifts:             body.WorkShifts,
	})
	ctx.JSON(consts.StatusOK, body)
}

func (h Handler) removeWorkTime(_ context.Context, ctx *app.RequestContext) {
	id, err := parseID(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}
	h.WorkTimes.Remove(building.ID(id))
	ctx.SetStatusCode(consts.StatusNoContent)
}

func (h Handler) kpi(_ context.Context, ctx *app.RequestContext) {
	if h.KPI == nil {
		writeErrorBody(ctx, consts.StatusNotFound, "not_configured", "kpi recorder not configured")
		return
	}
	ctx.JSON(consts.StatusOK, h.KPI.Snapshot())
}

func toWorkTimeDocument(wt building.WorkTime) workTimeDocument {
	return workTimeDocument{
		WorkAtNight:            wt.WorkAtNight,
		WorkAtWeekends:         wt.WorkAtWeekends,
		HasExtendedWorkShift:   wt.HasExtendedWorkShift,
		HasContinuousWorkShift: wt.HasContinuousWorkShift,
		WorkShifts:             wt.WorkShifts,
	}
}

func parseID(ctx *app.RequestContext) (uint32, error) {
	raw := ctx.Param("id")
	v, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || v == 0 {
		return 0, errInvalidID
	}
	return uint32(v), nil
}

func decodeJSON(ctx *app.RequestContext, out any) error {
	body := ctx.Request.Body()
	if len(body) == 0 {
		return nil
	}
	return json.Unmarshal(body, out)
}

func writeError(ctx *app.RequestContext, err error) {
	switch {
	case errors.Is(err, errInvalidID), errors.Is(err, ports.ErrBadCitizenID):
		writeErrorBody(ctx, consts.StatusBadRequest, "bad_request", err.Error())
	case errors.Is(err, ports.ErrNotFound):
		writeErrorBody(ctx, consts.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, ports.ErrConflict):
		writeErrorBody(ctx, consts.StatusConflict, "conflict", err.Error())
	default:
		writeErrorBody(ctx, consts.StatusInternalServerError, "internal_error", "internal error")
	}
}

func writeErrorBody(ctx *app.RequestContext, status int, code, message string) {
	ctx.JSON(status, map[string]any{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	})
}
