package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"citypulse/config"
	simclock "citypulse/internal/adapter/clock/sim"
	mqttevents "citypulse/internal/adapter/events/mqtt"
	noopevents "citypulse/internal/adapter/events/noop"
	httpadapter "citypulse/internal/adapter/http"
	influxmetrics "citypulse/internal/adapter/metrics/influx"
	metricsinmem "citypulse/internal/adapter/metrics/inmemory"
	"citypulse/internal/adapter/random"
	gormrepo "citypulse/internal/adapter/repo/gorm"
	"citypulse/internal/adapter/repo/memory"
	"citypulse/internal/adapter/world/demo"
	"citypulse/internal/app/availability"
	"citypulse/internal/app/behavior"
	"citypulse/internal/app/ports"
	"citypulse/internal/app/resident"
	"citypulse/internal/app/worktime"
	"citypulse/internal/domain/building"
	"citypulse/internal/domain/citizen"

	"github.com/cloudwego/hertz/pkg/app/server"
)

func main() {
	cfg := mustLoadConfig()

	store := memory.NewStore()
	workTimeRepo := memory.NewWorkTimeRepo(store)
	scheduleRepo := memory.NewScheduleRepo(store)
	burnTimeRepo := memory.NewBurnTimeRepo(store)

	clock := simclock.New(cfg.Simulation)
	rng := random.NewSource(seedFromEnv())

	city := demo.NewCity()
	demo.SeedTown(city)
	city.Schedules = scheduleRepo

	registry := worktime.Registry{
		Repo: workTimeRepo,
		Rand: rng,
		Quotas: building.ShiftQuotas{
			OpenLowCommercialAtNight:    cfg.Quotas.OpenLowCommercialAtNight,
			OpenLowCommercialAtWeekends: cfg.Quotas.OpenLowCommercialAtWeekends,
		},
	}

	work := &behavior.StandardWork{
		Cfg:       cfg,
		Clock:     clock,
		Rand:      rng,
		WorkTimes: registry,
		Buildings: city,
		Travel:    city,
	}
	school := &behavior.StandardSchool{
		Cfg:       cfg,
		Clock:     clock,
		Rand:      rng,
		Buildings: city,
		Travel:    city,
	}

	kpi := metricsinmem.NewRecorder()
	metrics, closeMetrics := buildMetrics(cfg, kpi)
	defer closeMetrics()

	events, closeEvents := buildEvents(cfg)
	defer closeEvents()

	uc := resident.UseCase{
		Cfg:       cfg,
		Clock:     clock,
		Rand:      rng,
		Schedules: scheduleRepo,
		Citizens:  city.Citizens(),
		Buildings: city,
		Workforce: city,
		Movement:  city,
		Finder:    city,
		WorkTimes: registry,
		Work:      work,
		School:    school,
		Spare:     behavior.StandardSpareTime{},
		Metrics:   metrics,
		Events:    events,
	}

	sweeper := resident.Sweeper{
		Cfg:       resident.SweeperConfig{Steps: cfg.Simulation.SweepSteps},
		Clock:     clock,
		WorkTimes: workTimeRepo,
		BurnTimes: burnTimeRepo,
		Buildings: city,
	}

	saveSnapshots := setupSnapshots(cfg, store, clock, workTimeRepo, scheduleRepo, work, registry, city)
	defer saveSnapshots()

	// Arrivals queue up during a tick round and settle afterwards, so the
	// round's own repo writes never clobber an arrival.
	arrivals := make(chan citizen.ID, 1024)
	city.OnArrive = func(id citizen.ID) {
		select {
		case arrivals <- id:
		default:
			log.Printf("arrival queue full, dropping citizen %d", id)
		}
	}

	stop := make(chan struct{})
	go runTickLoop(cfg, clock, uc, sweeper, city, arrivals, stop)

	h := httpadapter.Handler{
		Schedules:  scheduleRepo,
		ResidentUC: uc,
		Availability: availability.Policy{
			Cfg:       cfg,
			Clock:     clock,
			WorkTimes: registry,
			Buildings: city,
		},
		WorkTimes: registry,
		Buildings: city,
		KPI:       kpi,
	}

	s := server.Default(server.WithHostPorts(fmt.Sprintf(":%d", cfg.Server.Port)))
	s.Use(httpadapter.Middleware(cfg.Server)...)
	h.RegisterRoutes(s)

	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig
		close(stop)
		saveSnapshots()
		_ = s.Shutdown(context.Background())
	}()

	log.Printf("citypulse server listening on :%d (%d seeded citizens)", cfg.Server.Port, len(city.CitizenIDs()))
	s.Spin()
}

// runTickLoop drives the demo town: one wall tick per simulation cycle,
// citizen processing, the building sweep slice, day rollover, and the
// deferred arrival settlement.
func runTickLoop(cfg *config.Config, clock ports.TimeProvider, uc resident.UseCase, sweeper resident.Sweeper, city *demo.City, arrivals <-chan citizen.ID, stop <-chan struct{}) {
	scale := cfg.Simulation.TimeScale
	if scale <= 0 {
		scale = 1
	}
	wallCycle := time.Duration(cfg.Simulation.CycleHours * 3600 / scale * float64(time.Second))
	if wallCycle < 10*time.Millisecond {
		wallCycle = 10 * time.Millisecond
	}
	ticker := time.NewTicker(wallCycle)
	defer ticker.Stop()

	ctx := context.Background()
	var frame uint32
	lastDay := clock.Now().YearDay()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
		}

		if day := clock.Now().YearDay(); day != lastDay {
			lastDay = day
			uc.BeginNewDay()
		}

		for _, id := range city.CitizenIDs() {
			if err := uc.ProcessTick(ctx, id); err != nil {
				log.Printf("tick citizen %d: %v", id, err)
			}
		}
		sweeper.Sweep(frame)
		frame++

		settleArrivals(ctx, uc, arrivals)
	}
}

func settleArrivals(ctx context.Context, uc resident.UseCase, arrivals <-chan citizen.ID) {
	for {
		select {
		case id := <-arrivals:
			if err := uc.RegisterCitizenArrival(ctx, id); err != nil {
				log.Printf("arrival citizen %d: %v", id, err)
			}
		default:
			return
		}
	}
}

// setupSnapshots loads persisted worktimes and schedules when a database is
// configured and returns the save hook. Without a DSN it is a no-op.
func setupSnapshots(cfg *config.Config, store *memory.Store, clock ports.TimeProvider, workTimeRepo memory.WorkTimeRepo, scheduleRepo memory.ScheduleRepo, work *behavior.StandardWork, registry worktime.Registry, city *demo.City) func() {
	if cfg.Database.DSN == "" {
		return func() {}
	}
	db, err := gormrepo.Open(cfg.Database)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	if err := gormrepo.Migrate(db); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	workTimeSnap := gormrepo.NewWorkTimeSnapshot(db)
	scheduleSnap := gormrepo.NewScheduleSnapshot(db, cfg.Hours.MaxTravelTime)
	ctx := context.Background()

	resolve := snapshotResolver(cfg, city, registry, work)

	if entries, err := workTimeSnap.LoadAll(ctx); err != nil {
		log.Printf("load worktime snapshot: %v", err)
	} else {
		for id, wt := range entries {
			store.SeedWorkTime(id, wt)
		}
	}
	if entries, err := scheduleSnap.LoadAll(ctx, clock.Now(), resolve); err != nil {
		log.Printf("load schedule snapshot: %v", err)
	} else {
		for id, sched := range entries {
			store.SeedSchedule(id, sched)
		}
	}

	return func() {
		if err := workTimeSnap.SaveAll(ctx, workTimeRepo.All()); err != nil {
			log.Printf("save worktime snapshot: %v", err)
		}
		if err := scheduleSnap.SaveAll(ctx, clock.Now(), scheduleRepo.All()); err != nil {
			log.Printf("save schedule snapshot: %v", err)
		}
	}
}

// snapshotResolver re-derives the schedule fields the stored record does not
// carry: shift and class hours, the weekend flag, and the event assignment.
func snapshotResolver(cfg *config.Config, city *demo.City, registry worktime.Registry, work *behavior.StandardWork) citizen.HoursResolver {
	return func(s *citizen.Schedule) {
		if s.WorkBuilding != 0 && s.WorkShift != citizen.ShiftUnemployed {
			if s.WorkShift == citizen.ShiftEvent {
				s.EventBuilding = s.WorkBuilding
				s.WorksOnWeekends = true
				if start, end, ok := city.EventHours(s.WorkBuilding); ok {
					s.WorkShiftStartHour, s.WorkShiftEndHour = start, end
				}
			} else if info, err := city.Info(s.WorkBuilding); err == nil {
				wt := registry.Create(s.WorkBuilding, info.Category)
				s.WorksOnWeekends = wt.WorkAtWeekends
				s.WorkShiftStartHour, s.WorkShiftEndHour = work.ShiftHours(s.WorkShift, wt, info.Category)
			}
		}
		switch s.SchoolClass {
		case citizen.ClassDay:
			s.SchoolClassStartHour, s.SchoolClassEndHour = cfg.Hours.SchoolBegin, cfg.Hours.SchoolEnd
		case citizen.ClassNight:
			s.SchoolClassStartHour, s.SchoolClassEndHour = behavior.NightClassStartHour, behavior.NightClassEndHour
		}
	}
}

func buildMetrics(cfg *config.Config, kpi *metricsinmem.Recorder) (ports.TickMetrics, func()) {
	if !cfg.Metrics.Enabled {
		return kpi, func() {}
	}
	w, err := influxmetrics.Connect(cfg.Metrics)
	if err != nil {
		log.Printf("influx disabled: %v", err)
		return kpi, func() {}
	}
	return multiMetrics{kpi, w}, w.Close
}

func buildEvents(cfg *config.Config) (ports.EventSink, func()) {
	if !cfg.Events.Enabled {
		return noopevents.Sink{}, func() {}
	}
	p, err := mqttevents.Connect(cfg.Events)
	if err != nil {
		log.Printf("mqtt disabled: %v", err)
		return noopevents.Sink{}, func() {}
	}
	return p, p.Close
}

// multiMetrics fans every sample out to each sink.
type multiMetrics []ports.TickMetrics

func (m multiMetrics) RecordTransition(state citizen.ResidentState) {
	for _, sink := range m {
		sink.RecordTransition(state)
	}
}

func (m multiMetrics) RecordMoveFailure() {
	for _, sink := range m {
		sink.RecordMoveFailure()
	}
}

func (m multiMetrics) RecordRedirect() {
	for _, sink := range m {
		sink.RecordRedirect()
	}
}

func mustLoadConfig() *config.Config {
	path := strings.TrimSpace(os.Getenv("CITYPULSE_CONFIG"))
	if path == "" {
		return config.Default()
	}
	cfg, err := config.Load(path)
	if err != nil {
		log.Fatalf("load config %s: %v", path, err)
	}
	return cfg
}

func seedFromEnv() int64 {
	raw := strings.TrimSpace(os.Getenv("CITYPULSE_SEED"))
	if raw == "" {
		return time.Now().UnixNano()
	}
	seed, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		log.Fatalf("parse CITYPULSE_SEED: %v", err)
	}
	return seed
}
