package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the full application configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Database   DatabaseConfig   `yaml:"database"`
	Simulation SimulationConfig `yaml:"simulation"`
	Hours      HoursConfig      `yaml:"hours"`
	Quotas     QuotasConfig     `yaml:"quotas"`
	Services   ServicesConfig   `yaml:"service_hours"`
	Metrics    MetricsConfig    `yaml:"metrics"`
	Events     EventsConfig     `yaml:"events"`
}

// ServerConfig holds the HTTP surface configuration.
type ServerConfig struct {
	Port            int     `yaml:"port"`
	RateLimitPerSec float64 `yaml:"rate_limit_per_sec"`
	RateLimitBurst  int     `yaml:"rate_limit_burst"`
	CacheTTLSeconds int     `yaml:"cache_ttl_seconds"`
}

// DatabaseConfig holds the snapshot store connection. An empty DSN keeps the
// engine fully in memory.
type DatabaseConfig struct {
	Driver string `yaml:"driver"` // "postgres" or "sqlite"
	DSN    string `yaml:"dsn"`
}

// SimulationConfig controls the sim clock and the per-frame work partition.
type SimulationConfig struct {
	// EpochUnix is the simulated calendar origin.
	EpochUnix int64 `yaml:"epoch_unix"`
	// TimeScale is how many simulated seconds pass per wall second.
	TimeScale float64 `yaml:"time_scale"`
	// CycleHours is the duration of one simulation cycle in simulated hours;
	// departures are padded by one cycle so citizens are never late by a
	// scheduling quantum.
	CycleHours float64 `yaml:"cycle_hours"`
	// SweepSteps is the frame-index modulus for the building sweep.
	SweepSteps uint32 `yaml:"sweep_steps"`
}

// HoursConfig carries all hour-of-day bounds, as floats in [0,24).
type HoursConfig struct {
	WakeUp         float64 `yaml:"wake_up"`
	GoToSleep      float64 `yaml:"go_to_sleep"`
	EarliestWakeUp float64 `yaml:"earliest_wake_up"`
	WorkBegin      float64 `yaml:"work_begin"`
	WorkEnd        float64 `yaml:"work_end"`
	SchoolBegin    float64 `yaml:"school_begin"`
	SchoolEnd      float64 `yaml:"school_end"`
	LunchBegin     float64 `yaml:"lunch_begin"`
	LunchEnd       float64 `yaml:"lunch_end"`
	// MaxOvertime is the maximum random overtime after a shift, in hours.
	MaxOvertime float64 `yaml:"max_overtime"`
	// MaxTravelTime caps any single travel sample, in hours.
	MaxTravelTime float64 `yaml:"max_travel_time"`
}

// QuotasConfig carries all percentage thresholds for randomized decisions.
type QuotasConfig struct {
	SecondShift                 uint32 `yaml:"second_shift"`
	NightShift                  uint32 `yaml:"night_shift"`
	UniversityNightClass        uint32 `yaml:"university_night_class"`
	Lunch                       uint32 `yaml:"lunch"`
	OnTime                      uint32 `yaml:"on_time"`
	OpenLowCommercialAtNight    uint32 `yaml:"open_low_commercial_at_night"`
	OpenLowCommercialAtWeekends uint32 `yaml:"open_low_commercial_at_weekends"`

	WeekendsEnabled  bool `yaml:"weekends_enabled"`
	LunchTimeEnabled bool `yaml:"lunch_time_enabled"`
	WorkforceMatters bool `yaml:"workforce_matters"`
}

// Window is a wrap-aware [begin,end) hour pair. begin == end means the
// service runs around the clock.
type Window struct {
	Begin float64 `yaml:"begin"`
	End   float64 `yaml:"end"`
}

// ClassWindows holds one window per building class.
type ClassWindows struct {
	Residential Window `yaml:"residential"`
	Commercial  Window `yaml:"commercial"`
	Industrial  Window `yaml:"industrial"`
	Office      Window `yaml:"office"`
}

// ServicesConfig holds per-service, per-building-class operating windows.
type ServicesConfig struct {
	Garbage         ClassWindows `yaml:"garbage"`
	Mail            ClassWindows `yaml:"mail"`
	ParkMaintenance ClassWindows `yaml:"park_maintenance"`
	RoadMaintenance ClassWindows `yaml:"road_maintenance"`
}

// MetricsConfig configures the optional InfluxDB KPI sink.
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled"`
	URL     string `yaml:"url"`
	Token   string `yaml:"token"`
	Org     string `yaml:"org"`
	Bucket  string `yaml:"bucket"`
}

// EventsConfig configures the optional MQTT transition publisher.
type EventsConfig struct {
	Enabled     bool   `yaml:"enabled"`
	BrokerURL   string `yaml:"broker_url"`
	ClientID    string `yaml:"client_id"`
	TopicPrefix string `yaml:"topic_prefix"`
	QoS         byte   `yaml:"qos"`
}

// Load reads the configuration from the given path and fills in defaults for
// unset values.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var cfg Config
	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	return &cfg, nil
}

// Default returns the built-in configuration used when no file is supplied.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Server.Port <= 0 {
		c.Server.Port = 8080
	}
	if c.Server.RateLimitPerSec <= 0 {
		c.Server.RateLimitPerSec = 20
	}
	if c.Server.RateLimitBurst <= 0 {
		c.Server.RateLimitBurst = 40
	}
	if c.Server.CacheTTLSeconds <= 0 {
		c.Server.CacheTTLSeconds = 5
	}

	if c.Simulation.TimeScale <= 0 {
		c.Simulation.TimeScale = 60 // one sim minute per wall second
	}
	if c.Simulation.CycleHours <= 0 {
		c.Simulation.CycleHours = 0.25
	}
	if c.Simulation.SweepSteps == 0 {
		c.Simulation.SweepSteps = 16
	}

	h := &c.Hours
	if h.WakeUp == 0 {
		h.WakeUp = 6
	}
	if h.GoToSleep == 0 {
		h.GoToSleep = 22
	}
	if h.EarliestWakeUp == 0 {
		h.EarliestWakeUp = 4
	}
	if h.WorkBegin == 0 {
		h.WorkBegin = 9
	}
	if h.WorkEnd == 0 {
		h.WorkEnd = 18
	}
	if h.SchoolBegin == 0 {
		h.SchoolBegin = 8
	}
	if h.SchoolEnd == 0 {
		h.SchoolEnd = 14
	}
	if h.LunchBegin == 0 {
		h.LunchBegin = 12
	}
	if h.LunchEnd == 0 {
		h.LunchEnd = 13
	}
	if h.MaxOvertime == 0 {
		h.MaxOvertime = 2
	}
	if h.MaxTravelTime == 0 {
		h.MaxTravelTime = 4
	}

	q := &c.Quotas
	if q.SecondShift == 0 {
		q.SecondShift = 25
	}
	if q.NightShift == 0 {
		q.NightShift = 13
	}
	if q.UniversityNightClass == 0 {
		q.UniversityNightClass = 25
	}
	if q.Lunch == 0 {
		q.Lunch = 80
	}
	if q.OnTime == 0 {
		q.OnTime = 80
	}
}
