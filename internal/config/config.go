package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds connection parameters shared by the rover binaries.
type Config struct {
	// SupervisorAddress is the gRPC address of the supervisor service.
	SupervisorAddress string `yaml:"supervisor_addr"`
	// ManeuverAddress is the gRPC address of the maneuver service.
	// When empty the supervisor hosts the maneuver service itself and
	// dials it over the loopback of its own listen port.
	ManeuverAddress string `yaml:"maneuver_addr"`
	// SensorListenAddress is the UDP address the supervisor listens on
	// for range scans.
	SensorListenAddress string `yaml:"sensor_listen"`
	// CommandSinkAddress is the UDP address motion commands are published
	// to. When empty, commands are written to the log instead.
	CommandSinkAddress string `yaml:"command_sink"`
	// Timeout is the duration for network operations and RPC calls.
	Timeout time.Duration `yaml:"timeout"`
	// Tuning holds the control-loop parameters.
	Tuning Tuning `yaml:"tuning"`
}

// Tuning groups the control-loop parameters of the supervisor and the
// maneuver executor. Zero values are replaced by defaults during validation,
// so partial configs are safe.
type Tuning struct {
	// TickPeriod is the velocity mixer period.
	TickPeriod time.Duration `yaml:"tick_period"`
	// DriveStep is the setpoint increment applied per drive nudge.
	DriveStep float64 `yaml:"drive_step"`
	// MinValidRange is the reading below which a sample is treated as a
	// sensor artifact (no return) rather than an obstacle.
	MinValidRange float64 `yaml:"min_valid_range"`
	// ZoneHalfWidth is the number of samples on each side of a zone center.
	ZoneHalfWidth int `yaml:"zone_half_width"`
	// ObstacleEnterDistance is the distance below which the gate blocks.
	ObstacleEnterDistance float64 `yaml:"obstacle_enter_distance"`
	// ObstacleClearDistance is the distance at or above which the gate clears.
	ObstacleClearDistance float64 `yaml:"obstacle_clear_distance"`
	// ManeuverCycles is the number of rotate-and-pause cycles per maneuver.
	ManeuverCycles int `yaml:"maneuver_cycles"`
	// ManeuverSubticks is the number of sub-ticks in each active phase.
	ManeuverSubticks int `yaml:"maneuver_subticks"`
	// ManeuverSubtickPeriod is the duration of one active-phase sub-tick.
	ManeuverSubtickPeriod time.Duration `yaml:"maneuver_subtick_period"`
	// ManeuverPausePeriod is the duration of the pause between cycles.
	ManeuverPausePeriod time.Duration `yaml:"maneuver_pause_period"`
	// ManeuverAngularRate is the angular rate commanded during active phases.
	ManeuverAngularRate float64 `yaml:"maneuver_angular_rate"`
}

const (
	// DefaultConfigFilename is the default filename for rover settings.
	DefaultConfigFilename = "rover-guard-settings.yaml"

	// DefaultTimeout is the default duration for network operations.
	DefaultTimeout = 5 * time.Second

	// DefaultSensorListenAddress is the default UDP address for range scans.
	DefaultSensorListenAddress = ":8940"

	// DefaultFilePermissions is the default file permission for config files.
	DefaultFilePermissions = 0o600

	// DefaultTickPeriod is the default velocity mixer period.
	DefaultTickPeriod = 100 * time.Millisecond

	// DefaultDriveStep is the default setpoint increment per drive nudge.
	DefaultDriveStep = 0.2

	// DefaultMinValidRange is the default lower bound for valid readings.
	DefaultMinValidRange = 0.1

	// DefaultZoneHalfWidth is the default half-width of each guard zone.
	DefaultZoneHalfWidth = 30

	// DefaultObstacleEnterDistance is the default blocking threshold.
	DefaultObstacleEnterDistance = 0.5

	// DefaultObstacleClearDistance is the default clearing threshold.
	DefaultObstacleClearDistance = 0.8

	// DefaultManeuverCycles is the default number of rotate-and-pause cycles.
	DefaultManeuverCycles = 8

	// DefaultManeuverSubticks is the default active-phase sub-tick count.
	DefaultManeuverSubticks = 15

	// DefaultManeuverSubtickPeriod is the default sub-tick duration.
	DefaultManeuverSubtickPeriod = 100 * time.Millisecond

	// DefaultManeuverPausePeriod is the default pause between cycles.
	DefaultManeuverPausePeriod = 200 * time.Millisecond

	// DefaultManeuverAngularRate is the default evasive angular rate.
	DefaultManeuverAngularRate = 0.6
)

var (
	// errConfigIsNotSet is returned when a nil configuration is provided.
	errConfigIsNotSet = errors.New("configuration is not set")
	// errSupervisorSocketRequired is returned when the supervisor address is missing.
	errSupervisorSocketRequired = errors.New("supervisor address must be provided")
	// errThresholdOrder is returned when the clear threshold does not exceed the enter threshold.
	errThresholdOrder = errors.New("obstacle clear distance must be greater than enter distance")
)

// Load reads configuration from the provided path and validates essential fields.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigFilename
	}

	contents, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read settings: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(contents, &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal settings: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Save writes the configuration to the provided path.
func Save(path string, cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if path == "" {
		path = DefaultConfigFilename
	}

	if err := Validate(cfg); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	// Restrict permissions.
	if err := os.WriteFile(filepath.Clean(path), data, DefaultFilePermissions); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}

	return nil
}

// Validate checks the provided settings for required fields and formatting,
// filling in defaults for everything that may be omitted.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if cfg.SupervisorAddress == "" {
		return errSupervisorSocketRequired
	}

	if _, err := net.ResolveTCPAddr("tcp", cfg.SupervisorAddress); err != nil {
		return fmt.Errorf("invalid supervisor socket: %w", err)
	}

	if cfg.ManeuverAddress != "" {
		if _, err := net.ResolveTCPAddr("tcp", cfg.ManeuverAddress); err != nil {
			return fmt.Errorf("invalid maneuver socket: %w", err)
		}
	}

	if cfg.SensorListenAddress == "" {
		cfg.SensorListenAddress = DefaultSensorListenAddress
	}

	if _, err := net.ResolveUDPAddr("udp", cfg.SensorListenAddress); err != nil {
		return fmt.Errorf("invalid sensor listen socket: %w", err)
	}

	if cfg.CommandSinkAddress != "" {
		if _, err := net.ResolveUDPAddr("udp", cfg.CommandSinkAddress); err != nil {
			return fmt.Errorf("invalid command sink socket: %w", err)
		}
	}

	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	return validateTuning(&cfg.Tuning)
}

// validateTuning applies defaults to omitted tuning values and checks the
// relationships between them.
func validateTuning(t *Tuning) error {
	if t.TickPeriod <= 0 {
		t.TickPeriod = DefaultTickPeriod
	}

	if t.DriveStep <= 0 {
		t.DriveStep = DefaultDriveStep
	}

	if t.MinValidRange <= 0 {
		t.MinValidRange = DefaultMinValidRange
	}

	if t.ZoneHalfWidth <= 0 {
		t.ZoneHalfWidth = DefaultZoneHalfWidth
	}

	if t.ObstacleEnterDistance <= 0 {
		t.ObstacleEnterDistance = DefaultObstacleEnterDistance
	}

	if t.ObstacleClearDistance <= 0 {
		t.ObstacleClearDistance = DefaultObstacleClearDistance
	}

	if t.ObstacleClearDistance <= t.ObstacleEnterDistance {
		return errThresholdOrder
	}

	if t.ManeuverCycles <= 0 {
		t.ManeuverCycles = DefaultManeuverCycles
	}

	if t.ManeuverSubticks <= 0 {
		t.ManeuverSubticks = DefaultManeuverSubticks
	}

	if t.ManeuverSubtickPeriod <= 0 {
		t.ManeuverSubtickPeriod = DefaultManeuverSubtickPeriod
	}

	if t.ManeuverPausePeriod <= 0 {
		t.ManeuverPausePeriod = DefaultManeuverPausePeriod
	}

	if t.ManeuverAngularRate <= 0 {
		t.ManeuverAngularRate = DefaultManeuverAngularRate
	}

	return nil
}
