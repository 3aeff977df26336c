package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// TestValidate checks required fields and format validations for Config.
func TestValidate(t *testing.T) {
	t.Parallel()

	// Missing socket.
	cfg := new(Config)

	err := Validate(cfg)
	require.Error(t, err)

	// Bad socket.
	cfg = &Config{
		SupervisorAddress: "bad:address",
	}

	err = Validate(cfg)
	require.Error(t, err)

	// Okay with optional endpoints.
	cfg = &Config{
		SupervisorAddress:  "127.0.0.1:0",
		ManeuverAddress:    "127.0.0.1:0",
		CommandSinkAddress: "127.0.0.1:8941",
	}

	err = Validate(cfg)
	require.NoError(t, err)
}

// TestValidate_AppliesDefaults ensures zero values are replaced with defaults.
func TestValidate_AppliesDefaults(t *testing.T) {
	t.Parallel()

	cfg := &Config{
		SupervisorAddress: "127.0.0.1:50051",
	}

	require.NoError(t, Validate(cfg))
	require.Equal(t, DefaultTimeout, cfg.Timeout)
	require.Equal(t, DefaultSensorListenAddress, cfg.SensorListenAddress)
	require.Equal(t, DefaultTickPeriod, cfg.Tuning.TickPeriod)
	require.InEpsilon(t, DefaultDriveStep, cfg.Tuning.DriveStep, 1e-9)
	require.InEpsilon(t, DefaultObstacleEnterDistance, cfg.Tuning.ObstacleEnterDistance, 1e-9)
	require.InEpsilon(t, DefaultObstacleClearDistance, cfg.Tuning.ObstacleClearDistance, 1e-9)
	require.Equal(t, DefaultManeuverCycles, cfg.Tuning.ManeuverCycles)
	require.Equal(t, DefaultManeuverSubticks, cfg.Tuning.ManeuverSubticks)
}

// TestValidate_ThresholdOrder rejects configs where the dead band is inverted.
func TestValidate_ThresholdOrder(t *testing.T) {
	t.Parallel()

	cfg := &Config{
		SupervisorAddress: "127.0.0.1:50051",
		Tuning: Tuning{
			ObstacleEnterDistance: 0.9,
			ObstacleClearDistance: 0.5,
		},
	}

	require.ErrorIs(t, Validate(cfg), errThresholdOrder)
}

// TestSaveLoadRoundtrip ensures settings are persisted and loaded back correctly.
func TestSaveLoadRoundtrip(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "settings.yaml")

	cfg := &Config{
		SupervisorAddress:   "127.0.0.1:50051",
		SensorListenAddress: "127.0.0.1:8940",
		Timeout:             3 * time.Second,
		Tuning: Tuning{
			TickPeriod: 50 * time.Millisecond,
			DriveStep:  0.25,
		},
	}

	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, cfg.SupervisorAddress, loaded.SupervisorAddress)
	require.Equal(t, cfg.SensorListenAddress, loaded.SensorListenAddress)
	require.Equal(t, 50*time.Millisecond, loaded.Tuning.TickPeriod)
	require.InEpsilon(t, 0.25, loaded.Tuning.DriveStep, 1e-9)

	// File exists.
	_, err = os.Stat(path)
	require.NoError(t, err)
}
