// Package scan contains domain types for range-sensor sweeps.
//
// It defines Frame (one full angular sweep of distance readings) and the zone
// reduction that collapses a frame into the nearest obstacle distance across
// the four fixed guard zones around the robot.
package scan
