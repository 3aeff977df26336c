// Package maneuver exposes the evasive-maneuver executor over gRPC.
package maneuver
