// Package sensor receives range-scan datagrams from the robot's distance
// sensor and decodes them into frames for the obstacle analyzer.
package sensor
