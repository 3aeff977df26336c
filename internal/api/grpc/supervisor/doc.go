// Package supervisor exposes the motion supervisor over gRPC.
package supervisor
