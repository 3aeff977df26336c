// Package sink delivers velocity commands to the motion base. The UDP sink
// publishes protobuf datagrams; the log sink is a stand-in for development
// and for deployments where the base is wired elsewhere.
package sink
