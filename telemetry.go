package server

import "sync/atomic"

// telemetryCounters tracks hub activity without taking the hub lock.
type telemetryCounters struct {
	connects      atomic.Uint64
	disconnects   atomic.Uint64
	broadcasts    atomic.Uint64
	sendsOK       atomic.Uint64
	sendFailures  atomic.Uint64
	callsRejected atomic.Uint64
	bytesSent     atomic.Uint64
}

// TelemetrySnapshot is the read-only counter view served on /diagnostics.
type TelemetrySnapshot struct {
	Connects      uint64 `json:"connects"`
	Disconnects   uint64 `json:"disconnects"`
	Broadcasts    uint64 `json:"broadcasts"`
	SendsOK       uint64 `json:"sendsOk"`
	SendFailures  uint64 `json:"sendFailures"`
	CallsRejected uint64 `json:"callsRejected"`
	BytesSent     uint64 `json:"bytesSent"`
}

func newTelemetryCounters() *telemetryCounters {
	return &telemetryCounters{}
}

func (t *telemetryCounters) IncConnects()      { t.connects.Add(1) }
func (t *telemetryCounters) IncDisconnects()   { t.disconnects.Add(1) }
func (t *telemetryCounters) IncBroadcasts()    { t.broadcasts.Add(1) }
func (t *telemetryCounters) IncSendFailures()  { t.sendFailures.Add(1) }
func (t *telemetryCounters) IncCallsRejected() { t.callsRejected.Add(1) }

func (t *telemetryCounters) RecordBroadcastSend(bytes int) {
	if bytes < 0 {
		bytes = 0
	}
	t.sendsOK.Add(1)
	t.bytesSent.Add(uint64(bytes))
}

func (t *telemetryCounters) Snapshot() TelemetrySnapshot {
	return TelemetrySnapshot{
		Connects:      t.connects.Load(),
		Disconnects:   t.disconnects.Load(),
		Broadcasts:    t.broadcasts.Load(),
		SendsOK:       t.sendsOK.Load(),
		SendFailures:  t.sendFailures.Load(),
		CallsRejected: t.callsRejected.Load(),
		BytesSent:     t.bytesSent.Load(),
	}
}
