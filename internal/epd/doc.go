// Package epd drives the bistable e-paper panel.
//
// The Device interface is the capability surface the rest of the appliance
// consumes: explicit wake/sleep power states around paint and clear, plus the
// native panel dimensions. The concrete driver talks to a Waveshare 2.13"
// (B) V4 bichrome HAT over SPI and GPIO via periph.io and is constructed
// once at startup and injected into the serving loop.
//
// Power discipline is the point of this package: the panel must never be
// left powered between updates. Callers wake the device, push one clear or
// one frame, and put it back to sleep. Close performs a best-effort
// power-down for process teardown regardless of the last observed state.
package epd
