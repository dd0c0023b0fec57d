// Package statsview serves live runtime statistics of the emulator process
// over HTTP. The server is only compiled in with the statsview build tag:
//
//	go build -tags statsview ./cmd/gbcore
//
// Once launched, charts are served at
//
//	localhost:12700/debug/statsview
//
// and the standard pprof handlers at localhost:12700/debug/pprof/.
package statsview

// Address is where the statistics server listens.
const Address = "localhost:12700"

const url = "/debug/statsview"
