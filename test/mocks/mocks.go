// test/mocks/mocks.go

// Package mocks contains generated mocks for the application's interfaces.
// To regenerate mocks, run `go generate ./test/mocks` from the root directory.
package mocks

//go:generate mockgen -source=../../internal/core/ports/snapshot_store.go -destination=snapshot_store_mock.go -package=mocks
//go:generate mockgen -source=../../internal/core/ports/access.go -destination=access_gate_mock.go -package=mocks
//go:generate mockgen -source=../../internal/core/ports/export.go -destination=export_mock.go -package=mocks
