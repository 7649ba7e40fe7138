package iri

import "time"

type (
	// Metrics records metrics for node API calls.
	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE
