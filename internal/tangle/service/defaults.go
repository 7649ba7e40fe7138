package service

import "time"

const (
	archiveFlushSize     = 500
	archiveQueueSize     = 10_000
	archiveFlushInterval = 5 * time.Second
	archiveFlushRPS      = 10
)
