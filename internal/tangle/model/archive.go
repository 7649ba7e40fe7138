package model

import (
	"github.com/goodnatureofminers/tangleinsight-backend/internal/tangle/trinary"
	"github.com/moznion/go-optional"
)

// ArchivedTransaction is a decoded transaction as written to the archival store.
type ArchivedTransaction struct {
	Transaction       Transaction
	Trytes            trinary.Trytes
	ConfirmationIndex optional.Option[uint64]
}

// ArchivedPage is one keyset page of identifiers read from the archival store.
type ArchivedPage struct {
	Hashes []string
	// Positions holds the keyset position of every hash, in page order.
	Positions []Cursor
	// Next is set when more rows follow the page.
	Next optional.Option[Cursor]
}
