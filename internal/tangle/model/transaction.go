package model

import (
	"fmt"
	"strings"

	"github.com/goodnatureofminers/tangleinsight-backend/internal/tangle/trinary"
	"github.com/goodnatureofminers/tangleinsight-backend/pkg/safe"
)

// Field offsets inside the 2673-tryte transaction encoding.
const (
	signatureStart   = 0
	addressStart     = signatureStart + 2187
	valueStart       = addressStart + trinary.HashTrytes
	obsoleteTagStart = valueStart + 27
	timestampStart   = obsoleteTagStart + trinary.TagTrytes
	currentIdxStart  = timestampStart + 9
	lastIdxStart     = currentIdxStart + 9
	bundleStart      = lastIdxStart + 9
	trunkStart       = bundleStart + trinary.HashTrytes
	branchStart      = trunkStart + trinary.HashTrytes
	tagStart         = branchStart + trinary.HashTrytes
	attachedAtStart  = tagStart + trinary.TagTrytes
	lowerBoundStart  = attachedAtStart + 9
	upperBoundStart  = lowerBoundStart + 9
	nonceStart       = upperBoundStart + 9
	transactionEnd   = nonceStart + trinary.TagTrytes

	valueTrytes = 11
)

// Transaction is the decoded view of a transaction payload.
type Transaction struct {
	Hash                     string
	SignatureMessageFragment trinary.Trytes
	Address                  string
	Value                    int64
	ObsoleteTag              trinary.Trytes
	Timestamp                uint64
	CurrentIndex             uint64
	LastIndex                uint64
	Bundle                   string
	TrunkTransaction         string
	BranchTransaction        string
	Tag                      trinary.Trytes
	AttachmentTimestamp      int64
	AttachmentLowerBound     int64
	AttachmentUpperBound     int64
	Nonce                    trinary.Trytes
}

// ParseTransaction decodes the canonical tryte encoding of the transaction identified by hash.
func ParseTransaction(hash string, raw trinary.Trytes) (Transaction, error) {
	if len(raw) != trinary.TransactionTrytes {
		return Transaction{}, fmt.Errorf("%w: %s has %d trytes, want %d",
			ErrMalformedTransaction, hash, len(raw), trinary.TransactionTrytes)
	}
	if !trinary.Valid(string(raw)) {
		return Transaction{}, fmt.Errorf("%w: %s is not trytes", ErrMalformedTransaction, hash)
	}
	if trinary.IsNull(raw) {
		return Transaction{}, fmt.Errorf("%w: %s is empty", ErrMalformedTransaction, hash)
	}

	tx := Transaction{
		Hash:                     hash,
		SignatureMessageFragment: raw[signatureStart:addressStart],
		Address:                  string(raw[addressStart:valueStart]),
		ObsoleteTag:              raw[obsoleteTagStart:timestampStart],
		Bundle:                   string(raw[bundleStart:trunkStart]),
		TrunkTransaction:         string(raw[trunkStart:branchStart]),
		BranchTransaction:        string(raw[branchStart:tagStart]),
		Tag:                      raw[tagStart:attachedAtStart],
		Nonce:                    raw[nonceStart:transactionEnd],
	}

	var err error
	if tx.Value, err = trinary.ToInt64(raw[valueStart:obsoleteTagStart]); err != nil {
		return Transaction{}, fmt.Errorf("%w: %s value: %v", ErrMalformedTransaction, hash, err)
	}
	if tx.Timestamp, err = unsignedField(raw[timestampStart:currentIdxStart]); err != nil {
		return Transaction{}, fmt.Errorf("%w: %s timestamp: %v", ErrMalformedTransaction, hash, err)
	}
	if tx.CurrentIndex, err = unsignedField(raw[currentIdxStart:lastIdxStart]); err != nil {
		return Transaction{}, fmt.Errorf("%w: %s current index: %v", ErrMalformedTransaction, hash, err)
	}
	if tx.LastIndex, err = unsignedField(raw[lastIdxStart:bundleStart]); err != nil {
		return Transaction{}, fmt.Errorf("%w: %s last index: %v", ErrMalformedTransaction, hash, err)
	}
	if tx.CurrentIndex > tx.LastIndex {
		return Transaction{}, fmt.Errorf("%w: %s current index %d exceeds last index %d",
			ErrMalformedTransaction, hash, tx.CurrentIndex, tx.LastIndex)
	}
	if tx.AttachmentTimestamp, err = trinary.ToInt64(raw[attachedAtStart:lowerBoundStart]); err != nil {
		return Transaction{}, fmt.Errorf("%w: %s attachment timestamp: %v", ErrMalformedTransaction, hash, err)
	}
	if tx.AttachmentLowerBound, err = trinary.ToInt64(raw[lowerBoundStart:upperBoundStart]); err != nil {
		return Transaction{}, fmt.Errorf("%w: %s attachment lower bound: %v", ErrMalformedTransaction, hash, err)
	}
	if tx.AttachmentUpperBound, err = trinary.ToInt64(raw[upperBoundStart:nonceStart]); err != nil {
		return Transaction{}, fmt.Errorf("%w: %s attachment upper bound: %v", ErrMalformedTransaction, hash, err)
	}

	return tx, nil
}

// Trytes encodes the transaction back into its canonical 2673-tryte form.
func (t Transaction) Trytes() (trinary.Trytes, error) {
	value, err := trinary.FromInt64(t.Value, valueTrytes)
	if err != nil {
		return "", fmt.Errorf("encode value: %w", err)
	}
	numbers := make([]trinary.Trytes, 0, 6)
	for _, n := range []int64{
		int64(t.Timestamp),
		int64(t.CurrentIndex),
		int64(t.LastIndex),
		t.AttachmentTimestamp,
		t.AttachmentLowerBound,
		t.AttachmentUpperBound,
	} {
		encoded, err := trinary.FromInt64(n, 9)
		if err != nil {
			return "", fmt.Errorf("encode numeric field: %w", err)
		}
		numbers = append(numbers, encoded)
	}

	var b strings.Builder
	b.Grow(trinary.TransactionTrytes)
	b.WriteString(string(trinary.Pad(t.SignatureMessageFragment, addressStart-signatureStart)))
	b.WriteString(string(trinary.Pad(trinary.Trytes(t.Address), trinary.HashTrytes)))
	b.WriteString(string(trinary.Pad(value, obsoleteTagStart-valueStart)))
	b.WriteString(string(trinary.Pad(t.ObsoleteTag, trinary.TagTrytes)))
	b.WriteString(string(numbers[0]))
	b.WriteString(string(numbers[1]))
	b.WriteString(string(numbers[2]))
	b.WriteString(string(trinary.Pad(trinary.Trytes(t.Bundle), trinary.HashTrytes)))
	b.WriteString(string(trinary.Pad(trinary.Trytes(t.TrunkTransaction), trinary.HashTrytes)))
	b.WriteString(string(trinary.Pad(trinary.Trytes(t.BranchTransaction), trinary.HashTrytes)))
	b.WriteString(string(trinary.Pad(t.Tag, trinary.TagTrytes)))
	b.WriteString(string(numbers[3]))
	b.WriteString(string(numbers[4]))
	b.WriteString(string(numbers[5]))
	b.WriteString(string(trinary.Pad(t.Nonce, trinary.TagTrytes)))

	out := trinary.Trytes(b.String())
	if len(out) != trinary.TransactionTrytes {
		return "", fmt.Errorf("%w: encoded %d trytes", ErrMalformedTransaction, len(out))
	}
	return out, nil
}

func unsignedField(t trinary.Trytes) (uint64, error) {
	v, err := trinary.ToInt64(t)
	if err != nil {
		return 0, err
	}
	return safe.Uint64(v)
}
