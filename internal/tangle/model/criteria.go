package model

import (
	"fmt"
	"strings"

	"github.com/goodnatureofminers/tangleinsight-backend/internal/tangle/trinary"
)

// CriteriaType selects which lookup is issued against the backends.
type CriteriaType string

var (
	CriteriaAddress     CriteriaType = "address"
	CriteriaTag         CriteriaType = "tag"
	CriteriaBundle      CriteriaType = "bundle"
	CriteriaTransaction CriteriaType = "transaction"
)

// ParseCriteriaType maps a user supplied name onto a CriteriaType.
func ParseCriteriaType(s string) (CriteriaType, error) {
	switch CriteriaType(strings.ToLower(s)) {
	case CriteriaAddress:
		return CriteriaAddress, nil
	case CriteriaTag:
		return CriteriaTag, nil
	case CriteriaBundle:
		return CriteriaBundle, nil
	case CriteriaTransaction, "tx", "hash":
		return CriteriaTransaction, nil
	default:
		return "", fmt.Errorf("%w: unknown criteria type %q", ErrMalformedCriteria, s)
	}
}

// Criteria is a normalized lookup key.
type Criteria struct {
	Type  CriteriaType
	Value string
}

// Key returns the cache key of the criteria.
func (c Criteria) Key() string {
	return string(c.Type) + ":" + c.Value
}

// NormalizeCriteria validates raw against the rules of t and returns the canonical lookup key.
func NormalizeCriteria(t CriteriaType, raw string) (Criteria, error) {
	value := strings.TrimSpace(raw)
	if !trinary.Valid(value) {
		return Criteria{}, fmt.Errorf("%w: %s %q is not trytes", ErrMalformedCriteria, t, raw)
	}

	switch t {
	case CriteriaAddress:
		switch len(value) {
		case trinary.HashTrytes:
		case trinary.AddressWithChecksumTrytes:
			value = value[:trinary.HashTrytes]
		default:
			return Criteria{}, fmt.Errorf("%w: address must be %d or %d trytes, got %d",
				ErrMalformedCriteria, trinary.HashTrytes, trinary.AddressWithChecksumTrytes, len(value))
		}
	case CriteriaTag:
		if len(value) > trinary.TagTrytes {
			return Criteria{}, fmt.Errorf("%w: tag longer than %d trytes", ErrMalformedCriteria, trinary.TagTrytes)
		}
		value = string(trinary.Pad(trinary.Trytes(value), trinary.TagTrytes))
	case CriteriaBundle, CriteriaTransaction:
		if len(value) != trinary.HashTrytes {
			return Criteria{}, fmt.Errorf("%w: %s must be %d trytes, got %d",
				ErrMalformedCriteria, t, trinary.HashTrytes, len(value))
		}
	default:
		return Criteria{}, fmt.Errorf("%w: unknown criteria type %q", ErrMalformedCriteria, t)
	}

	return Criteria{Type: t, Value: value}, nil
}

// LooksLikeTransactionHash reports whether the value has the shape of a single transaction identifier.
func (c Criteria) LooksLikeTransactionHash() bool {
	return trinary.ValidHash(c.Value)
}
