package automaton

import "github.com/dekarrin/rezi"

// EncodeBinary serializes n to bytes via rezi, the project's
// reflection-based binary codec. It operates on n's exported RawNFA
// snapshot (see ToRaw) rather than on n directly, since rezi encodes the
// exported fields of whatever value it is given and NFA's fields are
// unexported.
func (n NFA[V]) EncodeBinary() []byte {
	raw := n.ToRaw()
	return rezi.EncBinary(&raw)
}

// DecodeNFABinary decodes data produced by NFA.EncodeBinary back into an
// NFA, validating the decoded RawNFA the same way NFAFromRaw would.
func DecodeNFABinary[V Symbol](data []byte) (NFA[V], int, error) {
	var raw RawNFA[V]
	n, err := rezi.DecBinary(data, &raw)
	if err != nil {
		return NFA[V]{}, n, err
	}
	parsed, err := NFAFromRaw(raw)
	return parsed, n, err
}

// EncodeBinary serializes d to bytes via rezi, operating on d's exported
// RawDFA snapshot.
func (d DFA[V]) EncodeBinary() []byte {
	raw := d.ToRaw()
	return rezi.EncBinary(&raw)
}

// DecodeDFABinary decodes data produced by DFA.EncodeBinary back into a
// DFA, validating the decoded RawDFA the same way DFAFromRaw would.
func DecodeDFABinary[V Symbol](data []byte) (DFA[V], int, error) {
	var raw RawDFA[V]
	n, err := rezi.DecBinary(data, &raw)
	if err != nil {
		return DFA[V]{}, n, err
	}
	parsed, err := DFAFromRaw(raw)
	return parsed, n, err
}
