package sunder

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidPartition is returned for partitions which define no interval.
var ErrInvalidPartition = errors.New("sunder: invalid partition")

type partitionKind uint8

const (
	whole partitionKind = iota
	even
	spans
)

// Partition describes how to cut the reference extent along one dimension.
// The zero value keeps the whole extent.
type Partition struct {
	kind  partitionKind
	n     int
	spans [][2]float64
}

// Even cuts the extent into `n` slices of equal size.
func Even(n int) Partition { return Partition{kind: even, n: n} }

// Spans cuts the extent at explicit bounds, expressed as fractions
// of the reference extent: (0.1, 0.3) on a reference spanning
// (0.5, 1) in its figure gives (0.55, 0.65).
// Bounds are not required to lie in [0, 1], nor to be disjoint.
func Spans(bounds ...[2]float64) Partition {
	return Partition{kind: spans, spans: bounds}
}

// IsWhole returns true for the zero value.
func (p Partition) IsWhole() bool { return p.kind == whole }

// Len returns the number of intervals defined by `p`.
func (p Partition) Len() int {
	switch p.kind {
	case even:
		return p.n
	case spans:
		return len(p.spans)
	default:
		return 1
	}
}

// fractions returns the bounds of each interval, as fractions of the reference extent.
func (p Partition) fractions() ([][2]float64, error) {
	switch p.kind {
	case even:
		if p.n < 1 {
			return nil, fmt.Errorf("%w: %d slices", ErrInvalidPartition, p.n)
		}
		out := make([][2]float64, p.n)
		// i/n instead of i*(1/n): the last bound is exactly 1 and
		// consecutive slices share their bound.
		for i := range out {
			out[i] = [2]float64{float64(i) / float64(p.n), float64(i+1) / float64(p.n)}
		}
		return out, nil
	case spans:
		if len(p.spans) == 0 {
			return nil, fmt.Errorf("%w: empty span list", ErrInvalidPartition)
		}
		return p.spans, nil
	default:
		return [][2]float64{{0, 1}}, nil
	}
}

// intervals returns the absolute intervals defined by `p` on the extent
// starting at `start` and of size `span`.
func (p Partition) intervals(start, span float64) ([][2]float64, error) {
	if p.kind == whole {
		return [][2]float64{{start, start + span}}, nil
	}
	fracs, err := p.fractions()
	if err != nil {
		return nil, err
	}
	out := make([][2]float64, len(fracs))
	for i, b := range fracs {
		out[i] = [2]float64{start + b[0]*span, start + b[1]*span}
	}
	return out, nil
}

// String returns the textual form accepted by ParsePartition.
func (p Partition) String() string {
	switch p.kind {
	case even:
		return strconv.Itoa(p.n)
	case spans:
		chunks := make([]string, len(p.spans))
		for i, b := range p.spans {
			chunks[i] = formatFloat(b[0]) + ":" + formatFloat(b[1])
		}
		return strings.Join(chunks, ",")
	default:
		return ""
	}
}

// ParsePartition reads a partition from its textual form:
//   - "" keeps the whole extent
//   - "4" cuts the extent into 4 equal slices
//   - "0.1:0.3,0.7:0.9" defines explicit spans
func ParsePartition(s string) (Partition, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Partition{}, nil
	}
	if !strings.Contains(s, ":") {
		n, err := strconv.Atoi(s)
		if err != nil {
			return Partition{}, fmt.Errorf("sunder: parse partition %q: %w", s, err)
		}
		if n < 1 {
			return Partition{}, fmt.Errorf("%w: %d slices", ErrInvalidPartition, n)
		}
		return Even(n), nil
	}
	var bounds [][2]float64
	for _, chunk := range strings.Split(s, ",") {
		lo, hi, ok := strings.Cut(strings.TrimSpace(chunk), ":")
		if !ok {
			return Partition{}, fmt.Errorf("sunder: parse partition %q: span %q is not lo:hi", s, chunk)
		}
		l, err := strconv.ParseFloat(strings.TrimSpace(lo), 64)
		if err != nil {
			return Partition{}, fmt.Errorf("sunder: parse partition %q: %w", s, err)
		}
		h, err := strconv.ParseFloat(strings.TrimSpace(hi), 64)
		if err != nil {
			return Partition{}, fmt.Errorf("sunder: parse partition %q: %w", s, err)
		}
		bounds = append(bounds, [2]float64{l, h})
	}
	return Spans(bounds...), nil
}

func formatFloat(f float64) string { return strconv.FormatFloat(f, 'g', -1, 64) }
