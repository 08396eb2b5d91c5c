package tui

import (
	"math/big"
	"strconv"

	"github.com/cainthebest/fibext"
	"github.com/cainthebest/fibext/internal/config"
)

// termSource yields sequence terms as display strings. The second return
// is false once the underlying generator is exhausted.
type termSource interface {
	Next() (string, bool)
}

type fixedSource[T ~uint8 | ~uint16 | ~uint32 | ~uint64] struct {
	g *fibext.Generator[T]
}

func (s fixedSource[T]) Next() (string, bool) {
	v, ok := s.g.Next()
	if !ok {
		return "", false
	}
	return strconv.FormatUint(uint64(v), 10), true
}

type uint128Source struct {
	g *fibext.Generator[fibext.Uint128]
}

func (s uint128Source) Next() (string, bool) {
	v, ok := s.g.Next()
	if !ok {
		return "", false
	}
	return v.String(), true
}

type bigSource struct {
	g *fibext.Generator[*big.Int]
}

func (s bigSource) Next() (string, bool) {
	v, ok := s.g.Next()
	if !ok {
		return "", false
	}
	return v.String(), true
}

// newTermSource builds a term source for the configured width and policy.
func newTermSource(cfg config.AppConfig) termSource {
	policy := fibext.Wrapping
	if cfg.Checked {
		policy = fibext.Checked
	}
	switch cfg.Width {
	case config.Width8:
		return fixedSource[uint8]{fibext.New[uint8](policy)}
	case config.Width16:
		return fixedSource[uint16]{fibext.New[uint16](policy)}
	case config.Width32:
		return fixedSource[uint32]{fibext.New[uint32](policy)}
	case config.Width128:
		return uint128Source{fibext.NewUint128(policy)}
	case config.WidthBig:
		return bigSource{fibext.NewBig(policy)}
	default:
		return fixedSource[uint64]{fibext.New[uint64](policy)}
	}
}
