package dashboard

import (
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/thenoetrevino/tablero/internal/models"
	"github.com/thenoetrevino/tablero/internal/types"
)

// IDSource hands out widget ids that never repeat within a process.
type IDSource interface {
	NextID() types.WidgetID
}

// Supported id strategies (config: dashboard.id_strategy)
const (
	StrategySequence = "sequence"
	StrategyUUID     = "uuid"
)

// SequencePrefix is the prefix shared by seeded and generated widget ids
const SequencePrefix = "widget-"

// SequenceIDs generates "widget-N" ids from a monotonic counter.
type SequenceIDs struct {
	prefix string
	last   atomic.Uint64
}

// NewSequenceIDs creates a generator whose first id is prefix + (start+1).
func NewSequenceIDs(prefix string, start uint64) *SequenceIDs {
	s := &SequenceIDs{prefix: prefix}
	s.last.Store(start)
	return s
}

// SequenceAfter creates a generator that continues after the highest
// "widget-N" id found in d, so generated ids never collide with loaded ones.
func SequenceAfter(d models.Dashboard) *SequenceIDs {
	var highest uint64
	for _, c := range d.Categories {
		for _, w := range c.Widgets {
			suffix, ok := strings.CutPrefix(string(w.ID), SequencePrefix)
			if !ok {
				continue
			}
			n, err := strconv.ParseUint(suffix, 10, 64)
			if err == nil && n > highest {
				highest = n
			}
		}
	}
	return NewSequenceIDs(SequencePrefix, highest)
}

// NextID returns the next id in the sequence
func (s *SequenceIDs) NextID() types.WidgetID {
	return types.WidgetID(fmt.Sprintf("%s%d", s.prefix, s.last.Add(1)))
}

// UUIDs generates random version 4 UUID ids.
type UUIDs struct{}

// NextID returns a new random UUID string
func (UUIDs) NextID() types.WidgetID {
	return types.WidgetID(uuid.NewString())
}

// NewIDSource returns the generator for a configured strategy.
// The sequence strategy continues after the ids already present in d.
func NewIDSource(strategy string, d models.Dashboard) (IDSource, error) {
	switch strategy {
	case StrategySequence, "":
		return SequenceAfter(d), nil
	case StrategyUUID:
		return UUIDs{}, nil
	default:
		return nil, fmt.Errorf("%w %q (want %q or %q)", ErrUnknownIDStrategy, strategy, StrategySequence, StrategyUUID)
	}
}
