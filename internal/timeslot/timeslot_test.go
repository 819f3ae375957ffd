package timeslot_test

import (
	"math/rand"
	"testing"
	"time"

	"github.com/HugoFdezTbres/fairplay/internal/timeslot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var day = time.Date(2025, time.March, 14, 0, 0, 0, 0, time.UTC)

// at converts minutes-since-midnight into an instant on the test day.
func at(minutes int) time.Time {
	return day.Add(time.Duration(minutes) * time.Minute)
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		aStart   int
		aEnd     int
		bStart   int
		bEnd     int
		expected bool
	}{
		{"identical windows", 540, 600, 540, 600, true},
		{"contained window", 540, 660, 570, 600, true},
		{"partial overlap left", 540, 600, 570, 630, true},
		{"partial overlap right", 570, 630, 540, 600, true},
		{"touching end to start", 600, 660, 660, 720, false},
		{"touching start to end", 660, 720, 600, 660, false},
		{"disjoint", 540, 600, 720, 780, false},
		{"one minute overlap", 540, 601, 600, 660, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := timeslot.Overlaps(at(tt.aStart), at(tt.aEnd), at(tt.bStart), at(tt.bEnd))
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestOverlapsSymmetry(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 1000; i++ {
		aStart, aEnd := randomWindow(rng)
		bStart, bEnd := randomWindow(rng)

		ab := timeslot.Overlaps(aStart, aEnd, bStart, bEnd)
		ba := timeslot.Overlaps(bStart, bEnd, aStart, aEnd)
		require.Equal(t, ab, ba, "overlap must be symmetric: a=[%v,%v) b=[%v,%v)", aStart, aEnd, bStart, bEnd)
	}
}

func TestOverlapsSelf(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 200; i++ {
		start, end := randomWindow(rng)
		assert.True(t, timeslot.Overlaps(start, end, start, end))
	}
}

// The historical availability check used a three-clause disjunction
// (start-contained, end-contained, fully-contained). Prove it evaluates the
// same as the symmetric two-clause form over every pair of quarter-hour
// windows in a day.
func TestOverlapsMatchesDisjunctionForm(t *testing.T) {
	disjunction := func(aStart, aEnd, bStart, bEnd time.Time) bool {
		startContained := !bStart.After(aStart) && bEnd.After(aStart)
		endContained := bStart.Before(aEnd) && !bEnd.Before(aEnd)
		fullyContained := !bStart.Before(aStart) && !bEnd.After(aEnd)
		return startContained || endContained || fullyContained
	}

	// Quarter-hour grid over a 6-hour window keeps the pair count tractable
	// while still covering every boundary alignment.
	const steps = 24
	for as := 0; as < steps; as++ {
		for ae := as + 1; ae <= steps; ae++ {
			for bs := 0; bs < steps; bs++ {
				for be := bs + 1; be <= steps; be++ {
					aStart, aEnd := at(as*15), at(ae*15)
					bStart, bEnd := at(bs*15), at(be*15)

					want := disjunction(aStart, aEnd, bStart, bEnd)
					got := timeslot.Overlaps(aStart, aEnd, bStart, bEnd)
					require.Equal(t, want, got,
						"forms disagree for a=[%d,%d) b=[%d,%d)", as*15, ae*15, bs*15, be*15)
				}
			}
		}
	}
}

func randomWindow(rng *rand.Rand) (time.Time, time.Time) {
	start := rng.Intn(1380)
	length := 1 + rng.Intn(1440-start-1)
	return at(start), at(start + length)
}
