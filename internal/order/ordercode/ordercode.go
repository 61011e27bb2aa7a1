package ordercode

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	Prefix = "LK"
	// randomLen hex characters (40 bits) keep codes minted in the same
	// millisecond apart without a storage round-trip.
	randomLen = 10
)

type Generator struct {
	now    func() time.Time
	random func() string
}

func NewGenerator() *Generator {
	return &Generator{
		now:    time.Now,
		random: uuidHex,
	}
}

// NewGeneratorWithClock is used by tests that pin the time segment.
func NewGeneratorWithClock(now func() time.Time) *Generator {
	return &Generator{
		now:    now,
		random: uuidHex,
	}
}

// Next returns LK + base36(unix millis) + random hex, all upper case.
func (g *Generator) Next() string {
	ts := strconv.FormatInt(g.now().UnixMilli(), 36)
	return Prefix + strings.ToUpper(ts) + g.random()
}

// Normalize turns user-entered codes into the stored form.
func Normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func uuidHex() string {
	id := uuid.New()
	hex := strings.ReplaceAll(id.String(), "-", "")
	return strings.ToUpper(hex[:randomLen])
}
