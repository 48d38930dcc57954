package engine

import "math/rand"

// provinceBag is a shuffled rotation pool over the eligible provinces.
// Two guards keep province coverage repeat-free across refills: the
// boundary guard at fill time (new head must differ from the last value
// the previous bag produced) and the live lastProvince guard at pop time.
type provinceBag struct {
	rng      *rand.Rand
	eligible []string

	items           []string
	lastBagProvince string
}

func newProvinceBag(rng *rand.Rand, eligible []string) *provinceBag {
	return &provinceBag{rng: rng, eligible: eligible}
}

// fill reshuffles the eligible provinces into the bag. If the shuffled
// head equals the final province of the previous bag generation, it is
// swapped with the first non-matching element.
func (b *provinceBag) fill() {
	b.items = append(b.items[:0], b.eligible...)
	b.rng.Shuffle(len(b.items), func(i, j int) {
		b.items[i], b.items[j] = b.items[j], b.items[i]
	})

	if len(b.items) > 1 && b.items[0] == b.lastBagProvince {
		for i := 1; i < len(b.items); i++ {
			if b.items[i] != b.lastBagProvince {
				b.items[0], b.items[i] = b.items[i], b.items[0]
				break
			}
		}
	}
}

// pop removes and returns the first bagged province that differs from the
// live lastProvince. An empty bag refills first. Returns "" only when no
// provinces are eligible at all.
func (b *provinceBag) pop(lastProvince string) string {
	if len(b.items) == 0 {
		b.fill()
	}
	if len(b.items) == 0 {
		return ""
	}

	idx := 0
	for i, p := range b.items {
		if p != lastProvince {
			idx = i
			break
		}
	}

	picked := b.items[idx]
	b.items = append(b.items[:idx], b.items[idx+1:]...)

	if len(b.items) == 0 {
		b.lastBagProvince = picked
	}
	return picked
}

func (b *provinceBag) clone() *provinceBag {
	c := &provinceBag{
		rng:             b.rng,
		eligible:        b.eligible,
		lastBagProvince: b.lastBagProvince,
	}
	c.items = append(c.items, b.items...)
	return c
}
