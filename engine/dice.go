// Package engine computes closed-form average damage for d20-style weapon
// attacks. Everything here is pure arithmetic: no rolling, no sampling, no
// shared state.
package engine

import "errors"

// ErrInvalidDieSpec indicates a die was constructed with negative parameters.
var ErrInvalidDieSpec = errors.New("die sides and reroll threshold must be non-negative")

// Die is one die type with an optional reroll rule and a minimum-roll floor.
// A zero-sided Die is valid and always contributes 0 (degenerate input from
// callers must not blow up the math).
type Die struct {
	sides           int
	rerollThreshold int
	minRoll         int
}

// DieSpec is the construction input for one die. ID is list-keying bookkeeping
// for external callers and has no effect on any computed value.
type DieSpec struct {
	ID              string
	Sides           int
	RerollThreshold int
	MinRoll         int
}

// NewDie builds an immutable Die. Negative sides or reroll thresholds are
// rejected. A minRoll below 1 is normalized to 1 (no floor).
func NewDie(sides, rerollThreshold, minRoll int) (Die, error) {
	if sides < 0 || rerollThreshold < 0 || minRoll < 0 {
		return Die{}, ErrInvalidDieSpec
	}
	if minRoll < 1 {
		minRoll = 1
	}
	return Die{sides: sides, rerollThreshold: rerollThreshold, minRoll: minRoll}, nil
}

// Sides returns the number of faces.
func (d Die) Sides() int { return d.sides }

// RerollThreshold returns the reroll cutoff, 0 when no reroll rule applies.
func (d Die) RerollThreshold() int { return d.rerollThreshold }

// MinRoll returns the roll floor, 1 when no floor applies.
func (d Die) MinRoll() int { return d.minRoll }

// triangular is the sum 1+2+...+n.
func triangular(n int) int {
	return n * (n + 1) / 2
}

// AverageRoll is the long-run average of the die under its reroll and floor
// rules. The three branches below are the literal closed forms the rest of the
// calculator is pinned against; note the sign of the R*M term differs between
// the two reroll branches.
func (d Die) AverageRoll() float64 {
	if d.sides == 0 {
		return 0
	}
	s := float64(d.sides)
	base := float64(triangular(d.sides) + triangular(d.minRoll-1))
	flat := base / s
	r := d.rerollThreshold
	switch {
	case r == 0:
		return flat
	case r > d.minRoll:
		return (base - float64(r*d.minRoll) - float64(triangular(r)) + float64(r)*flat) / s
	default:
		return (base - float64(r*d.minRoll) + float64(r)*flat) / s
	}
}

// DiceSet is an ordered, immutable collection of dice.
type DiceSet struct {
	dice []Die
}

// NewDiceSet builds a DiceSet from die specs, in order. The first invalid spec
// aborts construction.
func NewDiceSet(specs []DieSpec) (DiceSet, error) {
	dice := make([]Die, 0, len(specs))
	for _, spec := range specs {
		die, err := NewDie(spec.Sides, spec.RerollThreshold, spec.MinRoll)
		if err != nil {
			return DiceSet{}, err
		}
		dice = append(dice, die)
	}
	return DiceSet{dice: dice}, nil
}

// Append returns a new DiceSet with the die added at the end. The receiver is
// not modified.
func (ds DiceSet) Append(die Die) DiceSet {
	dice := make([]Die, len(ds.dice), len(ds.dice)+1)
	copy(dice, ds.dice)
	return DiceSet{dice: append(dice, die)}
}

// Len returns the number of dice in the set.
func (ds DiceSet) Len() int { return len(ds.dice) }

// At returns the die at position i.
func (ds DiceSet) At(i int) Die { return ds.dice[i] }

// AverageRolls sums AverageRoll over every die in the set. An empty set is 0.
func (ds DiceSet) AverageRolls() float64 {
	total := 0.0
	for _, die := range ds.dice {
		total += die.AverageRoll()
	}
	return total
}

// DoubledCritDice derives a default critical dice set: the side counts of the
// input repeated twice in order, with reroll and floor rules dropped. Use it
// when the caller has no explicit crit dice ("double the dice on a crit").
func DoubledCritDice(ds DiceSet) DiceSet {
	dice := make([]Die, 0, 2*len(ds.dice))
	for pass := 0; pass < 2; pass++ {
		for _, die := range ds.dice {
			dice = append(dice, Die{sides: die.sides, minRoll: 1})
		}
	}
	return DiceSet{dice: dice}
}
