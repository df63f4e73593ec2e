package engine

import "math"

// Advantage modifiers: how many d20s are rolled for one attack, keeping the
// best.
const (
	AdvantageNone  = 1
	AdvantageFull  = 2
	AdvantageElven = 3 // elven accuracy, three rolls
)

// HitProbability is the chance that at least one of advantage independent
// d20+attackBonus rolls meets or beats targetAC. When the target is 20 or more
// above the bonus, or 2 or less above it, the single-roll chance collapses to
// 0.05: a natural 20 always hits and a natural 1 always misses, so both
// extremes reduce to one face in twenty.
func HitProbability(targetAC, attackBonus, advantage int) float64 {
	diff := targetAC - attackBonus
	single := 0.05
	if diff < 20 && diff > 2 {
		single = float64(21+attackBonus-targetAC) / 20
	}
	return 1 - math.Pow(1-single, float64(advantage))
}

// CritProbability is the chance that at least one of advantage d20 rolls lands
// on or above critRange. critRange 20 means crit on a natural 20 only.
func CritProbability(critRange, advantage int) float64 {
	single := float64(21-critRange) / 20
	return 1 - math.Pow(1-single, float64(advantage))
}

// Attack is an immutable attack configuration. Changing a parameter means
// building a new Attack; the query methods never mutate the receiver.
type Attack struct {
	name        string
	attackBonus int
	damageBonus int
	damageDice  DiceSet
	critDice    DiceSet
	advantage   int
	powerAttack bool
	critRange   int
	targetAC    int
}

// NewAttack builds an Attack. critDice must be the TOTAL dice rolled on a
// critical hit, not just the bonus dice; see AverageFromCritFactor. Inputs are
// assumed validated by the caller (advantage in 1..3, critRange in 1..20).
func NewAttack(name string, attackBonus, damageBonus int, damageDice, critDice DiceSet, advantage int, powerAttack bool, critRange, targetAC int) Attack {
	return Attack{
		name:        name,
		attackBonus: attackBonus,
		damageBonus: damageBonus,
		damageDice:  damageDice,
		critDice:    critDice,
		advantage:   advantage,
		powerAttack: powerAttack,
		critRange:   critRange,
		targetAC:    targetAC,
	}
}

// Name returns the display label. It plays no part in any computation.
func (a Attack) Name() string { return a.name }

// TargetAC returns the armor class the attack is evaluated against.
func (a Attack) TargetAC() int { return a.targetAC }

// WithTargetAC returns a copy of the attack evaluated against a different
// armor class.
func (a Attack) WithTargetAC(targetAC int) Attack {
	a.targetAC = targetAC
	return a
}

// power attack trades -5 to hit for +10 damage
func (a Attack) effectiveAttackBonus() int {
	if a.powerAttack {
		return a.attackBonus - 5
	}
	return a.attackBonus
}

func (a Attack) effectiveDamageBonus() int {
	if a.powerAttack {
		return a.damageBonus + 10
	}
	return a.damageBonus
}

func (a Attack) hitProbability() float64 {
	return HitProbability(a.targetAC, a.effectiveAttackBonus(), a.advantage)
}

// AverageFromDice is the expected damage from the damage dice, weighted by the
// chance to hit.
func (a Attack) AverageFromDice() float64 {
	return a.hitProbability() * a.damageDice.AverageRolls()
}

// AverageFromBonus is the expected damage from the flat damage bonus, weighted
// by the chance to hit.
func (a Attack) AverageFromBonus() float64 {
	return a.hitProbability() * float64(a.effectiveDamageBonus())
}

// AverageFromCritFactor is the extra expected damage attributable to critical
// hits. The normal dice are already counted in AverageFromDice, so only the
// difference between the crit set and the normal set is weighted here.
func (a Attack) AverageFromCritFactor() float64 {
	return CritProbability(a.critRange, a.advantage) * (a.critDice.AverageRolls() - a.damageDice.AverageRolls())
}

// AverageTotal is the expected damage per attack: dice, flat bonus, and crit
// contribution combined.
func (a Attack) AverageTotal() float64 {
	return a.AverageFromDice() + a.AverageFromBonus() + a.AverageFromCritFactor()
}
