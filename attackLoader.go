package main

import (
	"os"

	"gopkg.in/yaml.v2"

	"github.com/vzsoares/DnD-dps-calculator/engine"
)

const _attackLibraryFilepath = "./library/"

// AttackDefinition is the YAML shape of one attack file in the library.
type AttackDefinition struct {
	Name        string      `yaml:"name"`
	AttackBonus int         `yaml:"attackBonus"`
	DamageBonus int         `yaml:"damageBonus"`
	Advantage   int         `yaml:"advantage,omitempty"`
	PowerAttack bool        `yaml:"powerAttack,omitempty"`
	CritRange   int         `yaml:"critRange,omitempty"`
	TargetAC    int         `yaml:"targetAC"`
	DamageDice  []DiceEntry `yaml:"damageDice"`
	CritDice    []DiceEntry `yaml:"critDice,omitempty"`
}

// DiceEntry is one line of a dice list. Either Dice notation ("2d6") or an
// explicit Sides value; Reroll and MinRoll apply to every die the entry
// expands to.
type DiceEntry struct {
	Dice    string `yaml:"dice,omitempty"`
	Sides   int    `yaml:"sides,omitempty"`
	Reroll  int    `yaml:"reroll,omitempty"`
	MinRoll int    `yaml:"minRoll,omitempty"`
}

func loadAttack(name string) engine.Attack {
	var (
		data []byte
		err  error
	)

	if data, err = os.ReadFile(_attackLibraryFilepath + name); err != nil {
		panic(err)
	}
	def := AttackDefinition{}
	if err = yaml.Unmarshal(data, &def); err != nil {
		panic(err)
	}
	return buildAttack(def)
}

func buildAttack(def AttackDefinition) engine.Attack {
	// advantage and critRange default when the file leaves them out
	if def.Advantage == 0 {
		def.Advantage = engine.AdvantageNone
	}
	if def.CritRange == 0 {
		def.CritRange = 20
	}

	damage := buildDiceSet(def.DamageDice)

	var crit engine.DiceSet
	if len(def.CritDice) == 0 {
		// no explicit crit dice: double the damage dice
		crit = engine.DoubledCritDice(damage)
	} else {
		crit = buildDiceSet(def.CritDice)
	}

	return engine.NewAttack(def.Name, def.AttackBonus, def.DamageBonus,
		damage, crit, def.Advantage, def.PowerAttack, def.CritRange, def.TargetAC)
}

func buildDiceSet(entries []DiceEntry) engine.DiceSet {
	specs := make([]engine.DieSpec, 0, len(entries))
	for _, entry := range entries {
		count := 1
		sides := entry.Sides
		if entry.Dice != "" {
			var err error
			if count, sides, err = parseDiceNotation(entry.Dice); err != nil {
				panic(err)
			}
		}
		for i := 0; i < count; i++ {
			specs = append(specs, engine.DieSpec{
				Sides:           sides,
				RerollThreshold: entry.Reroll,
				MinRoll:         entry.MinRoll,
			})
		}
	}

	set, err := engine.NewDiceSet(specs)
	if err != nil {
		panic(err)
	}
	return set
}
