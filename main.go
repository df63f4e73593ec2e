package main

import (
	"fmt"

	"github.com/vzsoares/DnD-dps-calculator/engine"
)

func main() {
	attackFiles := []struct {
		name string
		file string
	}{
		{"GWM Greatsword", "gwm_greatsword.yaml"},
		{"Sharpshooter Longbow", "sharpshooter_longbow.yaml"},
		{"Champion Greatsword", "champion_greatsword.yaml"},
	}

	fmt.Printf("Computing average damage per attack...\n\n")

	initLogger()
	defer closeLogger()

	for _, af := range attackFiles {
		fmt.Printf("=== %s (%s) ===\n", af.name, af.file)
		attack := loadAttack(af.file)

		printBreakdown(attack)
		logBreakdown(attack)
		printACSweep(attack)
		fmt.Printf("\n")
	}
}

func printBreakdown(attack engine.Attack) {
	fmt.Printf("From dice:  %.3f\n", attack.AverageFromDice())
	fmt.Printf("From bonus: %.3f\n", attack.AverageFromBonus())
	fmt.Printf("From crits: %.3f\n", attack.AverageFromCritFactor())
	fmt.Printf("Total vs AC %d: %.3f\n", attack.TargetAC(), attack.AverageTotal())
}

// printACSweep re-evaluates the attack against a band of armor classes so the
// numbers can be compared across targets.
func printACSweep(attack engine.Attack) {
	fmt.Printf("AC sweep:\n")
	for ac := 10; ac <= 25; ac++ {
		fmt.Printf("  AC %2d: %6.3f\n", ac, attack.WithTargetAC(ac).AverageTotal())
	}
}
