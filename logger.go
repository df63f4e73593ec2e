package main

import (
	"go.uber.org/zap"

	"github.com/vzsoares/DnD-dps-calculator/engine"
)

var calcLogger *zap.Logger

func initLogger() {
	config := zap.NewDevelopmentConfig()
	config.OutputPaths = []string{"stdout"}
	logger, err := config.Build()
	if err != nil {
		panic(err)
	}
	calcLogger = logger
}

func closeLogger() {
	if calcLogger != nil {
		calcLogger.Sync()
		calcLogger = nil
	}
}

func logBreakdown(attack engine.Attack) {
	if calcLogger == nil {
		return
	}
	calcLogger.Info("attack breakdown",
		zap.String("name", attack.Name()),
		zap.Int("targetAC", attack.TargetAC()),
		zap.Float64("fromDice", attack.AverageFromDice()),
		zap.Float64("fromBonus", attack.AverageFromBonus()),
		zap.Float64("fromCrits", attack.AverageFromCritFactor()),
		zap.Float64("total", attack.AverageTotal()),
	)
}
