// Command headless runs the simulation without a window, with the autopilot
// playing, and reports how far it got.
package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/automoto/rooftop-siege/config"
	"github.com/automoto/rooftop-siege/scenes"
	"github.com/sirupsen/logrus"
)

func main() {
	seed := flag.Int64("seed", 1, "Simulation seed (0 = wall clock)")
	ticks := flag.Int("ticks", 60*60*10, "Number of ticks to simulate")
	dt := flag.Float64("dt", 1.0/60, "Seconds per tick")
	overrides := flag.String("config", "", "YAML file with config overrides")
	logLevel := flag.String("log-level", "", "Log level (defaults to debug.loglevel)")
	level := flag.String("level", "", "Embedded level name")
	flag.Parse()

	if *overrides != "" {
		if err := config.LoadOverrides(*overrides); err != nil {
			logrus.Fatalf("Failed to load config: %v", err)
		}
	}
	if *logLevel == "" {
		*logLevel = config.Debug.LogLevel
	}
	lvl, err := logrus.ParseLevel(*logLevel)
	if err != nil {
		logrus.Fatalf("Invalid log level %q: %v", *logLevel, err)
	}
	logrus.SetLevel(lvl)

	world, err := scenes.NewGameWorld(scenes.Options{Seed: *seed, Level: *level, Bot: true})
	if err != nil {
		logrus.Fatalf("Failed to create world: %v", err)
	}
	world.StartGame()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	log := logrus.WithField("component", "headless")
	log.WithFields(logrus.Fields{
		"seed":  world.Seed(),
		"ticks": *ticks,
		"dt":    *dt,
	}).Info("simulation started")

loop:
	for i := 0; i < *ticks; i++ {
		select {
		case <-sigChan:
			log.Warn("interrupted")
			break loop
		default:
		}
		world.AdvanceSimulation(*dt)
		if world.State() == config.GameStateWin {
			break loop
		}
	}

	elapsed, ran := world.Elapsed()
	wave := world.Wave()
	log.WithFields(logrus.Fields{
		"state":   world.State().String(),
		"wave":    wave.CurrentWave,
		"kills":   wave.EnemiesKilled,
		"spawned": wave.EnemiesSpawned,
		"ticks":   ran,
		"seconds": elapsed,
	}).Info("simulation finished")
}
