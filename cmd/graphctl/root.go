package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"kgraph-engine/application/queries/handlers"
	"kgraph-engine/domain/services"
	"kgraph-engine/domain/services/layout"
	"kgraph-engine/infrastructure/config"
	"kgraph-engine/infrastructure/persistence/memory"
	"kgraph-engine/infrastructure/snapshot"
)

// app carries the wired services shared by every subcommand. It is built
// lazily once the snapshot flag is known.
type app struct {
	logger   *zap.Logger
	store    *memory.Store
	builder  *services.GraphBuilder
	finder   *services.PathFinder
	analyzer *services.GraphAnalyzer
	selector *services.AdaptiveSelector
	engine   *layout.Engine
}

func newRootCommand() *cobra.Command {
	var snapshotPath string

	cmd := &cobra.Command{
		Use:           "graphctl",
		Short:         "Inspect and analyze curriculum knowledge graphs",
		Long:          "graphctl loads a knowledge graph snapshot and runs analytics, pathfinding, layout and learning-path queries against it.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&snapshotPath, "snapshot", "s", "", "path to the graph snapshot file (.json, .yaml)")
	_ = cmd.MarkPersistentFlagRequired("snapshot")

	cmd.AddCommand(
		newStatsCommand(&snapshotPath),
		newPathCommand(&snapshotPath),
		newClosureCommand(&snapshotPath),
		newLayoutCommand(&snapshotPath),
		newNextCommand(&snapshotPath),
	)

	return cmd
}

// buildApp loads configuration, the snapshot file and wires the engine
func buildApp(snapshotPath string) (*app, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger, err := config.BuildLogger(cfg)
	if err != nil {
		return nil, err
	}

	snap, knowledge, err := snapshot.Load(snapshotPath)
	if err != nil {
		return nil, err
	}

	store := memory.NewStore(snap)
	for userID, records := range knowledge {
		store.SetUserKnowledge(userID, records)
	}

	engineCfg := cfg.EngineConfig()
	policy := services.NewWeightPolicy()

	return &app{
		logger:   logger,
		store:    store,
		builder:  services.NewGraphBuilder(logger),
		finder:   services.NewPathFinder(policy),
		analyzer: services.NewGraphAnalyzer(engineCfg),
		selector: services.NewAdaptiveSelector(engineCfg),
		engine:   layout.NewEngine(engineCfg, logger),
	}, nil
}

func (a *app) statsHandler() *handlers.GetGraphStatsHandler {
	return handlers.NewGetGraphStatsHandler(a.store, a.builder, a.analyzer, a.logger)
}

func (a *app) pathHandler() *handlers.FindPathHandler {
	return handlers.NewFindPathHandler(a.store, a.builder, a.finder, a.logger)
}

func (a *app) closureHandler() *handlers.PrerequisiteClosureHandler {
	return handlers.NewPrerequisiteClosureHandler(a.store, a.builder, a.finder, a.logger)
}

func (a *app) layoutHandler() *handlers.ComputeLayoutHandler {
	return handlers.NewComputeLayoutHandler(a.store, a.builder, a.engine, a.store, a.logger)
}

func (a *app) nextHandler() *handlers.NextConceptHandler {
	return handlers.NewNextConceptHandler(a.store, a.builder, a.selector, a.logger)
}

// printJSON writes the result as indented JSON to stdout
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
