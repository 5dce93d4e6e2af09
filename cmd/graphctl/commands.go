package main

import (
	"github.com/spf13/cobra"

	"kgraph-engine/application/queries"
)

func newStatsCommand(snapshotPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Compute graph statistics and centrality rankings",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := buildApp(*snapshotPath)
			if err != nil {
				return err
			}
			defer a.logger.Sync() //nolint:errcheck

			result, err := a.statsHandler().Handle(cmd.Context(), queries.GetGraphStatsQuery{})
			if err != nil {
				return err
			}
			return printJSON(result)
		},
	}
}

func newPathCommand(snapshotPath *string) *cobra.Command {
	var startID, endID string

	cmd := &cobra.Command{
		Use:   "path",
		Short: "Find the lowest-cost learning path between two nodes",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := buildApp(*snapshotPath)
			if err != nil {
				return err
			}
			defer a.logger.Sync() //nolint:errcheck

			result, err := a.pathHandler().Handle(cmd.Context(), queries.FindPathQuery{
				StartID: startID,
				EndID:   endID,
			})
			if err != nil {
				return err
			}
			return printJSON(result)
		},
	}

	cmd.Flags().StringVar(&startID, "from", "", "start node id")
	cmd.Flags().StringVar(&endID, "to", "", "end node id")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

func newClosureCommand(snapshotPath *string) *cobra.Command {
	var targetID string
	var allEdges bool

	cmd := &cobra.Command{
		Use:   "closure",
		Short: "List the prerequisites of a node in study order",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := buildApp(*snapshotPath)
			if err != nil {
				return err
			}
			defer a.logger.Sync() //nolint:errcheck

			result, err := a.closureHandler().Handle(cmd.Context(), queries.PrerequisiteClosureQuery{
				TargetID:     targetID,
				AllEdgeTypes: allEdges,
			})
			if err != nil {
				return err
			}
			return printJSON(result)
		},
	}

	cmd.Flags().StringVar(&targetID, "target", "", "target node id")
	cmd.Flags().BoolVar(&allEdges, "all-edges", false, "follow every edge type instead of prerequisite kinds only")
	_ = cmd.MarkFlagRequired("target")

	return cmd
}

func newLayoutCommand(snapshotPath *string) *cobra.Command {
	var strategy string
	var seed uint64
	var iterations int
	var persist bool

	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Compute node coordinates with a layout strategy",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := buildApp(*snapshotPath)
			if err != nil {
				return err
			}
			defer a.logger.Sync() //nolint:errcheck

			query := queries.ComputeLayoutQuery{
				Strategy: strategy,
				Seed:     seed,
				Persist:  persist,
			}
			if cmd.Flags().Changed("iterations") {
				query.Iterations = &iterations
			}

			result, err := a.layoutHandler().Handle(cmd.Context(), query)
			if err != nil {
				return err
			}
			return printJSON(result)
		},
	}

	cmd.Flags().StringVar(&strategy, "strategy", "hierarchical", "layout strategy: hierarchical, circular, force_directed or clustered")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "random seed for force-directed placement")
	cmd.Flags().IntVar(&iterations, "iterations", 0, "force-directed iteration count override")
	cmd.Flags().BoolVar(&persist, "persist", false, "save the computed positions")

	return cmd
}

func newNextCommand(snapshotPath *string) *cobra.Command {
	var userID, difficulty string
	var ordering []string

	cmd := &cobra.Command{
		Use:   "next",
		Short: "Recommend the next concept for a learner",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := buildApp(*snapshotPath)
			if err != nil {
				return err
			}
			defer a.logger.Sync() //nolint:errcheck

			result, err := a.nextHandler().Handle(cmd.Context(), queries.NextConceptQuery{
				UserID:           userID,
				Ordering:         ordering,
				TargetDifficulty: difficulty,
			})
			if err != nil {
				return err
			}
			return printJSON(result)
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "learner id whose knowledge state to use")
	cmd.Flags().StringSliceVar(&ordering, "ordering", nil, "candidate node ids in study order (defaults to every node)")
	cmd.Flags().StringVar(&difficulty, "difficulty", "", "preferred difficulty tier")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}
