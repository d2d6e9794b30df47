package main

import (
	"fmt"
	"strconv"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/gilchrisn/bipartite-matching-graph/pkg/loader"
)

func newRootCmd() (*cobra.Command, error) {
	config := loader.NewConfig()
	var configFile string

	root := &cobra.Command{
		Use:           "bipartite",
		Short:         "Build compact bipartite graphs from edge lists",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if configFile != "" {
				if err := config.LoadFromFile(configFile); err != nil {
					return fmt.Errorf("load config %s: %w", configFile, err)
				}
			}
			log.Logger = config.CreateLogger()
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "config file (yaml, json or toml)")
	flags.String("log-level", "info", "log level (debug, info, warn, error)")
	flags.Int("capacity-a", 0, "partition A capacity, 0 to infer from the input")
	flags.Int("capacity-b", 0, "partition B capacity, 0 to infer from the input")
	flags.Bool("compact", true, "trim adjacency lists after loading")

	bindings := []flagBinding{
		{"logging.level", "log-level"},
		{"graph.capacity_a", "capacity-a"},
		{"graph.capacity_b", "capacity-b"},
		{"loader.compact", "compact"},
	}
	if err := bindFlags(config.Viper(), root, bindings); err != nil {
		return nil, err
	}

	root.AddCommand(newLoadCmd(config), newEdgesCmd(config))
	return root, nil
}

// flagBinding ties a config key to a persistent flag.
type flagBinding struct{ key, flag string }

func bindFlags(v *viper.Viper, cmd *cobra.Command, bindings []flagBinding) error {
	for _, b := range bindings {
		if err := v.BindPFlag(b.key, cmd.PersistentFlags().Lookup(b.flag)); err != nil {
			return fmt.Errorf("bind --%s to %s: %w", b.flag, b.key, err)
		}
	}
	return nil
}

func newLoadCmd(config *loader.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "load <edgelist>",
		Short: "Load an edge list and print a summary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := loader.LoadFile(cmd.Context(), args[0], config, log.Logger)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Load ID:     %s\n", res.LoadID)
			fmt.Fprintf(out, "Lines:       %d\n", res.Lines)
			fmt.Fprintf(out, "Edges:       %d\n", res.Edges)
			fmt.Fprintf(out, "Partition A: %d vertices (capacity %d)\n", res.VerticesA, res.CapacityA)
			fmt.Fprintf(out, "Partition B: %d vertices (capacity %d)\n", res.VerticesB, res.CapacityB)
			fmt.Fprintf(out, "Duration:    %s\n", res.Duration)
			return nil
		},
	}
}

func newEdgesCmd(config *loader.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "edges <edgelist> <vertex>",
		Short: "Print the edges of a partition-A vertex in insertion order",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			vertex, err := strconv.ParseInt(args[1], 10, 32)
			if err != nil {
				return fmt.Errorf("vertex %q: %w", args[1], err)
			}

			res, err := loader.LoadFile(cmd.Context(), args[0], config, log.Logger)
			if err != nil {
				return err
			}

			view, err := res.Graph.EdgesOf(int32(vertex))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for e := range view.All() {
				fmt.Fprintf(out, "%d\t%d\t%d\n", int64(e), e.Source(), e.Target())
			}
			return nil
		},
	}
}
