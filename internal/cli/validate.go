package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/mazerunner/bfs"
)

func validateCmd() *cobra.Command {
	var maze string

	c := &cobra.Command{
		Use:   "validate",
		Short: "Validate a layout file and report whether its exit is reachable (no robot)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			l, err := loadLayout(maze)
			if err != nil {
				return err
			}

			g := l.ReachableGraph()
			route, err := bfs.ShortestPath(g)
			if err != nil {
				return fmt.Errorf("%s: %w", l.Name, err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "OK %s: %dx%d, %d reachable cells, %d boundary voids, exit in %d moves\n",
				l.Name, l.Rows, l.Cols, g.CellCount(), l.Voids.Len(), route.Steps())
			if lost := l.Unreachable(); len(lost) > 0 {
				fmt.Fprintf(out, "warning: %d cells in %d regions are never mapped: %v\n",
					len(lost), len(l.Regions())-1, lost)
			}
			return nil
		},
	}

	c.Flags().StringVarP(&maze, "maze", "m", "", "Layout file (default: embedded demo maze)")
	return c
}
