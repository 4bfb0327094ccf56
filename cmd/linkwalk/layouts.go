package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/plus3/linkwalk/player"
)

var layoutsCmd = &cobra.Command{
	Use:   "layouts",
	Short: "Print the atlas layouts cut from the sprite sheet",
	Long: `Shows, for every heading and animation state, which row of the sprite
sheet is used, how many frames it has and where the first frame sits.`,
	RunE: runLayouts,
}

func runLayouts(cmd *cobra.Command, args []string) error {
	cfg, _, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	sheet := cfg.PlayerConfig().Sheet
	tile := sheet.Tile()

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Sheet %dx%d, %d columns x %d rows, tile %dx%d\n\n",
		sheet.Width, sheet.Height, sheet.Columns, sheet.Rows, tile.X, tile.Y)
	fmt.Fprintf(out, "  %-7s  %-6s  %3s  %6s  %-9s  %s\n", "Heading", "State", "Row", "Frames", "Indices", "First frame")
	fmt.Fprintf(out, "  %-7s  %-6s  %3s  %6s  %-9s  %s\n", "-------", "-----", "---", "------", "-------", "-----------")

	for _, heading := range player.Headings {
		for _, state := range []player.AnimationState{player.Idle, player.Active} {
			layout := sheet.Layout(heading, state)
			indices := player.IndicesFor(heading, state)
			first, _ := layout.Frame(0)
			fmt.Fprintf(out, "  %-7s  %-6s  %3d  %6d  %-9s  %v\n",
				heading, state, sheet.Row(heading, state), layout.Len(),
				fmt.Sprintf("[%d, %d]", indices.First, indices.Last), first)
		}
	}
	return nil
}
