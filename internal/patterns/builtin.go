package patterns

import (
	"github.com/vovakirdan/krida/internal/core"
	"github.com/vovakirdan/krida/internal/life"
)

func pts(xy ...int) []core.Point {
	out := make([]core.Point, 0, len(xy)/2)
	for i := 0; i+1 < len(xy); i += 2 {
		out = append(out, core.Point{X: xy[i], Y: xy[i+1]})
	}
	return out
}

func init() {
	Register(Pattern{
		Name:     DefaultName,
		Title:    "Glider",
		Cells:    life.Glider,
		Anchored: true,
	})
	Register(Pattern{
		Name:  "blinker",
		Title: "Blinker (period 2)",
		Cells: pts(0, 0, 1, 0, 2, 0),
	})
	Register(Pattern{
		Name:  "r-pentomino",
		Title: "R-pentomino",
		Cells: pts(1, 0, 2, 0, 0, 1, 1, 1, 1, 2),
	})
	Register(Pattern{
		Name:  "acorn",
		Title: "Acorn",
		Cells: pts(1, 0, 3, 1, 0, 2, 1, 2, 4, 2, 5, 2, 6, 2),
	})
	Register(Pattern{
		Name:  "lwss",
		Title: "Lightweight spaceship",
		Cells: pts(1, 0, 4, 0, 0, 1, 0, 2, 4, 2, 0, 3, 1, 3, 2, 3, 3, 3),
	})
	Register(Pattern{
		Name:  "gosper-gun",
		Title: "Gosper glider gun",
		Cells: pts(
			24, 0,
			22, 1, 24, 1,
			12, 2, 13, 2, 20, 2, 21, 2, 34, 2, 35, 2,
			11, 3, 15, 3, 20, 3, 21, 3, 34, 3, 35, 3,
			0, 4, 1, 4, 10, 4, 16, 4, 20, 4, 21, 4,
			0, 5, 1, 5, 10, 5, 14, 5, 16, 5, 17, 5, 22, 5, 24, 5,
			10, 6, 16, 6, 24, 6,
			11, 7, 15, 7,
			12, 8, 13, 8,
		),
	})
}
