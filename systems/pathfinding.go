package systems

import (
	"math"

	cfg "github.com/automoto/rooftop-siege/config"
	"github.com/automoto/rooftop-siege/shared/spatial"
	astar "github.com/beefsack/go-astar"
	"github.com/go-gl/mathgl/mgl64"
)

// NavGrid represents the walkable ground floor of the arena on the XZ plane
type NavGrid struct {
	Size     int // cells per side
	CellSize float64
	Origin   float64 // world X and Z of the grid's low corner
	Nodes    [][]*NavNode
}

// NavNode represents a single cell in the navigation grid
// Implements astar.Pather interface
type NavNode struct {
	X, Z     int
	Walkable bool
	Grid     *NavGrid
}

var navDirs = []struct{ dx, dz int }{
	{-1, 0}, {1, 0}, {0, -1}, {0, 1}, // Cardinal
	{-1, -1}, {1, -1}, {-1, 1}, {1, 1}, // Diagonal
}

// PathNeighbors returns adjacent walkable nodes (implements astar.Pather).
// Diagonals are only offered when both cardinal cells beside them are open,
// so paths never clip a wall corner.
func (n *NavNode) PathNeighbors() []astar.Pather {
	var neighbors []astar.Pather
	for _, d := range navDirs {
		nb := n.Grid.node(n.X+d.dx, n.Z+d.dz)
		if nb == nil || !nb.Walkable {
			continue
		}
		if d.dx != 0 && d.dz != 0 {
			a, b := n.Grid.node(n.X+d.dx, n.Z), n.Grid.node(n.X, n.Z+d.dz)
			if a == nil || b == nil || !a.Walkable || !b.Walkable {
				continue
			}
		}
		neighbors = append(neighbors, nb)
	}
	return neighbors
}

// PathNeighborCost returns the movement cost between adjacent nodes (implements astar.Pather)
func (n *NavNode) PathNeighborCost(to astar.Pather) float64 {
	return n.PathEstimatedCost(to)
}

// PathEstimatedCost returns heuristic distance to target (implements astar.Pather)
func (n *NavNode) PathEstimatedCost(to astar.Pather) float64 {
	t := to.(*NavNode)
	return math.Hypot(float64(t.X-n.X), float64(t.Z-n.Z))
}

// CreateNavGrid samples the engine on a square grid. A cell is walkable when
// a standing actor fits at every sample point inside it.
func CreateNavGrid(engine *spatial.Engine, extent, cellSize float64) *NavGrid {
	size := int(2 * extent / cellSize)
	grid := &NavGrid{
		Size:     size,
		CellSize: cellSize,
		Origin:   -extent,
		Nodes:    make([][]*NavNode, size),
	}

	gap := cfg.Bot.NavSampleGap
	offsets := []float64{-gap, 0, gap}
	for z := 0; z < size; z++ {
		grid.Nodes[z] = make([]*NavNode, size)
		for x := 0; x < size; x++ {
			c := grid.CellCenter(x, z)
			grid.Nodes[z][x] = &NavNode{
				X:        x,
				Z:        z,
				Walkable: cellClear(engine, c, offsets),
				Grid:     grid,
			}
		}
	}
	return grid
}

func cellClear(engine *spatial.Engine, c mgl64.Vec3, offsets []float64) bool {
	for _, ox := range offsets {
		for _, oz := range offsets {
			if engine.IsBlocked(c.X()+ox, c.Z()+oz, 0, cfg.Player.Height) {
				return false
			}
		}
	}
	return true
}

func (g *NavGrid) node(x, z int) *NavNode {
	if x < 0 || x >= g.Size || z < 0 || z >= g.Size {
		return nil
	}
	return g.Nodes[z][x]
}

// CellOf returns the cell containing a world position, clamped to the grid.
func (g *NavGrid) CellOf(x, z float64) (int, int) {
	cx := int(math.Floor((x - g.Origin) / g.CellSize))
	cz := int(math.Floor((z - g.Origin) / g.CellSize))
	return clampInt(cx, 0, g.Size-1), clampInt(cz, 0, g.Size-1)
}

// CellCenter converts grid coordinates to the world position of the cell
// center, on the ground plane.
func (g *NavGrid) CellCenter(x, z int) mgl64.Vec3 {
	return mgl64.Vec3{
		g.Origin + (float64(x)+0.5)*g.CellSize,
		0,
		g.Origin + (float64(z)+0.5)*g.CellSize,
	}
}

// FindPath uses go-astar to find a path between world positions. The result
// runs from the start cell to the goal cell; nil means unreachable.
func (g *NavGrid) FindPath(startX, startZ, goalX, goalZ float64) []mgl64.Vec3 {
	sx, sz := g.CellOf(startX, startZ)
	gx, gz := g.CellOf(goalX, goalZ)

	start := g.Nodes[sz][sx]
	goal := g.Nodes[gz][gx]

	// Handle case where start or goal is in solid geometry
	if !start.Walkable {
		start = g.findNearestWalkable(sx, sz)
	}
	if !goal.Walkable {
		goal = g.findNearestWalkable(gx, gz)
	}
	if start == nil || goal == nil {
		return nil
	}
	if start == goal {
		return []mgl64.Vec3{g.CellCenter(goal.X, goal.Z)}
	}

	path, _, found := astar.Path(start, goal)
	if !found {
		return nil
	}

	// go-astar walks parent links back from the goal.
	if path[0].(*NavNode) != start {
		for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
			path[i], path[j] = path[j], path[i]
		}
	}

	result := make([]mgl64.Vec3, len(path))
	for i, p := range path {
		n := p.(*NavNode)
		result[i] = g.CellCenter(n.X, n.Z)
	}
	return result
}

// findNearestWalkable finds the nearest walkable node to the given cell
func (g *NavGrid) findNearestWalkable(x, z int) *NavNode {
	// Search in expanding squares
	for radius := 1; radius < 10; radius++ {
		for dz := -radius; dz <= radius; dz++ {
			for dx := -radius; dx <= radius; dx++ {
				if n := g.node(x+dx, z+dz); n != nil && n.Walkable {
					return n
				}
			}
		}
	}
	return nil
}

func clampInt(v, minVal, maxVal int) int {
	return max(minVal, min(maxVal, v))
}
