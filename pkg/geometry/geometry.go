// Package geometry derives every size used by the game from the viewport width.
package geometry

const (
	// BaseWidth is the viewport width the sprite proportions were tuned for.
	BaseWidth float64 = 400.0

	branchWidthUnits  float64 = 160.0
	branchHeightUnits float64 = 80.0
	treeWidthUnits    float64 = 100.0
	playerSizeUnits   float64 = 100.0
	levelHeightUnits  float64 = 100.0
)

// Geometry holds the scale-derived sizes for one viewport.
type Geometry struct {
	Width  float64
	Height float64
	Scale  float64

	BranchWidth  float64
	BranchHeight float64
	TreeWidth    float64
	PlayerSize   float64
	LevelHeight  float64
}

// New returns the geometry for a viewport of the given size.
// Only the width drives the scale; the height is carried for viewport checks.
func New(width, height float64) Geometry {
	scale := width / BaseWidth
	return Geometry{
		Width:        width,
		Height:       height,
		Scale:        scale,
		BranchWidth:  branchWidthUnits * scale,
		BranchHeight: branchHeightUnits * scale,
		TreeWidth:    treeWidthUnits * scale,
		PlayerSize:   playerSizeUnits * scale,
		LevelHeight:  levelHeightUnits * scale,
	}
}

// CenterX returns the horizontal center of the viewport.
func (g Geometry) CenterX() float64 {
	return g.Width / 2
}

// TrunkLeft returns the x coordinate of the trunk's left edge.
func (g Geometry) TrunkLeft() float64 {
	return g.CenterX() - g.TreeWidth/2
}

// TrunkRight returns the x coordinate of the trunk's right edge.
func (g Geometry) TrunkRight() float64 {
	return g.CenterX() + g.TreeWidth/2
}

// LevelY returns the unscrolled vertical position of a level.
// Level 0 sits at y=0 and higher levels extend upwards (negative y).
func (g Geometry) LevelY(level int) float64 {
	return -float64(level) * g.LevelHeight
}

// Valid reports whether the geometry describes a drawable viewport.
func (g Geometry) Valid() bool {
	return g.Width > 0 && g.Height > 0
}
