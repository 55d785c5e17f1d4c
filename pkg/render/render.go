// Package render describes frames as ordered draw directives.
// It does not draw anything; the desktop client and the web shell do.
package render

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// AssetKey names a sprite.
type AssetKey string

const (
	AssetTree        AssetKey = "tree"
	AssetBranchLeft  AssetKey = "branchLeft"
	AssetBranchRight AssetKey = "branchRight"
	AssetPlayerLeft  AssetKey = "playerLeft"
	AssetPlayerRight AssetKey = "playerRight"
	AssetPlayerDead  AssetKey = "playerDead"
	AssetAxe         AssetKey = "axe"
	AssetBackground  AssetKey = "background"
)

// DefaultAssetPaths maps every sprite to its file name inside the assets directory.
var DefaultAssetPaths = map[AssetKey]string{
	AssetTree:        "tree.png",
	AssetBranchLeft:  "branchleft.png",
	AssetBranchRight: "branchright.png",
	AssetPlayerLeft:  "ahunleft.png",
	AssetPlayerRight: "ahunright.png",
	AssetPlayerDead:  "ahundead.png",
	AssetAxe:         "axe.png",
	AssetBackground:  "back3.jpg",
}

// AssetSet reports which sprites loaded successfully.
// Missing sprites are drawn as flat-color placeholders.
type AssetSet interface {
	Has(key AssetKey) bool
}

// NoAssets is an AssetSet without any sprite.
type NoAssets struct{}

func (NoAssets) Has(AssetKey) bool { return false }

// Kind is the shape of a directive.
type Kind int

const (
	KindImage Kind = iota
	KindImageRotated
	KindRect
)

func (k Kind) String() string {
	switch k {
	case KindImage:
		return "image"
	case KindImageRotated:
		return "imageRotated"
	case KindRect:
		return "rect"
	default:
		return "unknown"
	}
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(b []byte) error {
	switch string(b) {
	case "image":
		*k = KindImage
	case "imageRotated":
		*k = KindImageRotated
	case "rect":
		*k = KindRect
	default:
		return fmt.Errorf("unknown directive kind: %q", string(b))
	}
	return nil
}

// Directive is a single draw instruction.
//
// For KindImage and KindRect, X and Y are the top-left corner. A rect with a
// non-zero Angle is rotated about its own center.
// For KindImageRotated, X and Y are the pivot and the image is centered on it.
type Directive struct {
	Kind  Kind     `json:"kind"`
	Key   AssetKey `json:"key,omitempty"`
	X     float64  `json:"x"`
	Y     float64  `json:"y"`
	W     float64  `json:"w"`
	H     float64  `json:"h"`
	Angle float64  `json:"angle,omitempty"`
	Alpha float64  `json:"alpha"`
	Color string   `json:"color,omitempty"`
}

// Image draws a sprite with its top-left corner at (x, y).
func Image(key AssetKey, x, y, w, h float64) Directive {
	return Directive{Kind: KindImage, Key: key, X: x, Y: y, W: w, H: h, Alpha: 1}
}

// ImageRotated draws a sprite centered on (x, y) and rotated by angle radians.
func ImageRotated(key AssetKey, x, y, w, h, angle, alpha float64) Directive {
	return Directive{Kind: KindImageRotated, Key: key, X: x, Y: y, W: w, H: h, Angle: angle, Alpha: alpha}
}

// Rect fills a rectangle with a hex color.
func Rect(x, y, w, h float64, color string, alpha float64) Directive {
	return Directive{Kind: KindRect, X: x, Y: y, W: w, H: h, Color: color, Alpha: alpha}
}

// RotatedRect fills a rectangle rotated by angle radians about its center.
func RotatedRect(x, y, w, h, angle float64, color string, alpha float64) Directive {
	d := Rect(x, y, w, h, color, alpha)
	d.Angle = angle
	return d
}

// HUD is the text and timer overlay of a frame.
type HUD struct {
	Phase      string  `json:"phase"`
	Score      int     `json:"score"`
	HighScore  int     `json:"highScore"`
	TimeLeft   float64 `json:"timeLeft"`
	TimerColor string  `json:"timerColor"`
	// FinalText is set once the game-over screen is shown
	FinalText string `json:"finalText,omitempty"`
}

// Frame is everything needed to draw one tick.
type Frame struct {
	Tick       uint64      `json:"tick"`
	Width      float64     `json:"width"`
	Height     float64     `json:"height"`
	Directives []Directive `json:"directives"`
	HUD        HUD         `json:"hud"`
}

// Copy returns a deep copy of the frame.
func (f *Frame) Copy() *Frame {
	c := *f
	c.Directives = append([]Directive(nil), f.Directives...)
	return &c
}

// ParseHexColor parses #rgb and #rrggbb colors.
func ParseHexColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("invalid color: %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %v", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}
