package gridworld

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"os"
	"strings"
	"time"

	"github.com/fogleman/gg"
	"gorgonia.org/tensor"
)

// RenderMode determines how a GridWorld displays itself
type RenderMode string

const (
	// NoRender disables rendering altogether
	NoRender RenderMode = ""

	// HumanRender draws every state of the environment to the terminal
	// as it is reached, paced to FrameRate frames per second
	HumanRender RenderMode = "human"

	// RGBRender makes Render return the current state of the
	// environment as an RGB pixel tensor
	RGBRender RenderMode = "rgb_array"
)

const (
	// FrameRate is the number of frames drawn per second in
	// HumanRender mode
	FrameRate int = 4

	// WindowSize is the height in pixels of the frames Render returns
	// in RGBRender mode. Cells are square, so frames are WindowSize
	// scaled by cols/rows pixels wide.
	WindowSize int = 1024

	gridLineWidth float64 = 2.0

	clearScreen = "\x1b[3;J\x1b[H\x1b[2J"

	agentRune  = '●'
	targetRune = '■'
	emptyRune  = '·'
)

// Shades used to draw RGB frames of the environment
var (
	canvasShade = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	targetShade = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	agentShade  = color.RGBA{R: 0, G: 0, B: 255, A: 255}
	lineShade   = color.RGBA{R: 0, G: 0, B: 0, A: 255}
)

// validate returns an error for unknown render modes
func (m RenderMode) validate() error {
	switch m {
	case NoRender, HumanRender, RGBRender:
		return nil
	}

	return fmt.Errorf("no such render mode %q", m)
}

// Render returns the current state of the environment as an (H, W, 3)
// tensor of 8-bit RGB values, with the grid drawn WindowSize pixels
// tall. Render returns a nil frame in every mode but RGBRender:
// environments in HumanRender mode draw themselves to the terminal on
// every Reset and Step instead.
func (g *GridWorld) Render() (*tensor.Dense, error) {
	if g.renderMode != RGBRender {
		return nil, nil
	}

	targets := TargetPositions(g.currentStep.Observation)

	return renderFrame(g.agent, targets, g.rows, g.cols), nil
}

// Close releases the rendering resources of the environment. Close is
// safe to call multiple times and safe to call on environments that
// never rendered.
func (g *GridWorld) Close() error {
	g.renderer = nil
	return nil
}

// drawFrame draws the current state of the environment to the terminal
// in HumanRender mode and is a no-op in every other mode. The renderer
// is created on the first drawn frame.
func (g *GridWorld) drawFrame() error {
	if g.renderMode != HumanRender {
		return nil
	}
	if g.renderer == nil {
		g.renderer = newRenderer(os.Stdout)
	}

	targets := TargetPositions(g.currentStep.Observation)

	return g.renderer.drawText(g.agent, targets, g.rows, g.cols)
}

// renderFrame rasterizes a state of the environment: targets as filled
// squares, the agent as a disc of radius one third of a cell, and grid
// lines between cells
func renderFrame(agent Position, targets []Position, rows,
	cols int) *tensor.Dense {
	cell := float64(WindowSize) / float64(rows)
	width := int(cell * float64(cols))
	height := WindowSize

	dc := gg.NewContext(width, height)
	dc.SetColor(canvasShade)
	dc.Clear()

	// Targets are drawn first so that the agent appears above a target
	// sharing its cell
	dc.SetColor(targetShade)
	for _, target := range targets {
		dc.DrawRectangle(cell*float64(target.Col), cell*float64(target.Row),
			cell, cell)
	}
	dc.Fill()

	dc.SetColor(agentShade)
	dc.DrawCircle(cell*(float64(agent.Col)+0.5),
		cell*(float64(agent.Row)+0.5), cell/3)
	dc.Fill()

	dc.SetColor(lineShade)
	dc.SetLineWidth(gridLineWidth)
	for i := 0; i <= rows; i++ {
		y := cell * float64(i)
		dc.DrawLine(0, y, float64(width), y)
	}
	for j := 0; j <= cols; j++ {
		x := cell * float64(j)
		dc.DrawLine(x, 0, x, float64(height))
	}
	dc.Stroke()

	return frame(dc.Image())
}

// frame converts a rasterized image of the environment into an
// (H, W, 3) tensor of 8-bit RGB values
func frame(img image.Image) *tensor.Dense {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	pixels := make([]uint8, 0, height*width*3)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			pixels = append(pixels, uint8(r>>8), uint8(g>>8), uint8(b>>8))
		}
	}

	return tensor.New(tensor.WithShape(height, width, 3),
		tensor.WithBacking(pixels))
}

// renderer owns the external resources used to display a GridWorld in
// HumanRender mode: the output that frames are drawn to and the clock
// pacing the frames. A renderer is created lazily on the first drawn
// frame and released by Close.
type renderer struct {
	out       io.Writer
	lastFrame time.Time
}

func newRenderer(out io.Writer) *renderer {
	return &renderer{out: out}
}

// drawText draws a text frame showing the agent and the targets on the
// grid, pacing successive frames to FrameRate frames per second
func (r *renderer) drawText(agent Position, targets []Position, rows,
	cols int) error {
	r.wait()

	var frame strings.Builder
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			cell := Position{Row: i, Col: j}
			switch {
			case cell == agent:
				frame.WriteRune(agentRune)
			case contains(targets, cell):
				frame.WriteRune(targetRune)
			default:
				frame.WriteRune(emptyRune)
			}
			if j < cols-1 {
				frame.WriteRune(' ')
			}
		}
		frame.WriteRune('\n')
	}

	// Clear screen and draw
	if _, err := io.WriteString(r.out, clearScreen); err != nil {
		return fmt.Errorf("drawText: could not clear screen: %v", err)
	}
	if _, err := io.WriteString(r.out, frame.String()); err != nil {
		return fmt.Errorf("drawText: could not draw frame: %v", err)
	}

	return nil
}

// wait blocks until the next frame is due
func (r *renderer) wait() {
	frameTime := time.Second / time.Duration(FrameRate)
	if elapsed := time.Since(r.lastFrame); elapsed < frameTime {
		time.Sleep(frameTime - elapsed)
	}
	r.lastFrame = time.Now()
}
