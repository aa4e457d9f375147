package main

import (
	"fmt"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"
	"honnef.co/go/spline"
)

const (
	frameInterval = 16 * time.Millisecond // ~60 FPS
	statusRows    = 1
	polylineSteps = 40
)

var (
	curveStyle   = tcell.StyleDefault.Foreground(tcell.ColorBlue)
	controlStyle = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	markerStyle  = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	statusStyle  = tcell.StyleDefault.Foreground(tcell.ColorWhite).Reverse(true)
	errorStyle   = tcell.StyleDefault.Foreground(tcell.ColorRed)
)

var parameterizations = []spline.Parameterization{spline.Uniform, spline.Centripetal, spline.Chordal}

// Demo is the interactive terminal view. It draws the curve, its control
// points and a marker that a [spline.Follower] moves along the curve.
//
// Keys:
//
//	+, -     change speed
//	r        reverse direction
//	a        cycle parameterization
//	t, T     decrease, increase tension
//	c        toggle closed curve
//	q, Esc   quit
type Demo struct {
	screen        tcell.Screen
	width, height int

	points   []spline.Point
	opts     spline.CatmullRomOptions
	curve    *spline.CatmullRom
	follower spline.Follower
	// toScreen maps curve coordinates to terminal cells.
	toScreen spline.Affine

	lastFrame time.Time
	// message is shown in the status line until the next successful change.
	message string
}

func NewDemo(points []spline.Point, opts spline.CatmullRomOptions, speed float64) (*Demo, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}

	d := &Demo{
		screen:    screen,
		points:    points,
		opts:      opts,
		follower:  spline.Follower{Speed: speed},
		lastFrame: time.Now(),
	}
	d.width, d.height = screen.Size()
	if err := d.rebuild(); err != nil {
		screen.Fini()
		return nil, err
	}
	return d, nil
}

// rebuild constructs the curve from the current options, keeping the
// follower's relative progress along the curve.
func (d *Demo) rebuild() error {
	c, err := spline.NewCatmullRomOpt(d.points, d.opts)
	if err != nil {
		return err
	}
	if old := d.follower.Curve; old != nil && old.Length() > 0 {
		d.follower.Distance = d.follower.Distance / old.Length() * c.Length()
	}
	d.curve = c
	d.follower.Curve = c
	d.layout()
	return nil
}

// layout fits the curve's bounding box into the area below the status line.
func (d *Demo) layout() {
	bbox := d.curve.BoundingBox().Inflate(2, 2)
	dst := spline.Rect{X0: 0, Y0: statusRows, X1: float64(d.width - 1), Y1: float64(d.height - 1)}
	d.toScreen = spline.MapRect(bbox, dst)
}

func (d *Demo) set(pt spline.Point, r rune, style tcell.Style) {
	pt = pt.Round()
	x, y := int(pt.X), int(pt.Y)
	if x < 0 || x >= d.width || y < statusRows || y >= d.height {
		return
	}
	d.screen.SetContent(x, y, r, nil, style)
}

func (d *Demo) text(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		if x >= d.width {
			return
		}
		d.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

// arrow picks the arrow closest to the direction of v, in screen space.
func arrow(v spline.Vec2) rune {
	if v == (spline.Vec2{}) {
		return '@'
	}
	arrows := []rune("→↘↓↙←↖↑↗")
	sector := int(math.Round(v.Angle()/(math.Pi/4))) % len(arrows)
	if sector < 0 {
		sector += len(arrows)
	}
	return arrows[sector]
}

func (d *Demo) draw() {
	now := time.Now()
	dt := now.Sub(d.lastFrame)
	d.lastFrame = now

	d.screen.Clear()

	for pt := range spline.Transform(d.curve.Polyline(polylineSteps), d.toScreen) {
		d.set(pt, '·', curveStyle)
	}
	for _, pt := range d.curve.Points() {
		d.set(pt.Transform(d.toScreen), 'o', controlStyle)
	}

	pos, tan, ok := d.follower.Advance(dt)
	if ok {
		if d.follower.Speed < 0 {
			tan = tan.Negate()
		}
		screenPos := pos.Transform(d.toScreen)
		screenDir := pos.Translate(tan).Transform(d.toScreen).Sub(screenPos)
		d.set(screenPos, arrow(screenDir), markerStyle)
	}

	status := fmt.Sprintf(" alpha %.1f  tension %.1f  closed %t  speed %.0f  distance %6.1f / %.1f ",
		float64(d.curve.Alpha()), d.curve.Tension(), d.curve.Closed(),
		d.follower.Speed, d.follower.Distance, d.curve.Length())
	d.text(0, 0, status, statusStyle)
	if d.message != "" {
		d.text(len([]rune(status))+1, 0, d.message, errorStyle)
	}

	d.screen.Show()
}

func (d *Demo) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() != tcell.KeyRune {
			return true
		}
		prev := d.opts
		switch ev.Rune() {
		case 'q':
			return false
		case '+':
			d.follower.Speed += 5
		case '-':
			d.follower.Speed -= 5
		case 'r':
			d.follower.Speed = -d.follower.Speed
		case 'a':
			for i, p := range parameterizations {
				if p == d.opts.Alpha {
					d.opts.Alpha = parameterizations[(i+1)%len(parameterizations)]
					break
				}
			}
		case 't':
			d.opts.Tension = max(0, d.opts.Tension-0.1)
		case 'T':
			d.opts.Tension = min(1, d.opts.Tension+0.1)
		case 'c':
			d.opts.Closed = !d.opts.Closed
		}
		if d.opts != prev {
			if err := d.rebuild(); err != nil {
				// Keep showing the last valid curve.
				d.opts = prev
				d.message = err.Error()
			} else {
				d.message = ""
			}
		}

	case *tcell.EventResize:
		d.screen.Sync()
		d.width, d.height = d.screen.Size()
		d.layout()
	}
	return true
}

// Run draws frames until the user quits. It finalizes the screen before
// returning.
func (d *Demo) Run() {
	defer d.screen.Fini()
	d.loop()
}

func (d *Demo) loop() {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := d.screen.PollEvent()
			if ev == nil {
				// The screen has been finalized.
				return
			}
			eventChan <- ev
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if !d.handleInput(ev) {
				return
			}
		case <-ticker.C:
			d.draw()
		}
	}
}
