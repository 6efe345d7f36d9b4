package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	titleHeight   = 30.0
	sectionHeight = 25.0
	labelHeight   = 15.0
)

// UIWidget is an interface for all UI widgets
type UIWidget interface {
	Update()
	Draw(screen *ebiten.Image)
	GetHeight() float64
	// MoveTo places the widget at y, used while scrolling
	MoveTo(y float64)
}

type SliderWrapper struct {
	*Slider
}

func (s *SliderWrapper) GetHeight() float64 { return s.H + 25 } // label space included
func (s *SliderWrapper) MoveTo(y float64)   { s.Y = y }

type CheckboxWrapper struct {
	*Checkbox
}

func (c *CheckboxWrapper) GetHeight() float64 { return c.Size + 20 }
func (c *CheckboxWrapper) MoveTo(y float64)   { c.Y = y }

type ButtonWrapper struct {
	*Button
}

func (b *ButtonWrapper) GetHeight() float64 { return b.Height + 25 }
func (b *ButtonWrapper) MoveTo(y float64)   { b.Y = y }

// UIPanel manages a collection of UI widgets in a scrollable panel
type UIPanel struct {
	Title         string
	X, Y          float64 // Panel position
	Width, Height float64 // Panel dimensions
	Visible       bool
	Widgets       []UIWidget
	Labels        []string // Labels for widgets
	ScrollOffset  float64  // Current scroll position

	// Styling
	BGColor     color.RGBA
	BorderColor color.RGBA

	sections []PanelSection
}

// PanelSection groups the widgets [StartIndex, EndIndex) under a header
type PanelSection struct {
	Title      string
	StartIndex int
	EndIndex   int
}

// NewUIPanel creates a new, visible, UI panel
func NewUIPanel(title string, x, y, width, height float64) *UIPanel {
	return &UIPanel{
		Title:       title,
		X:           x,
		Y:           y,
		Width:       width,
		Height:      height,
		Visible:     true,
		BGColor:     color.RGBA{R: 40, G: 40, B: 45, A: 200},
		BorderColor: color.RGBA{R: 100, G: 100, B: 110, A: 255},
	}
}

// AddSection opens a section; widgets added next belong to it until EndSection
func (p *UIPanel) AddSection(title string) {
	p.sections = append(p.sections, PanelSection{
		Title:      title,
		StartIndex: len(p.Widgets),
		EndIndex:   len(p.Widgets),
	})
}

// EndSection closes the current section
func (p *UIPanel) EndSection() {
	if len(p.sections) > 0 {
		p.sections[len(p.sections)-1].EndIndex = len(p.Widgets)
	}
}

func (p *UIPanel) add(label string, w UIWidget) {
	p.Widgets = append(p.Widgets, w)
	p.Labels = append(p.Labels, label)
}

// AddSlider adds a slider widget to the panel
func (p *UIPanel) AddSlider(label string, min, max, value float64) *Slider {
	slider := NewSlider(p.X+10, p.Y+p.contentHeight()+labelHeight, p.Width-20, label, min, max, value)
	p.add(label, &SliderWrapper{slider})
	return slider
}

// AddCheckbox adds a checkbox widget to the panel
func (p *UIPanel) AddCheckbox(label string, value bool) *Checkbox {
	checkbox := NewCheckbox(p.X+10, p.Y+p.contentHeight()+labelHeight, label, value)
	p.add(label, &CheckboxWrapper{checkbox})
	return checkbox
}

// AddButton adds a full width button to the panel
func (p *UIPanel) AddButton(label string, onClick func()) *Button {
	button := NewButton(p.X+10, p.Y+p.contentHeight()+labelHeight, p.Width-20, 20, label, onClick)
	p.add("", &ButtonWrapper{button})
	return button
}

// contentHeight is the height of everything added so far
func (p *UIPanel) contentHeight() float64 {
	h := titleHeight + float64(len(p.sections))*sectionHeight
	for _, w := range p.Widgets {
		h += w.GetHeight()
	}
	return h
}

// Contains reports whether the screen point (x, y) is over the visible panel
func (p *UIPanel) Contains(x, y int) bool {
	return p.Visible &&
		float64(x) >= p.X && float64(x) <= p.X+p.Width &&
		float64(y) >= p.Y && float64(y) <= p.Y+p.Height
}

// Update handles scrolling and input for all widgets
func (p *UIPanel) Update() {
	if !p.Visible {
		return
	}
	if _, dy := ebiten.Wheel(); dy != 0 {
		maxScroll := max(0, p.contentHeight()-p.Height+10)
		p.ScrollOffset = max(0, min(maxScroll, p.ScrollOffset-dy*20))
	}
	p.layout()
	for _, widget := range p.Widgets {
		widget.Update()
	}
}

// layout moves every widget to its scrolled position
func (p *UIPanel) layout() {
	y := p.Y + titleHeight - p.ScrollOffset
	p.walk(func(kind int, idx int) {
		switch kind {
		case sectionRow:
			y += sectionHeight
		case widgetRow:
			p.Widgets[idx].MoveTo(y + labelHeight)
			y += p.Widgets[idx].GetHeight()
		}
	})
}

const (
	sectionRow = iota
	widgetRow
)

// walk visits section headers and widgets in display order
func (p *UIPanel) walk(visit func(kind int, idx int)) {
	next := 0
	for i, section := range p.sections {
		// widgets added before the first section
		for ; next < section.StartIndex; next++ {
			visit(widgetRow, next)
		}
		visit(sectionRow, i)
		for ; next < section.EndIndex; next++ {
			visit(widgetRow, next)
		}
	}
	for ; next < len(p.Widgets); next++ {
		visit(widgetRow, next)
	}
}

// Draw renders the panel and all widgets
func (p *UIPanel) Draw(screen *ebiten.Image) {
	if !p.Visible {
		return
	}
	vector.FillRect(screen,
		float32(p.X), float32(p.Y),
		float32(p.Width), float32(p.Height),
		p.BGColor, true)
	vector.StrokeRect(screen,
		float32(p.X), float32(p.Y),
		float32(p.Width), float32(p.Height),
		2, p.BorderColor, true)
	ebitenutil.DebugPrintAt(screen, p.Title, int(p.X+10), int(p.Y+5))

	p.layout()
	y := p.Y + titleHeight - p.ScrollOffset
	visible := func(h float64) bool { return y >= p.Y+titleHeight-5 && y+h <= p.Y+p.Height }
	p.walk(func(kind int, idx int) {
		switch kind {
		case sectionRow:
			if visible(sectionHeight) {
				vector.FillRect(screen,
					float32(p.X+5), float32(y),
					float32(p.Width-10), 20,
					color.RGBA{R: 60, G: 60, B: 70, A: 255}, true)
				ebitenutil.DebugPrintAt(screen, p.sections[idx].Title, int(p.X+10), int(y+2))
			}
			y += sectionHeight
		case widgetRow:
			w := p.Widgets[idx]
			if visible(w.GetHeight()) {
				ebitenutil.DebugPrintAt(screen, p.Labels[idx], int(p.X+10), int(y))
				w.Draw(screen)
			}
			y += w.GetHeight()
		}
	})
}
