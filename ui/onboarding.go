package ui

import (
	"image/color"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// Slide is one page of the first-run introduction.
type Slide struct {
	Title       string
	Description string
	Icon        fyne.Resource
	Color       color.NRGBA
}

// OnboardingSlides are shown once, on first launch.
var OnboardingSlides = []Slide{
	{Title: "Welcome", Description: "Your minimalist light source.", Icon: theme.VisibilityIcon(), Color: color.NRGBA{R: 0xFF, G: 0xD7, B: 0x00, A: 255}},
	{Title: "Gestures", Description: "Swipe UP/DOWN to control brightness.", Icon: theme.MoveUpIcon(), Color: color.NRGBA{R: 0x00, G: 0x7B, B: 0xFF, A: 255}},
	{Title: "Colors", Description: "Pick from presets or use the wheel.", Icon: theme.ColorPaletteIcon(), Color: color.NRGBA{R: 0xFF, G: 0x69, B: 0xB4, A: 255}},
	{Title: "Disco", Description: "Triple speed rainbow with strobe!", Icon: theme.MediaPlayIcon(), Color: color.NRGBA{R: 0x39, G: 0xFF, B: 0x14, A: 255}},
}

// OnboardingFlow walks linearly through the slides. Once the last slide is
// confirmed the flow is complete and stays complete.
type OnboardingFlow struct {
	slides   []Slide
	index    int
	complete bool

	onComplete []func()
}

// NewOnboardingFlow creates a flow over slides, starting at the first one.
func NewOnboardingFlow(slides []Slide) *OnboardingFlow {
	return &OnboardingFlow{slides: slides}
}

// Index returns the position of the current slide.
func (f *OnboardingFlow) Index() int { return f.index }

// Len returns the number of slides.
func (f *OnboardingFlow) Len() int { return len(f.slides) }

// Current returns the slide being shown.
func (f *OnboardingFlow) Current() Slide { return f.slides[f.index] }

// IsLast reports whether the current slide is the final one.
func (f *OnboardingFlow) IsLast() bool { return f.index == len(f.slides)-1 }

// Complete reports whether the flow was finished.
func (f *OnboardingFlow) Complete() bool { return f.complete }

// ButtonLabel is "Get Started" on the last slide and "Next" before it.
func (f *OnboardingFlow) ButtonLabel() string {
	if f.IsLast() {
		return "Get Started"
	}
	return "Next"
}

// Next moves to the following slide, or completes the flow on the last one.
// Completion callbacks run exactly once.
func (f *OnboardingFlow) Next() {
	if f.complete {
		return
	}
	if !f.IsLast() {
		f.index++
		return
	}

	f.complete = true
	log.Println("[UI] Onboarding finished")
	for _, callback := range f.onComplete {
		callback()
	}
}

// RegisterCompleteCallback registers a callback for the end of the flow.
func (f *OnboardingFlow) RegisterCompleteCallback(callback func()) {
	f.onComplete = append(f.onComplete, callback)
}

// OnboardingView shows the current slide of a flow with its icon, title,
// description, page dots and the Next / Get Started button.
type OnboardingView struct {
	// Container is the view's root object
	Container fyne.CanvasObject

	// Button advances the flow
	Button *widget.Button

	flow       *OnboardingFlow
	iconCircle *canvas.Circle
	icon       *widget.Icon
	title      *canvas.Text
	desc       *canvas.Text
	dots       []*canvas.Circle
}

// NewOnboardingView builds the view for flow.
//
// Parameters:
//   - flow: The onboarding flow to display and advance
//
// Returns:
//   - *OnboardingView: The view, showing the flow's current slide
func NewOnboardingView(flow *OnboardingFlow) *OnboardingView {
	v := &OnboardingView{flow: flow}

	v.iconCircle = canvas.NewCircle(color.Transparent)
	v.icon = widget.NewIcon(nil)
	iconStack := container.NewStack(v.iconCircle, container.NewPadded(container.NewPadded(v.icon)))
	iconBox := container.NewGridWrap(fyne.NewSquareSize(IconCircleSize), iconStack)

	v.title = canvas.NewText("", SlideTitleColor)
	v.title.TextSize = SlideTitleTextSize
	v.title.TextStyle = fyne.TextStyle{Bold: true}
	v.title.Alignment = fyne.TextAlignCenter

	v.desc = canvas.NewText("", SlideTextColor)
	v.desc.TextSize = SlideTextSize
	v.desc.Alignment = fyne.TextAlignCenter

	dotRow := container.NewHBox()
	for i := 0; i < flow.Len(); i++ {
		dot := canvas.NewCircle(SwatchBorderColor)
		v.dots = append(v.dots, dot)
		dotRow.Add(container.NewGridWrap(fyne.NewSquareSize(10), dot))
	}

	v.Button = widget.NewButton("", func() {
		flow.Next()
		if !flow.Complete() {
			v.Refresh()
		}
	})
	v.Button.Importance = widget.HighImportance

	bg := canvas.NewRectangle(color.White)
	v.Container = container.NewStack(bg, container.NewVBox(
		layout.NewSpacer(),
		container.NewCenter(iconBox),
		v.title,
		v.desc,
		layout.NewSpacer(),
		container.NewCenter(dotRow),
		container.NewPadded(v.Button),
	))

	v.Refresh()
	return v
}

// Refresh redraws the view for the flow's current slide.
func (v *OnboardingView) Refresh() {
	slide := v.flow.Current()

	tint := slide.Color
	tint.A = 0x20
	v.iconCircle.FillColor = tint
	v.iconCircle.Refresh()
	v.icon.SetResource(slide.Icon)

	v.title.Text = slide.Title
	v.title.Refresh()
	v.desc.Text = slide.Description
	v.desc.Refresh()

	for i, dot := range v.dots {
		if i == v.flow.Index() {
			dot.FillColor = AccentColor
		} else {
			dot.FillColor = SwatchBorderColor
		}
		dot.Refresh()
	}

	v.Button.SetText(v.flow.ButtonLabel())
}
