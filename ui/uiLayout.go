package ui

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
)

// MainView is the light surface with the settings trigger and panel laid over it.
type MainView struct {
	// Container is the root object of the view
	Container fyne.CanvasObject

	Surface *LightSurface
	Trigger *SettingsTrigger
	Panel   *SettingsPanel
}

// NewMainView assembles the main screen.
//
// The layout structure is:
// - Back: the light surface, filling the window
// - Top right: the settings trigger
// - Right edge: the settings panel, hidden until the trigger is tapped
//
// Parameters:
//   - state: The shared application state
//
// Returns:
//   - *MainView: The assembled view
func NewMainView(state *FlashlightAppState) *MainView {
	v := &MainView{
		Surface: NewLightSurface(state),
		Trigger: NewSettingsTrigger(state.ToggleSettings),
		Panel:   NewSettingsPanel(state),
	}

	v.Trigger.SetOnWhite(state.Light.IsWhite())
	state.Light.RegisterColorCallback(func() {
		v.Trigger.SetOnWhite(state.Light.IsWhite())
	})

	// Empty border regions let taps and drags through to the surface
	top := container.NewPadded(container.NewHBox(layout.NewSpacer(), v.Trigger))
	overlay := container.NewBorder(
		top,               // Top: trigger
		nil,               // Bottom: None
		nil,               // Left: None
		v.Panel.Container, // Right: settings panel
	)

	v.Container = container.NewStack(v.Surface, overlay)
	return v
}

// BuildMainLayout constructs the window content. On first launch the onboarding
// pages are shown; finishing them stores the launch flag and swaps in the main view.
//
// Parameters:
//   - state: The shared application state
//   - firstLaunch: Whether onboarding should be shown
//
// Returns:
//   - fyne.CanvasObject: The complete UI layout ready to be set as window content
func BuildMainLayout(state *FlashlightAppState, firstLaunch bool) fyne.CanvasObject {
	root := container.NewStack()

	showMain := func() {
		mainView := NewMainView(state)
		mainView.Surface.StartHintTimer(state.Config.HintDuration)
		root.Objects = []fyne.CanvasObject{mainView.Container}
		root.Refresh()
	}

	if !firstLaunch {
		showMain()
		return root
	}

	log.Println("[UI] First launch, showing onboarding")
	flow := NewOnboardingFlow(OnboardingSlides)
	flow.RegisterCompleteCallback(state.CompleteOnboarding)
	state.RegisterOnboardingCompletedCallback(showMain)

	root.Objects = []fyne.CanvasObject{NewOnboardingView(flow).Container}
	return root
}
