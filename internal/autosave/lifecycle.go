package autosave

import "log"

// LifecycleHooks is the part of fyne.Lifecycle used to trigger saves
type LifecycleHooks interface {
	SetOnExitedForeground(func())
	SetOnStopped(func())
}

// BindLifecycle saves whenever the app leaves the foreground and when it stops
func BindLifecycle(hooks LifecycleHooks, saver Saver) {
	hooks.SetOnExitedForeground(func() {
		log.Printf("App moving to background - saving data")
		saver.SaveAll()
	})
	hooks.SetOnStopped(func() {
		log.Printf("App stopping - saving data")
		saver.SaveAll()
	})
}
