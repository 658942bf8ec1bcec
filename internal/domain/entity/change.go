package entity

// ChangeKind is the host's name for a window lifecycle event.
type ChangeKind string

const (
	ChangeAdd                   ChangeKind = "add"
	ChangeRemove                ChangeKind = "remove"
	ChangeFocusChanged          ChangeKind = "focus_changed"
	ChangeWindowSwap            ChangeKind = "window_swap"
	ChangeSpaceChange           ChangeKind = "space_change"
	ChangeLayoutChange          ChangeKind = "layout_change"
	ChangeApplicationActivate   ChangeKind = "application_activate"
	ChangeApplicationDeactivate ChangeKind = "application_deactivate"
	ChangeUnknown               ChangeKind = "unknown"
)

// Change is an event delivered by the host. Each kind is its own type
// carrying only the fields it needs.
type Change interface {
	Kind() ChangeKind
	isChange()
}

// AddChange reports a new window.
type AddChange struct {
	WindowID WindowID
}

// RemoveChange reports a closed window.
type RemoveChange struct {
	WindowID WindowID
}

// FocusChangedChange reports the newly focused window.
// An empty WindowID clears the focus hint.
type FocusChangedChange struct {
	WindowID WindowID
}

// WindowSwapChange asks for two windows to trade places.
type WindowSwapChange struct {
	WindowID      WindowID
	OtherWindowID WindowID
}

type (
	SpaceChange                 struct{}
	LayoutChange                struct{}
	ApplicationActivateChange   struct{}
	ApplicationDeactivateChange struct{}
)

// UnknownChange is any event kind the layout does not recognize.
type UnknownChange struct {
	Raw string
}

func (AddChange) Kind() ChangeKind                   { return ChangeAdd }
func (RemoveChange) Kind() ChangeKind                { return ChangeRemove }
func (FocusChangedChange) Kind() ChangeKind          { return ChangeFocusChanged }
func (WindowSwapChange) Kind() ChangeKind            { return ChangeWindowSwap }
func (SpaceChange) Kind() ChangeKind                 { return ChangeSpaceChange }
func (LayoutChange) Kind() ChangeKind                { return ChangeLayoutChange }
func (ApplicationActivateChange) Kind() ChangeKind   { return ChangeApplicationActivate }
func (ApplicationDeactivateChange) Kind() ChangeKind { return ChangeApplicationDeactivate }
func (UnknownChange) Kind() ChangeKind               { return ChangeUnknown }

func (AddChange) isChange()                   {}
func (RemoveChange) isChange()                {}
func (FocusChangedChange) isChange()          {}
func (WindowSwapChange) isChange()            {}
func (SpaceChange) isChange()                 {}
func (LayoutChange) isChange()                {}
func (ApplicationActivateChange) isChange()   {}
func (ApplicationDeactivateChange) isChange() {}
func (UnknownChange) isChange()               {}

// ParseChange translates a host event into a Change.
// Unrecognized kinds become UnknownChange.
func ParseChange(kind, windowID, otherWindowID string) Change {
	id := WindowID(windowID)
	switch ChangeKind(kind) {
	case ChangeAdd:
		return AddChange{WindowID: id}
	case ChangeRemove:
		return RemoveChange{WindowID: id}
	case ChangeFocusChanged:
		return FocusChangedChange{WindowID: id}
	case ChangeWindowSwap:
		return WindowSwapChange{WindowID: id, OtherWindowID: WindowID(otherWindowID)}
	case ChangeSpaceChange:
		return SpaceChange{}
	case ChangeLayoutChange:
		return LayoutChange{}
	case ChangeApplicationActivate:
		return ApplicationActivateChange{}
	case ChangeApplicationDeactivate:
		return ApplicationDeactivateChange{}
	default:
		return UnknownChange{Raw: kind}
	}
}
