package ui

// Button fires on the tick the pointer is pressed inside its rectangle.
type Button struct {
	Label string

	rect Rect
}

// NewButton creates a button.
func NewButton(rect Rect) *Button {
	return &Button{rect: rect}
}

// Bounds returns the button's rectangle.
func (b *Button) Bounds() Rect { return b.rect }

// Control reports whether the button was clicked this tick.
func (b *Button) Control(p Pointer) bool {
	return p.Pressed && b.rect.Contains(p.X, p.Y)
}

// View implements Widget.
func (b *Button) View() View {
	return View{Kind: KindButton, Label: b.Label, Bounds: b.rect, Visible: true}
}

// ImageButton is a Button with idle, hover and down skins.
type ImageButton struct {
	*Button
	Icon Icon

	skin Skin
}

// NewImageButton creates an image button showing icon.
func NewImageButton(rect Rect, icon Icon) *ImageButton {
	return &ImageButton{Button: NewButton(rect), Icon: icon}
}

// Skin returns the skin chosen by the last Control call.
func (b *ImageButton) Skin() Skin { return b.skin }

// Control updates the skin and reports whether the button was clicked.
func (b *ImageButton) Control(p Pointer) bool {
	b.skin = b.SkinFor(p)
	return b.Button.Control(p)
}

// SkinFor returns the skin for a pointer sample without changing state.
func (b *ImageButton) SkinFor(p Pointer) Skin {
	switch {
	case !b.rect.Contains(p.X, p.Y):
		return SkinIdle
	case p.Pressed:
		return SkinDown
	default:
		return SkinHover
	}
}

// View implements Widget.
func (b *ImageButton) View() View {
	v := b.Button.View()
	v.Kind = KindImageButton
	v.Skin = b.skin
	v.Icon = b.Icon
	return v
}
