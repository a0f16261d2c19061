package ui

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/delvepad/ai-delvepad/internal/store"
)

// AddItemForm collects the fields of a custom tutorial. Submit stays
// disabled until every field has a value.
type AddItemForm struct {
	store        *store.Store
	localization *Localization

	titleEntry    *widget.Entry
	platformEntry *widget.Entry
	minutesEntry  *widget.Entry
	yearEntry     *widget.Entry
	urlEntry      *widget.Entry
	submitBtn     *widget.Button
	cancelBtn     *widget.Button

	form *widget.Form
}

// NewAddItemForm builds the form. onDone runs after a successful submit or cancel.
func NewAddItemForm(catalogStore *store.Store, localization *Localization, mobile *MobileUI, onDone func()) *AddItemForm {
	f := &AddItemForm{
		store:        catalogStore,
		localization: localization,
	}

	f.titleEntry = mobile.CreateMobileEntry(localization.GetText(KeyTitle))
	f.platformEntry = mobile.CreateMobileEntry("Youtube")
	f.minutesEntry = mobile.CreateMobileEntry("10")
	f.yearEntry = mobile.CreateMobileEntry("2024")
	f.urlEntry = mobile.CreateMobileEntry("https://")

	for _, entry := range f.entries() {
		entry.OnChanged = func(string) { f.updateSubmitState() }
	}

	f.form = widget.NewForm(
		widget.NewFormItem(localization.GetText(KeyTitle), f.titleEntry),
		widget.NewFormItem(localization.GetText(KeyPlatform), f.platformEntry),
		widget.NewFormItem(localization.GetText(KeyMinutes), f.minutesEntry),
		widget.NewFormItem(localization.GetText(KeyYear), f.yearEntry),
		widget.NewFormItem(localization.GetText(KeyURL), f.urlEntry),
	)

	f.submitBtn = widget.NewButton(localization.GetText(KeyAdd), func() {
		if f.Submit() && onDone != nil {
			onDone()
		}
	})
	f.submitBtn.Importance = widget.HighImportance
	f.cancelBtn = widget.NewButton(localization.GetText(KeyCancel), func() {
		if onDone != nil {
			onDone()
		}
	})

	f.updateSubmitState()
	return f
}

// Input returns the current field values
func (f *AddItemForm) Input() store.CustomItemInput {
	return store.CustomItemInput{
		Title:           f.titleEntry.Text,
		Platform:        f.platformEntry.Text,
		DurationMinutes: f.minutesEntry.Text,
		Year:            f.yearEntry.Text,
		URL:             f.urlEntry.Text,
	}
}

// CanSubmit reports whether every required field is filled in
func (f *AddItemForm) CanSubmit() bool {
	return f.store.CanSubmit(f.Input())
}

// Submit adds the item to the store. Returns false when a field is missing.
func (f *AddItemForm) Submit() bool {
	item, err := f.store.AddCustomItem(f.Input())
	if err != nil {
		log.Printf("Add custom item rejected: %v", err)
		return false
	}
	log.Printf("Custom item %s added from form", item.ID)
	return true
}

// Widget returns the form for embedding in a dialog
func (f *AddItemForm) Widget() fyne.CanvasObject {
	return container.NewBorder(nil, container.NewGridWithColumns(2, f.cancelBtn, f.submitBtn), nil, nil, f.form)
}

func (f *AddItemForm) entries() []*widget.Entry {
	return []*widget.Entry{f.titleEntry, f.platformEntry, f.minutesEntry, f.yearEntry, f.urlEntry}
}

func (f *AddItemForm) updateSubmitState() {
	if f.submitBtn == nil {
		return
	}
	if f.CanSubmit() {
		f.submitBtn.Enable()
	} else {
		f.submitBtn.Disable()
	}
}

// onShowAddForm opens the add-tutorial form in a dialog
func (ui *RootUI) onShowAddForm() {
	var d dialog.Dialog
	form := NewAddItemForm(ui.store, ui.localization, ui.mobile, func() {
		if d != nil {
			d.Hide()
		}
	})

	d = dialog.NewCustomWithoutButtons(ui.localization.GetText(KeyAddCustomItem), form.Widget(), ui.window)
	d.Resize(fyne.NewSize(FormDialogWidth, FormDialogHeight))
	d.Show()
}
