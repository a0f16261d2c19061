package ui

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/delvepad/ai-delvepad/internal/model"
)

// Row sizing
const (
	RowMinWidth  float32 = 240
	RowMinHeight float32 = 56
)

// RowMode selects which action buttons an ItemRow shows
type RowMode int

const (
	// RowModeCustom shows favorite, open and delete actions
	RowModeCustom RowMode = iota
	// RowModeFavorite shows completed, open and unfavorite actions
	RowModeFavorite
)

// ItemRow is a compact catalog item row
type ItemRow struct {
	widget.BaseWidget

	item         model.CatalogItem
	mode         RowMode
	favorite     bool
	completed    bool
	localization *Localization

	titleLabel  *widget.Label
	detailLabel *widget.Label

	toggleBtn *widget.Button
	openBtn   *widget.Button
	removeBtn *widget.Button

	onToggle func(id string)
	onOpen   func(link string)
	onRemove func(id string)
}

// NewItemRow creates a row for the given mode. Content is filled in by UpdateItem.
func NewItemRow(mode RowMode, localization *Localization) *ItemRow {
	r := &ItemRow{
		mode:         mode,
		localization: localization,
	}
	r.ExtendBaseWidget(r)
	r.createUI()
	return r
}

// SetCallbacks sets the action callbacks
func (r *ItemRow) SetCallbacks(onToggle func(id string), onOpen func(link string), onRemove func(id string)) {
	if onToggle == nil || onOpen == nil || onRemove == nil {
		log.Printf("Warning: ItemRow callbacks incomplete for mode %d", r.mode)
	}
	r.onToggle = onToggle
	r.onOpen = onOpen
	r.onRemove = onRemove
}

// UpdateItem rebinds the row to item and its current flags
func (r *ItemRow) UpdateItem(item model.CatalogItem, favorite, completed bool) {
	r.item = item
	r.favorite = favorite
	r.completed = completed
	r.updateFromItem()
	r.Refresh()
}

// SetRemovable enables or disables the remove action
func (r *ItemRow) SetRemovable(removable bool) {
	if removable {
		r.removeBtn.Enable()
	} else {
		r.removeBtn.Disable()
	}
}

// Item returns the bound item
func (r *ItemRow) Item() model.CatalogItem {
	return r.item
}

func (r *ItemRow) createUI() {
	r.titleLabel = widget.NewLabel("")
	r.titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	r.titleLabel.Truncation = fyne.TextTruncateEllipsis

	r.detailLabel = widget.NewLabel("")
	r.detailLabel.Importance = widget.LowImportance

	r.toggleBtn = widget.NewButton("", func() {
		if r.onToggle != nil {
			r.onToggle(r.item.ID)
		}
	})
	r.toggleBtn.Importance = widget.LowImportance

	r.openBtn = widget.NewButton(r.localization.GetText(KeyOpen), func() {
		if r.onOpen != nil {
			r.onOpen(r.item.Link())
		}
	})
	r.openBtn.Importance = widget.MediumImportance

	removeText := KeyDelete
	if r.mode == RowModeFavorite {
		removeText = KeyRemoveFavorite
	}
	r.removeBtn = widget.NewButton(r.localization.GetText(removeText), func() {
		if r.onRemove != nil {
			r.onRemove(r.item.ID)
		}
	})
	r.removeBtn.Importance = widget.DangerImportance
}

func (r *ItemRow) updateFromItem() {
	r.titleLabel.SetText(cleanTitle(r.item.Title))
	r.detailLabel.SetText(itemDetail(r.item))

	switch r.mode {
	case RowModeFavorite:
		if r.completed {
			r.toggleBtn.SetText(IconCompleted)
			r.toggleBtn.Importance = widget.SuccessImportance
		} else {
			r.toggleBtn.SetText(IconPending)
			r.toggleBtn.Importance = widget.LowImportance
		}
	default:
		if r.favorite {
			r.toggleBtn.SetText(IconStarFilled)
			r.toggleBtn.Importance = widget.WarningImportance
		} else {
			r.toggleBtn.SetText(IconStarEmpty)
			r.toggleBtn.Importance = widget.LowImportance
		}
	}

	if _, ok := model.ParseLink(r.item.Link()); ok {
		r.openBtn.Enable()
	} else {
		r.openBtn.Disable()
	}
}

// CreateRenderer creates the widget renderer
func (r *ItemRow) CreateRenderer() fyne.WidgetRenderer {
	text := container.NewVBox(r.titleLabel, r.detailLabel)
	actions := container.NewHBox(r.openBtn, r.removeBtn)
	return widget.NewSimpleRenderer(container.NewBorder(nil, nil, r.toggleBtn, actions, text))
}

// MinSize keeps rows tappable on small screens
func (r *ItemRow) MinSize() fyne.Size {
	size := r.BaseWidget.MinSize()
	return fyne.NewSize(max(size.Width, RowMinWidth), max(size.Height, RowMinHeight))
}

// itemDetail formats the secondary line: platform, duration, year
func itemDetail(item model.CatalogItem) string {
	parts := make([]string, 0, 3)
	if item.Platform != "" {
		parts = append(parts, item.Platform)
	}
	if item.DurationMinutes > 0 {
		parts = append(parts, fmt.Sprintf(MinutesFormat, item.DurationMinutes))
	}
	if item.Year > 0 {
		parts = append(parts, strconv.Itoa(item.Year))
	}
	return strings.Join(parts, MiddleDotSeparator)
}

func cleanTitle(title string) string {
	title = strings.NewReplacer("\n", " ", "\r", " ", "\t", " ").Replace(title)
	return strings.TrimSpace(title)
}
