package ui

import (
	"fmt"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/delvepad/ai-delvepad/internal/content"
	"github.com/delvepad/ai-delvepad/internal/model"
)

// createGlossaryView lists the glossary terms with the selected definition below
func (ui *RootUI) createGlossaryView() fyne.CanvasObject {
	terms := content.Glossary()

	heading := widget.NewLabel("")
	heading.TextStyle = fyne.TextStyle{Bold: true}
	definition := widget.NewLabel("")
	definition.Wrapping = fyne.TextWrapWord

	showTerm := func(term content.Term) {
		heading.SetText(term.Name)
		definition.SetText(term.Definition)
	}

	list := widget.NewList(
		func() int { return len(terms) },
		func() fyne.CanvasObject { return widget.NewLabel("") },
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			obj.(*widget.Label).SetText(terms[id].Name)
		},
	)
	list.OnSelected = func(id widget.ListItemID) {
		showTerm(terms[id])
	}

	for i, term := range terms {
		if term.Name == content.DefaultTerm {
			list.Select(i)
			break
		}
	}
	if def, ok := content.Lookup(content.DefaultTerm); ok {
		showTerm(def)
	}

	detail := container.NewVScroll(container.NewVBox(heading, definition))
	split := container.NewVSplit(list, detail)
	split.Offset = 0.55
	return split
}

// createArticleView renders the LLM process article
func (ui *RootUI) createArticleView() fyne.CanvasObject {
	text := widget.NewRichTextFromMarkdown(content.LLMProcess().Markdown())
	text.Wrapping = fyne.TextWrapWord
	return container.NewVScroll(text)
}

// createItemsView lists the built-in catalog followed by custom tutorials
func (ui *RootUI) createItemsView() fyne.CanvasObject {
	ui.itemList = widget.NewList(
		func() int { return len(ui.allItems) },
		func() fyne.CanvasObject {
			row := NewItemRow(RowModeCustom, ui.localization)
			row.SetCallbacks(ui.onToggleFavorite, ui.onOpenLink, ui.onDeleteItem)
			return row
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			if id >= len(ui.allItems) {
				return
			}
			item := ui.allItems[id]
			row := obj.(*ItemRow)
			row.UpdateItem(item, ui.store.IsFavorite(item.ID), ui.store.IsCompleted(item.ID))
			row.SetRemovable(item.Subject == model.SubjectCustom)
		},
	)

	ui.itemsEmpty = widget.NewLabel(ui.localization.GetText(KeyNoCustomItems))
	ui.itemsEmpty.Wrapping = fyne.TextWrapWord
	ui.itemsEmpty.Alignment = fyne.TextAlignCenter

	addBtn := ui.mobile.CreateMobileButton("+ "+ui.localization.GetText(KeyAddCustomItem), ui.onShowAddForm)
	addBtn.Importance = widget.HighImportance

	return container.NewBorder(ui.itemsEmpty, addBtn, nil, nil, ui.itemList)
}

// createFavoritesView lists favorites with completion toggles and the share action
func (ui *RootUI) createFavoritesView() fyne.CanvasObject {
	ui.favoriteList = widget.NewList(
		func() int { return len(ui.favoriteItems) },
		func() fyne.CanvasObject {
			row := NewItemRow(RowModeFavorite, ui.localization)
			row.SetCallbacks(ui.onToggleCompleted, ui.onOpenLink, ui.onUnfavorite)
			return row
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			if id >= len(ui.favoriteItems) {
				return
			}
			item := ui.favoriteItems[id]
			obj.(*ItemRow).UpdateItem(item, true, ui.store.IsCompleted(item.ID))
		},
	)

	ui.favoritesEmpty = widget.NewLabel(ui.localization.GetText(KeyNoFavorites))
	ui.favoritesEmpty.Wrapping = fyne.TextWrapWord
	ui.favoritesEmpty.Alignment = fyne.TextAlignCenter

	ui.shareBtn = ui.mobile.CreateMobileButton(ui.localization.GetText(KeyShare), ui.onShare)
	ui.shareBtn.Importance = widget.HighImportance

	return container.NewBorder(ui.favoritesEmpty, ui.shareBtn, nil, nil, ui.favoriteList)
}

// createDashboardView shows totals and the completion progress of favorites
func (ui *RootUI) createDashboardView() fyne.CanvasObject {
	ui.totalLabel = widget.NewLabel("")
	ui.favoritedLabel = widget.NewLabel("")
	ui.completedLabel = widget.NewLabel("")
	ui.progressBar = widget.NewProgressBar()
	ui.progressBar.TextFormatter = func() string {
		return fmt.Sprintf(ProgressLabelFormat, int(ui.progressBar.Value*100+0.5))
	}

	cards := ui.mobile.CreateAdaptiveContainer(ui.mobile.Columns(),
		widget.NewCard(ui.localization.GetText(KeyTotalItems), "", ui.totalLabel),
		widget.NewCard(ui.localization.GetText(KeyFavorited), "", ui.favoritedLabel),
		widget.NewCard(ui.localization.GetText(KeyCompleted), "", ui.completedLabel),
	)

	progress := widget.NewCard(ui.localization.GetText(KeyProgress), "", ui.progressBar)
	return container.NewVScroll(container.NewVBox(cards, progress))
}

// updateDashboard writes stats into the dashboard widgets
func (ui *RootUI) updateDashboard(stats model.Stats) {
	ui.totalLabel.SetText(strconv.Itoa(stats.TotalItems))
	ui.favoritedLabel.SetText(strconv.Itoa(stats.FavoritedCount))
	ui.completedLabel.SetText(strconv.Itoa(stats.CompletedCount))
	ui.progressBar.SetValue(stats.ProgressFraction)
}
