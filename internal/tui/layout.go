package tui

import "miniapp/internal/domain"

type rowKind int

const (
	rowText rowKind = iota
	rowInput
	rowButton
)

type row struct {
	kind  rowKind
	id    domain.ElementID
	label string
}

type section struct {
	title string
	rows  []row
}

func text(id domain.ElementID, label string) row   { return row{kind: rowText, id: id, label: label} }
func input(id domain.ElementID, label string) row  { return row{kind: rowInput, id: id, label: label} }
func button(id domain.ElementID, label string) row { return row{kind: rowButton, id: id, label: label} }

// layout mirrors the panels of the mini app page.
var layout = []section{
	{"Theme", []row{
		text(domain.ColorSchemeDisplay, "Color scheme"),
		text(domain.BgColorDisplay, "Background"),
		text(domain.TextColorDisplay, "Text color"),
	}},
	{"Device Storage", []row{
		input(domain.DSKey, "Key"),
		input(domain.DSValue, "Value"),
		button(domain.DSSetItem, "Set Item"),
		button(domain.DSGetItem, "Get Item"),
		button(domain.DSRemoveItem, "Remove Item"),
		button(domain.DSClearAll, "Clear All"),
		text(domain.DSResult, "Result"),
	}},
	{"Secure Storage", []row{
		input(domain.SSKey, "Key"),
		input(domain.SSValue, "Value"),
		button(domain.SSSetItem, "Set Item"),
		button(domain.SSGetItem, "Get Item"),
		button(domain.SSRemoveItem, "Remove Item"),
		button(domain.SSClearAll, "Clear All"),
		button(domain.SSRestoreItem, "Restore Item"),
		text(domain.SSResult, "Result"),
	}},
	{"Fullscreen", []row{
		button(domain.RequestFullscreen, "Request Fullscreen"),
		button(domain.ExitFullscreen, "Exit Fullscreen"),
		text(domain.FullscreenStatus, "Fullscreen"),
		text(domain.SafeAreaTop, "Safe area top"),
		text(domain.SafeAreaBottom, "Safe area bottom"),
		text(domain.ContentSafeAreaTop, "Content safe area top"),
		text(domain.ContentSafeAreaBottom, "Content safe area bottom"),
	}},
	{"Location", []row{
		button(domain.RequestLocation, "Request Location"),
		text(domain.LocationStatus, "Status"),
		text(domain.Latitude, "Latitude"),
		text(domain.Longitude, "Longitude"),
		text(domain.Altitude, "Altitude"),
		text(domain.Accuracy, "Accuracy"),
	}},
}

// focusables lists the inputs and buttons in tab order.
func focusables() []row {
	var out []row
	for _, s := range layout {
		for _, r := range s.rows {
			if r.kind != rowText {
				out = append(out, r)
			}
		}
	}
	return out
}
