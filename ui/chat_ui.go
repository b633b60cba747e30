package ui

import (
	"bytes"
	"fmt"
	"image/color"
	"strings"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/sablewood/sablewood/components"
	cfg "github.com/sablewood/sablewood/config"
	"golang.org/x/image/font/gofont/goregular"
)

// ChatUI holds the ebitenui interface for the chat panel
type ChatUI struct {
	UI   *ebitenui.UI
	Chat *components.ChatData

	// Callbacks
	OnSubmit      func(text string)
	OnRecordStart func()
	OnRecordStop  func()

	// Widget references for updates
	backlog      *widget.Text
	input        *widget.TextInput
	recordButton *widget.Button

	// Fonts (stored as interface for ebitenui compatibility)
	normalFace text.Face
	smallFace  text.Face
}

// NewChatUI creates the chat panel UI
func NewChatUI(chat *components.ChatData, onSubmit func(string), onRecordStart, onRecordStop func()) *ChatUI {
	cui := &ChatUI{
		Chat:          chat,
		OnSubmit:      onSubmit,
		OnRecordStart: onRecordStart,
		OnRecordStop:  onRecordStop,
	}

	cui.loadFonts()
	cui.buildUI()

	return cui
}

func (cui *ChatUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	cui.normalFace = &text.GoTextFace{
		Source: fontSource,
		Size:   12,
	}
	cui.smallFace = &text.GoTextFace{
		Source: fontSource,
		Size:   10,
	}
}

func (cui *ChatUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	// Panel anchored bottom-left
	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{10, 14, 10, 210})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(6)),
			widget.RowLayoutOpts.Spacing(4),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(cfg.Chat.PanelWidth, 180),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionStart,
				VerticalPosition:   widget.AnchorLayoutPositionEnd,
			}),
		),
	)

	cui.backlog = widget.NewText(
		widget.TextOpts.Text("", &cui.smallFace, color.RGBA{220, 220, 220, 255}),
		widget.TextOpts.MaxWidth(float64(cfg.Chat.PanelWidth-12)),
	)
	panel.AddChild(cui.backlog)

	inputRow := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(4),
		)),
	)

	cui.input = widget.NewTextInput(
		widget.TextInputOpts.WidgetOpts(widget.WidgetOpts.MinSize(cfg.Chat.PanelWidth-72, 22)),
		widget.TextInputOpts.Image(&widget.TextInputImage{
			Idle:     image.NewNineSliceColor(color.RGBA{30, 40, 30, 255}),
			Disabled: image.NewNineSliceColor(color.RGBA{25, 30, 25, 255}),
		}),
		widget.TextInputOpts.Face(&cui.normalFace),
		widget.TextInputOpts.Color(&widget.TextInputColor{
			Idle:          color.RGBA{255, 255, 255, 255},
			Disabled:      color.RGBA{128, 128, 128, 255},
			Caret:         color.RGBA{255, 255, 255, 255},
			DisabledCaret: color.RGBA{128, 128, 128, 255},
		}),
		widget.TextInputOpts.Placeholder("say something"),
		widget.TextInputOpts.Padding(widget.NewInsetsSimple(4)),
		widget.TextInputOpts.SubmitHandler(func(args *widget.TextInputChangedEventArgs) {
			line := strings.TrimSpace(args.InputText)
			if line == "" {
				return
			}
			if cui.OnSubmit != nil {
				cui.OnSubmit(line)
			}
			cui.input.SetText("")
		}),
	)
	inputRow.AddChild(cui.input)

	cui.recordButton = widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(60, 22)),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:     image.NewNineSliceColor(color.RGBA{100, 40, 40, 255}),
			Hover:    image.NewNineSliceColor(color.RGBA{140, 60, 60, 255}),
			Pressed:  image.NewNineSliceColor(color.RGBA{80, 30, 30, 255}),
			Disabled: image.NewNineSliceColor(color.RGBA{50, 40, 40, 255}),
		}),
		widget.ButtonOpts.Text("Rec", &cui.smallFace, &widget.ButtonTextColor{
			Idle:     color.RGBA{255, 255, 255, 255},
			Hover:    color.RGBA{255, 200, 200, 255},
			Pressed:  color.RGBA{200, 150, 150, 255},
			Disabled: color.RGBA{100, 100, 100, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if cui.Chat.Recording {
				if cui.OnRecordStop != nil {
					cui.OnRecordStop()
				}
			} else if cui.OnRecordStart != nil {
				cui.OnRecordStart()
			}
			cui.UpdateUI()
		}),
	)
	inputRow.AddChild(cui.recordButton)

	panel.AddChild(inputRow)
	rootContainer.AddChild(panel)

	cui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

// UpdateUI refreshes the backlog and the record button label
func (cui *ChatUI) UpdateUI() {
	const visible = 8
	lines := cui.Chat.Lines
	if len(lines) > visible {
		lines = lines[len(lines)-visible:]
	}

	var b strings.Builder
	for _, line := range lines {
		if line.System {
			fmt.Fprintf(&b, "* %s\n", line.Text)
		} else {
			fmt.Fprintf(&b, "%s: %s\n", line.From, line.Text)
		}
	}
	cui.backlog.Label = strings.TrimRight(b.String(), "\n")

	if textWidget := cui.recordButton.Text(); textWidget != nil {
		if cui.Chat.Recording {
			textWidget.Label = "Stop"
		} else {
			textWidget.Label = "Rec"
		}
	}
}

// Update calls the UI's Update method
func (cui *ChatUI) Update() {
	cui.UI.Update()
	cui.UpdateUI()
}
