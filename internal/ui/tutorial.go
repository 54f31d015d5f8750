// internal/ui/tutorial.go
package ui

import (
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"horde-in-town/internal/config"
)

// TutorialPage — один экран обучения.
type TutorialPage struct {
	Title string
	Lines []string
}

// DefaultTutorialPages — четыре страницы, показываемые перед первой игрой.
var DefaultTutorialPages = []TutorialPage{
	{
		Title: "Objective",
		Lines: []string{
			"The dead walk toward town in waves.",
			"Hold the barricade as long as you can.",
			"Zombies at the barricade hurt you every second.",
		},
	},
	{
		Title: "Aim",
		Lines: []string{
			"Drag the joystick in the lower left corner,",
			"or move the mouse, to steer the crosshair.",
		},
	},
	{
		Title: "Shoot",
		Lines: []string{
			"Press FIRE or Space to loose an arrow.",
			"The ring around the button shows the reload.",
			"Each arrow hits one zombie once.",
		},
	},
	{
		Title: "Healing",
		Lines: []string{
			fmt.Sprintf("Every %d kills restore %.0f health.", config.KillsPerHeal, config.HealAmount),
			"Survive, clear waves, beat your best score.",
		},
	},
}

// TutorialPanel листает страницы обучения. Next на последней странице
// закрывает панель.
type TutorialPanel struct {
	Pages []TutorialPage
	Page  int
	Done  bool

	PrevButton *Button
	NextButton *Button
	SkipButton *Button
}

func NewTutorialPanel(pages []TutorialPage) *TutorialPanel {
	cx := config.ScreenWidth / 2
	bottom := config.ScreenHeight - 140
	return &TutorialPanel{
		Pages:      pages,
		PrevButton: NewButton(image.Rect(cx-300, bottom, cx-140, bottom+50), "< Prev"),
		NextButton: NewButton(image.Rect(cx+140, bottom, cx+300, bottom+50), "Next >"),
		SkipButton: NewButton(image.Rect(cx-80, bottom, cx+80, bottom+50), "Skip"),
	}
}

// Reset открывает панель с первой страницы.
func (p *TutorialPanel) Reset() {
	p.Page = 0
	p.Done = len(p.Pages) == 0
	p.syncButtons()
}

func (p *TutorialPanel) Next() {
	if p.Done {
		return
	}
	if p.Page < len(p.Pages)-1 {
		p.Page++
	} else {
		p.Done = true
	}
	p.syncButtons()
}

func (p *TutorialPanel) Prev() {
	if p.Page > 0 {
		p.Page--
	}
	p.syncButtons()
}

func (p *TutorialPanel) Skip() { p.Done = true }

// PageIndicator — подпись вида "2/4".
func (p *TutorialPanel) PageIndicator() string {
	return fmt.Sprintf("%d/%d", p.Page+1, len(p.Pages))
}

// Click обрабатывает нажатие и сообщает, попало ли оно в кнопку.
func (p *TutorialPanel) Click(x, y int) bool {
	switch {
	case p.PrevButton.Click(x, y):
		p.Prev()
	case p.NextButton.Click(x, y):
		p.Next()
	case p.SkipButton.Click(x, y):
		p.Skip()
	default:
		return false
	}
	return true
}

func (p *TutorialPanel) syncButtons() {
	p.PrevButton.Disabled = p.Page == 0
	if p.Page == len(p.Pages)-1 {
		p.NextButton.Text = "Play"
	} else {
		p.NextButton.Text = "Next >"
	}
}

func (p *TutorialPanel) Update(deltaTime float64) {
	p.PrevButton.Update(deltaTime)
	p.NextButton.Update(deltaTime)
	p.SkipButton.Update(deltaTime)
}

func (p *TutorialPanel) Draw(screen *ebiten.Image, fonts *Fonts, cursor image.Point) {
	if p.Done || p.Page >= len(p.Pages) {
		return
	}
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.PanelColor, false)

	page := p.Pages[p.Page]
	cx := config.ScreenWidth / 2
	DrawCentered(screen, page.Title, fonts.Title, cx, 160, config.TextLightColor)
	for i, line := range page.Lines {
		DrawCentered(screen, line, fonts.Button, cx, 260+i*40, config.TextLightColor)
	}
	text.Draw(screen, p.PageIndicator(), fonts.HUD, config.ScreenWidth-80, 40, config.TextLightColor)

	for _, b := range []*Button{p.PrevButton, p.NextButton, p.SkipButton} {
		b.Draw(screen, fonts.Button, cursor.In(b.Rect))
	}
}
