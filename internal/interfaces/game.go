package interfaces

// Game — команды забега, которые экраны отдают симуляции.
type Game interface {
	StartGame()
	Restart()
	ReturnToMenu()
	Pause()
	Resume()
	IsPaused() bool
	IsOver() bool
}

// Session — то, что нужно экранам от забега помимо команд.
type Session interface {
	Game
	AimAt(x, y float64)
	AimJoystick(dx, dy, deltaTime float64)
	Fire() bool
	Update(deltaTime float64)
}
