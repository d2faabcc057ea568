package tui

type shuffledMsg struct {
	deck []string
}

type pickedMsg struct {
	card string
	err  error
}
