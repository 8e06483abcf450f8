package tui

type state int

const (
	loadingState state = iota
	pickState
	playerState
	errorState
)
