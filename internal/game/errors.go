package game

import "errors"

// Reasons a move was rejected. The state returned alongside them is unchanged.
var (
	// ErrGameOver: the game already finished (won or lost).
	ErrGameOver = errors.New("game finished")

	// ErrIncompleteGuess: the current guess is shorter than the word length.
	ErrIncompleteGuess = errors.New("guess incomplete")

	// ErrNotInWordList: strict mode is on and the guess is not a known word.
	ErrNotInWordList = errors.New("not in word list")
)

// Reasons a game could not be created.
var (
	// ErrUnsupportedLength: the requested word length is not one of SupportedLengths.
	ErrUnsupportedLength = errors.New("unsupported word length")

	// ErrInvalidSecret: the secret contains something other than a–z.
	ErrInvalidSecret = errors.New("invalid secret")
)
