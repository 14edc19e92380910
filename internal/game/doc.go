// Package game implements the rules of Spider Solitaire.
//
// The rules engine is a handful of pure functions: CreateDeck, DealInitial,
// CanMoveSequence, IsValidMove and CheckAndRemoveCompleteSet. GameState
// builds the player-facing transitions (Click, Move, Deal) on top of them,
// always returning a new state instead of modifying the current one.
package game

// Version of the game, reported to the go-app handler: bumping it makes
// browsers reload the WASM. An empty string makes go-app pick a random
// version on every server restart, handy during development.
var Version = "v0.1.0"
