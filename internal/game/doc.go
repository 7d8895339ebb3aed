// Package game implements the cipher fill-in-the-blank engine: a word is
// decomposed into tiles, the user hides a subset, the hidden tiles are
// shuffled into a bank, and the user places bank tiles back into the empty
// slots before checking the result.
package game
