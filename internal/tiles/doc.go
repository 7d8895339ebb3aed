// Package tiles decomposes words into phonetic tiles for display and for
// the cipher game. Decomposition is a pure function over a fixed English
// grapheme inventory.
package tiles
