// Package catalog maps the six practice sections (sounds, real words, word
// elements, nonsense words, phrases, sentences) to their word lists. A
// catalog is loaded once from a YAML lesson file and never mutated.
package catalog
