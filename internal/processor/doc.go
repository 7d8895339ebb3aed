// Package processor contains the command-line entry points of spellcast.
// It wires flags and configuration into the speech stack, speaks single
// words, pre-fills the audio cache for a lesson and launches the GUI.
package processor
