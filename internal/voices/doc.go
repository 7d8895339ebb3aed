// Package voices implements the --list-voices and --list-models CLI
// commands, printing the voice rosters of every speech provider.
package voices
