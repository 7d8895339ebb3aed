// Package speech wraps external text-to-speech engines behind a common
// Synthesizer interface and provides the playback controller that tracks the
// single currently speaking item.
package speech
