package speech

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"
)

// PlayFile plays an audio file using a platform playback command, blocking
// until playback ends or ctx is canceled.
func PlayFile(ctx context.Context, audioFile string) error {
	cmd, err := playCommand(ctx, audioFile)
	if err != nil {
		return err
	}

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("audio playback failed: %w", err)
	}
	return nil
}

// playCommand builds the platform-specific playback command
func playCommand(ctx context.Context, audioFile string) (*exec.Cmd, error) {
	switch runtime.GOOS {
	case "darwin": // macOS
		return exec.CommandContext(ctx, "afplay", audioFile), nil
	case "linux":
		// Try multiple commands in order of preference
		// mpg123 first since it handles MP3 files best
		if _, err := exec.LookPath("mpg123"); err == nil {
			return exec.CommandContext(ctx, "mpg123", "-q", audioFile), nil
		}
		if _, err := exec.LookPath("ffplay"); err == nil {
			return exec.CommandContext(ctx, "ffplay", "-nodisp", "-autoexit", "-loglevel", "quiet", audioFile), nil
		}
		if _, err := exec.LookPath("play"); err == nil {
			// SoX play command
			return exec.CommandContext(ctx, "play", "-q", audioFile), nil
		}
		if _, err := exec.LookPath("paplay"); err == nil {
			return exec.CommandContext(ctx, "paplay", audioFile), nil
		}
		if _, err := exec.LookPath("aplay"); err == nil {
			return exec.CommandContext(ctx, "aplay", "-q", audioFile), nil
		}
		return nil, fmt.Errorf("no audio player found. Install mpg123, ffplay, sox, paplay, or aplay")
	case "windows":
		return exec.CommandContext(ctx, "cmd", "/c", "start", "/min", "/wait", audioFile), nil
	default:
		return nil, fmt.Errorf("unsupported platform: %s", runtime.GOOS)
	}
}
