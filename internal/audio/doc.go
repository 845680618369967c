package audio

// Package audio implements the menu bar music player: a small state
// machine (playing, muted, volume, position) over an Engine, and a beep
// based Engine that plays MP3 and WAV files through the speaker.
