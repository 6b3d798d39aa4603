// Package audio plays the optional feedback sound after a volume change.
// It uses the beep library to decode WAV, OGG and MP3 files and blocks
// until playback has finished, since volctl exits right after.
package audio
