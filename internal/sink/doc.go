// Package sink reads and changes the default PipeWire audio sink through
// the wpctl command-line tool. It parses the textual get-volume report and
// synthesizes the relative set-volume and mute toggle requests.
package sink
