package main

// Default command-line flag values
const (
	defaultTimeStep   = 1.0 / 60 // One frame at 60 Hz
	defaultMaxTime    = 60.0     // Seconds before giving up on an endless animation
	defaultRelease    = -1.0     // Hold mode: never release
	defaultSampleRate = 8000     // WAV control signals need little bandwidth
	defaultBitDepth   = 16
)

// WAV format constants
const (
	wavFormatPCM = 1 // WAVE_FORMAT_PCM
	monoChannels = 1
	bitDepth16   = 16
	bitDepth24   = 24
)

// CSV formatting
const (
	floatFormat    = 'g'
	floatPrecision = -1 // Shortest representation that round-trips
	floatBits      = 64
)
