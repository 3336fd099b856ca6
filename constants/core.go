package constants

// Event Bus Limits
const (
	// EventBufferSize is the capacity of the producer to driver channel
	EventBufferSize = 256
)

// Logging
const (
	// LogDir is the directory debug logs are written to
	LogDir = "logs"

	// LogFileName is the active log file inside LogDir
	LogFileName = "term-snake.log"

	// MaxLogSize triggers rotation of the active log file at startup (10MB)
	MaxLogSize = 10 * 1024 * 1024
)

// Telemetry
const (
	// SpectatorClientBuffer is the per-client queue of pending frames, older frames are dropped
	SpectatorClientBuffer = 8

	// MQTTQoS is at-least-once delivery
	MQTTQoS = 1

	// DefaultMQTTTopic prefixes published round events
	DefaultMQTTTopic = "term-snake"
)
