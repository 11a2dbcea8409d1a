package systems

import (
	"image/color"
)

// MessageType defines the kinds of messages that can appear in the log
type MessageType int

const (
	// MessageTypeNormal is for plain status text (gray)
	MessageTypeNormal MessageType = iota
	// MessageTypeGeneration reports a finished cave (gold)
	MessageTypeGeneration
	// MessageTypeAlert is for generation failures (red)
	MessageTypeAlert
	// MessageTypeSystem is for viewer toggles and controls (purple)
	MessageTypeSystem
)

// ColoredMessage stores a message with its associated type
type ColoredMessage struct {
	Text string
	Type MessageType
}

// GetColor returns the color for the message based on its type
func (cm ColoredMessage) GetColor() color.RGBA {
	switch cm.Type {
	case MessageTypeGeneration:
		return color.RGBA{218, 165, 32, 255} // Gold
	case MessageTypeAlert:
		return color.RGBA{255, 100, 100, 255} // Red
	case MessageTypeSystem:
		return color.RGBA{186, 85, 211, 255} // Medium Orchid
	default:
		return color.RGBA{200, 200, 200, 255} // Light Gray
	}
}
