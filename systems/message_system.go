package systems

import (
	"fmt"
	"log"
)

// MessageLog stores the viewer's on-screen messages
type MessageLog struct {
	Messages    []ColoredMessage
	MaxMessages int
}

// Global message log instance (singleton)
var globalMessageLog *MessageLog

// GetMessageLog returns the global message log instance
func GetMessageLog() *MessageLog {
	if globalMessageLog == nil {
		globalMessageLog = NewMessageLog()
	}
	return globalMessageLog
}

// NewMessageLog creates a new message log
func NewMessageLog() *MessageLog {
	return &MessageLog{
		MaxMessages: 100,
	}
}

// Add adds a normal message to the log
func (ml *MessageLog) Add(message string) {
	ml.AddTyped(message, MessageTypeNormal)
}

// Addf formats and adds a message of the given type
func (ml *MessageLog) Addf(msgType MessageType, format string, args ...any) {
	ml.AddTyped(fmt.Sprintf(format, args...), msgType)
}

// AddTyped adds a message of the given type. Alerts are also written to the
// process log so failures survive the window closing.
func (ml *MessageLog) AddTyped(message string, msgType MessageType) {
	if msgType == MessageTypeAlert {
		log.Printf("alert: %s", message)
	}
	ml.Messages = append(ml.Messages, ColoredMessage{Text: message, Type: msgType})

	if len(ml.Messages) > ml.MaxMessages {
		ml.Messages = ml.Messages[len(ml.Messages)-ml.MaxMessages:]
	}
}

// RecentMessages gets the n most recent messages, newest first
func (ml *MessageLog) RecentMessages(n int) []ColoredMessage {
	if n > len(ml.Messages) {
		n = len(ml.Messages)
	}

	result := make([]ColoredMessage, n)
	for i := 0; i < n; i++ {
		result[i] = ml.Messages[len(ml.Messages)-1-i]
	}
	return result
}

// Clear clears all messages
func (ml *MessageLog) Clear() {
	ml.Messages = nil
}
