package parse

import "time"

// SystemLabel is how group notifications are labelled in output.
// It is a display value only; use Message.Kind to tell notifications apart.
const SystemLabel = "group_notification"

type Kind int

const (
	KindPersonal Kind = iota // sent by a named participant
	KindSystem               // group notification, no sender
)

func (k Kind) String() string {
	if k == KindSystem {
		return "system"
	}
	return "personal"
}

// Segment is one (timestamp, body) pair cut from a transcript.
type Segment struct {
	Stamp string // matched timestamp text, e.g. "01/01/23, 10:00 am - "
	Body  string
	Line  int // 1-based line of the stamp in the transcript
}

// Message is a parsed transcript record. Messages are built once by the
// parser (or NewMessage/NewNotification) and never modified afterwards.
type Message struct {
	Timestamp time.Time
	Kind      Kind
	Body      string
	Stamp     string
	Line      int
	Calendar

	sender string
}

// Sender returns the participant who sent the message. ok is false for
// group notifications.
func (m Message) Sender() (name string, ok bool) {
	if m.Kind == KindSystem {
		return "", false
	}
	return m.sender, true
}

// SenderLabel returns the sender name, or SystemLabel for notifications.
func (m Message) SenderLabel() string {
	if m.Kind == KindSystem {
		return SystemLabel
	}
	return m.sender
}

// Text reconstructs the transcript text of the message.
func (m Message) Text() string {
	if m.Kind == KindSystem {
		return m.Stamp + m.Body
	}
	return m.Stamp + m.sender + ": " + m.Body
}

// NewMessage builds a personal message with a generated stamp.
func NewMessage(ts time.Time, sender, body string) Message {
	return Message{
		Timestamp: ts,
		Kind:      KindPersonal,
		Body:      body,
		Stamp:     FormatStamp(ts),
		Calendar:  Index(ts),
		sender:    sender,
	}
}

// NewNotification builds a group notification with a generated stamp.
func NewNotification(ts time.Time, body string) Message {
	return Message{
		Timestamp: ts,
		Kind:      KindSystem,
		Body:      body,
		Stamp:     FormatStamp(ts),
		Calendar:  Index(ts),
	}
}

type Diagnostics struct {
	BadTimestamps int
	BadEncoding   int
	Errors        []error // first maxSampledErrors per-record errors
}

// Dropped is the number of segments that did not become messages.
func (d Diagnostics) Dropped() int {
	return d.BadTimestamps + d.BadEncoding
}

type Result struct {
	Messages    []Message
	Boundaries  int // number of segments found by the tokenizer
	Diagnostics Diagnostics
}
