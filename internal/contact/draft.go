// Package contact holds the contact form draft.
//
// This is placeholder scaffolding: a submitted draft is logged by the caller
// and discarded. Nothing is validated, stored, mailed or otherwise delivered.
// Wiring a real delivery channel needs its own request and error contract.
package contact

import (
	"github.com/google/uuid"
)

// Field is one input of the contact form.
type Field int

const (
	FirstName Field = iota
	LastName
	Email
	Subject
	Message
)

var fieldNames = [...]string{
	FirstName: "firstName",
	LastName:  "lastName",
	Email:     "email",
	Subject:   "subject",
	Message:   "message",
}

var fieldLabels = [...]string{
	FirstName: "First name",
	LastName:  "Last name",
	Email:     "Email",
	Subject:   "Subject",
	Message:   "Message",
}

// Name is the form input name.
func (f Field) Name() string {
	if f < FirstName || f > Message {
		return ""
	}
	return fieldNames[f]
}

func (f Field) Label() string {
	if f < FirstName || f > Message {
		return ""
	}
	return fieldLabels[f]
}

// Fields returns all fields in form order.
func Fields() []Field {
	return []Field{FirstName, LastName, Email, Subject, Message}
}

// AcknowledgmentMessage is shown after every submit.
const AcknowledgmentMessage = "Thank you for your message! I'll get back to you soon."

// Acknowledgment is what a submit hands back to the visitor.
type Acknowledgment struct {
	Ref     string
	Message string
}

// Draft is the in-progress form content.
type Draft struct {
	values [len(fieldNames)]string
}

// Set overwrites the value of f. Values are taken verbatim.
func (d *Draft) Set(f Field, value string) {
	if f < FirstName || f > Message {
		return
	}
	d.values[f] = value
}

func (d *Draft) Get(f Field) string {
	if f < FirstName || f > Message {
		return ""
	}
	return d.values[f]
}

// Values returns the draft keyed by form input name.
func (d *Draft) Values() map[string]string {
	out := make(map[string]string, len(fieldNames))
	for _, f := range Fields() {
		out[f.Name()] = d.values[f]
	}
	return out
}

// Empty reports whether every field is "".
func (d *Draft) Empty() bool {
	for _, v := range d.values {
		if v != "" {
			return false
		}
	}
	return true
}

// Submit accepts the draft as-is and clears every field.
func (d *Draft) Submit() Acknowledgment {
	d.values = [len(fieldNames)]string{}
	return Acknowledgment{
		Ref:     uuid.NewString(),
		Message: AcknowledgmentMessage,
	}
}
