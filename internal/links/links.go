// Package links builds the outbound URLs the UI opens for a customer:
// WhatsApp chats and phone calls. Nothing here sends anything.
package links

import (
	"fmt"
	"net/url"
	"strings"
)

// WhatsApp returns https://wa.me/<phone>?text=<message>. Every '+' is
// removed from the phone; the message is percent-encoded the way
// encodeURIComponent does it (spaces become %20).
func WhatsApp(phone, message string) string {
	digits := strings.ReplaceAll(phone, "+", "")
	return "https://wa.me/" + digits + "?text=" + encodeComponent(message)
}

// Tel returns a tel: link for phone, unchanged.
func Tel(phone string) string {
	return "tel:" + phone
}

// ReminderMessage is sent ahead of an existing booking.
func ReminderMessage(customerName, date, startTime string) string {
	return fmt.Sprintf(
		"Hola %s, te recordamos tu cita para el %s a las %s. ¡Te esperamos!",
		customerName, date, startTime,
	)
}

// RebookMessage invites a past customer to book again.
func RebookMessage(customerName string) string {
	return fmt.Sprintf(
		"Hola %s, ¿cómo estás? ¿Te gustaría hacer una nueva reserva?",
		customerName,
	)
}

// encodeComponent matches encodeURIComponent: unreserved characters plus
// !'()* stay literal.
func encodeComponent(s string) string {
	escaped := url.QueryEscape(s)
	escaped = strings.ReplaceAll(escaped, "+", "%20")

	r := strings.NewReplacer(
		"%21", "!",
		"%27", "'",
		"%28", "(",
		"%29", ")",
		"%2A", "*",
	)
	return r.Replace(escaped)
}
