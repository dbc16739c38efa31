package models

import (
	"cmp"
	"slices"
	"strings"
	"time"
)

// PendingIDPrefix отличает локальные плейсхолдеры от серверных id
const PendingIDPrefix = "temp_"

// Message представляет одно сообщение общего лога.
// После добавления в лог сообщение не изменяется.
type Message struct {
	Timestamp time.Time `json:"timestamp"` // время приема сервером (UTC)
	ID        string    `json:"id"`        // UUIDv7, непрозрачен для клиента
	Username  string    `json:"username"`  // автор
	Avatar    string    `json:"avatar"`    // снимок аватара автора на момент отправки
	Message   string    `json:"message"`   // текст, может быть пустым
	Image     string    `json:"image"`     // data URI или пустая строка
}

// IsPending reports whether m is a client-side placeholder.
func (m Message) IsPending() bool {
	return strings.HasPrefix(m.ID, PendingIDPrefix)
}

// CompareMessages orders messages by timestamp, then id.
func CompareMessages(a, b Message) int {
	if c := a.Timestamp.Compare(b.Timestamp); c != 0 {
		return c
	}
	return cmp.Compare(a.ID, b.ID)
}

// SortMessages sorts msgs in place by (Timestamp, ID).
func SortMessages(msgs []Message) {
	slices.SortFunc(msgs, CompareMessages)
}
