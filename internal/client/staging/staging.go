// Package staging owns the photos and documents attached to a registration
// before it is submitted: per-item upload status, ordering and the implicit
// primary-photo designation (list index 0).
//
// Statuses live in an arena map keyed by a stable item id; ordering is a
// separate id slice per kind. Asynchronous upload completions address items
// by id, so two uploads finishing near-simultaneously can never clobber each
// other through whole-list replacement.
package staging

import (
	"errors"
	"fmt"
	"regexp"
	"sync"

	"github.com/google/uuid"
)

// Kind separates the two staged collections.
type Kind int

const (
	KindPhoto Kind = iota
	KindDocument
)

// Label is the user-facing (pt-BR) name of the kind, used in notices.
func (k Kind) Label() string {
	if k == KindPhoto {
		return "foto"
	}
	return "documento"
}

// Status is the per-item upload state. There is no failed state: a failed
// upload reverts the item to StatusPending so the next submit retries it.
type Status int

const (
	StatusPending Status = iota
	StatusUploading
	StatusUploaded
)

func (s Status) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusUploading:
		return "uploading"
	case StatusUploaded:
		return "uploaded"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

const (
	// MaxPerKind caps each collection.
	MaxPerKind = 10

	// MaxFileSize is the 5 MiB per-file limit for both kinds.
	MaxFileSize = 5 * 1024 * 1024
)

// photoExt gates photo staging by file extension, case-insensitively.
var photoExt = regexp.MustCompile(`(?i)\.(jpg|jpeg|png|webp)$`)

// RejectionError is a user-facing staging refusal; the lists stay unchanged.
type RejectionError struct {
	Message string
}

func (e *RejectionError) Error() string { return e.Message }

var (
	ErrUnknownItem       = errors.New("unknown staged item")
	ErrIndexOutOfRange   = errors.New("index out of range")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrPhotosOnly        = errors.New("operation applies to photos only")
)

// Item is a read-only snapshot of one staged file.
type Item struct {
	ID          string
	Name        string
	Content     []byte
	ContentType string
	Status      Status
	RemoteURL   string
}

type entry struct {
	id          string
	kind        Kind
	name        string
	content     []byte
	contentType string
	status      Status
	remoteURL   string
}

// Manager holds both staged collections for one editing session. It is safe
// for concurrent status updates from the upload pipeline's goroutines.
type Manager struct {
	mu    sync.Mutex
	arena map[string]*entry
	order map[Kind][]string
}

func NewManager() *Manager {
	return &Manager{
		arena: make(map[string]*entry),
		order: map[Kind][]string{KindPhoto: {}, KindDocument: {}},
	}
}

// Stage validates and appends a new pending item of the given kind.
//
// Rejections (limit reached, extension, size) return a *RejectionError with
// the user-facing message and leave the lists untouched. When several files
// are dropped at once the caller stages each one independently; one
// rejection does not block the others.
func (m *Manager) Stage(kind Kind, name string, content []byte, contentType string) (Item, error) {
	if kind == KindPhoto && !photoExt.MatchString(name) {
		return Item{}, &RejectionError{Message: "Arquivo deve ser JPG, JPEG, PNG ou WEBP"}
	}
	if len(content) > MaxFileSize {
		if kind == KindPhoto {
			return Item{}, &RejectionError{Message: "Foto deve ter no máximo 5MB"}
		}
		return Item{}, &RejectionError{Message: "Documento deve ter no máximo 5MB"}
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.order[kind]) >= MaxPerKind {
		if kind == KindPhoto {
			return Item{}, &RejectionError{Message: "Limite máximo de fotos (10) atingido"}
		}
		return Item{}, &RejectionError{Message: "Limite máximo de documentos (10) atingido"}
	}

	e := &entry{
		id:          uuid.NewString(),
		kind:        kind,
		name:        name,
		content:     content,
		contentType: contentType,
		status:      StatusPending,
	}
	m.arena[e.id] = e
	m.order[kind] = append(m.order[kind], e.id)

	return e.snapshot(), nil
}

// Delete removes the item at index. For photos, the primary designation
// passively moves to whatever item is then at index 0.
func (m *Manager) Delete(kind Kind, index int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	ids := m.order[kind]
	if index < 0 || index >= len(ids) {
		return ErrIndexOutOfRange
	}

	delete(m.arena, ids[index])
	m.order[kind] = append(ids[:index], ids[index+1:]...)
	return nil
}

// PromoteToPrimary moves the photo at index to position 0, shifting the
// intervening photos back by one.
func (m *Manager) PromoteToPrimary(kind Kind, index int) error {
	if kind != KindPhoto {
		return ErrPhotosOnly
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	ids := m.order[kind]
	if index < 0 || index >= len(ids) {
		return ErrIndexOutOfRange
	}

	id := ids[index]
	rest := append(ids[:index:index], ids[index+1:]...)
	m.order[kind] = append([]string{id}, rest...)
	return nil
}

// MoveLeft swaps the photo at index with its left neighbor.
func (m *Manager) MoveLeft(kind Kind, index int) error {
	return m.swap(kind, index-1, index)
}

// MoveRight swaps the photo at index with its right neighbor.
func (m *Manager) MoveRight(kind Kind, index int) error {
	return m.swap(kind, index, index+1)
}

func (m *Manager) swap(kind Kind, left, right int) error {
	if kind != KindPhoto {
		return ErrPhotosOnly
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	ids := m.order[kind]
	if left < 0 || right >= len(ids) {
		return ErrIndexOutOfRange
	}
	ids[left], ids[right] = ids[right], ids[left]
	return nil
}

// Items returns an ordered snapshot of the kind's collection.
func (m *Manager) Items(kind Kind) []Item {
	m.mu.Lock()
	defer m.mu.Unlock()

	ids := m.order[kind]
	items := make([]Item, 0, len(ids))
	for _, id := range ids {
		items = append(items, m.arena[id].snapshot())
	}
	return items
}

// Len reports the number of staged items of the kind.
func (m *Manager) Len(kind Kind) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.order[kind])
}

// MarkUploading transitions an item from pending to uploading.
func (m *Manager) MarkUploading(id string) error {
	return m.transition(id, StatusPending, StatusUploading, "")
}

// MarkUploaded transitions an item from uploading to uploaded, recording its
// canonical remote URL. Uploaded is terminal: the only further change
// allowed is removal.
func (m *Manager) MarkUploaded(id string, remoteURL string) error {
	return m.transition(id, StatusUploading, StatusUploaded, remoteURL)
}

// Revert returns a failed upload to pending so the next submit retries it.
func (m *Manager) Revert(id string) error {
	return m.transition(id, StatusUploading, StatusPending, "")
}

func (m *Manager) transition(id string, from, to Status, remoteURL string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.arena[id]
	if !ok {
		return ErrUnknownItem
	}
	if e.status != from {
		return fmt.Errorf("%w: %s -> %s (item is %s)", ErrInvalidTransition, from, to, e.status)
	}
	e.status = to
	e.remoteURL = remoteURL
	return nil
}

func (e *entry) snapshot() Item {
	return Item{
		ID:          e.id,
		Name:        e.name,
		Content:     e.content,
		ContentType: e.contentType,
		Status:      e.status,
		RemoteURL:   e.remoteURL,
	}
}
