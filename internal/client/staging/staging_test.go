package staging

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func stagePhotos(t *testing.T, m *Manager, names ...string) []Item {
	t.Helper()
	items := make([]Item, 0, len(names))
	for _, name := range names {
		it, err := m.Stage(KindPhoto, name, []byte(name), "image/png")
		require.NoError(t, err)
		items = append(items, it)
	}
	return items
}

func names(items []Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Name
	}
	return out
}

func TestStage_ValidPhoto(t *testing.T) {
	m := NewManager()
	it, err := m.Stage(KindPhoto, "front.png", []byte{1, 2, 3}, "image/png")
	require.NoError(t, err)
	require.NotEmpty(t, it.ID)
	require.Equal(t, StatusPending, it.Status)
	require.Empty(t, it.RemoteURL)
	require.Equal(t, 1, m.Len(KindPhoto))
}

func TestStage_PhotoExtensionRejected(t *testing.T) {
	m := NewManager()
	_, err := m.Stage(KindPhoto, "anim.gif", []byte{1}, "image/gif")

	var rej *RejectionError
	require.ErrorAs(t, err, &rej)
	require.Equal(t, "Arquivo deve ser JPG, JPEG, PNG ou WEBP", rej.Message)
	require.Equal(t, 0, m.Len(KindPhoto))
}

func TestStage_PhotoExtensionCaseInsensitive(t *testing.T) {
	m := NewManager()
	_, err := m.Stage(KindPhoto, "FRONT.JPEG", []byte{1}, "image/jpeg")
	require.NoError(t, err)
}

func TestStage_SizeLimit(t *testing.T) {
	big := make([]byte, MaxFileSize+1)

	m := NewManager()

	_, err := m.Stage(KindPhoto, "big.png", big, "image/png")
	var rej *RejectionError
	require.ErrorAs(t, err, &rej)
	require.Equal(t, "Foto deve ter no máximo 5MB", rej.Message)

	_, err = m.Stage(KindDocument, "big.pdf", big, "application/pdf")
	require.ErrorAs(t, err, &rej)
	require.Equal(t, "Documento deve ter no máximo 5MB", rej.Message)

	// exactly at the limit is accepted
	_, err = m.Stage(KindDocument, "ok.pdf", big[:MaxFileSize], "application/pdf")
	require.NoError(t, err)
}

func TestStage_DocumentAnyExtension(t *testing.T) {
	m := NewManager()
	_, err := m.Stage(KindDocument, "laudo.pdf", []byte{1}, "application/pdf")
	require.NoError(t, err)
	_, err = m.Stage(KindDocument, "recibo.gif", []byte{1}, "image/gif")
	require.NoError(t, err)
}

func TestStage_LimitPerKind(t *testing.T) {
	m := NewManager()
	for i := 0; i < MaxPerKind; i++ {
		_, err := m.Stage(KindPhoto, fmt.Sprintf("p%d.png", i), []byte{1}, "image/png")
		require.NoError(t, err)
	}

	_, err := m.Stage(KindPhoto, "p10.png", []byte{1}, "image/png")
	var rej *RejectionError
	require.ErrorAs(t, err, &rej)
	require.Equal(t, "Limite máximo de fotos (10) atingido", rej.Message)
	require.Equal(t, MaxPerKind, m.Len(KindPhoto))

	// the document list has its own limit
	_, err = m.Stage(KindDocument, "d.pdf", []byte{1}, "application/pdf")
	require.NoError(t, err)
}

func TestDelete(t *testing.T) {
	m := NewManager()
	stagePhotos(t, m, "a.png", "b.png", "c.png")

	require.NoError(t, m.Delete(KindPhoto, 1))
	require.Equal(t, []string{"a.png", "c.png"}, names(m.Items(KindPhoto)))

	require.ErrorIs(t, m.Delete(KindPhoto, 5), ErrIndexOutOfRange)
	require.ErrorIs(t, m.Delete(KindPhoto, -1), ErrIndexOutOfRange)
}

func TestPromoteToPrimary(t *testing.T) {
	m := NewManager()
	stagePhotos(t, m, "a.png", "b.png", "c.png", "d.png")

	require.NoError(t, m.PromoteToPrimary(KindPhoto, 2))
	require.Equal(t, []string{"c.png", "a.png", "b.png", "d.png"}, names(m.Items(KindPhoto)))

	require.ErrorIs(t, m.PromoteToPrimary(KindDocument, 0), ErrPhotosOnly)
}

func TestMoveLeftRight(t *testing.T) {
	m := NewManager()
	stagePhotos(t, m, "a.png", "b.png", "c.png", "d.png")

	require.NoError(t, m.MoveLeft(KindPhoto, 2))
	require.Equal(t, []string{"a.png", "c.png", "b.png", "d.png"}, names(m.Items(KindPhoto)))

	// move it back, then MoveRight(1) must give the same arrangement
	require.NoError(t, m.MoveLeft(KindPhoto, 2))
	require.Equal(t, []string{"a.png", "b.png", "c.png", "d.png"}, names(m.Items(KindPhoto)))
	require.NoError(t, m.MoveRight(KindPhoto, 1))
	require.Equal(t, []string{"a.png", "c.png", "b.png", "d.png"}, names(m.Items(KindPhoto)))
}

func TestMove_Boundaries(t *testing.T) {
	m := NewManager()
	stagePhotos(t, m, "a.png", "b.png")

	require.ErrorIs(t, m.MoveLeft(KindPhoto, 0), ErrIndexOutOfRange)
	require.ErrorIs(t, m.MoveRight(KindPhoto, 1), ErrIndexOutOfRange)
	require.ErrorIs(t, m.MoveRight(KindDocument, 0), ErrPhotosOnly)
}

func TestStatusTransitions(t *testing.T) {
	m := NewManager()
	it := stagePhotos(t, m, "a.png")[0]

	// pending -> uploaded is not allowed
	require.ErrorIs(t, m.MarkUploaded(it.ID, "https://x/y"), ErrInvalidTransition)

	require.NoError(t, m.MarkUploading(it.ID))
	require.Equal(t, StatusUploading, m.Items(KindPhoto)[0].Status)

	// uploading -> uploading is not allowed
	require.ErrorIs(t, m.MarkUploading(it.ID), ErrInvalidTransition)

	require.NoError(t, m.MarkUploaded(it.ID, "https://bucket/key"))
	got := m.Items(KindPhoto)[0]
	require.Equal(t, StatusUploaded, got.Status)
	require.Equal(t, "https://bucket/key", got.RemoteURL)

	// uploaded is terminal
	require.ErrorIs(t, m.MarkUploading(it.ID), ErrInvalidTransition)
	require.ErrorIs(t, m.Revert(it.ID), ErrInvalidTransition)
}

func TestRevert_EnablesRetry(t *testing.T) {
	m := NewManager()
	it := stagePhotos(t, m, "a.png")[0]

	require.NoError(t, m.MarkUploading(it.ID))
	require.NoError(t, m.Revert(it.ID))

	got := m.Items(KindPhoto)[0]
	require.Equal(t, StatusPending, got.Status)
	require.Empty(t, got.RemoteURL)

	// the retry can run the full cycle again
	require.NoError(t, m.MarkUploading(it.ID))
	require.NoError(t, m.MarkUploaded(it.ID, "https://bucket/key"))
}

func TestTransition_UnknownItem(t *testing.T) {
	m := NewManager()
	require.ErrorIs(t, m.MarkUploading("nope"), ErrUnknownItem)
}

func TestConcurrentTransitions_DoNotClobber(t *testing.T) {
	m := NewManager()
	items := stagePhotos(t, m, "a.png", "b.png", "c.png", "d.png", "e.png")

	var wg sync.WaitGroup
	for i, it := range items {
		wg.Add(1)
		go func(i int, id string) {
			defer wg.Done()
			require.NoError(t, m.MarkUploading(id))
			require.NoError(t, m.MarkUploaded(id, fmt.Sprintf("https://bucket/%d", i)))
		}(i, it.ID)
	}
	wg.Wait()

	for i, it := range m.Items(KindPhoto) {
		require.Equal(t, StatusUploaded, it.Status)
		require.Equal(t, fmt.Sprintf("https://bucket/%d", i), it.RemoteURL)
	}
}
