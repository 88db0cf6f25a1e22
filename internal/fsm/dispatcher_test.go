package fsm

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"testing"
	"time"

	"log/slog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anassar/mudeer/core/telegram/state"
	"github.com/anassar/mudeer/internal/service"
	"github.com/anassar/mudeer/internal/storage"
	"github.com/anassar/mudeer/internal/storage/memstore"
)

const user = int64(7)

type mailStub struct {
	err      error
	subjects []string
}

func (m *mailStub) Send(_ context.Context, subject, _ string) error {
	m.subjects = append(m.subjects, subject)
	return m.err
}

type aiStub struct {
	answer string
	err    error
	asked  []string
}

func (a *aiStub) Complete(_ context.Context, prompt string) (string, error) {
	a.asked = append(a.asked, prompt)
	return a.answer, a.err
}

type fixture struct {
	store    *memstore.Store
	sessions state.Manager
	mail     *mailStub
	ai       *aiStub
	d        *Dispatcher
}

func newDispatcher(t *testing.T) *fixture {
	t.Helper()
	store := memstore.New()
	sessions := state.NewMemoryManager(StateMain)
	mail := &mailStub{}
	aiProv := &aiStub{answer: "42"}
	d := New(Deps{
		Sessions: sessions,
		Contacts: service.NewContacts(store.Contacts()),
		Folders:  service.NewFolders(store.Folders()),
		Files:    service.NewLibrary(store.Files(), store.Folders(), slog.Default()),
		Images:   service.NewLibrary(store.Images(), store.Folders(), slog.Default()),
		Report:   service.NewReport(store.Contacts(), store.Files(), store.Images()),
		Mail:     mail,
		AI:       aiProv,
	})
	return &fixture{store: store, sessions: sessions, mail: mail, ai: aiProv, d: d}
}

func send(t *testing.T, f *fixture, text string) []Reply {
	t.Helper()
	replies, err := f.d.HandleText(context.Background(), user, text)
	require.NoError(t, err)
	return replies
}

func TestStartGreetsAndEnsuresDefaultFolder(t *testing.T) {
	f := newDispatcher(t)

	replies, err := f.d.Start(context.Background(), user)
	require.NoError(t, err)
	require.Len(t, replies, 1)
	assert.Equal(t, msgWelcome, replies[0].Text)
	assert.NotNil(t, replies[0].Menu)

	names, err := f.store.Folders().ListNames(context.Background(), user)
	require.NoError(t, err)
	assert.Equal(t, []string{storage.DefaultFolderName}, names)
}

func TestAddContactFlow(t *testing.T) {
	f := newDispatcher(t)

	send(t, f, btnPhones)
	assert.Equal(t, StatePhone, f.sessions.GetState(user))

	replies := send(t, f, btnAddPhone)
	assert.Equal(t, msgAskContactName, replies[0].Text)

	replies = send(t, f, "Sara")
	assert.Equal(t, msgAskContactPhone, replies[0].Text)

	replies = send(t, f, "555-0100")
	assert.Equal(t, msgContactSaved, replies[0].Text)
	assert.Equal(t, StatePhone, f.sessions.GetState(user))

	contacts, err := f.store.Contacts().ListByOwner(context.Background(), user)
	require.NoError(t, err)
	require.Len(t, contacts, 1)
	assert.Equal(t, "Sara", contacts[0].Name)
	assert.Equal(t, "555-0100", contacts[0].Phone)
}

func TestListContactsFormatting(t *testing.T) {
	f := newDispatcher(t)
	send(t, f, btnPhones)

	replies := send(t, f, btnListPhones)
	assert.Equal(t, msgNoContacts, replies[0].Text)

	id, err := f.store.Contacts().Add(context.Background(), storage.Contact{OwnerID: user, Name: "Sara", Phone: "555-0100"})
	require.NoError(t, err)

	replies = send(t, f, btnListPhones)
	assert.Contains(t, replies[0].Text, "Sara : 555-0100")
	assert.Contains(t, replies[0].Text, fmt.Sprintf("ID:%d", id))
}

func TestEditAndDeleteContactNotFound(t *testing.T) {
	f := newDispatcher(t)
	send(t, f, btnPhones)

	send(t, f, btnEditPhone)
	send(t, f, "42")
	replies := send(t, f, "555-0199")
	assert.Equal(t, msgNotFound, replies[0].Text)
	assert.Equal(t, StatePhone, f.sessions.GetState(user))

	send(t, f, btnDelPhone)
	replies = send(t, f, "42")
	assert.Equal(t, msgNotFound, replies[0].Text)
}

func TestInvalidContactIDIsRejected(t *testing.T) {
	f := newDispatcher(t)
	send(t, f, btnPhones)
	send(t, f, btnEditPhone)

	replies := send(t, f, "abc")
	assert.Equal(t, msgInvalidID, replies[0].Text)
	assert.Equal(t, StatePhone, f.sessions.GetState(user))
}

func TestDefaultFolderDeleteRejected(t *testing.T) {
	f := newDispatcher(t)
	_, err := f.d.Start(context.Background(), user)
	require.NoError(t, err)

	send(t, f, btnFiles)
	send(t, f, btnDeleteFolder)
	replies := send(t, f, storage.DefaultFolderName)
	assert.Equal(t, msgDefaultFolderGuard, replies[0].Text)
	assert.Equal(t, StateFileMenu, f.sessions.GetState(user))

	names, err := f.store.Folders().ListNames(context.Background(), user)
	require.NoError(t, err)
	assert.Contains(t, names, storage.DefaultFolderName)
}

func TestCreateFolderReturnsToOriginMenu(t *testing.T) {
	f := newDispatcher(t)

	send(t, f, btnImages)
	send(t, f, btnCreateImgFolder)
	replies := send(t, f, "vacation")
	assert.Equal(t, msgFolderCreated, replies[0].Text)
	assert.Equal(t, StateImageMenu, f.sessions.GetState(user))

	send(t, f, btnCreateImgFolder)
	replies = send(t, f, "vacation")
	assert.Equal(t, msgFolderExists, replies[0].Text)
}

func TestMoveFileUsageAndMissingFolder(t *testing.T) {
	f := newDispatcher(t)
	_, err := f.d.Start(context.Background(), user)
	require.NoError(t, err)

	send(t, f, btnFiles)
	send(t, f, btnMoveFile)
	replies := send(t, f, "3")
	assert.Equal(t, msgMoveUsage, replies[0].Text)
	assert.Equal(t, StateFileMenu, f.sessions.GetState(user))

	send(t, f, btnMoveFile)
	replies = send(t, f, "3 ghost")
	assert.Equal(t, msgFolderMissing, replies[0].Text)
}

func TestMoveFileWithSpacedFolderName(t *testing.T) {
	f := newDispatcher(t)
	ctx := context.Background()
	_, err := f.d.Start(ctx, user)
	require.NoError(t, err)

	_, err = f.store.Folders().Create(ctx, user, "my docs")
	require.NoError(t, err)
	defaultID, err := f.store.Folders().EnsureDefault(ctx, user)
	require.NoError(t, err)
	fileID, err := f.store.Files().Save(ctx, storage.MediaItem{OwnerID: user, FileRef: "ref-1", Name: "a.txt", FolderID: defaultID})
	require.NoError(t, err)

	send(t, f, btnFiles)
	send(t, f, btnMoveFile)
	replies := send(t, f, fmt.Sprintf("%d my docs", fileID))
	assert.Equal(t, msgMoved, replies[0].Text)

	entries, err := f.store.Files().ListWithFolders(ctx, user)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "my docs", entries[0].FolderName)
}

func TestDownloadFileSendsDocument(t *testing.T) {
	f := newDispatcher(t)
	ctx := context.Background()
	_, err := f.d.Start(ctx, user)
	require.NoError(t, err)

	defaultID, err := f.store.Folders().EnsureDefault(ctx, user)
	require.NoError(t, err)
	fileID, err := f.store.Files().Save(ctx, storage.MediaItem{OwnerID: user, FileRef: "doc-ref", Name: "a.txt", FolderID: defaultID})
	require.NoError(t, err)

	send(t, f, btnFiles)
	send(t, f, btnDownloadFiles)
	replies := send(t, f, strconv.FormatInt(fileID, 10))
	require.Len(t, replies, 1)
	assert.Equal(t, "doc-ref", replies[0].DocumentRef)
	assert.Equal(t, StateFileMenu, f.sessions.GetState(user))
}

func TestBackReturnsToMainFromAnyState(t *testing.T) {
	f := newDispatcher(t)

	for _, into := range []string{btnPhones, btnFiles, btnImages, btnDBManage, btnAI} {
		send(t, f, into)
		replies := send(t, f, btnBack)
		require.Len(t, replies, 1)
		assert.Equal(t, msgWelcome, replies[0].Text)
		assert.Equal(t, StateMain, f.sessions.GetState(user))
	}
}

func TestAIRelayAndFailure(t *testing.T) {
	f := newDispatcher(t)

	send(t, f, btnAI)
	replies := send(t, f, "what is the answer?")
	assert.Equal(t, "42", replies[0].Text)
	assert.Equal(t, []string{"what is the answer?"}, f.ai.asked)

	f.ai.err = errors.New("upstream down")
	replies = send(t, f, "again?")
	assert.Equal(t, msgFailure, replies[0].Text)
	// Still in the question state; the user may retry.
	assert.Equal(t, StateAI, f.sessions.GetState(user))
}

func TestReportMailedAndFailureReported(t *testing.T) {
	f := newDispatcher(t)

	send(t, f, btnDBManage)
	replies := send(t, f, btnEmailReport)
	require.Len(t, replies, 2)
	assert.Contains(t, replies[0].Text, "📊 تقرير إدارة قاعدة البيانات")
	assert.Equal(t, msgReportMailed, replies[1].Text)
	assert.Equal(t, []string{reportSubject}, f.mail.subjects)

	f.mail.err = errors.New("smtp down")
	replies = send(t, f, btnEmailReport)
	require.Len(t, replies, 2)
	assert.Equal(t, msgReportMailFailed, replies[1].Text)
}

func TestInboundMediaStoredInDefaultFolder(t *testing.T) {
	f := newDispatcher(t)
	ctx := context.Background()

	f.d.now = func() time.Time { return time.Date(2025, 3, 1, 9, 30, 45, 0, time.UTC) }

	replies, err := f.d.HandleDocument(ctx, user, "doc-ref", "report.pdf")
	require.NoError(t, err)
	assert.Equal(t, msgFileSaved, replies[0].Text)

	replies, err = f.d.HandlePhoto(ctx, user, "photo-ref")
	require.NoError(t, err)
	assert.Equal(t, msgImageSaved, replies[0].Text)

	files, err := f.store.Files().ListWithFolders(ctx, user)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, storage.DefaultFolderName, files[0].FolderName)

	images, err := f.store.Images().ListWithFolders(ctx, user)
	require.NoError(t, err)
	require.Len(t, images, 1)
	assert.Equal(t, "IMG_20250301_093045", images[0].Name)
}

func TestAddPhoneWithoutNameStepRejects(t *testing.T) {
	f := newDispatcher(t)

	// A session parked in the phone-number step without the captured name
	// must not store a contact with an empty name.
	f.sessions.SetState(user, StateAddPhone)
	replies := send(t, f, "555-0100")
	assert.Equal(t, msgFailure, replies[0].Text)
	assert.Equal(t, StatePhone, f.sessions.GetState(user))

	contacts, err := f.store.Contacts().ListByOwner(context.Background(), user)
	require.NoError(t, err)
	assert.Empty(t, contacts)
}

func TestUnknownTextInMainIsIgnored(t *testing.T) {
	f := newDispatcher(t)
	replies := send(t, f, "random words")
	assert.Empty(t, replies)
	assert.Equal(t, StateMain, f.sessions.GetState(user))
}
