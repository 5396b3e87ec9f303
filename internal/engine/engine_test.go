package engine

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/ftkrshna/channelpost/internal/directory"
	"github.com/ftkrshna/channelpost/internal/dispatch"
	"github.com/ftkrshna/channelpost/internal/domain"
	"github.com/ftkrshna/channelpost/internal/logging"
	"github.com/ftkrshna/channelpost/internal/markup"
	"github.com/ftkrshna/channelpost/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	adminID  = int64(1000)
	userChat = int64(2000)
	chanA    = int64(-100111)
	chanB    = int64(-100222)
	chanC    = int64(-100333)
)

type sentText struct {
	ID       int
	ChatID   int64
	Text     string
	Layout   *domain.ButtonLayout
	Markdown bool
}

type sentContent struct {
	ID      int
	ChatID  int64
	Content domain.PendingContent
	Layout  *domain.ButtonLayout
}

type textEdit struct {
	ChatID    int64
	MessageID int
	Text      string
	Layout    *domain.ButtonLayout
}

type buttonEdit struct {
	ChatID    int64
	MessageID int
	Layout    *domain.ButtonLayout
}

type answered struct {
	ID    string
	Text  string
	Alert bool
}

type fakeTransport struct {
	mu     sync.Mutex
	nextID int

	texts       []sentText
	contents    []sentContent
	textEdits   []textEdit
	buttonEdits []buttonEdit
	deleted     []int
	answers     []answered

	chats     map[int64]domain.ChatInfo
	failSend  map[int64]error
	probeErr  error
	memberErr error
}

func (f *fakeTransport) SendContent(_ context.Context, chatID int64, content domain.PendingContent, layout *domain.ButtonLayout) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err, ok := f.failSend[chatID]; ok {
		return 0, err
	}
	f.nextID++
	f.contents = append(f.contents, sentContent{ID: f.nextID, ChatID: chatID, Content: content, Layout: layout})
	return f.nextID, nil
}

func (f *fakeTransport) SendText(_ context.Context, chatID int64, text string, layout *domain.ButtonLayout, markdown bool) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	f.texts = append(f.texts, sentText{ID: f.nextID, ChatID: chatID, Text: text, Layout: layout, Markdown: markdown})
	return f.nextID, nil
}

func (f *fakeTransport) EditContent(_ context.Context, chatID int64, messageID int, content domain.PendingContent, layout *domain.ButtonLayout) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.contents = append(f.contents, sentContent{ID: messageID, ChatID: chatID, Content: content, Layout: layout})
	return nil
}

func (f *fakeTransport) EditButtons(_ context.Context, chatID int64, messageID int, layout *domain.ButtonLayout) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.probeErr != nil {
		return f.probeErr
	}
	f.buttonEdits = append(f.buttonEdits, buttonEdit{ChatID: chatID, MessageID: messageID, Layout: layout})
	return nil
}

func (f *fakeTransport) EditText(_ context.Context, chatID int64, messageID int, text string, layout *domain.ButtonLayout, _ bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.textEdits = append(f.textEdits, textEdit{ChatID: chatID, MessageID: messageID, Text: text, Layout: layout})
	return nil
}

func (f *fakeTransport) DeleteMessage(_ context.Context, _ int64, messageID int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, messageID)
	return nil
}

func (f *fakeTransport) AnswerCallback(_ context.Context, callbackID, text string, alert bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.answers = append(f.answers, answered{ID: callbackID, Text: text, Alert: alert})
	return nil
}

func (f *fakeTransport) GetChat(_ context.Context, chatID int64) (domain.ChatInfo, error) {
	info, ok := f.chats[chatID]
	if !ok {
		return domain.ChatInfo{}, errors.New("chat not found")
	}
	return info, nil
}

func (f *fakeTransport) EnsureMember(_ context.Context, _ int64) error {
	return f.memberErr
}

func (f *fakeTransport) lastText() sentText {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.texts[len(f.texts)-1]
}

func (f *fakeTransport) lastTextEdit() textEdit {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.textEdits[len(f.textEdits)-1]
}

type fixture struct {
	eng      *Engine
	tr       *fakeTransport
	channels *store.ChannelStore
	buttons  *store.ButtonStore
	sessions *Sessions
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db, err := store.Open(":memory:", logging.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	cs := store.NewChannelStore(db)
	bs := store.NewButtonStore(db)
	tr := &fakeTransport{chats: map[int64]domain.ChatInfo{
		chanA: {ID: chanA, Title: "Alpha", Type: "channel"},
		chanB: {ID: chanB, Title: "Beta", Type: "channel"},
		chanC: {ID: chanC, Title: "Gamma", Type: "channel"},
	}}
	sessions := NewSessions()
	eng := New(
		sessions,
		tr,
		dispatch.New(tr, logging.Nop()),
		directory.New(cs, tr, nil, logging.Nop()),
		cs,
		bs,
		markup.NewParser(logging.Nop()),
		[]int64{adminID},
		logging.Nop(),
	)
	return &fixture{eng: eng, tr: tr, channels: cs, buttons: bs, sessions: sessions}
}

func (fx *fixture) addChannel(t *testing.T, id int64, title string) {
	t.Helper()
	_, err := fx.channels.Add(id, title)
	require.NoError(t, err)
}

func adminMsg(text string) domain.Inbound {
	return domain.Inbound{UserID: adminID, ChatID: userChat, Text: text}
}

func press(data string, messageID int) domain.CallbackPress {
	return domain.CallbackPress{ID: "cbq", UserID: adminID, ChatID: userChat, MessageID: messageID, Data: data}
}

// startPostFlow drives /post up to the buttons step and returns the
// current menu message id.
func (fx *fixture) startPostFlow(t *testing.T, body string) int {
	t.Helper()
	ctx := context.Background()
	fx.eng.HandleCommand(ctx, "post", "", adminMsg("/post"))
	menuID := fx.tr.lastText().ID
	fx.eng.HandleCallback(ctx, press(fmt.Sprintf("select_channel:%d", chanA), menuID))
	fx.eng.HandleMessage(ctx, adminMsg(body))
	return menuID
}

func TestStartCommand(t *testing.T) {
	fx := newFixture(t)
	fx.eng.HandleCommand(context.Background(), "start", "", adminMsg("/start"))

	sent := fx.tr.lastText()
	assert.Equal(t, startText, sent.Text)
	assert.True(t, sent.Markdown)
	require.NotNil(t, sent.Layout)
	assert.Len(t, sent.Layout.Rows, 4)
}

func TestPost_Unauthorized(t *testing.T) {
	fx := newFixture(t)
	msg := domain.Inbound{UserID: 555, ChatID: 555, Text: "/post"}
	fx.eng.HandleCommand(context.Background(), "post", "", msg)

	assert.Equal(t, unauthorizedText, fx.tr.lastText().Text)
	assert.Equal(t, 0, fx.sessions.Len())
}

func TestPost_NoChannels(t *testing.T) {
	fx := newFixture(t)
	fx.eng.HandleCommand(context.Background(), "post", "", adminMsg("/post"))

	assert.Equal(t, noChannelsText, fx.tr.lastText().Text)
	assert.Equal(t, 0, fx.sessions.Len())
}

func TestPostFlow_EndToEnd(t *testing.T) {
	fx := newFixture(t)
	fx.addChannel(t, chanA, "Alpha")
	ctx := context.Background()

	fx.eng.HandleCommand(ctx, "post", "", adminMsg("/post"))
	sel := fx.tr.lastText()
	assert.Equal(t, promptSelectChannel, sel.Text)
	require.NotNil(t, sel.Layout)
	assert.Equal(t, "Alpha", sel.Layout.Rows[0][0].Label)

	fx.eng.HandleCallback(ctx, press(fmt.Sprintf("select_channel:%d", chanA), sel.ID))
	assert.Equal(t, promptPostMessage, fx.tr.lastTextEdit().Text)

	fx.eng.HandleMessage(ctx, adminMsg("Check out our new product!"))
	assert.Equal(t, defaultButtonsText, fx.tr.lastText().Text)

	fx.eng.HandleMessage(ctx, adminMsg("Learn More - https://example.com"))
	require.Len(t, fx.tr.contents, 1, "preview rendered in the private chat")
	preview := fx.tr.contents[0]
	assert.Equal(t, userChat, preview.ChatID)
	assert.Equal(t, "Check out our new product!", preview.Content.Text)
	require.NotNil(t, preview.Layout)
	assert.Equal(t, "Learn More", preview.Layout.Rows[0][0].Label)
	confirm := fx.tr.lastText()
	assert.Equal(t, previewSentText, confirm.Text)

	fx.eng.HandleCallback(ctx, press("confirm_post", confirm.ID))
	require.Len(t, fx.tr.contents, 2)
	published := fx.tr.contents[1]
	assert.Equal(t, chanA, published.ChatID)
	assert.Equal(t, "Check out our new product!", published.Content.Text)
	assert.Equal(t, postedText, fx.tr.lastText().Text)
	assert.Contains(t, fx.tr.deleted, preview.ID, "preview cleaned up")
	assert.Equal(t, 0, fx.sessions.Len())
}

func TestPostFlow_DefaultsAppended(t *testing.T) {
	fx := newFixture(t)
	fx.addChannel(t, chanA, "Alpha")
	require.NoError(t, fx.buttons.Set(adminID, "Website - https://example.com"))

	fx.startPostFlow(t, "hello")
	fx.eng.HandleMessage(context.Background(), adminMsg("Go - https://go.dev"))

	require.Len(t, fx.tr.contents, 1)
	layout := fx.tr.contents[0].Layout
	require.NotNil(t, layout)
	require.Len(t, layout.Rows, 2, "user row plus defaults row")
	assert.Equal(t, "Go", layout.Rows[0][0].Label)
	assert.Equal(t, "Website", layout.Rows[1][0].Label)
}

func TestPostFlow_NoneSkipsDefaults(t *testing.T) {
	fx := newFixture(t)
	fx.addChannel(t, chanA, "Alpha")
	require.NoError(t, fx.buttons.Set(adminID, "Website - https://example.com"))

	fx.startPostFlow(t, "hello")
	fx.eng.HandleMessage(context.Background(), adminMsg("none"))

	require.Len(t, fx.tr.contents, 1)
	assert.Nil(t, fx.tr.contents[0].Layout, "explicit none suppresses defaults too")
}

func TestPostFlow_FormatShortcut(t *testing.T) {
	fx := newFixture(t)
	fx.addChannel(t, chanA, "Alpha")

	fx.startPostFlow(t, "Big sale!\nformat=Buy - https://shop.com")

	require.Len(t, fx.tr.contents, 1, "format= jumps straight to preview")
	preview := fx.tr.contents[0]
	assert.Equal(t, "Big sale!", preview.Content.Text)
	require.NotNil(t, preview.Layout)
	assert.Equal(t, "Buy", preview.Layout.Rows[0][0].Label)
	sess, ok := fx.sessions.Get(adminID)
	require.True(t, ok)
	assert.Equal(t, domain.StateAwaitPreview, sess.State)
}

func TestPostFlow_UnsupportedContentAborts(t *testing.T) {
	fx := newFixture(t)
	fx.addChannel(t, chanA, "Alpha")

	fx.startPostFlow(t, "")
	assert.Equal(t, unsupportedContentText, fx.tr.lastText().Text)
	assert.Equal(t, 0, fx.sessions.Len())
}

func TestPostFlow_NonTextButtonsRetries(t *testing.T) {
	fx := newFixture(t)
	fx.addChannel(t, chanA, "Alpha")

	fx.startPostFlow(t, "hello")
	fx.eng.HandleMessage(context.Background(), domain.Inbound{UserID: adminID, ChatID: userChat, PhotoID: "photo-1"})

	assert.Equal(t, invalidButtonsText, fx.tr.lastText().Text)
	sess, ok := fx.sessions.Get(adminID)
	require.True(t, ok, "buttons step is retryable")
	assert.Equal(t, domain.StateAwaitButtons, sess.State)
}

func (fx *fixture) startEditFlow(t *testing.T) int {
	t.Helper()
	ctx := context.Background()
	fx.eng.HandleCommand(ctx, "edit", "", adminMsg("/edit"))
	menuID := fx.tr.lastText().ID
	fx.eng.HandleCallback(ctx, press(fmt.Sprintf("select_channel:%d", chanA), menuID))
	return menuID
}

func TestEditFlow_InvalidMessageIDRetries(t *testing.T) {
	fx := newFixture(t)
	fx.addChannel(t, chanA, "Alpha")
	fx.startEditFlow(t)

	fx.eng.HandleMessage(context.Background(), adminMsg("not-a-number"))
	assert.Equal(t, invalidMessageIDText, fx.tr.lastText().Text)

	sess, ok := fx.sessions.Get(adminID)
	require.True(t, ok)
	assert.Equal(t, domain.StateAwaitMessageID, sess.State)
}

func TestEditFlow_ProbeFailureRetries(t *testing.T) {
	fx := newFixture(t)
	fx.addChannel(t, chanA, "Alpha")
	fx.startEditFlow(t)
	fx.tr.probeErr = errors.New("message to edit not found")

	fx.eng.HandleMessage(context.Background(), adminMsg("123"))
	assert.Equal(t, invalidTargetText, fx.tr.lastText().Text)

	sess, ok := fx.sessions.Get(adminID)
	require.True(t, ok)
	assert.Equal(t, domain.StateAwaitMessageID, sess.State)
}

func TestEditFlow_NotModifiedProbeSucceeds(t *testing.T) {
	fx := newFixture(t)
	fx.addChannel(t, chanA, "Alpha")
	fx.startEditFlow(t)
	fx.tr.probeErr = fmt.Errorf("bad request: %w", domain.ErrNotModified)

	fx.eng.HandleMessage(context.Background(), adminMsg("123"))
	assert.Equal(t, promptEditContent, fx.tr.lastText().Text)

	sess, ok := fx.sessions.Get(adminID)
	require.True(t, ok)
	assert.Equal(t, domain.StateAwaitContent, sess.State)
	assert.Equal(t, 123, sess.EditMessageID)
}

func TestEditFlow_NoOpAborts(t *testing.T) {
	fx := newFixture(t)
	fx.addChannel(t, chanA, "Alpha")
	fx.startEditFlow(t)
	ctx := context.Background()

	fx.eng.HandleMessage(ctx, adminMsg("123"))
	fx.eng.HandleMessage(ctx, adminMsg("keep"))
	fx.eng.HandleMessage(ctx, adminMsg("keep"))

	assert.Equal(t, noChangesText, fx.tr.lastText().Text)
	assert.Equal(t, 0, fx.sessions.Len())
}

func TestEditFlow_ButtonsOnly(t *testing.T) {
	fx := newFixture(t)
	fx.addChannel(t, chanA, "Alpha")
	fx.startEditFlow(t)
	ctx := context.Background()

	fx.eng.HandleMessage(ctx, adminMsg("123"))
	fx.eng.HandleMessage(ctx, adminMsg("keep"))
	fx.eng.HandleMessage(ctx, adminMsg("New Button - https://example.com"))

	// Keep-content preview is a placeholder text, not re-sent content.
	placeholder := fx.tr.texts[len(fx.tr.texts)-2]
	assert.Equal(t, keepContentPreviewText, placeholder.Text)
	confirm := fx.tr.lastText()
	assert.Equal(t, previewSentText, confirm.Text)

	fx.eng.HandleCallback(ctx, press("confirm_post", confirm.ID))
	// One button edit from the probe, one from the confirm.
	require.Len(t, fx.tr.buttonEdits, 2)
	applied := fx.tr.buttonEdits[1]
	assert.Equal(t, chanA, applied.ChatID)
	assert.Equal(t, 123, applied.MessageID)
	require.NotNil(t, applied.Layout)
	assert.Equal(t, "New Button", applied.Layout.Rows[0][0].Label)
	assert.Equal(t, editedText, fx.tr.lastText().Text)
	assert.Empty(t, fx.tr.contents, "content untouched in buttons-only edit")
}

func TestEditFlow_FullReplace(t *testing.T) {
	fx := newFixture(t)
	fx.addChannel(t, chanA, "Alpha")
	fx.startEditFlow(t)
	ctx := context.Background()

	fx.eng.HandleMessage(ctx, adminMsg("123"))
	fx.eng.HandleMessage(ctx, adminMsg("Updated body"))
	fx.eng.HandleMessage(ctx, adminMsg("keep"))
	confirm := fx.tr.lastText()
	fx.eng.HandleCallback(ctx, press("confirm_post", confirm.ID))

	// Preview plus the applied edit, both full content.
	require.Len(t, fx.tr.contents, 2)
	applied := fx.tr.contents[1]
	assert.Equal(t, chanA, applied.ChatID)
	assert.Equal(t, 123, applied.ID)
	assert.Equal(t, "Updated body", applied.Content.Text)
	assert.Equal(t, editedText, fx.tr.lastText().Text)
}

func TestBroadcastFlow_TallyWithFailures(t *testing.T) {
	fx := newFixture(t)
	fx.addChannel(t, chanA, "Alpha")
	fx.addChannel(t, chanB, "Beta")
	fx.addChannel(t, chanC, "Gamma")
	fx.tr.failSend = map[int64]error{chanB: errors.New("bot was kicked")}
	ctx := context.Background()

	fx.eng.HandleCommand(ctx, "broadcast", "", adminMsg("/broadcast"))
	assert.Equal(t, promptBroadcastMessage, fx.tr.lastText().Text)

	fx.eng.HandleMessage(ctx, adminMsg("Join our event today!"))
	fx.eng.HandleMessage(ctx, adminMsg("none"))
	confirm := fx.tr.lastText()
	assert.Equal(t, previewSentBroadcastText, confirm.Text)

	fx.eng.HandleCallback(ctx, press("confirm_post", confirm.ID))
	report := fx.tr.lastText().Text
	assert.Contains(t, report, "Broadcast completed: 2/3 channels successful.")
	assert.Contains(t, report, fmt.Sprintf("%d: ", chanB))
	assert.Contains(t, report, "bot was kicked")
	assert.Equal(t, 0, fx.sessions.Len())
}

func TestBroadcast_NoDefaultsConcatenation(t *testing.T) {
	fx := newFixture(t)
	fx.addChannel(t, chanA, "Alpha")
	require.NoError(t, fx.buttons.Set(adminID, "Website - https://example.com"))
	ctx := context.Background()

	fx.eng.HandleCommand(ctx, "broadcast", "", adminMsg("/broadcast"))
	fx.eng.HandleMessage(ctx, adminMsg("news"))
	fx.eng.HandleMessage(ctx, adminMsg("Go - https://go.dev"))

	require.NotEmpty(t, fx.tr.contents)
	layout := fx.tr.contents[0].Layout
	require.NotNil(t, layout)
	require.Len(t, layout.Rows, 1, "broadcast never appends stored defaults")
	assert.Equal(t, "Go", layout.Rows[0][0].Label)
}

func TestDefaultButtons_SetVerbatim(t *testing.T) {
	fx := newFixture(t)
	ctx := context.Background()
	raw := "Website - https://example.com\nSupport - t.me/support && Share - share:Join us!"

	fx.eng.HandleCommand(ctx, "setdefaultbtns", "", adminMsg("/setdefaultbtns"))
	assert.Equal(t, defaultButtonsText, fx.tr.lastText().Text)

	fx.eng.HandleMessage(ctx, adminMsg(raw))
	assert.Equal(t, defaultsSetText, fx.tr.lastText().Text)

	stored, ok, err := fx.buttons.Get(adminID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, raw, stored, "raw text stored verbatim")
	assert.Equal(t, 0, fx.sessions.Len())
}

func TestDefaultButtons_NoneClears(t *testing.T) {
	fx := newFixture(t)
	require.NoError(t, fx.buttons.Set(adminID, "Website - https://example.com"))
	ctx := context.Background()

	fx.eng.HandleCommand(ctx, "setdefaultbtns", "", adminMsg("/setdefaultbtns"))
	fx.eng.HandleMessage(ctx, adminMsg("none"))
	assert.Equal(t, defaultsClearedText, fx.tr.lastText().Text)

	fx.eng.HandleCommand(ctx, "setdefaultbtns", "", adminMsg("/setdefaultbtns"))
	fx.eng.HandleMessage(ctx, adminMsg("NONE"))
	assert.Equal(t, defaultsNoneSetText, fx.tr.lastText().Text, "clearing twice reports nothing was set")
}

func TestAddCommand(t *testing.T) {
	fx := newFixture(t)
	ctx := context.Background()

	fx.eng.HandleCommand(ctx, "add", "", adminMsg("/add"))
	assert.Equal(t, "Usage: /add -100xxxxxx", fx.tr.lastText().Text)

	fx.eng.HandleCommand(ctx, "add", "12345", adminMsg("/add 12345"))
	assert.Equal(t, "Usage: /add -100xxxxxx", fx.tr.lastText().Text)

	fx.tr.chats[-100999] = domain.ChatInfo{ID: -100999, Title: "Group", Type: "supergroup"}
	fx.eng.HandleCommand(ctx, "add", "-100999", adminMsg("/add -100999"))
	assert.Equal(t, "The provided ID is not a channel.", fx.tr.lastText().Text)

	fx.eng.HandleCommand(ctx, "add", fmt.Sprintf("%d", chanA), adminMsg("/add"))
	assert.Equal(t, "✅ Channel 'Alpha' has been added to the database.", fx.tr.lastText().Text)

	fx.eng.HandleCommand(ctx, "add", fmt.Sprintf("%d", chanA), adminMsg("/add"))
	assert.Equal(t, "Channel 'Alpha' already exists.", fx.tr.lastText().Text)
}

func TestPublishedButton_PopupAndAlert(t *testing.T) {
	fx := newFixture(t)
	ctx := context.Background()

	fx.eng.HandleCallback(ctx, domain.CallbackPress{ID: "p1", UserID: 42, Data: "popup: See you soon"})
	fx.eng.HandleCallback(ctx, domain.CallbackPress{ID: "a1", UserID: 42, Data: "alert:Stop right there"})

	require.Len(t, fx.tr.answers, 2)
	assert.Equal(t, " See you soon", fx.tr.answers[0].Text)
	assert.False(t, fx.tr.answers[0].Alert)
	assert.Equal(t, "Stop right there", fx.tr.answers[1].Text)
	assert.True(t, fx.tr.answers[1].Alert)
}

func TestConfirm_FromNonOwnerIsDropped(t *testing.T) {
	fx := newFixture(t)
	fx.addChannel(t, chanA, "Alpha")
	fx.startPostFlow(t, "hello")
	fx.eng.HandleMessage(context.Background(), adminMsg("none"))
	confirm := fx.tr.lastText()
	published := len(fx.tr.contents)

	intruder := domain.CallbackPress{ID: "x", UserID: 777, ChatID: userChat, MessageID: confirm.ID, Data: "confirm_post"}
	fx.eng.HandleCallback(context.Background(), intruder)

	assert.Len(t, fx.tr.contents, published, "nothing published for a non-owner press")
	_, ok := fx.sessions.Get(adminID)
	assert.True(t, ok, "owner's session survives")
}

func TestCancelCommand(t *testing.T) {
	fx := newFixture(t)
	fx.addChannel(t, chanA, "Alpha")
	fx.startPostFlow(t, "hello")

	fx.eng.HandleCommand(context.Background(), "cancel", "", adminMsg("/cancel"))
	assert.Equal(t, canceledText, fx.tr.lastText().Text)
	assert.Equal(t, 0, fx.sessions.Len())
}

func TestCancelAtPreview_FlowSpecificNotice(t *testing.T) {
	fx := newFixture(t)
	fx.addChannel(t, chanA, "Alpha")
	fx.startPostFlow(t, "hello")
	fx.eng.HandleMessage(context.Background(), adminMsg("none"))
	confirm := fx.tr.lastText()
	previewID := fx.tr.contents[0].ID

	fx.eng.HandleCallback(context.Background(), press("cancel_action", confirm.ID))
	assert.Equal(t, "Post canceled.", fx.tr.lastText().Text)
	assert.Contains(t, fx.tr.deleted, previewID)
	assert.Contains(t, fx.tr.deleted, confirm.ID)
	assert.Equal(t, 0, fx.sessions.Len())
}

func TestBackAction_RewindsToPreviousPrompt(t *testing.T) {
	fx := newFixture(t)
	fx.addChannel(t, chanA, "Alpha")
	menuID := fx.startPostFlow(t, "hello")

	fx.eng.HandleCallback(context.Background(), press("back_action", menuID))
	assert.Equal(t, promptPostMessage, fx.tr.lastTextEdit().Text)

	sess, ok := fx.sessions.Get(adminID)
	require.True(t, ok)
	assert.Equal(t, domain.StateAwaitMessage, sess.State)
}

func TestMyChannels_DeleteAndClear(t *testing.T) {
	fx := newFixture(t)
	fx.addChannel(t, chanA, "Alpha")
	fx.addChannel(t, chanB, "Beta")
	ctx := context.Background()

	fx.eng.HandleCallback(ctx, press("start_my_channels", 1))
	list := fx.tr.lastText()
	assert.Equal(t, savedChannelsText, list.Text)
	require.NotNil(t, list.Layout)
	require.Len(t, list.Layout.Rows, 3, "two channel rows plus the footer")
	assert.Equal(t, "🗑️1", list.Layout.Rows[0][1].Label)

	fx.eng.HandleCallback(ctx, press(fmt.Sprintf("delete_channel:%d", chanA), list.ID))
	edited := fx.tr.lastTextEdit()
	assert.True(t, strings.HasPrefix(edited.Text, "Channel deleted."))

	fx.eng.HandleCallback(ctx, press("clear_all_channels", list.ID))
	assert.Equal(t, "Cleared 1 channel(s). No saved channels left.", fx.tr.lastTextEdit().Text)

	remaining, err := fx.channels.List()
	require.NoError(t, err)
	assert.Empty(t, remaining)
}

func TestStartMenu_DefaultButtonsShowsCurrent(t *testing.T) {
	fx := newFixture(t)
	require.NoError(t, fx.buttons.Set(adminID, "Website - https://example.com"))

	fx.eng.HandleCallback(context.Background(), press("start_default_buttons", 1))
	edited := fx.tr.lastTextEdit()
	assert.Contains(t, edited.Text, manageDefaultButtonsText)
	assert.Contains(t, edited.Text, "Website - https://example.com")
}

func TestMessageWithoutSession_Nudges(t *testing.T) {
	fx := newFixture(t)
	fx.eng.HandleMessage(context.Background(), adminMsg("stray text"))
	assert.Equal(t, unexpectedInputText, fx.tr.lastText().Text)
}
