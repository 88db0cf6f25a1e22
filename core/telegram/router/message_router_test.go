package router

import (
	"testing"

	tg "github.com/anassar/mudeer/core/telegram"

	tele "gopkg.in/telebot.v4"
)

// fakeContext implements the slice of tele.Context the routing chain touches.
// Unimplemented methods panic through the embedded nil interface, which keeps
// the stub honest about what routing actually needs.
type fakeContext struct {
	tele.Context
	upd  tele.Update
	data map[string]interface{}
}

func newFakeContext(upd tele.Update) *fakeContext {
	return &fakeContext{upd: upd, data: make(map[string]interface{})}
}

func (c *fakeContext) Update() tele.Update { return c.upd }

func (c *fakeContext) Message() *tele.Message { return c.upd.Message }

func (c *fakeContext) Sender() *tele.User {
	if c.upd.Message != nil {
		return c.upd.Message.Sender
	}
	return nil
}

func (c *fakeContext) Chat() *tele.Chat {
	if c.upd.Message != nil {
		return c.upd.Message.Chat
	}
	return nil
}

func (c *fakeContext) Text() string {
	if c.upd.Message != nil {
		return c.upd.Message.Text
	}
	return ""
}

func (c *fakeContext) Get(key string) interface{} { return c.data[key] }

func (c *fakeContext) Set(key string, val interface{}) { c.data[key] = val }

type convSpy struct {
	text, doc, photo bool
}

func (s *convSpy) OnText(tele.Context) error     { s.text = true; return nil }
func (s *convSpy) OnDocument(tele.Context) error { s.doc = true; return nil }
func (s *convSpy) OnPhoto(tele.Context) error    { s.photo = true; return nil }

func findRoute(t *testing.T, routes []tg.Route, endpoint string) tg.Route {
	t.Helper()
	for _, r := range routes {
		if r.Endpoint == endpoint {
			return r
		}
	}
	t.Fatalf("no route for %q", endpoint)
	return tg.Route{}
}

func messageUpdate(id int, mutate func(*tele.Message)) tele.Update {
	msg := &tele.Message{
		Sender: &tele.User{ID: 7},
		Chat:   &tele.Chat{ID: 7, Type: tele.ChatPrivate},
	}
	if mutate != nil {
		mutate(msg)
	}
	return tele.Update{ID: id, Message: msg}
}

func TestTextRoutesRegistryFallbacks(t *testing.T) {
	reg := tg.NewRegistry()
	var textHit, docHit, photoHit bool
	reg.SetTextFallback(func(tele.Context) error { textHit = true; return nil })
	reg.SetDocumentHandler(func(tele.Context) error { docHit = true; return nil })
	reg.SetPhotoHandler(func(tele.Context) error { photoHit = true; return nil })

	routes := TextRoutes(nil, reg, TextOptions{})

	c := newFakeContext(messageUpdate(1001, func(m *tele.Message) { m.Text = "hello" }))
	if err := findRoute(t, routes, tele.OnText).Handler(c); err != nil {
		t.Fatalf("text route: %v", err)
	}
	if !textHit {
		t.Error("text fallback not invoked")
	}

	c = newFakeContext(messageUpdate(1002, func(m *tele.Message) {
		m.Document = &tele.Document{File: tele.File{FileID: "doc-1"}, FileName: "a.txt"}
	}))
	if err := findRoute(t, routes, tele.OnDocument).Handler(c); err != nil {
		t.Fatalf("document route: %v", err)
	}
	if !docHit {
		t.Error("document fallback not invoked")
	}

	c = newFakeContext(messageUpdate(1003, func(m *tele.Message) {
		m.Photo = &tele.Photo{File: tele.File{FileID: "photo-1"}}
	}))
	if err := findRoute(t, routes, tele.OnPhoto).Handler(c); err != nil {
		t.Fatalf("photo route: %v", err)
	}
	if !photoHit {
		t.Error("photo fallback not invoked")
	}
}

func TestTextRoutesConversationWinsOverRegistry(t *testing.T) {
	reg := tg.NewRegistry()
	var fallbackHit bool
	reg.SetTextFallback(func(tele.Context) error { fallbackHit = true; return nil })
	reg.SetDocumentHandler(func(tele.Context) error { fallbackHit = true; return nil })
	reg.SetPhotoHandler(func(tele.Context) error { fallbackHit = true; return nil })

	conv := &convSpy{}
	routes := TextRoutes(conv, reg, TextOptions{})

	c := newFakeContext(messageUpdate(2001, func(m *tele.Message) { m.Text = "hello" }))
	if err := findRoute(t, routes, tele.OnText).Handler(c); err != nil {
		t.Fatalf("text route: %v", err)
	}
	c = newFakeContext(messageUpdate(2002, func(m *tele.Message) {
		m.Document = &tele.Document{File: tele.File{FileID: "doc-1"}}
	}))
	if err := findRoute(t, routes, tele.OnDocument).Handler(c); err != nil {
		t.Fatalf("document route: %v", err)
	}
	c = newFakeContext(messageUpdate(2003, func(m *tele.Message) {
		m.Photo = &tele.Photo{File: tele.File{FileID: "photo-1"}}
	}))
	if err := findRoute(t, routes, tele.OnPhoto).Handler(c); err != nil {
		t.Fatalf("photo route: %v", err)
	}

	if !conv.text || !conv.doc || !conv.photo {
		t.Errorf("conversation not routed: text=%v doc=%v photo=%v", conv.text, conv.doc, conv.photo)
	}
	if fallbackHit {
		t.Error("registry fallback ran despite an active conversation")
	}
}
