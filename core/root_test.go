// Copyright (c) 2026, Lumen UI. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lumen-ui/lumen/cursors"
	"github.com/lumen-ui/lumen/events"
	"github.com/lumen-ui/lumen/layout"
	"github.com/lumen-ui/lumen/render"
	"github.com/lumen-ui/lumen/services"
	"github.com/lumen-ui/lumen/system"
	"github.com/lumen-ui/lumen/system/offscreen"
)

// layoutRecorder counts layout passes.
type layoutRecorder struct {
	passes int
}

func (lm *layoutRecorder) ExecuteLayoutPass() {
	lm.passes++
}

// dispatchRecorder records dispatched input events.
type dispatchRecorder struct {
	roots  []events.InputRoot
	events []events.Event
}

func (d *dispatchRecorder) ProcessEvent(root events.InputRoot, e events.Event) {
	d.roots = append(d.roots, root)
	d.events = append(d.events, e)
}

// styleRecorder counts style passes.
type styleRecorder struct {
	applied int
}

func (st *styleRecorder) ApplyStyle(root StyleRoot) {
	st.applied++
}

// renderRecorder records renderer calls.
type renderRecorder struct {
	paints   []image.Rectangle
	resizes  []image.Point
	disposed int
}

func (rr *renderRecorder) Paint(region image.Rectangle) { rr.paints = append(rr.paints, region) }
func (rr *renderRecorder) Resized(size image.Point)     { rr.resizes = append(rr.resizes, size) }
func (rr *renderRecorder) Dispose()                     { rr.disposed++ }

// renderRecorderFactory hands out one renderRecorder.
type renderRecorderFactory struct {
	r *renderRecorder
}

func (f *renderRecorderFactory) NewRenderer(surfaces *system.RenderSurfaces, size image.Point, loop render.Loop) render.Renderer {
	f.r = &renderRecorder{}
	return f.r
}

// testElement is an input element with a controllable cursor stream.
// Its cancel function deliberately keeps the subscription callback
// alive so tests can simulate a misbehaving source that emits after
// being canceled.
type testElement struct {
	name     string
	cur      cursors.Cursor
	fn       func(c cursors.Cursor)
	canceled int
}

func (el *testElement) Name() string { return el.name }

func (el *testElement) OnCursor(fn func(c cursors.Cursor)) func() {
	el.fn = fn
	fn(el.cur)
	return func() { el.canceled++ }
}

// emit pushes a cursor value to the subscriber, canceled or not.
func (el *testElement) emit(c cursors.Cursor) {
	el.cur = c
	if el.fn != nil {
		el.fn(c)
	}
}

// plainElement has no cursor stream.
type plainElement struct {
	name string
}

func (el *plainElement) Name() string { return el.name }

// walkerTree is a flat content tree of measure invalidators.
type walkerTree struct {
	members []*treeMember
}

type treeMember struct {
	invalid int
}

func (m *treeMember) InvalidateMeasure() { m.invalid++ }

func (tr *walkerTree) WalkLayout(visit func(el layout.Invalidator)) {
	for _, m := range tr.members {
		visit(m)
	}
}

// newTestRoot builds a root on an offscreen window with recording
// collaborators registered in a fresh service context.
func newTestRoot(t *testing.T, size image.Point) (*Root, *offscreen.Window, *layoutRecorder, *renderRecorderFactory) {
	win := offscreen.NewWindow(size)
	ctx := services.New()
	lm := &layoutRecorder{}
	rf := &renderRecorderFactory{}
	services.Register[layout.Manager](ctx, lm)
	services.Register[render.Factory](ctx, rf)
	r, err := NewRoot("test", win, ctx)
	assert.NoError(t, err)
	return r, win, lm, rf
}

func TestNewRootNilWindow(t *testing.T) {
	r, err := NewRoot("test", nil, services.New())
	assert.Nil(t, r)
	var cerr *ConstructionError
	assert.ErrorAs(t, err, &cerr)
	assert.Equal(t, "platform window", cerr.Missing)
}

func TestRootScenario(t *testing.T) {
	r, win, lm, rf := newTestRoot(t, image.Pt(800, 600))

	// construction captures the platform size without forcing a layout pass
	assert.Equal(t, image.Pt(800, 600), r.ClientSize())
	w, h := r.LayoutSize()
	assert.Equal(t, float32(800), w)
	assert.Equal(t, float32(600), h)
	assert.Equal(t, 0, lm.passes)

	win.DeliverResize(image.Pt(1024, 768))
	assert.Equal(t, image.Pt(1024, 768), r.ClientSize())
	w, h = r.LayoutSize()
	assert.Equal(t, float32(1024), w)
	assert.Equal(t, float32(768), h)
	assert.Equal(t, 1, lm.passes)
	assert.Equal(t, []image.Point{image.Pt(1024, 768)}, rf.r.resizes)

	tree := &walkerTree{members: []*treeMember{{}, {}, {}}}
	r.SetContent(tree)
	win.DeliverScaleChange(2)
	assert.Equal(t, 1, lm.passes) // no pass from scaling alone
	assert.Equal(t, float32(2), r.LayoutScale())
	assert.False(t, r.MeasureValid())
	for _, m := range tree.members {
		assert.Equal(t, 1, m.invalid)
	}

	closes := 0
	r.OnClosed(func(e events.Event) {
		closes++
		assert.Equal(t, events.WinClose, e.(*events.WindowEvent).Action)
	})
	win.DeliverClose()
	assert.Equal(t, 1, closes)
	assert.True(t, r.IsClosed())
	assert.Equal(t, 1, rf.r.disposed)
	assert.False(t, r.renderer.active())

	// a second close notification has nothing left to release
	win.DeliverClose()
	assert.Equal(t, 1, closes)
	assert.Equal(t, 1, rf.r.disposed)
}

func TestResizeForwardOrder(t *testing.T) {
	win := offscreen.NewWindow(image.Pt(100, 100))
	ctx := services.New()
	var order []string
	services.Register[layout.Manager](ctx, layoutFunc(func() { order = append(order, "layout") }))
	services.Register[render.Factory](ctx, renderFuncFactory(func() { order = append(order, "render") }))
	_, err := NewRoot("test", win, ctx)
	assert.NoError(t, err)

	win.DeliverResize(image.Pt(200, 200))
	assert.Equal(t, []string{"layout", "render"}, order)
}

// layoutFunc adapts a function to [layout.Manager].
type layoutFunc func()

func (f layoutFunc) ExecuteLayoutPass() { f() }

// renderFuncFactory produces a renderer whose Resized calls fun.
type renderFuncFactory func()

func (f renderFuncFactory) NewRenderer(surfaces *system.RenderSurfaces, size image.Point, loop render.Loop) render.Renderer {
	return &funcRenderer{onResize: f}
}

type funcRenderer struct {
	renderRecorder
	onResize func()
}

func (fr *funcRenderer) Resized(size image.Point) {
	fr.onResize()
	fr.renderRecorder.Resized(size)
}

func TestPaintForwarding(t *testing.T) {
	r, win, _, rf := newTestRoot(t, image.Pt(300, 200))
	region := image.Rect(10, 10, 50, 50)
	win.DeliverPaint(region)
	assert.Equal(t, []image.Rectangle{region}, rf.r.paints)

	// after close, paint notifications are silently skipped
	win.DeliverClose()
	win.DeliverPaint(region)
	assert.Equal(t, 1, len(rf.r.paints))
	assert.True(t, r.IsClosed())
}

func TestPaintWithoutRenderer(t *testing.T) {
	win := offscreen.NewWindow(image.Pt(100, 100))
	r, err := NewRoot("headless", win, services.New())
	assert.NoError(t, err)
	assert.False(t, r.renderer.active())

	// all forwarding is a no-op in degraded mode
	win.DeliverPaint(image.Rect(0, 0, 10, 10))
	win.DeliverResize(image.Pt(50, 50))
	assert.Equal(t, image.Pt(50, 50), r.ClientSize())
	win.DeliverClose()
}

func TestInputForwarding(t *testing.T) {
	win := offscreen.NewWindow(image.Pt(100, 100))
	ctx := services.New()
	d := &dispatchRecorder{}
	services.Register[events.Dispatcher](ctx, d)
	r, err := NewRoot("test", win, ctx)
	assert.NoError(t, err)

	e := events.NewMouse(events.MouseDown, events.Left, image.Pt(5, 5))
	win.DeliverInput(e)
	assert.Equal(t, []events.Event{e}, d.events)
	assert.Equal(t, events.InputRoot(r), d.roots[0])
}

func TestInitialStylePass(t *testing.T) {
	win := offscreen.NewWindow(image.Pt(100, 100))
	ctx := services.New()
	st := &styleRecorder{}
	services.Register[Styler](ctx, st)
	_, err := NewRoot("test", win, ctx)
	assert.NoError(t, err)
	assert.Equal(t, 1, st.applied)
}

func TestAttachParent(t *testing.T) {
	r, _, _, _ := newTestRoot(t, image.Pt(100, 100))
	err := r.AttachParent(&plainElement{name: "frame"})
	var serr *StructuralError
	assert.ErrorAs(t, err, &serr)
	assert.Contains(t, serr.Error(), "core.Root")
	assert.Nil(t, r.Parent())
}

func TestCursorSwitch(t *testing.T) {
	r, win, _, _ := newTestRoot(t, image.Pt(100, 100))

	a := &testElement{name: "a", cur: cursors.Pointer}
	b := &testElement{name: "b", cur: cursors.Text}

	r.SetPointerOverElement(a)
	c, set := win.Cursor()
	assert.True(t, set)
	assert.Equal(t, cursors.Pointer, c)

	a.emit(cursors.Grab)
	c, _ = win.Cursor()
	assert.Equal(t, cursors.Grab, c)

	r.SetPointerOverElement(b)
	assert.Equal(t, 1, a.canceled)
	c, _ = win.Cursor()
	assert.Equal(t, cursors.Text, c)

	// a stale emission from the superseded element never reaches the platform
	a.emit(cursors.Wait)
	c, _ = win.Cursor()
	assert.Equal(t, cursors.Text, c)

	b.emit(cursors.Crosshair)
	c, _ = win.Cursor()
	assert.Equal(t, cursors.Crosshair, c)
}

func TestCursorNoSource(t *testing.T) {
	r, win, _, _ := newTestRoot(t, image.Pt(100, 100))

	a := &testElement{name: "a", cur: cursors.Pointer}
	r.SetPointerOverElement(a)
	_, set := win.Cursor()
	assert.True(t, set)

	// element without a cursor stream counts as an empty stream
	r.SetPointerOverElement(&plainElement{name: "plain"})
	_, set = win.Cursor()
	assert.False(t, set)

	r.SetPointerOverElement(nil)
	_, set = win.Cursor()
	assert.False(t, set)
}

func TestCursorAfterClose(t *testing.T) {
	r, win, _, _ := newTestRoot(t, image.Pt(100, 100))
	a := &testElement{name: "a", cur: cursors.Pointer}
	r.SetPointerOverElement(a)
	win.DeliverClose()
	assert.Equal(t, 1, a.canceled)

	// emissions after close never reach the platform
	a.emit(cursors.Wait)
	c, _ := win.Cursor()
	assert.Equal(t, cursors.Pointer, c)
}

func TestPointerOverElement(t *testing.T) {
	r, _, _, _ := newTestRoot(t, image.Pt(100, 100))
	assert.Nil(t, r.PointerOverElement())
	a := &plainElement{name: "a"}
	r.SetPointerOverElement(a)
	assert.Equal(t, events.Element(a), r.PointerOverElement())
}

func TestLifecycleHook(t *testing.T) {
	win := offscreen.NewWindow(image.Pt(100, 100))
	ctx := services.New()
	lc := system.NewStdLifecycle()
	services.Register[system.Lifecycle](ctx, lc)
	r, err := NewRoot("test", win, ctx)
	assert.NoError(t, err)

	exits := 0
	r.AppExit = func() { exits++ }
	lc.Exit()
	assert.Equal(t, 1, exits)

	// after close the hook is removed and exit no longer reaches the root
	win.DeliverClose()
	lc.Exit()
	assert.Equal(t, 1, exits)
}

func TestLifecycleRemoveWithoutAdd(t *testing.T) {
	// no lifecycle collaborator at all: close must not panic
	win := offscreen.NewWindow(image.Pt(100, 100))
	_, err := NewRoot("test", win, services.New())
	assert.NoError(t, err)
	assert.NotPanics(t, func() { win.DeliverClose() })

	// a lifecycle that tolerates unknown tokens
	lc := system.NewStdLifecycle()
	assert.NotPanics(t, func() { lc.RemoveExitFunc(nil) })
}

func TestCapabilityViews(t *testing.T) {
	win := offscreen.NewWindow(image.Pt(100, 100))
	win.Pos = image.Pt(40, 30)
	ctx := services.New()
	gs := &globalScope{}
	services.Register[GlobalStyles](ctx, gs)
	r, err := NewRoot("test", win, ctx)
	assert.NoError(t, err)

	// layout root: unbounded max size, platform scale
	w, h := r.MaxClientSize()
	assert.Greater(t, w, float32(1e30))
	assert.Greater(t, h, float32(1e30))
	assert.Equal(t, float32(1), r.LayoutScale())

	// render root: point conversion delegates to the window
	assert.Equal(t, image.Pt(50, 40), r.PointToScreen(image.Pt(10, 10)))
	assert.Equal(t, image.Pt(10, 10), r.PointToClient(image.Pt(50, 40)))
	region := image.Rect(0, 0, 20, 20)
	r.InvalidateRender(region)
	assert.Equal(t, []image.Rectangle{region}, win.Damage())

	// style root: parent comes from the global scope, never an ancestor
	assert.Equal(t, StyleNode(gs.node()), r.StyleParent())

	// input root: access key state
	assert.False(t, r.ShowAccessKeys())
	r.SetShowAccessKeys(true)
	assert.True(t, r.ShowAccessKeys())
}

// fakeBackend creates fakeTargets over any surfaces.
type fakeBackend struct{}

type fakeTarget struct {
	size image.Point
}

func (ft *fakeTarget) Size() image.Point { return ft.size }
func (ft *fakeTarget) Close() error      { return nil }

func (fakeBackend) NewTarget(surfaces *system.RenderSurfaces) (render.Target, error) {
	return &fakeTarget{size: image.Pt(1, 1)}, nil
}

func TestNewRenderTarget(t *testing.T) {
	win := offscreen.NewWindow(image.Pt(100, 100))
	ctx := services.New()
	services.Register[render.Backend](ctx, fakeBackend{})
	r, err := NewRoot("test", win, ctx)
	assert.NoError(t, err)

	tgt, err := r.NewRenderTarget()
	assert.NoError(t, err)
	assert.Equal(t, image.Pt(1, 1), tgt.Size())
}

func TestNewRenderTargetDegraded(t *testing.T) {
	r, _, _, _ := newTestRoot(t, image.Pt(100, 100))
	tgt, err := r.NewRenderTarget()
	assert.Nil(t, tgt)
	assert.Error(t, err)
}

// globalScope is a trivial [GlobalStyles] with one scope node.
type globalScope struct {
	n *scopeNode
}

type scopeNode struct{}

func (n *scopeNode) StyleParent() StyleNode { return nil }

func (g *globalScope) node() *scopeNode {
	if g.n == nil {
		g.n = &scopeNode{}
	}
	return g.n
}

func (g *globalScope) Scope() StyleNode { return g.node() }
