// Copyright (c) 2026, Lumen UI. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package core provides the window coordination root: the object that
// bridges one platform-native window to the input, layout, styling,
// and rendering subsystems. A [Root] is created once per native
// window and destroyed when the platform reports closure.
package core

import (
	"fmt"
	"image"

	"github.com/chewxy/math32"

	"github.com/lumen-ui/lumen/base/errors"
	"github.com/lumen-ui/lumen/base/logx"
	"github.com/lumen-ui/lumen/events"
	"github.com/lumen-ui/lumen/layout"
	"github.com/lumen-ui/lumen/render"
	"github.com/lumen-ui/lumen/services"
	"github.com/lumen-ui/lumen/system"
)

// Root coordinates one platform-native window with the application's
// subsystems. It is the single owner of the window's renderer and the
// entry point for all platform notifications (input, paint, resize,
// scale change, close), which the platform driver delivers serialized
// on one logical thread.
//
// Root exposes itself to each subsystem through a narrow capability
// view: [events.InputRoot] for input dispatch, [layout.Root] for
// layout, [render.Root] for rendering, and [StyleRoot] for styling.
// No subsystem sees the others' surface.
type Root struct {

	// name is the internal handle of the root, used in diagnostics.
	name string

	// win is the platform window this root coordinates. It is owned
	// by the root for the root's lifetime and is never nil.
	win system.Window

	// size mirrors the platform-reported client size after the most
	// recent resize notification.
	size image.Point

	// layoutWidth and layoutHeight are the root's own layout
	// dimensions, kept equal to size so layout consumers observe one
	// consistent value.
	layoutWidth, layoutHeight float32

	// scale is the window's scale factor as of the most recent
	// scale-change notification.
	scale float32

	// pointerOver is the input-capable element the pointer currently
	// overlaps, set externally by the input dispatcher. Non-owning.
	pointerOver events.Element

	// onPointerOver is the single-subscriber slot through which the
	// cursor tracker observes pointer-over changes.
	onPointerOver func(el events.Element)

	// measureValid is the root's own layout measure state.
	measureValid bool

	// content is the root's element tree, if the surrounding
	// framework has attached one; used to propagate measure
	// invalidation on scale changes.
	content layout.Walker

	// optional collaborators; nil means the capability is degraded to
	// a no-op for this root's lifetime.
	dispatcher   events.Dispatcher
	layoutMgr    layout.Manager
	styler       Styler
	globalStyles GlobalStyles
	backend      render.Backend
	lifecycle    system.Lifecycle

	accessKeys events.KeyEventRouter
	keyNav     events.KeyEventRouter

	showAccessKeys bool

	renderer *renderCoordinator
	cursor   *cursorTracker

	// exitToken identifies this root's hook in the application
	// lifecycle; nil when registration never happened.
	exitToken *system.ExitFunc

	// AppExit is an optional extension point invoked when the
	// application-wide exit notification fires. This is distinct from
	// this root's own window being closed: it lets a root react to
	// the application going away even when another window drove it.
	AppExit func()

	listeners events.Listeners

	closed bool
}

// NewRoot returns a new [Root] coordinating the given platform
// window, with the given internal name used in diagnostics. A nil
// window is a fatal construction error. A nil service context falls
// back to [services.Default]; each optional collaborator missing from
// the context is logged and its capability degraded to a no-op.
func NewRoot(name string, win system.Window, ctx *services.Context) (*Root, error) {
	if win == nil {
		return nil, &ConstructionError{Missing: "platform window"}
	}
	if ctx == nil {
		ctx = services.Default()
	}
	r := &Root{name: name, win: win, measureValid: true}

	r.dispatcher = resolve[events.Dispatcher](r, ctx)
	r.layoutMgr = resolve[layout.Manager](r, ctx)
	r.styler = resolve[Styler](r, ctx)
	r.globalStyles = resolve[GlobalStyles](r, ctx)
	r.backend = resolve[render.Backend](r, ctx)
	r.lifecycle = resolve[system.Lifecycle](r, ctx)
	r.accessKeys = resolve[events.AccessKeyRouter](r, ctx)
	r.keyNav = resolve[events.KeyNavRouter](r, ctx)
	factory := resolve[render.Factory](r, ctx)
	loop, _ := services.Resolve[render.Loop](ctx) // loop is useless without a factory; not worth a warning of its own

	win.SetInputRoot(r)

	win.SetClosedFunc(r.handleClosed)
	win.SetInputFunc(r.handleInput)
	win.SetPaintFunc(r.handlePaint)
	win.SetResizedFunc(r.handleResized)
	win.SetScaleChangedFunc(r.handleScaleChanged)

	if r.styler != nil {
		r.styler.ApplyStyle(r)
	}

	r.size = win.Size()
	r.layoutWidth = float32(r.size.X)
	r.layoutHeight = float32(r.size.Y)
	r.scale = win.Scale()

	r.renderer = newRenderCoordinator(factory, loop, win)
	r.cursor = newCursorTracker(r, win)
	r.registerExitHook()
	return r, nil
}

// resolve returns the service of type T from the context, logging a
// degraded-mode warning naming the capability and the requesting root
// when it is absent.
func resolve[T any](r *Root, ctx *services.Context) T {
	v, ok := services.Resolve[T](ctx)
	if !ok {
		logx.PrintfWarn("core: root %q: no %s service; capability degraded to no-op", r.name, services.TypeName[T]())
	}
	return v
}

// Name returns the root's internal name handle.
func (r *Root) Name() string {
	return r.name
}

// Window returns the platform window this root coordinates.
func (r *Root) Window() system.Window {
	return r.win
}

// ClientSize returns the current client size of the window in pixels.
func (r *Root) ClientSize() image.Point {
	return r.size
}

// IsClosed reports whether the platform has closed this root's window.
func (r *Root) IsClosed() bool {
	return r.closed
}

// SetContent attaches the root's element tree, used to propagate
// measure invalidation on scale changes. The tree itself is managed
// by the surrounding framework.
func (r *Root) SetContent(content layout.Walker) {
	r.content = content
}

// OnClosed adds a listener called when the platform has closed this
// root's window. Listeners are called exactly once, even if the
// platform delivers the close notification more than once.
func (r *Root) OnClosed(fun func(e events.Event)) {
	r.listeners.Add(events.Window, fun)
}

// AttachParent fails with a [StructuralError]: a root is always the
// top of its tree and can never be a child of another element.
func (r *Root) AttachParent(parent any) error {
	return &StructuralError{Type: fmt.Sprintf("%T", r)}
}

// Parent always returns nil; see [Root.AttachParent].
func (r *Root) Parent() events.Element {
	return nil
}

////////  Platform notification handlers

// handleInput forwards one platform input event verbatim to the input
// dispatcher. The root does no filtering of its own.
func (r *Root) handleInput(e events.Event) {
	if DebugSettings.EventTrace {
		logx.PrintfDebug("core: root %q: input %v", r.name, e)
	}
	if r.dispatcher == nil {
		return
	}
	r.dispatcher.ProcessEvent(r, e)
}

// handlePaint forwards a damage notification to the renderer, if one
// is still alive.
func (r *Root) handlePaint(region image.Rectangle) {
	if DebugSettings.RenderTrace {
		logx.PrintfDebug("core: root %q: paint %v", r.name, region)
	}
	r.renderer.paint(region)
}

// handleResized records the new client size, runs a synchronous
// layout pass, and then notifies the renderer, in that order.
func (r *Root) handleResized(size image.Point) {
	if DebugSettings.EventTrace {
		logx.PrintfDebug("core: root %q: resized %v", r.name, size)
	}
	r.size = size
	r.layoutWidth = float32(size.X)
	r.layoutHeight = float32(size.Y)
	if r.layoutMgr != nil {
		r.layoutMgr.ExecuteLayoutPass()
	}
	r.renderer.resized(size)
}

// handleScaleChanged invalidates measure state for the root and every
// layout-participating descendant. No pass is run here; the next
// layout pass picks the invalidation up.
func (r *Root) handleScaleChanged(scale float32) {
	if DebugSettings.EventTrace {
		logx.PrintfDebug("core: root %q: scale %g", r.name, scale)
	}
	r.scale = scale
	r.InvalidateMeasure()
	if r.content != nil {
		r.content.WalkLayout(func(el layout.Invalidator) {
			el.InvalidateMeasure()
		})
	}
}

// handleClosed releases everything the root owns: the close event is
// raised to listeners, the renderer is disposed, the cursor tracking
// subscription is torn down, and the exit hook is removed. It runs
// exactly once; a repeated close notification from the platform has
// nothing left to release and does nothing.
func (r *Root) handleClosed() {
	if r.closed {
		return
	}
	r.closed = true
	if DebugSettings.EventTrace {
		logx.PrintfDebug("core: root %q: closed", r.name)
	}
	r.listeners.Call(events.NewWindow(events.WinClose))
	r.renderer.dispose()
	r.cursor.stop()
	r.removeExitHook()
}

////////  Input root view

func (r *Root) AccessKeyHandler() events.KeyEventRouter {
	return r.accessKeys
}

func (r *Root) KeyNavigationHandler() events.KeyEventRouter {
	return r.keyNav
}

func (r *Root) PointerOverElement() events.Element {
	return r.pointerOver
}

// SetPointerOverElement records the element the pointer currently
// overlaps. The cursor tracker observes the change and follows the
// new element's cursor.
func (r *Root) SetPointerOverElement(el events.Element) {
	if r.pointerOver == el {
		return
	}
	r.pointerOver = el
	if r.onPointerOver != nil {
		r.onPointerOver(el)
	}
}

func (r *Root) ShowAccessKeys() bool {
	return r.showAccessKeys
}

func (r *Root) SetShowAccessKeys(show bool) {
	r.showAccessKeys = show
}

////////  Layout root view

// InvalidateMeasure marks the root's own measured size as invalid.
func (r *Root) InvalidateMeasure() {
	r.measureValid = false
}

// MeasureValid reports whether the root's measure state is valid.
func (r *Root) MeasureValid() bool {
	return r.measureValid
}

// LayoutSize returns the root's layout dimensions, which mirror the
// window client size.
func (r *Root) LayoutSize() (width, height float32) {
	return r.layoutWidth, r.layoutHeight
}

// MaxClientSize returns the maximum permissible size of the root,
// which is unbounded for window roots.
func (r *Root) MaxClientSize() (width, height float32) {
	return math32.MaxFloat32, math32.MaxFloat32
}

// LayoutScale returns the window's scale factor.
func (r *Root) LayoutScale() float32 {
	return r.scale
}

////////  Render root view

// NewRenderTarget returns a new render target over the window's
// surfaces, using the render backend collaborator.
func (r *Root) NewRenderTarget() (render.Target, error) {
	if r.backend == nil {
		return nil, errors.New("core: root " + r.name + " has no render backend service")
	}
	return r.backend.NewTarget(r.win.Surfaces())
}

// InvalidateRender marks the given window region as damaged.
func (r *Root) InvalidateRender(region image.Rectangle) {
	r.win.Invalidate(region)
}

// PointToClient converts a point from screen coordinates to
// window-local coordinates.
func (r *Root) PointToClient(p image.Point) image.Point {
	return r.win.PointToClient(p)
}

// PointToScreen converts a point from window-local coordinates to
// screen coordinates.
func (r *Root) PointToScreen(p image.Point) image.Point {
	return r.win.PointToScreen(p)
}

////////  Style root view

// StyleParent returns the process-wide global style scope, or nil in
// degraded mode. There is intentionally no ancestor above a root.
func (r *Root) StyleParent() StyleNode {
	if r.globalStyles == nil {
		return nil
	}
	return r.globalStyles.Scope()
}

var (
	_ events.InputRoot = (*Root)(nil)
	_ layout.Root      = (*Root)(nil)
	_ render.Root      = (*Root)(nil)
	_ StyleRoot        = (*Root)(nil)
)
