package ui

import (
	"math"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

// GestureType represents different types of gestures
type GestureType int

const (
	GestureTap GestureType = iota
	GestureSwipeLeft
	GestureSwipeRight
	GestureSwipeUp
	GestureSwipeDown
	GestureLongPress
)

// Gesture thresholds constants
const (
	DefaultSwipeThreshold    float32 = 50.0
	DefaultLongPressDuration         = 500 * time.Millisecond
)

// ClassifyGesture maps a completed drag to a gesture.
// Movement shorter than threshold is a tap, or a long press if it lasted long enough.
func ClassifyGesture(dx, dy float32, duration time.Duration, threshold float32, longPress time.Duration) GestureType {
	distance := float32(math.Hypot(float64(dx), float64(dy)))
	if distance < threshold {
		if duration >= longPress {
			return GestureLongPress
		}
		return GestureTap
	}

	absDx, absDy := dx, dy
	if absDx < 0 {
		absDx = -absDx
	}
	if absDy < 0 {
		absDy = -absDy
	}

	if absDx > absDy {
		if dx > 0 {
			return GestureSwipeRight
		}
		return GestureSwipeLeft
	}
	if dy > 0 {
		return GestureSwipeDown
	}
	return GestureSwipeUp
}

// GestureHandler accumulates drag events and reports the gesture on release
type GestureHandler struct {
	onGesture func(GestureType)

	dragging  bool
	dragStart time.Time
	dx, dy    float32

	swipeThreshold    float32
	longPressDuration time.Duration
}

// NewGestureHandler creates a new gesture handler
func NewGestureHandler(onGesture func(GestureType)) *GestureHandler {
	return &GestureHandler{
		onGesture:         onGesture,
		swipeThreshold:    DefaultSwipeThreshold,
		longPressDuration: DefaultLongPressDuration,
	}
}

// Dragged records drag movement
func (gh *GestureHandler) Dragged(event *fyne.DragEvent) {
	if !gh.dragging {
		gh.dragging = true
		gh.dragStart = time.Now()
		gh.dx, gh.dy = 0, 0
	}
	gh.dx += event.Dragged.DX
	gh.dy += event.Dragged.DY
}

// DragEnd classifies the finished drag
func (gh *GestureHandler) DragEnd() {
	if !gh.dragging {
		return
	}
	gh.dragging = false

	gesture := ClassifyGesture(gh.dx, gh.dy, time.Since(gh.dragStart), gh.swipeThreshold, gh.longPressDuration)
	if gh.onGesture != nil {
		gh.onGesture(gesture)
	}
}

// SwipeArea wraps content and reports swipes made with mouse or touch
type SwipeArea struct {
	widget.BaseWidget
	content fyne.CanvasObject
	handler *GestureHandler
}

// NewSwipeArea creates a new swipeable area around content
func NewSwipeArea(content fyne.CanvasObject, onGesture func(GestureType)) *SwipeArea {
	sa := &SwipeArea{
		content: content,
		handler: NewGestureHandler(onGesture),
	}
	sa.ExtendBaseWidget(sa)
	return sa
}

// CreateRenderer implements fyne.Widget
func (sa *SwipeArea) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(sa.content)
}

// Dragged implements fyne.Draggable
func (sa *SwipeArea) Dragged(event *fyne.DragEvent) {
	sa.handler.Dragged(event)
}

// DragEnd implements fyne.Draggable
func (sa *SwipeArea) DragEnd() {
	sa.handler.DragEnd()
}
