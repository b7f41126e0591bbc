package app

import (
	"gonum.org/v1/gonum/spatial/r2"
)

// NoticeKind classifies a message for the front end
type NoticeKind int

const (
	NoticeSuccess NoticeKind = iota
	NoticeInfo
	NoticeError
)

func (k NoticeKind) String() string {
	switch k {
	case NoticeInfo:
		return "info"
	case NoticeError:
		return "error"
	}
	return "success"
}

// Notice is a short message to show after a save, load or preset command
type Notice struct {
	Kind    NoticeKind
	Message string
}

// IsError reports whether the command failed
func (n Notice) IsError() bool {
	return n.Kind == NoticeError
}

// InteractionState holds the drag in progress
type InteractionState struct {
	dragging  Target
	dragStart r2.Vec
}

// Dragging returns the target being dragged, TargetNone when idle
func (s InteractionState) Dragging() Target {
	return s.dragging
}
