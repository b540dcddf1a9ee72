package wpmock

import (
	"github.com/flemzord/wpmock/pkg/hook"
	"github.com/flemzord/wpmock/pkg/wp"
)

var _ wp.Platform = (*Session)(nil)

// RegisterHook implements wp.Platform for add_action and add_filter.
func (s *Session) RegisterHook(kind hook.Kind, tag string, callback any, priority, acceptedArgs int) bool {
	defer s.telemetry.start(spanHook, string(kind)+"_added", tag)()
	s.events.Callback(tag, kind).React(callback, priority, acceptedArgs)
	return true
}

// DoAction implements wp.Platform for do_action.
func (s *Session) DoAction(tag string, args []any) {
	defer s.telemetry.start(spanHook, string(hook.KindAction), tag)()
	s.events.Action(tag).React(args)
}

// ApplyFilters implements wp.Platform for apply_filters.
func (s *Session) ApplyFilters(tag string, args []any) any {
	defer s.telemetry.start(spanHook, string(hook.KindFilter), tag)()
	return s.events.Filter(tag).Apply(args)
}

// DidAction implements wp.Platform for did_action.
func (s *Session) DidAction(tag string) int {
	return s.events.Fired(tag)
}

// Call implements wp.Platform for every other platform function.
func (s *Session) Call(name string, args []any) any {
	defer s.telemetry.start(spanFunction, "function", name)()
	return s.functions.Invoke(name, args)
}
