// Package refresh implements pull-to-refresh and load-more controllers for
// scrollable surfaces.
//
// A controller is attached to one edge of a Surface (top, bottom, left or
// right). The surface reports offset, content size and gesture changes; the
// controller turns them into a pulling percent and a small state machine:
//
//	idle -> pulling -> refreshing -> idle | noMoreData
//	idle -> willRefresh -> refreshing   (refresh requested before attach)
//
// All state changes happen on the host's UI goroutine. EndRefreshing and the
// refresh callback are deferred through a Scheduler so they never run inside
// the call that triggered them; hosts drain the Queue once per frame.
package refresh
