// Package flow runs the two user-triggered flows, greeting and shape.
//
// Each attempt moves the UI to Loading, obtains credentials, builds and sends
// the request, interprets the response and moves the UI to exactly one
// outcome: Hello, ShapeDisplayed or Confused. Repeated triggers of a flow
// while it is in flight join the running attempt and share its outcome.
package flow
