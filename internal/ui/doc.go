// Package ui holds the single UI state value shared by the flows and the
// presentation layers.
//
// The flows set a State; presenters subscribe to a Store and render the
// regions derived from it. Region visibility is never stored, so exactly one
// of Idle, Loading, Hello, ShapeDisplayed or Confused is on screen at a time.
package ui
