// Package render turns a text message into a frame for the e-paper panel.
//
// The pipeline is pure: wrap the text into lines that fit the usable draw
// width (greedy, measured in pixels against the active font face), drop lines
// that fall below the usable draw height, draw the survivors onto a canvas
// with swapped dimensions (the panel is mounted rotated 90 degrees from its
// native pixel order), rotate the canvas 270 degrees back into the native
// orientation, and pack the result into two 1-bit planes.
//
// The black plane carries all text. The red plane of the bichrome panel is
// always sent blank; the appliance has no accent-color text.
package render
