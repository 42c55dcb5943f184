// Package viz draws the sorting stage in the terminal.
//
//   - [Theme]: color schemes for elements, selection, pointers and source
//   - [RenderBoard]: the stage's slots laid out on a character grid
//   - [RenderSource]: an algorithm listing with the active line marked
//
// Styles are lipgloss styles; colors are blended by highlight level so a
// select or unselect fade is visible frame by frame.
package viz
