// Package markup renders Markdown cell values into HTML fragments.
//
// Conversion runs in three steps:
//   - preprocessing (line ending normalization, ==highlight== syntax)
//   - Markdown to HTML via Goldmark (GFM, footnotes, chroma highlighting)
//   - postprocessing (<mark> tags, single-paragraph unwrapping, optional
//     bluemonday sanitizing)
//
// Conversion never fails. Input Goldmark cannot render degrades to
// HTML-escaped text so one odd cell never aborts a whole table.
package markup
