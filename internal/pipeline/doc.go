// Package pipeline implements the vocabulary normalization pipeline.
//
// Raw vocabulary text from the reasoning API flows through five pure stages:
//   - Sanitize strips markdown, HTML tags, and generation artifacts
//   - Classifier tags every line using an ordered rule list
//   - Collect absorbs continuation lines into heading blocks
//   - Group splits blocks into paragraphs at blank lines
//   - Render serializes the document into HTML markup
//
// Normalizer composes the stages. The package also holds the HTML helpers
// used to assemble standalone vocabulary reports: problem statement
// conversion via Goldmark, relative path rewriting, CSS injection, and the
// report template.
package pipeline
